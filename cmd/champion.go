package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pable/go-lol-metrics/internal/report"
	"github.com/pable/go-lol-metrics/internal/stats"
)

var championAll bool

var championCmd = &cobra.Command{
	Use:   "champion [name...]",
	Short: "Show champion profiles: games, win rate, KDA and gold",
	Long: `Show the profile of each named champion, or of --champion when no name is
given. With --all, print one summary row for every champion that meets
--min-games.`,
	RunE: runChampion,
}

func init() {
	championCmd.Flags().BoolVar(&championAll, "all", false, "summarise every eligible champion")
}

func runChampion(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd.Context(), cfg, false)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	w := cmd.OutOrStdout()

	if championAll {
		return printAllChampions(s, w)
	}
	if len(args) == 0 {
		args = []string{s.cfg.TargetCharacter}
	}
	if flagJSON {
		return report.WriteJSON(w, s.document(secProfile, args...))
	}
	s.printFilterSummary(w)
	return s.printProfile(w, args...)
}

func printAllChampions(s *session, w io.Writer) error {
	res, err := stats.Summarize(s.filtered, s.cfg.MinSamples)
	if flagJSON {
		doc := s.document(0)
		doc.Profile = report.ProfileSection(res, err)
		return report.WriteJSON(w, doc)
	}
	if err != nil {
		return err
	}
	s.printFilterSummary(w)
	if res.Status != stats.StatusOK {
		printNotice(w, res.Status, res.MinSamples, "")
		return nil
	}
	report.PrintSummaryTable(w, res.Groups)
	return nil
}

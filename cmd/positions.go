package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pable/go-lol-metrics/internal/report"
	"github.com/pable/go-lol-metrics/internal/stats"
)

var positionsAll bool

var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "List the positions played in the configured game mode",
	Long: `List the positions present after the --mode filter. The placeholder
positions Invalid and NONE are hidden unless --all is set.`,
	Args: cobra.NoArgs,
	RunE: runPositions,
}

func init() {
	positionsCmd.Flags().BoolVar(&positionsAll, "all", false, "include placeholder positions")
}

func runPositions(cmd *cobra.Command, _ []string) error {
	s, err := loadSession(cmd.Context(), cfg, false)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	positions := stats.ValidPositions(s.byMode)
	if positionsAll {
		positions = stats.Positions(s.byMode)
	}
	w := cmd.OutOrStdout()
	if flagJSON {
		return report.WriteJSON(w, positions)
	}
	report.PrintValues(w, fmt.Sprintf("Positions in %s (%d games)", filterName(s.cfg.GameMode), s.byMode.Len()), positions)
	return nil
}

func filterName(v string) string {
	if v == "" {
		return "all modes"
	}
	return v
}

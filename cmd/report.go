package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pable/go-lol-metrics/internal/report"
	"github.com/pable/go-lol-metrics/internal/stats"
)

var reportTop int

// reportCmd runs every analysis over the filtered dataset.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the full analysis for the configured mode and position",
	Long: `Print gold earned by outcome, the top and bottom win-rate and KDA
rankings, the target champion's profile and its most frequent items.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().IntVar(&reportTop, "top", 10, "rows shown in each top/bottom ranking and the item table (0 = all)")
}

func runReport(cmd *cobra.Command, _ []string) error {
	s, err := loadSession(cmd.Context(), cfg, true)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	w := cmd.OutOrStdout()

	if flagJSON {
		return report.WriteJSON(w, s.document(secAll))
	}

	s.printFilterSummary(w)
	if s.filtered.Len() == 0 {
		printNotice(w, stats.StatusNoData, 0, "")
		return nil
	}

	steps := []func() error{
		func() error { return s.printGold(w) },
		func() error { return s.printWinRates(w, reportTop) },
		func() error { return s.printCombat(w, reportTop) },
		func() error { return s.printProfile(w, s.cfg.TargetCharacter) },
		func() error { return s.printItems(w, reportTop) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			printAnalysisError(err)
		}
	}
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pable/go-lol-metrics/internal/report"
)

var winrateTop int

var winrateCmd = &cobra.Command{
	Use:   "winrate",
	Short: "Rank champions by win rate",
	Args:  cobra.NoArgs,
	RunE:  runWinRate,
}

func init() {
	winrateCmd.Flags().IntVar(&winrateTop, "top", 0, "show only the top and bottom N champions (0 = full ranking)")
}

func runWinRate(cmd *cobra.Command, _ []string) error {
	s, err := loadSession(cmd.Context(), cfg, false)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	w := cmd.OutOrStdout()
	if flagJSON {
		return report.WriteJSON(w, s.document(secWinRate))
	}
	s.printFilterSummary(w)
	return s.printWinRates(w, winrateTop)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pable/go-lol-metrics/internal/report"
)

var goldCmd = &cobra.Command{
	Use:   "gold",
	Short: "Compare mean gold earned in won and lost games",
	Args:  cobra.NoArgs,
	RunE:  runGold,
}

func runGold(cmd *cobra.Command, _ []string) error {
	s, err := loadSession(cmd.Context(), cfg, false)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	w := cmd.OutOrStdout()
	if flagJSON {
		return report.WriteJSON(w, s.document(secGold))
	}
	s.printFilterSummary(w)
	return s.printGold(w)
}

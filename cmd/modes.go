package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pable/go-lol-metrics/internal/report"
	"github.com/pable/go-lol-metrics/internal/stats"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List the game modes present in the dataset",
	Args:  cobra.NoArgs,
	RunE:  runModes,
}

func runModes(cmd *cobra.Command, _ []string) error {
	s, err := loadSession(cmd.Context(), cfg, false)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	modes := stats.Modes(s.all)
	w := cmd.OutOrStdout()
	if flagJSON {
		return report.WriteJSON(w, modes)
	}
	report.PrintValues(w, fmt.Sprintf("Game modes (%d games)", s.all.Len()), modes)
	return nil
}

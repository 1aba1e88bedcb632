package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pable/go-lol-metrics/internal/report"
)

var kdaTop int

var kdaCmd = &cobra.Command{
	Use:   "kda",
	Short: "Rank champions by (kills + assists) / deaths",
	Long: `Rank champions by the KDA ratio of their mean kills, deaths and assists.
A champion that averages fewer than one death is divided by one.`,
	Args: cobra.NoArgs,
	RunE: runKDA,
}

func init() {
	kdaCmd.Flags().IntVar(&kdaTop, "top", 0, "show only the top and bottom N champions (0 = full ranking)")
}

func runKDA(cmd *cobra.Command, _ []string) error {
	s, err := loadSession(cmd.Context(), cfg, false)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	w := cmd.OutOrStdout()
	if flagJSON {
		return report.WriteJSON(w, s.document(secKDA))
	}
	s.printFilterSummary(w)
	return s.printCombat(w, kdaTop)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pable/go-lol-metrics/internal/report"
)

var itemsTop int

var itemsCmd = &cobra.Command{
	Use:   "items [champion]",
	Short: "Show the items a champion builds most often",
	Long: `Count every non-empty item slot across the champion's games and list the
items by frequency. Names come from Data Dragon unless --no-items is set;
ids the catalog does not know are shown as numbers.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runItems,
}

func init() {
	itemsCmd.Flags().IntVar(&itemsTop, "top", 10, "number of items to show (0 = all)")
}

func runItems(cmd *cobra.Command, args []string) error {
	c := cfg
	if len(args) == 1 {
		c.TargetCharacter = args[0]
	}
	s, err := loadSession(cmd.Context(), c, true)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	w := cmd.OutOrStdout()
	if flagJSON {
		return report.WriteJSON(w, s.document(secItems))
	}
	s.printFilterSummary(w)
	return s.printItems(w, itemsTop)
}

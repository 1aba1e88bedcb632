package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/go-lol-metrics/internal/stats"
)

// newTable returns a table with right-aligned cells and centred headers.
func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// sampleFlag grades how far a champion's game count can be trusted.
func sampleFlag(n int) string {
	switch {
	case n >= 50:
		return "OK"
	case n >= 20:
		return "LOW"
	default:
		return "VERY_LOW"
	}
}

// filterLabel renders an empty filter value as "any".
func filterLabel(v string) string {
	if v == "" {
		return "any"
	}
	return v
}

// PrintFilterSummary prints the mode/position line and how many games survived each filter.
func PrintFilterSummary(w io.Writer, mode, position string, total, afterMode, afterPosition int) {
	fmt.Fprintf(w, "\nMode: %s  |  Position: %s  |  Games: %d loaded → %d in mode → %d in position\n",
		filterLabel(mode), filterLabel(position), total, afterMode, afterPosition)
}

// PrintValues prints a titled list of category values, one per line.
func PrintValues(w io.Writer, title string, values []string) {
	fmt.Fprintf(w, "\n--- %s ---\n\n", title)
	if len(values) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, v := range values {
		fmt.Fprintf(w, "  %s\n", v)
	}
}

// Notice returns the sentence shown in place of a result that has no data.
func Notice(status stats.Status, minSamples int, champion string) string {
	switch status {
	case stats.StatusNoEligible:
		return fmt.Sprintf("No champion was played %d or more times.", minSamples)
	case stats.StatusNotFound:
		return fmt.Sprintf("Champion %q not found in the filtered games.", champion)
	case stats.StatusNoData:
		return "No games match the current filters."
	}
	return ""
}

// PrintWinRateTable prints a win-rate ranking.
func PrintWinRateTable(w io.Writer, title string, rows []stats.WinRate) {
	fmt.Fprintf(w, "\n--- %s ---\n\n", title)
	table := newTable(w)
	table.Header("#", "CHAMPION", "GAMES", "WIN%", "SAMPLE")
	for i, r := range rows {
		table.Append(
			strconv.Itoa(i+1),
			r.Champion,
			strconv.Itoa(r.Games),
			fmt.Sprintf("%.2f", r.Rate),
			sampleFlag(r.Games),
		)
	}
	table.Render()
}

// PrintCombatTable prints mean kills/deaths/assists and the KDA ratio.
func PrintCombatTable(w io.Writer, title string, rows []stats.CombatLine) {
	fmt.Fprintf(w, "\n--- %s ---\n\n", title)
	table := newTable(w)
	table.Header("#", "CHAMPION", "GAMES", "K", "D", "A", "KDA")
	for i, r := range rows {
		table.Append(
			strconv.Itoa(i+1),
			r.Champion,
			strconv.Itoa(r.Games),
			fmt.Sprintf("%.2f", r.Kills),
			fmt.Sprintf("%.2f", r.Deaths),
			fmt.Sprintf("%.2f", r.Assists),
			fmt.Sprintf("%.2f", r.KDA),
		)
	}
	table.Render()
}

// PrintGoldTable prints mean gold earned per outcome.
func PrintGoldTable(w io.Writer, res stats.GoldResult) {
	fmt.Fprintf(w, "\n--- Gold Earned by Outcome ---\n\n")
	table := newTable(w)
	table.Header("OUTCOME", "GAMES", "AVG GOLD")
	for _, o := range res.Outcomes {
		table.Append(o.Outcome, strconv.Itoa(o.Games), fmt.Sprintf("%.2f", o.MeanGold))
	}
	table.Render()

	win, okW := res.Lookup(stats.OutcomeWin)
	loss, okL := res.Lookup(stats.OutcomeLoss)
	if okW && okL {
		fmt.Fprintf(w, "  Winners earned %+.2f gold on average.\n", win.MeanGold-loss.MeanGold)
	}
}

// PrintItemTable prints an item frequency table. Unresolved ids are marked "?".
func PrintItemTable(w io.Writer, res stats.ItemResult) {
	fmt.Fprintf(w, "\n--- Top Items: %s (%d games) ---\n\n", res.Champion, res.Games)
	table := newTable(w)
	table.Header("#", "ITEM", "ID", "COUNT", "PER GAME")
	for i, it := range res.Items {
		label := it.Label
		if !it.Resolved {
			label = it.Label + " ?"
		}
		perGame := 0.0
		if res.Games > 0 {
			perGame = float64(it.Count) / float64(res.Games)
		}
		table.Append(
			strconv.Itoa(i+1),
			label,
			strconv.Itoa(it.ItemID),
			strconv.Itoa(it.Count),
			fmt.Sprintf("%.2f", perGame),
		)
	}
	table.Render()
}

// PrintProfile prints one champion's summary as a two-column table.
func PrintProfile(w io.Writer, s stats.GroupSummary) {
	fmt.Fprintf(w, "\n--- Profile: %s ---\n\n", s.Champion)
	table := newTable(w)
	table.Header("STAT", "VALUE")
	table.Append("Games analysed", strconv.Itoa(s.Games))
	table.Append("Win rate (%)", fmt.Sprintf("%.2f", s.WinRate))
	table.Append("KDA", fmt.Sprintf("%.2f", s.KDA))
	table.Append("Gold (avg)", fmt.Sprintf("%.2f", s.MeanGold))
	table.Append("Kills (avg)", fmt.Sprintf("%.2f", s.Kills))
	table.Append("Deaths (avg)", fmt.Sprintf("%.2f", s.Deaths))
	table.Append("Assists (avg)", fmt.Sprintf("%.2f", s.Assists))
	table.Render()
}

// PrintSummaryTable prints every eligible champion's summary, one row each.
func PrintSummaryTable(w io.Writer, groups []stats.GroupSummary) {
	fmt.Fprintf(w, "\n--- Champions ---\n\n")
	table := newTable(w)
	table.Header("CHAMPION", "GAMES", "WIN%", "K", "D", "A", "KDA", "AVG GOLD")
	for _, g := range groups {
		table.Append(
			g.Champion,
			strconv.Itoa(g.Games),
			fmt.Sprintf("%.2f", g.WinRate),
			fmt.Sprintf("%.2f", g.Kills),
			fmt.Sprintf("%.2f", g.Deaths),
			fmt.Sprintf("%.2f", g.Assists),
			fmt.Sprintf("%.2f", g.KDA),
			fmt.Sprintf("%.2f", g.MeanGold),
		)
	}
	table.Render()
}

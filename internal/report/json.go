package report

import (
	"io"

	json "github.com/goccy/go-json"

	"github.com/pable/go-lol-metrics/internal/stats"
)

// Section is one analysis in a JSON report. Error is set instead of Rows when
// the analysis could not run, for example because a column was missing.
type Section[T any] struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Rows   []T    `json:"rows,omitempty"`
}

// Document is the machine-readable form of a full report run.
type Document struct {
	Mode        string `json:"mode"`
	Position    string `json:"position"`
	MinGames    int    `json:"min_games"`
	Games       int    `json:"games"`
	Champion    string `json:"champion,omitempty"`
	ItemVersion string `json:"item_version,omitempty"`

	Gold     *Section[GoldRow]    `json:"gold,omitempty"`
	WinRates *Section[WinRateRow] `json:"win_rates,omitempty"`
	KDA      *Section[KDARow]     `json:"kda,omitempty"`
	Profile  *Section[ProfileRow] `json:"profile,omitempty"`
	Items    *Section[ItemRow]    `json:"items,omitempty"`
}

type GoldRow struct {
	Outcome  string  `json:"outcome"`
	Games    int     `json:"games"`
	MeanGold float64 `json:"mean_gold"`
}

type WinRateRow struct {
	Champion string  `json:"champion"`
	Games    int     `json:"games"`
	WinRate  float64 `json:"win_rate"`
	Sample   string  `json:"sample"`
}

type KDARow struct {
	Champion string  `json:"champion"`
	Games    int     `json:"games"`
	Kills    float64 `json:"kills"`
	Deaths   float64 `json:"deaths"`
	Assists  float64 `json:"assists"`
	KDA      float64 `json:"kda"`
}

type ProfileRow struct {
	Champion string  `json:"champion"`
	Games    int     `json:"games"`
	WinRate  float64 `json:"win_rate"`
	Kills    float64 `json:"kills"`
	Deaths   float64 `json:"deaths"`
	Assists  float64 `json:"assists"`
	KDA      float64 `json:"kda"`
	MeanGold float64 `json:"mean_gold"`
}

type ItemRow struct {
	ItemID   int    `json:"item_id"`
	Name     string `json:"name"`
	Resolved bool   `json:"resolved"`
	Count    int    `json:"count"`
}

// statusKey is the wire spelling of a stats.Status.
func statusKey(s stats.Status) string {
	switch s {
	case stats.StatusOK:
		return "ok"
	case stats.StatusNoData:
		return "no_data"
	case stats.StatusNoEligible:
		return "no_eligible"
	case stats.StatusNotFound:
		return "not_found"
	}
	return "unknown"
}

func errSection[T any](err error) *Section[T] {
	return &Section[T]{Status: "error", Error: err.Error()}
}

// GoldSection converts a gold-by-outcome result.
func GoldSection(res stats.GoldResult, err error) *Section[GoldRow] {
	if err != nil {
		return errSection[GoldRow](err)
	}
	s := &Section[GoldRow]{Status: statusKey(res.Status)}
	for _, o := range res.Outcomes {
		s.Rows = append(s.Rows, GoldRow{Outcome: o.Outcome, Games: o.Games, MeanGold: o.MeanGold})
	}
	return s
}

// WinRateSection converts a win-rate ranking.
func WinRateSection(res stats.WinRateResult, err error) *Section[WinRateRow] {
	if err != nil {
		return errSection[WinRateRow](err)
	}
	s := &Section[WinRateRow]{Status: statusKey(res.Status)}
	for _, r := range res.Ranking {
		s.Rows = append(s.Rows, WinRateRow{Champion: r.Champion, Games: r.Games, WinRate: r.Rate, Sample: sampleFlag(r.Games)})
	}
	return s
}

// KDASection converts a combat-ratio ranking.
func KDASection(res stats.CombatResult, err error) *Section[KDARow] {
	if err != nil {
		return errSection[KDARow](err)
	}
	s := &Section[KDARow]{Status: statusKey(res.Status)}
	for _, r := range res.Ranking {
		s.Rows = append(s.Rows, KDARow{
			Champion: r.Champion, Games: r.Games,
			Kills: r.Kills, Deaths: r.Deaths, Assists: r.Assists, KDA: r.KDA,
		})
	}
	return s
}

// ProfileSection converts the summaries of the requested champions. A
// champion absent from res yields a not_found section.
func ProfileSection(res stats.SummaryResult, err error, champions ...string) *Section[ProfileRow] {
	if err != nil {
		return errSection[ProfileRow](err)
	}
	if res.Status != stats.StatusOK {
		return &Section[ProfileRow]{Status: statusKey(res.Status)}
	}
	groups := res.Groups
	if len(champions) > 0 {
		groups = nil
		for _, c := range champions {
			if g, ok := res.Lookup(c); ok {
				groups = append(groups, g)
			}
		}
	}
	if len(groups) == 0 {
		return &Section[ProfileRow]{Status: statusKey(stats.StatusNotFound)}
	}
	s := &Section[ProfileRow]{Status: statusKey(stats.StatusOK)}
	for _, g := range groups {
		s.Rows = append(s.Rows, ProfileRow{
			Champion: g.Champion, Games: g.Games, WinRate: g.WinRate,
			Kills: g.Kills, Deaths: g.Deaths, Assists: g.Assists,
			KDA: g.KDA, MeanGold: g.MeanGold,
		})
	}
	return s
}

// ItemSection converts an item frequency table.
func ItemSection(res stats.ItemResult, err error) *Section[ItemRow] {
	if err != nil {
		return errSection[ItemRow](err)
	}
	s := &Section[ItemRow]{Status: statusKey(res.Status)}
	for _, it := range res.Items {
		s.Rows = append(s.Rows, ItemRow{ItemID: it.ItemID, Name: it.Label, Resolved: it.Resolved, Count: it.Count})
	}
	return s
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

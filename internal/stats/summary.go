package stats

import "github.com/pable/go-lol-metrics/internal/model"

// GroupSummary is every per-champion figure the reports show side by side.
type GroupSummary struct {
	Champion string
	Games    int
	WinRate  float64
	Kills    float64
	Deaths   float64
	Assists  float64
	KDA      float64
	MeanGold float64
}

// SummaryResult holds one summary per eligible champion in ascending name order.
type SummaryResult struct {
	Status     Status
	MinSamples int
	Groups     []GroupSummary
}

// Lookup returns the summary for champion.
func (r SummaryResult) Lookup(champion string) (GroupSummary, bool) {
	for _, g := range r.Groups {
		if g.Champion == champion {
			return g, true
		}
	}
	return GroupSummary{}, false
}

// Champions returns the summarised champion names.
func (r SummaryResult) Champions() []string {
	out := make([]string, len(r.Groups))
	for i, g := range r.Groups {
		out[i] = g.Champion
	}
	return out
}

// Summarize builds a GroupSummary for every champion with at least
// minSamples games. It needs every metric column except the item slots.
func Summarize(d *model.Dataset, minSamples int) (SummaryResult, error) {
	res := SummaryResult{MinSamples: minSamples}
	cols := []model.Column{model.ColWin, model.ColKills, model.ColDeaths, model.ColAssists, model.ColGoldEarned}
	if err := d.Require("summary", append([]model.Column{model.ColChampion}, cols...)...); err != nil {
		return res, err
	}

	counts, keep, relevant := eligibleSubset(d, minSamples)
	if relevant.Len() == 0 {
		res.Status = StatusNoEligible
		return res, nil
	}

	means, err := GroupMeans(relevant, model.ColChampion, cols...)
	if err != nil {
		return res, err
	}
	for _, champ := range keep {
		m := means[champ]
		res.Groups = append(res.Groups, GroupSummary{
			Champion: champ,
			Games:    counts[champ],
			WinRate:  Round2(m[model.ColWin] * 100),
			Kills:    Round2(m[model.ColKills]),
			Deaths:   Round2(m[model.ColDeaths]),
			Assists:  Round2(m[model.ColAssists]),
			KDA:      Round2(KDARatio(m[model.ColKills], m[model.ColDeaths], m[model.ColAssists])),
			MeanGold: Round2(m[model.ColGoldEarned]),
		})
	}
	return res, nil
}

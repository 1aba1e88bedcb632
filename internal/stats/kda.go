package stats

import (
	"sort"

	"github.com/pable/go-lol-metrics/internal/model"
)

// KDARatio is (kills + assists) / deaths with the deaths term floored at 1.
// A group that averages zero deaths is scored as though it averaged one,
// which understates flawless groups. Keep the floor: published rankings
// depend on it.
func KDARatio(kills, deaths, assists float64) float64 {
	return (kills + assists) / max(deaths, 1)
}

// CombatLine is one champion's mean kills, deaths and assists and the
// ratio derived from them. All four values are rounded to two decimals.
type CombatLine struct {
	Champion string
	Games    int
	Kills    float64
	Deaths   float64
	Assists  float64
	KDA      float64
}

// CombatResult is a KDA ranking, highest ratio first.
type CombatResult struct {
	Status     Status
	MinSamples int
	Ranking    []CombatLine
}

// Lookup returns the ranking entry for champion.
func (r CombatResult) Lookup(champion string) (CombatLine, bool) {
	for _, c := range r.Ranking {
		if c.Champion == champion {
			return c, true
		}
	}
	return CombatLine{}, false
}

// CombatRatios ranks champions with at least minSamples games by KDARatio
// of their mean kills, deaths and assists. The ratio is computed from the
// unrounded means.
func CombatRatios(d *model.Dataset, minSamples int) (CombatResult, error) {
	res := CombatResult{MinSamples: minSamples}
	if err := d.Require("kda", model.ColChampion, model.ColKills, model.ColDeaths, model.ColAssists); err != nil {
		return res, err
	}

	counts, keep, relevant := eligibleSubset(d, minSamples)
	if relevant.Len() == 0 {
		res.Status = StatusNoEligible
		return res, nil
	}

	means, err := GroupMeans(relevant, model.ColChampion, model.ColKills, model.ColDeaths, model.ColAssists)
	if err != nil {
		return res, err
	}

	res.Ranking = make([]CombatLine, 0, len(keep))
	for _, champ := range keep {
		m := means[champ]
		k, dth, a := m[model.ColKills], m[model.ColDeaths], m[model.ColAssists]
		res.Ranking = append(res.Ranking, CombatLine{
			Champion: champ,
			Games:    counts[champ],
			Kills:    Round2(k),
			Deaths:   Round2(dth),
			Assists:  Round2(a),
			KDA:      Round2(KDARatio(k, dth, a)),
		})
	}
	sort.SliceStable(res.Ranking, func(i, j int) bool {
		return res.Ranking[i].KDA > res.Ranking[j].KDA
	})
	return res, nil
}

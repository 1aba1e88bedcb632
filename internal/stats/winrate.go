package stats

import (
	"sort"

	"github.com/pable/go-lol-metrics/internal/model"
)

// WinRate is one champion's line in a win-rate ranking.
type WinRate struct {
	Champion string
	Games    int
	// Rate is the win percentage in [0, 100], rounded to two decimals.
	Rate float64
}

// WinRateResult is a win-rate ranking, highest rate first.
type WinRateResult struct {
	Status     Status
	MinSamples int
	Ranking    []WinRate
	// Counts holds the sample size of every champion in the input,
	// eligible or not.
	Counts map[string]int
}

// Lookup returns the ranking entry for champion.
func (r WinRateResult) Lookup(champion string) (WinRate, bool) {
	for _, w := range r.Ranking {
		if w.Champion == champion {
			return w, true
		}
	}
	return WinRate{}, false
}

// WinRates ranks champions with at least minSamples games by the share of
// those games they won. Equal rates keep ascending champion order.
func WinRates(d *model.Dataset, minSamples int) (WinRateResult, error) {
	res := WinRateResult{MinSamples: minSamples}
	if err := d.Require("win rate", model.ColChampion, model.ColWin); err != nil {
		return res, err
	}

	counts, keep, relevant := eligibleSubset(d, minSamples)
	res.Counts = counts
	if relevant.Len() == 0 {
		res.Status = StatusNoEligible
		return res, nil
	}

	means, err := GroupMeans(relevant, model.ColChampion, model.ColWin)
	if err != nil {
		return res, err
	}

	res.Ranking = make([]WinRate, 0, len(keep))
	for _, champ := range keep {
		res.Ranking = append(res.Ranking, WinRate{
			Champion: champ,
			Games:    counts[champ],
			Rate:     Round2(means[champ][model.ColWin] * 100),
		})
	}
	sort.SliceStable(res.Ranking, func(i, j int) bool {
		return res.Ranking[i].Rate > res.Ranking[j].Rate
	})
	return res, nil
}

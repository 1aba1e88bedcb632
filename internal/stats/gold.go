package stats

import "github.com/pable/go-lol-metrics/internal/model"

// Outcome labels used by GoldByOutcome.
const (
	OutcomeLoss = "Loss"
	OutcomeWin  = "Win"
)

// OutcomeGold is the mean gold earned in one match outcome.
type OutcomeGold struct {
	Outcome  string
	Games    int
	MeanGold float64
}

// GoldResult holds at most two entries, losses before wins. An outcome with
// no rows is omitted.
type GoldResult struct {
	Status   Status
	Outcomes []OutcomeGold
}

// Lookup returns the entry for outcome ("Win" or "Loss").
func (r GoldResult) Lookup(outcome string) (OutcomeGold, bool) {
	for _, o := range r.Outcomes {
		if o.Outcome == outcome {
			return o, true
		}
	}
	return OutcomeGold{}, false
}

// GoldByOutcome averages gold earned separately over lost and won games.
// No sample threshold applies.
func GoldByOutcome(d *model.Dataset) (GoldResult, error) {
	var res GoldResult
	if err := d.Require("gold", model.ColWin, model.ColGoldEarned); err != nil {
		return res, err
	}
	if d.Len() == 0 {
		res.Status = StatusNoData
		return res, nil
	}

	var sum [2]float64
	var n [2]int
	for i := range d.Rows {
		idx := 0
		if d.Rows[i].Win {
			idx = 1
		}
		sum[idx] += d.Rows[i].GoldEarned
		n[idx]++
	}

	labels := [2]string{OutcomeLoss, OutcomeWin}
	for idx := range labels {
		if n[idx] == 0 {
			continue
		}
		res.Outcomes = append(res.Outcomes, OutcomeGold{
			Outcome:  labels[idx],
			Games:    n[idx],
			MeanGold: Round2(sum[idx] / float64(n[idx])),
		})
	}
	return res, nil
}

package stats

import (
	"sort"

	"github.com/pable/go-lol-metrics/internal/model"
)

// Eligible returns the keys whose count is at least minSamples, ascending.
// Groups only exist with one or more rows, so a threshold of 0 or 1 admits
// every group.
func Eligible(counts map[string]int, minSamples int) []string {
	var out []string
	for k, n := range counts {
		if n >= minSamples {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// restrictToChampions keeps only rows whose champion is in keep.
func restrictToChampions(d *model.Dataset, keep []string) *model.Dataset {
	set := make(map[string]struct{}, len(keep))
	for _, k := range keep {
		set[k] = struct{}{}
	}
	out := make([]model.MatchParticipant, 0, d.Len())
	for i := range d.Rows {
		if _, ok := set[d.Rows[i].ChampionName]; ok {
			out = append(out, d.Rows[i])
		}
	}
	return d.Subset(out)
}

// eligibleSubset runs the shared count -> threshold -> restrict pipeline on
// the champion key. It returns the full per-champion counts, the eligible
// champions in key order, and the restricted dataset.
func eligibleSubset(d *model.Dataset, minSamples int) (map[string]int, []string, *model.Dataset) {
	counts, _ := GroupCounts(d, model.ColChampion)
	keep := Eligible(counts, minSamples)
	return counts, keep, restrictToChampions(d, keep)
}

package stats

import (
	"fmt"

	"github.com/pable/go-lol-metrics/internal/model"
)

// placeholderPositions are position labels the match export uses for
// participants without a real role assignment.
var placeholderPositions = map[string]bool{
	"Invalid": true,
	"NONE":    true,
}

// Filter returns the rows of d whose categorical columns equal every value in
// predicates. Row order is preserved and an empty subset is not an error.
// Predicates on non-categorical columns are rejected.
func Filter(d *model.Dataset, predicates map[model.Column]string) (*model.Dataset, error) {
	for c := range predicates {
		if !c.IsCategorical() {
			return nil, fmt.Errorf("filter: column %q is not categorical", c)
		}
	}
	out := make([]model.MatchParticipant, 0, d.Len())
	for i := range d.Rows {
		if matchesAll(&d.Rows[i], predicates) {
			out = append(out, d.Rows[i])
		}
	}
	return d.Subset(out), nil
}

func matchesAll(p *model.MatchParticipant, predicates map[model.Column]string) bool {
	for c, want := range predicates {
		got, _ := p.Category(c)
		if got != want {
			return false
		}
	}
	return true
}

// ByMode restricts d to one game mode.
func ByMode(d *model.Dataset, mode string) *model.Dataset {
	out, _ := Filter(d, map[model.Column]string{model.ColGameMode: mode})
	return out
}

// ByPosition restricts d to one position.
func ByPosition(d *model.Dataset, position string) *model.Dataset {
	out, _ := Filter(d, map[model.Column]string{model.ColPosition: position})
	return out
}

// ByChampion restricts d to one character.
func ByChampion(d *model.Dataset, champion string) *model.Dataset {
	out, _ := Filter(d, map[model.Column]string{model.ColChampion: champion})
	return out
}

// Distinct returns the distinct values of a categorical column in order of
// first appearance.
func Distinct(d *model.Dataset, c model.Column) []string {
	seen := make(map[string]struct{})
	var out []string
	for i := range d.Rows {
		v, ok := d.Rows[i].Category(c)
		if !ok {
			return nil
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Modes lists the game modes present in d.
func Modes(d *model.Dataset) []string {
	return Distinct(d, model.ColGameMode)
}

// Positions lists every position label present in d, placeholders included.
func Positions(d *model.Dataset) []string {
	return Distinct(d, model.ColPosition)
}

// ValidPositions is Positions without the placeholder labels.
func ValidPositions(d *model.Dataset) []string {
	var out []string
	for _, p := range Positions(d) {
		if !placeholderPositions[p] {
			out = append(out, p)
		}
	}
	return out
}

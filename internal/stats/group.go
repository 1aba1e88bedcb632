package stats

import (
	"fmt"

	"github.com/pable/go-lol-metrics/internal/model"
)

// GroupCounts counts rows per value of the categorical key column. Keys are
// compared byte for byte; "Sivir" and "sivir " are different groups.
func GroupCounts(d *model.Dataset, key model.Column) (map[string]int, error) {
	if !key.IsCategorical() {
		return nil, fmt.Errorf("group: key %q is not categorical", key)
	}
	counts := make(map[string]int)
	for i := range d.Rows {
		k, _ := d.Rows[i].Category(key)
		counts[k]++
	}
	return counts, nil
}

// GroupMeans computes, per key value, the arithmetic mean of each numeric
// column. Only keys with at least one row appear, so no mean is ever taken
// over an empty group.
func GroupMeans(d *model.Dataset, key model.Column, cols ...model.Column) (map[string]map[model.Column]float64, error) {
	if !key.IsCategorical() {
		return nil, fmt.Errorf("group: key %q is not categorical", key)
	}
	if err := d.Require("group means", cols...); err != nil {
		return nil, err
	}

	type acc struct {
		n    int
		sums []float64
	}
	groups := make(map[string]*acc)
	for i := range d.Rows {
		r := &d.Rows[i]
		k, _ := r.Category(key)
		a := groups[k]
		if a == nil {
			a = &acc{sums: make([]float64, len(cols))}
			groups[k] = a
		}
		a.n++
		for j, c := range cols {
			v, ok := r.Numeric(c)
			if !ok {
				return nil, fmt.Errorf("group: column %q is not numeric", c)
			}
			a.sums[j] += v
		}
	}

	out := make(map[string]map[model.Column]float64, len(groups))
	for k, a := range groups {
		m := make(map[model.Column]float64, len(cols))
		for j, c := range cols {
			m[c] = a.sums[j] / float64(a.n)
		}
		out[k] = m
	}
	return out, nil
}

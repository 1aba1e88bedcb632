package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pable/go-lol-metrics/internal/model"
)

// header maps known columns to their record index.
type header struct {
	idx    map[model.Column]int
	schema model.Schema
}

// newHeader resolves the header row. Unknown columns are ignored, the first
// of duplicate names wins, and a missing identity column fails the load.
func newHeader(names []string) (header, error) {
	known := make(map[string]model.Column, len(model.AllColumns))
	for _, c := range model.AllColumns {
		known[string(c)] = c
	}

	h := header{idx: make(map[model.Column]int)}
	var present []model.Column
	for i, n := range names {
		n = strings.TrimSpace(strings.TrimPrefix(n, "\ufeff"))
		c, ok := known[n]
		if !ok {
			continue
		}
		if _, dup := h.idx[c]; dup {
			continue
		}
		h.idx[c] = i
		present = append(present, c)
	}
	h.schema = model.NewSchema(present...)
	if missing := h.schema.Missing(model.IdentityColumns...); len(missing) > 0 {
		return header{}, &model.MissingColumnError{Op: "load", Columns: missing}
	}
	return h, nil
}

// field returns the trimmed cell for c, or "" if the column is absent or
// the record is short.
func (h header) field(rec []string, c model.Column) string {
	i, ok := h.idx[c]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func (h header) parse(rec []string) (model.MatchParticipant, error) {
	p := model.MatchParticipant{
		GameMode:     h.field(rec, model.ColGameMode),
		Position:     h.field(rec, model.ColPosition),
		ChampionName: h.field(rec, model.ColChampion),
	}
	var err error
	if p.Win, err = parseWin(h.field(rec, model.ColWin)); err != nil {
		return p, fmt.Errorf("%s: %w", model.ColWin, err)
	}
	counts := []struct {
		col model.Column
		dst *int
	}{
		{model.ColKills, &p.Kills},
		{model.ColDeaths, &p.Deaths},
		{model.ColAssists, &p.Assists},
	}
	for _, f := range counts {
		if *f.dst, err = parseCount(h.field(rec, f.col)); err != nil {
			return p, fmt.Errorf("%s: %w", f.col, err)
		}
	}
	for i, c := range model.ItemColumns {
		if p.Items[i], err = parseCount(h.field(rec, c)); err != nil {
			return p, fmt.Errorf("%s: %w", c, err)
		}
	}
	if p.GoldEarned, err = parseAmount(h.field(rec, model.ColGoldEarned)); err != nil {
		return p, fmt.Errorf("%s: %w", model.ColGoldEarned, err)
	}
	return p, nil
}

// parseWin accepts the spellings spreadsheet and dataframe exports produce:
// true/false in any case, 1/0 and 1.0/0.0.
func parseWin(s string) (bool, error) {
	if b, err := strconv.ParseBool(s); err == nil {
		return b, nil
	}
	switch strings.ToLower(s) {
	case "1.0":
		return true, nil
	case "0.0":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}

// parseCount reads a non-negative integer. Whole floats such as "3031.0"
// are accepted; an empty cell is 0.
func parseCount(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("invalid integer %q", s)
		}
		n = int(f)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative value %d", n)
	}
	return n, nil
}

// parseAmount reads a non-negative number; an empty cell is 0.
func parseAmount(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	if f < 0 {
		return 0, fmt.Errorf("negative value %v", f)
	}
	return f, nil
}

// Package model holds the match-participant record and the typed column schema
// shared by the loader and the analysis core.
package model

import (
	"fmt"
	"strings"
)

// Column names a dataset column. The string value is the header used by the
// match export the tool reads.
type Column string

const (
	ColGameMode   Column = "game_mode"
	ColPosition   Column = "individual_position"
	ColChampion   Column = "champion_name"
	ColWin        Column = "win"
	ColKills      Column = "kills"
	ColDeaths     Column = "deaths"
	ColAssists    Column = "assists"
	ColGoldEarned Column = "gold_earned"
	ColItem0      Column = "item0"
	ColItem1      Column = "item1"
	ColItem2      Column = "item2"
	ColItem3      Column = "item3"
	ColItem4      Column = "item4"
	ColItem5      Column = "item5"
	ColItem6      Column = "item6"
)

// NumItemSlots is the number of equipment slots per participant (six items plus trinket).
const NumItemSlots = 7

// NoItem is the identifier stored in an empty equipment slot.
const NoItem = 0

// ItemColumns lists the equipment-slot columns in slot order.
var ItemColumns = []Column{ColItem0, ColItem1, ColItem2, ColItem3, ColItem4, ColItem5, ColItem6}

// IdentityColumns must be present in every dataset; a row cannot be placed
// in a mode, position or character group without them.
var IdentityColumns = []Column{ColGameMode, ColPosition, ColChampion, ColWin}

// MetricColumns are optional at load time. Analyzers that need one check for
// it through Dataset.Require.
var MetricColumns = append([]Column{ColKills, ColDeaths, ColAssists, ColGoldEarned}, ItemColumns...)

// AllColumns is IdentityColumns followed by MetricColumns.
var AllColumns = append(append([]Column{}, IdentityColumns...), MetricColumns...)

// IsCategorical reports whether the column holds a string category.
func (c Column) IsCategorical() bool {
	switch c {
	case ColGameMode, ColPosition, ColChampion:
		return true
	}
	return false
}

// MatchParticipant is one player's line in one match.
type MatchParticipant struct {
	GameMode     string
	Position     string
	ChampionName string
	Win          bool
	Kills        int
	Deaths       int
	Assists      int
	GoldEarned   float64
	Items        [NumItemSlots]int
}

// Category returns the value of a categorical column.
func (p *MatchParticipant) Category(c Column) (string, bool) {
	switch c {
	case ColGameMode:
		return p.GameMode, true
	case ColPosition:
		return p.Position, true
	case ColChampion:
		return p.ChampionName, true
	}
	return "", false
}

// Numeric returns the value of a numeric column. The win flag counts as 0 or 1.
func (p *MatchParticipant) Numeric(c Column) (float64, bool) {
	switch c {
	case ColWin:
		if p.Win {
			return 1, true
		}
		return 0, true
	case ColKills:
		return float64(p.Kills), true
	case ColDeaths:
		return float64(p.Deaths), true
	case ColAssists:
		return float64(p.Assists), true
	case ColGoldEarned:
		return p.GoldEarned, true
	}
	for i, ic := range ItemColumns {
		if c == ic {
			return float64(p.Items[i]), true
		}
	}
	return 0, false
}

// Schema records which columns a loaded dataset actually carried.
type Schema struct {
	present map[Column]struct{}
}

// NewSchema returns a schema containing cols.
func NewSchema(cols ...Column) Schema {
	s := Schema{present: make(map[Column]struct{}, len(cols))}
	for _, c := range cols {
		s.present[c] = struct{}{}
	}
	return s
}

// FullSchema returns a schema with every known column present.
func FullSchema() Schema {
	return NewSchema(AllColumns...)
}

// Has reports whether c is present.
func (s Schema) Has(c Column) bool {
	_, ok := s.present[c]
	return ok
}

// Missing returns the subset of cols that are absent, in argument order.
func (s Schema) Missing(cols ...Column) []Column {
	var out []Column
	for _, c := range cols {
		if !s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Columns returns the present columns in canonical order.
func (s Schema) Columns() []Column {
	var out []Column
	for _, c := range AllColumns {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// MissingColumnError is returned when a column an operation depends on is
// absent from the dataset.
type MissingColumnError struct {
	Op      string
	Columns []Column
}

func (e *MissingColumnError) Error() string {
	names := make([]string, len(e.Columns))
	for i, c := range e.Columns {
		names[i] = string(c)
	}
	if e.Op == "" {
		return fmt.Sprintf("missing column(s): %s", strings.Join(names, ", "))
	}
	return fmt.Sprintf("%s: missing column(s): %s", e.Op, strings.Join(names, ", "))
}

// Dataset is an ordered, read-only collection of participant rows together
// with the schema they were loaded with.
type Dataset struct {
	Schema Schema
	Rows   []MatchParticipant
}

// NewDataset wraps rows. The slice is not copied.
func NewDataset(schema Schema, rows []MatchParticipant) *Dataset {
	return &Dataset{Schema: schema, Rows: rows}
}

// Len returns the number of rows; a nil dataset has none.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// Require returns a *MissingColumnError naming op if any of cols is absent.
func (d *Dataset) Require(op string, cols ...Column) error {
	missing := d.Schema.Missing(cols...)
	if len(missing) == 0 {
		return nil
	}
	return &MissingColumnError{Op: op, Columns: missing}
}

// Subset returns a new dataset with the same schema holding rows.
func (d *Dataset) Subset(rows []MatchParticipant) *Dataset {
	return &Dataset{Schema: d.Schema, Rows: rows}
}

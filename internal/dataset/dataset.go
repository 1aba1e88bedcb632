// Package dataset loads match-participant exports from disk and validates
// them against the column schema once, at the boundary.
//
// Supported inputs are chosen by file name: .csv, .csv.gz, .csv.zst, .xlsx
// and SQLite files (.db, .sqlite, .sqlite3) holding a "matches" table.
// postgres:// and libsql:// URLs read the same table from a database server.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/pable/go-lol-metrics/internal/model"
	"github.com/pable/go-lol-metrics/internal/storage"
)

// Format identifies how an export is encoded on disk.
type Format string

const (
	FormatCSV     Format = "csv"
	FormatCSVGzip Format = "csv.gz"
	FormatCSVZstd Format = "csv.zst"
	FormatXLSX    Format = "xlsx"
	FormatSQLite  Format = "sqlite"
	FormatRemote  Format = "remote"
)

// ErrUnsupportedFormat is returned for file names with no known extension.
var ErrUnsupportedFormat = errors.New("unsupported dataset format (want .csv, .csv.gz, .csv.zst, .xlsx, .db or .sqlite)")

// DetectFormat picks the format from the file name.
func DetectFormat(path string) (Format, error) {
	if storage.IsRemote(path) {
		return FormatRemote, nil
	}
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.HasSuffix(name, ".csv.gz"):
		return FormatCSVGzip, nil
	case strings.HasSuffix(name, ".csv.zst"):
		return FormatCSVZstd, nil
	case strings.HasSuffix(name, ".csv"):
		return FormatCSV, nil
	case strings.HasSuffix(name, ".xlsx"):
		return FormatXLSX, nil
	case strings.HasSuffix(name, ".db"), strings.HasSuffix(name, ".sqlite"), strings.HasSuffix(name, ".sqlite3"):
		return FormatSQLite, nil
	}
	return "", fmt.Errorf("%s: %w", filepath.Base(path), ErrUnsupportedFormat)
}

// Load reads the export at path.
func Load(path string) (*model.Dataset, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	if format != FormatRemote {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("dataset: %w", err)
		}
	}

	log.Debug().Str("path", redact(path)).Str("format", string(format)).Msg("loading dataset")

	var d *model.Dataset
	switch format {
	case FormatCSV, FormatCSVGzip, FormatCSVZstd:
		d, err = loadCSVFile(path, format)
	case FormatXLSX:
		d, err = loadXLSX(path)
	case FormatSQLite, FormatRemote:
		d, err = loadSQL(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", sourceName(path, format), err)
	}

	log.Debug().Str("path", redact(path)).Int("rows", d.Len()).
		Int("columns", len(d.Schema.Columns())).Msg("dataset loaded")
	return d, nil
}

// recordReader is the row source every format is adapted to: the header on
// the first call, one record per call after that, then io.EOF.
type recordReader interface {
	Read() ([]string, error)
}

// build consumes src and converts every record into a participant row.
// Records with an empty champion name are skipped.
func build(src recordReader) (*model.Dataset, error) {
	names, err := src.Read()
	if err == io.EOF {
		return nil, errors.New("empty file: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	h, err := newHeader(names)
	if err != nil {
		return nil, err
	}

	var rows []model.MatchParticipant
	skipped := 0
	for line := 2; ; line++ {
		rec, err := src.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		if blank(rec) {
			continue
		}
		if h.field(rec, model.ColChampion) == "" {
			skipped++
			continue
		}
		p, err := h.parse(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		rows = append(rows, p)
	}
	if skipped > 0 {
		log.Warn().Int("rows", skipped).Msg("skipped rows without a champion name")
	}
	return model.NewDataset(h.schema, rows), nil
}

func blank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

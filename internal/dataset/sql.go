package dataset

import (
	"net/url"
	"path/filepath"

	"github.com/pable/go-lol-metrics/internal/model"
	"github.com/pable/go-lol-metrics/internal/storage"
)

// loadSQL reads the participant table of a SQLite file or database server.
func loadSQL(source string) (*model.Dataset, error) {
	db, err := storage.Open(source)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.ReadTable(storage.DefaultTable)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return build(rows)
}

// redact strips the password and query string (which may carry an auth
// token) from a database URL. File paths are returned unchanged.
func redact(source string) string {
	if !storage.IsRemote(source) {
		return source
	}
	u, err := url.Parse(source)
	if err != nil {
		return "<invalid url>"
	}
	u.RawQuery = ""
	return u.Redacted()
}

func sourceName(source string, format Format) string {
	if format == FormatRemote {
		return redact(source)
	}
	return filepath.Base(source)
}

package dataset

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/pable/go-lol-metrics/internal/model"
)

// ReadCSV parses a comma-separated export with a header row.
func ReadCSV(r io.Reader) (*model.Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true
	return build(copyingReader{cr})
}

// copyingReader hands out a fresh slice per record; build keeps the header
// slice while reading the rest.
type copyingReader struct {
	r *csv.Reader
}

func (c copyingReader) Read() ([]string, error) {
	rec, err := c.r.Read()
	if err != nil {
		return nil, err
	}
	return append([]string(nil), rec...), nil
}

// loadCSVFile opens path and decompresses it according to format.
func loadCSVFile(path string, format Format) (*model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var src io.Reader = f
	switch format {
	case FormatCSVGzip:
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer gz.Close()
		src = gz
	case FormatCSVZstd:
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		defer dec.Close()
		src = dec
	}
	return ReadCSV(src)
}

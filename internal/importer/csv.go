package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/dashfolio-dev/dashfolio/internal/model"
)

// CSVParser parses header-first CSV exports. Rows shorter than the header
// leave their trailing fields absent; extra cells are dropped.
type CSVParser struct{}

// Format returns the parser name.
func (p *CSVParser) Format() string { return "csv" }

// Parse reads a CSV document into a Dataset.
func (p *CSVParser) Parse(r io.Reader) (model.Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return model.Dataset{}, fmt.Errorf("reading CSV: %w", err)
	}

	if len(records) == 0 {
		return model.Dataset{}, nil
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	columns := uniqueHeaders(header, "")

	ds := model.Dataset{Columns: columns}
	for _, rec := range records[1:] {
		var row model.Record
		for i, col := range columns {
			if i >= len(rec) {
				break
			}
			row.Set(col, rec[i])
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds, nil
}

package importer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/dashfolio-dev/dashfolio/internal/model"
)

// blankHeader names header cells that are empty in a spreadsheet.
const blankHeader = "__EMPTY"

// XLSXParser parses the first sheet of an Excel workbook. The first row is
// the header and every header field is present on every row, "" if blank.
type XLSXParser struct{}

// Format returns the parser name.
func (p *XLSXParser) Format() string { return "xlsx" }

// Parse reads a workbook into a Dataset.
func (p *XLSXParser) Parse(r io.Reader) (model.Dataset, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("opening workbook: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return model.Dataset{}, nil
	}

	rows, err := wb.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return model.Dataset{}, fmt.Errorf("reading sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return model.Dataset{}, nil
	}

	columns := uniqueHeaders(rows[0], blankHeader)
	ds := model.Dataset{Columns: columns}
	for _, cells := range rows[1:] {
		if isBlankRow(cells) {
			continue
		}
		var row model.Record
		for i, col := range columns {
			v := ""
			if i < len(cells) {
				v = cells[i]
			}
			row.Set(col, v)
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds, nil
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}

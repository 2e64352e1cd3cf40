// Package parser converts raw workbook content into normalized dashboard
// values.
package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pmdash/dashfeed-go/pkg/dashfeed/models"
)

// FindSheet resolves a logical dataset to a concrete sheet name by trying
// candidates in order against the workbook's sheet list. Matching is exact
// and case-sensitive; the first candidate present wins.
func FindSheet(f *excelize.File, candidates []string) (string, error) {
	sheetNames := f.GetSheetList()
	for _, name := range candidates {
		for _, have := range sheetNames {
			if name == have {
				return name, nil
			}
		}
	}
	return "", &SheetNotFoundError{Candidates: candidates, SheetNames: sheetNames}
}

// ReadSheet loads a sheet into the header-keyed row model. The first row is
// the header row; each later row is keyed by those headers with cell
// classification applied. Cells beyond the header width are dropped, short
// rows are padded with empty values.
func ReadSheet(f *excelize.File, name string) (*models.Sheet, error) {
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, err
	}

	sheet := &models.Sheet{Name: name}
	if len(rows) == 0 {
		return sheet, nil
	}

	for _, header := range rows[0] {
		sheet.Columns = append(sheet.Columns, strings.TrimSpace(header))
	}

	for _, raw := range rows[1:] {
		row := make(models.Row, len(sheet.Columns))
		for i, col := range sheet.Columns {
			if col == "" {
				continue
			}
			if i < len(raw) {
				row[col] = Classify(raw[i])
			} else {
				row[col] = models.EmptyValue()
			}
		}
		sheet.Rows = append(sheet.Rows, row)
	}

	return sheet, nil
}

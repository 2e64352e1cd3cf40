package parser

import (
	"sort"

	"github.com/pmdash/dashfeed-go/pkg/dashfeed/models"
)

// RowMapper turns one header-keyed row into a candidate record.
type RowMapper func(models.Row) models.Record

// BuildRecords validates the sheet against the required columns, drops rows
// with no data at all, and maps the rest in sheet order. The existence check
// runs on the mapped record, not the raw row, so a row whose only content
// sits outside the identifying fields is still dropped. Duplicate ids pass
// through unchanged.
func BuildRecords(sheet *models.Sheet, required []string, mapper RowMapper) ([]models.Record, error) {
	have := make(map[string]struct{}, len(sheet.Columns))
	for _, col := range sheet.Columns {
		have[col] = struct{}{}
	}
	var missing []string
	for _, col := range required {
		if _, ok := have[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &SchemaError{SheetName: sheet.Name, Missing: missing, Found: sheet.Columns}
	}

	records := []models.Record{}
	for _, row := range sheet.Rows {
		if rowEmpty(row) {
			continue
		}
		rec := mapper(row)
		if rec.Blank() {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// rowEmpty reports whether every cell in the row is missing.
func rowEmpty(row models.Row) bool {
	for _, v := range row {
		if v.Kind != models.KindEmpty {
			return false
		}
	}
	return true
}

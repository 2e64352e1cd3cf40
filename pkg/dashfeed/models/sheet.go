package models

// Row maps a column header to its cell value. Headers missing from a short
// physical row read back as the zero Value, which is KindEmpty.
type Row map[string]Value

// Sheet is a header-keyed view of one workbook tab.
type Sheet struct {
	// Name is the concrete sheet name an alias resolved to.
	Name string
	// Columns preserves the header row order, trimmed.
	Columns []string
	// Rows holds the data rows in sheet order.
	Rows []Row
}

package parser

import "fmt"

// SheetNotFoundError reports that none of a dataset's candidate sheet names
// exist in the workbook. It carries both lists so a spreadsheet author can
// see what was tried against what is actually there.
type SheetNotFoundError struct {
	Candidates []string
	SheetNames []string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("no sheet found: tried %v, workbook has %v", e.Candidates, e.SheetNames)
}

// SchemaError reports required columns missing from a located sheet.
type SchemaError struct {
	SheetName string
	Missing   []string
	Found     []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("sheet %q missing columns %v, found %v", e.SheetName, e.Missing, e.Found)
}

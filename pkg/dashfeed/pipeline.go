package dashfeed

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/pmdash/dashfeed-go/internal/log"
	"github.com/pmdash/dashfeed-go/pkg/dashfeed/models"
	"github.com/pmdash/dashfeed-go/pkg/dashfeed/output"
	"github.com/pmdash/dashfeed-go/pkg/dashfeed/parser"
)

// timestampLayout renders e.g. "2024-05-01 14:30 AWST".
const timestampLayout = "2006-01-02 15:04 MST"

// DatasetResult summarizes one written dataset.
type DatasetResult struct {
	// Name is the logical dataset name.
	Name string
	// SheetName is the concrete sheet the dataset was read from.
	SheetName string
	// OutputPath is where the JSON document was written.
	OutputPath string
	// ItemCount is the number of records in the document.
	ItemCount int
}

// Run executes the whole pipeline: open the workbook once, then for each
// dataset locate its sheet, build records, and replace the JSON document.
// All datasets of one run share a single generation timestamp. Any
// structural failure (missing workbook, sheet, or columns) aborts the run;
// cell-level oddities never do.
func Run(workbookPath string, specs []DatasetSpec, opts Options) ([]DatasetResult, error) {
	logger := log.GetLogger()

	if _, err := os.Stat(workbookPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrWorkbookNotFound, workbookPath)
	}

	loc, err := opts.location()
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", opts.Timezone, err)
	}
	stamp := opts.now().In(loc).Format(timestampLayout)

	f, err := excelize.OpenFile(workbookPath)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", workbookPath, err)
	}
	defer f.Close()

	results := make([]DatasetResult, 0, len(specs))
	for _, spec := range specs {
		sheetName, err := parser.FindSheet(f, spec.SheetCandidates)
		if err != nil {
			return nil, fmt.Errorf("dataset %s: %w", spec.Name, err)
		}
		logger.Debugf("dataset %s resolved to sheet %q", spec.Name, sheetName)

		sheet, err := parser.ReadSheet(f, sheetName)
		if err != nil {
			return nil, fmt.Errorf("dataset %s: read sheet %q: %w", spec.Name, sheetName, err)
		}

		records, err := parser.BuildRecords(sheet, spec.RequiredColumns, spec.Mapper)
		if err != nil {
			return nil, fmt.Errorf("dataset %s: %w", spec.Name, err)
		}
		logger.Debugf("dataset %s: %d rows in, %d records out", spec.Name, len(sheet.Rows), len(records))

		doc := models.DatasetOutput{LastUpdated: stamp, Items: records}
		if err := output.WriteJSON(spec.OutputPath, doc); err != nil {
			return nil, fmt.Errorf("dataset %s: write %s: %w", spec.Name, spec.OutputPath, err)
		}

		results = append(results, DatasetResult{
			Name:       spec.Name,
			SheetName:  sheetName,
			OutputPath: spec.OutputPath,
			ItemCount:  len(records),
		})
	}

	return results, nil
}

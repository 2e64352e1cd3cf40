package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/pmdash/dashfeed-go/pkg/dashfeed/models"
)

func idTitleMapper(row models.Row) models.Record {
	return models.RiskRecord{
		ID:          strings.TrimSpace(AsText(row["risk_id"])),
		Description: strings.TrimSpace(AsText(row["title"])),
		Status:      strings.TrimSpace(AsText(row["status"])),
	}
}

func testSheet(rows ...models.Row) *models.Sheet {
	return &models.Sheet{
		Name:    "Risks",
		Columns: []string{"risk_id", "title", "status"},
		Rows:    rows,
	}
}

func TestBuildRecordsMissingColumns(t *testing.T) {
	sheet := &models.Sheet{
		Name:    "Risks",
		Columns: []string{"risk_id", "title"},
	}

	_, err := BuildRecords(sheet, []string{"risk_id", "title", "status", "rating"}, idTitleMapper)
	if err == nil {
		t.Fatal("expected SchemaError, got nil")
	}
	var se *SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError, got %T", err)
	}
	if len(se.Missing) != 2 || se.Missing[0] != "rating" || se.Missing[1] != "status" {
		t.Errorf("expected sorted missing [rating status], got %v", se.Missing)
	}
	if len(se.Found) != 2 {
		t.Errorf("expected found columns from sheet, got %v", se.Found)
	}
}

func TestBuildRecordsSkipsBlankRows(t *testing.T) {
	sheet := testSheet(
		models.Row{"risk_id": models.TextValue("R-1"), "title": models.TextValue("First"), "status": models.TextValue("Open")},
		models.Row{"risk_id": models.EmptyValue(), "title": models.EmptyValue(), "status": models.EmptyValue()},
		models.Row{"risk_id": models.TextValue("R-2"), "title": models.TextValue("Second"), "status": models.TextValue("Open")},
	)

	records, err := BuildRecords(sheet, []string{"risk_id", "title", "status"}, idTitleMapper)
	if err != nil {
		t.Fatalf("BuildRecords failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

func TestBuildRecordsExistenceInvariant(t *testing.T) {
	// Both identifying fields blank after trimming: dropped even though the
	// status cell has data. Id alone is enough to keep a row.
	sheet := testSheet(
		models.Row{"risk_id": models.TextValue("  "), "title": models.TextValue(""), "status": models.TextValue("Open")},
		models.Row{"risk_id": models.TextValue("R-1"), "title": models.TextValue(""), "status": models.TextValue("Open")},
	)

	records, err := BuildRecords(sheet, []string{"risk_id", "title", "status"}, idTitleMapper)
	if err != nil {
		t.Fatalf("BuildRecords failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records[0].(models.RiskRecord)
	if rec.ID != "R-1" {
		t.Errorf("expected R-1, got %q", rec.ID)
	}
}

func TestBuildRecordsPreservesOrderAndDuplicates(t *testing.T) {
	sheet := testSheet(
		models.Row{"risk_id": models.TextValue("R-2"), "title": models.TextValue("b"), "status": models.TextValue("Open")},
		models.Row{"risk_id": models.TextValue("R-1"), "title": models.TextValue("a"), "status": models.TextValue("Open")},
		models.Row{"risk_id": models.TextValue("R-1"), "title": models.TextValue("dup"), "status": models.TextValue("Open")},
	)

	records, err := BuildRecords(sheet, []string{"risk_id", "title", "status"}, idTitleMapper)
	if err != nil {
		t.Fatalf("BuildRecords failed: %v", err)
	}
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.(models.RiskRecord).ID
	}
	want := []string{"R-2", "R-1", "R-1"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected ids %v, got %v", want, ids)
		}
	}
}

func TestBuildRecordsEmptySheet(t *testing.T) {
	records, err := BuildRecords(testSheet(), []string{"risk_id", "title", "status"}, idTitleMapper)
	if err != nil {
		t.Fatalf("BuildRecords failed: %v", err)
	}
	if records == nil {
		t.Fatal("expected non-nil empty slice so the JSON items array is [], not null")
	}
	if len(records) != 0 {
		t.Errorf("expected 0 records, got %d", len(records))
	}
}

package dashfeed

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pmdash/dashfeed-go/pkg/dashfeed/models"
	"github.com/pmdash/dashfeed-go/pkg/dashfeed/parser"
)

// DatasetSpec describes one sheet-to-JSON dataset.
type DatasetSpec struct {
	// Name is the logical dataset name used in config and error messages.
	Name string
	// SheetCandidates are tried in order against the workbook's sheet names.
	SheetCandidates []string
	// RequiredColumns must all appear in the located sheet's header row.
	RequiredColumns []string
	// OutputPath is the JSON destination.
	OutputPath string
	// Mapper extracts one record from a header-keyed row.
	Mapper parser.RowMapper
}

// RisksSpec returns the risk-register dataset writing to outputPath.
func RisksSpec(outputPath string) DatasetSpec {
	return DatasetSpec{
		Name:            "risks",
		SheetCandidates: []string{"Risks", "Risk"},
		RequiredColumns: []string{"risk_id", "title", "status", "rating", "due_date", "owner_role", "last_updated"},
		OutputPath:      outputPath,
		Mapper:          mapRiskRow,
	}
}

// TqsSpec returns the technical-query dataset writing to outputPath.
func TqsSpec(outputPath string) DatasetSpec {
	return DatasetSpec{
		Name:            "tqs",
		SheetCandidates: []string{"TQs", "TQ", "Tqs"},
		RequiredColumns: []string{"tq_id", "title", "status"},
		OutputPath:      outputPath,
		Mapper:          mapTqRow,
	}
}

// DefaultSpecs returns both datasets with the original dashboard layout:
// JSON under data/ relative to the repository root.
func DefaultSpecs() []DatasetSpec {
	return []DatasetSpec{
		RisksSpec("data/risks.json"),
		TqsSpec("data/tqs.json"),
	}
}

func mapRiskRow(row models.Row) models.Record {
	return models.RiskRecord{
		ID:             strings.TrimSpace(parser.AsText(row["risk_id"])),
		Description:    strings.TrimSpace(parser.AsText(row["title"])),
		Status:         strings.TrimSpace(parser.AsText(row["status"])),
		Rating:         parser.NormaliseRating(row["rating"]),
		OwnerRole:      strings.TrimSpace(parser.AsText(row["owner_role"])),
		NextActionDate: parser.ToISODate(row["due_date"]),
		LastUpdatedRow: parser.ToISODate(row["last_updated"]),
	}
}

func mapTqRow(row models.Row) models.Record {
	return models.TqRecord{
		ID:     strings.TrimSpace(parser.AsText(row["tq_id"])),
		Title:  strings.TrimSpace(parser.AsText(row["title"])),
		Status: strings.TrimSpace(parser.AsText(row["status"])),
	}
}

// configFile is the YAML shape accepted by LoadSpecs. Only sheet aliases and
// output paths are tunable per dataset; column sets and field mapping define
// the record schema the dashboard consumes and stay fixed in code.
type configFile struct {
	Timezone string          `yaml:"timezone"`
	Datasets []configDataset `yaml:"datasets"`
}

type configDataset struct {
	Name   string   `yaml:"name"`
	Sheets []string `yaml:"sheets"`
	Output string   `yaml:"output"`
}

// LoadSpecs reads a YAML config file and materializes dataset specs, plus the
// configured timezone (empty if unset). A config listing no datasets yields
// the defaults; an unknown dataset name fails since no mapper exists for it.
func LoadSpecs(path string) ([]DatasetSpec, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, "", fmt.Errorf("invalid config %s: %w", path, err)
	}

	var specs []DatasetSpec
	for _, d := range cfg.Datasets {
		if d.Output == "" {
			return nil, "", fmt.Errorf("dataset %q in %s has no output path", d.Name, path)
		}
		var spec DatasetSpec
		switch d.Name {
		case "risks":
			spec = RisksSpec(d.Output)
		case "tqs":
			spec = TqsSpec(d.Output)
		default:
			return nil, "", fmt.Errorf("unknown dataset %q in %s (must be risks or tqs)", d.Name, path)
		}
		if len(d.Sheets) > 0 {
			spec.SheetCandidates = d.Sheets
		}
		specs = append(specs, spec)
	}
	if len(specs) == 0 {
		specs = DefaultSpecs()
	}
	return specs, cfg.Timezone, nil
}

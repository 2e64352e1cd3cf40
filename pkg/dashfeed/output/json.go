// Package output serializes dashboard documents to disk.
package output

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pmdash/dashfeed-go/pkg/dashfeed/models"
)

// ToJSON renders a dataset document with the 2-space indentation the
// dashboard's loader expects. Key order follows the struct field order.
func ToJSON(doc models.DatasetOutput) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// WriteJSON replaces the file at path with the serialized document, creating
// parent directories as needed. The document is fully materialized before
// the write, so the file is never left half-streamed.
func WriteJSON(path string, doc models.DatasetOutput) error {
	data, err := ToJSON(doc)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

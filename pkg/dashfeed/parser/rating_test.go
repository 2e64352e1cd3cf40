package parser

import (
	"testing"

	"github.com/pmdash/dashfeed-go/pkg/dashfeed/models"
)

func TestNormaliseRating(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"red", "Red"},
		{"RED", "Red"},
		{"r", "Red"},
		{"High", "Red"},
		{"HIGH", "Red"},
		{"amber", "Amber"},
		{"orange", "Amber"},
		{"A", "Amber"},
		{"medium", "Amber"},
		{"med", "Amber"},
		{"green", "Green"},
		{"G", "Green"},
		{"low", "Green"},
		{"  low  ", "Green"},
		{"blocked", "Blocked"},
		{"BLOCKED", "Blocked"},
		{"n/a", "N/a"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := NormaliseRating(models.TextValue(tt.input)); got != tt.expected {
			t.Errorf("NormaliseRating(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormaliseRatingEmptyCell(t *testing.T) {
	if got := NormaliseRating(models.EmptyValue()); got != "" {
		t.Errorf("NormaliseRating(empty) = %q, expected \"\"", got)
	}
}

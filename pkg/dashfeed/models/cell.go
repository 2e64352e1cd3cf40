// Package models defines the data shapes flowing through dashboard extraction.
package models

import "time"

// ValueKind discriminates the cell value union.
type ValueKind int

const (
	// KindEmpty marks a missing, blank, or NaN-equivalent cell.
	KindEmpty ValueKind = iota
	// KindText marks a cell carrying plain text (including numbers-as-text).
	KindText
	// KindDate marks a cell carrying calendar-date semantics.
	KindDate
)

// Value is a spreadsheet cell value at the extraction boundary. Exactly one
// of Text or Date is meaningful, selected by Kind. Every downstream coercion
// is a total function over this union, so messy workbook input never raises.
type Value struct {
	Kind ValueKind
	Text string
	Date time.Time
}

// EmptyValue returns the empty cell value.
func EmptyValue() Value {
	return Value{Kind: KindEmpty}
}

// TextValue returns a text cell value. The string is kept verbatim;
// trimming happens at the point of use.
func TextValue(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// DateValue returns a date cell value. Time-of-day is carried but discarded
// when the value is rendered as a calendar date.
func DateValue(t time.Time) Value {
	return Value{Kind: KindDate, Date: t}
}

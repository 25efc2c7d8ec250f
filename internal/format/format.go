// Package format serializes extracted paystub records into tabular output.
// Records arrive in a caller-determined order which is never re-sorted; only
// field order is the formatter's business.
package format

import (
	"encoding/json"
	"fmt"

	"github.com/tolu-akinola/paystub-tracker/constants"
	"github.com/tolu-akinola/paystub-tracker/internal/entity"
)

// Mode selects the output representation.
type Mode string

const (
	ModeJSON Mode = "json"
	ModeCSV  Mode = "csv"
	ModeXLSX Mode = "xlsx"
)

// ParseMode validates a mode string from the CLI.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeJSON, ModeCSV, ModeXLSX:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// LabeledRecord pairs a record with its source label (the originating
// document name).
type LabeledRecord struct {
	Label  string
	Record *entity.Record
}

// Format serializes the record sequence in the given mode. An empty sequence
// produces an explicitly empty table, not an error.
func Format(records []LabeledRecord, mode Mode) ([]byte, error) {
	switch mode {
	case ModeJSON:
		return formatJSON(records)
	case ModeCSV:
		return formatCSV(records)
	case ModeXLSX:
		return formatXLSX(records)
	}
	return nil, fmt.Errorf("unknown output format %q", mode)
}

// formatJSON emits one object per record in extraction insertion order, with
// the source label as a leading "Source File" pair. Each object carries only
// its own fields; absent fields are omitted per record.
func formatJSON(records []LabeledRecord) ([]byte, error) {
	objs := make([]*entity.Record, 0, len(records))
	for _, lr := range records {
		obj := entity.NewRecord()
		obj.Set(constants.FieldSourceFile, lr.Label)
		for _, k := range lr.Record.Keys() {
			if k == constants.FieldSourceFile {
				continue
			}
			v, _ := lr.Record.Get(k)
			obj.Set(k, v)
		}
		objs = append(objs, obj)
	}
	return json.MarshalIndent(objs, "", "  ")
}

// transposeRows builds the row-per-field table: the header row carries each
// record's Pay Date, and every subsequent row is one field of the union of
// field names across records, blank where a record lacks it.
func transposeRows(records []LabeledRecord) [][]string {
	seen := make(map[string]struct{})
	var union []string
	for _, lr := range records {
		for _, k := range lr.Record.Keys() {
			if k == constants.FieldSourceFile {
				continue
			}
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				union = append(union, k)
			}
		}
	}

	header := []string{constants.FieldPayDate}
	for _, lr := range records {
		if v, ok := lr.Record.Get(constants.FieldPayDate); ok {
			header = append(header, v)
		} else {
			header = append(header, "Unknown")
		}
	}
	rows := [][]string{header}

	for _, field := range OrderFields(union) {
		if field == constants.FieldPayDate {
			continue // already the header row
		}
		row := []string{field}
		for _, lr := range records {
			v, _ := lr.Record.Get(field)
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return rows
}

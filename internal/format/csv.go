package format

import (
	"bytes"
	"encoding/csv"
)

// formatCSV renders the transposed table as CSV.
func formatCSV(records []LabeledRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(transposeRows(records)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

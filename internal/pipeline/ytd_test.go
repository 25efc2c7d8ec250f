package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tolu-akinola/paystub-tracker/internal/entity"
	"github.com/tolu-akinola/paystub-tracker/internal/format"
)

func labeled(label string, pairs ...string) format.LabeledRecord {
	rec := entity.NewRecord()
	for i := 0; i+1 < len(pairs); i += 2 {
		rec.Set(pairs[i], pairs[i+1])
	}
	return format.LabeledRecord{Label: label, Record: rec}
}

func TestForwardFillYTD(t *testing.T) {
	records := []format.LabeledRecord{
		labeled("jan.pdf",
			"Earnings Regular", "5000.00",
			"Earnings Regular YTD", "5000.00",
			"Deductions Hsa YTD", "250.00",
		),
		labeled("feb.pdf",
			"Earnings Regular", "5000.00",
			"Earnings Regular YTD", "10000.00",
			// Hsa row absent this month; the balance carries forward.
		),
		labeled("mar.pdf",
			"Earnings Regular", "5000.00",
			"Earnings Regular YTD", "15000.00",
			"Deductions Hsa YTD", "500.00",
		),
	}

	p := newTestPipeline(nil)
	p.forwardFillYTD(records)

	v, ok := records[1].Record.Get("Deductions Hsa YTD")
	require.True(t, ok)
	assert.Equal(t, "250.00", v)

	// Populated values are never rewritten.
	v, _ = records[2].Record.Get("Deductions Hsa YTD")
	assert.Equal(t, "500.00", v)
	v, _ = records[0].Record.Get("Earnings Regular YTD")
	assert.Equal(t, "5000.00", v)

	// This-period fields are untouched by the pass.
	assert.False(t, records[1].Record.Has("Deductions Hsa"))
}

func TestForwardFillYTD_NoEarlierValue(t *testing.T) {
	records := []format.LabeledRecord{
		labeled("jan.pdf", "Earnings Regular", "5000.00"),
		labeled("feb.pdf", "Earnings Regular YTD", "10000.00"),
	}
	p := newTestPipeline(nil)
	p.forwardFillYTD(records)

	// Nothing to fill from before the first occurrence.
	assert.False(t, records[0].Record.Has("Earnings Regular YTD"))
}

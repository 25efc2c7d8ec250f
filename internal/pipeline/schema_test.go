package pipeline

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tolu-akinola/paystub-tracker/internal/entity"
)

func TestValidateRecordSchema(t *testing.T) {
	schema := BuildRecordJSONSchema()

	rec := entity.NewRecord()
	rec.Set("Pay Date", "01/22/2024")
	rec.Set("Earnings Regular", "5000.00")
	rec.Set("Deductions Federal Income Tax", "-750.00")
	rec.Set("Other Benefits Current Match", "120.00")
	rec.Set("Taxable Wages This Period", "3484.56")

	b, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.NoError(t, ValidateJSONAgainstSchema(schema, b))
}

func TestValidateRecordSchema_Violations(t *testing.T) {
	schema := BuildRecordJSONSchema()

	cases := map[string]string{
		"bad date":      `{"Pay Date":"January 22"}`,
		"bad amount":    `{"Earnings Regular":"5 000 00"}`,
		"unknown field": `{"Gross Pay":"5000.00"}`,
	}
	for name, data := range cases {
		assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(data)), name)
	}
}

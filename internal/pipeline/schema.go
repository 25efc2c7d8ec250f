package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/tolu-akinola/paystub-tracker/constants"
)

// BuildRecordJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing one extracted record: date fields are MM/DD/YYYY
// shaped, and every discovered line-item field holds a canonical decimal
// amount.
func BuildRecordJSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			constants.FieldSourceFile:         map[string]any{"type": "string", "minLength": 1},
			constants.FieldPayDate:            dateProp(),
			constants.FieldPayPeriodBeginning: dateProp(),
			constants.FieldPayPeriodEnding:    dateProp(),
			constants.FieldTaxableWages:       amountProp(),
		},
		"patternProperties": map[string]any{
			`^(Earnings|Deductions|Other Benefits) `: amountProp(),
		},
		"additionalProperties": false,
	}
}

func dateProp() map[string]any {
	return map[string]any{"type": "string", "pattern": `^\d{1,2}/\d{1,2}/\d{4}$`}
}

func amountProp() map[string]any {
	return map[string]any{"type": "string", "pattern": `^-?\d*\.\d{2}$`}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("record.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("record.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("record does not match schema: %w", err)
	}
	return nil
}

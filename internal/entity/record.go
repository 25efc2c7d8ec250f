package entity

import (
	"bytes"
	"encoding/json"
)

// Record is one paystub's extracted fields: an insertion-ordered mapping from
// field name to string value. Field names are unique; absent fields are
// simply not present, never stored as empty strings.
type Record struct {
	keys []string
	vals map[string]string
}

func NewRecord() *Record {
	return &Record{vals: make(map[string]string)}
}

// Set inserts or overwrites a field. A field keeps its original position
// when overwritten.
func (r *Record) Set(name, value string) {
	if _, ok := r.vals[name]; !ok {
		r.keys = append(r.keys, name)
	}
	r.vals[name] = value
}

// Get returns the value for name and whether it is present.
func (r *Record) Get(name string) (string, bool) {
	v, ok := r.vals[name]
	return v, ok
}

// Has reports whether name is present.
func (r *Record) Has(name string) bool {
	_, ok := r.vals[name]
	return ok
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.keys)
}

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// MarshalJSON renders the record as a JSON object in insertion order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(r.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON rebuilds a record from a JSON object, preserving the
// object's key order.
func (r *Record) UnmarshalJSON(data []byte) error {
	r.keys = nil
	r.vals = make(map[string]string)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return &json.UnmarshalTypeError{Value: "non-object", Type: nil}
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)
		var val string
		if err := dec.Decode(&val); err != nil {
			return err
		}
		r.Set(key, val)
	}
	_, err = dec.Token() // closing brace
	return err
}

package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Record is one imported row: an ordered mapping from field name to value.
// A field is either present (possibly empty) or absent.
type Record struct {
	keys   []string
	values map[string]string
}

// NewRecord builds a Record from alternating field/value pairs.
// Panics on an odd number of arguments.
func NewRecord(pairs ...string) Record {
	if len(pairs)%2 != 0 {
		panic("model.NewRecord: odd number of arguments")
	}
	var r Record
	for i := 0; i < len(pairs); i += 2 {
		r.Set(pairs[i], pairs[i+1])
	}
	return r
}

// Get returns the value of field and whether it is present.
func (r Record) Get(field string) (string, bool) {
	v, ok := r.values[field]
	return v, ok
}

// Value returns the value of field, or def when the field is absent.
func (r Record) Value(field, def string) string {
	if v, ok := r.values[field]; ok {
		return v
	}
	return def
}

// Has reports whether field is present.
func (r Record) Has(field string) bool {
	_, ok := r.values[field]
	return ok
}

// Set assigns field, appending it to the field order if new.
func (r *Record) Set(field, value string) {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	if _, ok := r.values[field]; !ok {
		r.keys = append(r.keys, field)
	}
	r.values[field] = value
}

// Fields returns the present field names in order.
func (r Record) Fields() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of present fields.
func (r Record) Len() int { return len(r.keys) }

// MarshalJSON writes the record as a JSON object in field order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, fmt.Errorf("marshaling field name %q: %w", k, err)
		}
		vb, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, fmt.Errorf("marshaling field %q: %w", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, keeping key order. null values are
// treated as absent fields; numbers and booleans keep their literal text.
func (r *Record) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("reading record: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("record must be a JSON object")
	}

	*r = Record{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("reading field name: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected field name token %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("reading field %q: %w", key, err)
		}
		value, present, err := scalarText(raw)
		if err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		if present {
			r.Set(key, value)
		}
	}

	if _, err := dec.Token(); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("closing record: %w", err)
	}
	return nil
}

func scalarText(raw json.RawMessage) (string, bool, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return "", false, err
	}
	switch x := v.(type) {
	case nil:
		return "", false, nil
	case string:
		return x, true, nil
	case json.Number:
		return x.String(), true, nil
	case bool:
		if x {
			return "true", true, nil
		}
		return "false", true, nil
	default:
		return "", false, fmt.Errorf("unsupported value %s", string(raw))
	}
}

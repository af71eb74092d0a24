package dataview

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var ErrNotArray = errors.New("records payload is not a JSON array")

// Record is one opaque row. Fields are addressed with gjson paths, so nested
// values such as "owner.name" need no schema.
type Record struct {
	doc gjson.Result
}

// NewRecord wraps a JSON object.
func NewRecord(raw string) Record {
	return Record{doc: gjson.Parse(raw)}
}

// RecordFromValue encodes v (typically a map) as a Record.
func RecordFromValue(v any) (Record, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return Record{}, fmt.Errorf("encode record: %w", err)
	}
	return NewRecord(string(b)), nil
}

// RecordsFromJSON splits a JSON array into records. A JSON null yields an
// empty list.
func RecordsFromJSON(raw string) ([]Record, error) {
	res := gjson.Parse(raw)
	if res.Type == gjson.Null {
		return []Record{}, nil
	}
	if !res.IsArray() {
		return nil, ErrNotArray
	}
	items := res.Array()
	out := make([]Record, 0, len(items))
	for _, item := range items {
		out = append(out, Record{doc: item})
	}
	return out, nil
}

// Get returns the value at path.
func (r Record) Get(path string) gjson.Result {
	return r.doc.Get(path)
}

// String returns the value at path as text; missing values are "".
func (r Record) String(path string) string {
	return r.doc.Get(path).String()
}

// Float returns the value at path as a number; missing values are 0.
func (r Record) Float(path string) float64 {
	return r.doc.Get(path).Float()
}

// Map decodes the record into a generic map, for screens that reshape rows.
func (r Record) Map() map[string]any {
	m, ok := r.doc.Value().(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return m
}

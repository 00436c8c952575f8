package models

import (
	"encoding/json"
	"fmt"
)

// FieldMap declares the translation between API field names (camelCase)
// and storage column names (snake_case) for one resource. Writes go
// through ToRow, reads come back through FromRow. Keys missing from the
// map are dropped on both paths so stray input never reaches storage.
type FieldMap map[string]string

// ToRow translates API-shaped fields into a storage row. Nil values are
// kept so a patch can explicitly null a column.
func (m FieldMap) ToRow(fields map[string]interface{}) map[string]interface{} {
	row := make(map[string]interface{}, len(fields))
	for name, value := range fields {
		if column, ok := m[name]; ok {
			row[column] = value
		}
	}
	return row
}

// FromRow translates a storage row back into API field names.
func (m FieldMap) FromRow(row map[string]interface{}) map[string]interface{} {
	inverse := m.inverse()
	fields := make(map[string]interface{}, len(row))
	for column, value := range row {
		if name, ok := inverse[column]; ok {
			fields[name] = value
		}
	}
	return fields
}

// Column resolves a single API field name to its column.
func (m FieldMap) Column(name string) (string, bool) {
	column, ok := m[name]
	return column, ok
}

func (m FieldMap) inverse() map[string]string {
	inv := make(map[string]string, len(m))
	for name, column := range m {
		inv[column] = name
	}
	return inv
}

// StructToFields flattens a DTO into an API-shaped field map using its
// json tags. Pointer fields left nil (omitempty) disappear, which is
// what makes partial patches work.
func StructToFields(v interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to flatten input: %v", err)
	}
	fields := map[string]interface{}{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("failed to flatten input: %v", err)
	}
	return fields, nil
}

// DecodeRows converts raw PostgREST response bytes into typed values by
// translating each row's columns through the field map first. Supabase
// returns an array even for single results.
func DecodeRows[T any](raw []byte, m FieldMap) ([]T, error) {
	var rows []map[string]interface{}
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rows: %v", err)
	}

	out := make([]T, 0, len(rows))
	for _, row := range rows {
		translated, err := json.Marshal(m.FromRow(row))
		if err != nil {
			return nil, fmt.Errorf("failed to translate row: %v", err)
		}
		var item T
		if err := json.Unmarshal(translated, &item); err != nil {
			return nil, fmt.Errorf("failed to convert row: %v", err)
		}
		out = append(out, item)
	}
	return out, nil
}

package records

import (
	"bytes"
	"encoding/json"
	"slices"
)

// Value holds a field value: a single string, or an ordered list once the
// same key has repeated inside a record.
type Value struct {
	scalar string
	list   []string
}

// Scalar returns a single-valued Value.
func Scalar(s string) Value {
	return Value{scalar: s}
}

// List returns a list-valued Value. The slice is copied.
func List(values ...string) Value {
	return Value{list: slices.Clone(values)}
}

// IsList reports whether v holds a list.
func (v Value) IsList() bool {
	return v.list != nil
}

// String returns the scalar value, or the first element of a list.
func (v Value) String() string {
	if v.list != nil {
		if len(v.list) == 0 {
			return ""
		}
		return v.list[0]
	}
	return v.scalar
}

// Strings returns every value in order. A scalar yields a one-element slice.
func (v Value) Strings() []string {
	if v.list != nil {
		return slices.Clone(v.list)
	}
	return []string{v.scalar}
}

// Any returns the value as a string or []string.
func (v Value) Any() any {
	if v.list != nil {
		return slices.Clone(v.list)
	}
	return v.scalar
}

func (v Value) append(s string) Value {
	if v.list == nil {
		return Value{list: []string{v.scalar, s}}
	}
	return Value{list: append(v.list, s)}
}

// MarshalJSON encodes a scalar as a string and a list as an array.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Any())
}

// FieldMap maps canonical keys to values, remembering the order in which keys
// first appeared.
type FieldMap struct {
	keys   []string
	values map[string]Value
}

// NewFieldMap returns an empty FieldMap.
func NewFieldMap() FieldMap {
	return FieldMap{values: make(map[string]Value)}
}

// Get returns the value stored under key.
func (m FieldMap) Get(key string) (Value, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in order of first appearance.
func (m FieldMap) Keys() []string {
	return slices.Clone(m.keys)
}

// Len returns the number of distinct keys.
func (m FieldMap) Len() int {
	return len(m.keys)
}

// Map renders the field map as plain Go values.
func (m FieldMap) Map() map[string]any {
	out := make(map[string]any, len(m.keys))
	for _, k := range m.keys {
		out[k] = m.values[k].Any()
	}
	return out
}

// add stores value under key, promoting the entry to a list when key is
// already present.
func (m *FieldMap) add(key, value string) {
	if m.values == nil {
		m.values = make(map[string]Value)
	}
	existing, ok := m.values[key]
	if !ok {
		m.keys = append(m.keys, key)
		m.values[key] = Scalar(value)
		return
	}
	m.values[key] = existing.append(value)
}

// MarshalJSON encodes the map as a JSON object in key order.
func (m FieldMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

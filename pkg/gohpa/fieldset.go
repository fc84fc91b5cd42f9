package gohpa

import (
	"fmt"
	"strconv"
)

// FieldSet offers typed helpers on top of a record's field map.
type FieldSet struct {
	data FieldMap
}

// FieldSets returns a FieldSet for every record of responseType.
func (r *Response) FieldSets(responseType string) []FieldSet {
	recs := r.Records(responseType)
	out := make([]FieldSet, 0, len(recs))
	for _, fm := range recs {
		out = append(out, FieldSet{data: fm})
	}
	return out
}

// NewFieldSet wraps a field map.
func NewFieldSet(m FieldMap) FieldSet {
	return FieldSet{data: m}
}

// Map exposes the underlying field map.
func (fs FieldSet) Map() FieldMap {
	return fs.data
}

// Raw returns the stored value without conversions.
func (fs FieldSet) Raw(key string) (Value, bool) {
	return fs.data.Get(key)
}

// String returns a single-valued field.
func (fs FieldSet) String(key string) (string, error) {
	v, ok := fs.Raw(key)
	if !ok {
		return "", fmt.Errorf("field %q missing", key)
	}
	if v.IsList() {
		return "", fmt.Errorf("field %q repeats %d times", key, len(v.Strings()))
	}
	return v.String(), nil
}

// Strings returns every value of the field in document order.
func (fs FieldSet) Strings(key string) ([]string, error) {
	v, ok := fs.Raw(key)
	if !ok {
		return nil, fmt.Errorf("field %q missing", key)
	}
	return v.Strings(), nil
}

// Float returns the field parsed as float64, e.g. an amount.
func (fs FieldSet) Float(key string) (float64, error) {
	s, err := fs.String(key)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("field %q is not numeric: %w", key, err)
	}
	return f, nil
}

// Int returns the field parsed as int64, e.g. a transaction count.
func (fs FieldSet) Int(key string) (int64, error) {
	s, err := fs.String(key)
	if err != nil {
		return 0, err
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("field %q is not integer: %w", key, err)
	}
	return i, nil
}

// Bool returns the field parsed as bool.
func (fs FieldSet) Bool(key string) (bool, error) {
	s, err := fs.String(key)
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("field %q is not bool: %w", key, err)
	}
	return b, nil
}

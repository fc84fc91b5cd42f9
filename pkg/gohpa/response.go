package gohpa

import (
	"encoding/json"
	"fmt"

	"github.com/d21d3q/gohpa/internal/policy"
	"github.com/d21d3q/gohpa/internal/records"
	"github.com/d21d3q/gohpa/internal/xmltree"
)

// FieldMap is the normalized content of one record.
type FieldMap = records.FieldMap

// Value is a field value, either a single string or a list.
type Value = records.Value

// Response is the mapped terminal reply.
type Response struct {
	VersionNumber   string
	ECRID           string
	SIPID           string
	DeviceID        string
	Response        string
	MultipleMessage string
	ResultCode      string
	TransactionID   string
	ResponseCode    string
	ResultText      string

	// Data holds the records keyed by response type.
	Data  map[string]*Entry
	types []string
}

// attributeFields maps top-level wire fields onto Response attributes.
var attributeFields = []struct {
	wire  string
	name  string
	field func(*Response) *string
}{
	{"Version", "versionNumber", func(r *Response) *string { return &r.VersionNumber }},
	{"ECRId", "ecrId", func(r *Response) *string { return &r.ECRID }},
	{"SIPId", "sipId", func(r *Response) *string { return &r.SIPID }},
	{"DeviceId", "deviceId", func(r *Response) *string { return &r.DeviceID }},
	{"Response", "response", func(r *Response) *string { return &r.Response }},
	{"MultipleMessage", "multipleMessage", func(r *Response) *string { return &r.MultipleMessage }},
	{"Result", "resultCode", func(r *Response) *string { return &r.ResultCode }},
	{"ResponseId", "transactionId", func(r *Response) *string { return &r.TransactionID }},
	{"ResponseCode", "responseCode", func(r *Response) *string { return &r.ResponseCode }},
	{"ResultText", "resultText", func(r *Response) *string { return &r.ResultText }},
}

func newResponse(reg *policy.Registry) *Response {
	r := &Response{Data: make(map[string]*Entry)}
	for _, p := range reg.Grouped() {
		r.entry(p)
	}
	return r
}

// Attribute returns a top-level attribute by its canonical name, e.g.
// "resultCode". The boolean is false for unknown or unset attributes.
func (r *Response) Attribute(name string) (string, bool) {
	for _, af := range attributeFields {
		if af.name == name {
			v := *af.field(r)
			return v, v != ""
		}
	}
	return "", false
}

// Types returns the response-type keys present in Data in insertion order.
func (r *Response) Types() []string {
	return append([]string(nil), r.types...)
}

// Records returns every record stored for responseType regardless of shape.
func (r *Response) Records(responseType string) []FieldMap {
	e, ok := r.Data[responseType]
	if !ok {
		return nil
	}
	return e.Records()
}

func (r *Response) captureAttributes(root *xmltree.Node) {
	for _, af := range attributeFields {
		if v, ok := root.Value(af.wire); ok {
			*af.field(r) = v
		}
	}
}

func (r *Response) entry(p policy.Policy) *Entry {
	if e, ok := r.Data[p.Name]; ok {
		return e
	}
	e := &Entry{policy: p}
	if p.Shape == policy.ShapeGrouped {
		e.groups = make(map[string][]FieldMap, len(p.Categories))
		for _, label := range p.Categories {
			e.groups[label] = nil
			e.labels = append(e.labels, label)
		}
	}
	r.Data[p.Name] = e
	r.types = append(r.types, p.Name)
	return e
}

// Map renders the response as plain Go values: the set attributes under their
// canonical names and the records under "responseData".
func (r *Response) Map() map[string]any {
	out := make(map[string]any, len(attributeFields)+1)
	for _, af := range attributeFields {
		if v := *af.field(r); v != "" {
			out[af.name] = v
		}
	}
	data := make(map[string]any, len(r.Data))
	for name, e := range r.Data {
		data[name] = e.Any()
	}
	out["responseData"] = data
	return out
}

// String renders the response as indented JSON.
func (r *Response) String() string {
	data, err := json.MarshalIndent(r.Map(), "", "  ")
	if err != nil {
		return fmt.Sprintf("response: %s result:%s (marshal error: %v)", r.Response, r.ResultCode, err)
	}
	return string(data)
}

// Entry holds the records of one response type.
type Entry struct {
	policy  policy.Policy
	groups  map[string][]FieldMap
	labels  []string
	records []FieldMap
}

// Shape returns the storage shape of the entry.
func (e *Entry) Shape() policy.Shape {
	return e.policy.Shape
}

// Labels returns the category labels of a grouped entry, preseeded labels
// first, then labels in order of first appearance.
func (e *Entry) Labels() []string {
	return append([]string(nil), e.labels...)
}

// Group returns the records filed under label in a grouped entry.
func (e *Entry) Group(label string) ([]FieldMap, bool) {
	g, ok := e.groups[label]
	return g, ok
}

// IsList reports whether a non-grouped entry has been promoted to a list.
func (e *Entry) IsList() bool {
	return e.policy.Shape == policy.ShapeRepeated && len(e.records) > 1
}

// Single returns the record of a non-grouped entry that has not been
// promoted to a list.
func (e *Entry) Single() (FieldMap, bool) {
	if e.policy.Shape == policy.ShapeGrouped || len(e.records) != 1 {
		return FieldMap{}, false
	}
	return e.records[0], true
}

// Records returns every stored record; grouped records are returned label by
// label.
func (e *Entry) Records() []FieldMap {
	if e.policy.Shape != policy.ShapeGrouped {
		return append([]FieldMap(nil), e.records...)
	}
	var out []FieldMap
	for _, label := range e.labels {
		out = append(out, e.groups[label]...)
	}
	return out
}

// Any renders the entry as plain Go values.
func (e *Entry) Any() any {
	if e.policy.Shape == policy.ShapeGrouped {
		out := make(map[string]any, len(e.labels))
		for _, label := range e.labels {
			out[label] = fieldMaps(e.groups[label])
		}
		return out
	}
	if fm, ok := e.Single(); ok {
		return fm.Map()
	}
	return fieldMaps(e.records)
}

func (e *Entry) add(rec records.Record) {
	fields := records.Merge(rec.Fields)
	switch e.policy.Shape {
	case policy.ShapeGrouped:
		label := e.resolveLabel(records.Categorize(rec))
		if _, ok := e.groups[label]; !ok {
			e.labels = append(e.labels, label)
		}
		e.groups[label] = append(e.groups[label], fields)
	case policy.ShapeSingle:
		e.records = []FieldMap{fields}
	default:
		e.records = append(e.records, fields)
	}
}

// resolveLabel files a table named without its "Summary" suffix under the
// preseeded summary label.
func (e *Entry) resolveLabel(label string) string {
	if e.policy.HasCategory(label) {
		return label
	}
	if e.policy.HasCategory(label + "Summary") {
		return label + "Summary"
	}
	return label
}

func fieldMaps(in []FieldMap) []any {
	out := make([]any, 0, len(in))
	for _, fm := range in {
		out = append(out, fm.Map())
	}
	return out
}

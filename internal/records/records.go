package records

import (
	"github.com/d21d3q/gohpa/internal/xmltree"
)

// Field is one Key/Value pair of a record.
type Field struct {
	Key   string
	Value string
}

// Record is a decoded <Record> element of a SIP frame.
type Record struct {
	TableCategory string
	Fields        []Field
}

// FromTree extracts the records of a decoded frame. Fields missing either
// their Key or their Value element are skipped.
func FromTree(root *xmltree.Node) []Record {
	nodes := root.ChildrenNamed("Record")
	if len(nodes) == 0 {
		return nil
	}
	out := make([]Record, 0, len(nodes))
	for _, n := range nodes {
		category, _ := n.Value("TableCategory")
		rec := Record{TableCategory: category}
		for _, f := range n.ChildrenNamed("Field") {
			key, ok := f.Value("Key")
			if !ok {
				continue
			}
			value, ok := f.Value("Value")
			if !ok {
				continue
			}
			rec.Fields = append(rec.Fields, Field{Key: key, Value: value})
		}
		out = append(out, rec)
	}
	return out
}

// Merge builds a FieldMap from fields in document order. Keys are normalized;
// a key seen more than once becomes a list holding every value in order.
func Merge(fields []Field) FieldMap {
	m := NewFieldMap()
	for _, f := range fields {
		m.add(NormalizeKey(f.Key), f.Value)
	}
	return m
}

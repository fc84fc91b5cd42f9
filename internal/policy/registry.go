// Package policy holds the per response-type rules that decide where mapped
// records land in a response.
package policy

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// Shape selects how records of one response type are stored.
type Shape int

const (
	// ShapeRepeated stores the first record as a single object and promotes
	// the entry to a list once a second record arrives.
	ShapeRepeated Shape = iota
	// ShapeGrouped stores records in lists keyed by category label.
	ShapeGrouped
	// ShapeSingle stores one object; a later record replaces it.
	ShapeSingle
)

var shapeNames = map[Shape]string{
	ShapeRepeated: "repeated",
	ShapeGrouped:  "grouped",
	ShapeSingle:   "single",
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// ParseShape resolves a shape name as written in policy files.
func ParseShape(name string) (Shape, error) {
	for shape, n := range shapeNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return shape, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown shape %q", ErrInvalidPolicy, name)
}

// Policy describes one response type.
type Policy struct {
	// Name is the response-type key, the wire Response value with its first
	// letter lower-cased ("SendSAF" -> "sendSAF").
	Name  string
	Shape Shape
	// Categories are preseeded, in order, for grouped responses.
	Categories []string
	// CaptureAttributes copies the whitelisted top-level fields of a frame of
	// this type onto the response.
	CaptureAttributes bool
}

// HasCategory reports whether label is one of the preseeded categories.
func (p Policy) HasCategory(label string) bool {
	return slices.Contains(p.Categories, label)
}

// Wire returns the Response value a terminal sends for this type, the name
// with its first letter upper-cased ("sendSAF" -> "SendSAF").
func (p Policy) Wire() string {
	r, size := utf8.DecodeRuneInString(p.Name)
	if r == utf8.RuneError {
		return p.Name
	}
	return string(unicode.ToUpper(r)) + p.Name[size:]
}

// TypeKey converts a wire Response value into its response-type key.
func TypeKey(response string) string {
	response = strings.TrimSpace(response)
	r, size := utf8.DecodeRuneInString(response)
	if r == utf8.RuneError {
		return response
	}
	return string(unicode.ToLower(r)) + response[size:]
}

// Registry maps response-type keys to policies.
type Registry struct {
	mu       sync.RWMutex
	policies map[string]Policy
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{policies: make(map[string]Policy)}
}

// Register stores p, replacing any policy with the same name.
func (r *Registry) Register(p Policy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.Categories = slices.Clone(p.Categories)
	r.policies[p.Name] = p
}

// Lookup returns the policy for name. Unregistered types get a repeated
// policy; the boolean reports whether name was registered.
func (r *Registry) Lookup(name string) (Policy, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.policies[name]; ok {
		p.Categories = slices.Clone(p.Categories)
		return p, true
	}
	return Policy{Name: name, Shape: ShapeRepeated}, false
}

// Names returns the registered names sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.policies))
	for name := range r.policies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Grouped returns the registered grouped policies sorted by name.
func (r *Registry) Grouped() []Policy {
	var out []Policy
	for _, name := range r.Names() {
		if p, _ := r.Lookup(name); p.Shape == ShapeGrouped {
			out = append(out, p)
		}
	}
	return out
}

// Clone returns an independent copy of r.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c := NewRegistry()
	for name, p := range r.policies {
		p.Categories = slices.Clone(p.Categories)
		c.policies[name] = p
	}
	return c
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry built-in policies register into.
func Default() *Registry {
	return defaultRegistry
}

// Register stores p in the default registry.
func Register(p Policy) {
	defaultRegistry.Register(p)
}

// Lookup resolves name against the default registry.
func Lookup(name string) (Policy, bool) {
	return defaultRegistry.Lookup(name)
}

package policy

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidPolicy = errors.New("invalid policy")

type fileFormat struct {
	Policies []filePolicy `yaml:"policies"`
}

type filePolicy struct {
	Name              string   `yaml:"name"`
	Shape             string   `yaml:"shape"`
	Categories        []string `yaml:"categories"`
	CaptureAttributes bool     `yaml:"captureAttributes"`
}

// LoadYAML decodes a policy document:
//
//	policies:
//	  - name: sendSAF
//	    shape: grouped
//	    captureAttributes: true
//	    categories: [approvedSafSummary, pendingSafSummary]
//	  - name: eodReport
//	    shape: single
func LoadYAML(r io.Reader) ([]Policy, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc fileFormat
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}
	out := make([]Policy, 0, len(doc.Policies))
	for i, fp := range doc.Policies {
		if fp.Name == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrInvalidPolicy, i)
		}
		shape := ShapeRepeated
		if fp.Shape != "" {
			shape, err = ParseShape(fp.Shape)
			if err != nil {
				return nil, fmt.Errorf("policy %s: %w", fp.Name, err)
			}
		}
		if shape != ShapeGrouped && len(fp.Categories) > 0 {
			return nil, fmt.Errorf("%w: policy %s declares categories but is %s", ErrInvalidPolicy, fp.Name, shape)
		}
		out = append(out, Policy{
			Name:              fp.Name,
			Shape:             shape,
			Categories:        fp.Categories,
			CaptureAttributes: fp.CaptureAttributes,
		})
	}
	return out, nil
}

// LoadFile reads policies from a YAML file and registers them into r.
func (r *Registry) LoadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	policies, err := LoadYAML(file)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	for _, p := range policies {
		r.Register(p)
	}
	return nil
}

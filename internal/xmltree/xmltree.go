// Package xmltree decodes a single SIP frame into a generic element tree.
package xmltree

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrEmpty     = errors.New("frame contains no elements")
	ErrMalformed = errors.New("malformed frame")
)

// Node is one element of a decoded frame.
type Node struct {
	Name string
	// Text is the element's character data as it arrived, surrounding
	// whitespace included.
	Text     string
	Children []*Node
}

// Decode parses frame into a tree rooted at its first element. Character data
// before the root and anything after the root closes is ignored.
func Decode(frame string) (*Node, error) {
	dec := xml.NewDecoder(strings.NewReader(frame))
	var (
		stack []*Node
		texts []*strings.Builder
		root  *Node
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name.Local}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
			texts = append(texts, &strings.Builder{})
		case xml.CharData:
			if len(stack) > 0 {
				texts[len(texts)-1].Write(t)
			}
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: unexpected </%s>", ErrMalformed, t.Name.Local)
			}
			n := stack[len(stack)-1]
			n.Text = texts[len(texts)-1].String()
			stack = stack[:len(stack)-1]
			texts = texts[:len(texts)-1]
			if len(stack) == 0 {
				root = n
			}
		}
		if root != nil {
			break
		}
	}
	if len(stack) > 0 {
		return nil, fmt.Errorf("%w: <%s> not closed", ErrMalformed, stack[0].Name)
	}
	if root == nil {
		return nil, ErrEmpty
	}
	return root, nil
}

// IsLeaf reports whether n has no child elements.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Child returns the first direct child with the given name.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns all direct children with the given name in document
// order.
func (n *Node) ChildrenNamed(name string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Value returns the text of the first direct child with the given name.
func (n *Node) Value(name string) (string, bool) {
	c := n.Child(name)
	if c == nil {
		return "", false
	}
	return c.Text, true
}

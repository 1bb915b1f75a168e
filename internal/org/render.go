package org

import (
	"iter"
	"slices"
	"strings"

	"github.com/fjglira/opml2org/internal/domain"
)

// PropertyOrder controls the order of lines in a property block.
type PropertyOrder string

const (
	// PropertyOrderDocument keeps attributes in the order they appear in the source.
	PropertyOrderDocument PropertyOrder = "document"
	// PropertyOrderSorted sorts attributes by name.
	PropertyOrderSorted PropertyOrder = "sorted"
)

// Renderer turns outline trees into Org mode lines.
type Renderer struct {
	order PropertyOrder
}

// NewRenderer creates a Renderer. An empty order means PropertyOrderDocument.
func NewRenderer(order PropertyOrder) *Renderer {
	if order == "" {
		order = PropertyOrderDocument
	}
	return &Renderer{order: order}
}

// Body yields the lines for every top-level entry of body, starting at
// headline depth 1 and list depth 0.
func (r *Renderer) Body(body *domain.Outline) iter.Seq[string] {
	return func(yield func(string) bool) {
		if body == nil {
			return
		}
		for _, child := range body.Children {
			if !r.walk(child, 1, 0, yield) {
				return
			}
		}
	}
}

// Lines yields the lines for node and all of its descendants in pre-order.
// The node is never modified, so the sequence can be ranged over repeatedly.
func (r *Renderer) Lines(node *domain.Outline, headlineDepth, listDepth int) iter.Seq[string] {
	return func(yield func(string) bool) {
		r.walk(node, headlineDepth, listDepth, yield)
	}
}

// Render returns the lines of Lines as a slice.
func (r *Renderer) Render(node *domain.Outline, headlineDepth, listDepth int) []string {
	return slices.Collect(r.Lines(node, headlineDepth, listDepth))
}

func (r *Renderer) walk(node *domain.Outline, headlineDepth, listDepth int, yield func(string) bool) bool {
	text := node.Text()

	switch node.Classify() {
	case domain.StructureHeadline:
		if !yield(strings.Repeat("*", headlineDepth) + " " + text) {
			return false
		}
		if props := r.properties(node); len(props) > 0 {
			if !yield(":PROPERTIES:") {
				return false
			}
			for _, p := range props {
				if !yield(":" + p.Name + ": " + p.Value) {
					return false
				}
			}
			// The trailing newline leaves a blank line once lines are joined.
			if !yield(":END:\n") {
				return false
			}
		}
		for _, child := range node.Children {
			if !r.walk(child, headlineDepth+1, listDepth, yield) {
				return false
			}
		}

	case domain.StructureList:
		if !yield(strings.Repeat(" ", listDepth) + "- " + text) {
			return false
		}
		for _, child := range node.Children {
			if !r.walk(child, headlineDepth, listDepth+2, yield) {
				return false
			}
		}

	case domain.StructureParagraph:
		return yield(text + "\n")

	default:
		// Unrecognised structure values render nothing, children included.
	}

	return true
}

func (r *Renderer) properties(node *domain.Outline) []domain.Attribute {
	props := node.Properties()
	if r.order == PropertyOrderSorted {
		slices.SortStableFunc(props, func(a, b domain.Attribute) int {
			return strings.Compare(a.Name, b.Name)
		})
	}
	return props
}

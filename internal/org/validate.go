package org

import (
	"github.com/fjglira/opml2org/internal/domain"
)

// Validate walks every outline below the document body and reports the
// first node without a text label. It runs before any output is produced
// so a conversion either succeeds completely or emits nothing.
func Validate(doc *domain.Document) error {
	if doc.Body == nil {
		return nil
	}
	for _, child := range doc.Body.Children {
		if err := validateOutline(doc.FilePath, child); err != nil {
			return err
		}
	}
	return nil
}

func validateOutline(filePath string, node *domain.Outline) error {
	if text, ok := node.Attr(domain.AttrText); !ok || text == "" {
		return domain.NewErrorWithSuggestion("validate", filePath, node.Line,
			"outline has no text",
			`every <outline> element needs a non-empty text="..." attribute`,
			domain.ErrMissingText)
	}
	for _, child := range node.Children {
		if err := validateOutline(filePath, child); err != nil {
			return err
		}
	}
	return nil
}

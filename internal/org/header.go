package org

import (
	"strings"

	"github.com/fjglira/opml2org/internal/domain"
)

// ExtractHeader returns the "#+EXPORT: value" directive for the named head
// field. exportName defaults to the upper-cased field name. A missing field
// and a field with empty or whitespace-only text are both treated as having
// no value, and no line is returned. Other values are emitted unchanged.
func ExtractHeader(head *domain.Head, fieldName, exportName string) (string, bool) {
	field, ok := head.Lookup(fieldName)
	if !ok {
		return "", false
	}
	if strings.TrimSpace(field.Text) == "" {
		return "", false
	}
	if exportName == "" {
		exportName = strings.ToUpper(fieldName)
	}
	return "#+" + exportName + ": " + field.Text, true
}

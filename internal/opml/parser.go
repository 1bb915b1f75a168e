package opml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/fjglira/opml2org/internal/domain"
)

// Parser reads OPML documents into domain.Document trees.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// SupportedExtensions returns the file extensions this parser handles.
func (p *Parser) SupportedExtensions() []string {
	return []string{".opml", ".xml"}
}

// Parse decodes content as a single OPML document. The root element must
// have exactly two child elements, head followed by body. Any element nested
// in body is read as an outline node whatever its tag name.
func (p *Parser) Parse(filePath string, content []byte) (*domain.Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(content))
	dec.CharsetReader = charset.NewReaderLabel

	if _, err := nextStart(dec); err != nil {
		return nil, malformed(filePath, dec, "no root element found", err)
	}

	doc := &domain.Document{FilePath: filePath}
	count := 0
	for {
		tok, err := nextToken(dec)
		if err != nil {
			return nil, malformed(filePath, dec, "failed to read root element", err)
		}

		if _, ok := tok.(xml.EndElement); ok {
			break
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		count++
		switch {
		case count == 1 && start.Name.Local == "head":
			doc.Head, err = readHead(dec)
		case count == 2 && start.Name.Local == "body":
			doc.Body, err = readOutline(dec, start)
		default:
			return nil, malformed(filePath, dec,
				fmt.Sprintf("unexpected element <%s> in root, want exactly <head> then <body>", start.Name.Local), nil)
		}
		if err != nil {
			return nil, malformed(filePath, dec, "failed to read <"+start.Name.Local+">", err)
		}
	}

	if count != 2 {
		return nil, malformed(filePath, dec,
			fmt.Sprintf("root has %d child element(s), want exactly <head> then <body>", count), nil)
	}

	// Only whitespace, comments and processing instructions may follow the root.
	for {
		tok, err := nextToken(dec)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, malformed(filePath, dec, "trailing content after root element", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return nil, malformed(filePath, dec, "more than one root element", nil)
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				return nil, malformed(filePath, dec, "text after root element", nil)
			}
		}
	}

	return doc, nil
}

// nextToken returns the next token, rejecting start tags that repeat an
// attribute name, which encoding/xml lets through.
func nextToken(dec *xml.Decoder) (xml.Token, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if start, ok := tok.(xml.StartElement); ok {
		seen := make(map[xml.Name]bool, len(start.Attr))
		for _, a := range start.Attr {
			if seen[a.Name] {
				return nil, fmt.Errorf("duplicate attribute %q on <%s>", a.Name.Local, start.Name.Local)
			}
			seen[a.Name] = true
		}
	}
	return tok, nil
}

// nextStart skips the prolog and returns the root element.
func nextStart(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := nextToken(dec)
		if err != nil {
			return xml.StartElement{}, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start, nil
		}
	}
}

// readHead collects the direct child elements of <head> as metadata fields.
func readHead(dec *xml.Decoder) (*domain.Head, error) {
	head := &domain.Head{}
	for {
		tok, err := nextToken(dec)
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			field, err := readField(dec, t)
			if err != nil {
				return nil, err
			}
			head.Fields = append(head.Fields, field)
		case xml.EndElement:
			return head, nil
		}
	}
}

// readField returns the element name and the text preceding its first child.
func readField(dec *xml.Decoder, start xml.StartElement) (domain.Field, error) {
	var text strings.Builder
	sawChild := false
	for {
		tok, err := nextToken(dec)
		if err != nil {
			return domain.Field{}, err
		}
		switch t := tok.(type) {
		case xml.CharData:
			if !sawChild {
				text.Write(t)
			}
		case xml.StartElement:
			sawChild = true
			if err := dec.Skip(); err != nil {
				return domain.Field{}, err
			}
		case xml.EndElement:
			return domain.Field{Name: start.Name.Local, Text: text.String()}, nil
		}
	}
}

// readOutline reads start and its whole subtree.
func readOutline(dec *xml.Decoder, start xml.StartElement) (*domain.Outline, error) {
	line, _ := dec.InputPos()
	node := &domain.Outline{
		Attributes: attributes(start),
		Line:       line,
	}
	for {
		tok, err := nextToken(dec)
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := readOutline(dec, t)
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, child)
		case xml.EndElement:
			return node, nil
		}
	}
}

// attributes converts element attributes to domain attributes, keeping
// document order and dropping namespace declarations.
func attributes(start xml.StartElement) []domain.Attribute {
	attrs := make([]domain.Attribute, 0, len(start.Attr))
	for _, a := range start.Attr {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		attrs = append(attrs, domain.Attribute{Name: a.Name.Local, Value: a.Value})
	}
	return attrs
}

func malformed(filePath string, dec *xml.Decoder, message string, err error) error {
	line, _ := dec.InputPos()
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		line = syntaxErr.Line
	}
	cause := domain.ErrMalformedInput
	if err != nil && !errors.Is(err, io.EOF) {
		cause = fmt.Errorf("%w: %v", domain.ErrMalformedInput, err)
	}
	return domain.NewErrorWithSuggestion("parse", filePath, line, message,
		"input must be a well-formed OPML document: <opml><head>...</head><body>...</body></opml>",
		cause)
}

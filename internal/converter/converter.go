package converter

import (
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding"

	"github.com/fjglira/opml2org/internal/config"
	"github.com/fjglira/opml2org/internal/domain"
	"github.com/fjglira/opml2org/internal/opml"
	"github.com/fjglira/opml2org/internal/org"
)

// Converter transforms OPML documents into encoded Org mode text.
type Converter interface {
	Convert(filePath string, content []byte) ([]byte, error)
}

// DefaultConverter implements Converter.
type DefaultConverter struct {
	parser   *opml.Parser
	renderer *org.Renderer
	headers  []config.HeaderConfig
	encoding encoding.Encoding
	log      *logrus.Logger
}

// NewConverter creates a new DefaultConverter from cfg.
func NewConverter(cfg *config.Config, log *logrus.Logger) (*DefaultConverter, error) {
	enc, err := lookupEncoding(cfg.Output.Encoding)
	if err != nil {
		return nil, err
	}
	return &DefaultConverter{
		parser:   opml.NewParser(),
		renderer: org.NewRenderer(org.PropertyOrder(cfg.Properties.Order)),
		headers:  cfg.Headers,
		encoding: enc,
		log:      log,
	}, nil
}

// Convert parses content, validates the whole outline tree and returns the
// encoded Org text. Nothing is returned unless every step succeeds.
func (c *DefaultConverter) Convert(filePath string, content []byte) ([]byte, error) {
	doc, err := c.parser.Parse(filePath, content)
	if err != nil {
		return nil, err
	}

	if err := org.Validate(doc); err != nil {
		return nil, err
	}

	text := c.assemble(doc)

	out, substituted, err := encode(c.encoding, text)
	if err != nil {
		return nil, domain.NewError("encode", filePath, 0, "failed to encode output", err)
	}
	if substituted {
		c.log.Warnf("Some characters in %s could not be encoded and were replaced", displayName(filePath))
	}

	return out, nil
}

// assemble joins header lines, one blank separator line and the body lines.
func (c *DefaultConverter) assemble(doc *domain.Document) string {
	var headers []string
	for _, h := range c.headers {
		line, ok := org.ExtractHeader(doc.Head, h.Field, h.Export)
		if !ok {
			c.log.Debugf("Header field %q is absent or empty, skipping", h.Field)
			continue
		}
		headers = append(headers, line)
	}

	body := slices.Collect(c.renderer.Body(doc.Body))
	c.log.Debugf("Rendered %d header line(s) and %d body line(s)", len(headers), len(body))

	var b strings.Builder
	b.WriteString(strings.Join(headers, "\n"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(body, "\n"))
	b.WriteString("\n")
	return b.String()
}

func displayName(filePath string) string {
	if filePath == "" || filePath == "-" {
		return "<stdin>"
	}
	return filePath
}

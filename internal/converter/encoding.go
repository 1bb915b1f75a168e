package converter

import (
	"bytes"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/fjglira/opml2org/internal/domain"
)

// lookupEncoding resolves a WHATWG encoding label such as "utf-8" or "latin1".
func lookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		name = "utf-8"
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, domain.NewErrorWithSuggestion("config", "", 0,
			"unknown output encoding "+name,
			"use a WHATWG encoding label such as utf-8, windows-1252 or shift_jis",
			err)
	}
	return enc, nil
}

// encode converts s to enc. Characters enc cannot represent are replaced by
// the encoding's substitution byte rather than failing; substituted reports
// whether that happened.
func encode(enc encoding.Encoding, s string) (out []byte, substituted bool, err error) {
	strict, _, strictErr := transform.String(enc.NewEncoder(), s)
	if strictErr == nil {
		return []byte(strict), false, nil
	}

	var buf bytes.Buffer
	w := transform.NewWriter(&buf, encoding.ReplaceUnsupported(enc.NewEncoder()))
	if _, err := w.Write([]byte(s)); err != nil {
		return nil, false, err
	}
	if err := w.Close(); err != nil {
		return nil, false, err
	}
	return buf.Bytes(), true, nil
}

package gopher

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// DefaultCharset is used for responses that are not valid UTF-8
const DefaultCharset = "windows-1252"

// Decoder turns response bytes into text
type Decoder struct {
	fallback encoding.Encoding
	name     string
}

// NewDecoder returns a decoder falling back to the named charset (WHATWG names, e.g. "latin1", "koi8-r")
func NewDecoder(fallback string) (*Decoder, error) {
	if fallback == "" {
		fallback = DefaultCharset
	}
	enc, err := htmlindex.Get(fallback)
	if err != nil {
		return nil, fmt.Errorf("unknown charset %q: %w", fallback, err)
	}
	name, _ := htmlindex.Name(enc)
	return &Decoder{fallback: enc, name: name}, nil
}

// Charset returns the canonical name of the fallback charset
func (d *Decoder) Charset() string {
	return d.name
}

// Decode returns UTF-8 text. Valid UTF-8 is kept (minus a byte order mark);
// anything else is read as the fallback charset.
func (d *Decoder) Decode(raw []byte) string {
	if utf8.Valid(raw) {
		out, err := unicode.UTF8BOM.NewDecoder().Bytes(raw)
		if err != nil {
			return string(raw)
		}
		return string(out)
	}
	out, err := d.fallback.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(out)
}

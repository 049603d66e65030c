package reader

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// NewUTF16 wraps r, a UTF-16 byte stream (BOM-sniffed, defaulting to
// little-endian when no BOM is present), decoding it to UTF-8 on the fly
// before handing it to New. This is the only place the reader deals with an
// encoding other than UTF-8.
func NewUTF16(r io.Reader, filename string) *Reader {
	dec := unicode.BOMOverride(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder())
	return New(transform.NewReader(r, dec), filename)
}

package grid

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
)

// Charset decides how a byte is shown in the decoded column.
type Charset interface {
	Name() string
	// Glyph returns the rune to print for b and whether it is printable.
	Glyph(b byte) (rune, bool)
}

type asciiCharset struct{}

func (asciiCharset) Name() string { return "ascii" }

func (asciiCharset) Glyph(b byte) (rune, bool) {
	return rune(b), b >= 0x20 && b <= 0x7E
}

// ASCII is the default charset: printable ASCII (0x20-0x7E) only.
var ASCII Charset = asciiCharset{}

type codePage struct {
	name string
	cm   *charmap.Charmap
}

func (c codePage) Name() string { return c.name }

func (c codePage) Glyph(b byte) (rune, bool) {
	r := c.cm.DecodeByte(b)
	if r == unicode.ReplacementChar || !unicode.IsPrint(r) {
		return r, false
	}
	return r, true
}

var charsets = map[string]Charset{
	"ascii":        ASCII,
	"cp437":        codePage{name: "cp437", cm: charmap.CodePage437},
	"windows-1252": codePage{name: "windows-1252", cm: charmap.Windows1252},
	"latin1":       codePage{name: "latin1", cm: charmap.ISO8859_1},
}

// LookupCharset returns the charset registered under name (case-insensitive).
// An empty name selects ASCII.
func LookupCharset(name string) (Charset, error) {
	if name == "" {
		return ASCII, nil
	}
	cs, ok := charsets[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("grid: unknown charset %q (want ascii, cp437, windows-1252 or latin1)", name)
	}
	return cs, nil
}

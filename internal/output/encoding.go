package output

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// LookupEncoding maps a config encoding name such as "utf-8" or
// "windows-1252" to its encoding.
func LookupEncoding(name string) (encoding.Encoding, error) {
	switch name {
	case "", "utf-8", "utf8":
		return unicode.UTF8, nil
	case "iso-8859-1", "latin1":
		// htmlindex treats latin1 as windows-1252, which differs in 0x80-0x9F
		return charmap.ISO8859_1, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", name, err)
	}
	return enc, nil
}

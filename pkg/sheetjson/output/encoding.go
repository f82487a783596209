package output

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

// DefaultEncoding is the output encoding used when none is given.
const DefaultEncoding = "utf-8"

// ErrUnsupportedEncoding indicates an unknown output encoding name.
var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// aliases covers common codec names the WHATWG index does not know.
var aliases = map[string]encoding.Encoding{
	"utf-8-sig":  unicode.UTF8BOM,
	"cp936":      simplifiedchinese.GBK,
	"ms936":      simplifiedchinese.GBK,
	"936":        simplifiedchinese.GBK,
	"hz":         simplifiedchinese.HZGB2312,
	"hz-gb-2312": simplifiedchinese.HZGB2312,
}

// LookupEncoding resolves an encoding name such as "utf-8", "gbk",
// "gb18030" or "cp936". Names are case-insensitive and "_" is accepted
// in place of "-". An empty name selects DefaultEncoding.
func LookupEncoding(name string) (encoding.Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "_", "-")
	if key == "" {
		key = DefaultEncoding
	}

	if enc, ok := aliases[key]; ok {
		return enc, nil
	}
	enc, err := htmlindex.Get(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, name)
	}
	// The index maps a few legacy labels to the replacement encoding,
	// which cannot encode anything.
	if enc == encoding.Replacement {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, name)
	}
	return enc, nil
}

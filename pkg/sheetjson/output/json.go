// Package output serializes conversion results.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Indent is the indentation unit of written documents.
const Indent = "  "

// ToJSON serializes v with two-space indentation. Non-ASCII text, the
// line and paragraph separators U+2028 and U+2029, and the characters
// <, > and & are written literally.
func ToJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return unescapeSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// unescapeSeparators replaces the \u2028 and \u2029 escapes encoding/json
// always emits with the raw characters. Other escapes, including an
// escaped backslash followed by "u2028", are copied unchanged.
func unescapeSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' || i+1 >= len(data) {
			out = append(out, data[i])
			continue
		}
		if esc := data[i:]; len(esc) >= 6 && string(esc[1:5]) == "u202" && (esc[5] == '8' || esc[5] == '9') {
			out = append(out, string(rune(0x2020+int(esc[5]-'0')))...)
			i += 5
			continue
		}
		out = append(out, data[i], data[i+1])
		i++
	}
	return out
}

// WriteFile serializes v and writes it to path in the given text encoding.
// The file is closed on every path; a failed write may leave a partial file.
func WriteFile(path string, v interface{}, enc encoding.Encoding) (err error) {
	data, err := ToJSON(v)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := transform.NewWriter(f, enc.NewEncoder())
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	// Close flushes the bytes the transformer still holds.
	if err := w.Close(); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

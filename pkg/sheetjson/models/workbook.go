package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// NamedSheet pairs a sheet name with its converted content.
type NamedSheet struct {
	Name  string
	Sheet SheetResult
}

// ConversionResult maps sheet names to their converted content.
// Sheets keep workbook order and marshal as a single JSON object.
type ConversionResult struct {
	Sheets []NamedSheet
}

// Add appends a sheet, replacing any sheet already stored under name.
func (r *ConversionResult) Add(name string, sheet SheetResult) {
	for i := range r.Sheets {
		if r.Sheets[i].Name == name {
			r.Sheets[i].Sheet = sheet
			return
		}
	}
	r.Sheets = append(r.Sheets, NamedSheet{Name: name, Sheet: sheet})
}

// Get returns the sheet stored under name.
func (r *ConversionResult) Get(name string) (SheetResult, bool) {
	for _, s := range r.Sheets {
		if s.Name == name {
			return s.Sheet, true
		}
	}
	return SheetResult{}, false
}

// Names returns the sheet names in order.
func (r *ConversionResult) Names() []string {
	names := make([]string, len(r.Sheets))
	for i, s := range r.Sheets {
		names[i] = s.Name
	}
	return names
}

// Len returns the number of sheets.
func (r *ConversionResult) Len() int {
	return len(r.Sheets)
}

// TotalRows returns the number of data rows across all sheets.
func (r *ConversionResult) TotalRows() int {
	total := 0
	for _, s := range r.Sheets {
		total += len(s.Sheet.Data)
	}
	return total
}

// MarshalJSON writes the sheets as one object keyed by sheet name.
func (r ConversionResult) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range r.Sheets {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeValue(&buf, s.Name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeValue(&buf, s.Sheet); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", s.Name, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a document produced by MarshalJSON, keeping sheet order.
func (r *ConversionResult) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := expectDelim(dec, '{'); err != nil {
		return err
	}
	var sheets []NamedSheet
	for dec.More() {
		name, err := readKey(dec)
		if err != nil {
			return err
		}
		var sheet SheetResult
		if err := dec.Decode(&sheet); err != nil {
			return fmt.Errorf("sheet %q: %w", name, err)
		}
		sheets = append(sheets, NamedSheet{Name: name, Sheet: sheet})
	}
	r.Sheets = sheets
	return nil
}

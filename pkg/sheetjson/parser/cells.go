package parser

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Table is a sheet with its title row removed.
// Header holds the raw header row and Rows the data rows, both padded to
// the same width. Blank cells are nil.
type Table struct {
	Header []string
	Rows   [][]interface{}
}

// Width returns the number of columns.
func (t *Table) Width() int {
	return len(t.Header)
}

// LoadTable reads a sheet, discards physical row 1 (the title row) and
// splits the remainder into the header row and data rows.
// Cells are read unformatted, so numbers keep their stored value whatever
// their number format. A sheet with fewer than two rows yields an empty
// table.
func LoadTable(f *excelize.File, sheetName string) (*Table, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	table := &Table{Rows: [][]interface{}{}}
	if len(rows) < 2 {
		return table, nil
	}

	reader, err := newCellReader(f, sheetName)
	if err != nil {
		return nil, err
	}

	width := sheetWidth(rows[1:])
	table.Header = make([]string, width)
	copy(table.Header, rows[1])

	for rowIdx := 2; rowIdx < len(rows); rowIdx++ {
		rowNum := rowIdx + 1 // 1-based row index
		values := make([]interface{}, width)

		for colIdx, cellValue := range rows[rowIdx] {
			if colIdx >= width || isBlank(cellValue) {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return nil, err
			}
			v, err := reader.value(cellName, cellValue)
			if err != nil {
				return nil, err
			}
			values[colIdx] = v
		}

		table.Rows = append(table.Rows, values)
	}

	return table, nil
}

// cellReader types raw cell values of one sheet.
type cellReader struct {
	f          *excelize.File
	sheetName  string
	date1904   bool
	dateStyles map[int]bool // style ID -> has a date/time number format
}

func newCellReader(f *excelize.File, sheetName string) (*cellReader, error) {
	props, err := f.GetWorkbookProps()
	if err != nil {
		return nil, err
	}
	return &cellReader{
		f:          f,
		sheetName:  sheetName,
		date1904:   props.Date1904 != nil && *props.Date1904,
		dateStyles: make(map[int]bool),
	}, nil
}

// value converts the raw text of a cell into a JSON scalar.
// Numbers shown with a date or time format become ISO 8601 text.
func (r *cellReader) value(cellName, raw string) (interface{}, error) {
	cellType, err := r.f.GetCellType(r.sheetName, cellName)
	if err != nil {
		return nil, err
	}
	if cellType == excelize.CellTypeUnset || cellType == excelize.CellTypeNumber {
		isDate, err := r.isDateCell(cellName)
		if err != nil {
			return nil, err
		}
		if isDate {
			if serial, err := strconv.ParseFloat(raw, 64); err == nil {
				if t, err := excelize.ExcelDateToTime(serial, r.date1904); err == nil {
					return formatDate(t), nil
				}
			}
		}
	}
	return typedValue(cellType, raw), nil
}

func (r *cellReader) isDateCell(cellName string) (bool, error) {
	styleID, err := r.f.GetCellStyle(r.sheetName, cellName)
	if err != nil {
		return false, err
	}
	if isDate, ok := r.dateStyles[styleID]; ok {
		return isDate, nil
	}
	style, err := r.f.GetStyle(styleID)
	if err != nil {
		return false, err
	}
	isDate := false
	if style != nil {
		if style.CustomNumFmt != nil {
			isDate = isDateFormatCode(*style.CustomNumFmt)
		} else {
			isDate = isBuiltinDateFormat(style.NumFmt)
		}
	}
	r.dateStyles[styleID] = isDate
	return isDate, nil
}

// isBuiltinDateFormat reports whether a built-in number format ID shows
// a date or time.
func isBuiltinDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22, id >= 27 && id <= 36, id >= 45 && id <= 47, id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormatCode reports whether a custom format code contains date or
// time placeholders outside quoted text, escapes and [...] sections.
func isDateFormatCode(code string) bool {
	inQuote, inBracket, escaped := false, false, false
	for _, c := range strings.ToLower(code) {
		switch {
		case escaped:
			escaped = false
		case inQuote:
			inQuote = c != '"'
		case inBracket:
			inBracket = c != ']'
		case c == '\\' || c == '_' || c == '*':
			escaped = true
		case c == '"':
			inQuote = true
		case c == '[':
			inBracket = true
		case strings.ContainsRune("ymdhs", c):
			return true
		}
	}
	return false
}

func formatDate(t time.Time) string {
	t = t.Round(time.Second)
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04:05")
}

// typedValue converts the raw text of a cell into a JSON scalar.
// Only numeric cells are parsed as numbers; text that merely looks
// numeric (postcodes, phone numbers) stays a string.
func typedValue(cellType excelize.CellType, s string) interface{} {
	switch cellType {
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		return parseValue(s)
	case excelize.CellTypeBool:
		// Raw boolean cells hold "1" or "0".
		if b, err := strconv.ParseBool(s); err == nil {
			return b
		}
	}
	return s
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// NaN and Inf have no JSON form.
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	// Return as string
	return s
}

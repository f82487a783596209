package parser

import "strings"

// RegionLabel is the header of the region column.
const RegionLabel = "地区"

// fillLabels are the headers of columns that spreadsheets typically
// merge vertically.
var fillLabels = map[string]bool{
	RegionLabel: true,
	"市":         true,
	"县":         true,
	"区域":        true,
}

// IsFillColumn reports whether the column named name is forward-filled:
// one of the region, city, county or area headers, or any header
// containing the region label.
func IsFillColumn(name string) bool {
	return fillLabels[name] || strings.Contains(name, RegionLabel)
}

// ForwardFill replaces every nil value with the nearest preceding non-nil
// value. Leading nils stay nil.
func ForwardFill(values []interface{}) {
	var last interface{}
	for i, v := range values {
		if v == nil {
			values[i] = last
			continue
		}
		last = v
	}
}

// FillColumns forward-fills, in place, every column of rows whose header
// satisfies IsFillColumn.
func FillColumns(headers []string, rows [][]interface{}) {
	column := make([]interface{}, len(rows))
	for col, name := range headers {
		if !IsFillColumn(name) {
			continue
		}
		for i, row := range rows {
			column[i] = row[col]
		}
		ForwardFill(column)
		for i, row := range rows {
			row[col] = column[i]
		}
	}
}

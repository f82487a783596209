package parser

// sheetWidth returns the number of columns spanned by the non-empty cells
// of rows, i.e. the 1-based index of the rightmost non-empty column.
// Cells past that column are trailing padding and carry no data.
func sheetWidth(rows [][]string) int {
	maxCol := -1
	for _, row := range rows {
		for colIdx := len(row) - 1; colIdx > maxCol; colIdx-- {
			if !isBlank(row[colIdx]) {
				maxCol = colIdx
				break
			}
		}
	}
	return maxCol + 1
}

// isBlank reports whether a cell holds no value.
func isBlank(cell string) bool {
	return cell == ""
}

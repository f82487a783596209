package models

// SheetResult represents the converted content of a single sheet.
type SheetResult struct {
	// Desc maps field identifiers to their original header labels.
	Desc Object `json:"desc"`
	// Data contains one object per data row, keyed by column header.
	Data []Object `json:"data"`
}

// Columns returns the keys of the first data row, or nil for an empty sheet.
func (s SheetResult) Columns() []string {
	if len(s.Data) == 0 {
		return nil
	}
	return s.Data[0].Keys()
}

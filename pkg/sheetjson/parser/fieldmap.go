package parser

import "github.com/geoyee/HuBeiMap/pkg/sheetjson/models"

// FieldEntry associates a header label with its output field identifier.
type FieldEntry struct {
	Label string
	ID    string
}

// fieldTable is the fixed label table, in output order.
var fieldTable = []FieldEntry{
	{Label: RegionLabel, ID: "region"},
	{Label: "地标名称", ID: "landmark_name"},
	{Label: "地标简介", ID: "description"},
	{Label: "地标所反映的精神", ID: "spirit"},
	{Label: "地标所反映的精神内涵", ID: "spirit_content"},
	{Label: "地标所处时代", ID: "era"},
	{Label: "反映事件年代", ID: "event_year"},
}

var (
	labelToID = make(map[string]string, len(fieldTable))
	idToLabel = make(map[string]string, len(fieldTable))
)

func init() {
	for _, e := range fieldTable {
		labelToID[e.Label] = e.ID
		idToLabel[e.ID] = e.Label
	}
}

// FieldEntries returns a copy of the label table.
func FieldEntries() []FieldEntry {
	entries := make([]FieldEntry, len(fieldTable))
	copy(entries, fieldTable)
	return entries
}

// Identifier returns the field identifier for a header label.
func Identifier(label string) (string, bool) {
	id, ok := labelToID[label]
	return id, ok
}

// Label returns the header label of a field identifier.
func Label(id string) (string, bool) {
	label, ok := idToLabel[id]
	return label, ok
}

// TranslateHeaders renames every header that exactly equals a known label
// to its identifier. Other headers are returned unchanged.
func TranslateHeaders(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		if id, ok := Identifier(h); ok {
			out[i] = id
			continue
		}
		out[i] = h
	}
	return out
}

// Desc builds the identifier to label description of a sheet.
// Only identifiers present in headers are included unless full is set,
// in which case the whole table is returned.
func Desc(headers []string, full bool) models.Object {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}

	desc := models.Object{}
	for _, e := range fieldTable {
		if full || present[e.ID] {
			desc = append(desc, models.Field{Key: e.ID, Value: e.Label})
		}
	}
	return desc
}

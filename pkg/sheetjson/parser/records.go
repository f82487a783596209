package parser

import "github.com/geoyee/HuBeiMap/pkg/sheetjson/models"

// Materialize converts data rows into objects keyed by headers.
// When two columns share a key the later value wins and the key keeps the
// position of its first column.
func Materialize(headers []string, rows [][]interface{}) []models.Object {
	records := make([]models.Object, 0, len(rows))
	for _, row := range rows {
		record := make(models.Object, 0, len(headers))
		for col, key := range headers {
			record.Set(key, row[col])
		}
		records = append(records, record)
	}
	return records
}

// Package stats summarizes converted documents.
package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/geoyee/HuBeiMap/pkg/sheetjson/models"
)

// DefaultField is the field counted when none is given.
const DefaultField = "region"

// nullKey names the bucket of records whose field is null or missing.
const nullKey = "null"

// Count is the number of records sharing one field value.
type Count struct {
	Value string
	N     int
}

// Load reads a JSON document written by the converter.
func Load(path string) (*models.ConversionResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var result models.ConversionResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &result, nil
}

// CountBy counts the records of every sheet by the value of field.
// Counts are sorted in descending order; equal counts keep the order in
// which their value first appeared.
func CountBy(result *models.ConversionResult, field string) []Count {
	index := make(map[string]int)
	var counts []Count

	for _, s := range result.Sheets {
		for _, record := range s.Sheet.Data {
			key := nullKey
			if v, ok := record.Get(field); ok && v != nil {
				key = fmt.Sprint(v)
			}
			i, seen := index[key]
			if !seen {
				i = len(counts)
				index[key] = i
				counts = append(counts, Count{Value: key})
			}
			counts[i].N++
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].N > counts[j].N
	})
	return counts
}

// ToObject converts counts into an ordered value → count object.
func ToObject(counts []Count) models.Object {
	obj := make(models.Object, 0, len(counts))
	for _, c := range counts {
		obj = append(obj, models.Field{Key: c.Value, Value: c.N})
	}
	return obj
}

package parser

import (
	"reflect"
	"testing"

	"github.com/geoyee/HuBeiMap/pkg/sheetjson/models"
)

func TestNormalizeHeaders(t *testing.T) {
	tests := []struct {
		name     string
		raw      []string
		expected []string
	}{
		{
			name:     "trims labels",
			raw:      []string{" 地区 ", "地标名称\n", "随便"},
			expected: []string{"地区", "地标名称", "随便"},
		},
		{
			name:     "blank header at index 3 becomes 列4",
			raw:      []string{"地区", "地标名称", "地标简介", ""},
			expected: []string{"地区", "地标名称", "地标简介", "列4"},
		},
		{
			name:     "whitespace and unnamed markers",
			raw:      []string{"  ", "Unnamed: 1", "xUnnamedx"},
			expected: []string{"列1", "列2", "列3"},
		},
		{
			name:     "duplicates get suffixes",
			raw:      []string{"市", "市", "市.1", "市"},
			expected: []string{"市", "市.1", "市.1.1", "市.2"},
		},
		{
			name:     "empty row",
			raw:      []string{},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeHeaders(tt.raw)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("NormalizeHeaders(%q) = %q, expected %q", tt.raw, result, tt.expected)
			}
		})
	}
}

func TestPlaceholderName(t *testing.T) {
	if got := PlaceholderName(0); got != "列1" {
		t.Errorf("PlaceholderName(0) = %q, expected 列1", got)
	}
	if got := PlaceholderName(11); got != "列12" {
		t.Errorf("PlaceholderName(11) = %q, expected 列12", got)
	}
}

func TestIsFillColumn(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"地区", true},
		{"市", true},
		{"县", true},
		{"区域", true},
		{"所属地区", true},
		{"地区.1", true},
		{"城市", false},
		{"区", false},
		{"地标名称", false},
		{"region", false},
		{"", false},
	}

	for _, tt := range tests {
		if result := IsFillColumn(tt.name); result != tt.expected {
			t.Errorf("IsFillColumn(%q) = %v, expected %v", tt.name, result, tt.expected)
		}
	}
}

func TestForwardFill(t *testing.T) {
	tests := []struct {
		name     string
		values   []interface{}
		expected []interface{}
	}{
		{
			name:     "carries values down",
			values:   []interface{}{"A", nil, nil, "B", nil},
			expected: []interface{}{"A", "A", "A", "B", "B"},
		},
		{
			name:     "leading blanks stay blank",
			values:   []interface{}{nil, nil, "A", nil},
			expected: []interface{}{nil, nil, "A", "A"},
		},
		{
			name:     "numbers",
			values:   []interface{}{int64(1), nil, 2.5, nil},
			expected: []interface{}{int64(1), int64(1), 2.5, 2.5},
		},
		{
			name:     "all blank",
			values:   []interface{}{nil, nil},
			expected: []interface{}{nil, nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ForwardFill(tt.values)
			if !reflect.DeepEqual(tt.values, tt.expected) {
				t.Errorf("ForwardFill = %v, expected %v", tt.values, tt.expected)
			}
		})
	}
}

func TestFillColumns(t *testing.T) {
	headers := []string{"地区", "地标名称", "县"}
	rows := [][]interface{}{
		{"武汉市", "A", "江岸区"},
		{nil, "B", nil},
		{"黄冈市", nil, nil},
		{nil, "D", "红安县"},
	}

	FillColumns(headers, rows)

	expected := [][]interface{}{
		{"武汉市", "A", "江岸区"},
		{"武汉市", "B", "江岸区"},
		{"黄冈市", nil, "江岸区"},
		{"黄冈市", "D", "红安县"},
	}
	if !reflect.DeepEqual(rows, expected) {
		t.Errorf("FillColumns = %v, expected %v", rows, expected)
	}
}

func TestTranslateHeaders(t *testing.T) {
	headers := []string{"地区", "地标名称", "随便", "地标所反映的精神内涵", "反映事件年代 ", "列6"}
	expected := []string{"region", "landmark_name", "随便", "spirit_content", "反映事件年代 ", "列6"}

	if result := TranslateHeaders(headers); !reflect.DeepEqual(result, expected) {
		t.Errorf("TranslateHeaders = %q, expected %q", result, expected)
	}
}

func TestFieldTableIsBidirectional(t *testing.T) {
	entries := FieldEntries()
	if len(entries) != 7 {
		t.Fatalf("Expected 7 entries, got %d", len(entries))
	}
	for _, e := range entries {
		id, ok := Identifier(e.Label)
		if !ok || id != e.ID {
			t.Errorf("Identifier(%q) = %q, %v", e.Label, id, ok)
		}
		label, ok := Label(e.ID)
		if !ok || label != e.Label {
			t.Errorf("Label(%q) = %q, %v", e.ID, label, ok)
		}
	}

	// Callers cannot alter the table through the returned copy.
	entries[0].ID = "changed"
	if id, _ := Identifier("地区"); id != "region" {
		t.Errorf("Field table was modified through FieldEntries")
	}
}

func TestDesc(t *testing.T) {
	headers := []string{"随便", "era", "region", "列4"}

	present := Desc(headers, false)
	expected := models.Object{
		{Key: "region", Value: "地区"},
		{Key: "era", Value: "地标所处时代"},
	}
	if !reflect.DeepEqual(present, expected) {
		t.Errorf("Desc(present) = %v, expected %v", present, expected)
	}

	full := Desc(headers, true)
	if len(full) != 7 {
		t.Fatalf("Expected 7 entries in full desc, got %d", len(full))
	}
	if full[6].Key != "event_year" || full[6].Value != "反映事件年代" {
		t.Errorf("Unexpected last entry %v", full[6])
	}

	if empty := Desc(nil, false); empty == nil || len(empty) != 0 {
		t.Errorf("Expected empty non-nil desc, got %#v", empty)
	}
}

func TestMaterialize(t *testing.T) {
	headers := []string{"region", "landmark_name", "随便"}
	rows := [][]interface{}{
		{"武汉市", "八七会议会址", nil},
		{"武汉市", nil, int64(3)},
	}

	records := Materialize(headers, rows)
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	expected := models.Object{
		{Key: "region", Value: "武汉市"},
		{Key: "landmark_name", Value: nil},
		{Key: "随便", Value: int64(3)},
	}
	if !reflect.DeepEqual(records[1], expected) {
		t.Errorf("Materialize()[1] = %v, expected %v", records[1], expected)
	}
}

func TestMaterializeCollidingKeys(t *testing.T) {
	headers := []string{"region", "x", "region"}
	rows := [][]interface{}{{"a", "b", "c"}}

	records := Materialize(headers, rows)
	expected := models.Object{
		{Key: "region", Value: "c"},
		{Key: "x", Value: "b"},
	}
	if !reflect.DeepEqual(records[0], expected) {
		t.Errorf("Materialize()[0] = %v, expected %v", records[0], expected)
	}
}

func TestMaterializeNoRows(t *testing.T) {
	records := Materialize([]string{"a"}, nil)
	if records == nil || len(records) != 0 {
		t.Errorf("Expected empty non-nil records, got %#v", records)
	}
}

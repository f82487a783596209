package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"

	"github.com/geoyee/HuBeiMap/pkg/sheetjson/models"
)

func sampleResult() models.ConversionResult {
	var r models.ConversionResult
	r.Add("武汉", models.SheetResult{
		Desc: models.Object{{Key: "region", Value: "地区"}},
		Data: []models.Object{
			{{Key: "region", Value: "武汉市"}, {Key: "列2", Value: nil}},
		},
	})
	return r
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(sampleResult())
	require.NoError(t, err)

	expected := `{
  "武汉": {
    "desc": {
      "region": "地区"
    },
    "data": [
      {
        "region": "武汉市",
        "列2": null
      }
    ]
  }
}`
	assert.Equal(t, expected, string(data))
}

func TestToJSONKeepsSpecialCharacters(t *testing.T) {
	data, err := ToJSON(models.Object{{Key: "k", Value: "A&B <红安>"}})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"k\": \"A&B <红安>\"\n}", string(data))
}

func TestToJSONLineSeparators(t *testing.T) {
	data, err := ToJSON(models.Object{{Key: "k", Value: "一\u2028二\u2029三"}})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"k\": \"一\u2028二\u2029三\"\n}", string(data))
	assert.NotContains(t, string(data), `\u2028`)
}

func TestToJSONEscapedBackslashBeforeSeparatorText(t *testing.T) {
	// The cell holds a literal backslash followed by "u2028".
	data, err := ToJSON(models.Object{{Key: "k", Value: `a\u2028b`}})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"k\": \"a\\\\u2028b\"\n}", string(data))
}

func TestToJSONEmptyCollections(t *testing.T) {
	var r models.ConversionResult
	r.Add("空", models.SheetResult{Desc: models.Object{}, Data: []models.Object{}})

	data, err := ToJSON(r)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"空\": {\n    \"desc\": {},\n    \"data\": []\n  }\n}", string(data))
}

func TestLookupEncoding(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"", false},
		{"utf-8", false},
		{"UTF8", false},
		{"utf_8", false},
		{"utf-8-sig", false},
		{"gbk", false},
		{"GB2312", false},
		{"gb18030", false},
		{"cp936", false},
		{"big5", false},
		{"hz-gb-2312", false},
		{"no-such-codec", true},
		{"iso-2022-kr", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := LookupEncoding(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedEncoding)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, enc)
		})
	}
}

func TestLookupEncodingDefaultsToUTF8(t *testing.T) {
	enc, err := LookupEncoding("")
	require.NoError(t, err)
	assert.Equal(t, unicode.UTF8, enc)
}

func TestWriteFileUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	enc, err := LookupEncoding("utf-8")
	require.NoError(t, err)

	require.NoError(t, WriteFile(path, sampleResult(), enc))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	want, err := ToJSON(sampleResult())
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Contains(t, string(got), "武汉市")
}

func TestWriteFileGBK(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	enc, err := LookupEncoding("gbk")
	require.NoError(t, err)

	require.NoError(t, WriteFile(path, sampleResult(), enc))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "武汉市", "file should not be UTF-8")

	decoded, err := simplifiedchinese.GBK.NewDecoder().Bytes(raw)
	require.NoError(t, err)
	want, err := ToJSON(sampleResult())
	require.NoError(t, err)
	assert.Equal(t, string(want), string(decoded))
}

func TestWriteFileUnencodableText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	enc, err := LookupEncoding("gbk")
	require.NoError(t, err)

	v := models.Object{{Key: "emoji", Value: "🚩"}}
	assert.Error(t, WriteFile(path, v, enc))
}

func TestWriteFileBadDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.json")
	enc, err := LookupEncoding("")
	require.NoError(t, err)

	assert.Error(t, WriteFile(path, sampleResult(), enc))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

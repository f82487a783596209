// Package sheetjson converts spreadsheet workbooks into JSON documents.
package sheetjson

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Options configures conversion behavior.
type Options struct {
	// SheetName selects a single sheet. Empty converts every sheet.
	SheetName string
	// OutputPath is the JSON file to write.
	// Empty writes next to the input with a .json extension.
	OutputPath string
	// Encoding is the text encoding of the output file (default utf-8).
	Encoding string
	// FullDesc emits every known field in desc instead of only the ones
	// present in the sheet.
	FullDesc bool
	// Password opens encrypted workbooks.
	Password string
	// Logger receives progress messages. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		Encoding: "utf-8",
	}
}

// AllSheets reports whether every sheet of the workbook is converted.
func (o Options) AllSheets() bool {
	return o.SheetName == ""
}

// ResolveOutputPath returns the output path for inputPath.
func (o Options) ResolveOutputPath(inputPath string) string {
	if o.OutputPath != "" {
		return o.OutputPath
	}
	return DefaultOutputPath(inputPath)
}

// DefaultOutputPath replaces the extension of inputPath with .json.
func DefaultOutputPath(inputPath string) string {
	dir, base := filepath.Split(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, stem+".json")
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

package sheetjson

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/geoyee/HuBeiMap/pkg/sheetjson/models"
	"github.com/geoyee/HuBeiMap/pkg/sheetjson/output"
	"github.com/geoyee/HuBeiMap/pkg/sheetjson/parser"
)

// Convert reads a workbook and converts the selected sheets.
// Nothing is written to disk.
func Convert(path string, opts Options) (*models.ConversionResult, error) {
	if err := checkInput(path); err != nil {
		return nil, err
	}
	log := opts.logger()

	log.Info("reading workbook", zap.String("path", path))
	f, err := excelize.OpenFile(path, excelize.Options{Password: opts.Password})
	if err != nil {
		return nil, NewConversionError("", StageOpen, fmt.Errorf("%w: %w", ErrInvalidFormat, err))
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if !opts.AllSheets() {
		if !slices.Contains(sheetList, opts.SheetName) {
			return nil, NewConversionError(opts.SheetName, StageRead, ErrSheetNotFound)
		}
		sheetList = []string{opts.SheetName}
	}

	result := &models.ConversionResult{}
	for _, sheetName := range sheetList {
		log.Info("processing sheet", zap.String("sheet", sheetName))
		sheet, err := ConvertSheet(f, sheetName, opts.FullDesc)
		if err != nil {
			return nil, NewConversionError(sheetName, StageRead, err)
		}
		result.Add(sheetName, sheet)
		log.Info("sheet converted",
			zap.String("sheet", sheetName),
			zap.Int("rows", len(sheet.Data)))
	}

	return result, nil
}

// ConvertSheet converts one sheet of an open workbook: placeholder
// headers, forward-fill of region-like columns, field renaming and row
// materialization.
func ConvertSheet(f *excelize.File, sheetName string, fullDesc bool) (models.SheetResult, error) {
	table, err := parser.LoadTable(f, sheetName)
	if err != nil {
		return models.SheetResult{}, err
	}

	headers := parser.NormalizeHeaders(table.Header)
	parser.FillColumns(headers, table.Rows)
	keys := parser.TranslateHeaders(headers)

	return models.SheetResult{
		Desc: parser.Desc(keys, fullDesc),
		Data: parser.Materialize(keys, table.Rows),
	}, nil
}

// ConvertToFile converts a workbook and writes the JSON document to
// opts.OutputPath, or next to the input when unset.
// The result is nil whenever an error is returned. A missing input is
// reported before any output file is created.
func ConvertToFile(path string, opts Options) (*models.ConversionResult, error) {
	if err := checkInput(path); err != nil {
		return nil, err
	}
	log := opts.logger()

	enc, err := output.LookupEncoding(opts.Encoding)
	if err != nil {
		return nil, NewConversionError("", StageEncode, err)
	}

	result, err := Convert(path, opts)
	if err != nil {
		return nil, err
	}

	outputPath := opts.ResolveOutputPath(path)
	log.Info("writing JSON file", zap.String("path", outputPath))
	if err := output.WriteFile(outputPath, result, enc); err != nil {
		return nil, NewConversionError("", StageWrite, err)
	}

	log.Info("conversion complete",
		zap.String("output", outputPath),
		zap.Int("sheets", result.Len()),
		zap.Int("rows", result.TotalRows()))

	return result, nil
}

func checkInput(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	return nil
}

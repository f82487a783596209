package sheetjson

import (
	"errors"
	"fmt"

	"github.com/geoyee/HuBeiMap/pkg/sheetjson/output"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable workbook.
var ErrInvalidFormat = errors.New("invalid workbook format")

// ErrSheetNotFound indicates the requested sheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrUnsupportedEncoding indicates an unknown output encoding.
var ErrUnsupportedEncoding = output.ErrUnsupportedEncoding

// Stage names the step of a conversion that failed.
type Stage string

const (
	StageOpen   Stage = "open"
	StageRead   Stage = "read"
	StageEncode Stage = "encode"
	StageWrite  Stage = "write"
)

// ConversionError represents a failure after the input file was found.
type ConversionError struct {
	SheetName string // empty for workbook-level failures
	Stage     Stage
	Err       error
}

func (e *ConversionError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("conversion error (%s): %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("conversion error in sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new ConversionError.
func NewConversionError(sheetName string, stage Stage, err error) *ConversionError {
	return &ConversionError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}

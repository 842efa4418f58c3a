package sheetdsl

import (
	"errors"
	"fmt"
)

// ErrInvalidColumn indicates a column outside the range allowed by its notation.
var ErrInvalidColumn = errors.New("invalid column")

// ErrInvalidRow indicates a row that is not greater than 0.
var ErrInvalidRow = errors.New("invalid row")

// ValidationError represents a rejected cell reference.
type ValidationError struct {
	Notation string // "A1" or "R1C1"
	Field    string // "column", "row" or "name"
	Value    string
	Err      error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s reference: %s %s: %v", e.Notation, e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError.
func NewValidationError(notation, field, value string, err error) *ValidationError {
	return &ValidationError{
		Notation: notation,
		Field:    field,
		Value:    value,
		Err:      err,
	}
}

// ExtractionError represents an error while building a snapshot of a spreadsheet.
type ExtractionError struct {
	SheetName string
	Component string // "cells", "references"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}

// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"errors"
	"fmt"
)

// Errors reported by Parse and Store.Load, wrapped in a *SyntaxError.
var (
	ErrMalformedSectionHeader = errors.New("malformed section header")
	ErrUnrecognizedLine       = errors.New("could not find '='")
	ErrEmptyKeyOrValue        = errors.New("empty key or value")
	ErrPropertyOutsideSection = errors.New("property outside of any section")
)

// Errors reported by Store lookups.
var (
	ErrSectionNotFound  = errors.New("section not found")
	ErrPropertyNotFound = errors.New("property not found")
)

// A SyntaxError describes the first structurally invalid line in an INI
// source. Err is one of ErrMalformedSectionHeader, ErrUnrecognizedLine,
// ErrEmptyKeyOrValue, or ErrPropertyOutsideSection.
type SyntaxError struct {
	// Name identifies the source, usually a file path. It may be empty.
	Name string
	// Line is the 1-based line number.
	Line int
	Err  error
}

func (e *SyntaxError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("parse ini file: line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("parse ini file: %s:%d: %v", e.Name, e.Line, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// A ConversionError is returned when a property value cannot be converted
// to the requested type.
type ConversionError struct {
	Section string
	// Key is empty if the error came from Store.Decode.
	Key string
	// Type describes the target type, like "int" or "time.Duration".
	Type string
	Err  error
}

func (e *ConversionError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("ini: [%s]: cannot decode into %s: %v", e.Section, e.Type, e.Err)
	}
	return fmt.Sprintf("ini: [%s] %s: cannot convert to %s: %v", e.Section, e.Key, e.Type, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// Package errors provides custom error types for the synlink pipeline.
// These errors enable better error handling, programmatic error checking,
// and improved debugging throughout the application.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the synlink pipeline
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingMapping indicates a chromosome name with no replacement mapping
	ErrMissingMapping = errors.New("missing mapping")

	// ErrInvalidRange indicates a chromosome range whose start is not below its end
	ErrInvalidRange = errors.New("invalid range")

	// ErrSchema indicates an input table that does not match its expected schema
	ErrSchema = errors.New("schema mismatch")

	// ErrUnmappedChromosome indicates a chromosome that should have a color but has none
	ErrUnmappedChromosome = errors.New("unmapped chromosome")

	// ErrRender indicates that the external rendering step failed
	ErrRender = errors.New("render failed")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// MissingMappingError represents a chromosome name absent from a replacement map
type MissingMappingError struct {
	Species int
	Chr     string
}

// Error implements the error interface
func (e *MissingMappingError) Error() string {
	if e.Species != 0 {
		return fmt.Sprintf("no replacement mapping for chromosome %q (species %d)", e.Chr, e.Species)
	}
	return fmt.Sprintf("no replacement mapping for chromosome %q", e.Chr)
}

// Is implements errors.Is support
func (e *MissingMappingError) Is(target error) bool {
	return target == ErrMissingMapping
}

// NewMissingMappingError creates a new MissingMappingError
func NewMissingMappingError(species int, chr string) *MissingMappingError {
	return &MissingMappingError{Species: species, Chr: chr}
}

// InvalidRangeError represents a karyotype record whose coordinates are not a valid range
type InvalidRangeError struct {
	File  string
	Line  int
	Chr   string
	Start int
	End   int
}

// Error implements the error interface
func (e *InvalidRangeError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("invalid range [%d, %d] for chromosome %s at %s:%d", e.Start, e.End, e.Chr, e.File, e.Line)
	}
	return fmt.Sprintf("invalid range [%d, %d] for chromosome %s", e.Start, e.End, e.Chr)
}

// Is implements errors.Is support
func (e *InvalidRangeError) Is(target error) bool {
	return target == ErrInvalidRange || target == ErrInvalidInput
}

// NewInvalidRangeError creates a new InvalidRangeError
func NewInvalidRangeError(file string, line int, chr string, start, end int) *InvalidRangeError {
	return &InvalidRangeError{File: file, Line: line, Chr: chr, Start: start, End: end}
}

// SchemaError represents an input table that is missing required columns
// or is otherwise structurally unreadable
type SchemaError struct {
	File    string
	Table   string
	Missing []string
	Message string
}

// Error implements the error interface
func (e *SchemaError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("schema error in %s table %s: missing columns %v", e.Table, e.File, e.Missing)
	}
	return fmt.Sprintf("schema error in %s table %s: %s", e.Table, e.File, e.Message)
}

// Is implements errors.Is support
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema || target == ErrInvalidInput
}

// NewSchemaError creates a new SchemaError
func NewSchemaError(table, file, message string, missing ...string) *SchemaError {
	return &SchemaError{File: file, Table: table, Missing: missing, Message: message}
}

// UnmappedChromosomeError represents a matched chromosome with no assigned color
type UnmappedChromosomeError struct {
	Chr string
}

// Error implements the error interface
func (e *UnmappedChromosomeError) Error() string {
	return fmt.Sprintf("chromosome %s carries matched markers but has no color assignment", e.Chr)
}

// Is implements errors.Is support
func (e *UnmappedChromosomeError) Is(target error) bool {
	return target == ErrUnmappedChromosome
}

// NewUnmappedChromosomeError creates a new UnmappedChromosomeError
func NewUnmappedChromosomeError(chr string) *UnmappedChromosomeError {
	return &UnmappedChromosomeError{Chr: chr}
}

// RenderError represents a failure of the external rendering step
type RenderError struct {
	Script  string
	Command string
	Output  string
	Err     error
}

// Error implements the error interface
func (e *RenderError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("render failed for %s (command: %s): %v\nOutput: %s", e.Script, e.Command, e.Err, e.Output)
	}
	return fmt.Sprintf("render failed for %s (command: %s): %v", e.Script, e.Command, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *RenderError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *RenderError) Is(target error) bool {
	return target == ErrRender
}

// NewRenderError creates a new RenderError
func NewRenderError(script, command, output string, err error) *RenderError {
	return &RenderError{Script: script, Command: command, Output: output, Err: err}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing input tables
type ParseError struct {
	Table   string // "karyotype", "busco", "replacement", etc.
	File    string
	Line    int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("parse error in %s table at %s:%d: %s", e.Table, e.File, e.Line, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s table %s: %s", e.Table, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Table, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(table, file string, line int, message string, err error) *ParseError {
	return &ParseError{
		Table:   table,
		File:    file,
		Line:    line,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "delete", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsMissingMapping checks if an error is a missing mapping error
func IsMissingMapping(err error) bool {
	return errors.Is(err, ErrMissingMapping)
}

// IsInvalidRange checks if an error is an invalid range error
func IsInvalidRange(err error) bool {
	return errors.Is(err, ErrInvalidRange)
}

// IsSchema checks if an error is a schema error
func IsSchema(err error) bool {
	return errors.Is(err, ErrSchema)
}

// IsUnmappedChromosome checks if an error is an unmapped chromosome error
func IsUnmappedChromosome(err error) bool {
	return errors.Is(err, ErrUnmappedChromosome)
}

// IsRender checks if an error is a render error
func IsRender(err error) bool {
	return errors.Is(err, ErrRender)
}

// IsCanceled checks if an error is a cancellation error
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(table, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(table, file, 0, err.Error(), err)
}

// WrapRender wraps an error as a RenderError
func WrapRender(script, command string, err error) error {
	if err == nil {
		return nil
	}
	return NewRenderError(script, command, "", err)
}

package manifest

import (
	"errors"
	"fmt"
)

// Sentinel errors for the manifest package
var (
	// ErrFileNotFound indicates the manifest file does not exist
	ErrFileNotFound = errors.New("manifest file not found")

	// ErrUnsupportedExt indicates an unsupported file extension
	ErrUnsupportedExt = errors.New("unsupported file extension (use .yaml, .yml, or .json)")

	// ErrMalformedDocument indicates the manifest is not well-formed YAML or JSON
	ErrMalformedDocument = errors.New("manifest must be valid YAML or JSON")

	// ErrInvalidSchema indicates a required field is missing or has the wrong type
	ErrInvalidSchema = errors.New("manifest does not match the expected schema")
)

// ParseError reports a document the codec could not decode at all.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed manifest: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrMalformedDocument) match any ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedDocument
}

// SchemaError reports a required field that is missing or of the wrong
// semantic type. Path locates the offending node in the document,
// e.g. "repos[1].hooks[0]".
type SchemaError struct {
	Path   string
	Reason string
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("schema error: %s", e.Reason)
	}
	return fmt.Sprintf("schema error at %s: %s", e.Path, e.Reason)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrInvalidSchema) match any SchemaError.
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}

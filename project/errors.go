package project

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSourceTree indicates an unrecognized source tree tag
	ErrInvalidSourceTree = errors.New("invalid source tree")

	// ErrNoSourcesPhase indicates the target has no sources build phase
	ErrNoSourcesPhase = errors.New("target has no sources build phase")

	// ErrNoMainGroup indicates the project has no main group
	ErrNoMainGroup = errors.New("project has no main group")
)

// TargetNotFoundError indicates no target with the requested name
// exists in the project.
type TargetNotFoundError struct {
	// Target is the requested target name
	Target string
}

// Error implements the error interface.
func (e *TargetNotFoundError) Error() string {
	return fmt.Sprintf("target not found: %s", e.Target)
}

// ConfigurationNotFoundError indicates the target has no build
// configuration with the requested name.
type ConfigurationNotFoundError struct {
	// Target is the target whose configuration list was searched
	Target string

	// Configuration is the requested configuration name
	Configuration string
}

// Error implements the error interface.
func (e *ConfigurationNotFoundError) Error() string {
	return fmt.Sprintf("configuration %q not found for target %q", e.Configuration, e.Target)
}

// UnsupportedFileTypeError indicates a file extension outside the
// supported source and resource set.
type UnsupportedFileTypeError struct {
	// Path is the offending file path
	Path string
}

// Error implements the error interface.
func (e *UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.Path)
}

// RootObjectNotFoundError indicates the document's rootObject
// reference does not resolve to a PBXProject object.
type RootObjectNotFoundError struct {
	// ID is the dangling root object identifier
	ID ObjectID
}

// Error implements the error interface.
func (e *RootObjectNotFoundError) Error() string {
	return fmt.Sprintf("root object not found: %s", e.ID)
}

// DanglingReferenceError indicates an identifier reference with no
// matching definition in the objects table.
type DanglingReferenceError struct {
	// ID is the unresolved identifier
	ID ObjectID

	// Referrer is the object containing the reference
	Referrer ObjectID

	// Field is the field within the referrer
	Field string
}

// Error implements the error interface.
func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("dangling reference %s in %s.%s", e.ID, e.Referrer, e.Field)
}

// DuplicateIdentifierError indicates the allocator handed out an
// identifier already present in the graph. The allocator registers
// identifiers at allocation time, so this should be unreachable.
type DuplicateIdentifierError struct {
	// ID is the colliding identifier
	ID ObjectID
}

// Error implements the error interface.
func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("duplicate object identifier: %s", e.ID)
}

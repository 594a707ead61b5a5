package pbx

import "fmt"

// LexError reports a byte sequence outside the pbxproj grammar.
type LexError struct {
	// Offset is the byte offset of the offending character
	Offset int

	// Char is the offending byte
	Char byte

	// Message describes what went wrong
	Message string
}

// Error implements the error interface.
func (e *LexError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("offset %d: %s", e.Offset, e.Message)
	}
	return fmt.Sprintf("offset %d: illegal character %q", e.Offset, e.Char)
}

// ParseError reports a structural violation in the token stream.
type ParseError struct {
	// Offset is the byte offset where the error occurred
	Offset int

	// Expected describes what the parser was looking for
	Expected string

	// Found describes what it found instead
	Found string

	// Message carries additional detail (e.g. the duplicated key)
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("offset %d: %s", e.Offset, e.Message)
	}
	return fmt.Sprintf("offset %d: expected %s, found %s", e.Offset, e.Expected, e.Found)
}

// MalformedDocumentError reports a document whose top level does not have
// the fixed pbxproj shape (archiveVersion, classes, objectVersion, objects,
// rootObject).
type MalformedDocumentError struct {
	// Message names the missing or unexpected key
	Message string
}

// Error implements the error interface.
func (e *MalformedDocumentError) Error() string {
	return "malformed project document: " + e.Message
}

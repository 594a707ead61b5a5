package pbx

import "fmt"

// TokenType identifies the kind of a lexed token.
type TokenType int

const (
	// TokenEOF marks the end of input
	TokenEOF TokenType = iota

	// TokenWord is a bare (unquoted) token
	TokenWord

	// TokenString is a quoted string with escapes decoded
	TokenString

	// TokenLBrace is '{'
	TokenLBrace

	// TokenRBrace is '}'
	TokenRBrace

	// TokenLParen is '('
	TokenLParen

	// TokenRParen is ')'
	TokenRParen

	// TokenSemicolon is ';'
	TokenSemicolon

	// TokenComma is ','
	TokenComma

	// TokenEquals is '='
	TokenEquals
)

// String returns a human-readable name for the token type.
func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "end of input"
	case TokenWord:
		return "word"
	case TokenString:
		return "string"
	case TokenLBrace:
		return "'{'"
	case TokenRBrace:
		return "'}'"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	case TokenSemicolon:
		return "';'"
	case TokenComma:
		return "','"
	case TokenEquals:
		return "'='"
	default:
		return fmt.Sprintf("token(%d)", int(t))
	}
}

// Token is a single lexical unit of a pbxproj document.
type Token struct {
	// Type is the token kind
	Type TokenType

	// Text is the decoded text for word and string tokens
	Text string

	// Offset is the byte offset of the token start in the input
	Offset int

	// Comment is the text of a block comment that immediately preceded
	// this token, with delimiters stripped and surrounding space trimmed.
	// The "ID /* name */" annotation convention is recovered by reading
	// the comment off the token that follows the annotated one.
	Comment string

	// Quoted reports whether a word arrived in source as a quoted string
	Quoted bool
}

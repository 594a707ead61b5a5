package pbx

import "strings"

// Lexer splits pbxproj source into tokens. Block comments are not
// emitted as tokens; each one is attached as trivia to the token that
// follows it, which is how the "ID /* name */" annotation convention
// is recovered by the parser.
type Lexer struct {
	src []byte
	pos int
}

// NewLexer creates a lexer over src.
func NewLexer(src []byte) *Lexer {
	return &Lexer{src: src}
}

// isWordChar reports whether c may appear in a bare (unquoted) token.
func isWordChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_' || c == '$' || c == '.' || c == '/' || c == '-':
		return true
	}
	return false
}

// Next returns the next token, or a LexError on input outside the
// grammar. The final token has type TokenEOF.
func (l *Lexer) Next() (Token, error) {
	comment := ""

	for {
		l.skipSpace()

		if l.pos >= len(l.src) {
			return Token{Type: TokenEOF, Offset: l.pos, Comment: comment}, nil
		}

		c := l.src[l.pos]
		switch {
		case c == '/' && l.peek(1) == '*':
			text, err := l.scanBlockComment()
			if err != nil {
				return Token{}, err
			}
			comment = text
			continue
		case c == '/' && l.peek(1) == '/':
			l.skipLineComment()
			continue
		}

		start := l.pos
		switch c {
		case '{':
			l.pos++
			return Token{Type: TokenLBrace, Offset: start, Comment: comment}, nil
		case '}':
			l.pos++
			return Token{Type: TokenRBrace, Offset: start, Comment: comment}, nil
		case '(':
			l.pos++
			return Token{Type: TokenLParen, Offset: start, Comment: comment}, nil
		case ')':
			l.pos++
			return Token{Type: TokenRParen, Offset: start, Comment: comment}, nil
		case ';':
			l.pos++
			return Token{Type: TokenSemicolon, Offset: start, Comment: comment}, nil
		case ',':
			l.pos++
			return Token{Type: TokenComma, Offset: start, Comment: comment}, nil
		case '=':
			l.pos++
			return Token{Type: TokenEquals, Offset: start, Comment: comment}, nil
		case '"':
			text, err := l.scanString()
			if err != nil {
				return Token{}, err
			}
			return Token{Type: TokenString, Text: text, Offset: start, Comment: comment, Quoted: true}, nil
		}

		if isWordChar(c) {
			end := l.pos
			for end < len(l.src) && isWordChar(l.src[end]) {
				end++
			}
			text := string(l.src[l.pos:end])
			l.pos = end
			return Token{Type: TokenWord, Text: text, Offset: start, Comment: comment}, nil
		}

		return Token{}, &LexError{Offset: l.pos, Char: c}
	}
}

func (l *Lexer) peek(n int) byte {
	if l.pos+n >= len(l.src) {
		return 0
	}
	return l.src[l.pos+n]
}

func (l *Lexer) skipSpace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.pos++
		default:
			return
		}
	}
}

// scanBlockComment consumes "/* ... */" and returns the trimmed body.
func (l *Lexer) scanBlockComment() (string, error) {
	start := l.pos
	l.pos += 2 // consume "/*"
	for l.pos+1 < len(l.src) {
		if l.src[l.pos] == '*' && l.src[l.pos+1] == '/' {
			body := string(l.src[start+2 : l.pos])
			l.pos += 2
			return strings.TrimSpace(body), nil
		}
		l.pos++
	}
	return "", &LexError{Offset: start, Char: '*', Message: "unterminated block comment"}
}

func (l *Lexer) skipLineComment() {
	for l.pos < len(l.src) && l.src[l.pos] != '\n' {
		l.pos++
	}
}

// scanString consumes a quoted string and returns the decoded body.
// Recognized escapes: \" \\ \n \t \r. Any other backslash sequence is
// kept verbatim.
func (l *Lexer) scanString() (string, error) {
	start := l.pos
	l.pos++ // consume opening quote

	var b strings.Builder
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch c {
		case '"':
			l.pos++
			return b.String(), nil
		case '\\':
			if l.pos+1 >= len(l.src) {
				return "", &LexError{Offset: start, Char: '"', Message: "unterminated string"}
			}
			switch l.src[l.pos+1] {
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				b.WriteByte('\\')
				b.WriteByte(l.src[l.pos+1])
			}
			l.pos += 2
		default:
			b.WriteByte(c)
			l.pos++
		}
	}
	return "", &LexError{Offset: start, Char: '"', Message: "unterminated string"}
}

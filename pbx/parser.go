package pbx

// Document is a parsed project.pbxproj file. The top level of the
// format is fixed: five known keys and nothing else.
type Document struct {
	// ArchiveVersion is the archiveVersion scalar (currently "1")
	ArchiveVersion string

	// ObjectVersion is the objectVersion scalar (e.g. "46")
	ObjectVersion string

	// Classes is the classes dictionary (empty in every known file,
	// preserved verbatim)
	Classes *Dict

	// Objects maps object identifier to object dictionary, in source order
	Objects *Dict

	// RootObject is the identifier of the root PBXProject object
	RootObject string
}

// documentKeys is the exact set of keys a pbxproj document may carry
// at the top level.
var documentKeys = map[string]bool{
	"archiveVersion": true,
	"classes":        true,
	"objectVersion":  true,
	"objects":        true,
	"rootObject":     true,
}

// Parse parses pbxproj source into a Document. It returns a *LexError
// or *ParseError for grammar violations and a *MalformedDocumentError
// when the top level does not have the fixed document shape.
func Parse(src []byte) (*Document, error) {
	p := &parser{lex: NewLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}

	if p.tok.Type != TokenLBrace {
		return nil, p.unexpected("'{'")
	}
	root, err := p.parseDict()
	if err != nil {
		return nil, err
	}
	if p.tok.Type != TokenEOF {
		return nil, p.unexpected("end of input")
	}

	return buildDocument(root)
}

// buildDocument validates the top-level dictionary against the fixed
// document shape.
func buildDocument(root *Dict) (*Document, error) {
	for _, key := range root.Keys() {
		if !documentKeys[key] {
			return nil, &MalformedDocumentError{Message: "unexpected top-level key " + key}
		}
	}
	for key := range documentKeys {
		if !root.Has(key) {
			return nil, &MalformedDocumentError{Message: "missing top-level key " + key}
		}
	}

	classes, ok := root.Get("classes")
	if !ok || classes.Kind != ValueDict {
		return nil, &MalformedDocumentError{Message: "classes must be a dictionary"}
	}
	objects, ok := root.Get("objects")
	if !ok || objects.Kind != ValueDict {
		return nil, &MalformedDocumentError{Message: "objects must be a dictionary"}
	}
	rootRef, ok := root.Get("rootObject")
	if !ok || rootRef.Kind != ValueRef {
		return nil, &MalformedDocumentError{Message: "rootObject must be an object identifier"}
	}

	return &Document{
		ArchiveVersion: root.GetString("archiveVersion"),
		ObjectVersion:  root.GetString("objectVersion"),
		Classes:        classes.Dict,
		Objects:        objects.Dict,
		RootObject:     rootRef.Str,
	}, nil
}

// parser is a recursive-descent parser with one token of lookahead.
type parser struct {
	lex *Lexer
	tok Token
}

func (p *parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) unexpected(expected string) error {
	found := p.tok.Type.String()
	if p.tok.Type == TokenWord || p.tok.Type == TokenString {
		found = "'" + p.tok.Text + "'"
	}
	return &ParseError{Offset: p.tok.Offset, Expected: expected, Found: found}
}

// parseValue parses the value starting at the current token. On
// return the current token is the first token after the value.
func (p *parser) parseValue() (*Value, error) {
	switch p.tok.Type {
	case TokenWord, TokenString:
		v := scalar(p.tok)
		if err := p.advance(); err != nil {
			return nil, err
		}
		return v, nil
	case TokenLBrace:
		d, err := p.parseDict()
		if err != nil {
			return nil, err
		}
		return &Value{Kind: ValueDict, Dict: d}, nil
	case TokenLParen:
		return p.parseList()
	default:
		return nil, p.unexpected("a value")
	}
}

// scalar classifies a word or string token. Bare 24-hex tokens are
// identifier references; everything else is a plain string.
func scalar(tok Token) *Value {
	if tok.Type == TokenWord && IsObjectID(tok.Text) {
		return &Value{Kind: ValueRef, Str: tok.Text}
	}
	return &Value{Kind: ValueString, Str: tok.Text, Quoted: tok.Quoted}
}

// parseDict parses "{ key = value; ... }" with the current token on
// the opening brace. Key order is preserved; duplicate keys are a
// ParseError.
func (p *parser) parseDict() (*Dict, error) {
	if err := p.advance(); err != nil { // consume '{'
		return nil, err
	}

	d := NewDict()
	for {
		if p.tok.Type == TokenRBrace {
			if err := p.advance(); err != nil {
				return nil, err
			}
			return d, nil
		}
		if p.tok.Type != TokenWord && p.tok.Type != TokenString {
			return nil, p.unexpected("a key or '}'")
		}

		entry := &Entry{Key: p.tok.Text}
		keyOffset := p.tok.Offset
		if d.Has(entry.Key) {
			return nil, &ParseError{Offset: keyOffset, Message: "duplicate key " + entry.Key}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}

		// A comment between key and '=' annotates the key
		// ("ID /* main.m in Sources */ = { ... }").
		if p.tok.Type != TokenEquals {
			return nil, p.unexpected("'='")
		}
		entry.KeyComment = p.tok.Comment
		if err := p.advance(); err != nil {
			return nil, err
		}

		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		entry.Value = v

		if p.tok.Type != TokenSemicolon {
			return nil, p.unexpected("';'")
		}
		// A comment between value and ';' annotates the value
		// ("fileRef = ID /* main.m */;").
		v.Comment = p.tok.Comment
		if err := p.advance(); err != nil {
			return nil, err
		}

		d.SetEntry(entry)
	}
}

// parseList parses "( value, ... )" with the current token on the
// opening parenthesis. A trailing comma before ')' is permitted, as
// Xcode emits one after every element.
func (p *parser) parseList() (*Value, error) {
	if err := p.advance(); err != nil { // consume '('
		return nil, err
	}

	list := &Value{Kind: ValueList}
	for {
		if p.tok.Type == TokenRParen {
			if err := p.advance(); err != nil {
				return nil, err
			}
			return list, nil
		}

		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}

		switch p.tok.Type {
		case TokenComma:
			v.Comment = p.tok.Comment
			if err := p.advance(); err != nil {
				return nil, err
			}
		case TokenRParen:
			v.Comment = p.tok.Comment
		default:
			return nil, p.unexpected("',' or ')'")
		}
		list.List = append(list.List, v)
	}
}

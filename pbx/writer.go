package pbx

import (
	"fmt"
	"strings"
)

// Header is the encoding marker Xcode writes on the first line of
// every project.pbxproj file.
const Header = "// !$*UTF8*$!\n"

// Writer renders value trees back to pbxproj source. Indentation is
// one tab per nesting level; lists are one element per line. In
// condensed mode an entire dictionary renders on a single line, which
// is how Xcode writes PBXBuildFile and PBXFileReference entries.
type Writer struct {
	b         strings.Builder
	indent    int
	condensed bool

	// Comment, when set, derives the trailing annotation for an
	// identifier-reference value. When nil, the annotation captured at
	// parse time is reused.
	Comment func(v *Value) string
}

// NewWriter creates an empty writer.
func NewWriter() *Writer {
	return &Writer{}
}

// String returns everything written so far.
func (w *Writer) String() string {
	return w.b.String()
}

// Bytes returns everything written so far.
func (w *Writer) Bytes() []byte {
	return []byte(w.b.String())
}

// WriteHeader writes the UTF-8 encoding marker line.
func (w *Writer) WriteHeader() {
	w.b.WriteString(Header)
}

// Raw writes s verbatim.
func (w *Writer) Raw(s string) {
	w.b.WriteString(s)
}

// Rawf writes formatted text verbatim.
func (w *Writer) Rawf(format string, args ...any) {
	fmt.Fprintf(&w.b, format, args...)
}

// Indent increases the nesting level.
func (w *Writer) Indent() {
	w.indent++
}

// Outdent decreases the nesting level.
func (w *Writer) Outdent() {
	w.indent--
}

// WriteIndent writes the current indentation (a no-op in condensed mode).
func (w *Writer) WriteIndent() {
	if w.condensed {
		return
	}
	for i := 0; i < w.indent; i++ {
		w.b.WriteByte('\t')
	}
}

// EndLine terminates a line (a single space in condensed mode).
func (w *Writer) EndLine() {
	if w.condensed {
		w.b.WriteByte(' ')
		return
	}
	w.b.WriteByte('\n')
}

// SetCondensed switches single-line rendering on or off.
func (w *Writer) SetCondensed(on bool) {
	w.condensed = on
}

// Quote returns the pbxproj source rendering of scalar text: bare when
// the text is a single word Xcode would leave unquoted, quoted
// otherwise. Text that happens to look like an object identifier is
// always quoted so it does not re-parse as a reference.
func Quote(s string) string {
	if s != "" && !IsObjectID(s) && isBareText(s) {
		return s
	}
	return quoted(s)
}

// QuoteKey returns the rendering of a dictionary key. Keys follow the
// same bare-word rule as values but without the identifier guard: a
// key position carries no reference ambiguity, and Xcode writes
// identifier-shaped keys bare (the per-target entries of
// TargetAttributes).
func QuoteKey(s string) string {
	if s != "" && isBareText(s) {
		return s
	}
	return quoted(s)
}

func quoted(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// isBareText is narrower than the lexer's word rule: the lexer accepts
// bare '-' (hand-edited files use it), but Xcode quotes any value
// containing one ("com.apple.product-type.tool"), so the writer does too.
func isBareText(s string) bool {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '_' || c == '$' || c == '.' || c == '/':
		default:
			return false
		}
	}
	return true
}

// annotation returns the trailing comment for v, re-deriving it when a
// Comment func is installed.
func (w *Writer) annotation(v *Value) string {
	if v.Kind == ValueRef && w.Comment != nil {
		return w.Comment(v)
	}
	return v.Comment
}

// WriteEntry writes one dictionary entry, "key = value;", followed by
// a line terminator.
func (w *Writer) WriteEntry(key string, v *Value) {
	w.WriteIndent()
	w.Raw(QuoteKey(key))
	w.Raw(" = ")
	w.WriteInlineValue(v)
	w.Raw(";")
	w.EndLine()
}

// WriteInlineValue writes a value without a trailing terminator,
// recursing into dictionaries and lists.
func (w *Writer) WriteInlineValue(v *Value) {
	switch v.Kind {
	case ValueString, ValueRef:
		if v.Kind == ValueRef {
			w.Raw(v.Str)
		} else {
			w.Raw(Quote(v.Str))
		}
		if c := w.annotation(v); c != "" {
			w.Raw(" /* " + c + " */")
		}
	case ValueDict:
		w.Raw("{")
		if !w.condensed {
			w.EndLine()
		}
		w.Indent()
		for _, e := range v.Dict.Entries() {
			w.WriteEntry(e.Key, e.Value)
		}
		w.Outdent()
		w.WriteIndent()
		w.Raw("}")
	case ValueList:
		w.Raw("(")
		if !w.condensed {
			w.EndLine()
		}
		w.Indent()
		for _, elem := range v.List {
			w.WriteIndent()
			w.WriteInlineValue(elem)
			w.Raw(",")
			w.EndLine()
		}
		w.Outdent()
		w.WriteIndent()
		w.Raw(")")
	}
}

// Package pbx implements the tokenizer, parser, and writer for the
// ASCII-plist dialect used by Xcode project files (project.pbxproj).
//
// The parser produces a generic value tree of strings, identifier
// references, ordered lists, and insertion-ordered dictionaries. Key
// order and the inline "ID /* name */" annotation comments are
// preserved so that a re-serialized document stays diff-stable.
package pbx

// ValueKind discriminates the variants of a Value.
type ValueKind int

const (
	// ValueString is a scalar string (bare or quoted in source)
	ValueString ValueKind = iota

	// ValueRef is a 24-hex-character object identifier reference
	ValueRef

	// ValueList is an ordered list of values
	ValueList

	// ValueDict is an insertion-ordered dictionary
	ValueDict
)

// Value is one node of the generic pbxproj value tree.
type Value struct {
	// Kind selects which of the remaining fields is meaningful
	Kind ValueKind

	// Str holds the decoded text for ValueString, or the raw identifier
	// token for ValueRef
	Str string

	// List holds the elements for ValueList
	List []*Value

	// Dict holds the entries for ValueDict
	Dict *Dict

	// Comment is the trailing annotation comment attached to this value
	// in source ("ID /* name */"). It is informational: the serializer
	// re-derives annotations from the referenced object at export time.
	Comment string

	// Quoted reports whether a ValueString arrived quoted in source
	Quoted bool
}

// String constructs a scalar string value.
func String(s string) *Value {
	return &Value{Kind: ValueString, Str: s}
}

// Ref constructs an identifier reference value.
func Ref(id string) *Value {
	return &Value{Kind: ValueRef, Str: id}
}

// NewList constructs a list value from the given elements.
func NewList(elems ...*Value) *Value {
	return &Value{Kind: ValueList, List: elems}
}

// NewDictValue constructs an empty dictionary value.
func NewDictValue() *Value {
	return &Value{Kind: ValueDict, Dict: NewDict()}
}

// IsObjectID reports whether s has the shape of a pbxproj object
// identifier: exactly 24 uppercase hexadecimal characters.
func IsObjectID(s string) bool {
	if len(s) != 24 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}

// Entry is a single key/value pair of a Dict.
type Entry struct {
	// Key is the entry key, decoded
	Key string

	// KeyComment is the annotation comment attached to the key in source
	// (object-table keys carry one: "ID /* main.m in Sources */ = {...}")
	KeyComment string

	// Value is the entry value
	Value *Value
}

// Dict is an insertion-ordered dictionary with unique keys. Iteration
// order is the order keys were first inserted, which for parsed
// documents is exactly the order they appeared in source.
type Dict struct {
	entries []*Entry
	index   map[string]int
}

// NewDict creates an empty ordered dictionary.
func NewDict() *Dict {
	return &Dict{index: make(map[string]int)}
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	return len(d.entries)
}

// Has reports whether key is present.
func (d *Dict) Has(key string) bool {
	_, ok := d.index[key]
	return ok
}

// Get returns the value for key, and whether it was present.
func (d *Dict) Get(key string) (*Value, bool) {
	i, ok := d.index[key]
	if !ok {
		return nil, false
	}
	return d.entries[i].Value, true
}

// GetString returns the scalar string for key. It returns "" when the
// key is absent or the value is not a scalar.
func (d *Dict) GetString(key string) string {
	v, ok := d.Get(key)
	if !ok || (v.Kind != ValueString && v.Kind != ValueRef) {
		return ""
	}
	return v.Str
}

// Set inserts or replaces the value for key. A replaced key keeps its
// original position.
func (d *Dict) Set(key string, v *Value) {
	if i, ok := d.index[key]; ok {
		d.entries[i].Value = v
		return
	}
	d.index[key] = len(d.entries)
	d.entries = append(d.entries, &Entry{Key: key, Value: v})
}

// SetEntry inserts or replaces a full entry, preserving position on
// replacement.
func (d *Dict) SetEntry(e *Entry) {
	if i, ok := d.index[e.Key]; ok {
		d.entries[i] = e
		return
	}
	d.index[e.Key] = len(d.entries)
	d.entries = append(d.entries, e)
}

// At returns the entry at position i.
func (d *Dict) At(i int) *Entry {
	return d.entries[i]
}

// Keys returns the keys in insertion order.
func (d *Dict) Keys() []string {
	keys := make([]string, len(d.entries))
	for i, e := range d.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns the entries in insertion order. The slice is shared;
// callers must not reorder it.
func (d *Dict) Entries() []*Entry {
	return d.entries
}

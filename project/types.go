// Package project provides a typed, mutable object graph over parsed
// Xcode project files. It loads a project.pbxproj document, exposes
// read and edit operations on targets, build phases, configurations,
// file references, and groups, and serializes the graph back to text
// the IDE accepts with minimal spurious differences.
//
// A Project instance is owned by a single goroutine. Neither the graph
// nor the identifier allocator is safe for concurrent use; callers
// needing concurrency must serialize access themselves.
package project

import (
	"path"

	"github.com/willibrandon/gopbx/pbx"
)

// ObjectID is a 24-hex-character identifier naming one object in the
// project graph. It is the only mechanism for references between
// objects.
type ObjectID string

// String returns the raw identifier token.
func (id ObjectID) String() string {
	return string(id)
}

// IsValid reports whether the identifier has the required shape.
func (id ObjectID) IsValid() bool {
	return pbx.IsObjectID(string(id))
}

// Known isa type tags. Objects with tags outside this set are carried
// through load and export untouched.
const (
	ISAProject              = "PBXProject"
	ISANativeTarget         = "PBXNativeTarget"
	ISAAggregateTarget      = "PBXAggregateTarget"
	ISALegacyTarget         = "PBXLegacyTarget"
	ISAGroup                = "PBXGroup"
	ISAVariantGroup         = "PBXVariantGroup"
	ISAFileReference        = "PBXFileReference"
	ISABuildFile            = "PBXBuildFile"
	ISASourcesBuildPhase    = "PBXSourcesBuildPhase"
	ISAFrameworksBuildPhase = "PBXFrameworksBuildPhase"
	ISAResourcesBuildPhase  = "PBXResourcesBuildPhase"
	ISAConfigurationList    = "XCConfigurationList"
	ISABuildConfiguration   = "XCBuildConfiguration"
)

// Source tree tags accepted for new file references.
const (
	SourceTreeGroup         = "<group>"
	SourceTreeSDKRoot       = "SDKROOT"
	SourceTreeBuiltProducts = "BUILT_PRODUCTS_DIR"
)

// Object is one node of the project graph: an identifier, a
// discriminating type tag, and the object's fields in source order.
// Unrecognized type tags are preserved as plain Objects so unknown
// object kinds round-trip verbatim.
type Object struct {
	// ID is the object's identifier
	ID ObjectID

	// ISA is the discriminating type tag
	ISA string

	// Fields holds the object's fields, including the isa entry,
	// in source order
	Fields *pbx.Dict
}

// Str returns the scalar string field for key, or "".
func (o *Object) Str(key string) string {
	return o.Fields.GetString(key)
}

// SetStr sets a scalar string field.
func (o *Object) SetStr(key, value string) {
	o.Fields.Set(key, pbx.String(value))
}

// Ref returns the identifier-reference field for key.
func (o *Object) Ref(key string) (ObjectID, bool) {
	v, ok := o.Fields.Get(key)
	if !ok || v.Kind != pbx.ValueRef {
		return "", false
	}
	return ObjectID(v.Str), true
}

// Refs returns the identifier elements of the list field for key, in
// order. Non-reference elements are skipped.
func (o *Object) Refs(key string) []ObjectID {
	v, ok := o.Fields.Get(key)
	if !ok || v.Kind != pbx.ValueList {
		return nil
	}
	ids := make([]ObjectID, 0, len(v.List))
	for _, elem := range v.List {
		if elem.Kind == pbx.ValueRef {
			ids = append(ids, ObjectID(elem.Str))
		}
	}
	return ids
}

// AppendRef appends an identifier to the list field for key, creating
// the list if absent. Existing entries are never reordered.
func (o *Object) AppendRef(key string, id ObjectID) {
	v, ok := o.Fields.Get(key)
	if !ok || v.Kind != pbx.ValueList {
		v = pbx.NewList()
		o.Fields.Set(key, v)
	}
	v.List = append(v.List, pbx.Ref(string(id)))
}

// DisplayName returns the object's human-readable name: the name
// field if present, else the basename of the path field, else "".
func (o *Object) DisplayName() string {
	if name := o.Str("name"); name != "" {
		return name
	}
	if p := o.Str("path"); p != "" {
		return path.Base(p)
	}
	return ""
}

// IsTarget reports whether the type tag is one of the target kinds.
func (o *Object) IsTarget() bool {
	switch o.ISA {
	case ISANativeTarget, ISAAggregateTarget, ISALegacyTarget:
		return true
	}
	return false
}

// Target is a view over a target object.
type Target struct{ *Object }

// BuildPhaseIDs returns the target's build phase identifiers in order.
func (t Target) BuildPhaseIDs() []ObjectID {
	return t.Refs("buildPhases")
}

// ConfigurationListID returns the target's configuration list reference.
func (t Target) ConfigurationListID() (ObjectID, bool) {
	return t.Ref("buildConfigurationList")
}

// ProductReference returns the target's product file reference, if any.
func (t Target) ProductReference() (ObjectID, bool) {
	return t.Ref("productReference")
}

// ConfigurationList is a view over an XCConfigurationList object.
type ConfigurationList struct{ *Object }

// ConfigurationIDs returns the member configuration identifiers in
// declaration order.
func (l ConfigurationList) ConfigurationIDs() []ObjectID {
	return l.Refs("buildConfigurations")
}

// DefaultConfigurationName returns the list's default configuration name.
func (l ConfigurationList) DefaultConfigurationName() string {
	return l.Str("defaultConfigurationName")
}

// BuildConfiguration is a view over an XCBuildConfiguration object.
type BuildConfiguration struct{ *Object }

// Name returns the configuration name (e.g. "Debug").
func (c BuildConfiguration) Name() string {
	return c.Str("name")
}

// BuildSettings returns the configuration's settings dictionary,
// creating an empty one on first access.
func (c BuildConfiguration) BuildSettings() *pbx.Dict {
	v, ok := c.Fields.Get("buildSettings")
	if !ok || v.Kind != pbx.ValueDict {
		v = pbx.NewDictValue()
		c.Fields.Set("buildSettings", v)
	}
	return v.Dict
}

// FileReference is a view over a PBXFileReference object.
type FileReference struct{ *Object }

// Path returns the reference's path relative to its source tree.
func (f FileReference) Path() string {
	return f.Str("path")
}

// BuildFile is a view over a PBXBuildFile object.
type BuildFile struct{ *Object }

// FileRef returns the referenced file reference identifier.
func (b BuildFile) FileRef() (ObjectID, bool) {
	return b.Ref("fileRef")
}

// BuildPhase is a view over one of the build phase objects.
type BuildPhase struct{ *Object }

// FileIDs returns the phase's build file identifiers in order. Order
// is compile order and must never be resorted.
func (p BuildPhase) FileIDs() []ObjectID {
	return p.Refs("files")
}

// PhaseDisplayName returns the phase name Xcode shows in annotations.
func (p BuildPhase) PhaseDisplayName() string {
	if name := p.Str("name"); name != "" {
		return name
	}
	switch p.ISA {
	case ISASourcesBuildPhase:
		return "Sources"
	case ISAFrameworksBuildPhase:
		return "Frameworks"
	case ISAResourcesBuildPhase:
		return "Resources"
	}
	return p.ISA
}

// Group is a view over a PBXGroup object.
type Group struct{ *Object }

// ChildIDs returns the group's children (file references and nested
// groups) in navigator order.
func (g Group) ChildIDs() []ObjectID {
	return g.Refs("children")
}

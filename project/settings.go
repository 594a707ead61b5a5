package project

import (
	"github.com/willibrandon/gopbx/pbx"
)

// Build setting keys and sentinel values used by the mutation API.
const (
	// SettingPreprocessorDefinitions is the preprocessor define list
	SettingPreprocessorDefinitions = "GCC_PREPROCESSOR_DEFINITIONS"

	// SettingHeaderSearchPaths is the header search path list
	SettingHeaderSearchPaths = "HEADER_SEARCH_PATHS"

	// InheritedMarker appends to, rather than replaces, the inherited
	// value of the enclosing configuration
	InheritedMarker = "$(inherited)"
)

// SettingsView is a live handle onto one build configuration's
// buildSettings map. Edits through the view are visible at export
// without a separate commit step. The view shares the owning graph's
// lifetime and concurrency obligations.
type SettingsView struct {
	target string
	config BuildConfiguration
}

// TargetName returns the owning target's name.
func (v *SettingsView) TargetName() string {
	return v.target
}

// ConfigurationName returns the configuration's name.
func (v *SettingsView) ConfigurationName() string {
	return v.config.Name()
}

// Keys returns the setting keys in declaration order.
func (v *SettingsView) Keys() []string {
	return v.config.BuildSettings().Keys()
}

// Get returns the raw value for a setting key.
func (v *SettingsView) Get(key string) (*pbx.Value, bool) {
	return v.config.BuildSettings().Get(key)
}

// GetString returns the scalar string for a setting key, or "".
func (v *SettingsView) GetString(key string) string {
	return v.config.BuildSettings().GetString(key)
}

// Set stores a raw value for a setting key.
func (v *SettingsView) Set(key string, value *pbx.Value) {
	v.config.BuildSettings().Set(key, value)
}

// SetString stores a scalar string for a setting key.
func (v *SettingsView) SetString(key, value string) {
	v.config.BuildSettings().Set(key, pbx.String(value))
}

// Strings returns the list value for a setting key as strings. A
// scalar value is returned as a one-element slice.
func (v *SettingsView) Strings(key string) []string {
	val, ok := v.config.BuildSettings().Get(key)
	if !ok {
		return nil
	}
	switch val.Kind {
	case pbx.ValueString, pbx.ValueRef:
		return []string{val.Str}
	case pbx.ValueList:
		out := make([]string, 0, len(val.List))
		for _, elem := range val.List {
			out = append(out, elem.Str)
		}
		return out
	}
	return nil
}

// AppendUnique appends each value not already present to the list for
// key, preserving existing order and placing new entries at the end.
// A missing key becomes a new list; a scalar value is promoted to a
// one-element list first. It returns the number of values appended.
func (v *SettingsView) AppendUnique(key string, values ...string) int {
	settings := v.config.BuildSettings()
	list := ensureList(settings, key)

	present := make(map[string]bool, len(list.List))
	for _, elem := range list.List {
		present[elem.Str] = true
	}

	added := 0
	for _, val := range values {
		if present[val] {
			continue
		}
		list.List = append(list.List, pbx.String(val))
		present[val] = true
		added++
	}
	return added
}

// ensureList returns the list value for key, creating an empty list
// when the key is absent and promoting a scalar to a one-element list.
func ensureList(settings *pbx.Dict, key string) *pbx.Value {
	val, ok := settings.Get(key)
	if !ok {
		val = pbx.NewList()
		settings.Set(key, val)
		return val
	}
	if val.Kind != pbx.ValueList {
		promoted := pbx.NewList(pbx.String(val.Str))
		settings.Set(key, promoted)
		return promoted
	}
	return val
}

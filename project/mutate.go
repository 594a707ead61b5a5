package project

import (
	"fmt"
	"path"
	"strings"

	"github.com/willibrandon/gopbx/pbx"
)

// Mutation operations. Each operation validates everything it needs
// before touching the graph, so a failed call leaves the graph exactly
// as it was.

// TargetConfiguration returns a live settings view for the named
// configuration of the named target.
func (g *Graph) TargetConfiguration(targetName, configName string) (*SettingsView, error) {
	t, err := g.FindTargetByName(targetName)
	if err != nil {
		return nil, err
	}
	cfg, err := g.configuration(t, configName)
	if err != nil {
		return nil, err
	}
	return &SettingsView{target: targetName, config: cfg}, nil
}

// AddPreprocessorDefines appends each define not already present to
// GCC_PREPROCESSOR_DEFINITIONS of the named target configuration. A
// configuration without the setting gets it initialized to the
// inherited-settings marker before the first define. Membership is
// exact string match, so the operation is idempotent per define value.
func (g *Graph) AddPreprocessorDefines(targetName, configName string, defines []string) error {
	view, err := g.TargetConfiguration(targetName, configName)
	if err != nil {
		return err
	}

	settings := view.config.BuildSettings()
	if !settings.Has(SettingPreprocessorDefinitions) {
		settings.Set(SettingPreprocessorDefinitions, pbx.NewList(pbx.String(InheritedMarker)))
	}
	view.AppendUnique(SettingPreprocessorDefinitions, defines...)
	return nil
}

// AddHeaderSearchPaths appends each path not already present to
// HEADER_SEARCH_PATHS of every configuration of the named target.
func (g *Graph) AddHeaderSearchPaths(targetName string, paths []string) error {
	t, err := g.FindTargetByName(targetName)
	if err != nil {
		return err
	}
	list, ok := g.configurationListOf(t)
	if !ok {
		return &ConfigurationNotFoundError{Target: targetName}
	}

	for _, id := range list.ConfigurationIDs() {
		obj, found := g.Get(id)
		if !found {
			continue
		}
		view := &SettingsView{target: targetName, config: BuildConfiguration{obj}}
		view.AppendUnique(SettingHeaderSearchPaths, paths...)
	}
	return nil
}

// SourceFileOptions carries the optional arguments of AddSourceFile.
type SourceFileOptions struct {
	// SourceTree is the root the path is relative to; defaults to
	// SourceTreeGroup
	SourceTree string

	// CompileFlags is a per-file compiler flag override recorded on the
	// new build file
	CompileFlags string
}

// AddSourceFile adds a source file to the named target: a new
// PBXFileReference for the path and a new PBXBuildFile referencing it.
// The build file is appended to the end of the target's sources build
// phase, and the file reference is appended to the group tree under
// the project's main group, creating intermediate groups per path
// segment as needed. New entries always go at the end; nothing is
// re-sorted, so the navigator tree stays stable across edits.
//
// No deduplication is performed: adding the same path twice creates
// two distinct file reference / build file pairs. Callers wanting
// dedup can inspect the sources phase first.
//
// It returns the new file reference's identifier.
func (g *Graph) AddSourceFile(filePath, targetName string, opts *SourceFileOptions) (ObjectID, error) {
	sourceTree := SourceTreeGroup
	compileFlags := ""
	if opts != nil {
		if opts.SourceTree != "" {
			sourceTree = opts.SourceTree
		}
		compileFlags = opts.CompileFlags
	}
	if !IsValidSourceTree(sourceTree) {
		return "", fmt.Errorf("%w: %s", ErrInvalidSourceTree, sourceTree)
	}

	t, err := g.FindTargetByName(targetName)
	if err != nil {
		return "", err
	}
	fileType, err := FileTypeForPath(filePath)
	if err != nil {
		return "", err
	}
	phase, ok := g.sourcesPhaseOf(t)
	if !ok {
		return "", ErrNoSourcesPhase
	}
	mainGroup, err := g.MainGroup()
	if err != nil {
		return "", err
	}

	// All preconditions hold; from here the operation cannot fail short
	// of an allocator invariant violation.
	fileRefID := g.AllocateID()
	buildFileID := g.AllocateID()

	fileRef := pbx.NewDict()
	fileRef.Set("isa", pbx.String(ISAFileReference))
	fileRef.Set("fileEncoding", pbx.String("4"))
	fileRef.Set("lastKnownFileType", pbx.String(fileType))
	fileRef.Set("name", pbx.String(path.Base(filePath)))
	fileRef.Set("path", pbx.String(filePath))
	fileRef.Set("sourceTree", pbx.String(sourceTree))
	if err := g.insert(&Object{ID: fileRefID, ISA: ISAFileReference, Fields: fileRef}); err != nil {
		return "", err
	}

	buildFile := pbx.NewDict()
	buildFile.Set("isa", pbx.String(ISABuildFile))
	buildFile.Set("fileRef", pbx.Ref(string(fileRefID)))
	if compileFlags != "" {
		settings := pbx.NewDictValue()
		settings.Dict.Set("COMPILER_FLAGS", pbx.String(compileFlags))
		buildFile.Set("settings", settings)
	}
	if err := g.insert(&Object{ID: buildFileID, ISA: ISABuildFile, Fields: buildFile}); err != nil {
		return "", err
	}

	phase.AppendRef("files", buildFileID)

	if err := g.placeInGroupTree(mainGroup, filePath, fileRefID); err != nil {
		return "", err
	}
	return fileRefID, nil
}

// placeInGroupTree appends fileRefID to the group matching the file's
// directory path under root, creating intermediate groups as needed.
func (g *Graph) placeInGroupTree(root Group, filePath string, fileRefID ObjectID) error {
	group := root
	for _, segment := range groupSegments(filePath) {
		child, found := g.childGroupNamed(group, segment)
		if !found {
			var err error
			child, err = g.newGroup(group, segment)
			if err != nil {
				return err
			}
		}
		group = child
	}
	group.AppendRef("children", fileRefID)
	return nil
}

// groupSegments returns the directory components of a file path,
// skipping relative navigation.
func groupSegments(filePath string) []string {
	dir := path.Dir(filePath)
	if dir == "." || dir == "/" {
		return nil
	}
	var segments []string
	for _, s := range strings.Split(dir, "/") {
		if s == "" || s == "." || s == ".." {
			continue
		}
		segments = append(segments, s)
	}
	return segments
}

// childGroupNamed finds a direct child group with the given display name.
func (g *Graph) childGroupNamed(parent Group, name string) (Group, bool) {
	for _, id := range parent.ChildIDs() {
		obj, ok := g.Get(id)
		if !ok {
			continue
		}
		if (obj.ISA == ISAGroup || obj.ISA == ISAVariantGroup) && obj.DisplayName() == name {
			return Group{obj}, true
		}
	}
	return Group{}, false
}

// newGroup creates an empty group named name and appends it to the end
// of parent's children.
func (g *Graph) newGroup(parent Group, name string) (Group, error) {
	fields := pbx.NewDict()
	fields.Set("isa", pbx.String(ISAGroup))
	fields.Set("children", pbx.NewList())
	fields.Set("name", pbx.String(name))
	fields.Set("sourceTree", pbx.String(SourceTreeGroup))

	obj := &Object{ID: g.AllocateID(), ISA: ISAGroup, Fields: fields}
	if err := g.insert(obj); err != nil {
		return Group{}, err
	}
	parent.AppendRef("children", obj.ID)
	return Group{obj}, nil
}

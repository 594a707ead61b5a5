package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/willibrandon/gopbx/observability"
	"github.com/willibrandon/gopbx/pbx"
)

// pbxprojName is the project file inside an .xcodeproj bundle.
const pbxprojName = "project.pbxproj"

// Project is a loaded Xcode project: the typed object graph plus the
// path it came from. A Project is not safe for concurrent use.
type Project struct {
	// Path is the project.pbxproj file the project was loaded from
	Path string

	graph *Graph
	log   observability.Logger
}

// Option configures a Project at open time.
type Option func(*Project)

// WithLogger installs a logger for load, mutation, and export events.
// The default logger discards everything.
func WithLogger(l observability.Logger) Option {
	return func(p *Project) {
		p.log = l
	}
}

// resolveBundlePath accepts either an .xcodeproj bundle directory or a
// direct project.pbxproj path.
func resolveBundlePath(p string) string {
	if strings.HasSuffix(p, ".xcodeproj") {
		return filepath.Join(p, pbxprojName)
	}
	if info, err := os.Stat(p); err == nil && info.IsDir() {
		return filepath.Join(p, pbxprojName)
	}
	return p
}

// Open loads and parses a project. Structural errors (lexical, grammar,
// document shape, unresolvable root, dangling references) abort the
// load entirely; no partial graph is ever returned.
func Open(path string, opts ...Option) (*Project, error) {
	p := &Project{log: observability.NewNullLogger()}
	for _, opt := range opts {
		opt(p)
	}
	p.Path = resolveBundlePath(path)

	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("read project file: %w", err)
	}

	doc, err := pbx.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", p.Path, err)
	}

	graph, err := NewGraph(doc)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", p.Path, err)
	}
	p.graph = graph

	p.log.Debug("Loaded project {Path} with {ObjectCount} objects", p.Path, graph.Len())
	return p, nil
}

// Graph returns the underlying object graph.
func (p *Project) Graph() *Graph {
	return p.graph
}

// ConfigurationNames returns the project-level configuration names in
// declaration order.
func (p *Project) ConfigurationNames() []string {
	return p.graph.ConfigurationNames()
}

// TargetNames returns the target names in declaration order.
func (p *Project) TargetNames() []string {
	return p.graph.TargetNames()
}

// TargetConfiguration returns a live settings view for the named
// configuration of the named target.
func (p *Project) TargetConfiguration(targetName, configName string) (*SettingsView, error) {
	return p.graph.TargetConfiguration(targetName, configName)
}

// AddPreprocessorDefines appends preprocessor defines to one target
// configuration. See Graph.AddPreprocessorDefines.
func (p *Project) AddPreprocessorDefines(targetName, configName string, defines []string) error {
	if err := p.graph.AddPreprocessorDefines(targetName, configName, defines); err != nil {
		return err
	}
	p.log.Debug("Added {DefineCount} defines to {Target}/{Configuration}", len(defines), targetName, configName)
	return nil
}

// AddHeaderSearchPaths appends header search paths to every
// configuration of the named target. See Graph.AddHeaderSearchPaths.
func (p *Project) AddHeaderSearchPaths(targetName string, paths []string) error {
	return p.graph.AddHeaderSearchPaths(targetName, paths)
}

// AddSourceFile adds a source file to the named target and returns the
// new file reference identifier. See Graph.AddSourceFile.
func (p *Project) AddSourceFile(filePath, targetName string, opts *SourceFileOptions) (ObjectID, error) {
	id, err := p.graph.AddSourceFile(filePath, targetName, opts)
	if err != nil {
		return "", err
	}
	p.log.Debug("Added source file {File} to target {Target} as {ID}", filePath, targetName, string(id))
	return id, nil
}

// Export serializes the graph and writes it to the destination, which
// may be an .xcodeproj bundle directory or a direct file path. The
// write is atomic: the text is rendered to a temporary file and moved
// into place, so a failure mid-write never leaves a truncated project
// file visible.
func (p *Project) Export(dest string) error {
	target := resolveBundlePath(dest)

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create project dir: %w", err)
	}

	data := p.graph.Serialize()

	tmpPath := target + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("write project file: %w", err)
	}
	if err := os.Rename(tmpPath, target); err != nil {
		os.Remove(tmpPath) // Clean up on failure
		return fmt.Errorf("rename project file: %w", err)
	}

	p.log.Debug("Exported project to {Path} ({Bytes} bytes)", target, len(data))
	return nil
}

// Save exports the project back to the path it was loaded from.
func (p *Project) Save() error {
	return p.Export(p.Path)
}

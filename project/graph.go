package project

import (
	"github.com/willibrandon/gopbx/pbx"
)

// Graph is the identifier-addressed object graph of one project
// document, together with the document scaffolding (versions, classes)
// needed to re-emit it.
type Graph struct {
	archiveVersion string
	objectVersion  string
	classes        *pbx.Dict

	rootID ObjectID

	ids  []ObjectID
	byID map[ObjectID]*Object

	// allocated tracks every identifier either present in the graph or
	// handed out by AllocateID, so an allocated id can never collide
	// even before its object is inserted.
	allocated map[ObjectID]bool
}

// NewGraph builds the typed graph from a parsed document. It fails if
// any object lacks an isa tag, if the root object reference does not
// resolve to a PBXProject, or if any identifier reference anywhere in
// the graph is dangling. No partial graph is returned on error.
func NewGraph(doc *pbx.Document) (*Graph, error) {
	g := &Graph{
		archiveVersion: doc.ArchiveVersion,
		objectVersion:  doc.ObjectVersion,
		classes:        doc.Classes,
		rootID:         ObjectID(doc.RootObject),
		byID:           make(map[ObjectID]*Object, doc.Objects.Len()),
		allocated:      make(map[ObjectID]bool, doc.Objects.Len()),
	}

	for _, e := range doc.Objects.Entries() {
		if e.Value.Kind != pbx.ValueDict {
			return nil, &pbx.MalformedDocumentError{Message: "object " + e.Key + " is not a dictionary"}
		}
		isa := e.Value.Dict.GetString("isa")
		if isa == "" {
			return nil, &pbx.MalformedDocumentError{Message: "object " + e.Key + " has no isa tag"}
		}
		id := ObjectID(e.Key)
		obj := &Object{ID: id, ISA: isa, Fields: e.Value.Dict}
		g.ids = append(g.ids, id)
		g.byID[id] = obj
		g.allocated[id] = true
	}

	root, ok := g.byID[g.rootID]
	if !ok || root.ISA != ISAProject {
		return nil, &RootObjectNotFoundError{ID: g.rootID}
	}

	if err := g.ValidateReferences(); err != nil {
		return nil, err
	}
	return g, nil
}

// ValidateReferences walks every object and verifies that each
// identifier reference resolves to a present definition.
func (g *Graph) ValidateReferences() error {
	for _, id := range g.ids {
		obj := g.byID[id]
		for _, e := range obj.Fields.Entries() {
			if err := g.validateValue(id, e.Key, e.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Graph) validateValue(referrer ObjectID, field string, v *pbx.Value) error {
	switch v.Kind {
	case pbx.ValueRef:
		if _, ok := g.byID[ObjectID(v.Str)]; !ok {
			return &DanglingReferenceError{ID: ObjectID(v.Str), Referrer: referrer, Field: field}
		}
	case pbx.ValueList:
		for _, elem := range v.List {
			if err := g.validateValue(referrer, field, elem); err != nil {
				return err
			}
		}
	case pbx.ValueDict:
		for _, e := range v.Dict.Entries() {
			if err := g.validateValue(referrer, field, e.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

// Get returns the object for id.
func (g *Graph) Get(id ObjectID) (*Object, bool) {
	obj, ok := g.byID[id]
	return obj, ok
}

// Len returns the number of objects in the graph.
func (g *Graph) Len() int {
	return len(g.ids)
}

// IDs returns every object identifier in document order. The slice is
// a copy.
func (g *Graph) IDs() []ObjectID {
	out := make([]ObjectID, len(g.ids))
	copy(out, g.ids)
	return out
}

// Root returns the root PBXProject object.
func (g *Graph) Root() *Object {
	return g.byID[g.rootID]
}

// insert adds a freshly built object to the graph. The identifier must
// have come from AllocateID; a collision with an existing object is an
// allocator invariant violation.
func (g *Graph) insert(obj *Object) error {
	if _, exists := g.byID[obj.ID]; exists {
		return &DuplicateIdentifierError{ID: obj.ID}
	}
	g.ids = append(g.ids, obj.ID)
	g.byID[obj.ID] = obj
	g.allocated[obj.ID] = true
	return nil
}

// Targets returns the project's targets in declaration order.
func (g *Graph) Targets() []Target {
	var targets []Target
	for _, id := range g.Root().Refs("targets") {
		if obj, ok := g.byID[id]; ok && obj.IsTarget() {
			targets = append(targets, Target{obj})
		}
	}
	return targets
}

// TargetNames returns the target names in declaration order.
func (g *Graph) TargetNames() []string {
	targets := g.Targets()
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.Str("name")
	}
	return names
}

// FindTargetByName returns the target with the given name, or a
// TargetNotFoundError.
func (g *Graph) FindTargetByName(name string) (Target, error) {
	for _, t := range g.Targets() {
		if t.Str("name") == name {
			return t, nil
		}
	}
	return Target{}, &TargetNotFoundError{Target: name}
}

// ConfigurationNames returns the configuration names declared in the
// project's own configuration list, in declaration order. The
// project-level list is the authoritative superset; target-level lists
// are name subsets of it.
func (g *Graph) ConfigurationNames() []string {
	listID, ok := g.Root().Ref("buildConfigurationList")
	if !ok {
		return nil
	}
	listObj, ok := g.byID[listID]
	if !ok {
		return nil
	}

	var names []string
	for _, id := range (ConfigurationList{listObj}).ConfigurationIDs() {
		if obj, ok := g.byID[id]; ok {
			names = append(names, BuildConfiguration{obj}.Name())
		}
	}
	return names
}

// configurationListOf resolves a target's configuration list.
func (g *Graph) configurationListOf(t Target) (ConfigurationList, bool) {
	listID, ok := t.ConfigurationListID()
	if !ok {
		return ConfigurationList{}, false
	}
	obj, ok := g.byID[listID]
	if !ok || obj.ISA != ISAConfigurationList {
		return ConfigurationList{}, false
	}
	return ConfigurationList{obj}, true
}

// configuration resolves a named configuration of a target, or returns
// a ConfigurationNotFoundError.
func (g *Graph) configuration(t Target, name string) (BuildConfiguration, error) {
	list, ok := g.configurationListOf(t)
	if ok {
		for _, id := range list.ConfigurationIDs() {
			obj, found := g.byID[id]
			if !found {
				continue
			}
			cfg := BuildConfiguration{obj}
			if cfg.Name() == name {
				return cfg, nil
			}
		}
	}
	return BuildConfiguration{}, &ConfigurationNotFoundError{Target: t.Str("name"), Configuration: name}
}

// MainGroup returns the project's main group, the root of the
// navigator tree.
func (g *Graph) MainGroup() (Group, error) {
	id, ok := g.Root().Ref("mainGroup")
	if !ok {
		return Group{}, ErrNoMainGroup
	}
	obj, ok := g.byID[id]
	if !ok {
		return Group{}, ErrNoMainGroup
	}
	return Group{obj}, nil
}

// sourcesPhaseOf returns the target's sources build phase.
func (g *Graph) sourcesPhaseOf(t Target) (BuildPhase, bool) {
	for _, id := range t.BuildPhaseIDs() {
		if obj, ok := g.byID[id]; ok && obj.ISA == ISASourcesBuildPhase {
			return BuildPhase{obj}, true
		}
	}
	return BuildPhase{}, false
}

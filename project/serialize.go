package project

import (
	"fmt"
	"sort"
	"strings"

	"github.com/willibrandon/gopbx/pbx"
)

// condensedISAs are the object kinds Xcode writes on a single line.
var condensedISAs = map[string]bool{
	ISABuildFile:     true,
	ISAFileReference: true,
}

// Serialize renders the graph to pbxproj text in Xcode's canonical
// layout: objects grouped under per-isa section banners in ascending
// tag order, entries ordered by ascending identifier, and every
// identifier reference annotated with a comment re-derived from the
// referenced object's current display name. The output is valid
// parser input.
func (g *Graph) Serialize() []byte {
	ctx := newCommentContext(g)

	w := pbx.NewWriter()
	w.Comment = func(v *pbx.Value) string {
		return ctx.commentFor(ObjectID(v.Str))
	}

	w.WriteHeader()
	w.Raw("{\n")
	w.Indent()
	w.WriteEntry("archiveVersion", pbx.String(g.archiveVersion))
	w.WriteEntry("classes", &pbx.Value{Kind: pbx.ValueDict, Dict: g.classes})
	w.WriteEntry("objectVersion", pbx.String(g.objectVersion))
	g.writeObjects(w, ctx)
	w.WriteEntry("rootObject", pbx.Ref(string(g.rootID)))
	w.Outdent()
	w.Raw("}\n")
	return w.Bytes()
}

// writeObjects renders the objects table grouped by isa section.
func (g *Graph) writeObjects(w *pbx.Writer, ctx *commentContext) {
	w.WriteIndent()
	w.Raw("objects = {\n")

	for _, isa := range g.sectionOrder() {
		w.Rawf("\n/* Begin %s section */\n", isa)
		w.Indent()
		for _, id := range g.sectionIDs(isa) {
			g.writeObject(w, ctx, g.byID[id])
		}
		w.Outdent()
		w.Rawf("/* End %s section */\n", isa)
	}

	w.WriteIndent()
	w.Raw("};\n")
}

// writeObject renders one object entry, on a single line for the
// condensed kinds.
func (g *Graph) writeObject(w *pbx.Writer, ctx *commentContext, obj *Object) {
	w.WriteIndent()
	w.Raw(string(obj.ID))
	if c := ctx.commentFor(obj.ID); c != "" {
		w.Raw(" /* " + c + " */")
	}
	w.Raw(" = ")

	condensed := condensedISAs[obj.ISA]
	if condensed {
		w.SetCondensed(true)
	}
	w.WriteInlineValue(&pbx.Value{Kind: pbx.ValueDict, Dict: obj.Fields})
	if condensed {
		w.SetCondensed(false)
	}
	w.Raw(";\n")
}

// sectionOrder returns the distinct isa tags present in the graph in
// canonical (ascending) order.
func (g *Graph) sectionOrder() []string {
	seen := make(map[string]bool)
	var isas []string
	for _, id := range g.ids {
		isa := g.byID[id].ISA
		if !seen[isa] {
			seen[isa] = true
			isas = append(isas, isa)
		}
	}
	sort.Strings(isas)
	return isas
}

// sectionIDs returns the identifiers of all objects with the given isa
// in ascending identifier order.
func (g *Graph) sectionIDs(isa string) []ObjectID {
	var ids []ObjectID
	for _, id := range g.ids {
		if g.byID[id].ISA == isa {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// commentContext derives the trailing annotation comments for
// identifier references at export time. Comments are never copied
// forward from the parsed input, so renames produce correct
// annotations.
type commentContext struct {
	g *Graph

	// phaseOf maps a build file to the display name of the phase that
	// lists it ("main.m in Sources")
	phaseOf map[ObjectID]string

	// listOwner maps a configuration list to the project or target
	// that owns it
	listOwner map[ObjectID]*Object
}

func newCommentContext(g *Graph) *commentContext {
	ctx := &commentContext{
		g:         g,
		phaseOf:   make(map[ObjectID]string),
		listOwner: make(map[ObjectID]*Object),
	}
	for _, id := range g.ids {
		obj := g.byID[id]
		if obj.ISA == ISAProject || obj.IsTarget() {
			if listID, ok := obj.Ref("buildConfigurationList"); ok {
				ctx.listOwner[listID] = obj
			}
		}
		if strings.HasSuffix(obj.ISA, "BuildPhase") {
			phase := BuildPhase{obj}
			for _, fileID := range phase.FileIDs() {
				ctx.phaseOf[fileID] = phase.PhaseDisplayName()
			}
		}
	}
	return ctx
}

// commentFor returns the annotation text for a reference to id, or ""
// when the object has nothing to say about itself.
func (c *commentContext) commentFor(id ObjectID) string {
	obj, ok := c.g.Get(id)
	if !ok {
		return ""
	}
	switch obj.ISA {
	case ISAProject:
		return "Project object"
	case ISABuildFile:
		name := obj.DisplayName()
		if refID, ok := (BuildFile{obj}).FileRef(); ok {
			if ref, found := c.g.Get(refID); found {
				name = ref.DisplayName()
			}
		}
		if phase, ok := c.phaseOf[id]; ok && name != "" {
			return fmt.Sprintf("%s in %s", name, phase)
		}
		return name
	case ISAConfigurationList:
		owner, ok := c.listOwner[id]
		if !ok {
			return ""
		}
		name := owner.DisplayName()
		if name == "" {
			return "Build configuration list for " + owner.ISA
		}
		return fmt.Sprintf("Build configuration list for %s %q", owner.ISA, name)
	case ISABuildConfiguration:
		return BuildConfiguration{obj}.Name()
	case ISASourcesBuildPhase, ISAFrameworksBuildPhase, ISAResourcesBuildPhase:
		return BuildPhase{obj}.PhaseDisplayName()
	default:
		return obj.DisplayName()
	}
}

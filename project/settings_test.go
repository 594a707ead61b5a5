package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willibrandon/gopbx/pbx"
)

func TestSettingsView_ReadsFixtureValues(t *testing.T) {
	g := loadTestGraph(t)

	view, err := g.TargetConfiguration("App", "Debug")
	require.NoError(t, err)

	assert.Equal(t, "App", view.TargetName())
	assert.Equal(t, "Debug", view.ConfigurationName())
	assert.Equal(t, "App", view.GetString("PRODUCT_NAME"))
	assert.Equal(t, []string{"PRODUCT_NAME"}, view.Keys())
}

func TestSettingsView_LiveHandle(t *testing.T) {
	g := loadTestGraph(t)

	view, err := g.TargetConfiguration("App", "Release")
	require.NoError(t, err)

	// Edits through the view are visible at export without a commit.
	view.SetString("OTHER_LDFLAGS", "-lz")
	view.AppendUnique("OTHER_CFLAGS", "-Wall", "-Wextra")

	out := string(g.Serialize())
	assert.Contains(t, out, `OTHER_LDFLAGS = "-lz";`)
	assert.Contains(t, out, `"-Wall",`)
	assert.Contains(t, out, `"-Wextra",`)
}

func TestSettingsView_AppendUnique(t *testing.T) {
	g := loadTestGraph(t)

	view, err := g.TargetConfiguration("App", "Debug")
	require.NoError(t, err)

	assert.Equal(t, 2, view.AppendUnique("ARCHS", "arm64", "x86_64"))
	assert.Equal(t, 0, view.AppendUnique("ARCHS", "arm64"))
	assert.Equal(t, 1, view.AppendUnique("ARCHS", "i386"))
	assert.Equal(t, []string{"arm64", "x86_64", "i386"}, view.Strings("ARCHS"))
}

func TestSettingsView_AppendUniquePromotesScalar(t *testing.T) {
	g := loadTestGraph(t)

	view, err := g.TargetConfiguration("App", "Debug")
	require.NoError(t, err)

	// PRODUCT_NAME is a scalar in the fixture; appending promotes it to
	// a list with the scalar as first element.
	view.AppendUnique("PRODUCT_NAME", "AppLite")
	assert.Equal(t, []string{"App", "AppLite"}, view.Strings("PRODUCT_NAME"))

	v, ok := view.Get("PRODUCT_NAME")
	require.True(t, ok)
	assert.Equal(t, pbx.ValueList, v.Kind)
}

func TestSettingsView_StringsOnScalar(t *testing.T) {
	g := loadTestGraph(t)

	view, err := g.TargetConfiguration("App", "Debug")
	require.NoError(t, err)

	assert.Equal(t, []string{"App"}, view.Strings("PRODUCT_NAME"))
	assert.Nil(t, view.Strings("MISSING"))
}

package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/dicecrawl/internal/catalog"
)

func TestLoad_Embedded(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	b, err := catalog.Load(context.Background(), catalog.Source(""), zap.New(core))
	require.NoError(t, err)

	assert.Len(t, b.Dungeons(), 6)
	assert.Len(t, b.Encounters().Combats(), 24)
	assert.Len(t, b.Encounters().Perils(), 20)
	assert.GreaterOrEqual(t, len(b.Heroes()), 2)
	assert.Equal(t, 30, b.Skills().Len())

	mage, ok := b.Hero("mage")
	require.True(t, ok)
	assert.Equal(t, "Mage", mage.Name)

	d, ok := b.Dungeon("dragons_cave")
	require.True(t, ok)
	assert.Equal(t, "Dragon's Cave", d.Name)

	_, ok = b.Encounters().Combat("goblin-2")
	assert.True(t, ok)

	summary := logs.FilterMessage("content loaded").All()
	require.Len(t, summary, 1)
	assert.EqualValues(t, 24, summary[0].ContextMap()["combats"])
}

func TestLoad_ReportsSkillConflicts(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	b, err := catalog.Load(context.Background(), catalog.Source(""), zap.New(core))
	require.NoError(t, err)

	assert.Equal(t, []string{"MANA"}, b.Conflicts())
	warnings := logs.FilterMessage("conflicting skill definitions, keeping first").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "MANA", warnings[0].ContextMap()["skill"])

	mana, ok := b.Skills().Get("MANA")
	require.True(t, ok)
	assert.Equal(t, warnings[0].ContextMap()["kept_description"], mana.Description)
}

const heroYAML = `
id: monk
name: Monk
attributes: [{type: agility, quantity: 3}]
heroic_feat: {name: CALM, phases: [peril]}
`

const dungeonYAML = `
id: well
name: Well
difficulty: 1
levels:
  - {level: 1, peril: [{total: 1}], combat: [{total: 1}]}
  - {level: 2, peril: [{total: 2}], combat: [{total: 2}]}
  - {level: 3, peril: [{total: 3}], combat: [{total: 3}]}
`

const combatYAML = `
id: rat
name: Rat
xp: 1
boxes: [{total: 2}]
options: [{skill: {name: NIBBLE, effect: {kind: none}, phases: [combat]}}]
`

const perilYAML = `
id: pit
name: Pit
xp: 1
first: {boxes: [{total: 2}]}
second: {boxes: [{total: 3}]}
options: [{skill: {name: NIBBLE, effect: {kind: none}, phases: [combat]}}]
`

func minimalFS() fstest.MapFS {
	return fstest.MapFS{
		"heroes/monk.yaml":   {Data: []byte(heroYAML)},
		"dungeons/well.yaml": {Data: []byte(dungeonYAML)},
		"combats/rat.yaml":   {Data: []byte(combatYAML)},
		"perils/pit.yaml":    {Data: []byte(perilYAML)},
	}
}

func TestLoad_CustomFS(t *testing.T) {
	b, err := catalog.Load(context.Background(), minimalFS(), zap.NewNop())
	require.NoError(t, err)
	assert.Len(t, b.Heroes(), 1)
	assert.Len(t, b.Dungeons(), 1)
	assert.Len(t, b.Encounters().Combats(), 1)
	assert.Equal(t, 1, b.Skills().Len())
	assert.Empty(t, b.Conflicts(), "identical redefinitions are not conflicts")
}

func TestLoad_DirectorySource(t *testing.T) {
	dir := t.TempDir()
	for name, f := range minimalFS() {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, f.Data, 0o644))
	}
	b, err := catalog.Load(context.Background(), catalog.Source(dir), zap.NewNop())
	require.NoError(t, err)
	_, ok := b.Hero("monk")
	assert.True(t, ok)
}

func TestLoad_DuplicateIDs(t *testing.T) {
	fsys := minimalFS()
	fsys["dungeons/well_again.yaml"] = &fstest.MapFile{Data: []byte(dungeonYAML)}
	_, err := catalog.Load(context.Background(), fsys, zap.NewNop())
	assert.ErrorContains(t, err, `dungeon ID "well"`)

	fsys = minimalFS()
	fsys["combats/rat_again.yaml"] = &fstest.MapFile{Data: []byte(combatYAML)}
	_, err = catalog.Load(context.Background(), fsys, zap.NewNop())
	assert.ErrorContains(t, err, `"rat-1" already registered`)
}

func TestLoad_InvalidTable(t *testing.T) {
	fsys := minimalFS()
	fsys["perils/broken.yaml"] = &fstest.MapFile{Data: []byte("id: broken\n")}
	_, err := catalog.Load(context.Background(), fsys, zap.NewNop())
	assert.ErrorContains(t, err, "perils/broken.yaml")
}

func TestLoad_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := catalog.Load(ctx, minimalFS(), zap.NewNop())
	assert.ErrorIs(t, err, context.Canceled)
}

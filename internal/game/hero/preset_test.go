package hero_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/dicecrawl/content"
	"github.com/cory-johannsen/dicecrawl/internal/game/attribute"
	"github.com/cory-johannsen/dicecrawl/internal/game/hero"
	"github.com/cory-johannsen/dicecrawl/internal/game/phase"
)

const rogueYAML = `
id: rogue
name: "Rogue"
attributes:
  - {type: agility, quantity: 4}
  - {type: strength, quantity: 2}
heroic_feat:
  name: "VANISH"
  description: "Skip one combat box.\nOnce per dungeon."
  phases: [combat]
skills:
  - name: "BACKSTAB"
    requirement: {type: agility, value: 5}
    effect: {kind: increase, amount: 2}
    phases: [combat, boss]
levels:
  1: {items: 1, skills: 1, potions: 0, encounter_bonus: 0, xp: 3}
  2: {items: 2, skills: 2, potions: 1, encounter_bonus: 2, xp: 0}
`

func TestLoadPresets(t *testing.T) {
	fsys := fstest.MapFS{
		"heroes/rogue.yaml": {Data: []byte(rogueYAML)},
		"heroes/notes.txt":  {Data: []byte("ignored")},
	}
	presets, err := hero.LoadPresets(fsys, "heroes")
	require.NoError(t, err)
	require.Len(t, presets, 1)

	p := presets[0]
	assert.Equal(t, "rogue", p.ID)
	assert.Equal(t, "Skip one combat box.\nOnce per dungeon.", p.HeroicFeat.Description)
	assert.Equal(t, []phase.Phase{phase.Combat}, p.HeroicFeat.Phases)
	require.Len(t, p.Skills, 1)
	assert.Equal(t, "Agility value 5", p.Skills[0].RequirementText())
	assert.Equal(t, 2, p.Levels.Max())

	h, err := hero.New(p)
	require.NoError(t, err)
	assert.Equal(t, 0, h.Potions)
	_, err = h.AdvanceLevel()
	require.NoError(t, err)
	assert.Equal(t, 2, h.EncounterBonus)
	_, err = h.AdvanceLevel()
	assert.ErrorIs(t, err, hero.ErrLevelTooHigh)
}

func TestLoadPresets_EmptyDir(t *testing.T) {
	presets, err := hero.LoadPresets(fstest.MapFS{}, "heroes")
	require.NoError(t, err)
	assert.Empty(t, presets)
}

func TestLoadPresets_UnknownField(t *testing.T) {
	fsys := fstest.MapFS{"heroes/bad.yaml": {Data: []byte("id: bad\nname: Bad\nmana: 3\n")}}
	_, err := hero.LoadPresets(fsys, "heroes")
	assert.ErrorContains(t, err, "heroes/bad.yaml")
}

func TestDef_PresetRejects(t *testing.T) {
	q := func(n int) *int { return &n }
	valid := func() hero.Def {
		return hero.Def{
			ID:         "x",
			Name:       "X",
			Attributes: []attribute.Def{{Type: "strength", Quantity: q(1)}},
			HeroicFeat: hero.FeatDef{Name: "FEAT", Phases: []string{"combat"}},
		}
	}
	_, err := valid().Preset()
	require.NoError(t, err)

	cases := map[string]func(d *hero.Def){
		"empty id":           func(d *hero.Def) { d.ID = "" },
		"empty feat":         func(d *hero.Def) { d.HeroicFeat.Name = "" },
		"value only":         func(d *hero.Def) { d.Attributes = []attribute.Def{{Type: "strength", Value: q(3)}} },
		"repeated kind":      func(d *hero.Def) { d.Attributes = append(d.Attributes, attribute.Def{Type: "strength", Quantity: q(2)}) },
		"bad feat phase":     func(d *hero.Def) { d.HeroicFeat.Phases = []string{"lunch"} },
		"gapped level table": func(d *hero.Def) { d.Levels = map[int]hero.Level{1: {}, 3: {}} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			d := valid()
			mutate(&d)
			_, err := d.Preset()
			assert.Error(t, err)
		})
	}
}

func TestDef_PresetDuplicateSkill(t *testing.T) {
	fsys := fstest.MapFS{"heroes/twice.yaml": {Data: []byte(`
id: twice
name: Twice
attributes: [{type: magic, quantity: 1}]
heroic_feat: {name: ECHO, phases: [peril]}
skills:
  - {name: "SHIELD AURA", effect: {kind: prevent, type: health}, phases: [peril]}
  - {name: "SHIELD AURA", effect: {kind: prevent, type: health}, phases: [peril]}
`)}}
	_, err := hero.LoadPresets(fsys, "heroes")
	assert.ErrorIs(t, err, hero.ErrDuplicateSkill)
}

func TestLoadPresets_EmbeddedContent(t *testing.T) {
	presets, err := hero.LoadPresets(content.FS(), content.HeroesDir)
	require.NoError(t, err)
	require.NotEmpty(t, presets)

	var mage *hero.Preset
	for _, p := range presets {
		if p.ID == "mage" {
			mage = p
		}
	}
	require.NotNil(t, mage)

	h, err := hero.New(mage)
	require.NoError(t, err)
	assert.Equal(t, "1 x Strength, 2 x Agility, 4 x Magic, 5 x Health", attribute.Join(h.Attributes.All()))
	assert.Equal(t, "MANA CHARGE", h.HeroicFeat.Name)
	assert.True(t, h.HasSkill("SHIELD AURA"))

	q, err := h.AdjustAttribute(attribute.Strength, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, q)
}

func TestStandardLevels(t *testing.T) {
	table := hero.StandardLevels()
	assert.Equal(t, []int{1, 2, 3, 4}, table.Numbers())
	assert.Equal(t, 4, table.Max())
	top, ok := table.Get(4)
	require.True(t, ok)
	assert.Equal(t, 0, top.XP)
	_, ok = table.Get(5)
	assert.False(t, ok)
}

func TestNewLevelTable_Rejects(t *testing.T) {
	_, err := hero.NewLevelTable(nil)
	assert.Error(t, err)
	_, err = hero.NewLevelTable(map[int]hero.Level{2: {}})
	assert.Error(t, err)
	_, err = hero.NewLevelTable(map[int]hero.Level{1: {Items: -1}})
	assert.Error(t, err)
}

func TestNewLevelTable_CopiesInput(t *testing.T) {
	entries := map[int]hero.Level{1: {Items: 1}}
	table, err := hero.NewLevelTable(entries)
	require.NoError(t, err)
	entries[1] = hero.Level{Items: 7}
	entries[2] = hero.Level{}

	l, _ := table.Get(1)
	assert.Equal(t, 1, l.Items)
	assert.Equal(t, 1, table.Max())
}

func TestLevelTable_ZeroValue(t *testing.T) {
	var table hero.LevelTable
	assert.Equal(t, 0, table.Max())
	assert.Empty(t, table.Numbers())
}

// Property: any contiguous table reports its size as Max.
func TestPropertyLevelTableMax(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 20).Draw(t, "n")
		entries := make(map[int]hero.Level, n)
		for i := 1; i <= n; i++ {
			entries[i] = hero.Level{XP: i}
		}
		table, err := hero.NewLevelTable(entries)
		require.NoError(t, err)
		assert.Equal(t, n, table.Max())
		assert.Len(t, table.Numbers(), n)
	})
}

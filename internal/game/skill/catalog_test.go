package skill_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/dicecrawl/internal/game/attribute"
	"github.com/cory-johannsen/dicecrawl/internal/game/phase"
	"github.com/cory-johannsen/dicecrawl/internal/game/skill"
)

func mana(description string) skill.Skill {
	return skill.Skill{
		Name:        "MANA",
		Description: description,
		Effect:      skill.Roll{Attributes: []attribute.Attribute{attribute.Count(attribute.Magic, 3)}},
		Phases:      []phase.Phase{phase.Combat},
	}
}

func TestCatalog_FirstWins(t *testing.T) {
	c := skill.NewCatalog()
	assert.True(t, c.Add(mana("Roll 3 x MAGIC dice.")))
	assert.True(t, c.Add(mana("Roll 3 x MAGIC dice.")), "identical redefinition is not a conflict")
	assert.False(t, c.Add(mana("Roll 3 x MAGIC dice")), "differing redefinition is a conflict")

	got, ok := c.Get("MANA")
	require.True(t, ok)
	assert.Equal(t, "Roll 3 x MAGIC dice.", got.Description)
	assert.Equal(t, 1, c.Len())
}

func TestCatalog_AllInRegistrationOrder(t *testing.T) {
	c := skill.NewCatalog()
	for _, n := range []string{"ZAP", "ARMOR", "MEND"} {
		c.Add(skill.Skill{Name: n, Effect: skill.None{}, Phases: []phase.Phase{phase.Peril}})
	}
	var names []string
	for _, s := range c.All() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"ZAP", "ARMOR", "MEND"}, names)
}

func TestCatalog_GetMissing(t *testing.T) {
	_, ok := skill.NewCatalog().Get("NOPE")
	assert.False(t, ok)
}

package attribute_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/dicecrawl/internal/game/attribute"
)

func intPtr(n int) *int { return &n }

func TestFormat(t *testing.T) {
	cases := []struct {
		name string
		attr attribute.Attribute
		want string
	}{
		{"quantity", attribute.Count(attribute.Strength, 3), "3 x Strength"},
		{"value", attribute.Face(attribute.Magic, 5), "Magic value 5"},
		{"both", attribute.Dice(attribute.Strength, 2, 6), "2 x Strength value 6"},
		{"default kind", attribute.Count(attribute.Default, 1), "1 x any"},
		{"value kind", attribute.Attribute{Type: attribute.Faces(1, 2), Quantity: intPtr(2)}, "2 x value 1/2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.attr.Format()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want, tc.attr.String())
		})
	}
}

func TestFormat_Degenerate(t *testing.T) {
	a := attribute.Attribute{Type: attribute.Of(attribute.Health)}
	_, err := a.Format()
	assert.ErrorIs(t, err, attribute.ErrDegenerateAttribute)
	assert.Equal(t, "<Health ?>", a.String())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, attribute.Count(attribute.Time, 0).Validate())
	assert.NoError(t, attribute.Dice(attribute.Heroic, 1, 6).Validate())

	assert.Error(t, attribute.Attribute{Type: attribute.Of(attribute.Door)}.Validate())
	assert.Error(t, attribute.Count(attribute.Door, -1).Validate())
	assert.Error(t, attribute.Face(attribute.Magic, 7).Validate())
	assert.Error(t, attribute.Face(attribute.Magic, 0).Validate())
	assert.Error(t, attribute.Attribute{Type: attribute.Type{Kind: attribute.Value}, Quantity: intPtr(1)}.Validate())
}

func TestWithQuantity_PreservesValueAndCopies(t *testing.T) {
	orig := attribute.Dice(attribute.Strength, 2, 6)
	next := orig.WithQuantity(5)

	assert.Equal(t, 5, *next.Quantity)
	assert.Equal(t, 6, *next.Value)
	assert.Equal(t, 2, *orig.Quantity, "original must not change")
	*next.Value = 1
	assert.Equal(t, 6, *orig.Value, "value pointer must not be shared")
}

func TestQuantityOrZero(t *testing.T) {
	assert.Equal(t, 0, attribute.Face(attribute.Magic, 3).QuantityOrZero())
	assert.Equal(t, 4, attribute.Count(attribute.Magic, 4).QuantityOrZero())
}

func TestJoin(t *testing.T) {
	got := attribute.Join([]attribute.Attribute{
		attribute.Count(attribute.Health, 1),
		attribute.Count(attribute.Time, 2),
	})
	assert.Equal(t, "1 x Health, 2 x Time", got)
	assert.Equal(t, "", attribute.Join(nil))
}

func TestKindOrder(t *testing.T) {
	kinds := attribute.Kinds()
	assert.True(t, slices.IsSorted(kinds))
	assert.Equal(t, attribute.Strength, kinds[0])
	assert.Equal(t, attribute.Default, kinds[len(kinds)-1])
	assert.Less(t, attribute.Magic, attribute.Health)
}

func TestParseKind(t *testing.T) {
	for _, k := range attribute.Kinds() {
		got, err := attribute.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	got, err := attribute.ParseKind("strength")
	require.NoError(t, err)
	assert.Equal(t, attribute.Strength, got)

	_, err = attribute.ParseKind("mana")
	assert.Error(t, err)
}

func TestTypeEqualAndCompare(t *testing.T) {
	assert.True(t, attribute.Of(attribute.Magic).Equal(attribute.Of(attribute.Magic)))
	assert.False(t, attribute.Of(attribute.Magic).Equal(attribute.Of(attribute.Health)))
	assert.True(t, attribute.Faces(1, 2).Equal(attribute.Faces(1, 2)))
	assert.False(t, attribute.Faces(1, 2).Equal(attribute.Faces(5, 6)))

	// Ordering ignores the embedded faces.
	assert.Equal(t, 0, attribute.Faces(1).Compare(attribute.Faces(6)))
	assert.Equal(t, -1, attribute.Of(attribute.Strength).Compare(attribute.Of(attribute.Default)))
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "Agility", attribute.Of(attribute.Agility).String())
	assert.Equal(t, "any", attribute.Of(attribute.Default).String())
	assert.Equal(t, "value 5/6", attribute.Faces(5, 6).String())
}

func TestDef_Attribute(t *testing.T) {
	a, err := attribute.Def{Type: "heroic", Quantity: intPtr(2)}.Attribute()
	require.NoError(t, err)
	assert.Equal(t, "2 x Heroic", a.String())

	a, err = attribute.Def{Type: "value", Faces: []int{1, 2}, Quantity: intPtr(1)}.Attribute()
	require.NoError(t, err)
	assert.Equal(t, "1 x value 1/2", a.String())

	a, err = attribute.Def{Quantity: intPtr(1)}.Attribute()
	require.NoError(t, err)
	assert.Equal(t, attribute.Default, a.Type.Kind)
}

func TestDef_AttributeRejects(t *testing.T) {
	cases := map[string]attribute.Def{
		"degenerate":       {Type: "strength"},
		"unknown kind":     {Type: "mana", Quantity: intPtr(1)},
		"faces on plain":   {Type: "magic", Faces: []int{3}, Quantity: intPtr(1)},
		"value sans faces": {Type: "value", Quantity: intPtr(1)},
		"face range":       {Type: "value", Faces: []int{7}, Quantity: intPtr(1)},
	}
	for name, d := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := d.Attribute()
			assert.Error(t, err)
		})
	}
	_, err := attribute.Def{Type: "strength"}.Attribute()
	assert.ErrorIs(t, err, attribute.ErrDegenerateAttribute)
}

func TestFromDefs_StopsAtFirstInvalid(t *testing.T) {
	_, err := attribute.FromDefs([]attribute.Def{
		{Type: "health", Quantity: intPtr(1)},
		{Type: "time"},
	})
	assert.ErrorContains(t, err, "attribute 1")
}

func TestPropertyFormatNeverFailsWhenQuantitySet(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		k := rapid.SampledFrom(attribute.Kinds()).Draw(t, "kind")
		n := rapid.IntRange(0, 99).Draw(t, "n")
		a := attribute.Attribute{Type: attribute.Of(k), Quantity: &n}
		if k == attribute.Value {
			a.Type = attribute.Faces(rapid.IntRange(1, 6).Draw(t, "face"))
		}
		_, err := a.Format()
		assert.NoError(t, err)
		assert.NoError(t, a.Validate())
	})
}

package hero

import (
	"fmt"
	"maps"
	"slices"
)

// Level holds the entitlements a hero has at one level.
type Level struct {
	Items          int `yaml:"items"`
	Skills         int `yaml:"skills"`
	Potions        int `yaml:"potions"`
	EncounterBonus int `yaml:"encounter_bonus"`
	// XP is the experience needed to advance past this level; 0 on the last level.
	XP int `yaml:"xp"`
}

// LevelTable maps level numbers to entitlements. It is immutable once built
// and may be shared between heroes.
type LevelTable struct {
	levels map[int]Level
}

// StandardLevels returns the four-level table every hero preset uses unless it
// declares its own.
func StandardLevels() LevelTable {
	return LevelTable{levels: map[int]Level{
		1: {Items: 1, Skills: 2, Potions: 1, EncounterBonus: 0, XP: 4},
		2: {Items: 2, Skills: 3, Potions: 1, EncounterBonus: 1, XP: 6},
		3: {Items: 3, Skills: 4, Potions: 2, EncounterBonus: 1, XP: 8},
		4: {Items: 4, Skills: 5, Potions: 2, EncounterBonus: 2, XP: 0},
	}}
}

// NewLevelTable builds a table from entries.
//
// Precondition: entries must hold levels 1..n with no gaps and no negative counts.
// Postcondition: Returns a table independent of entries, or a non-nil error.
func NewLevelTable(entries map[int]Level) (LevelTable, error) {
	if len(entries) == 0 {
		return LevelTable{}, fmt.Errorf("level table must not be empty")
	}
	for n := 1; n <= len(entries); n++ {
		l, ok := entries[n]
		if !ok {
			return LevelTable{}, fmt.Errorf("level table must hold levels 1-%d, missing %d", len(entries), n)
		}
		if l.Items < 0 || l.Skills < 0 || l.Potions < 0 || l.EncounterBonus < 0 || l.XP < 0 {
			return LevelTable{}, fmt.Errorf("level %d has a negative entitlement", n)
		}
	}
	return LevelTable{levels: maps.Clone(entries)}, nil
}

// Get returns the entitlements for level n.
func (t LevelTable) Get(n int) (Level, bool) {
	l, ok := t.levels[n]
	return l, ok
}

// Max returns the highest level in the table, or 0 for an empty table.
func (t LevelTable) Max() int {
	if len(t.levels) == 0 {
		return 0
	}
	return slices.Max(slices.Collect(maps.Keys(t.levels)))
}

// Numbers returns the level numbers in ascending order.
func (t LevelTable) Numbers() []int {
	return slices.Sorted(maps.Keys(t.levels))
}

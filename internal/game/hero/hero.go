// Package hero defines the hero state container and the three operations that
// mutate it: attribute adjustment, skill acquisition, and level advancement.
//
// A Hero is owned by a single session. Callers sharing one across goroutines
// must serialise access themselves.
package hero

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cory-johannsen/dicecrawl/internal/game/attribute"
	"github.com/cory-johannsen/dicecrawl/internal/game/phase"
	"github.com/cory-johannsen/dicecrawl/internal/game/skill"
)

// ErrAttributeNotFound is returned when a hero holds no attribute of the
// requested kind, or a level-table lookup fails.
var ErrAttributeNotFound = errors.New("attribute not found")

// ErrQuantityNegative is returned when an adjustment would drive a quantity below zero.
var ErrQuantityNegative = errors.New("attribute quantity would be negative")

// ErrValueNotFound is returned when an attribute carries no face value.
var ErrValueNotFound = errors.New("attribute value not found")

// ErrDuplicateSkill is returned when a hero already knows a skill of the same name.
var ErrDuplicateSkill = errors.New("skill already learned")

// ErrLevelTooHigh is returned when advancing past the last level of the table.
var ErrLevelTooHigh = errors.New("level exceeds level table")

// HeroicFeat is a hero-specific ability. Description may contain an explicit
// line break.
type HeroicFeat struct {
	Name        string
	Description string
	Phases      []phase.Phase
}

// Hero is a hero's mutable session state.
type Hero struct {
	ID         uuid.UUID
	Name       string
	Attributes attribute.Set
	HeroicFeat HeroicFeat
	// Skills is in learning order, which is also display order.
	Skills []skill.Skill
	Levels LevelTable

	Level          int
	Potions        int
	EncounterBonus int
}

// AdjustAttribute adds delta to the quantity of the hero's kind attribute.
// An unset quantity counts as 0; a face value, if any, is kept.
//
// Postcondition: Returns the new quantity. On error the hero is unchanged;
// errors wrap ErrAttributeNotFound or ErrQuantityNegative.
func (h *Hero) AdjustAttribute(kind attribute.Kind, delta int) (int, error) {
	current, ok := h.Attributes.Get(kind)
	if !ok {
		return 0, fmt.Errorf("hero %q has no %s: %w", h.Name, kind, ErrAttributeNotFound)
	}
	next := current.QuantityOrZero() + delta
	if next < 0 {
		return 0, fmt.Errorf("%s %d%+d: %w", kind, current.QuantityOrZero(), delta, ErrQuantityNegative)
	}
	h.Attributes.Put(current.WithQuantity(next))
	return next, nil
}

// Quantity returns the hero's current quantity of kind.
//
// Postcondition: Returns an error wrapping ErrAttributeNotFound if kind is absent.
func (h *Hero) Quantity(kind attribute.Kind) (int, error) {
	a, ok := h.Attributes.Get(kind)
	if !ok {
		return 0, fmt.Errorf("hero %q has no %s: %w", h.Name, kind, ErrAttributeNotFound)
	}
	return a.QuantityOrZero(), nil
}

// FaceValue returns the die face recorded on the hero's kind attribute.
//
// Postcondition: Returns an error wrapping ErrAttributeNotFound if kind is
// absent, or ErrValueNotFound if the attribute has no face value.
func (h *Hero) FaceValue(kind attribute.Kind) (int, error) {
	a, ok := h.Attributes.Get(kind)
	if !ok {
		return 0, fmt.Errorf("hero %q has no %s: %w", h.Name, kind, ErrAttributeNotFound)
	}
	if a.Value == nil {
		return 0, fmt.Errorf("hero %q %s: %w", h.Name, kind, ErrValueNotFound)
	}
	return *a.Value, nil
}

// HasSkill reports whether the hero knows a skill named exactly name.
func (h *Hero) HasSkill(name string) bool {
	for _, s := range h.Skills {
		if s.Name == name {
			return true
		}
	}
	return false
}

// AddSkill appends s to the hero's skills. Names match case-sensitively.
//
// Postcondition: On success len(Skills) grows by one and s is last. On error
// (wrapping ErrDuplicateSkill) Skills is unchanged.
func (h *Hero) AddSkill(s skill.Skill) error {
	if h.HasSkill(s.Name) {
		return fmt.Errorf("hero %q learning %q: %w", h.Name, s.Name, ErrDuplicateSkill)
	}
	h.Skills = append(h.Skills, s)
	return nil
}

// AdvanceLevel moves the hero up exactly one level, grants one potion, and
// sets the encounter bonus from the new level's table entry.
//
// Postcondition: Returns the new level. On error (wrapping ErrLevelTooHigh or
// ErrAttributeNotFound) level, potions, and encounter bonus are unchanged.
func (h *Hero) AdvanceLevel() (int, error) {
	next := h.Level + 1
	if next > h.Levels.Max() {
		return h.Level, fmt.Errorf("hero %q advancing to level %d of %d: %w", h.Name, next, h.Levels.Max(), ErrLevelTooHigh)
	}
	entry, ok := h.Levels.Get(next)
	if !ok {
		return h.Level, fmt.Errorf("level %d encounter bonus: %w", next, ErrAttributeNotFound)
	}
	h.Level = next
	h.Potions++
	h.EncounterBonus = entry.EncounterBonus
	return h.Level, nil
}

// Entitlements returns the level-table entry for the hero's current level.
//
// Postcondition: Returns an error wrapping ErrAttributeNotFound if the current
// level is missing from the table.
func (h *Hero) Entitlements() (Level, error) {
	l, ok := h.Levels.Get(h.Level)
	if !ok {
		return Level{}, fmt.Errorf("level %d: %w", h.Level, ErrAttributeNotFound)
	}
	return l, nil
}

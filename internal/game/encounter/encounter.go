// Package encounter defines the combat and peril cards a hero faces inside a
// dungeon, together with their rewards.
package encounter

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/dicecrawl/internal/game/attribute"
	"github.com/cory-johannsen/dicecrawl/internal/game/dungeon"
	"github.com/cory-johannsen/dicecrawl/internal/game/skill"
)

// Reward is what defeating an encounter grants.
type Reward struct {
	XP    int
	Items []attribute.Attribute
	Skill skill.Skill
}

// Combat is one side of a monster card.
type Combat struct {
	// ID is "<monster id>-<option>".
	ID             string
	Name           string
	Option         int
	SpecialAbility skill.Effect
	Boxes          []dungeon.ChallengeBox
	Reward         Reward
}

// Choice is one of the two ways through a peril.
type Choice struct {
	Boxes []dungeon.ChallengeBox
	// TimeCost is paid up front when set.
	TimeCost *int
}

// Peril is one side of a peril card.
type Peril struct {
	ID     string
	Name   string
	Option int
	First  Choice
	Second Choice
	Reward Reward
}

// OptionDef is the content-file form of one card side's rewards.
type OptionDef struct {
	Items []attribute.Def `yaml:"items"`
	Skill skill.Def       `yaml:"skill"`
}

// ChoiceDef is the content-file form of a Choice.
type ChoiceDef struct {
	TimeCost *int             `yaml:"time_cost"`
	Boxes    []dungeon.BoxDef `yaml:"boxes"`
}

// CombatDef is the content-file form of a monster: shared boxes and XP plus
// one OptionDef per card side.
type CombatDef struct {
	ID             string           `yaml:"id"`
	Name           string           `yaml:"name"`
	SpecialAbility skill.EffectDef  `yaml:"special_ability"`
	XP             int              `yaml:"xp"`
	Boxes          []dungeon.BoxDef `yaml:"boxes"`
	Options        []OptionDef      `yaml:"options"`
}

// PerilDef is the content-file form of a peril with its card sides.
type PerilDef struct {
	ID      string      `yaml:"id"`
	Name    string      `yaml:"name"`
	XP      int         `yaml:"xp"`
	First   ChoiceDef   `yaml:"first"`
	Second  ChoiceDef   `yaml:"second"`
	Options []OptionDef `yaml:"options"`
}

func validateHeader(id, name string, xp, options int) []error {
	var errs []error
	if id == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if xp < 1 {
		errs = append(errs, fmt.Errorf("xp must be >= 1, got %d", xp))
	}
	if options < 1 {
		errs = append(errs, errors.New("at least one option is required"))
	}
	return errs
}

func (o OptionDef) reward(xp int) (Reward, error) {
	items, err := attribute.FromDefs(o.Items)
	if err != nil {
		return Reward{}, fmt.Errorf("items: %w", err)
	}
	s, err := o.Skill.Skill()
	if err != nil {
		return Reward{}, err
	}
	return Reward{XP: xp, Items: items, Skill: s}, nil
}

// Combats expands d into one validated Combat per option.
//
// Postcondition: Returns len(d.Options) combats numbered from 1, or a non-nil error.
func (d CombatDef) Combats() ([]*Combat, error) {
	errs := validateHeader(d.ID, d.Name, d.XP, len(d.Options))
	ability, err := d.SpecialAbility.Effect()
	if err != nil {
		errs = append(errs, fmt.Errorf("special_ability: %w", err))
	}
	boxes, err := dungeon.Boxes(d.Boxes)
	if err != nil {
		errs = append(errs, err)
	}
	if len(d.Boxes) == 0 {
		errs = append(errs, errors.New("at least one box is required"))
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("combat %q validation failed: %w", d.ID, errors.Join(errs...))
	}
	out := make([]*Combat, 0, len(d.Options))
	for i, o := range d.Options {
		r, err := o.reward(d.XP)
		if err != nil {
			return nil, fmt.Errorf("combat %q option %d: %w", d.ID, i+1, err)
		}
		out = append(out, &Combat{
			ID:             fmt.Sprintf("%s-%d", d.ID, i+1),
			Name:           d.Name,
			Option:         i + 1,
			SpecialAbility: ability,
			Boxes:          boxes,
			Reward:         r,
		})
	}
	return out, nil
}

func (c ChoiceDef) choice() (Choice, error) {
	if len(c.Boxes) == 0 {
		return Choice{}, errors.New("at least one box is required")
	}
	if c.TimeCost != nil && *c.TimeCost < 1 {
		return Choice{}, fmt.Errorf("time_cost must be >= 1, got %d", *c.TimeCost)
	}
	boxes, err := dungeon.Boxes(c.Boxes)
	if err != nil {
		return Choice{}, err
	}
	return Choice{Boxes: boxes, TimeCost: c.TimeCost}, nil
}

// Perils expands d into one validated Peril per option.
//
// Postcondition: Returns len(d.Options) perils numbered from 1, or a non-nil error.
func (d PerilDef) Perils() ([]*Peril, error) {
	errs := validateHeader(d.ID, d.Name, d.XP, len(d.Options))
	first, err := d.First.choice()
	if err != nil {
		errs = append(errs, fmt.Errorf("first: %w", err))
	}
	second, err := d.Second.choice()
	if err != nil {
		errs = append(errs, fmt.Errorf("second: %w", err))
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("peril %q validation failed: %w", d.ID, errors.Join(errs...))
	}
	out := make([]*Peril, 0, len(d.Options))
	for i, o := range d.Options {
		r, err := o.reward(d.XP)
		if err != nil {
			return nil, fmt.Errorf("peril %q option %d: %w", d.ID, i+1, err)
		}
		out = append(out, &Peril{
			ID:     fmt.Sprintf("%s-%d", d.ID, i+1),
			Name:   d.Name,
			Option: i + 1,
			First:  first,
			Second: second,
			Reward: r,
		})
	}
	return out, nil
}

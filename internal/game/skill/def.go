package skill

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/dicecrawl/internal/game/attribute"
	"github.com/cory-johannsen/dicecrawl/internal/game/phase"
)

// Effect kind names used in content files. Passive abilities use their own
// lower-case name as the kind.
const (
	KindGain     = "gain"
	KindRoll     = "roll"
	KindIncrease = "increase"
	KindReroll   = "reroll"
	KindChange   = "change"
	KindPrevent  = "prevent"
	KindDiscard  = "discard"
	KindHeal     = "heal"
	KindSkip     = "skip"
	KindFormula  = "formula"
	KindNone     = "none"
)

// EffectDef is the content-file form of an Effect. Which fields are read
// depends on Kind.
type EffectDef struct {
	Kind       string          `yaml:"kind"`
	Attributes []attribute.Def `yaml:"attributes"`
	Amount     int             `yaml:"amount"`
	Type       string          `yaml:"type"`
	Faces      []int           `yaml:"faces"`
	Value      int             `yaml:"value"`
	Cost       *attribute.Def  `yaml:"cost"`
	Per        string          `yaml:"per"`
}

// ParsePassive resolves a passive ability name, case-insensitively.
func ParsePassive(s string) (Passive, bool) {
	for _, p := range Passives() {
		if strings.EqualFold(s, p.Name()) {
			return p, true
		}
	}
	return 0, false
}

// Effect converts d into an Effect.
//
// Postcondition: Returns a non-nil Effect, or a non-nil error naming the bad field.
func (d EffectDef) Effect() (Effect, error) {
	switch d.Kind {
	case KindGain, KindRoll:
		if len(d.Attributes) == 0 {
			return nil, fmt.Errorf("%s effect requires attributes", d.Kind)
		}
		attrs, err := attribute.FromDefs(d.Attributes)
		if err != nil {
			return nil, fmt.Errorf("%s effect: %w", d.Kind, err)
		}
		if d.Kind == KindGain {
			return Gain{Attributes: attrs}, nil
		}
		return Roll{Attributes: attrs}, nil
	case KindIncrease, KindHeal:
		if d.Amount < 1 {
			return nil, fmt.Errorf("%s effect amount must be >= 1, got %d", d.Kind, d.Amount)
		}
		if d.Kind == KindIncrease {
			return Increase{Amount: d.Amount}, nil
		}
		return Heal{Amount: d.Amount}, nil
	case KindReroll, KindPrevent, KindDiscard:
		t, err := attribute.ParseType(d.Type, d.Faces)
		if err != nil {
			return nil, fmt.Errorf("%s effect: %w", d.Kind, err)
		}
		switch d.Kind {
		case KindReroll:
			return Reroll{Filter: t}, nil
		case KindPrevent:
			return Prevent{Type: t}, nil
		default:
			return Discard{Type: t}, nil
		}
	case KindChange:
		t, err := attribute.ParseType(d.Type, d.Faces)
		if err != nil {
			return nil, fmt.Errorf("change effect: %w", err)
		}
		if d.Value < 1 || d.Value > 6 {
			return nil, fmt.Errorf("change effect value must be a die face 1-6, got %d", d.Value)
		}
		return Change{Type: t, Value: d.Value}, nil
	case KindSkip:
		if d.Cost == nil {
			return nil, fmt.Errorf("skip effect requires a cost")
		}
		cost, err := d.Cost.Attribute()
		if err != nil {
			return nil, fmt.Errorf("skip effect cost: %w", err)
		}
		return Skip{Cost: cost}, nil
	case KindFormula:
		target, err := attribute.ParseType(d.Type, d.Faces)
		if err != nil {
			return nil, fmt.Errorf("formula effect: %w", err)
		}
		per, err := attribute.ParseKind(d.Per)
		if err != nil {
			return nil, fmt.Errorf("formula effect per: %w", err)
		}
		return Formula{Target: target, Amount: d.Amount, Per: per}, nil
	case KindNone, "":
		return None{}, nil
	default:
		if p, ok := ParsePassive(d.Kind); ok {
			return p, nil
		}
		return nil, fmt.Errorf("unknown effect kind %q", d.Kind)
	}
}

// Def is the content-file form of a Skill.
type Def struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Requirement *attribute.Def `yaml:"requirement"`
	Effect      EffectDef      `yaml:"effect"`
	Phases      []string       `yaml:"phases"`
}

// Skill converts d into a validated Skill.
//
// Postcondition: Returns a Skill satisfying Validate, or a non-nil error.
func (d Def) Skill() (Skill, error) {
	effect, err := d.Effect.Effect()
	if err != nil {
		return Skill{}, fmt.Errorf("skill %q: %w", d.Name, err)
	}
	phases, err := phase.ParseAll(d.Phases)
	if err != nil {
		return Skill{}, fmt.Errorf("skill %q: %w", d.Name, err)
	}
	s := Skill{
		Name:        d.Name,
		Description: d.Description,
		Effect:      effect,
		Phases:      phases,
	}
	if d.Requirement != nil {
		req, err := d.Requirement.Attribute()
		if err != nil {
			return Skill{}, fmt.Errorf("skill %q requirement: %w", d.Name, err)
		}
		s.Requirement = &req
	}
	if err := s.Validate(); err != nil {
		return Skill{}, err
	}
	return s, nil
}

// Package dungeon defines challenge boxes and the dungeon cards that group
// them by dungeon level.
package dungeon

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cory-johannsen/dicecrawl/internal/game/attribute"
)

// ChallengeBox is one box on an encounter card: dice totalling at least Total
// must be placed, or the Consequences are suffered.
type ChallengeBox struct {
	// DiceType restricts the dice that may be placed; nil accepts any die.
	DiceType *attribute.Type
	Total    int
	// SingleDie requires the total to come from one die.
	SingleDie bool
	// Priority boxes must be filled before any other.
	Priority     bool
	Consequences []attribute.Attribute
}

// String renders the box as a single card line, e.g.
// "*PRIORITY* 1 x Strength ≥ 4 OR 1 x Health".
func (b ChallengeBox) String() string {
	var sb strings.Builder
	if b.Priority {
		sb.WriteString("*PRIORITY* ")
	}
	if b.SingleDie {
		sb.WriteString("1 x ")
	} else {
		sb.WriteString("Many ")
	}
	if b.DiceType != nil {
		sb.WriteString(b.DiceType.String())
	} else {
		sb.WriteString("any")
	}
	fmt.Fprintf(&sb, " ≥ %d OR ", b.Total)
	if len(b.Consequences) == 0 {
		sb.WriteString("nothing")
	} else {
		sb.WriteString(attribute.Join(b.Consequences))
	}
	return sb.String()
}

// BoxDef is the content-file form of a ChallengeBox.
type BoxDef struct {
	Dice         string          `yaml:"dice"`
	Total        int             `yaml:"total"`
	Single       bool            `yaml:"single"`
	Priority     bool            `yaml:"priority"`
	Consequences []attribute.Def `yaml:"consequences"`
}

// Box converts d into a ChallengeBox.
//
// Postcondition: Returns a box with Total >= 1 and displayable consequences,
// or a non-nil error.
func (d BoxDef) Box() (ChallengeBox, error) {
	var errs []error
	b := ChallengeBox{Total: d.Total, SingleDie: d.Single, Priority: d.Priority}
	if d.Total < 1 {
		errs = append(errs, fmt.Errorf("total must be >= 1, got %d", d.Total))
	}
	if d.Dice != "" && d.Dice != "any" {
		t, err := attribute.ParseType(d.Dice, nil)
		if err != nil {
			errs = append(errs, err)
		} else {
			b.DiceType = &t
		}
	}
	consequences, err := attribute.FromDefs(d.Consequences)
	if err != nil {
		errs = append(errs, fmt.Errorf("consequences: %w", err))
	}
	b.Consequences = consequences
	if len(errs) > 0 {
		return ChallengeBox{}, fmt.Errorf("challenge box: %w", errors.Join(errs...))
	}
	return b, nil
}

// Boxes converts every def, stopping at the first invalid one.
func Boxes(defs []BoxDef) ([]ChallengeBox, error) {
	out := make([]ChallengeBox, 0, len(defs))
	for i, d := range defs {
		b, err := d.Box()
		if err != nil {
			return nil, fmt.Errorf("box %d: %w", i, err)
		}
		out = append(out, b)
	}
	return out, nil
}

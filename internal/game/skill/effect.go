// Package skill defines skill effects, skills, and the catalog of every skill
// the content tables can award.
package skill

import (
	"fmt"

	"github.com/cory-johannsen/dicecrawl/internal/game/attribute"
)

// Effect is what a skill or monster ability does. The set of implementations
// is closed; every switch over an Effect lists all of them.
type Effect interface {
	fmt.Stringer
	effect()
}

// Gain adds dice to the pool without rolling them.
type Gain struct {
	Attributes []attribute.Attribute
}

// Roll adds dice to the pool and rolls them.
type Roll struct {
	Attributes []attribute.Attribute
}

// Increase raises one die by Amount.
type Increase struct {
	Amount int
}

// Reroll rerolls dice matching Filter.
type Reroll struct {
	Filter attribute.Type
}

// Change sets a die of Type to Value.
type Change struct {
	Type  attribute.Type
	Value int
}

// Prevent cancels damage or time of Type.
type Prevent struct {
	Type attribute.Type
}

// Discard removes a die of Type from the pool.
type Discard struct {
	Type attribute.Type
}

// Heal restores Amount health.
type Heal struct {
	Amount int
}

// Skip jumps ahead to claiming loot after paying Cost.
type Skip struct {
	Cost attribute.Attribute
}

// Formula sets Target to Amount for every Per the hero holds.
type Formula struct {
	Target attribute.Type
	Amount int
	Per    attribute.Kind
}

// None is the absence of an effect.
type None struct{}

func (Gain) effect()     {}
func (Roll) effect()     {}
func (Increase) effect() {}
func (Reroll) effect()   {}
func (Change) effect()   {}
func (Prevent) effect()  {}
func (Discard) effect()  {}
func (Heal) effect()     {}
func (Skip) effect()     {}
func (Formula) effect()  {}
func (None) effect()     {}
func (Passive) effect()  {}

func (e Gain) String() string {
	return "Gain: " + attribute.Join(e.Attributes)
}

func (e Roll) String() string {
	return "Add to pool: " + attribute.Join(e.Attributes)
}

func (e Increase) String() string {
	return fmt.Sprintf("Increase one dice by %d", e.Amount)
}

func (e Reroll) String() string {
	switch e.Filter.Kind {
	case attribute.Default:
		return "Reroll one dice"
	case attribute.Value:
		return "Reroll all dice showing " + e.Filter.FaceList()
	default:
		return fmt.Sprintf("Reroll one %s dice", e.Filter)
	}
}

func (e Change) String() string {
	if e.Type.Kind == attribute.Default {
		return fmt.Sprintf("Set one dice to %d", e.Value)
	}
	return fmt.Sprintf("Set one %s dice to %d", e.Type, e.Value)
}

func (e Prevent) String() string {
	return "Prevent: " + e.Type.String()
}

func (e Discard) String() string {
	return fmt.Sprintf("Discard one %s dice", e.Type)
}

func (e Heal) String() string {
	return fmt.Sprintf("Heal %d x Health", e.Amount)
}

func (e Skip) String() string {
	return "Skip to Claim Loot, pay " + e.Cost.String()
}

func (e Formula) String() string {
	return fmt.Sprintf("%s = %d per %s", e.Target, e.Amount, e.Per)
}

func (None) String() string {
	return "None"
}

// Passive is a named monster ability with fixed rules text.
type Passive int

const (
	Survivor Passive = iota
	Ethereal
	Dodge
	Fade
	Swarm
	Undying
	Split
	Frost
	Flames
	Drain
)

var passiveNames = [...]string{
	Survivor: "Survivor",
	Ethereal: "Ethereal",
	Dodge:    "Dodge",
	Fade:     "Fade",
	Swarm:    "Swarm",
	Undying:  "Undying",
	Split:    "Split",
	Frost:    "Frost",
	Flames:   "Flames",
	Drain:    "Drain",
}

var passiveRules = [...]string{
	Survivor: "Unfilled priority boxes cost 1 x TIME each.",
	Ethereal: "Only MAGIC and HEROIC dice may fill boxes.",
	Dodge:    "Discard your highest AGILITY dice before placing.",
	Fade:     "Discard one dice of your choice after rolling.",
	Swarm:    "Take 1 x HEALTH for every unfilled box.",
	Undying:  "Unless every box is filled, take 1 extra x TIME.",
	Split:    "Each dice placed counts as one lower.",
	Frost:    "Your 6s count as 5s.",
	Flames:   "Take 1 x HEALTH before rolling.",
	Drain:    "Lose one HEROIC dice before rolling.",
}

// Passives returns every passive ability in declaration order.
func Passives() []Passive {
	return []Passive{Survivor, Ethereal, Dodge, Fade, Swarm, Undying, Split, Frost, Flames, Drain}
}

// Name returns the ability name.
func (p Passive) Name() string {
	if p < Survivor || p > Drain {
		return fmt.Sprintf("Passive(%d)", int(p))
	}
	return passiveNames[p]
}

// Rules returns the fixed rules text.
func (p Passive) Rules() string {
	if p < Survivor || p > Drain {
		return ""
	}
	return passiveRules[p]
}

func (p Passive) String() string {
	return p.Name() + ": " + p.Rules()
}

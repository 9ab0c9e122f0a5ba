package skill

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cory-johannsen/dicecrawl/internal/game/attribute"
	"github.com/cory-johannsen/dicecrawl/internal/game/phase"
)

// Skill is a named ability a hero can learn. Skills are unique by Name.
type Skill struct {
	Name        string
	Description string
	// Requirement is the die needed to activate the skill; nil means free.
	Requirement *attribute.Attribute
	Effect      Effect
	Phases      []phase.Phase
}

// RequirementText renders the activation cost for a card.
func (s Skill) RequirementText() string {
	if s.Requirement == nil {
		return "Free skill"
	}
	return s.Requirement.String()
}

// Validate checks the skill's invariants.
//
// Postcondition: Returns nil iff Name is non-empty, Effect is non-nil, at
// least one phase is listed, and the requirement (if any) is displayable.
func (s Skill) Validate() error {
	var errs []error
	if s.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if s.Effect == nil {
		errs = append(errs, errors.New("effect must not be nil"))
	}
	if len(s.Phases) == 0 {
		errs = append(errs, errors.New("at least one phase is required"))
	}
	if s.Requirement != nil {
		if err := s.Requirement.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("requirement: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("skill %q validation failed: %w", s.Name, errors.Join(errs...))
	}
	return nil
}

// fingerprint renders every displayed field so two definitions sharing a name
// can be compared.
func (s Skill) fingerprint() string {
	effect := "<nil>"
	if s.Effect != nil {
		effect = s.Effect.String()
	}
	return strings.Join([]string{s.Name, s.Description, s.RequirementText(), effect, phase.Join(s.Phases)}, "|")
}

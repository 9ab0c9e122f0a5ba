package hero

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/dicecrawl/internal/game/attribute"
	"github.com/cory-johannsen/dicecrawl/internal/game/phase"
	"github.com/cory-johannsen/dicecrawl/internal/game/skill"
)

// FeatDef is the content-file form of a HeroicFeat.
type FeatDef struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Phases      []string `yaml:"phases"`
}

// Def is the content-file form of a hero preset.
type Def struct {
	ID         string          `yaml:"id"`
	Name       string          `yaml:"name"`
	Attributes []attribute.Def `yaml:"attributes"`
	HeroicFeat FeatDef         `yaml:"heroic_feat"`
	Skills     []skill.Def     `yaml:"skills"`
	// Levels overrides StandardLevels when non-empty.
	Levels map[int]Level `yaml:"levels"`
}

// Preset is a validated hero archetype from which Hero instances are built.
type Preset struct {
	ID         string
	Name       string
	Attributes []attribute.Attribute
	HeroicFeat HeroicFeat
	Skills     []skill.Skill
	Levels     LevelTable
}

// Preset converts d into a validated Preset.
//
// Postcondition: Returns a Preset whose attributes are distinct quantity
// attributes and whose skills have distinct names, or a non-nil error.
func (d Def) Preset() (*Preset, error) {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if d.HeroicFeat.Name == "" {
		errs = append(errs, errors.New("heroic_feat.name must not be empty"))
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("hero %q validation failed: %w", d.ID, errors.Join(errs...))
	}

	attrs, err := attribute.FromDefs(d.Attributes)
	if err != nil {
		return nil, fmt.Errorf("hero %q: %w", d.ID, err)
	}
	for _, a := range attrs {
		if a.Quantity == nil {
			return nil, fmt.Errorf("hero %q: %s must have a quantity", d.ID, a.Type.Kind)
		}
	}
	if _, err := attribute.NewSet(attrs...); err != nil {
		return nil, fmt.Errorf("hero %q: %w", d.ID, err)
	}

	featPhases, err := phase.ParseAll(d.HeroicFeat.Phases)
	if err != nil {
		return nil, fmt.Errorf("hero %q heroic feat: %w", d.ID, err)
	}

	skills := make([]skill.Skill, 0, len(d.Skills))
	seen := make(map[string]bool, len(d.Skills))
	for _, sd := range d.Skills {
		s, err := sd.Skill()
		if err != nil {
			return nil, fmt.Errorf("hero %q: %w", d.ID, err)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("hero %q: skill %q: %w", d.ID, s.Name, ErrDuplicateSkill)
		}
		seen[s.Name] = true
		skills = append(skills, s)
	}

	levels := StandardLevels()
	if len(d.Levels) > 0 {
		if levels, err = NewLevelTable(d.Levels); err != nil {
			return nil, fmt.Errorf("hero %q: %w", d.ID, err)
		}
	}

	return &Preset{
		ID:         d.ID,
		Name:       d.Name,
		Attributes: attrs,
		HeroicFeat: HeroicFeat{
			Name:        d.HeroicFeat.Name,
			Description: d.HeroicFeat.Description,
			Phases:      featPhases,
		},
		Skills: skills,
		Levels: levels,
	}, nil
}

// LoadPresets reads every *.yaml file in dir of fsys and parses each as a hero preset.
//
// Precondition: dir must name a readable directory of fsys.
// Postcondition: Returns presets in file-name order (may be empty) or the first error.
func LoadPresets(fsys fs.FS, dir string) ([]*Preset, error) {
	paths, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("listing hero presets in %s: %w", dir, err)
	}
	presets := make([]*Preset, 0, len(paths))
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		var d Def
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("parsing hero file %s: %w", p, err)
		}
		preset, err := d.Preset()
		if err != nil {
			return nil, fmt.Errorf("invalid hero in %s: %w", p, err)
		}
		presets = append(presets, preset)
	}
	return presets, nil
}

// New builds a fresh level-1 Hero from p. The hero owns copies of the preset's
// attributes and skills; the level table is shared read-only.
//
// Precondition: p must be non-nil and its Levels must contain level 1.
// Postcondition: Returns a Hero at level 1 with potions and encounter bonus
// taken from level 1 of the table, or a non-nil error.
func New(p *Preset) (*Hero, error) {
	if p == nil {
		return nil, errors.New("hero preset must not be nil")
	}
	first, ok := p.Levels.Get(1)
	if !ok {
		return nil, fmt.Errorf("hero %q level 1: %w", p.ID, ErrAttributeNotFound)
	}
	attrs, err := attribute.NewSet(p.Attributes...)
	if err != nil {
		return nil, fmt.Errorf("hero %q: %w", p.ID, err)
	}
	h := &Hero{
		ID:             uuid.New(),
		Name:           p.Name,
		Attributes:     attrs.Clone(),
		HeroicFeat:     p.HeroicFeat,
		Skills:         make([]skill.Skill, 0, len(p.Skills)),
		Levels:         p.Levels,
		Level:          1,
		Potions:        first.Potions,
		EncounterBonus: first.EncounterBonus,
	}
	for _, s := range p.Skills {
		if err := h.AddSkill(s); err != nil {
			return nil, err
		}
	}
	return h, nil
}

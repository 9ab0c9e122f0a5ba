package dungeon

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"
)

// Floors is the number of dungeon levels on every dungeon card.
const Floors = 3

// Dungeon is a dungeon card: per-level peril and combat boxes added to every
// encounter on that level.
type Dungeon struct {
	ID         string
	Name       string
	Difficulty int
	Perils     map[int][]ChallengeBox
	Combats    map[int][]ChallengeBox
}

// LevelDef is the content-file form of one dungeon level.
type LevelDef struct {
	Level  int      `yaml:"level"`
	Peril  []BoxDef `yaml:"peril"`
	Combat []BoxDef `yaml:"combat"`
}

// Def is the content-file form of a Dungeon.
type Def struct {
	ID         string     `yaml:"id"`
	Name       string     `yaml:"name"`
	Difficulty int        `yaml:"difficulty"`
	Levels     []LevelDef `yaml:"levels"`
}

// Dungeon converts d into a validated Dungeon.
//
// Postcondition: Returns a Dungeon holding peril and combat boxes for every
// level 1..Floors exactly once, or a non-nil error.
func (d Def) Dungeon() (*Dungeon, error) {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if d.Difficulty < 1 {
		errs = append(errs, fmt.Errorf("difficulty must be >= 1, got %d", d.Difficulty))
	}
	out := &Dungeon{
		ID:         d.ID,
		Name:       d.Name,
		Difficulty: d.Difficulty,
		Perils:     make(map[int][]ChallengeBox, Floors),
		Combats:    make(map[int][]ChallengeBox, Floors),
	}
	for _, l := range d.Levels {
		if l.Level < 1 || l.Level > Floors {
			errs = append(errs, fmt.Errorf("level must be 1-%d, got %d", Floors, l.Level))
			continue
		}
		if _, dup := out.Perils[l.Level]; dup {
			errs = append(errs, fmt.Errorf("level %d declared twice", l.Level))
			continue
		}
		perils, err := Boxes(l.Peril)
		if err != nil {
			errs = append(errs, fmt.Errorf("level %d peril: %w", l.Level, err))
		}
		combats, err := Boxes(l.Combat)
		if err != nil {
			errs = append(errs, fmt.Errorf("level %d combat: %w", l.Level, err))
		}
		out.Perils[l.Level] = perils
		out.Combats[l.Level] = combats
	}
	for n := 1; n <= Floors; n++ {
		if _, ok := out.Perils[n]; !ok {
			errs = append(errs, fmt.Errorf("level %d missing", n))
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("dungeon %q validation failed: %w", d.ID, errors.Join(errs...))
	}
	return out, nil
}

// LoadDungeons reads every *.yaml file in dir of fsys and parses each as a Dungeon.
//
// Precondition: dir must name a readable directory of fsys.
// Postcondition: Returns dungeons in file-name order (may be empty) or the first error.
func LoadDungeons(fsys fs.FS, dir string) ([]*Dungeon, error) {
	paths, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("listing dungeons in %s: %w", dir, err)
	}
	dungeons := make([]*Dungeon, 0, len(paths))
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		var d Def
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("parsing dungeon file %s: %w", p, err)
		}
		dg, err := d.Dungeon()
		if err != nil {
			return nil, fmt.Errorf("invalid dungeon in %s: %w", p, err)
		}
		dungeons = append(dungeons, dg)
	}
	return dungeons, nil
}

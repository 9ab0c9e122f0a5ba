package encounter

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"
)

func decodeFile(fsys fs.FS, p string, out any) error {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return fmt.Errorf("reading %s: %w", p, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("parsing %s: %w", p, err)
	}
	return nil
}

// LoadCombats reads every *.yaml file in dir of fsys as a monster and expands
// it into its combat cards.
//
// Precondition: dir must name a readable directory of fsys.
// Postcondition: Returns combats in file-name then option order, or the first error.
func LoadCombats(fsys fs.FS, dir string) ([]*Combat, error) {
	paths, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("listing combats in %s: %w", dir, err)
	}
	var combats []*Combat
	for _, p := range paths {
		var d CombatDef
		if err := decodeFile(fsys, p, &d); err != nil {
			return nil, err
		}
		cs, err := d.Combats()
		if err != nil {
			return nil, fmt.Errorf("invalid combat in %s: %w", p, err)
		}
		combats = append(combats, cs...)
	}
	return combats, nil
}

// LoadPerils reads every *.yaml file in dir of fsys and expands each into its
// peril cards.
//
// Precondition: dir must name a readable directory of fsys.
// Postcondition: Returns perils in file-name then option order, or the first error.
func LoadPerils(fsys fs.FS, dir string) ([]*Peril, error) {
	paths, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("listing perils in %s: %w", dir, err)
	}
	var perils []*Peril
	for _, p := range paths {
		var d PerilDef
		if err := decodeFile(fsys, p, &d); err != nil {
			return nil, err
		}
		ps, err := d.Perils()
		if err != nil {
			return nil, fmt.Errorf("invalid peril in %s: %w", p, err)
		}
		perils = append(perils, ps...)
	}
	return perils, nil
}

package attribute

import "fmt"

// Def is the content-file form of an Attribute.
//
// Type is a kind name ("strength", "heroic", "any", ...). Faces is only read
// when Type is "value".
type Def struct {
	Type     string `yaml:"type"`
	Faces    []int  `yaml:"faces"`
	Quantity *int   `yaml:"quantity"`
	Value    *int   `yaml:"value"`
}

// ParseType resolves a kind name and optional face list into a Type.
// An empty name or "any" resolves to Default.
//
// Postcondition: Returns a Type, or a non-nil error for unknown names or a
// value type without faces.
func ParseType(name string, faces []int) (Type, error) {
	if name == "" || name == "any" {
		return Of(Default), nil
	}
	k, err := ParseKind(name)
	if err != nil {
		return Type{}, err
	}
	if k != Value {
		if len(faces) > 0 {
			return Type{}, fmt.Errorf("faces given for non-value kind %s", k)
		}
		return Of(k), nil
	}
	if len(faces) == 0 {
		return Type{}, fmt.Errorf("value kind requires faces")
	}
	for _, f := range faces {
		if f < 1 || f > 6 {
			return Type{}, fmt.Errorf("face %d out of range 1-6", f)
		}
	}
	return Faces(faces...), nil
}

// Attribute converts d into a validated Attribute.
//
// Postcondition: Returns an Attribute satisfying Validate, or a non-nil error.
func (d Def) Attribute() (Attribute, error) {
	t, err := ParseType(d.Type, d.Faces)
	if err != nil {
		return Attribute{}, err
	}
	a := Attribute{Type: t, Quantity: d.Quantity, Value: d.Value}
	if err := a.Validate(); err != nil {
		return Attribute{}, err
	}
	return a, nil
}

// FromDefs converts every def, stopping at the first invalid one.
func FromDefs(defs []Def) ([]Attribute, error) {
	out := make([]Attribute, 0, len(defs))
	for i, d := range defs {
		a, err := d.Attribute()
		if err != nil {
			return nil, fmt.Errorf("attribute %d: %w", i, err)
		}
		out = append(out, a)
	}
	return out, nil
}

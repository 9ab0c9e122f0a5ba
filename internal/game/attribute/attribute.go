// Package attribute defines the countable game resources and dice colors that
// heroes, skills, and challenge boxes are expressed in.
package attribute

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Kind enumerates the resource kinds. Declaration order is the display order.
type Kind int

const (
	Strength Kind = iota
	Agility
	Magic
	Health
	Time
	Door
	Potion
	Heroic
	Value
	Default
)

var kindNames = [...]string{
	Strength: "Strength",
	Agility:  "Agility",
	Magic:    "Magic",
	Health:   "Health",
	Time:     "Time",
	Door:     "Door",
	Potion:   "Potion",
	Heroic:   "Heroic",
	Value:    "Value",
	Default:  "Default",
}

// String returns the capitalised kind name.
func (k Kind) String() string {
	if k < Strength || k > Default {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds returns every Kind in display order.
func Kinds() []Kind {
	return []Kind{Strength, Agility, Magic, Health, Time, Door, Potion, Heroic, Value, Default}
}

// ParseKind resolves a content-file kind name such as "strength" or "Heroic".
//
// Postcondition: Returns the matching Kind, or a non-nil error for unknown names.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(s, kindNames[k]) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown attribute kind %q", s)
}

// Type is an attribute type: a Kind plus, for the Value kind, the die faces it
// matches ("dice showing one of these values").
type Type struct {
	Kind  Kind
	Faces []int
}

// Of returns the Type for a plain kind.
func Of(k Kind) Type {
	return Type{Kind: k}
}

// Faces returns a Value type matching dice that show any of the given faces.
func Faces(faces ...int) Type {
	return Type{Kind: Value, Faces: faces}
}

// Compare orders types by kind rank only.
func (t Type) Compare(o Type) int {
	return cmp.Compare(t.Kind, o.Kind)
}

// Equal reports whether two types are the same kind and, for Value, match the
// same faces.
func (t Type) Equal(o Type) bool {
	if t.Kind != o.Kind {
		return false
	}
	if t.Kind == Value {
		return slices.Equal(t.Faces, o.Faces)
	}
	return true
}

// String renders the type for cards: kind name, "any" for Default, or the
// face list for Value.
func (t Type) String() string {
	switch t.Kind {
	case Default:
		return "any"
	case Value:
		return "value " + t.FaceList()
	default:
		return t.Kind.String()
	}
}

// FaceList renders the matched faces as "1/2".
func (t Type) FaceList() string {
	faces := make([]string, len(t.Faces))
	for i, f := range t.Faces {
		faces[i] = strconv.Itoa(f)
	}
	return strings.Join(faces, "/")
}

// ErrDegenerateAttribute is returned when an Attribute has neither a quantity
// nor a face value and so cannot be displayed.
var ErrDegenerateAttribute = errors.New("attribute has neither quantity nor value")

// Attribute is either "N of this resource", "a die of this type showing V",
// or "N dice of this type showing V".
type Attribute struct {
	Type     Type
	Quantity *int
	Value    *int
}

// Count returns an attribute holding n of kind k.
func Count(k Kind, n int) Attribute {
	return Attribute{Type: Of(k), Quantity: &n}
}

// Face returns an attribute for a single die of kind k showing v.
func Face(k Kind, v int) Attribute {
	return Attribute{Type: Of(k), Value: &v}
}

// Dice returns an attribute for n dice of kind k each showing v.
func Dice(k Kind, n, v int) Attribute {
	return Attribute{Type: Of(k), Quantity: &n, Value: &v}
}

// QuantityOrZero returns the quantity, treating an unset quantity as 0.
func (a Attribute) QuantityOrZero() int {
	if a.Quantity == nil {
		return 0
	}
	return *a.Quantity
}

// WithQuantity returns a copy of a carrying quantity n. The face value, if
// any, is preserved.
func (a Attribute) WithQuantity(n int) Attribute {
	out := a.clone()
	out.Quantity = &n
	return out
}

func (a Attribute) clone() Attribute {
	out := Attribute{Type: Type{Kind: a.Type.Kind, Faces: slices.Clone(a.Type.Faces)}}
	if a.Quantity != nil {
		q := *a.Quantity
		out.Quantity = &q
	}
	if a.Value != nil {
		v := *a.Value
		out.Value = &v
	}
	return out
}

// Validate checks that a is displayable and non-negative.
//
// Postcondition: Returns nil iff at least one of Quantity/Value is set, both are
// non-negative, and a Value type carries at least one face.
func (a Attribute) Validate() error {
	var errs []error
	if a.Quantity == nil && a.Value == nil {
		errs = append(errs, ErrDegenerateAttribute)
	}
	if a.Quantity != nil && *a.Quantity < 0 {
		errs = append(errs, fmt.Errorf("quantity must be >= 0, got %d", *a.Quantity))
	}
	if a.Value != nil && (*a.Value < 1 || *a.Value > 6) {
		errs = append(errs, fmt.Errorf("value must be a die face 1-6, got %d", *a.Value))
	}
	if a.Type.Kind == Value && len(a.Type.Faces) == 0 {
		errs = append(errs, errors.New("value type must list at least one face"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid %s attribute: %w", a.Type.Kind, errors.Join(errs...))
	}
	return nil
}

// Format renders a for display.
//
// Postcondition: Returns ErrDegenerateAttribute when neither quantity nor value is set.
func (a Attribute) Format() (string, error) {
	switch {
	case a.Quantity != nil && a.Value != nil:
		return fmt.Sprintf("%d x %s value %d", *a.Quantity, a.Type, *a.Value), nil
	case a.Quantity != nil:
		return fmt.Sprintf("%d x %s", *a.Quantity, a.Type), nil
	case a.Value != nil:
		return fmt.Sprintf("%s value %d", a.Type, *a.Value), nil
	default:
		return "", fmt.Errorf("formatting %s: %w", a.Type.Kind, ErrDegenerateAttribute)
	}
}

// String implements fmt.Stringer. Degenerate attributes render as "<Kind ?>".
func (a Attribute) String() string {
	s, err := a.Format()
	if err != nil {
		return "<" + a.Type.Kind.String() + " ?>"
	}
	return s
}

// Join renders a list of attributes separated by ", ".
func Join(attrs []Attribute) string {
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = a.String()
	}
	return strings.Join(parts, ", ")
}

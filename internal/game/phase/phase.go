// Package phase defines the encounter phases in which skills and heroic feats
// may be used.
package phase

import (
	"fmt"
	"strings"
)

// Phase is one of the three encounter phases.
type Phase int

const (
	Combat Phase = iota
	Peril
	Boss
)

// All returns every phase in card order.
func All() []Phase {
	return []Phase{Combat, Peril, Boss}
}

// String returns the capitalised phase name.
func (p Phase) String() string {
	switch p {
	case Combat:
		return "Combat"
	case Peril:
		return "Peril"
	case Boss:
		return "Boss"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Parse resolves a content-file phase name, case-insensitively.
func Parse(s string) (Phase, error) {
	for _, p := range All() {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown encounter phase %q", s)
}

// ParseAll resolves every name in names.
//
// Postcondition: Returns phases in input order, or the first parse error.
func ParseAll(names []string) ([]Phase, error) {
	out := make([]Phase, 0, len(names))
	for _, n := range names {
		p, err := Parse(n)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Join renders phases separated by ", ".
func Join(phases []Phase) string {
	parts := make([]string, len(phases))
	for i, p := range phases {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}

package encounter

import "fmt"

// Registry holds combat and peril cards indexed by ID, remembering load order.
type Registry struct {
	combats     map[string]*Combat
	perils      map[string]*Peril
	combatOrder []string
	perilOrder  []string
}

// NewRegistry returns an empty Registry.
//
// Postcondition: all internal maps are initialised.
func NewRegistry() *Registry {
	return &Registry{
		combats: make(map[string]*Combat),
		perils:  make(map[string]*Peril),
	}
}

// RegisterCombat adds c to the registry.
//
// Precondition: c must not be nil.
// Postcondition: Combat(c.ID) returns (c, true); returns error if c.ID already registered.
func (r *Registry) RegisterCombat(c *Combat) error {
	if _, exists := r.combats[c.ID]; exists {
		return fmt.Errorf("encounter: Registry.RegisterCombat: combat ID %q already registered", c.ID)
	}
	r.combats[c.ID] = c
	r.combatOrder = append(r.combatOrder, c.ID)
	return nil
}

// RegisterPeril adds p to the registry.
//
// Precondition: p must not be nil.
// Postcondition: Peril(p.ID) returns (p, true); returns error if p.ID already registered.
func (r *Registry) RegisterPeril(p *Peril) error {
	if _, exists := r.perils[p.ID]; exists {
		return fmt.Errorf("encounter: Registry.RegisterPeril: peril ID %q already registered", p.ID)
	}
	r.perils[p.ID] = p
	r.perilOrder = append(r.perilOrder, p.ID)
	return nil
}

// Combat returns the combat card for id.
func (r *Registry) Combat(id string) (*Combat, bool) {
	c, ok := r.combats[id]
	return c, ok
}

// Peril returns the peril card for id.
func (r *Registry) Peril(id string) (*Peril, bool) {
	p, ok := r.perils[id]
	return p, ok
}

// Combats returns every combat card in registration order.
func (r *Registry) Combats() []*Combat {
	out := make([]*Combat, 0, len(r.combatOrder))
	for _, id := range r.combatOrder {
		out = append(out, r.combats[id])
	}
	return out
}

// Perils returns every peril card in registration order.
func (r *Registry) Perils() []*Peril {
	out := make([]*Peril, 0, len(r.perilOrder))
	for _, id := range r.perilOrder {
		out = append(out, r.perils[id])
	}
	return out
}

package skill

// Catalog indexes skills by name. The first definition of a name wins.
type Catalog struct {
	skills map[string]Skill
	order  []string
}

// NewCatalog returns an empty Catalog.
//
// Postcondition: Returns a non-nil *Catalog ready to accept skills.
func NewCatalog() *Catalog {
	return &Catalog{skills: make(map[string]Skill)}
}

// Add registers s unless its name is already present.
//
// Postcondition: Returns true iff s was new, or was already present with an
// identical definition. A false result means a differing definition of the
// same name was kept instead of s.
func (c *Catalog) Add(s Skill) bool {
	prev, exists := c.skills[s.Name]
	if !exists {
		c.skills[s.Name] = s
		c.order = append(c.order, s.Name)
		return true
	}
	return prev.fingerprint() == s.fingerprint()
}

// Get returns the skill registered under name.
func (c *Catalog) Get(name string) (Skill, bool) {
	s, ok := c.skills[name]
	return s, ok
}

// All returns every skill in first-registration order.
func (c *Catalog) All() []Skill {
	out := make([]Skill, 0, len(c.order))
	for _, n := range c.order {
		out = append(out, c.skills[n])
	}
	return out
}

// Len returns the number of distinct skill names.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Package card lays heroes, dungeons, and encounters out as fixed-width
// bordered text cards.
package card

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cory-johannsen/dicecrawl/internal/frontend/ansi"
	"github.com/cory-johannsen/dicecrawl/internal/game/attribute"
	"github.com/cory-johannsen/dicecrawl/internal/game/dungeon"
	"github.com/cory-johannsen/dicecrawl/internal/game/encounter"
	"github.com/cory-johannsen/dicecrawl/internal/game/hero"
	"github.com/cory-johannsen/dicecrawl/internal/game/phase"
	"github.com/cory-johannsen/dicecrawl/internal/game/skill"
)

// DefaultWidth is the card body width used by the printed game.
const DefaultWidth = 50

// Renderer renders cards of a fixed body width, optionally with ANSI styling.
type Renderer struct {
	width int
	color bool
}

// NewRenderer returns a Renderer for cards width columns wide.
//
// Precondition: width must be >= 1.
// Postcondition: Returns a non-nil Renderer.
func NewRenderer(width int, color bool) *Renderer {
	return &Renderer{width: width, color: color}
}

// Width returns the body width in columns.
func (r *Renderer) Width() int {
	return r.width
}

// page accumulates the lines of one card.
type page struct {
	r  *Renderer
	sb strings.Builder
}

func (r *Renderer) newPage() *page {
	p := &page{r: r}
	p.border()
	return p
}

func (p *page) border() {
	p.sb.WriteString("|")
	p.sb.WriteString(strings.Repeat("-", p.r.width+2))
	p.sb.WriteString("|\n")
}

func (p *page) emit(line string) {
	p.sb.WriteString("| ")
	p.sb.WriteString(ansi.PadRight(line, p.r.width))
	p.sb.WriteString(" |\n")
}

// text wraps s to the card width and writes every resulting line in color.
func (p *page) text(color, s string) {
	for _, line := range Wrap(s, p.r.width) {
		if p.r.color && color != "" && line != "" {
			line = ansi.Colorize(color, line)
		}
		p.emit(line)
	}
}

func (p *page) line(s string)    { p.text("", s) }
func (p *page) heading(s string) { p.text(ansi.Cyan, s) }
func (p *page) blank()           { p.emit("") }

func (p *page) title(name string) {
	p.text(ansi.Bold+ansi.BrightYellow, cases.Upper(language.English).String(name))
}

func (p *page) String() string {
	p.border()
	return p.sb.String()
}

// Wrap splits s into lines no wider than width, breaking at spaces. An
// embedded "\n" always starts a new line. Words wider than width are split.
//
// Postcondition: Returns at least one line; every line has Width <= width.
func Wrap(s string, width int) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, wrapParagraph(para, width)...)
	}
	return lines
}

func wrapParagraph(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var (
		lines []string
		cur   string
	)
	for _, w := range words {
		for ansi.Width(w) > width {
			if cur != "" {
				lines = append(lines, cur)
				cur = ""
			}
			head, tail := splitAt(w, width)
			lines = append(lines, head)
			w = tail
		}
		switch {
		case w == "":
		case cur == "":
			cur = w
		case ansi.Width(cur)+1+ansi.Width(w) <= width:
			cur += " " + w
		default:
			lines = append(lines, cur)
			cur = w
		}
	}
	if cur != "" || len(lines) == 0 {
		lines = append(lines, cur)
	}
	return lines
}

// splitAt cuts w after n columns.
func splitAt(w string, n int) (string, string) {
	cols := 0
	for i, r := range w {
		rw := ansi.Width(string(r))
		if cols+rw > n && i > 0 {
			return w[:i], w[i:]
		}
		cols += rw
	}
	return w, ""
}

// Hero renders a hero's card: name, attributes, progression, heroic feat,
// and learned skills.
//
// Precondition: h must be non-nil.
func (r *Renderer) Hero(h *hero.Hero) string {
	p := r.newPage()
	p.title(h.Name)
	for _, a := range h.Attributes.All() {
		p.line(a.String())
	}
	p.line(fmt.Sprintf("Level %d, Potions %d, Encounter Bonus %d", h.Level, h.Potions, h.EncounterBonus))
	p.blank()

	p.heading("Heroic Feat: " + h.HeroicFeat.Name)
	p.line(h.HeroicFeat.Description)
	p.line(PhaseAvailability(h.HeroicFeat.Phases))
	p.blank()

	for _, s := range h.Skills {
		p.heading("Skill: " + s.Name)
		p.skillBody(s)
	}
	return p.String()
}

func (p *page) skillBody(s skill.Skill) {
	if s.Description != "" {
		p.line(s.Description)
	}
	p.line("Requirements: " + s.RequirementText())
	p.line(effectText(s.Effect))
	p.line(phase.Join(s.Phases))
}

func effectText(e skill.Effect) string {
	if e == nil {
		return skill.None{}.String()
	}
	return e.String()
}

// PhaseAvailability lists every phase, prefixing those not in phases with
// "Not ", e.g. "Combat, Not Peril, Boss".
func PhaseAvailability(phases []phase.Phase) string {
	parts := make([]string, 0, len(phase.All()))
	for _, ph := range phase.All() {
		if containsPhase(phases, ph) {
			parts = append(parts, ph.String())
		} else {
			parts = append(parts, "Not "+ph.String())
		}
	}
	return strings.Join(parts, ", ")
}

func containsPhase(phases []phase.Phase, want phase.Phase) bool {
	for _, ph := range phases {
		if ph == want {
			return true
		}
	}
	return false
}

// Dungeon renders a dungeon card with the peril and combat boxes of every level.
//
// Precondition: d must be non-nil.
func (r *Renderer) Dungeon(d *dungeon.Dungeon) string {
	p := r.newPage()
	p.title(d.Name)
	p.line(fmt.Sprintf("Difficulty: %d", d.Difficulty))
	p.blank()
	for lvl := 1; lvl <= dungeon.Floors; lvl++ {
		p.heading(fmt.Sprintf("Level %d", lvl))
		p.line("Peril:")
		p.boxes(d.Perils[lvl])
		p.line("Combat:")
		p.boxes(d.Combats[lvl])
		if lvl < dungeon.Floors {
			p.blank()
		}
	}
	return p.String()
}

func (p *page) boxes(boxes []dungeon.ChallengeBox) {
	for _, b := range boxes {
		p.line(b.String())
	}
}

// Combat renders one side of a monster card.
//
// Precondition: c must be non-nil.
func (r *Renderer) Combat(c *encounter.Combat) string {
	p := r.newPage()
	p.title(c.Name)
	p.line(fmt.Sprintf("Option %d", c.Option))
	p.line("Special Ability: " + effectText(c.SpecialAbility))
	p.blank()
	p.heading("Challenge:")
	p.boxes(c.Boxes)
	p.blank()
	p.reward(c.Reward)
	return p.String()
}

// Peril renders one side of a peril card.
//
// Precondition: pr must be non-nil.
func (r *Renderer) Peril(pr *encounter.Peril) string {
	p := r.newPage()
	p.title(pr.Name)
	p.line(fmt.Sprintf("Option %d", pr.Option))
	p.blank()
	p.choice("Choice 1", pr.First)
	p.blank()
	p.choice("Choice 2", pr.Second)
	p.blank()
	p.reward(pr.Reward)
	return p.String()
}

func (p *page) choice(label string, c encounter.Choice) {
	if c.TimeCost != nil {
		label = fmt.Sprintf("%s (pay %s):", label, attribute.Count(attribute.Time, *c.TimeCost))
	} else {
		label += ":"
	}
	p.heading(label)
	p.boxes(c.Boxes)
}

func (p *page) reward(rw encounter.Reward) {
	p.heading("Reward:")
	p.line(fmt.Sprintf("XP: %d", rw.XP))
	if len(rw.Items) == 0 {
		p.line("Items: none")
	} else {
		p.line("Items: " + attribute.Join(rw.Items))
	}
	if rw.Skill.Name != "" {
		p.line("Skill: " + rw.Skill.Name)
		p.skillBody(rw.Skill)
	}
}

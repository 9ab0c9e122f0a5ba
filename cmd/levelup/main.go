// Package main provides the levelup binary, which replays a hero progression
// session: adjust an attribute, learn a skill, and advance until the level
// table runs out, printing the hero card along the way.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/cory-johannsen/dicecrawl/internal/catalog"
	"github.com/cory-johannsen/dicecrawl/internal/config"
	"github.com/cory-johannsen/dicecrawl/internal/frontend/card"
	"github.com/cory-johannsen/dicecrawl/internal/game/attribute"
	"github.com/cory-johannsen/dicecrawl/internal/game/hero"
	"github.com/cory-johannsen/dicecrawl/internal/game/session"
	"github.com/cory-johannsen/dicecrawl/internal/observability"
)

// plan is one scripted session.
type plan struct {
	heroID string
	kind   attribute.Kind
	delta  int
	// learn names a catalog skill; empty picks the first one the hero lacks.
	learn string
}

func main() {
	configPath := flag.String("config", "", "path to configuration file; empty = built-in defaults")
	contentDir := flag.String("content", "", "content directory; overrides content.dir")
	heroID := flag.String("hero", "mage", "hero preset ID")
	adjust := flag.String("adjust", "strength", "attribute kind to adjust")
	delta := flag.Int("delta", 1, "signed amount to add to the adjusted attribute")
	learn := flag.String("learn", "", "name of the skill to learn; empty = first unknown catalog skill")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *contentDir != "" {
		cfg.Content.Dir = *contentDir
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	kind, err := attribute.ParseKind(*adjust)
	if err != nil {
		logger.Fatal("parsing -adjust", zap.Error(err))
	}

	bundle, err := catalog.Load(context.Background(), catalog.Source(cfg.Content.Dir), logger)
	if err != nil {
		logger.Fatal("loading content", zap.Error(err))
	}

	p := plan{heroID: *heroID, kind: kind, delta: *delta, learn: *learn}
	r := card.NewRenderer(cfg.Cards.Width, cfg.Cards.Color)
	if err := run(os.Stdout, bundle, r, session.NewManager(logger), p); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default()
	}
	return config.Load(path)
}

// run executes p against a new session. Rejected mutations are reported to w
// and do not abort the session; only setup failures are returned.
func run(w io.Writer, b *catalog.Bundle, r *card.Renderer, m *session.Manager, p plan) error {
	preset, ok := b.Hero(p.heroID)
	if !ok {
		return fmt.Errorf("unknown hero %q", p.heroID)
	}
	sess, err := m.Start(preset)
	if err != nil {
		return err
	}
	defer func() { _ = m.End(sess.ID()) }()

	printCard := func() {
		sess.View(func(h *hero.Hero) { fmt.Fprint(w, r.Hero(h)) })
	}
	printCard()

	if q, err := sess.AdjustAttribute(p.kind, p.delta); err != nil {
		fmt.Fprintf(w, "Error changing attribute quantity: %v\n", err)
	} else {
		fmt.Fprintf(w, "%s is now %d\n", p.kind, q)
	}

	name := p.learn
	if name == "" {
		name = firstUnknownSkill(b, sess)
	}
	if sk, ok := b.Skills().Get(name); ok {
		if err := sess.LearnSkill(sk); err != nil {
			fmt.Fprintf(w, "Error learning skill: %v\n", err)
		} else {
			fmt.Fprintf(w, "Learned %s\n", sk.Name)
		}
	} else if name != "" {
		fmt.Fprintf(w, "Error learning skill: no skill named %q\n", name)
	}
	printCard()

	var level int
	sess.View(func(h *hero.Hero) { level = h.Level })
	fmt.Fprintf(w, "Current level: %d\n", level)
	for {
		level, err = sess.AdvanceLevel()
		if errors.Is(err, hero.ErrLevelTooHigh) {
			fmt.Fprintf(w, "Cannot advance further. Error: %v\n", err)
			break
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Current level: %d\n", level)
	}

	printCard()
	return nil
}

func firstUnknownSkill(b *catalog.Bundle, sess *session.Session) string {
	var name string
	sess.View(func(h *hero.Hero) {
		for _, sk := range b.Skills().All() {
			if !h.HasSkill(sk.Name) {
				name = sk.Name
				return
			}
		}
	})
	return name
}

// Package main provides the cards binary, which prints the content tables as
// bordered text cards.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/dicecrawl/internal/catalog"
	"github.com/cory-johannsen/dicecrawl/internal/config"
	"github.com/cory-johannsen/dicecrawl/internal/frontend/card"
	"github.com/cory-johannsen/dicecrawl/internal/game/hero"
	"github.com/cory-johannsen/dicecrawl/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file; empty = built-in defaults")
	contentDir := flag.String("content", "", "content directory; overrides content.dir")
	show := flag.String("show", "all", "cards to print: heroes, dungeons, combats, perils, rewards, all")
	id := flag.String("id", "", "print only the card with this ID")
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

	bundle, err := catalog.Load(context.Background(), catalog.Source(cfg.Content.Dir), logger)
	if err != nil {
		logger.Fatal("loading content", zap.Error(err))
	}

	r := card.NewRenderer(cfg.Cards.Width, cfg.Cards.Color)
	n, err := printCards(os.Stdout, bundle, r, *show, *id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("cards printed", zap.String("show", *show), zap.Int("count", n))
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default()
	}
	return config.Load(path)
}

// printCards writes the selected cards and returns how many were written.
func printCards(w io.StringWriter, b *catalog.Bundle, r *card.Renderer, show, id string) (int, error) {
	sections := []string{show}
	if show == "all" {
		sections = []string{"heroes", "dungeons", "combats", "perils"}
	}
	n := 0
	emit := func(cardID, text string) error {
		if id != "" && id != cardID {
			return nil
		}
		n++
		_, err := w.WriteString(text + "\n")
		return err
	}
	for _, s := range sections {
		switch s {
		case "heroes":
			for _, p := range b.Heroes() {
				h, err := hero.New(p)
				if err != nil {
					return n, err
				}
				if err := emit(p.ID, r.Hero(h)); err != nil {
					return n, err
				}
			}
		case "dungeons":
			for _, d := range b.Dungeons() {
				if err := emit(d.ID, r.Dungeon(d)); err != nil {
					return n, err
				}
			}
		case "combats":
			for _, c := range b.Encounters().Combats() {
				if err := emit(c.ID, r.Combat(c)); err != nil {
					return n, err
				}
			}
		case "perils":
			for _, p := range b.Encounters().Perils() {
				if err := emit(p.ID, r.Peril(p)); err != nil {
					return n, err
				}
			}
		case "rewards":
			var sb strings.Builder
			for _, p := range b.Encounters().Perils() {
				fmt.Fprintf(&sb, "%s: %s\n", p.Name, p.Reward.Skill.Name)
			}
			for _, c := range b.Encounters().Combats() {
				fmt.Fprintf(&sb, "%s: %s\n", c.Name, c.SpecialAbility)
			}
			if err := emit("", sb.String()); err != nil {
				return n, err
			}
		default:
			return n, fmt.Errorf("unknown -show value %q (supported: heroes, dungeons, combats, perils, rewards, all)", s)
		}
	}
	return n, nil
}

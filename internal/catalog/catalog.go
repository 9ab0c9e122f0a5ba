// Package catalog loads every content table into one indexed Bundle.
package catalog

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cory-johannsen/dicecrawl/content"
	"github.com/cory-johannsen/dicecrawl/internal/game/dungeon"
	"github.com/cory-johannsen/dicecrawl/internal/game/encounter"
	"github.com/cory-johannsen/dicecrawl/internal/game/hero"
	"github.com/cory-johannsen/dicecrawl/internal/game/skill"
)

// Bundle is the loaded, validated, read-only content of the game.
type Bundle struct {
	heroes     []*hero.Preset
	heroByID   map[string]*hero.Preset
	dungeons   []*dungeon.Dungeon
	dungeonIDs map[string]*dungeon.Dungeon
	encounters *encounter.Registry
	skills     *skill.Catalog
	// conflicts lists skill names defined more than once with differing text.
	conflicts []string
}

// Source returns the embedded tables when dir is empty, otherwise the
// directory tree rooted at dir.
func Source(dir string) fs.FS {
	if dir == "" {
		return content.FS()
	}
	return os.DirFS(dir)
}

// Load reads the hero, dungeon, combat, and peril tables from fsys
// concurrently and indexes them.
//
// Precondition: fsys must contain the heroes, dungeons, combats, and perils directories.
// Postcondition: Returns a fully indexed Bundle, or the first load or index error.
func Load(ctx context.Context, fsys fs.FS, logger *zap.Logger) (*Bundle, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	start := time.Now()

	var (
		heroes   []*hero.Preset
		dungeons []*dungeon.Dungeon
		combats  []*encounter.Combat
		perils   []*encounter.Peril
	)
	var g errgroup.Group
	g.Go(func() (err error) {
		heroes, err = hero.LoadPresets(fsys, content.HeroesDir)
		return err
	})
	g.Go(func() (err error) {
		dungeons, err = dungeon.LoadDungeons(fsys, content.DungeonsDir)
		return err
	})
	g.Go(func() (err error) {
		combats, err = encounter.LoadCombats(fsys, content.CombatsDir)
		return err
	})
	g.Go(func() (err error) {
		perils, err = encounter.LoadPerils(fsys, content.PerilsDir)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}

	b := &Bundle{
		heroes:     heroes,
		heroByID:   make(map[string]*hero.Preset, len(heroes)),
		dungeons:   dungeons,
		dungeonIDs: make(map[string]*dungeon.Dungeon, len(dungeons)),
		encounters: encounter.NewRegistry(),
		skills:     skill.NewCatalog(),
	}
	for _, h := range heroes {
		if _, dup := b.heroByID[h.ID]; dup {
			return nil, fmt.Errorf("hero ID %q defined twice", h.ID)
		}
		b.heroByID[h.ID] = h
		for _, s := range h.Skills {
			b.addSkill(s, logger)
		}
	}
	for _, d := range dungeons {
		if _, dup := b.dungeonIDs[d.ID]; dup {
			return nil, fmt.Errorf("dungeon ID %q defined twice", d.ID)
		}
		b.dungeonIDs[d.ID] = d
	}
	for _, c := range combats {
		if err := b.encounters.RegisterCombat(c); err != nil {
			return nil, err
		}
		b.addSkill(c.Reward.Skill, logger)
	}
	for _, p := range perils {
		if err := b.encounters.RegisterPeril(p); err != nil {
			return nil, err
		}
		b.addSkill(p.Reward.Skill, logger)
	}

	logger.Info("content loaded",
		zap.Int("heroes", len(heroes)),
		zap.Int("dungeons", len(dungeons)),
		zap.Int("combats", len(combats)),
		zap.Int("perils", len(perils)),
		zap.Int("skills", b.skills.Len()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return b, nil
}

func (b *Bundle) addSkill(s skill.Skill, logger *zap.Logger) {
	if b.skills.Add(s) {
		return
	}
	b.conflicts = append(b.conflicts, s.Name)
	kept, _ := b.skills.Get(s.Name)
	logger.Warn("conflicting skill definitions, keeping first",
		zap.String("skill", s.Name),
		zap.String("kept_description", kept.Description),
		zap.String("dropped_description", s.Description),
	)
}

// Heroes returns every hero preset in file-name order.
func (b *Bundle) Heroes() []*hero.Preset {
	return b.heroes
}

// Hero returns the preset with the given ID.
func (b *Bundle) Hero(id string) (*hero.Preset, bool) {
	h, ok := b.heroByID[id]
	return h, ok
}

// Dungeons returns every dungeon in file-name order.
func (b *Bundle) Dungeons() []*dungeon.Dungeon {
	return b.dungeons
}

// Dungeon returns the dungeon with the given ID.
func (b *Bundle) Dungeon(id string) (*dungeon.Dungeon, bool) {
	d, ok := b.dungeonIDs[id]
	return d, ok
}

// Encounters returns the combat and peril registry.
func (b *Bundle) Encounters() *encounter.Registry {
	return b.encounters
}

// Skills returns the catalog of every skill named in the content.
func (b *Bundle) Skills() *skill.Catalog {
	return b.skills
}

// Conflicts returns the names of skills defined more than once with differing text.
func (b *Bundle) Conflicts() []string {
	return b.conflicts
}

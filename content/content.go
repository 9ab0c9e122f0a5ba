// Package content embeds the game's content tables: hero presets, dungeons,
// combats, and perils.
package content

import (
	"embed"
	"io/fs"
)

// Directory names inside FS.
const (
	HeroesDir   = "heroes"
	DungeonsDir = "dungeons"
	CombatsDir  = "combats"
	PerilsDir   = "perils"
)

//go:embed heroes/*.yaml dungeons/*.yaml combats/*.yaml perils/*.yaml
var embedded embed.FS

// FS returns the embedded content tables.
func FS() fs.FS {
	return embedded
}

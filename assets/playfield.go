package assets

import (
	"embed"
	"io/fs"
	"log"

	"github.com/lafriks/go-tiled"

	"github.com/automoto/stackdrop/config"
)

//go:embed playfield.tmx
var playfieldFS embed.FS

// Rect is an axis-aligned region in world pixels.
type Rect struct {
	X, Y, W, H float64
}

// Playfield is the static stage geometry: where the floor sits, where
// held pieces swing, and where falling pieces are lost. It normally
// comes from the embedded Tiled map; config defaults cover a missing or
// malformed map.
type Playfield struct {
	Width, Height float64
	Floor         Rect
	SpawnY        float64
	SwingMinX     float64
	SwingMaxX     float64
	KillY         float64
	BackdropStyle string
}

// LoadPlayfield parses the embedded stage map, falling back to config
// defaults if it cannot be read.
func LoadPlayfield() Playfield {
	pf, err := parsePlayfield(playfieldFS, "playfield.tmx")
	if err != nil {
		log.Printf("Warning: loading playfield map failed, using built-in geometry: %v", err)
		return defaultPlayfield()
	}
	return pf
}

func defaultPlayfield() Playfield {
	w := float64(config.C.Width)
	h := float64(config.C.Height)
	return Playfield{
		Width:  w,
		Height: h,
		Floor: Rect{
			X: config.Playfield.FloorMinX,
			Y: config.Playfield.FloorY,
			W: config.Playfield.FloorMaxX - config.Playfield.FloorMinX,
			H: config.Playfield.FloorThickness,
		},
		SpawnY:        config.Spawner.SpawnY,
		SwingMinX:     config.Spawner.SwingMargin,
		SwingMaxX:     w - config.Spawner.SwingMargin,
		KillY:         h + config.Playfield.KillMargin,
		BackdropStyle: "night",
	}
}

func parsePlayfield(fsys fs.FS, path string) (Playfield, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return Playfield{}, err
	}

	// Start from the defaults so a sparse map only overrides what it
	// actually defines.
	pf := defaultPlayfield()
	pf.Width = float64(levelMap.Width * levelMap.TileWidth)
	pf.Height = float64(levelMap.Height * levelMap.TileHeight)

	foundFloor := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Geometry":
			for _, o := range og.Objects {
				switch o.Name {
				case "Floor":
					pf.Floor = Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
					foundFloor = true
				case "SpawnLine":
					pf.SpawnY = o.Y
					pf.SwingMinX = o.X
					pf.SwingMaxX = o.X + o.Width
				case "KillLine":
					pf.KillY = o.Y
				default:
					log.Printf("Warning: unknown geometry object %q in %s", o.Name, path)
				}
			}
		case "Decor":
			for _, o := range og.Objects {
				if o.Name == "Backdrop" {
					if style := o.Properties.GetString("style"); style != "" {
						pf.BackdropStyle = style
					}
				}
			}
		default:
			log.Printf("Warning: unknown object layer %q in %s", og.Name, path)
		}
	}
	if !foundFloor {
		log.Printf("Warning: no Floor object in %s, using built-in floor", path)
	}
	return pf, nil
}

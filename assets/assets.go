package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

var ErrNoSpawn = errors.New("level has no pug spawn")

// Spawn is where the pug starts. Map pixels are world units with the map
// centered on the origin; map Y runs along world Z.
type Spawn struct {
	X, Z   float64
	Height float64 // Drop height above the ground
	Yaw    float64 // Radians
}

// Bush is a static obstacle.
type Bush struct {
	X, Z   float64
	Radius float64
	Y      float64 // Center height
	Damage float64 // Zero uses the session default
}

// TreatArea scatters Count treats over a rectangle, dropped from up to MaxHeight.
type TreatArea struct {
	MinX, MinZ float64
	MaxX, MaxZ float64
	Count      int
	MaxHeight  float64
}

// Level is the parsed content of a TMX level.
type Level struct {
	Name       string
	Width      float64
	Height     float64
	Spawn      Spawn
	Bushes     []Bush
	TreatAreas []TreatArea
}

// TreatCount returns the number of treats the level scatters.
func (l *Level) TreatCount() int {
	n := 0
	for _, a := range l.TreatAreas {
		n += a.Count
	}
	return n
}

// LoadLevel parses an embedded TMX level.
func LoadLevel(levelPath string) (*Level, error) {
	return LoadLevelFS(assetFS, levelPath)
}

// LoadLevelFS parses a TMX level from fsys.
func LoadLevelFS(fsys fs.FS, levelPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", levelPath, err)
	}

	width := float64(levelMap.Width * levelMap.TileWidth)
	height := float64(levelMap.Height * levelMap.TileHeight)
	toX := func(px float64) float64 { return px - width/2 }
	toZ := func(py float64) float64 { return py - height/2 }

	level := &Level{
		Name:   levelPath,
		Width:  width,
		Height: height,
	}
	spawned := false

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Spawn":
			for _, o := range og.Objects {
				if o.Name != "pug" {
					continue
				}
				level.Spawn = Spawn{
					X:      toX(o.X),
					Z:      toZ(o.Y),
					Height: o.Properties.GetFloat("height"),
					Yaw:    o.Properties.GetFloat("yaw"),
				}
				spawned = true
			}
		case "Bushes":
			for _, o := range og.Objects {
				r := o.Width / 2
				level.Bushes = append(level.Bushes, Bush{
					X:      toX(o.X + r),
					Z:      toZ(o.Y + o.Height/2),
					Radius: r,
					Y:      o.Properties.GetFloat("y"),
					Damage: o.Properties.GetFloat("damage"),
				})
			}
			// Left to right so spawn order is stable
			sort.Slice(level.Bushes, func(i, j int) bool {
				return level.Bushes[i].X < level.Bushes[j].X
			})
		case "Treats":
			for _, o := range og.Objects {
				level.TreatAreas = append(level.TreatAreas, TreatArea{
					MinX:      toX(o.X),
					MinZ:      toZ(o.Y),
					MaxX:      toX(o.X + o.Width),
					MaxZ:      toZ(o.Y + o.Height),
					Count:     o.Properties.GetInt("count"),
					MaxHeight: o.Properties.GetFloat("maxHeight"),
				})
			}
		}
	}

	if !spawned {
		return nil, fmt.Errorf("%s: %w", levelPath, ErrNoSpawn)
	}
	return level, nil
}

package leveldata

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
	"gopkg.in/yaml.v3"
)

//go:embed levels
var embedded embed.FS

// Embedded returns the levels shipped with the game.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "levels")
	if err != nil {
		panic(err)
	}
	return sub
}

// Load reads a level by file name, choosing the decoder from its extension.
func Load(fsys fs.FS, file string) (*Level, error) {
	var (
		lvl *Level
		err error
	)
	switch strings.ToLower(path.Ext(file)) {
	case ".yaml", ".yml":
		lvl, err = loadYAML(fsys, file)
	case ".tmx":
		lvl, err = loadTMX(fsys, file)
	default:
		return nil, fmt.Errorf("leveldata: %s: %w", file, ErrUnknownLevel)
	}
	if err != nil {
		return nil, err
	}
	if lvl.Name == "" {
		lvl.Name = stem(file)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return lvl, nil
}

func loadYAML(fsys fs.FS, file string) (*Level, error) {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("leveldata: read %s: %w", file, err)
	}
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("leveldata: decode %s: %w", file, err)
	}
	return &lvl, nil
}

// loadTMX converts a Tiled map. One tile is one world unit and Tiled's y-down
// pixel space is flipped so y points up.
func loadTMX(fsys fs.FS, file string) (*Level, error) {
	levelMap, err := tiled.LoadFile(file, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("leveldata: load TMX %s: %w", file, err)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	height := float64(levelMap.Height)
	lvl := &Level{
		Name:   stem(file),
		Width:  float64(levelMap.Width),
		Height: height,
	}

	center := func(o *tiled.Object) Point {
		return Point{(o.X + o.Width/2) / tileW, height - (o.Y+o.Height/2)/tileH}
	}
	rect := func(o *tiled.Object) Placement {
		return Placement{
			Position: center(o),
			Width:    o.Width / tileW,
			Height:   o.Height / tileH,
			Range:    o.Properties.GetFloat("range"),
			Period:   o.Properties.GetFloat("period"),
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Terrain":
			for _, o := range og.Objects {
				if len(o.Polygons) > 0 {
					polygon := o.Polygons[0]
					if polygon.Points == nil || len(*polygon.Points) < 3 {
						continue
					}
					var poly Polygon
					for _, pt := range *polygon.Points {
						poly = append(poly, (o.X+pt.X)/tileW, height-(o.Y+pt.Y)/tileH)
					}
					lvl.Terrain.Polygons = append(lvl.Terrain.Polygons, poly)
					continue
				}
				x0, x1 := o.X/tileW, (o.X+o.Width)/tileW
				y0, y1 := height-(o.Y+o.Height)/tileH, height-o.Y/tileH
				lvl.Terrain.Polygons = append(lvl.Terrain.Polygons, Polygon{x0, y0, x1, y0, x1, y1, x0, y1})
			}
		case "Player":
			for _, o := range og.Objects {
				lvl.Player.Position = center(o)
				lvl.Penguins.Count = o.Properties.GetInt("penguins")
				if g := o.Properties.GetFloat("gravity"); g != 0 {
					lvl.Gravity = g
				}
			}
		case "Exit":
			for _, o := range og.Objects {
				lvl.Exit = rect(o)
			}
		case "Notes":
			lvl.Notes.Placements = appendRects(lvl.Notes.Placements, og.Objects, rect)
		case "Water":
			lvl.Water.Placements = appendRects(lvl.Water.Placements, og.Objects, rect)
		case "Ice":
			lvl.Ice.Placements = appendRects(lvl.Ice.Placements, og.Objects, rect)
		case "FloatingIce":
			lvl.FloatingIce.Placements = appendRects(lvl.FloatingIce.Placements, og.Objects, rect)
		case "MovingIce":
			lvl.MovingIce.Placements = appendRects(lvl.MovingIce.Placements, og.Objects, rect)
		case "Monsters":
			lvl.Monsters.Placements = appendRects(lvl.Monsters.Placements, og.Objects, rect)
		case "Icicles":
			lvl.Icicles.Placements = appendRects(lvl.Icicles.Placements, og.Objects, rect)
		}
	}

	// Tiled keeps objects in drawing order; sort left to right for stable indices.
	for _, g := range []*Group{&lvl.Notes, &lvl.Monsters, &lvl.Icicles} {
		sort.SliceStable(g.Placements, func(i, j int) bool {
			return g.Placements[i].Position[0] < g.Placements[j].Position[0]
		})
	}
	return lvl, nil
}

func appendRects(dst []Placement, objs []*tiled.Object, rect func(*tiled.Object) Placement) []Placement {
	for _, o := range objs {
		dst = append(dst, rect(o))
	}
	return dst
}

// Catalog lists the level files in fsys, sorted by name.
func Catalog(fsys fs.FS) ([]string, error) {
	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml", "*.tmx"} {
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("leveldata: glob %s: %w", pattern, err)
		}
		files = append(files, matches...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("leveldata: no level files found: %w", ErrUnknownLevel)
	}
	sort.Strings(files)
	return files, nil
}

// Find resolves a level by file name or stem.
func Find(fsys fs.FS, name string) (string, error) {
	files, err := Catalog(fsys)
	if err != nil {
		return "", err
	}
	for _, f := range files {
		if f == name || stem(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("leveldata: %s: %w", name, ErrUnknownLevel)
}

func stem(file string) string {
	base := path.Base(file)
	return strings.TrimSuffix(base, path.Ext(base))
}

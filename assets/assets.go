// Package assets holds the resolved texture and animation-strip table shared
// by entity construction and the renderers.
package assets

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/automoto/penguin-squad/assets/animations"
	"github.com/automoto/penguin-squad/config"
)

// TextureID names a texture the host renderer knows how to draw.
type TextureID string

// Strip is a resolved animation strip handle.
type Strip struct {
	Key     string
	Texture TextureID
	Frames  int
	Loop    bool
	Tint    color.RGBA
}

// Animation returns a fresh animation walking every frame of the strip.
func (s Strip) Animation(interval float64) *animations.Animation {
	a := animations.NewAnimation(0, s.Frames-1, 1, interval)
	a.FreezeOnComplete = !s.Loop
	return a
}

// Bundle is an immutable strip table. Build it once at load time and share it.
type Bundle struct {
	strips map[string]Strip
	keys   []string
}

// NewBundle copies defs into a new bundle. Strips with fewer than one frame
// are rejected.
func NewBundle(defs map[string]config.StripDef) (*Bundle, error) {
	b := &Bundle{strips: make(map[string]Strip, len(defs))}
	for key, def := range defs {
		if def.Frames < 1 {
			return nil, fmt.Errorf("assets: strip %q has %d frames", key, def.Frames)
		}
		b.strips[key] = Strip{
			Key:     key,
			Texture: TextureID(key),
			Frames:  def.Frames,
			Loop:    def.Loop,
			Tint:    def.Tint,
		}
		b.keys = append(b.keys, key)
	}
	sort.Strings(b.keys)
	return b, nil
}

// MustLoad builds the bundle from the configured strip table.
func MustLoad() *Bundle {
	b, err := NewBundle(config.Strips)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Bundle) Strip(key string) (Strip, bool) {
	s, ok := b.strips[key]
	return s, ok
}

// MustStrip is used during population, after which every referenced strip
// is assumed to exist.
func (b *Bundle) MustStrip(key string) Strip {
	s, ok := b.strips[key]
	if !ok {
		panic(fmt.Sprintf("assets: missing strip %q", key))
	}
	return s
}

// Keys lists every strip key in sorted order.
func (b *Bundle) Keys() []string {
	keys := make([]string, len(b.keys))
	copy(keys, b.keys)
	return keys
}

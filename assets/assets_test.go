package assets

import (
	"testing"

	"github.com/automoto/penguin-squad/config"
)

func TestMustLoadCoversEveryStrip(t *testing.T) {
	b := MustLoad()
	if len(b.Keys()) != len(config.Strips) {
		t.Fatalf("len(Keys()) = %d, expected %d", len(b.Keys()), len(config.Strips))
	}
	for key := range config.Strips {
		s, ok := b.Strip(key)
		if !ok {
			t.Errorf("Strip(%q) missing", key)
			continue
		}
		if s.Texture != TextureID(key) {
			t.Errorf("Strip(%q).Texture = %q", key, s.Texture)
		}
	}
}

func TestBundleIsACopy(t *testing.T) {
	defs := map[string]config.StripDef{"a": {Frames: 2, Loop: true}}
	b, err := NewBundle(defs)
	if err != nil {
		t.Fatalf("NewBundle() error = %v", err)
	}
	defs["a"] = config.StripDef{Frames: 9}
	if s := b.MustStrip("a"); s.Frames != 2 {
		t.Errorf("bundle changed with its source map: Frames = %d", s.Frames)
	}

	keys := b.Keys()
	keys[0] = "mutated"
	if b.Keys()[0] != "a" {
		t.Error("Keys() exposed internal state")
	}
}

func TestNewBundleRejectsEmptyStrip(t *testing.T) {
	if _, err := NewBundle(map[string]config.StripDef{"bad": {Frames: 0}}); err == nil {
		t.Error("NewBundle() accepted a strip without frames")
	}
}

func TestStripAnimation(t *testing.T) {
	once := Strip{Frames: 3, Loop: false}.Animation(1)
	if !once.FreezeOnComplete || once.Last != 2 {
		t.Errorf("one-shot strip animation = %+v", once)
	}
	loop := Strip{Frames: 3, Loop: true}.Animation(1)
	if loop.FreezeOnComplete {
		t.Error("looping strip should not freeze")
	}
}

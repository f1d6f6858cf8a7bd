package render

import "testing"

func TestRecorderKeepsLastFrame(t *testing.T) {
	r := &Recorder{}

	r.Begin()
	r.Draw(Command{Frame: 1})
	r.Draw(Command{Frame: 2})
	r.DrawDebug(DebugShape{})
	r.DrawOverlay(Overlay{Kind: OverlayFailed})
	r.End()

	if len(r.Commands) != 2 || len(r.Debug) != 1 || r.Overlay.Kind != OverlayFailed {
		t.Fatalf("first frame = %d commands, %d debug, overlay %v", len(r.Commands), len(r.Debug), r.Overlay.Kind)
	}

	r.Begin()
	r.Draw(Command{Frame: 3})
	r.End()

	if len(r.Commands) != 1 || r.Commands[0].Frame != 3 {
		t.Errorf("second frame commands = %+v", r.Commands)
	}
	if len(r.Debug) != 0 || r.Overlay.Kind != OverlayNone {
		t.Errorf("second frame kept stale debug or overlay")
	}
	if r.Frames != 2 {
		t.Errorf("Frames = %d, expected 2", r.Frames)
	}
}

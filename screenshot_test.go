package signal

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"text-settled", "text-settled"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	s := newTestScene(t, testConfig())
	s.Screenshot("a")
	s.Screenshot("b")
	if len(s.screenshotQueue) != 2 || s.screenshotQueue[0] != "a" || s.screenshotQueue[1] != "b" {
		t.Errorf("queue = %v, want [a b]", s.screenshotQueue)
	}
}

func TestRenderHeadlessWritesScreenshots(t *testing.T) {
	s := newTestScene(t, testConfig())
	s.ScreenshotDir = filepath.Join(t.TempDir(), "shots")
	s.Advance(0)
	s.Screenshot("first")
	s.Screenshot("second")

	surf := NewGGSurface(400, 300)
	s.RenderHeadless(surf)

	if len(s.screenshotQueue) != 0 {
		t.Errorf("queue not flushed: %v", s.screenshotQueue)
	}
	entries, err := os.ReadDir(s.ScreenshotDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("wrote %d files, want 2", len(entries))
	}

	f, err := os.Open(filepath.Join(s.ScreenshotDir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 300 {
		t.Errorf("screenshot is %dx%d, want 400x300", b.Dx(), b.Dy())
	}
}

func TestRenderHeadlessNoQueueNoFiles(t *testing.T) {
	s := newTestScene(t, testConfig())
	s.ScreenshotDir = filepath.Join(t.TempDir(), "none")
	s.RenderHeadless(NewGGSurface(400, 300))
	if _, err := os.Stat(s.ScreenshotDir); !os.IsNotExist(err) {
		t.Errorf("screenshot dir created without a queued screenshot")
	}
}

func TestUnpremultiply(t *testing.T) {
	img := unpremultiply([]byte{64, 32, 0, 128, 255, 255, 255, 255}, 2, 1)
	if got := img.Pix[0:4]; got[0] != 127 || got[1] != 63 || got[3] != 128 {
		t.Errorf("half-alpha pixel = %v", got)
	}
	if got := img.Pix[4:8]; got[0] != 255 || got[3] != 255 {
		t.Errorf("opaque pixel = %v", got)
	}
}

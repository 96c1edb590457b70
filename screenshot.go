package signal

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// imageSource yields the pixels of a rendered frame as straight-alpha NRGBA.
type imageSource interface {
	nrgba() *image.NRGBA
}

// ebitenSource reads back an Ebitengine render target.
type ebitenSource struct {
	img *ebiten.Image
}

func (e ebitenSource) nrgba() *image.NRGBA {
	bounds := e.img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	e.img.ReadPixels(pixels)
	return unpremultiply(pixels, w, h)
}

// ggSource reads a headless gg surface.
type ggSource struct {
	surf *GGSurface
}

func (g ggSource) nrgba() *image.NRGBA {
	img := g.surf.Image()
	if rgba, ok := img.(*image.RGBA); ok {
		b := rgba.Bounds()
		return unpremultiply(rgba.Pix, b.Dx(), b.Dy())
	}
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			out.Set(x, y, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return out
}

// unpremultiply converts premultiplied RGBA bytes to a straight-alpha NRGBA image.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// Screenshot queues a labeled screenshot to be captured at the end of the
// current frame's Draw (or RenderHeadless) call. The resulting PNG is
// written to ScreenshotDir with a timestamped filename.
func (s *Scene) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// RenderHeadless draws the scene onto surf and flushes queued screenshots
// from it. Hosts without a window use this in place of Draw.
func (s *Scene) RenderHeadless(surf *GGSurface) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	s.Render(surf)
	if s.debug {
		s.debugDraw(time.Since(t0))
	}
	s.flushScreenshots(func() imageSource { return ggSource{surf} })
}

// flushScreenshots captures the rendered frame for every queued label and
// writes each as a PNG file. The source is only read if something is queued.
func (s *Scene) flushScreenshots(src func() imageSource) {
	if len(s.screenshotQueue) == 0 {
		return
	}

	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		logf("screenshot: mkdir %s: %v", s.ScreenshotDir, err)
		s.screenshotQueue = s.screenshotQueue[:0]
		return
	}

	img := src().nrgba()
	stamp := time.Now().Format("20060102_150405")

	for _, label := range s.screenshotQueue {
		safe := sanitizeLabel(label)
		path := filepath.Join(s.ScreenshotDir, fmt.Sprintf("%s_%s.png", stamp, safe))
		if err := writePNG(path, img); err != nil {
			logf("screenshot: %v", err)
		}
	}

	s.screenshotQueue = s.screenshotQueue[:0]
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

package signal

import (
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is the raster target points are drawn onto.
type Surface interface {
	// Size returns the drawable area in pixels.
	Size() (width, height int)
	// Fill clears the whole surface to c.
	Fill(c Color)
	// FillCircle draws a filled disc of radius r centered on (x, y).
	FillCircle(x, y, r float64, c Color)
}

// --- Ebitengine ---

// ImageSurface draws onto an *ebiten.Image. Discs are stamped from a cached
// white disc texture tinted per point, so consecutive draws batch into a
// single GPU call.
type ImageSurface struct {
	dst        *ebiten.Image
	disc       *ebiten.Image
	discRadius float64
	op         ebiten.DrawImageOptions
}

// NewImageSurface wraps dst.
func NewImageSurface(dst *ebiten.Image) *ImageSurface {
	return &ImageSurface{dst: dst}
}

// SetTarget retargets the surface, typically to this frame's screen.
func (s *ImageSurface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

// Target returns the image currently drawn onto.
func (s *ImageSurface) Target() *ebiten.Image {
	return s.dst
}

func (s *ImageSurface) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (s *ImageSurface) Fill(c Color) {
	s.dst.Fill(c.toRGBA())
}

func (s *ImageSurface) FillCircle(x, y, r float64, c Color) {
	if s.disc == nil || s.discRadius != r {
		s.buildDisc(r)
	}
	half := float64(s.disc.Bounds().Dx()) / 2
	s.op.GeoM.Reset()
	s.op.GeoM.Translate(x-half, y-half)
	s.op.ColorScale.Reset()
	a := float32(clamp01(c.A))
	s.op.ColorScale.Scale(float32(clamp01(c.R))*a, float32(clamp01(c.G))*a, float32(clamp01(c.B))*a, a)
	s.dst.DrawImage(s.disc, &s.op)
}

// buildDisc renders an antialiased white disc of radius r.
func (s *ImageSurface) buildDisc(r float64) {
	if s.disc != nil {
		s.disc.Deallocate()
	}
	size := int(math.Ceil(2*r)) + 2
	img := ebiten.NewImage(size, size)
	c := float32(size) / 2
	vector.DrawFilledCircle(img, c, c, float32(r), ColorWhite.toRGBA(), true)
	s.disc = img
	s.discRadius = r
}

// --- gg (headless) ---

// GGSurface draws onto a fogleman/gg context in memory. It needs no GPU and
// is used for headless rendering, PNG export and tests.
type GGSurface struct {
	dc *gg.Context
}

// NewGGSurface creates a width×height in-memory surface.
func NewGGSurface(width, height int) *GGSurface {
	return &GGSurface{dc: gg.NewContext(width, height)}
}

// Context exposes the underlying gg context.
func (s *GGSurface) Context() *gg.Context {
	return s.dc
}

// Image returns the rendered pixels.
func (s *GGSurface) Image() image.Image {
	return s.dc.Image()
}

func (s *GGSurface) Size() (int, int) {
	return s.dc.Width(), s.dc.Height()
}

func (s *GGSurface) Fill(c Color) {
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
	s.dc.Clear()
}

func (s *GGSurface) FillCircle(x, y, r float64, c Color) {
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
	s.dc.DrawCircle(x, y, r)
	s.dc.Fill()
}

package signal

import (
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
)

// RasterOptions controls how text is turned into ink samples.
type RasterOptions struct {
	// FontSize is the starting size in points.
	FontSize float64
	// MinFontSize is the floor the size never shrinks below.
	MinFontSize float64
	// ShrinkStep is subtracted from the size until the text fits.
	ShrinkStep float64
	// Padding is kept free on the left and right of the text.
	Padding float64
	// Density is the sampling stride in pixels. Zero picks one from the
	// canvas width: coarser on larger canvases to bound the sample count.
	Density int
	// InkThreshold is the red channel value below which a pixel is ink.
	InkThreshold uint8
	// MinInk is the number of samples below which the letter-grid fallback
	// replaces the rasterized result.
	MinInk int
	// DisableFallback keeps whatever the rasterizer produced.
	DisableFallback bool
}

// DefaultRasterOptions returns bold 110pt text shrinking in 4pt steps down to
// 24pt, sampled with an automatic stride.
func DefaultRasterOptions() RasterOptions {
	return RasterOptions{
		FontSize:     110,
		MinFontSize:  24,
		ShrinkStep:   4,
		Padding:      40,
		InkThreshold: 50,
		MinInk:       200,
	}
}

// density returns the sampling stride for a canvas width.
func (o RasterOptions) density(width int) int {
	if o.Density > 0 {
		return o.Density
	}
	switch {
	case width < 600:
		return 2
	case width < 1200:
		return 3
	default:
		return 4
	}
}

var (
	boldOnce sync.Once
	boldFont *truetype.Font
	boldErr  error
)

// loadBold parses the embedded Go Bold face once.
func loadBold() (*truetype.Font, error) {
	boldOnce.Do(func() {
		boldFont, boldErr = truetype.Parse(gobold.TTF)
	})
	return boldFont, boldErr
}

// boldFace returns a face of the bold font at size points.
func boldFace(size float64) (font.Face, error) {
	f, err := loadBold()
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// RasterResult is the outcome of Rasterize.
type RasterResult struct {
	Pixels   []Vec2
	FontSize float64
	Density  int
	// Fallback reports that Pixels came from the synthetic letter grid.
	Fallback bool
}

// Rasterize draws text in black bold sans-serif, centered on a white
// offscreen canvas of the given size, and collects the coordinates of ink
// pixels in row-major scan order. If too few samples are found the result
// is replaced by a synthetic letter grid (see RasterOptions.MinInk).
func Rasterize(text string, width, height int, opts RasterOptions, rng *rand.Rand) (RasterResult, error) {
	if width <= 0 || height <= 0 {
		return RasterResult{}, fmt.Errorf("rasterize %dx%d: %w", width, height, ErrInvalidDimensions)
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetColor(color.Black)

	size, err := fitFontSize(dc, text, float64(width), opts)
	if err != nil {
		return RasterResult{}, err
	}
	dc.DrawStringAnchored(text, float64(width)/2, float64(height)/2, 0.5, 0.5)

	stride := opts.density(width)
	res := RasterResult{
		Pixels:   scanInk(dc.Image(), stride, opts.InkThreshold),
		FontSize: size,
		Density:  stride,
	}
	if !opts.DisableFallback && len(res.Pixels) < opts.MinInk {
		res.Pixels = LetterGrid(text, float64(width), float64(height), rng)
		res.Fallback = true
	}
	return res, nil
}

// fitFontSize sets the largest face, shrinking from opts.FontSize, whose
// rendering of text fits within width minus the padding on both sides.
func fitFontSize(dc *gg.Context, text string, width float64, opts RasterOptions) (float64, error) {
	size := opts.FontSize
	limit := width - 2*opts.Padding
	for {
		face, err := boldFace(size)
		if err != nil {
			return 0, err
		}
		dc.SetFontFace(face)
		w, _ := dc.MeasureString(text)
		next := size - opts.ShrinkStep
		if w <= limit || opts.ShrinkStep <= 0 || next < opts.MinFontSize {
			return size, nil
		}
		size = next
	}
}

// scanInk samples img every stride pixels and returns positions whose red
// channel is below threshold.
func scanInk(img image.Image, stride int, threshold uint8) []Vec2 {
	if stride < 1 {
		stride = 1
	}
	b := img.Bounds()
	rgba, _ := img.(*image.RGBA)
	var ink []Vec2
	for y := b.Min.Y; y < b.Max.Y; y += stride {
		for x := b.Min.X; x < b.Max.X; x += stride {
			var red uint8
			if rgba != nil {
				red = rgba.Pix[rgba.PixOffset(x, y)]
			} else {
				r, _, _, _ := img.At(x, y).RGBA()
				red = uint8(r >> 8)
			}
			if red < threshold {
				ink = append(ink, Vec2{float64(x - b.Min.X), float64(y - b.Min.Y)})
			}
		}
	}
	return ink
}

const (
	gridLetterWidth  = 40
	gridLetterHeight = 80
	gridStep         = 4
	gridKeep         = 0.6
)

// LetterGrid synthesizes a blocky stand-in for text when no usable font
// raster is available: every non-space letter becomes a 40×80 cell sampled
// every 4px, each sample kept with probability 0.6.
func LetterGrid(text string, width, height float64, rng *rand.Rand) []Vec2 {
	letters := []rune(text)
	startX := width/2 - float64(len(letters)*gridLetterWidth)/2
	cy := height / 2

	var pixels []Vec2
	for i, ch := range letters {
		if ch == ' ' {
			continue
		}
		lx := startX + float64(i*gridLetterWidth)
		for y := -gridLetterHeight / 2; y < gridLetterHeight/2; y += gridStep {
			for x := -gridLetterWidth / 2; x < gridLetterWidth/2; x += gridStep {
				if rng.Float64() < gridKeep {
					pixels = append(pixels, Vec2{lx + float64(x), cy + float64(y)})
				}
			}
		}
	}
	return pixels
}

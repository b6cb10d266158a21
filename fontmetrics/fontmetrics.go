// Package fontmetrics measures word widths and line metrics for the
// inline formatting context. Layout never touches a font library
// directly; it queries a Provider, so tests can substitute a fixed-width
// fake without loading any font data.
package fontmetrics

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Bold is the font-weight threshold at which the bold face is selected,
// matching the CSS numeric font-weight scale (normal = 400, bold = 700).
const Bold = 700

// widthCorrection compensates for the opentype rasterizer's slightly
// wider advances relative to the word measurements an inline layout
// expects; applied once per measured word, not per glyph.
const widthCorrection = 0.9

// Provider measures text in a given (weight, size) font.
type Provider interface {
	// WordWidth returns the pixel width of text set at size in the face
	// selected for weight.
	WordWidth(text string, size float64, weight int) float64
	// LineMetrics returns the ascent and descent, in pixels, of the face
	// selected for (weight, size).
	LineMetrics(size float64, weight int) (ascent, descent float64)
}

var (
	regularFont *opentype.Font
	boldFont    *opentype.Font
	loadOnce    sync.Once
	loadErr     error
)

func loadFonts() error {
	loadOnce.Do(func() {
		var err error
		if regularFont, err = opentype.Parse(goregular.TTF); err != nil {
			loadErr = err
			return
		}
		if boldFont, err = opentype.Parse(gobold.TTF); err != nil {
			loadErr = err
			return
		}
	})
	return loadErr
}

func selectFont(weight int) *opentype.Font {
	if loadFonts() != nil {
		return nil
	}
	if weight >= Bold {
		return boldFont
	}
	return regularFont
}

// GoFontProvider is the default Provider, backed by the embedded Go core
// font family (golang.org/x/image/font/gofont), faceted at 72 DPI.
type GoFontProvider struct{}

// NewGoFontProvider returns the default font.Face-backed Provider.
func NewGoFontProvider() GoFontProvider { return GoFontProvider{} }

func (GoFontProvider) face(size float64, weight int) (font.Face, bool) {
	selected := selectFont(weight)
	if selected == nil {
		return nil, false
	}
	face, err := opentype.NewFace(selected, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, false
	}
	return face, true
}

func (p GoFontProvider) WordWidth(text string, size float64, weight int) float64 {
	if text == "" {
		return 0
	}
	face, ok := p.face(size, weight)
	if !ok {
		return fallbackWidth(text, size)
	}
	defer face.Close()

	drawer := &font.Drawer{Face: face}
	return float64(drawer.MeasureString(text).Ceil()) * widthCorrection
}

func (p GoFontProvider) LineMetrics(size float64, weight int) (float64, float64) {
	face, ok := p.face(size, weight)
	if !ok {
		height := fallbackHeight(size)
		return height * 0.8, height * 0.2
	}
	defer face.Close()

	metrics := face.Metrics()
	return float64(metrics.Ascent.Ceil()), float64(metrics.Descent.Ceil())
}

// fallbackScale is the em-box height of basicfont.Face7x13, used to scale
// its fixed glyph metrics to an arbitrary requested size.
const fallbackScale = 13

func fallbackWidth(text string, size float64) float64 {
	face := basicfont.Face7x13
	scale := size / fallbackScale
	return float64(len(text)*face.Advance) * scale * widthCorrection
}

func fallbackHeight(size float64) float64 {
	return size
}

package metrics

import (
	"fmt"
	"unicode"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Face returns a WidthFunc backed by the glyph advances of face.
//
// Runes the face has no glyph for are measured as unicode.ReplacementChar.
func Face(face font.Face) WidthFunc {
	return func(r rune) float64 {
		return toFloat(faceAdvance(face, r))
	}
}

func faceAdvance(face font.Face, r rune) fixed.Int26_6 {
	if r == '\t' {
		space, ok := face.GlyphAdvance(' ')
		if !ok {
			return 0
		}
		return space.Mul(fixed.I(TabCells))
	}
	adv, ok := face.GlyphAdvance(r)
	if !ok {
		adv, _ = face.GlyphAdvance(unicode.ReplacementChar)
	}
	if adv < 0 {
		return 0
	}
	return adv
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// GoFont returns the Go Regular face at sizePt points and dpi.
func GoFont(sizePt, dpi float64) (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("metrics: parse go regular: %w", err)
	}
	if dpi <= 0 {
		dpi = 72
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    sizePt,
		DPI:     dpi,
		Hinting: font.HintingFull,
	}), nil
}

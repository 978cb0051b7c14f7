package ui

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts holds the faces used by the menus and the HUD
type Fonts struct {
	Title text.Face
	Body  text.Face
	Small text.Face
}

// LoadFonts builds every face from the embedded Go Regular font
func LoadFonts() (*Fonts, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face := func(size float64) text.Face {
		return text.NewGoXFace(truetype.NewFace(tt, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		}))
	}
	return &Fonts{
		Title: face(56),
		Body:  face(28),
		Small: face(16),
	}, nil
}

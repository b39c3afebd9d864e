package theme

import "image/color"

type DefaultTheme struct {
	// Colors by lane parity from the edges inwards, white when empty
	Palette []color.RGBA
}

const (
	noteSym      = "█"
	judgementSym = "━"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	grey  = color.RGBA{128, 128, 128, 255}

	ManiaPalette = []color.RGBA{
		{255, 255, 255, 255}, // outer white
		{0, 118, 236, 255},   // blue
		{236, 195, 0, 255},   // centre yellow for odd key counts
	}
)

// NoteColor mirrors the lane layout around the centre, so lane 0 and the
// last lane share a color.
func (t *DefaultTheme) NoteColor(lane, laneCount int) color.RGBA {
	if len(t.Palette) == 0 || lane < 0 || lane >= laneCount {
		return white
	}
	mirrored := lane
	if o := laneCount - 1 - lane; o < mirrored {
		mirrored = o
	}
	if laneCount%2 == 1 && lane == laneCount/2 && len(t.Palette) > 2 {
		return t.Palette[2]
	}
	return t.Palette[mirrored%2]
}

func (t *DefaultTheme) NoteGlyph(lane, laneCount int) string {
	return noteSym
}

func (t *DefaultTheme) JudgementLine() string {
	return judgementSym
}

func (t *DefaultTheme) JudgementColor() color.RGBA {
	return grey
}

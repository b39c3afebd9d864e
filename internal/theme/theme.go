package theme

import "image/color"

type Theme interface {
	NoteColor(lane, laneCount int) color.RGBA
	NoteGlyph(lane, laneCount int) string
	JudgementLine() string
	JudgementColor() color.RGBA
}

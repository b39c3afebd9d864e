package render

import (
	"image/color"
	"math"
	"strings"

	"golang.org/x/exp/constraints"
)

// Canvas scales a fixed size virtual surface onto the terminal. Rows and
// columns handed to the renderer are 1-based.
type Canvas struct {
	r             Renderer
	width, height float64
}

func NewCanvas(r Renderer, width, height float64) *Canvas {
	return &Canvas{r: r, width: width, height: height}
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (c *Canvas) column(x float64, columns int) int {
	return int(math.Floor(x / c.width * float64(columns)))
}

func (c *Canvas) row(y float64, rows int) int {
	return int(math.Floor(y / c.height * float64(rows)))
}

func (c *Canvas) Clear() {
	c.r.Clear()
}

// Cell returns the 0-based cell containing a canvas point.
func (c *Canvas) Cell(x, y float64) (column, row int) {
	columns, rows := c.r.Size()
	return c.column(x, columns), c.row(y, rows)
}

// Rect fills the cells covered by a rectangle and reports whether any part
// of it was visible. Rectangles always cover at least one cell.
func (c *Canvas) Rect(x, y, w, h float64, col color.RGBA, glyph string) bool {
	columns, rows := c.r.Size()
	if columns <= 0 || rows <= 0 {
		return false
	}

	left, top := c.column(x, columns), c.row(y, rows)
	right, bottom := c.column(x+w, columns), c.row(y+h, rows)
	if right <= left {
		right = left + 1
	}
	if bottom <= top {
		bottom = top + 1
	}
	if right <= 0 || bottom <= 0 || left >= columns || top >= rows {
		return false
	}

	left, right = clamp(left, 0, columns), clamp(right, 0, columns)
	top, bottom = clamp(top, 0, rows), clamp(bottom, 0, rows)
	line := strings.Repeat(glyph, right-left)
	for row := top; row < bottom; row++ {
		c.r.FillColor(row+1, left+1, col, line)
	}
	return true
}

// HLine draws a full width line through y.
func (c *Canvas) HLine(y float64, col color.RGBA, glyph string) {
	c.Rect(0, y, c.width, 0, col, glyph)
}

// Text writes a message starting at the cell of a canvas point.
func (c *Canvas) Text(x, y float64, message string) {
	columns, rows := c.r.Size()
	column, row := c.column(x, columns), c.row(y, rows)
	if row < 0 || row >= rows || column < 0 || column >= columns {
		return
	}
	c.r.Fill(row+1, column+1, message)
}

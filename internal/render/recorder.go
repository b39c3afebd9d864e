package render

import (
	"image/color"
	"time"
)

type Cell struct {
	Row, Column int
	Color       color.RGBA
	Message     string
}

// Recorder is a headless Renderer keeping the cells of the last frame.
type Recorder struct {
	Columns, Rows int
	Cells         []Cell
	Frames        int
}

func (r *Recorder) Init() error   { return nil }
func (r *Recorder) Deinit() error { return nil }

func (r *Recorder) Size() (int, int) {
	return r.Columns, r.Rows
}

func (r *Recorder) Clear() {
	r.Cells = r.Cells[:0]
}

// RenderLoop runs frames back to back without sleeping.
func (r *Recorder) RenderLoop(framePeriod time.Duration, render func(now time.Time) bool) {
	for render(time.Now()) {
		r.Frames++
	}
	r.Frames++
}

func (r *Recorder) Fill(row, column int, message string) {
	r.Cells = append(r.Cells, Cell{Row: row, Column: column, Message: message})
}

func (r *Recorder) FillColor(row, column int, c color.RGBA, message string) {
	r.Cells = append(r.Cells, Cell{Row: row, Column: column, Color: c, Message: message})
}

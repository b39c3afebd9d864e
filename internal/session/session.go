// Package session ties a parsed chart to the audio clock and draws the
// playfield once per frame.
package session

import (
	"fmt"
	"log/slog"
	"time"

	"git.lost.host/meutraa/maniac/internal/config"
	"git.lost.host/meutraa/maniac/internal/game"
	"git.lost.host/meutraa/maniac/internal/render"
	"git.lost.host/meutraa/maniac/internal/theme"
	"git.lost.host/meutraa/maniac/internal/timeline"
	"github.com/google/uuid"
)

// Clock reports how far into the song playback is.
type Clock interface {
	Position() time.Duration
}

type lengther interface {
	Length() time.Duration
}

type Session struct {
	ID string

	chart    *game.Chart
	notes    []game.Note
	clock    Clock
	theme    theme.Theme
	settings config.Settings
	logger   *slog.Logger

	offTrack int
	end      int64
}

func New(chart *game.Chart, clock Clock, th theme.Theme, settings config.Settings) *Session {
	s := &Session{
		ID:       uuid.New().String(),
		chart:    chart,
		notes:    chart.Notes,
		clock:    clock,
		theme:    th,
		settings: settings,
		end:      chart.Last() + settings.TailPadding.Milliseconds(),
	}
	s.logger = slog.Default().With("session", s.ID)

	if !timeline.IsSorted(s.notes) {
		s.logger.Info("notes are out of order, sorting", "chart", chart.Name)
		s.notes = timeline.Sorted(s.notes)
	}
	for _, n := range s.notes {
		if !n.InLane(chart.LaneCount) {
			s.offTrack++
		}
	}
	if s.offTrack > 0 {
		s.logger.Warn("notes outside of the track will not be drawn",
			"count", s.offTrack, "lanes", chart.LaneCount)
	}
	s.logger.Info("session ready",
		"chart", chart.String(), "notes", len(s.notes), "lanes", chart.LaneCount)
	return s
}

// OffTrack counts the notes whose lane is outside the playfield.
func (s *Session) OffTrack() int {
	return s.offTrack
}

// Now is the current song time in milliseconds, corrected by the audio offset.
func (s *Session) Now() int64 {
	return (s.clock.Position() + s.settings.AudioOffset).Milliseconds()
}

// Frame draws every note at its position for the current song time. It
// returns false once the last note is well past the judgement line.
func (s *Session) Frame(c *render.Canvas) bool {
	now := s.Now()
	st := s.settings

	c.Clear()
	c.HLine(st.JudgementLineY, s.theme.JudgementColor(), s.theme.JudgementLine())

	lanes := s.chart.LaneCount
	for _, note := range s.notes {
		if !note.InLane(lanes) {
			continue
		}
		y := timeline.PositionFor(note, now, st.JudgementLineY, st.ScrollSpeed)
		x := st.TrackLeft + float64(note.Lane)*st.LaneWidth
		c.Rect(x, y, st.NoteWidth, st.NoteHeight,
			s.theme.NoteColor(note.Lane, lanes), s.theme.NoteGlyph(note.Lane, lanes))
	}

	c.Text(0, 0, s.chart.String())
	c.Text(0, st.CanvasHeight-1, s.status(now))

	return now <= s.end
}

func (s *Session) status(now int64) string {
	elapsed := time.Duration(now) * time.Millisecond
	if l, ok := s.clock.(lengther); ok {
		return fmt.Sprintf("%8v / %v  %v notes", elapsed, l.Length().Round(time.Second), len(s.notes))
	}
	return fmt.Sprintf("%8v  %v notes", elapsed, len(s.notes))
}

// Package timeline turns the hit object section of a beatmap into notes and
// maps note times onto the vertical axis of the playfield.
package timeline

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"git.lost.host/meutraa/maniac/internal/game"
)

const (
	// SectionHeader marks the start of the note lines.
	SectionHeader = "[HitObjects]"

	// ReferenceTrackWidth is the width of the beatmap coordinate space.
	ReferenceTrackWidth = 512

	// MaxCoordinate bounds the magnitude of an x coordinate. Real beatmaps
	// stay within the track; anything this far out is corrupt.
	MaxCoordinate = 1 << 16
)

var (
	ErrMalformedNoteLine = errors.New("malformed note line")
	ErrInvalidLaneCount  = errors.New("lane count must be positive")
)

type MalformedNoteLineError struct {
	Line   int // 1-based line number within the parsed text
	Text   string
	Reason string
}

func (e *MalformedNoteLineError) Error() string {
	return fmt.Sprintf("line %d %q: %s", e.Line, e.Text, e.Reason)
}

func (e *MalformedNoteLineError) Is(target error) bool {
	return target == ErrMalformedNoteLine
}

// Parse returns one note per non-empty line following the section header,
// in file order. Text without a header yields no notes.
func Parse(text string, laneCount int) ([]game.Note, error) {
	if laneCount < 1 {
		return nil, ErrInvalidLaneCount
	}

	lines := strings.Split(text, "\n")
	start := headerIndex(lines)
	if start < 0 {
		return nil, nil
	}

	var notes []game.Note
	for i := start + 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		note, err := parseLine(line, laneCount)
		if nil != err {
			return nil, &MalformedNoteLineError{Line: i + 1, Text: line, Reason: err.Error()}
		}
		notes = append(notes, note)
	}
	return notes, nil
}

func headerIndex(lines []string) int {
	for i, line := range lines {
		if strings.TrimSpace(line) == SectionHeader {
			return i
		}
	}
	return -1
}

// x,y,time[,type,hitSound,...]
func parseLine(line string, laneCount int) (game.Note, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 3 {
		return game.Note{}, fmt.Errorf("expected at least 3 fields, got %d", len(fields))
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if nil != err || math.IsNaN(x) || math.IsInf(x, 0) {
		return game.Note{}, fmt.Errorf("position %q is not a number", fields[0])
	}
	if math.Abs(x) > MaxCoordinate {
		return game.Note{}, fmt.Errorf("position %q is out of range", fields[0])
	}

	ms, err := strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64)
	if nil != err {
		return game.Note{}, fmt.Errorf("timestamp %q is not an integer", fields[2])
	}

	return game.Note{TimestampMs: ms, Lane: Lane(x, laneCount)}, nil
}

// Lane maps a beatmap x coordinate onto a lane index. The result is not
// clamped, so coordinates outside the track give lanes outside [0, laneCount).
// x must be within MaxCoordinate, as Parse guarantees, or the conversion to
// int is undefined.
func Lane(x float64, laneCount int) int {
	return int(math.Floor(x / ReferenceTrackWidth * float64(laneCount)))
}

// PositionFor returns the vertical pixel of a note at the given playback
// time. Notes above the judgement line have not been reached yet.
func PositionFor(note game.Note, currentTimeMs int64, judgementLineY, scrollSpeed float64) float64 {
	return judgementLineY - float64(note.TimestampMs-currentTimeMs)*scrollSpeed*0.5
}

func IsSorted(notes []game.Note) bool {
	return sort.SliceIsSorted(notes, func(i, j int) bool {
		return notes[i].TimestampMs < notes[j].TimestampMs
	})
}

// Sorted returns a copy of notes in ascending time order. Notes sharing a
// timestamp keep their file order.
func Sorted(notes []game.Note) []game.Note {
	out := make([]game.Note, len(notes))
	copy(out, notes)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TimestampMs < out[j].TimestampMs
	})
	return out
}

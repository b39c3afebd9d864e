package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings describe the playfield on a virtual canvas. The renderer scales
// the canvas to the terminal.
type Settings struct {
	CanvasWidth    float64       `yaml:"canvas_width"`
	CanvasHeight   float64       `yaml:"canvas_height"`
	JudgementLineY float64       `yaml:"judgement_line_y"`
	TrackLeft      float64       `yaml:"track_left"`
	LaneWidth      float64       `yaml:"lane_width"`
	NoteWidth      float64       `yaml:"note_width"`
	NoteHeight     float64       `yaml:"note_height"`
	ScrollSpeed    float64       `yaml:"scroll_speed"`
	AudioOffset    time.Duration `yaml:"audio_offset"`
	DefaultLanes   int           `yaml:"default_lanes"`
	TailPadding    time.Duration `yaml:"tail_padding"`
}

func Defaults() Settings {
	return Settings{
		CanvasWidth:    800,
		CanvasHeight:   600,
		JudgementLineY: 550,
		LaneWidth:      50,
		NoteWidth:      40,
		NoteHeight:     10,
		ScrollSpeed:    24.0,
		AudioOffset:    183 * time.Millisecond,
		DefaultLanes:   4,
		TailPadding:    5 * time.Second,
	}
}

// Load reads a YAML settings file on top of the defaults. Keys missing from
// the file keep their default value.
func Load(path string) (Settings, error) {
	s := Defaults()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if nil != err {
		return s, fmt.Errorf("unable to read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); nil != err {
		return s, fmt.Errorf("unable to parse settings %v: %w", path, err)
	}
	return s, s.Validate()
}

func (s Settings) Validate() error {
	switch {
	case s.CanvasWidth <= 0 || s.CanvasHeight <= 0:
		return fmt.Errorf("canvas must have a positive size, got %vx%v", s.CanvasWidth, s.CanvasHeight)
	case s.LaneWidth <= 0:
		return fmt.Errorf("lane width must be positive, got %v", s.LaneWidth)
	case s.NoteWidth <= 0 || s.NoteHeight <= 0:
		return fmt.Errorf("note must have a positive size, got %vx%v", s.NoteWidth, s.NoteHeight)
	case s.DefaultLanes < 1:
		return fmt.Errorf("default lanes must be positive, got %v", s.DefaultLanes)
	}
	return nil
}

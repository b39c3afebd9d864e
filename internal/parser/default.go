package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"git.lost.host/meutraa/maniac/internal/game"
	"git.lost.host/meutraa/maniac/internal/timeline"
)

const formatHeader = "osu file format v"

var ErrNotBeatmap = errors.New("missing osu file format header")

type section int

const (
	secNone section = iota
	secGeneral
	secMetadata
	secDifficulty
	secHitObjects
)

type DefaultParser struct {
	DefaultLanes int // Used for charts that do not carry a key count
	Lanes        int // Overrides the key count of every chart when non zero
}

func (p *DefaultParser) Parse(name string, text string) (*game.Chart, error) {
	text = strings.TrimPrefix(text, "\ufeff")
	meta, err := p.parseMetadata(text)
	if nil != err {
		return nil, fmt.Errorf("unable to read %v: %w", name, err)
	}

	lanes := p.laneCount(meta)
	notes, err := timeline.Parse(text, lanes)
	if nil != err {
		return nil, fmt.Errorf("unable to read notes of %v: %w", name, err)
	}

	return &game.Chart{
		Name:      name,
		Metadata:  meta,
		LaneCount: lanes,
		Notes:     notes,
	}, nil
}

func (p *DefaultParser) laneCount(meta game.Metadata) int {
	if p.Lanes > 0 {
		return p.Lanes
	}
	if meta.Mode == game.ModeMania && meta.CircleSize > 0 {
		keys := int(meta.CircleSize)
		if keys > game.MaxManiaKeyCount {
			keys = game.MaxManiaKeyCount
		}
		if keys < 1 {
			keys = 1
		}
		return keys
	}
	if p.DefaultLanes > 0 {
		return p.DefaultLanes
	}
	return 4
}

func (p *DefaultParser) parseMetadata(text string) (game.Metadata, error) {
	var meta game.Metadata
	lines := strings.Split(text, "\n")

	// The header is the first non-empty line
	first := 0
	for first < len(lines) && strings.TrimSpace(lines[first]) == "" {
		first++
	}
	if first == len(lines) {
		return meta, ErrNotBeatmap
	}
	header := strings.TrimSpace(lines[first])
	if !strings.HasPrefix(strings.ToLower(header), formatHeader) {
		return meta, fmt.Errorf("%w: %q", ErrNotBeatmap, header)
	}
	version, err := strconv.Atoi(strings.TrimSpace(header[len(formatHeader):]))
	if nil != err {
		return meta, fmt.Errorf("invalid format version %q: %w", header, err)
	}
	meta.FormatVersion = version

	sec := secNone
	for _, line := range lines[first+1:] {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			switch strings.ToLower(line) {
			case "[general]":
				sec = secGeneral
			case "[metadata]":
				sec = secMetadata
			case "[difficulty]":
				sec = secDifficulty
			case "[hitobjects]":
				sec = secHitObjects
			default:
				sec = secNone
			}
			continue
		}

		switch sec {
		case secGeneral:
			k, v := splitKeyVal(line)
			switch strings.ToLower(k) {
			case "audiofilename":
				meta.AudioFilename = strings.ReplaceAll(strings.Trim(v, "\""), "\\", "/")
			case "mode":
				meta.Mode = parseInt(v, game.ModeStandard)
			}
		case secMetadata:
			k, v := splitKeyVal(line)
			switch strings.ToLower(k) {
			case "title":
				meta.Title = v
			case "artist":
				meta.Artist = v
			case "creator":
				meta.Creator = v
			case "version":
				meta.Version = v
			}
		case secDifficulty:
			k, v := splitKeyVal(line)
			if strings.EqualFold(k, "circlesize") {
				meta.CircleSize = parseFloat(v, 0)
			}
		case secHitObjects:
			// Notes are left to the timeline
			return meta, nil
		}
	}
	return meta, nil
}

func splitKeyVal(line string) (key, val string) {
	i := strings.Index(line, ":")
	if i < 0 {
		return strings.TrimSpace(line), ""
	}
	return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:])
}

func parseInt(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if nil != err {
		return def
	}
	return v
}

func parseFloat(s string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if nil != err {
		return def
	}
	return v
}

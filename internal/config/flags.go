package config

import (
	"time"

	"gopkg.in/alecthomas/kingpin.v2"
)

const Version = "0.1.0"

var (
	app = kingpin.New("maniac", "Play osu!mania beatmaps in the terminal")

	Source      = app.Arg("source", "URL or path of a .osz beatmap set").Required().String()
	Skin        = app.Flag("skin", "URL or path of a .osk skin to inspect").String()
	Difficulty  = app.Flag("difficulty", "Part of the difficulty name to play").Short('D').String()
	Lanes       = app.Flag("lanes", "Lane count, 0 reads it from the beatmap").Short('l').Default("0").Int()
	Offset      = app.Flag("offset", "Audio offset").Short('o').Action(markSet(&offsetSet)).Duration()
	ScrollSpeed = app.Flag("scroll-speed", "Scroll speed").Short('s').Action(markSet(&scrollSpeedSet)).Float64()
	Delay       = app.Flag("delay", "Start delay").Default("1.5s").Short('d').Duration()
	FramePeriod = app.Flag("frame-period", "Render frame period").Default("16ms").Short('p').Duration()
	Timeout     = app.Flag("timeout", "Download timeout").Default("10m").Duration()
	File        = app.Flag("config", "YAML settings file").Short('c').ExistingFile()
	LogFile     = app.Flag("log-file", "Log destination").Default("maniac.log").String()
	Debug       = app.Flag("debug", "Verbose logging").Bool()

	// Zero is a valid offset, so overrides are tracked by use, not value.
	offsetSet, scrollSpeedSet bool
)

func markSet(set *bool) kingpin.Action {
	return func(*kingpin.ParseContext) error {
		*set = true
		return nil
	}
}

func init() {
	app.Version(Version)
	app.HelpFlag.Short('h')
}

// Parse reads the command line and returns the settings file merged with
// any flag overrides.
func Parse(args []string) (Settings, error) {
	offsetSet, scrollSpeedSet = false, false
	if _, err := app.Parse(args); nil != err {
		return Settings{}, err
	}
	s, err := Load(*File)
	if nil != err {
		return s, err
	}
	var o overrides
	if offsetSet {
		o.offset = Offset
	}
	if scrollSpeedSet {
		o.scrollSpeed = ScrollSpeed
	}
	s = apply(s, o)
	return s, s.Validate()
}

type overrides struct {
	offset      *time.Duration
	scrollSpeed *float64
}

func apply(s Settings, o overrides) Settings {
	if nil != o.offset {
		s.AudioOffset = *o.offset
	}
	if nil != o.scrollSpeed {
		s.ScrollSpeed = *o.scrollSpeed
	}
	return s
}

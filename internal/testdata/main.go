package testdata

import (
	"archive/zip"
	"bytes"
	"sort"
)

// Beatmap is a trimmed 4 key mania difficulty.
const Beatmap = `osu file format v14

[General]
AudioFilename: audio.mp3
AudioLeadIn: 0
PreviewTime: 1200
Mode: 3

[Metadata]
Title:Sample Song
TitleUnicode:Sample Song
Artist:Someone
Creator:mapper
Version:Normal
BeatmapID:1
BeatmapSetID:1

[Difficulty]
HPDrainRate:7
CircleSize:4
OverallDifficulty:7
ApproachRate:5

[TimingPoints]
0,500,4,2,0,60,1,0

[HitObjects]
64,192,500,1,0,0:0:0:0:
192,192,1000,1,0,0:0:0:0:
320,192,1500,128,0,1800:0:0:0:0:
448,192,2000,1,0,0:0:0:0:
`

// Hard is a 7 key difficulty of the same set.
const Hard = `osu file format v14

[General]
AudioFilename: audio.mp3
Mode: 3

[Metadata]
Title:Sample Song
Artist:Someone
Version:Hard 7K

[Difficulty]
CircleSize:7

[HitObjects]
36,192,250,1,0,0:0:0:0:
109,192,500,1,0,0:0:0:0:
475,192,750,1,0,0:0:0:0:
`

// Broken has a note line without a timestamp.
const Broken = `osu file format v14

[Metadata]
Version:Broken

[HitObjects]
64,192,500,1,0,0:0:0:0:
64,192
`

// Zip builds an in memory archive holding the given entries.
func Zip(entries map[string]string) []byte {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, name := range names {
		f, err := w.Create(name)
		if nil != err {
			panic(err)
		}
		if _, err := f.Write([]byte(entries[name])); nil != err {
			panic(err)
		}
	}
	if err := w.Close(); nil != err {
		panic(err)
	}
	return buf.Bytes()
}

// Osz builds a beatmap set archive with two difficulties and a fake audio file.
func Osz() []byte {
	return Zip(map[string]string{
		"Someone - Sample Song (mapper) [Normal].osu":  Beatmap,
		"Someone - Sample Song (mapper) [Hard 7K].osu": Hard,
		"audio.mp3": "ID3",
		"bg.jpg":    "",
	})
}

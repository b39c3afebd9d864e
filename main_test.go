package main

import (
	"errors"
	"testing"

	"git.lost.host/meutraa/maniac/internal/osz"
	"git.lost.host/meutraa/maniac/internal/parser"
	"git.lost.host/meutraa/maniac/internal/testdata"
	"git.lost.host/meutraa/maniac/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectChart(t *testing.T) {
	arch, err := osz.Open(testdata.Osz())
	require.NoError(t, err)
	psr := &parser.DefaultParser{DefaultLanes: 4}

	chart, err := selectChart(arch, psr, "")
	require.NoError(t, err)
	assert.Equal(t, "Hard 7K", chart.Metadata.Version)
	assert.Equal(t, 7, chart.LaneCount)

	chart, err = selectChart(arch, psr, "norm")
	require.NoError(t, err)
	assert.Equal(t, "Normal", chart.Metadata.Version)
	assert.Equal(t, "audio.mp3", chart.Metadata.AudioFilename)

	_, err = selectChart(arch, psr, "insane")
	assert.Error(t, err)
}

func TestSelectChartSkipsBroken(t *testing.T) {
	arch, err := osz.Open(testdata.Zip(map[string]string{
		"a.osu": testdata.Broken,
		"b.osu": testdata.Beatmap,
	}))
	require.NoError(t, err)
	psr := &parser.DefaultParser{}

	chart, err := selectChart(arch, psr, "")
	require.NoError(t, err)
	assert.Equal(t, "b.osu", chart.Name)

	_, err = selectChart(arch, psr, "broken")
	assert.True(t, errors.Is(err, timeline.ErrMalformedNoteLine))
}

func TestSelectChartNoBeatmap(t *testing.T) {
	arch, err := osz.Open(testdata.Zip(map[string]string{"audio.mp3": ""}))
	require.NoError(t, err)

	_, err = selectChart(arch, &parser.DefaultParser{}, "")
	assert.ErrorIs(t, err, osz.ErrNoBeatmap)
}

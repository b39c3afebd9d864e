package timeline

import (
	"errors"
	"testing"

	"git.lost.host/meutraa/maniac/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSingleNote(t *testing.T) {
	notes, err := Parse("[HitObjects]\n100,192,500\n", 4)
	require.NoError(t, err)
	assert.Equal(t, []game.Note{{TimestampMs: 500, Lane: 0}}, notes)
}

func TestParseWithoutHeader(t *testing.T) {
	notes, err := Parse("no header\n100,192,500\n", 4)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestParseKeepsFileOrder(t *testing.T) {
	text := "osu file format v14\r\n" +
		"\r\n" +
		"[General]\r\n" +
		"Mode: 3\r\n" +
		"\r\n" +
		"[HitObjects]\r\n" +
		"64,192,1000,1,0,0:0:0:0:\r\n" +
		"448,192,900,1,0,0:0:0:0:\r\n" +
		"\r\n" +
		"192,192,1200,128,0,1500:0:0:0:0:\r\n" +
		"320,192,1200,1,0,0:0:0:0:\r\n"

	notes, err := Parse(text, 4)
	require.NoError(t, err)
	assert.Equal(t, []game.Note{
		{TimestampMs: 1000, Lane: 0},
		{TimestampMs: 900, Lane: 3},
		{TimestampMs: 1200, Lane: 1},
		{TimestampMs: 1200, Lane: 2},
	}, notes)
}

func TestParseOnlyAfterHeader(t *testing.T) {
	notes, err := Parse("1,2,3\n[HitObjects]\n256,0,10\n", 2)
	require.NoError(t, err)
	assert.Equal(t, []game.Note{{TimestampMs: 10, Lane: 1}}, notes)
}

func TestParseIsIdempotent(t *testing.T) {
	text := "[HitObjects]\n0,0,1\n511,0,2\n128,0,3\n"
	a, err := Parse(text, 7)
	require.NoError(t, err)
	b, err := Parse(text, 7)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParseMalformed(t *testing.T) {
	tests := map[string]int{
		"[HitObjects]\n500,192,bogus\n":          2,
		"[HitObjects]\n100,192\n":                2,
		"[HitObjects]\n100,192,500\nx,192,600\n": 3,
		"[HitObjects]\n100,192,500.5\n":          2,
		"\n[HitObjects]\n\n100\n":                4,
		"[HitObjects]\nNaN,192,500\n":            2,
		"[HitObjects]\n1e300,192,500\n":          2,
		"[HitObjects]\n-65537,192,500\n":         2,
	}
	for text, line := range tests {
		notes, err := Parse(text, 4)
		assert.Nil(t, notes, text)
		require.Error(t, err, text)
		assert.True(t, errors.Is(err, ErrMalformedNoteLine), text)

		var malformed *MalformedNoteLineError
		require.True(t, errors.As(err, &malformed), text)
		assert.Equal(t, line, malformed.Line, text)
	}
}

func TestParseRejectsLaneCount(t *testing.T) {
	_, err := Parse("[HitObjects]\n100,192,500\n", 0)
	assert.ErrorIs(t, err, ErrInvalidLaneCount)
}

func TestLaneIsNotClamped(t *testing.T) {
	assert.Equal(t, 0, Lane(0, 4))
	assert.Equal(t, 3, Lane(511, 4))
	assert.Equal(t, 4, Lane(512, 4))
	assert.Equal(t, -1, Lane(-10, 4))
	assert.Equal(t, 6, Lane(448, 7))
}

func TestPositionFor(t *testing.T) {
	assert.Equal(t, 550.0, PositionFor(game.Note{TimestampMs: 1000}, 1000, 550, 24))
	assert.Equal(t, -650.0, PositionFor(game.Note{TimestampMs: 1100}, 1000, 550, 24))
	assert.Equal(t, 560.0, PositionFor(game.Note{TimestampMs: 1000}, 1020, 550, 1))
}

func TestSorted(t *testing.T) {
	notes := []game.Note{
		{TimestampMs: 300, Lane: 0},
		{TimestampMs: 100, Lane: 1},
		{TimestampMs: 300, Lane: 2},
		{TimestampMs: 200, Lane: 3},
	}
	assert.False(t, IsSorted(notes))

	sorted := Sorted(notes)
	assert.True(t, IsSorted(sorted))
	assert.Equal(t, []game.Note{
		{TimestampMs: 100, Lane: 1},
		{TimestampMs: 200, Lane: 3},
		{TimestampMs: 300, Lane: 0},
		{TimestampMs: 300, Lane: 2},
	}, sorted)
	assert.Equal(t, int64(300), notes[0].TimestampMs)
}

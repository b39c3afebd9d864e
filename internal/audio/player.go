// Package audio decodes and plays the song of a beatmap and reports the
// playback position used to drive the playfield.
package audio

import (
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
)

var ErrUnsupportedFormat = errors.New("unsupported audio format")

type decoder func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)

func decoderFor(name string) (decoder, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".mp3":
		return mp3.Decode, nil
	case ".ogg":
		return vorbis.Decode, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, name)
}

type Player struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	done     chan struct{}

	mu      sync.Mutex
	startAt time.Time
	started bool
}

// Open decodes rc according to the extension of name. The player owns rc.
func Open(name string, rc io.ReadCloser) (*Player, error) {
	decode, err := decoderFor(name)
	if nil != err {
		rc.Close()
		return nil, err
	}
	streamer, format, err := decode(rc)
	if nil != err {
		rc.Close()
		return nil, fmt.Errorf("unable to decode %v: %w", name, err)
	}
	return &Player{
		streamer: streamer,
		format:   format,
		done:     make(chan struct{}),
	}, nil
}

// Start initialises the speaker and begins playback after delay.
func (p *Player) Start(delay time.Duration) error {
	if err := speaker.Init(p.format.SampleRate, p.format.SampleRate.N(time.Second/60)); nil != err {
		return fmt.Errorf("unable to open speaker: %w", err)
	}

	p.mu.Lock()
	p.startAt = time.Now().Add(delay)
	p.mu.Unlock()

	go func() {
		time.Sleep(delay)
		p.mu.Lock()
		p.started = true
		p.mu.Unlock()
		speaker.Play(beep.Seq(p.streamer, beep.Callback(func() {
			close(p.done)
		})))
	}()
	return nil
}

// Position is negative while waiting for the start delay to pass.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	started, startAt := p.started, p.startAt
	p.mu.Unlock()

	if !started {
		if startAt.IsZero() {
			return 0
		}
		if d := time.Until(startAt); d > 0 {
			return -d
		}
		return 0
	}

	speaker.Lock()
	n := p.streamer.Position()
	speaker.Unlock()
	return p.format.SampleRate.D(n)
}

// Length is the duration of the whole song.
func (p *Player) Length() time.Duration {
	return p.format.SampleRate.D(p.streamer.Len())
}

// Done is closed once the whole song has been played.
func (p *Player) Done() <-chan struct{} {
	return p.done
}

func (p *Player) Close() error {
	speaker.Clear()
	return p.streamer.Close()
}

package audio

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

type closer struct {
	io.Reader
	closed bool
}

func (c *closer) Close() error {
	c.closed = true
	return nil
}

var decoderTests = map[string]bool{
	"audio.mp3":    true,
	"AUDIO.MP3":    true,
	"dir/song.ogg": true,
	"song.wav":     false,
	"song":         false,
	"song.mp3.bak": false,
}

func TestDecoderFor(t *testing.T) {
	for name, ok := range decoderTests {
		d, err := decoderFor(name)
		if ok != (nil == err) || ok != (nil != d) {
			t.Log("Name    ", name)
			t.Log("Error   ", err)
			t.Log("Expected", ok)
			t.Fail()
		}
		if !ok && !errors.Is(err, ErrUnsupportedFormat) {
			t.Log("Error", err)
			t.Fail()
		}
	}
}

func TestOpenUnsupportedClosesReader(t *testing.T) {
	rc := &closer{Reader: strings.NewReader("RIFF")}
	_, err := Open("song.wav", rc)
	if !errors.Is(err, ErrUnsupportedFormat) || !rc.closed {
		t.Log("Error ", err)
		t.Log("Closed", rc.closed)
		t.Fail()
	}
}

var undecodable = map[string]string{
	"song.ogg": "RIFF",
	"song.mp3": "",
}

func TestOpenUndecodableClosesReader(t *testing.T) {
	for name, data := range undecodable {
		rc := &closer{Reader: strings.NewReader(data)}
		p, err := Open(name, rc)
		if nil == err || nil != p || !rc.closed {
			t.Log("Name  ", name)
			t.Log("Error ", err)
			t.Log("Closed", rc.closed)
			t.Fail()
		}
	}
}

func TestPositionBeforeStart(t *testing.T) {
	p := &Player{}
	if p.Position() != 0 {
		t.Fail()
	}

	p.startAt = time.Now().Add(time.Hour)
	if pos := p.Position(); pos >= 0 || pos < -time.Hour {
		t.Log("Position", pos)
		t.Fail()
	}

	p.startAt = time.Now().Add(-time.Second)
	if pos := p.Position(); pos != 0 {
		t.Log("Position", pos)
		t.Fail()
	}
}

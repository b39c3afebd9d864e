// Package osz reads beatmap set (.osz) and skin (.osk) archives. Both are
// plain zip files.
package osz

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
)

var (
	ErrNoBeatmap = errors.New("no .osu file found in archive")
	ErrNoAudio   = errors.New("no audio file found in archive")
	ErrNotFound  = errors.New("file not found in archive")
)

var audioExts = [...]string{".mp3", ".ogg"}

type Archive struct {
	files map[string]*zip.File
	names []string
}

func Open(data []byte) (*Archive, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if nil != err {
		return nil, fmt.Errorf("unable to open archive: %w", err)
	}

	a := &Archive{files: make(map[string]*zip.File, len(zr.File))}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		a.files[f.Name] = f
		a.names = append(a.names, f.Name)
	}
	sort.Strings(a.names)
	return a, nil
}

// Files lists every regular file in the archive, sorted by name.
func (a *Archive) Files() []string {
	return append([]string(nil), a.names...)
}

func (a *Archive) Beatmaps() ([]string, error) {
	var out []string
	for _, name := range a.names {
		if strings.EqualFold(path.Ext(name), ".osu") {
			out = append(out, name)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoBeatmap
	}
	return out, nil
}

// Audio picks the song file. The beatmap's own AudioFilename wins, otherwise
// the first mp3 or ogg in the archive is used.
func (a *Archive) Audio(preferred string) (string, error) {
	if preferred != "" {
		for _, name := range a.names {
			if strings.EqualFold(name, preferred) {
				return name, nil
			}
		}
	}
	for _, name := range a.names {
		ext := strings.ToLower(path.Ext(name))
		for _, ae := range audioExts {
			if ext == ae {
				return name, nil
			}
		}
	}
	return "", ErrNoAudio
}

type readSeekCloser struct {
	*bytes.Reader
}

func (readSeekCloser) Close() error { return nil }

// Open returns the whole, seekable content of an entry.
func (a *Archive) Open(name string) (io.ReadCloser, error) {
	data, err := a.read(name)
	if nil != err {
		return nil, err
	}
	return readSeekCloser{bytes.NewReader(data)}, nil
}

func (a *Archive) ReadText(name string) (string, error) {
	data, err := a.read(name)
	if nil != err {
		return "", err
	}
	return string(data), nil
}

func (a *Archive) read(name string) ([]byte, error) {
	f, ok := a.files[name]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, name)
	}
	rc, err := f.Open()
	if nil != err {
		return nil, fmt.Errorf("unable to open %v: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if nil != err {
		return nil, fmt.Errorf("unable to read %v: %w", name, err)
	}
	return data, nil
}

// Package input watches the keyboard for requests to stop playback. Notes
// are never hit tested, so no lane keys are mapped.
package input

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/eiannone/keyboard"
)

type Listener struct {
	quit chan struct{}
	once sync.Once
}

func isQuit(ev keyboard.KeyEvent) bool {
	switch ev.Key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return true
	}
	return ev.Rune == 'q' || ev.Rune == 'Q'
}

// Listen opens the keyboard until ctx is done or a quit key is pressed.
func Listen(ctx context.Context) (*Listener, error) {
	keys, err := keyboard.GetKeys(16)
	if nil != err {
		return nil, fmt.Errorf("unable to open keyboard: %w", err)
	}
	l := &Listener{quit: make(chan struct{})}
	go l.watch(ctx, keys)
	return l, nil
}

func (l *Listener) watch(ctx context.Context, keys <-chan keyboard.KeyEvent) {
	for {
		select {
		case <-ctx.Done():
			l.stop()
			return
		case ev, ok := <-keys:
			if !ok {
				l.stop()
				return
			}
			if nil != ev.Err {
				log.Println("unable to read key", ev.Err)
				continue
			}
			if isQuit(ev) {
				l.stop()
				return
			}
		}
	}
}

func (l *Listener) stop() {
	l.once.Do(func() { close(l.quit) })
}

// Quit is closed once the player asked to stop.
func (l *Listener) Quit() <-chan struct{} {
	return l.quit
}

func (l *Listener) Close() error {
	l.stop()
	return keyboard.Close()
}

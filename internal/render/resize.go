//go:build !windows

package render

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bep/debounce"
)

const resizeSettle = 100 * time.Millisecond

// WatchResize refreshes the cached terminal size once a burst of SIGWINCH
// signals has settled.
func (r *DefaultRenderer) WatchResize(ctx context.Context) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGWINCH)
	debounced := debounce.New(resizeSettle)

	go func() {
		defer signal.Stop(sigs)
		for {
			select {
			case <-ctx.Done():
				return
			case <-sigs:
				debounced(func() {
					if err := r.updateSize(); nil != err {
						log.Println("unable to resize", err)
					}
				})
			}
		}
	}()
}

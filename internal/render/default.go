package render

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

type DefaultRenderer struct {
	Out io.Writer // Defaults to stdout

	buffer       strings.Builder
	restoreState *term.State
	fd           int

	mu            sync.Mutex
	columns, rows int
}

func (r *DefaultRenderer) out() io.Writer {
	if nil == r.Out {
		return os.Stdout
	}
	return r.Out
}

func (r *DefaultRenderer) Init() error {
	r.fd = int(os.Stdout.Fd())
	if err := r.updateSize(); nil != err {
		return err
	}

	state, err := term.MakeRaw(r.fd)
	if nil != err {
		return fmt.Errorf("unable to make terminal raw: %w", err)
	}
	r.restoreState = state

	fmt.Fprintf(r.out(), "%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[J",      // Clear the screen
	)
	return nil
}

func (r *DefaultRenderer) Deinit() error {
	fmt.Fprintf(r.out(), "%s%s",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	if nil == r.restoreState {
		return nil
	}
	return term.Restore(r.fd, r.restoreState)
}

func (r *DefaultRenderer) updateSize() error {
	columns, rows, err := term.GetSize(r.fd)
	if nil != err {
		return fmt.Errorf("unable to get terminal size: %w", err)
	}
	r.SetSize(columns, rows)
	return nil
}

func (r *DefaultRenderer) SetSize(columns, rows int) {
	r.mu.Lock()
	r.columns, r.rows = columns, rows
	r.mu.Unlock()
}

func (r *DefaultRenderer) Size() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.columns, r.rows
}

func (r *DefaultRenderer) RenderLoop(
	framePeriod time.Duration,
	render func(now time.Time) bool,
) {
	cont := true
	for cont {
		now := time.Now()
		deadline := now.Add(framePeriod)

		cont = render(now)
		r.flush()

		time.Sleep(time.Until(deadline))
	}
}

// Clear blanks the whole screen as part of the next flush.
func (r *DefaultRenderer) Clear() {
	r.buffer.WriteString("\033[H\033[2J")
}

func (r *DefaultRenderer) Fill(row, column int, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(column))
	r.buffer.WriteString("H")
	r.buffer.WriteString(message)
}

func (r *DefaultRenderer) FillColor(row, column int, c color.RGBA, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(column))
	r.buffer.WriteString("H\033[38;2;")
	r.buffer.WriteString(strconv.FormatInt(int64(c.R), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.G), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.B), 10))
	r.buffer.WriteString("m")
	r.buffer.WriteString(message)
	r.buffer.WriteString("\033[0m")
}

func (r *DefaultRenderer) flush() {
	io.WriteString(r.out(), r.buffer.String())
	r.buffer.Reset()
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"git.lost.host/meutraa/maniac/internal/audio"
	"git.lost.host/meutraa/maniac/internal/config"
	"git.lost.host/meutraa/maniac/internal/fetch"
	"git.lost.host/meutraa/maniac/internal/game"
	"git.lost.host/meutraa/maniac/internal/input"
	"git.lost.host/meutraa/maniac/internal/osz"
	"git.lost.host/meutraa/maniac/internal/parser"
	"git.lost.host/meutraa/maniac/internal/render"
	"git.lost.host/meutraa/maniac/internal/session"
	"git.lost.host/meutraa/maniac/internal/theme"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

// initLogger sends slog and the stdlib log package to a file, since the
// terminal belongs to the playfield while a song is running.
func initLogger(path string, debug bool) (func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if nil != err {
		return nil, fmt.Errorf("unable to open log file: %w", err)
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})))
	return f.Close, nil
}

// selectChart parses the difficulties of a set in name order and returns the
// first one whose version contains difficulty. Charts that fail to parse are
// skipped; when nothing matches the first failure is returned.
func selectChart(arch *osz.Archive, psr parser.Parser, difficulty string) (*game.Chart, error) {
	names, err := arch.Beatmaps()
	if nil != err {
		return nil, err
	}

	var firstErr error
	for _, name := range names {
		text, err := arch.ReadText(name)
		if nil == err {
			var chart *game.Chart
			chart, err = psr.Parse(name, text)
			if nil == err {
				if strings.Contains(strings.ToLower(chart.Metadata.Version), strings.ToLower(difficulty)) {
					return chart, nil
				}
				slog.Debug("skipping difficulty", "name", name, "version", chart.Metadata.Version)
				continue
			}
		}
		slog.Warn("unable to parse beatmap", "name", name, "err", err)
		if nil == firstErr {
			firstErr = err
		}
	}
	if nil != firstErr {
		return nil, firstErr
	}
	return nil, fmt.Errorf("no difficulty matching %q in %v", difficulty, names)
}

func inspectSkin(ctx context.Context, f *fetch.Fetcher, source string) {
	data, err := f.Load(ctx, source)
	if nil != err {
		slog.Error("unable to load skin", "source", source, "err", err)
		return
	}
	files, err := osz.ListSkin(data)
	if nil != err {
		slog.Error("unable to open skin", "source", source, "err", err)
		return
	}
	slog.Info("skin loaded", "source", source, "files", len(files))
	for _, name := range files {
		slog.Debug("skin file", "name", name)
	}
}

func run() error {
	settings, err := config.Parse(os.Args[1:])
	if nil != err {
		return err
	}

	closeLog, err := initLogger(*config.LogFile, *config.Debug)
	if nil != err {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Ensure our Default implementations are used as interfaces
	var r render.Renderer = &render.DefaultRenderer{}
	var th theme.Theme = &theme.DefaultTheme{Palette: theme.ManiaPalette}
	var psr parser.Parser = &parser.DefaultParser{DefaultLanes: settings.DefaultLanes, Lanes: *config.Lanes}

	fetcher := fetch.New(*config.Timeout)
	slog.Info("loading beatmap set", "source", *config.Source)
	data, err := fetcher.Load(ctx, *config.Source)
	if nil != err {
		return fmt.Errorf("unable to load beatmap set: %w", err)
	}
	arch, err := osz.Open(data)
	if nil != err {
		return err
	}
	for _, name := range arch.Files() {
		slog.Debug("set file", "name", name)
	}

	if *config.Skin != "" {
		inspectSkin(ctx, fetcher, *config.Skin)
	}

	chart, err := selectChart(arch, psr, *config.Difficulty)
	if nil != err {
		return err
	}

	audioFile, err := arch.Audio(chart.Metadata.AudioFilename)
	if nil != err {
		return err
	}
	slog.Info("opening audio", "file", audioFile, "chart", chart.Name)
	rc, err := arch.Open(audioFile)
	if nil != err {
		return err
	}
	player, err := audio.Open(audioFile, rc)
	if nil != err {
		return err
	}
	defer player.Close()

	keys, err := input.Listen(ctx)
	if nil != err {
		return err
	}
	defer keys.Close()

	// Clear the screen and hide the cursor
	if err := r.Init(); nil != err {
		return err
	}
	defer func() {
		// Restore the terminal state
		if err := r.Deinit(); nil != err {
			log.Println("unable to restore terminal", err)
		}
	}()
	if dr, ok := r.(*render.DefaultRenderer); ok {
		dr.WatchResize(ctx)
	}

	s := session.New(chart, player, th, settings)
	canvas := render.NewCanvas(r, settings.CanvasWidth, settings.CanvasHeight)

	if err := player.Start(*config.Delay); nil != err {
		return err
	}

	r.RenderLoop(*config.FramePeriod, func(now time.Time) bool {
		select {
		case <-keys.Quit():
			return false
		case <-player.Done():
			return false
		default:
		}
		return s.Frame(canvas)
	})

	if errors.Is(ctx.Err(), context.Canceled) {
		slog.Info("interrupted", "session", s.ID)
	}
	return nil
}

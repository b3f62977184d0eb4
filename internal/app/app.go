// Package app assembles the shell: a desktop window, the host window
// methods, the engine session and the event loop.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"scrap/internal/browser"
	"scrap/internal/config"
	"scrap/internal/embedder"
	"scrap/internal/engine"
	"scrap/internal/host"
	"scrap/internal/input"
	"scrap/internal/platform"
	"scrap/internal/platform/desktop"
	"scrap/internal/render"
	"scrap/internal/resources"
)

type App struct {
	cfg       *config.Config
	args      []string
	log       *slog.Logger
	clipboard Clipboard
	dialogs   Dialogs
}

// New returns an app for cfg. args are the command line arguments after
// the flags; the first absolute URL among them is loaded at startup.
func New(cfg *config.Config, args []string, log *slog.Logger) *App {
	if log == nil {
		log = host.NopLogger()
	}
	return &App{
		cfg:       cfg,
		args:      args,
		log:       log,
		clipboard: &systemClipboard{},
		dialogs:   nativeDialogs{},
	}
}

// Run opens the window and blocks until it closes. It must be called from
// the main goroutine.
func (a *App) Run() error {
	bundle := resources.NewBundle()
	digest, err := bundle.Digest()
	if err != nil {
		return fmt.Errorf("hash resources: %w", err)
	}
	a.log.Info("resources ready", "digest", digest)

	queue := platform.NewQueue()
	surface := render.NewSurface(a.cfg.Window.Width, a.cfg.Window.Height)
	native := desktop.New(platform.WindowConfig{
		Title:    a.cfg.Window.Title,
		WidthPx:  a.cfg.Window.Width,
		HeightPx: a.cfg.Window.Height,
	}, queue, surface, a.log)
	window := host.NewWindow(native, surface, queue.Proxy(), host.WithLogger(a.log))

	session, err := browser.NewSession(window, engine.New(bundle, engine.WithLogger(a.log)),
		browser.WithLogger(a.log),
		browser.WithMaxRounds(a.cfg.Session.MaxFlushRounds),
		browser.WithInput(input.Config{
			ClickTolerance: a.cfg.Input.ClickTolerance,
			LineHeight:     a.cfg.Input.LineHeight,
		}),
	)
	if err != nil {
		return err
	}
	ext := &extensions{
		native:    native,
		clipboard: a.clipboard,
		dialogs:   a.dialogs,
		title:     a.cfg.Window.Title,
		log:       a.log,
	}
	session.HandleMessages(ext.handle)

	start := startURL(a.args, a.cfg.StartURL)
	a.log.Info("opening browser", "url", start)
	session.Send(embedder.NewBrowser{URL: start, ID: embedder.NewBrowserID()})

	loop := browser.NewLoop(queue, session, a.log)
	done := make(chan error, 1)
	go func() {
		done <- loop.Run()
	}()

	runErr := native.Run()
	native.Close()
	loopErr := <-done
	if runErr != nil {
		return runErr
	}
	if loopErr != nil && !errors.Is(loopErr, platform.ErrClosed) {
		return loopErr
	}
	return nil
}

// startURL returns the first absolute URL in args, or fallback parsed.
func startURL(args []string, fallback string) *url.URL {
	for _, arg := range args {
		if u, err := url.Parse(arg); err == nil && u.IsAbs() {
			return u
		}
	}
	u, err := url.Parse(fallback)
	if err != nil || !u.IsAbs() {
		return nil
	}
	return u
}

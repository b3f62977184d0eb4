// Package engine is a small in-process stand-in for the hosted rendering
// engine. It speaks the same contract as a real engine binding: it asks
// before navigating, animates page loads, paints into the host surface and
// answers Quit with Shutdown. Pages are not fetched; the renderer draws the
// browser chrome and a summary of the current location.
package engine

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"golang.org/x/image/font"

	"scrap/internal/embedder"
	"scrap/internal/host"
	"scrap/internal/resources"
	"scrap/internal/ui"
)

const defaultLoadDuration = 600 * time.Millisecond

type Option func(*Engine)

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithLoadDuration sets how long a simulated page load animates for.
func WithLoadDuration(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.loadDuration = d
		}
	}
}

type Engine struct {
	window embedder.WindowMethods
	waker  embedder.Waker
	theme  ui.Theme
	face   font.Face
	log    *slog.Logger

	now          func() time.Time
	loadDuration time.Duration

	homepage     string
	errorTitle   string
	outbox       []embedder.Envelope
	browser      embedder.BrowserID
	nextPipeline embedder.PipelineID
	requested    map[embedder.PipelineID]*url.URL

	current   *url.URL
	title     string
	status    string
	typed     []rune
	scrollY   float32
	loading   bool
	loadStart time.Time
	progress  float64
	dirty     bool
	quitting  bool
	layout    ui.Layout
}

// New returns a factory for engines that read their start-up data from res.
func New(res resources.Reader, opts ...Option) embedder.Factory {
	return func(window embedder.WindowMethods) (embedder.Engine, error) {
		e := &Engine{
			window:       window,
			theme:        ui.DefaultTheme(),
			log:          host.NopLogger(),
			now:          time.Now,
			loadDuration: defaultLoadDuration,
			requested:    make(map[embedder.PipelineID]*url.URL),
			progress:     -1,
			dirty:        true,
		}
		for _, opt := range opts {
			opt(e)
		}
		if err := e.loadResources(res); err != nil {
			return nil, err
		}
		e.face = loadFace()
		e.waker = window.CreateWaker()
		window.SetAnimationState(embedder.AnimationIdle)
		return e, nil
	}
}

func (e *Engine) loadResources(res resources.Reader) error {
	data, err := res.Read(resources.Preferences)
	if err != nil {
		return fmt.Errorf("load preferences: %w", err)
	}
	var prefs map[string]any
	if err := json.Unmarshal(data, &prefs); err != nil {
		return fmt.Errorf("parse preferences: %w", err)
	}
	if home, ok := prefs["shell.homepage"].(string); ok {
		e.homepage = home
	}
	page, err := res.Read(resources.NetErrorHTML)
	if err != nil {
		return fmt.Errorf("load error page: %w", err)
	}
	e.errorTitle = htmlTitle(page)
	return nil
}

func (e *Engine) send(browser embedder.BrowserID, msg embedder.Message) {
	e.outbox = append(e.outbox, embedder.Envelope{Browser: browser, Message: msg})
}

// Events drains the messages produced since the last call.
func (e *Engine) Events() []embedder.Envelope {
	out := e.outbox
	e.outbox = nil
	return out
}

func (e *Engine) HandleEvents(events []embedder.Event) {
	for _, ev := range events {
		e.handle(ev)
	}
	e.advance()
	if e.dirty && !e.quitting {
		e.composite()
	}
}

func (e *Engine) handle(ev embedder.Event) {
	switch ev := ev.(type) {
	case embedder.NewBrowser:
		e.browser = ev.ID
		e.requestNavigation(ev.URL)
	case embedder.AllowNavigationResponse:
		u, ok := e.requested[ev.Pipeline]
		if !ok {
			return
		}
		delete(e.requested, ev.Pipeline)
		if !ev.Allowed {
			e.status = e.errorTitle
			e.dirty = true
			return
		}
		e.startLoad(u)
	case embedder.Resize, embedder.Refresh:
		e.dirty = true
	case embedder.Scroll:
		e.scrollY -= ev.Delta.Y
		if e.scrollY > 0 {
			e.scrollY = 0
		}
		e.dirty = true
	case embedder.MouseButtonEvent:
		e.mouse(ev)
	case embedder.Keyboard:
		e.key(ev.KeyboardEvent)
	case embedder.ClipboardContents:
		e.typed = append(e.typed, []rune(ev.Text)...)
		e.dirty = true
	case embedder.SelectedFiles:
		if len(ev.Paths) > 0 {
			e.requestNavigation(&url.URL{Scheme: "file", Path: ev.Paths[0]})
		}
	case embedder.Quit:
		e.quitting = true
		e.send(embedder.NoBrowser, embedder.Shutdown{})
	}
}

func (e *Engine) mouse(ev embedder.MouseButtonEvent) {
	if ev.Action != embedder.MouseClick {
		return
	}
	switch ev.Button {
	case embedder.ButtonMiddle:
		e.send(e.browser, embedder.GetClipboardContents{})
	case embedder.ButtonRight:
		if e.current != nil {
			e.send(e.browser, embedder.SetClipboardContents{Text: e.current.String()})
			e.status = "Copied location"
			e.dirty = true
		}
	}
}

func (e *Engine) key(ev embedder.KeyboardEvent) {
	if ev.State != embedder.KeyDown {
		return
	}
	switch ev.Key {
	case embedder.KeyEnter:
		e.submit()
	case embedder.KeyBackspace:
		if len(e.typed) > 0 {
			e.typed = e.typed[:len(e.typed)-1]
		}
	default:
		if r, ok := ev.Key.Character(); ok {
			e.typed = append(e.typed, r)
		}
	}
	e.dirty = true
}

// submit navigates to the typed address. An empty address opens a file
// picker instead.
func (e *Engine) submit() {
	text := string(e.typed)
	if text == "" {
		e.send(e.browser, embedder.SelectFiles{Filters: []string{"html", "htm"}})
		return
	}
	u, err := url.Parse(text)
	if err != nil || !u.IsAbs() {
		e.send(e.browser, embedder.Alert{Text: fmt.Sprintf("%q is not a valid address", text)})
		return
	}
	e.typed = e.typed[:0]
	e.requestNavigation(u)
}

func (e *Engine) requestNavigation(u *url.URL) {
	if u == nil {
		home, err := url.Parse(e.homepage)
		if err != nil {
			return
		}
		u = home
	}
	e.nextPipeline++
	e.requested[e.nextPipeline] = u
	e.send(e.browser, embedder.AllowNavigationRequest{Pipeline: e.nextPipeline, URL: u.String()})
}

func (e *Engine) startLoad(u *url.URL) {
	e.current = u
	e.title = u.Host
	if e.title == "" {
		e.title = u.String()
	}
	e.scrollY = 0
	e.loading = true
	e.loadStart = e.now()
	e.progress = 0
	e.status = "Loading " + u.String()
	e.dirty = true
	e.window.SetAnimationState(embedder.AnimationAnimating)
	e.send(e.browser, embedder.LoadStart{})
	e.log.Debug("load started", "url", u.String())

	// Completion is signalled from another goroutine, as a network thread
	// would.
	waker := e.waker.Clone()
	d := e.loadDuration
	go func() {
		time.Sleep(d)
		waker.Wake()
	}()
}

// advance moves any running load animation forward.
func (e *Engine) advance() {
	if !e.loading {
		return
	}
	elapsed := e.now().Sub(e.loadStart)
	e.progress = float64(elapsed) / float64(e.loadDuration)
	e.dirty = true
	if e.progress < 1 {
		return
	}
	e.loading = false
	e.progress = -1
	e.status = "Done"
	e.window.SetAnimationState(embedder.AnimationIdle)
	e.send(e.browser, embedder.LoadComplete{})
	e.send(e.browser, embedder.ChangePageTitle{Title: e.title})
	e.log.Debug("load complete", "url", e.current.String())
}

func (e *Engine) composite() {
	if !e.window.PrepareForComposite() {
		return
	}
	e.paint(e.window.Surface().Back())
	e.window.Present()
	e.dirty = false
}

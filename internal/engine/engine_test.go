package engine

import (
	"errors"
	"net/url"
	"reflect"
	"testing"
	"time"

	"scrap/internal/browser"
	"scrap/internal/embedder"
	"scrap/internal/host"
	"scrap/internal/platform"
	"scrap/internal/platform/headless"
	"scrap/internal/render"
	"scrap/internal/resources"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

type harness struct {
	clock  *clock
	window *host.Window
	native *headless.Window
	queue  *platform.Queue
	engine *Engine
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	surface := render.NewSurface(400, 300)
	native := headless.New().CreateWindow(platform.WindowConfig{WidthPx: 400, HeightPx: 300}, surface)
	q := platform.NewQueue()
	h := &harness{
		clock:  &clock{t: time.Unix(1000, 0)},
		window: host.NewWindow(native, surface, q.Proxy()),
		native: native,
		queue:  q,
	}
	eng, err := New(resources.NewBundle(), WithClock(h.clock.now), WithLoadDuration(time.Second))(h.window)
	if err != nil {
		t.Fatal(err)
	}
	h.engine = eng.(*Engine)
	return h
}

func messages(envs []embedder.Envelope) []embedder.Message {
	var out []embedder.Message
	for _, env := range envs {
		out = append(out, env.Message)
	}
	return out
}

func TestNewBrowserAsksBeforeNavigating(t *testing.T) {
	h := newHarness(t)
	u, _ := url.Parse("https://example.org/")
	h.engine.HandleEvents([]embedder.Event{embedder.NewBrowser{URL: u, ID: 5}})

	envs := h.engine.Events()
	if len(envs) != 1 || envs[0].Browser != 5 {
		t.Fatalf("unexpected envelopes %#v", envs)
	}
	req, ok := envs[0].Message.(embedder.AllowNavigationRequest)
	if !ok || req.URL != "https://example.org/" {
		t.Fatalf("expected navigation request, got %#v", envs[0].Message)
	}
	if h.window.Animating() {
		t.Fatal("must not start loading before permission")
	}
}

func TestLoadAnimatesUntilComplete(t *testing.T) {
	h := newHarness(t)
	u, _ := url.Parse("https://example.org/")
	h.engine.HandleEvents([]embedder.Event{embedder.NewBrowser{URL: u, ID: 1}})
	req := h.engine.Events()[0].Message.(embedder.AllowNavigationRequest)

	h.engine.HandleEvents([]embedder.Event{embedder.AllowNavigationResponse{Pipeline: req.Pipeline, Allowed: true}})
	if !h.window.Animating() {
		t.Fatal("expected animating during load")
	}
	if got := messages(h.engine.Events()); !reflect.DeepEqual(got, []embedder.Message{embedder.LoadStart{}}) {
		t.Fatalf("unexpected messages %#v", got)
	}
	frames := h.window.Surface().Frames()

	h.clock.t = h.clock.t.Add(500 * time.Millisecond)
	h.engine.HandleEvents(nil)
	if !h.window.Animating() {
		t.Fatal("still loading half way")
	}
	if h.window.Surface().Frames() <= frames {
		t.Fatal("each animation step should present a frame")
	}

	h.clock.t = h.clock.t.Add(time.Second)
	h.engine.HandleEvents([]embedder.Event{embedder.Idle{}})
	if h.window.Animating() {
		t.Fatal("expected idle after load")
	}
	want := []embedder.Message{embedder.LoadComplete{}, embedder.ChangePageTitle{Title: "example.org"}}
	if got := messages(h.engine.Events()); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected messages %#v", got)
	}
}

func TestLoadWakesHost(t *testing.T) {
	h := newHarness(t)
	h.engine.loadDuration = 5 * time.Millisecond
	u, _ := url.Parse("https://example.org/")
	h.engine.startLoad(u)

	got := make(chan platform.Event, 1)
	go func() {
		ev, _ := h.queue.Wait()
		got <- ev
	}()
	select {
	case ev := <-got:
		if ev.Type != platform.EventAwakened {
			t.Fatalf("expected awakened, got %v", ev.Type)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("engine never woke the host")
	}
}

func TestDeniedNavigationDoesNotLoad(t *testing.T) {
	h := newHarness(t)
	h.engine.HandleEvents([]embedder.Event{embedder.NewBrowser{ID: 1}})
	req := h.engine.Events()[0].Message.(embedder.AllowNavigationRequest)
	if req.URL != "https://servo.org" {
		t.Fatalf("nil URL should fall back to the homepage, got %q", req.URL)
	}
	h.engine.HandleEvents([]embedder.Event{embedder.AllowNavigationResponse{Pipeline: req.Pipeline}})
	if h.window.Animating() || h.engine.current != nil {
		t.Fatal("denied navigation must not load")
	}
	if h.engine.status != "Error loading page" {
		t.Fatalf("unexpected status %q", h.engine.status)
	}
}

func typeText(s string) []embedder.Event {
	var out []embedder.Event
	for _, r := range s {
		ke := embedder.DefaultKeyboardEvent()
		ke.Key = embedder.CharacterKey(r)
		out = append(out, embedder.Keyboard{KeyboardEvent: ke})
	}
	return out
}

func enter() embedder.Event {
	ke := embedder.DefaultKeyboardEvent()
	ke.Key = embedder.KeyEnter
	return embedder.Keyboard{KeyboardEvent: ke}
}

func TestTypedAddress(t *testing.T) {
	h := newHarness(t)
	h.engine.browser = 2

	events := typeText("https://go.devx")
	backspace := embedder.DefaultKeyboardEvent()
	backspace.Key = embedder.KeyBackspace
	events = append(events, embedder.Keyboard{KeyboardEvent: backspace}, enter())
	h.engine.HandleEvents(events)

	envs := h.engine.Events()
	if len(envs) != 1 {
		t.Fatalf("unexpected envelopes %#v", envs)
	}
	if req, ok := envs[0].Message.(embedder.AllowNavigationRequest); !ok || req.URL != "https://go.dev" {
		t.Fatalf("unexpected message %#v", envs[0].Message)
	}
	if len(h.engine.typed) != 0 {
		t.Fatal("address should be cleared after submit")
	}
}

func TestInvalidAddressAlerts(t *testing.T) {
	h := newHarness(t)
	h.engine.HandleEvents(append(typeText("nope"), enter()))
	got := messages(h.engine.Events())
	if len(got) != 1 {
		t.Fatalf("unexpected messages %#v", got)
	}
	if _, ok := got[0].(embedder.Alert); !ok {
		t.Fatalf("expected alert, got %#v", got[0])
	}
}

func TestEmptyAddressSelectsFile(t *testing.T) {
	h := newHarness(t)
	h.engine.HandleEvents([]embedder.Event{enter()})
	got := messages(h.engine.Events())
	if len(got) != 1 {
		t.Fatalf("unexpected messages %#v", got)
	}
	if _, ok := got[0].(embedder.SelectFiles); !ok {
		t.Fatalf("expected file selection, got %#v", got[0])
	}

	h.engine.HandleEvents([]embedder.Event{embedder.SelectedFiles{Paths: []string{"/tmp/index.html"}}})
	req, ok := h.engine.Events()[0].Message.(embedder.AllowNavigationRequest)
	if !ok || req.URL != "file:///tmp/index.html" {
		t.Fatalf("unexpected request %#v", req)
	}
}

func TestClipboardClicks(t *testing.T) {
	h := newHarness(t)
	h.engine.current, _ = url.Parse("https://example.org/a")
	h.engine.HandleEvents([]embedder.Event{
		embedder.MouseButtonEvent{Action: embedder.MouseClick, Button: embedder.ButtonRight},
		embedder.MouseButtonEvent{Action: embedder.MouseClick, Button: embedder.ButtonMiddle},
		embedder.MouseButtonEvent{Action: embedder.MouseDown, Button: embedder.ButtonMiddle},
	})
	want := []embedder.Message{
		embedder.SetClipboardContents{Text: "https://example.org/a"},
		embedder.GetClipboardContents{},
	}
	if got := messages(h.engine.Events()); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected messages %#v", got)
	}
	h.engine.HandleEvents([]embedder.Event{embedder.ClipboardContents{Text: "abc"}})
	if string(h.engine.typed) != "abc" {
		t.Fatalf("pasted text not typed: %q", string(h.engine.typed))
	}
}

func TestQuitShutsDown(t *testing.T) {
	h := newHarness(t)
	frames := h.window.Surface().Frames()
	h.engine.HandleEvents([]embedder.Event{embedder.Quit{}, embedder.Refresh{}})
	got := h.engine.Events()
	if len(got) != 1 || got[0].Browser != embedder.NoBrowser {
		t.Fatalf("unexpected envelopes %#v", got)
	}
	if _, ok := got[0].Message.(embedder.Shutdown); !ok {
		t.Fatalf("expected shutdown, got %#v", got[0].Message)
	}
	if h.window.Surface().Frames() != frames {
		t.Fatal("no frames after quit")
	}
}

func TestScrollStopsAtTop(t *testing.T) {
	h := newHarness(t)
	h.engine.HandleEvents([]embedder.Event{embedder.Scroll{Delta: embedder.VectorF{Y: -50}}})
	if h.engine.scrollY != 0 {
		t.Fatalf("scrolled past the top: %v", h.engine.scrollY)
	}
	h.engine.HandleEvents([]embedder.Event{embedder.Scroll{Delta: embedder.VectorF{Y: 30}}})
	if h.engine.scrollY != -30 {
		t.Fatalf("unexpected scroll %v", h.engine.scrollY)
	}
}

type missingResources struct{ resources.Bundle }

func (missingResources) Read(kind resources.Kind) ([]byte, error) {
	return nil, resources.ErrUnknownResource
}

func TestFactoryFailsWithoutPreferences(t *testing.T) {
	h := newHarness(t)
	_, err := New(&missingResources{})(h.window)
	if !errors.Is(err, resources.ErrUnknownResource) {
		t.Fatalf("expected resource error, got %v", err)
	}
}

func TestSessionDrivesNavigation(t *testing.T) {
	h := newHarness(t)
	s, err := browser.NewSession(h.window, func(embedder.WindowMethods) (embedder.Engine, error) {
		return h.engine, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	u, _ := url.Parse("https://example.org/")
	s.Send(embedder.NewBrowser{URL: u, ID: embedder.NewBrowserID()})
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	if !h.window.Animating() {
		t.Fatal("navigation should have been approved and started")
	}
	if h.engine.current.String() != "https://example.org/" {
		t.Fatalf("unexpected location %v", h.engine.current)
	}
	if h.native.Swaps() == 0 {
		t.Fatal("expected presented frames")
	}
}

func TestHTMLTitle(t *testing.T) {
	tests := map[string]string{
		"<html><title> Hi </title></html>": "Hi",
		"<title>unterminated":              "",
		"no title":                         "",
	}
	for in, want := range tests {
		if got := htmlTitle([]byte(in)); got != want {
			t.Errorf("htmlTitle(%q) = %q, want %q", in, got, want)
		}
	}
}

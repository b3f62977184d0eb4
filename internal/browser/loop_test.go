package browser

import (
	"errors"
	"testing"

	"scrap/internal/embedder"
	"scrap/internal/platform"
)

// animateOn makes the engine start animating on mouse moves and stop on
// refreshes.
func animateOn(f *fixture) {
	f.engine.react = func(ev embedder.Event) []embedder.Envelope {
		switch ev.(type) {
		case embedder.MouseMove:
			f.engine.window.SetAnimationState(embedder.AnimationAnimating)
		case embedder.Refresh:
			f.engine.window.SetAnimationState(embedder.AnimationIdle)
		}
		return nil
	}
}

func TestLoopSwitchesModesOnAnimationState(t *testing.T) {
	f := newFixture(t)
	animateOn(f)
	loop := NewLoop(f.queue, f.session, nil)

	f.queue.Push(platform.Event{Type: platform.EventCursorMoved, X: 1, Y: 1})
	if err := loop.Iterate(); err != nil {
		t.Fatal(err)
	}
	if loop.Mode() != Blocking {
		t.Fatalf("first iteration should block, got %v", loop.Mode())
	}
	if !f.window.Animating() {
		t.Fatal("engine should be animating")
	}

	if err := loop.Iterate(); err != nil {
		t.Fatal(err)
	}
	if loop.Mode() != Polling {
		t.Fatalf("expected polling while animating, got %v", loop.Mode())
	}

	f.queue.Push(platform.Event{Type: platform.EventRefresh})
	if err := loop.Iterate(); err != nil {
		t.Fatal(err)
	}
	if loop.Mode() != Polling || f.window.Animating() {
		t.Fatalf("refresh should be handled in a polling pass and stop the animation")
	}

	f.queue.Push(platform.Event{Type: platform.EventResize})
	f.queue.Close()
	if err := loop.Iterate(); !errors.Is(err, platform.ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if loop.Mode() != Blocking {
		t.Fatalf("expected blocking once idle, got %v", loop.Mode())
	}
}

func TestBlockingBreaksAsSoonAsAnimating(t *testing.T) {
	f := newFixture(t)
	animateOn(f)
	loop := NewLoop(f.queue, f.session, nil)

	f.queue.Push(platform.Event{Type: platform.EventResize})
	f.queue.Push(platform.Event{Type: platform.EventCursorMoved, X: 2, Y: 2})
	f.queue.Push(platform.Event{Type: platform.EventAwakened})

	if err := loop.Iterate(); err != nil {
		t.Fatal(err)
	}
	got := f.engine.all()
	if len(got) != 2 {
		t.Fatalf("expected resize and move only, got %#v", got)
	}
	if _, ok := got[1].(embedder.MouseMove); !ok {
		t.Fatalf("expected the move last, got %#v", got[1])
	}
	// The wake notification is picked up by the polling pass.
	if err := loop.Iterate(); err != nil {
		t.Fatal(err)
	}
	got = f.engine.all()
	if _, ok := got[len(got)-1].(embedder.Idle); !ok {
		t.Fatalf("expected idle last, got %#v", got)
	}
}

func TestPollingFlushesEvenWithoutEvents(t *testing.T) {
	f := newFixture(t)
	f.window.SetAnimationState(embedder.AnimationAnimating)
	loop := NewLoop(f.queue, f.session, nil)

	for i := 0; i < 3; i++ {
		if err := loop.Iterate(); err != nil {
			t.Fatal(err)
		}
	}
	if f.session.Rounds() != 3 {
		t.Fatalf("expected one exchange per polling pass, got %d", f.session.Rounds())
	}
}

func TestQuitDoesNotStopLoop(t *testing.T) {
	f := newFixture(t)
	loop := NewLoop(f.queue, f.session, nil)

	f.queue.Push(platform.Event{Type: platform.EventClose})
	f.queue.Push(platform.Event{Type: platform.EventRefresh})
	f.queue.Close()

	if err := loop.Run(); !errors.Is(err, platform.ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	got := f.engine.all()
	if len(got) != 2 {
		t.Fatalf("expected quit then refresh, got %#v", got)
	}
	if _, ok := got[0].(embedder.Quit); !ok {
		t.Fatalf("expected quit first, got %#v", got[0])
	}
}

func TestLoopToleratesRoundLimit(t *testing.T) {
	f := newFixture(t, WithMaxRounds(2))
	f.engine.react = func(ev embedder.Event) []embedder.Envelope {
		if _, ok := ev.(embedder.Refresh); ok {
			return []embedder.Envelope{{Browser: 1, Message: embedder.AllowNavigationRequest{}}, {Browser: 1, Message: embedder.AllowNavigationRequest{}}}
		}
		return []embedder.Envelope{{Browser: 1, Message: embedder.AllowNavigationRequest{}}}
	}
	loop := NewLoop(f.queue, f.session, nil)
	f.queue.Push(platform.Event{Type: platform.EventRefresh})
	f.queue.Close()
	if err := loop.Run(); !errors.Is(err, platform.ErrClosed) {
		t.Fatalf("round limit should not end the loop, got %v", err)
	}
}

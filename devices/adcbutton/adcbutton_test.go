package adcbutton

import (
	"errors"
	"sync"
	"testing"

	"boardcode-go/errcode"
	"boardcode-go/event"
	"boardcode-go/internal/core"
	"boardcode-go/types"
)

type fakeADC struct {
	mu  sync.Mutex
	mv  int
	err error
}

func (f *fakeADC) set(mv int) {
	f.mu.Lock()
	f.mv = mv
	f.mu.Unlock()
}

func (f *fakeADC) ReadMillivolts(channel uint8) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mv, f.err
}

var recCfg = core.ButtonConfig{
	Name: "rec", Channel: 7, Index: 0, MinMV: 2310, MaxMV: 2510,
	PollMS: 1, DebounceMS: 3,
}

func TestNewValidatesArgs(t *testing.T) {
	if _, err := newButton(recCfg, nil, nil); err != errcode.InvalidArg {
		t.Fatalf("nil adc: err = %v", err)
	}
	bad := recCfg
	bad.MinMV, bad.MaxMV = 500, 500
	if _, err := newButton(bad, &fakeADC{}, nil); err != errcode.InvalidArg {
		t.Fatalf("empty window: err = %v", err)
	}
}

func TestDebounceRequiresConsecutiveSamples(t *testing.T) {
	adc := &fakeADC{mv: 0}
	b, err := newButton(recCfg, adc, nil)
	if err != nil {
		t.Fatalf("newButton: %v", err)
	}
	// needed = 3: two in-window samples are not enough.
	adc.set(2410)
	b.sample()
	b.sample()
	if b.Pressed() {
		t.Fatal("pressed before debounce completed")
	}
	b.sample()
	if !b.Pressed() {
		t.Fatal("pressed expected after three agreeing samples")
	}

	// One stray out-of-window sample must not release.
	adc.set(0)
	b.sample()
	if !b.Pressed() {
		t.Fatal("single stray sample released the button")
	}
	b.sample()
	b.sample()
	if b.Pressed() {
		t.Fatal("release expected after debounce")
	}
}

func TestOutOfWindowNeverPresses(t *testing.T) {
	adc := &fakeADC{mv: 1660} // play button's window, not rec's
	b, err := newButton(recCfg, adc, nil)
	if err != nil {
		t.Fatalf("newButton: %v", err)
	}
	for i := 0; i < 10; i++ {
		b.sample()
	}
	if b.Pressed() {
		t.Fatal("reading outside the window must not press")
	}
}

func TestReadErrorResetsStreak(t *testing.T) {
	adc := &fakeADC{mv: 2410}
	b, err := newButton(recCfg, adc, nil)
	if err != nil {
		t.Fatalf("newButton: %v", err)
	}
	b.sample()
	b.sample()
	adc.mu.Lock()
	adc.err = errors.New("adc busy")
	adc.mu.Unlock()
	b.sample()
	adc.mu.Lock()
	adc.err = nil
	adc.mu.Unlock()
	b.sample()
	if b.Pressed() {
		t.Fatal("error sample must restart debounce")
	}
}

func TestPublishesEdgeAndRetainedState(t *testing.T) {
	bus := event.New(4)
	adc := &fakeADC{mv: 2410}
	b, err := newButton(recCfg, adc, bus)
	if err != nil {
		t.Fatalf("newButton: %v", err)
	}
	sub := bus.Subscribe(event.T("button", "rec", "pressed"))
	defer sub.Close()

	for i := 0; i < 3; i++ {
		b.sample()
	}
	select {
	case m := <-sub.Channel():
		ev := m.Payload.(types.ButtonEvent)
		if !ev.Pressed || ev.Name != "rec" || ev.Index != 0 {
			t.Fatalf("bad event: %+v", ev)
		}
	default:
		t.Fatal("pressed edge not published")
	}

	// Retained state replays to a late subscriber.
	late := bus.Subscribe(event.T("button", "rec"))
	defer late.Close()
	select {
	case m := <-late.Channel():
		if !m.Payload.(types.ButtonEvent).Pressed {
			t.Fatal("retained state should be pressed")
		}
	default:
		t.Fatal("retained state missing")
	}
}

func TestFactoryBuildsRunningButton(t *testing.T) {
	adc := &fakeADC{}
	btn, err := Factory{}.New(recCfg, adc)
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	if btn.Pressed() {
		t.Fatal("fresh button must be released")
	}
	if err := btn.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	// Double close is fine.
	if err := btn.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

// Package adcbutton derives logical buttons from a shared ADC channel.
// Each button owns a voltage window; a reading inside the window means
// the button is held. Readings are debounced before a state change is
// accepted and published.
package adcbutton

import (
	"sync"
	"time"

	"boardcode-go/errcode"
	"boardcode-go/event"
	"boardcode-go/internal/core"
	"boardcode-go/types"
	"boardcode-go/x/mathx"
	"boardcode-go/x/timex"
)

const (
	defaultPollMS     = 16
	defaultDebounceMS = 48
)

// Factory implements core.ButtonFactory. When Bus is set, state changes
// are published as button/<name>/pressed|released events plus a retained
// button/<name> state message.
type Factory struct {
	Bus *event.Bus
}

func (f Factory) New(cfg core.ButtonConfig, adc core.MillivoltReader) (core.Button, error) {
	b, err := newButton(cfg, adc, f.Bus)
	if err != nil {
		return nil, err
	}
	go b.loop()
	return b, nil
}

type Button struct {
	cfg core.ButtonConfig
	adc core.MillivoltReader
	bus *event.Bus

	poll   time.Duration
	needed int // consecutive agreeing samples before a flip

	mu      sync.Mutex
	pressed bool

	raw    bool
	streak int

	stop     chan struct{}
	stopOnce sync.Once
}

func newButton(cfg core.ButtonConfig, adc core.MillivoltReader, bus *event.Bus) (*Button, error) {
	if adc == nil || cfg.MinMV >= cfg.MaxMV {
		return nil, errcode.InvalidArg
	}
	pollMS := cfg.PollMS
	if pollMS <= 0 {
		pollMS = defaultPollMS
	}
	debounceMS := cfg.DebounceMS
	if debounceMS <= 0 {
		debounceMS = defaultDebounceMS
	}
	needed := mathx.Max(1, debounceMS/pollMS)
	return &Button{
		cfg:    cfg,
		adc:    adc,
		bus:    bus,
		poll:   time.Duration(pollMS) * time.Millisecond,
		needed: needed,
		stop:   make(chan struct{}),
	}, nil
}

// Pressed reports the debounced state.
func (b *Button) Pressed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pressed
}

// Close stops the sampling loop. The shared ADC reader is owned by the
// board, not the button, and is left alone.
func (b *Button) Close() error {
	b.stopOnce.Do(func() { close(b.stop) })
	return nil
}

func (b *Button) loop() {
	t := time.NewTicker(b.poll)
	defer t.Stop()
	for {
		select {
		case <-b.stop:
			return
		case <-t.C:
			b.sample()
		}
	}
}

// sample takes one reading and advances the debounce state machine.
func (b *Button) sample() {
	mv, err := b.adc.ReadMillivolts(b.cfg.Channel)
	if err != nil {
		// Transient read errors reset the streak; state holds.
		b.streak = 0
		return
	}
	inWindow := mathx.Between(mv, b.cfg.MinMV, b.cfg.MaxMV)
	if inWindow != b.raw {
		b.raw = inWindow
		b.streak = 1
	} else if b.streak < b.needed {
		b.streak++
	}
	if b.streak < b.needed {
		return
	}

	b.mu.Lock()
	changed := b.pressed != inWindow
	b.pressed = inWindow
	b.mu.Unlock()

	if changed {
		b.publish(inWindow)
	}
}

func (b *Button) publish(pressed bool) {
	if b.bus == nil {
		return
	}
	edge := "released"
	if pressed {
		edge = "pressed"
	}
	ev := types.ButtonEvent{
		Name:    b.cfg.Name,
		Index:   b.cfg.Index,
		Pressed: pressed,
		TSms:    timex.NowMs(),
	}
	b.bus.Publish(&event.Message{Topic: event.T("button", b.cfg.Name, edge), Payload: ev})
	b.bus.Publish(&event.Message{Topic: event.T("button", b.cfg.Name), Payload: ev, Retained: true})
}

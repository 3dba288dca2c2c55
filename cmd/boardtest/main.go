// cmd/boardtest/main.go
//
// Host-side bring-up exerciser. Runs the whole board stack against the
// simulated providers: bus + codecs + buttons + indicator + volumes,
// then walks the button ladder and checks the events that come out.
package main

import (
	"fmt"
	"os"
	"time"

	"boardcode-go/board"
	"boardcode-go/boardcfg"
	"boardcode-go/devices/adcbutton"
	"boardcode-go/devices/ledstrip"
	"boardcode-go/event"
	"boardcode-go/internal/core"
	"boardcode-go/platform/sim"
	"boardcode-go/types"
)

// ---------- Configuration ----------

const (
	// How long a simulated press is held on the ladder.
	pressHold = 120 * time.Millisecond

	// How long we wait for a button event before declaring a miss.
	eventTimeout = 2 * time.Second

	// Idle ladder voltage, outside every button window.
	idleMV = 3100
)

// Pattern shown while a button is held.
const holdPattern = "blink_fast"

func main() {
	if err := run(); err != nil {
		fmt.Println("FAIL:", err)
		os.Exit(1)
	}
	fmt.Println("PASS")
}

func run() error {
	bus := event.New(16)
	adc := sim.NewADCUnit()
	strips := &sim.StripFactory{}

	profile := board.KorvoV1()
	if err := boardcfg.Apply(&profile); err != nil {
		return fmt.Errorf("apply config: %w", err)
	}

	b, err := board.New(profile, board.Providers{
		I2C:        sim.NewI2CController(),
		Audio:      sim.NewAudioPeripheral(),
		Codecs:     sim.CodecFactory{},
		ADC:        adc,
		Buttons:    adcbutton.Factory{Bus: bus},
		Indicators: ledstrip.Factory{Strips: strips},
		Assets:     sim.NewVolume(1 << 20),
		Slot:       sim.NewCardSlot(),
	}, bus)
	if err != nil {
		return err
	}

	// ---- Bring-up ----

	if err := b.BusInit(); err != nil {
		return fmt.Errorf("i2c init: %w", err)
	}
	spk, err := b.SpeakerInit()
	if err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	mic, err := b.MicrophoneInit()
	if err != nil {
		return fmt.Errorf("microphone init: %w", err)
	}
	fmt.Println("codecs up")

	if err := spk.Start(); err != nil {
		return fmt.Errorf("speaker start: %w", err)
	}
	if err := mic.Start(); err != nil {
		return fmt.Errorf("microphone start: %w", err)
	}

	if err := b.MountAssets(); err != nil {
		return fmt.Errorf("mount assets: %w", err)
	}
	if err := b.MountCard(); err != nil {
		return fmt.Errorf("mount card: %w", err)
	}
	fmt.Println("volumes mounted")

	// ---- Buttons and indicator ----

	adc.SetMillivolts(7, idleMV)

	buttons := make([]core.Button, b.ButtonCount())
	n, err := b.CreateButtons(buttons)
	if err != nil {
		return fmt.Errorf("buttons: built %d: %w", n, err)
	}
	defer func() {
		for _, btn := range buttons {
			_ = btn.Close()
		}
	}()

	indicators := make([]core.Indicator, 1)
	if _, err := b.CreateIndicators(indicators); err != nil {
		return fmt.Errorf("indicators: %w", err)
	}
	ind := indicators[0]
	defer ind.Close()

	// ---- Walk the ladder ----

	for _, bc := range b.Profile().Buttons {
		if err := pressAndCheck(bus, adc, ind, bc); err != nil {
			return err
		}
	}

	// ---- Tear down ----

	if err := ind.Stop(holdPattern); err != nil {
		return fmt.Errorf("indicator stop: %w", err)
	}
	if err := b.UnmountCard(); err != nil {
		return fmt.Errorf("unmount card: %w", err)
	}
	if err := b.UnmountAssets(); err != nil {
		return fmt.Errorf("unmount assets: %w", err)
	}
	_ = spk.Close()
	_ = mic.Close()
	if err := b.BusDeinit(); err != nil {
		return fmt.Errorf("i2c deinit: %w", err)
	}
	return nil
}

// pressAndCheck drives the ladder into one button's window, waits for
// the press event, releases, and waits for the release event.
func pressAndCheck(bus *event.Bus, adc *sim.ADCUnit, ind core.Indicator, bc core.ButtonConfig) error {
	pressed := bus.Subscribe(event.T("button", bc.Name, "pressed"))
	released := bus.Subscribe(event.T("button", bc.Name, "released"))
	defer pressed.Close()
	defer released.Close()

	mid := (bc.MinMV + bc.MaxMV) / 2
	adc.SetMillivolts(bc.Channel, mid)

	ev, err := waitEvent(pressed)
	if err != nil {
		return fmt.Errorf("%s: no press at %d mV: %w", bc.Name, mid, err)
	}
	fmt.Printf("[%s] pressed (%d mV)\n", ev.Name, mid)

	if err := ind.Start(holdPattern); err != nil {
		return fmt.Errorf("%s: indicator: %w", bc.Name, err)
	}

	time.Sleep(pressHold)
	adc.SetMillivolts(bc.Channel, idleMV)

	if _, err := waitEvent(released); err != nil {
		return fmt.Errorf("%s: no release: %w", bc.Name, err)
	}
	fmt.Printf("[%s] released\n", bc.Name)
	return nil
}

func waitEvent(sub *event.Subscription) (types.ButtonEvent, error) {
	select {
	case m := <-sub.Channel():
		ev, ok := m.Payload.(types.ButtonEvent)
		if !ok {
			return types.ButtonEvent{}, fmt.Errorf("unexpected payload %T", m.Payload)
		}
		return ev, nil
	case <-time.After(eventTimeout):
		return types.ButtonEvent{}, fmt.Errorf("timeout after %s", eventTimeout)
	}
}

// Package board wires vendor peripherals into the handful of calls an
// application needs at start-up: the shared I2C bus, the two audio codec
// paths, the button ladder, the indicator ring, and the two filesystem
// volumes.
//
// A Board owns the three process-wide handles (I2C state, ADC reader,
// mounted card) explicitly, so tests and multi-board hosts can hold
// independent instances. Initialization is expected to happen from a
// single goroutine before concurrent use begins; the methods do no
// internal locking.
package board

import (
	"boardcode-go/event"
	"boardcode-go/internal/core"
)

const tag = "korvo-1"

// Providers are the collaborator drivers a Board is built on. Platform
// packages supply real bindings; tests supply fakes.
type Providers struct {
	I2C        core.I2CController
	Audio      core.AudioPeripheral
	Codecs     core.CodecFactory
	ADC        core.ADCUnit
	Buttons    core.ButtonFactory
	Indicators core.IndicatorFactory
	Assets     core.Volume
	Slot       core.CardSlot
}

type Board struct {
	profile Profile
	p       Providers
	bus     *event.Bus

	i2cUp bool
	adc   core.MillivoltReader
	card  core.Card
}

// New builds a Board for the given profile. The profile's static tables
// are validated up front; a broken threshold table is a build error, not
// a field surprise.
func New(profile Profile, p Providers, bus *event.Bus) (*Board, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if bus == nil {
		bus = event.New(8)
	}
	return &Board{profile: profile, p: p, bus: bus}, nil
}

// Profile returns the static tables this board was built with.
func (b *Board) Profile() Profile { return b.profile }

// Events returns the bus that board devices publish on.
func (b *Board) Events() *event.Bus { return b.bus }

//go:build !esp32s3

package platform

import (
	"boardcode-go/board"
	"boardcode-go/devices/adcbutton"
	"boardcode-go/devices/ledstrip"
	"boardcode-go/event"
	"boardcode-go/platform/sim"
)

// Default returns simulated providers on host builds, so the same
// application code runs on a laptop and on the board.
func Default(bus *event.Bus) board.Providers {
	return board.Providers{
		I2C:        sim.NewI2CController(),
		Audio:      sim.NewAudioPeripheral(),
		Codecs:     sim.CodecFactory{},
		ADC:        sim.NewADCUnit(),
		Buttons:    adcbutton.Factory{Bus: bus},
		Indicators: ledstrip.Factory{Strips: &sim.StripFactory{}},
		Assets:     sim.NewVolume(1 << 20),
		Slot:       sim.NewCardSlot(),
	}
}

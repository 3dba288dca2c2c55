//go:build esp32s3

package platform

import (
	"boardcode-go/board"
	"boardcode-go/devices/adcbutton"
	"boardcode-go/devices/ledstrip"
	"boardcode-go/event"
)

// Default returns the real peripheral bindings. Requires a TinyGo
// toolchain with ESP32-S3 support.
func Default(bus *event.Bus) board.Providers {
	return board.Providers{
		I2C:        &i2cController{},
		Audio:      &audioPeripheral{},
		Codecs:     codecFactory{},
		ADC:        &adcUnit{},
		Buttons:    adcbutton.Factory{Bus: bus},
		Indicators: ledstrip.Factory{Strips: stripFactory{}},
		Assets:     newAssetsVolume(),
		Slot:       cardSlot{},
	}
}

//go:build esp32s3

package platform

import (
	"machine"

	"boardcode-go/errcode"
	"boardcode-go/internal/core"
)

// ---- I2C ----

type i2cController struct {
	configured bool
}

func (c *i2cController) Configure(cfg core.I2CConfig) error {
	err := machine.I2C0.Configure(machine.I2CConfig{
		SDA:       machine.Pin(cfg.SDA),
		SCL:       machine.Pin(cfg.SCL),
		Frequency: cfg.ClockHz,
	})
	if err != nil {
		return err
	}
	c.configured = true
	return nil
}

func (c *i2cController) Release() error {
	// The machine API has no driver uninstall; dropping our flag is all
	// the teardown there is.
	if !c.configured {
		return errcode.NotInitialized
	}
	c.configured = false
	return nil
}

func (c *i2cController) Bus() core.I2CBus { return machine.I2C0 }

// ---- ADC ----

// adcChannelPins maps ladder channels to package pins. Channel 7 is the
// button ladder input.
var adcChannelPins = map[uint8]machine.Pin{
	7: machine.Pin(8),
}

type adcUnit struct {
	acquired bool
}

func (a *adcUnit) Acquire() (core.MillivoltReader, error) {
	if !a.acquired {
		machine.InitADC()
		a.acquired = true
	}
	return adcReader{}, nil
}

func (a *adcUnit) Release() error {
	a.acquired = false
	return nil
}

type adcReader struct{}

func (adcReader) ReadMillivolts(channel uint8) (int, error) {
	pin, ok := adcChannelPins[channel]
	if !ok {
		return 0, errcode.InvalidArg
	}
	adc := machine.ADC{Pin: pin}
	adc.Configure(machine.ADCConfig{})
	raw := adc.Get()
	// Full scale is 3300 mV across the 16-bit normalised reading.
	return int(uint32(raw) * 3300 / 65535), nil
}

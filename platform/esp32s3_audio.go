//go:build esp32s3

package platform

import (
	"machine"

	"boardcode-go/errcode"
	"boardcode-go/internal/core"
	"boardcode-go/internal/drvshim"
)

// ---- Audio peripheral ----

// The streaming engine (I2S clocking and DMA) belongs to the SoC's audio
// block; this layer only pins down the rate and routing it was given and
// hands codecs their per-direction handles.
type i2sInterface struct {
	rate    uint32
	enabled bool
}

func (d *i2sInterface) SetSampleFrequency(hz uint32) error {
	d.rate = hz
	return nil
}

func (d *i2sInterface) Enable(on bool) { d.enabled = on }

type audioPeripheral struct {
	out, in *i2sInterface
}

func (a *audioPeripheral) Configure(cfg core.AudioConfig) error {
	if a.out != nil {
		return nil
	}
	for _, p := range []int{cfg.MCLK, cfg.BCLK, cfg.WS, cfg.DOUT, cfg.DIN} {
		machine.Pin(p).Configure(machine.PinConfig{Mode: machine.PinOutput})
	}
	a.out = &i2sInterface{rate: cfg.SampleHz}
	a.in = &i2sInterface{rate: cfg.SampleHz}
	return nil
}

func (a *audioPeripheral) Interface(dir core.Direction) (core.DataInterface, bool) {
	switch dir {
	case core.DirOut:
		if a.out != nil {
			return a.out, true
		}
	case core.DirIn:
		if a.in != nil {
			return a.in, true
		}
	}
	return nil, false
}

// ---- Codec factory ----

type codecFactory struct{}

func (codecFactory) NewGPIOPort() (core.GPIOPort, error) { return &machineGPIOPort{}, nil }

func (codecFactory) NewControlPort(bus core.I2CBus, addr uint16) (core.ControlPort, error) {
	if bus == nil {
		return nil, errcode.InvalidArg
	}
	return drvshim.NewRegPort(drvshim.NewBus(bus), addr), nil
}

func (codecFactory) NewCodec(cfg core.CodecConfig) (core.Codec, error) {
	if cfg.Control == nil || cfg.Data == nil {
		return nil, errcode.InvalidArg
	}
	if cfg.Direction == core.DirOut && cfg.GPIO != nil {
		if err := cfg.GPIO.ConfigureOutput(cfg.PAPin, false); err != nil {
			return nil, err
		}
	}
	return &machineCodec{cfg: cfg}, nil
}

type machineGPIOPort struct{}

func (machineGPIOPort) ConfigureOutput(pin int, initial bool) error {
	p := machine.Pin(pin)
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.Set(initial)
	return nil
}

func (machineGPIOPort) Set(pin int, level bool) { machine.Pin(pin).Set(level) }
func (machineGPIOPort) Close() error            { return nil }

type machineCodec struct {
	cfg core.CodecConfig
}

func (c *machineCodec) Start() error {
	if c.cfg.GPIO != nil {
		c.cfg.GPIO.Set(c.cfg.PAPin, true)
	}
	c.cfg.Data.Enable(true)
	return nil
}

func (c *machineCodec) Stop() error {
	c.cfg.Data.Enable(false)
	if c.cfg.GPIO != nil {
		c.cfg.GPIO.Set(c.cfg.PAPin, false)
	}
	return nil
}

func (c *machineCodec) Close() error {
	_ = c.Stop()
	_ = c.cfg.Control.Close()
	if c.cfg.GPIO != nil {
		_ = c.cfg.GPIO.Close()
	}
	return nil
}

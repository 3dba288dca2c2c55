// Package core defines the collaborator contracts the board package is
// built against. Real bindings (vendor peripherals, codec drivers, block
// devices) live under platform/; tests substitute fakes.
package core

import "boardcode-go/types"

// ---- I2C ----

// I2CBus is the raw transaction surface of a configured controller.
// Compatible with tinygo.org/x/drivers.I2C.
type I2CBus interface {
	Tx(addr uint16, w, r []byte) error
}

type I2CConfig struct {
	SDA, SCL int
	PullUp   bool
	ClockHz  uint32
}

// I2CController is the vendor I2C master driver. Configure installs the
// driver; Release tears it down. Bus is only valid between the two.
type I2CController interface {
	Configure(cfg I2CConfig) error
	Release() error
	Bus() I2CBus
}

// ---- Audio ----

type Direction uint8

const (
	DirOut Direction = iota // speaker path
	DirIn                   // microphone path
)

type AudioConfig struct {
	SampleHz uint32
	BitDepth uint8

	MCLK, BCLK, WS, DOUT, DIN int
}

// DataInterface is the streaming side of one audio direction (I2S).
type DataInterface interface {
	SetSampleFrequency(hz uint32) error
	Enable(on bool)
}

// AudioPeripheral owns the shared I2S block and amplifier supply.
// Configure prepares both directions in one shot; Interface reports the
// per-direction handle, false if the peripheral was never configured.
type AudioPeripheral interface {
	Configure(cfg AudioConfig) error
	Interface(dir Direction) (DataInterface, bool)
}

// ---- Codec construction ----

// ControlPort is a codec's register channel on the shared I2C bus.
type ControlPort interface {
	WriteReg(reg, val uint8) error
	ReadReg(reg uint8) (uint8, error)
	Close() error
}

// GPIOPort is the side-channel pin access some codecs need (power amp
// enable and similar).
type GPIOPort interface {
	ConfigureOutput(pin int, initial bool) error
	Set(pin int, level bool)
	Close() error
}

// HWGain describes the analog gain chain of an output path.
type HWGain struct {
	PAVoltage  float32
	DACVoltage float32
}

type CodecConfig struct {
	Direction Direction
	Control   ControlPort
	GPIO      GPIOPort // nil on input paths
	Data      DataInterface

	PAPin   int    // output only
	Gain    HWGain // output only
	MicMask uint8  // input only: bit per microphone to enable
}

// Codec is a configured audio device handle. Teardown is owner-managed.
type Codec interface {
	Start() error
	Stop() error
	Close() error
}

// CodecFactory wraps the vendor codec driver stack.
type CodecFactory interface {
	NewGPIOPort() (GPIOPort, error)
	NewControlPort(bus I2CBus, addr uint16) (ControlPort, error)
	NewCodec(cfg CodecConfig) (Codec, error)
}

// ---- ADC / buttons ----

// MillivoltReader samples one ADC channel and reports millivolts.
type MillivoltReader interface {
	ReadMillivolts(channel uint8) (int, error)
}

// ADCUnit is the shared ADC peripheral. Acquire is called once per
// process; the reader stays valid until Release.
type ADCUnit interface {
	Acquire() (MillivoltReader, error)
	Release() error
}

// ButtonConfig is one logical button's voltage window on a channel.
type ButtonConfig struct {
	Name    string
	Channel uint8
	Index   int
	MinMV   int
	MaxMV   int

	PollMS     int // 0 => implementation default
	DebounceMS int // 0 => implementation default
}

type Button interface {
	Pressed() bool
	Close() error
}

type ButtonFactory interface {
	New(cfg ButtonConfig, adc MillivoltReader) (Button, error)
}

// ---- LED strip / indicator ----

type StripModel uint8

const (
	ModelWS2812 StripModel = iota
	ModelSK6812
)

type StripConfig struct {
	Pin          int
	Count        int
	Model        StripModel
	InvertOut    bool
	ResolutionHz uint32
}

// Strip writes one colour per LED, in strip order.
type Strip interface {
	WriteColors(colors []types.RGB) error
}

type StripFactory interface {
	New(cfg StripConfig) (Strip, error)
}

type IndicatorConfig struct {
	Strip    StripConfig
	Patterns []types.BlinkPattern
}

// Indicator plays named blink patterns on a strip.
type Indicator interface {
	Start(pattern string) error
	Stop(pattern string) error
	Close() error
}

type IndicatorFactory interface {
	New(cfg IndicatorConfig) (Indicator, error)
}

// ---- Storage ----

type MountConfig struct {
	MountPoint   string
	Label        string
	MaxFiles     int
	FormatOnFail bool
}

// Volume is a mountable filesystem on a fixed block device.
type Volume interface {
	Mount() error
	Unmount() error
	Format() error
}

// StatProvider is implemented by volumes that can report capacity.
type StatProvider interface {
	Stats() (types.VolumeStats, error)
}

// SlotConfig wires the removable-card slot. Pins not listed are not
// connected on the board; Width is the number of data lines in use.
type SlotConfig struct {
	CLK, CMD, D0 int
	Width        uint8
	MountPoint   string
	MaxFiles     int
	FormatOnFail bool
	AllocUnit    uint32
}

// Card is a mounted removable card. The handle is required for unmount.
type Card interface {
	Unmount() error
}

type CardSlot interface {
	Mount(cfg SlotConfig) (Card, error)
}

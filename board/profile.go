package board

import (
	"boardcode-go/errcode"
	"boardcode-go/internal/core"
	"boardcode-go/types"
	"boardcode-go/x/mathx"
)

// Profile is the static description of one board variant: wiring, device
// addresses, the button voltage ladder, strip layout, and mount policy.
// It is plain data so a variant can be swapped without touching control
// flow.
type Profile struct {
	Name string

	I2C   core.I2CConfig
	Audio core.AudioConfig

	SpeakerAddr uint16
	MicAddr     uint16
	PowerAmpPin int
	SpeakerGain core.HWGain
	MicSelect   uint8

	Buttons []core.ButtonConfig

	Strip  core.StripConfig
	Blinks []types.BlinkPattern

	Assets core.MountConfig
	Card   core.SlotConfig
}

// Validate checks the static tables that would otherwise fail silently in
// the field: every button window must be non-empty and no two windows may
// overlap, or one reading could match two logical buttons.
func (p *Profile) Validate() error {
	for i := range p.Buttons {
		b := &p.Buttons[i]
		if b.MinMV >= b.MaxMV {
			return &errcode.E{C: errcode.BadThresholds, Op: "profile_validate",
				Msg: "empty window for button " + b.Name}
		}
	}
	for i := range p.Buttons {
		for j := i + 1; j < len(p.Buttons); j++ {
			a, b := &p.Buttons[i], &p.Buttons[j]
			if a.Channel == b.Channel && mathx.Overlaps(a.MinMV, a.MaxMV, b.MinMV, b.MaxMV) {
				return &errcode.E{C: errcode.BadThresholds, Op: "profile_validate",
					Msg: "windows overlap: " + a.Name + " and " + b.Name}
			}
		}
	}
	return nil
}

// Microphone selection bits for the input codec.
const (
	SelMic1 uint8 = 1 << 0
	SelMic2 uint8 = 1 << 1
	SelMic3 uint8 = 1 << 2
)

// Button ladder channel: all six buttons share one ADC channel and are
// told apart by voltage window.
const buttonChannel = 7

// KorvoV1 returns the profile for the Korvo v1 audio dev board: speaker
// DAC at 0x18, microphone array ADC at 0x40, six-button resistor ladder
// on ADC channel 7, a 12-LED WS2812 ring, a flash-backed assets volume,
// and a one-data-line SD slot.
func KorvoV1() Profile {
	return Profile{
		Name: "korvo-1",

		I2C: core.I2CConfig{SDA: 1, SCL: 2, PullUp: true, ClockHz: 400_000},

		Audio: core.AudioConfig{
			SampleHz: 16_000,
			BitDepth: 16,
			MCLK:     20, BCLK: 10, WS: 9, DOUT: 12, DIN: 11,
		},

		SpeakerAddr: 0x18,
		MicAddr:     0x40,
		PowerAmpPin: 38,
		SpeakerGain: core.HWGain{PAVoltage: 5.0, DACVoltage: 3.3},
		MicSelect:   SelMic1 | SelMic2,

		// Window centres sit 100 mV below the upper bound; the ladder
		// spaces the taps far enough apart that windows never touch.
		Buttons: []core.ButtonConfig{
			{Name: "rec", Channel: buttonChannel, Index: 0, MinMV: 2310, MaxMV: 2510},
			{Name: "mode", Channel: buttonChannel, Index: 1, MinMV: 1880, MaxMV: 2080},
			{Name: "play", Channel: buttonChannel, Index: 2, MinMV: 1560, MaxMV: 1760},
			{Name: "set", Channel: buttonChannel, Index: 3, MinMV: 1010, MaxMV: 1210},
			{Name: "voldown", Channel: buttonChannel, Index: 4, MinMV: 720, MaxMV: 920},
			{Name: "volup", Channel: buttonChannel, Index: 5, MinMV: 280, MaxMV: 480},
		},

		Strip: core.StripConfig{
			Pin:          19,
			Count:        12,
			Model:        core.ModelWS2812,
			InvertOut:    false,
			ResolutionHz: 10_000_000,
		},
		Blinks: DefaultBlinks(),

		Assets: core.MountConfig{
			MountPoint:   "/spiffs",
			Label:        "storage",
			MaxFiles:     5,
			FormatOnFail: false,
		},
		Card: core.SlotConfig{
			CLK: 18, CMD: 17, D0: 16,
			Width:        1,
			MountPoint:   "/sdcard",
			MaxFiles:     5,
			FormatOnFail: false,
			AllocUnit:    16 * 1024,
		},
	}
}

// DefaultBlinks is the stock pattern table for the indicator ring.
func DefaultBlinks() []types.BlinkPattern {
	white := types.RGB{R: 255, G: 255, B: 255}
	return []types.BlinkPattern{
		{Name: "off", Priority: 0, Steps: []types.BlinkStep{
			{Color: types.RGB{}, Brightness: 0, HoldMS: 0},
		}},
		{Name: "on", Priority: 1, Steps: []types.BlinkStep{
			{Color: white, Brightness: 255, HoldMS: 0},
		}},
		{Name: "blink_slow", Priority: 2, Loop: true, Steps: []types.BlinkStep{
			{Color: white, Brightness: 255, HoldMS: 1000},
			{Color: white, Brightness: 0, HoldMS: 1000},
		}},
		{Name: "blink_fast", Priority: 3, Loop: true, Steps: []types.BlinkStep{
			{Color: white, Brightness: 255, HoldMS: 100},
			{Color: white, Brightness: 0, HoldMS: 100},
		}},
		{Name: "breathe", Priority: 2, Loop: true, RampSteps: 16, Steps: []types.BlinkStep{
			{Color: white, Brightness: 255, HoldMS: 800},
			{Color: white, Brightness: 10, HoldMS: 800},
		}},
	}
}

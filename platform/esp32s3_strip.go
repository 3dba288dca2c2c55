//go:build esp32s3

package platform

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ws2812"

	"boardcode-go/errcode"
	"boardcode-go/internal/core"
	"boardcode-go/types"
)

type stripFactory struct{}

func (stripFactory) New(cfg core.StripConfig) (core.Strip, error) {
	if cfg.Count <= 0 {
		return nil, errcode.InvalidArg
	}
	if cfg.Model != core.ModelWS2812 {
		return nil, errcode.InvalidArg
	}
	pin := machine.Pin(cfg.Pin)
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pin.Set(cfg.InvertOut)
	return &wsStrip{dev: ws2812.New(pin), buf: make([]color.RGBA, cfg.Count)}, nil
}

type wsStrip struct {
	dev ws2812.Device
	buf []color.RGBA
}

func (s *wsStrip) WriteColors(colors []types.RGB) error {
	n := len(colors)
	if n > len(s.buf) {
		n = len(s.buf)
	}
	for i := 0; i < n; i++ {
		s.buf[i] = color.RGBA{R: colors[i].R, G: colors[i].G, B: colors[i].B, A: 255}
	}
	return s.dev.WriteColors(s.buf)
}

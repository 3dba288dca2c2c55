package board

import (
	"boardcode-go/errcode"
	"boardcode-go/internal/core"
)

// SpeakerInit builds the output codec path: shared data interface,
// amplifier GPIO port, control port at the speaker codec address, then
// the codec device itself. Sub-resources acquired before a failure are
// released before the error is returned.
func (b *Board) SpeakerInit() (core.Codec, error) {
	data, err := b.dataInterface(core.DirOut)
	if err != nil {
		return nil, err
	}

	gpio, err := b.p.Codecs.NewGPIOPort()
	if err != nil {
		return nil, err
	}

	ctrl, err := b.p.Codecs.NewControlPort(b.p.I2C.Bus(), b.profile.SpeakerAddr)
	if err != nil {
		_ = gpio.Close()
		return nil, err
	}

	dev, err := b.p.Codecs.NewCodec(core.CodecConfig{
		Direction: core.DirOut,
		Control:   ctrl,
		GPIO:      gpio,
		Data:      data,
		PAPin:     b.profile.PowerAmpPin,
		Gain:      b.profile.SpeakerGain,
	})
	if err != nil {
		_ = ctrl.Close()
		_ = gpio.Close()
		return nil, err
	}
	return dev, nil
}

// MicrophoneInit builds the input codec path. The microphone codec has
// no side-channel pins; only the control port needs releasing on a late
// failure.
func (b *Board) MicrophoneInit() (core.Codec, error) {
	data, err := b.dataInterface(core.DirIn)
	if err != nil {
		return nil, err
	}

	ctrl, err := b.p.Codecs.NewControlPort(b.p.I2C.Bus(), b.profile.MicAddr)
	if err != nil {
		return nil, err
	}

	dev, err := b.p.Codecs.NewCodec(core.CodecConfig{
		Direction: core.DirIn,
		Control:   ctrl,
		Data:      data,
		MicMask:   b.profile.MicSelect,
	})
	if err != nil {
		_ = ctrl.Close()
		return nil, err
	}
	return dev, nil
}

// dataInterface returns the cached streaming interface for a direction.
// On a miss it brings up the bus and configures the shared audio
// peripheral once; a later call for the other direction hits the cache
// and must not reconfigure.
func (b *Board) dataInterface(dir core.Direction) (core.DataInterface, error) {
	if data, ok := b.p.Audio.Interface(dir); ok {
		return data, nil
	}
	if err := b.BusInit(); err != nil {
		return nil, err
	}
	if err := b.p.Audio.Configure(b.profile.Audio); err != nil {
		return nil, err
	}
	data, ok := b.p.Audio.Interface(dir)
	if !ok {
		return nil, errcode.Failed
	}
	return data, nil
}

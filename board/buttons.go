package board

import (
	"boardcode-go/errcode"
	"boardcode-go/internal/core"
)

// ButtonCount is the number of logical buttons on the ladder.
func (b *Board) ButtonCount() int { return len(b.profile.Buttons) }

// CreateButtons realizes the static threshold table into live button
// handles, writing them into dst in table order. It returns how many
// were built. On the first construction failure it stops and returns
// errcode.Failed with the partial count; already-built buttons stay in
// dst and are not rolled back.
func (b *Board) CreateButtons(dst []core.Button) (int, error) {
	if dst == nil || len(dst) < len(b.profile.Buttons) {
		return 0, errcode.InvalidArg
	}

	if b.adc == nil {
		reader, err := b.p.ADC.Acquire()
		if err != nil {
			return 0, err
		}
		b.adc = reader
	}

	count := 0
	for i := range b.profile.Buttons {
		btn, err := b.p.Buttons.New(b.profile.Buttons[i], b.adc)
		if err != nil {
			return count, errcode.Failed
		}
		dst[i] = btn
		count++
	}
	return count, nil
}

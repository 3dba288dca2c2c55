package board

import (
	"boardcode-go/errcode"
	"boardcode-go/internal/core"
)

// CreateIndicators builds the board's single RGB indicator from the
// static strip and blink tables and writes it into dst[0].
func (b *Board) CreateIndicators(dst []core.Indicator) (int, error) {
	if dst == nil || len(dst) < 1 {
		return 0, errcode.InvalidArg
	}

	ind, err := b.p.Indicators.New(core.IndicatorConfig{
		Strip:    b.profile.Strip,
		Patterns: b.profile.Blinks,
	})
	if err != nil {
		return 0, errcode.Failed
	}
	dst[0] = ind
	return 1, nil
}

package board

import "boardcode-go/errcode"

// BusInit brings up the shared I2C bus. It is idempotent: a second call
// while the bus is live returns success without touching the driver.
// On driver failure the state stays uninitialized and the error is
// propagated verbatim.
func (b *Board) BusInit() error {
	if b.i2cUp {
		return nil
	}
	if err := b.p.I2C.Configure(b.profile.I2C); err != nil {
		return err
	}
	b.i2cUp = true
	return nil
}

// BusDeinit releases the bus driver. Deinit without a live bus is an
// error. If the driver release fails the initialized flag is kept, so
// the caller can retry; the bus is not silently declared dead.
func (b *Board) BusDeinit() error {
	if !b.i2cUp {
		return errcode.NotInitialized
	}
	if err := b.p.I2C.Release(); err != nil {
		return err
	}
	b.i2cUp = false
	return nil
}

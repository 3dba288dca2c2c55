package drvshim

import (
	"boardcode-go/errcode"
	"boardcode-go/internal/core"

	"tinygo.org/x/drivers"
)

// Bus adapts a core.I2CBus to the tinygo drivers.I2C shape. The two
// signatures line up; the type exists so codec drivers written against
// drivers.I2C can run over whatever controller the board injected.
type Bus struct {
	bus core.I2CBus
}

func NewBus(b core.I2CBus) Bus { return Bus{bus: b} }

func (s Bus) Tx(addr uint16, w, r []byte) error { return s.bus.Tx(addr, w, r) }

var _ drivers.I2C = Bus{}

// RegPort implements core.ControlPort with single-register transactions
// against a fixed 7-bit device address.
type RegPort struct {
	bus    drivers.I2C
	addr   uint16
	closed bool
}

func NewRegPort(bus drivers.I2C, addr uint16) *RegPort {
	return &RegPort{bus: bus, addr: addr}
}

func (p *RegPort) WriteReg(reg, val uint8) error {
	if p.closed {
		return errcode.NotInitialized
	}
	return p.bus.Tx(p.addr, []byte{reg, val}, nil)
}

func (p *RegPort) ReadReg(reg uint8) (uint8, error) {
	if p.closed {
		return 0, errcode.NotInitialized
	}
	var buf [1]byte
	if err := p.bus.Tx(p.addr, []byte{reg}, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (p *RegPort) Close() error {
	p.closed = true
	return nil
}

var _ core.ControlPort = (*RegPort)(nil)

// Package sim provides in-memory implementations of every board
// collaborator, for host builds, demos, and integration-style tests.
package sim

import (
	"sync"

	"boardcode-go/errcode"
	"boardcode-go/internal/core"
	"boardcode-go/internal/drvshim"
	"boardcode-go/types"
)

// ---- I2C ----

// I2CController simulates the vendor I2C master. Register writes land in
// a per-address map so tests can inspect what a codec was told.
type I2CController struct {
	mu         sync.Mutex
	configured bool
	cfg        core.I2CConfig
	regs       map[uint16]map[uint8]uint8
}

func NewI2CController() *I2CController {
	return &I2CController{regs: map[uint16]map[uint8]uint8{}}
}

func (c *I2CController) Configure(cfg core.I2CConfig) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.configured = true
	c.cfg = cfg
	return nil
}

func (c *I2CController) Release() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.configured {
		return errcode.NotInitialized
	}
	c.configured = false
	return nil
}

func (c *I2CController) Bus() core.I2CBus { return simBus{c} }

// Reg returns the last value written to a device register.
func (c *I2CController) Reg(addr uint16, reg uint8) (uint8, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	dev, ok := c.regs[addr]
	if !ok {
		return 0, false
	}
	v, ok := dev[reg]
	return v, ok
}

type simBus struct{ c *I2CController }

func (b simBus) Tx(addr uint16, w, r []byte) error {
	b.c.mu.Lock()
	defer b.c.mu.Unlock()
	if !b.c.configured {
		return errcode.NotInitialized
	}
	dev := b.c.regs[addr]
	if dev == nil {
		dev = map[uint8]uint8{}
		b.c.regs[addr] = dev
	}
	switch {
	case len(w) >= 2:
		dev[w[0]] = w[1]
	case len(w) == 1 && len(r) > 0:
		r[0] = dev[w[0]]
	}
	return nil
}

// ---- Audio ----

type dataIF struct {
	mu      sync.Mutex
	rate    uint32
	enabled bool
}

func (d *dataIF) SetSampleFrequency(hz uint32) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rate = hz
	return nil
}

func (d *dataIF) Enable(on bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.enabled = on
}

// AudioPeripheral simulates the shared I2S block: one Configure call
// prepares both directions.
type AudioPeripheral struct {
	mu         sync.Mutex
	configures int
	ifaces     map[core.Direction]*dataIF
}

func NewAudioPeripheral() *AudioPeripheral { return &AudioPeripheral{} }

func (a *AudioPeripheral) Configure(cfg core.AudioConfig) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.configures++
	if a.ifaces == nil {
		a.ifaces = map[core.Direction]*dataIF{
			core.DirOut: {rate: cfg.SampleHz},
			core.DirIn:  {rate: cfg.SampleHz},
		}
	}
	return nil
}

func (a *AudioPeripheral) Interface(dir core.Direction) (core.DataInterface, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	d, ok := a.ifaces[dir]
	return d, ok
}

// Configures reports how many times the peripheral was configured.
func (a *AudioPeripheral) Configures() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.configures
}

// ---- Codec factory ----

// CodecFactory builds codec handles whose control ports run real
// register transactions against the simulated bus (through drvshim).
type CodecFactory struct{}

func (CodecFactory) NewGPIOPort() (core.GPIOPort, error) { return &gpioPort{}, nil }

func (CodecFactory) NewControlPort(bus core.I2CBus, addr uint16) (core.ControlPort, error) {
	if bus == nil {
		return nil, errcode.InvalidArg
	}
	return drvshim.NewRegPort(drvshim.NewBus(bus), addr), nil
}

func (CodecFactory) NewCodec(cfg core.CodecConfig) (core.Codec, error) {
	if cfg.Control == nil || cfg.Data == nil {
		return nil, errcode.InvalidArg
	}
	return &codec{cfg: cfg}, nil
}

type gpioPort struct {
	mu     sync.Mutex
	levels map[int]bool
	closed bool
}

func (g *gpioPort) ConfigureOutput(pin int, initial bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.levels == nil {
		g.levels = map[int]bool{}
	}
	g.levels[pin] = initial
	return nil
}

func (g *gpioPort) Set(pin int, level bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.levels == nil {
		g.levels = map[int]bool{}
	}
	g.levels[pin] = level
}

func (g *gpioPort) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
	return nil
}

type codec struct {
	mu      sync.Mutex
	cfg     core.CodecConfig
	running bool
}

func (c *codec) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cfg.GPIO != nil {
		c.cfg.GPIO.Set(c.cfg.PAPin, true)
	}
	c.cfg.Data.Enable(true)
	c.running = true
	return nil
}

func (c *codec) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cfg.GPIO != nil {
		c.cfg.GPIO.Set(c.cfg.PAPin, false)
	}
	c.cfg.Data.Enable(false)
	c.running = false
	return nil
}

func (c *codec) Close() error {
	_ = c.Stop()
	_ = c.cfg.Control.Close()
	if c.cfg.GPIO != nil {
		_ = c.cfg.GPIO.Close()
	}
	return nil
}

// ---- ADC ----

// ADCUnit simulates the shared ADC. Tests and demos drive the ladder
// voltage with SetMillivolts.
type ADCUnit struct {
	mu       sync.Mutex
	acquired bool
	mv       map[uint8]int
}

func NewADCUnit() *ADCUnit { return &ADCUnit{mv: map[uint8]int{}} }

func (a *ADCUnit) SetMillivolts(channel uint8, mv int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.mv[channel] = mv
}

func (a *ADCUnit) Acquire() (core.MillivoltReader, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.acquired = true
	return simReader{a}, nil
}

func (a *ADCUnit) Release() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.acquired = false
	return nil
}

type simReader struct{ a *ADCUnit }

func (r simReader) ReadMillivolts(channel uint8) (int, error) {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	if !r.a.acquired {
		return 0, errcode.NotInitialized
	}
	return r.a.mv[channel], nil
}

// ---- LED strip ----

// StripFactory hands out recording strips.
type StripFactory struct {
	mu    sync.Mutex
	Strip *Strip
}

func (f *StripFactory) New(cfg core.StripConfig) (core.Strip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if cfg.Count <= 0 {
		return nil, errcode.InvalidArg
	}
	f.Strip = &Strip{}
	return f.Strip, nil
}

type Strip struct {
	mu     sync.Mutex
	writes int
	last   []types.RGB
}

func (s *Strip) WriteColors(colors []types.RGB) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	s.last = append(s.last[:0], colors...)
	return nil
}

// Snapshot returns the write count and the last frame.
func (s *Strip) Snapshot() (int, []types.RGB) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes, append([]types.RGB(nil), s.last...)
}

// ---- Storage ----

// Volume is an in-memory mountable volume with capacity stats.
type Volume struct {
	mu        sync.Mutex
	mounted   bool
	formatted bool
	corrupt   bool // next Mount fails until Format

	Total uint32
	Used  uint32
}

func NewVolume(total uint32) *Volume { return &Volume{Total: total, formatted: true} }

// Corrupt makes the next mount fail, as an unformatted flash region would.
func (v *Volume) Corrupt() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.corrupt = true
}

func (v *Volume) Mount() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.corrupt {
		return errcode.Failed
	}
	if v.mounted {
		return errcode.AlreadyMounted
	}
	v.mounted = true
	return nil
}

func (v *Volume) Unmount() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.mounted {
		return errcode.NotMounted
	}
	v.mounted = false
	return nil
}

func (v *Volume) Format() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.corrupt = false
	v.formatted = true
	v.Used = 0
	return nil
}

func (v *Volume) Stats() (types.VolumeStats, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.mounted {
		return types.VolumeStats{}, errcode.NotMounted
	}
	return types.VolumeStats{TotalBytes: v.Total, UsedBytes: v.Used}, nil
}

// ---- Card slot ----

// CardSlot simulates the removable-card slot. A card is present by
// default; Eject makes mounts fail.
type CardSlot struct {
	mu      sync.Mutex
	present bool
	card    *Card
}

func NewCardSlot() *CardSlot { return &CardSlot{present: true} }

func (s *CardSlot) Eject() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.present = false
	s.card = nil
}

func (s *CardSlot) Insert() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.present = true
}

func (s *CardSlot) Mount(cfg core.SlotConfig) (core.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.present {
		return nil, errcode.Failed
	}
	s.card = &Card{slot: s}
	return s.card, nil
}

type Card struct {
	mu       sync.Mutex
	slot     *CardSlot
	released bool
}

func (c *Card) Unmount() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.released {
		return errcode.NotMounted
	}
	c.released = true
	return nil
}

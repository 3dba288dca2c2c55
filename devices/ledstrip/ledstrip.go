// Package ledstrip plays named blink patterns on an addressable RGB
// strip. One pattern runs at a time; a start request only preempts the
// running pattern when its priority is at least as high.
package ledstrip

import (
	"sync"
	"time"

	"boardcode-go/errcode"
	"boardcode-go/internal/core"
	"boardcode-go/types"
	"boardcode-go/x/ramp"
)

// Factory implements core.IndicatorFactory over a strip factory.
type Factory struct {
	Strips core.StripFactory
}

func (f Factory) New(cfg core.IndicatorConfig) (core.Indicator, error) {
	if f.Strips == nil || cfg.Strip.Count <= 0 || len(cfg.Patterns) == 0 {
		return nil, errcode.InvalidArg
	}
	strip, err := f.Strips.New(cfg.Strip)
	if err != nil {
		return nil, err
	}
	ind := &Indicator{
		strip:    strip,
		count:    cfg.Strip.Count,
		patterns: make(map[string]types.BlinkPattern, len(cfg.Patterns)),
	}
	for _, p := range cfg.Patterns {
		ind.patterns[p.Name] = p
	}
	return ind, nil
}

type Indicator struct {
	mu       sync.Mutex
	strip    core.Strip
	count    int
	patterns map[string]types.BlinkPattern

	active string
	prio   uint8
	level  uint8 // last brightness written, ramp starting point

	cancel chan struct{}
	closed bool
}

// Active returns the name of the running pattern, "" when idle.
func (i *Indicator) Active() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.active
}

// Start plays the named pattern. A running pattern of strictly higher
// priority keeps the strip; the request is dropped without error, the
// way a status light should ignore less important states.
func (i *Indicator) Start(name string) error {
	i.mu.Lock()
	if i.closed {
		i.mu.Unlock()
		return errcode.NotInitialized
	}
	p, ok := i.patterns[name]
	if !ok {
		i.mu.Unlock()
		return errcode.UnknownPattern
	}
	if i.active != "" && i.prio > p.Priority {
		i.mu.Unlock()
		return nil
	}
	if i.cancel != nil {
		close(i.cancel)
	}
	stopc := make(chan struct{})
	i.cancel = stopc
	i.active = name
	i.prio = p.Priority
	i.mu.Unlock()

	go i.run(p, stopc)
	return nil
}

// Stop halts the named pattern if it is the one running and blanks the
// strip. Stopping a pattern that is not running is a no-op.
func (i *Indicator) Stop(name string) error {
	i.mu.Lock()
	if _, ok := i.patterns[name]; !ok {
		i.mu.Unlock()
		return errcode.UnknownPattern
	}
	if i.active != name {
		i.mu.Unlock()
		return nil
	}
	i.stopLocked()
	i.mu.Unlock()
	return nil
}

// Close stops any running pattern and blanks the strip.
func (i *Indicator) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.closed {
		return nil
	}
	i.stopLocked()
	i.closed = true
	return nil
}

// stopLocked cancels the runner and writes the strip dark. Caller holds mu.
func (i *Indicator) stopLocked() {
	if i.cancel != nil {
		close(i.cancel)
		i.cancel = nil
	}
	i.active = ""
	i.prio = 0
	i.level = 0
	i.writeLocked(types.RGB{})
}

func (i *Indicator) run(p types.BlinkPattern, stopc chan struct{}) {
	for {
		for _, step := range p.Steps {
			if p.RampSteps > 0 {
				hold := time.Duration(step.HoldMS) * time.Millisecond / time.Duration(p.RampSteps)
				if hold <= 0 {
					hold = time.Millisecond
				}
				for _, lvl := range ramp.Levels(i.lastLevel(), step.Brightness, p.RampSteps) {
					if !i.write(stopc, step.Color.Scale(lvl), lvl) {
						return
					}
					if !sleep(stopc, hold) {
						return
					}
				}
			} else {
				if !i.write(stopc, step.Color.Scale(step.Brightness), step.Brightness) {
					return
				}
				if step.HoldMS > 0 && !sleep(stopc, time.Duration(step.HoldMS)*time.Millisecond) {
					return
				}
			}
		}
		if !p.Loop {
			i.finish(stopc)
			return
		}
		// A loop with zero total hold would spin; yield instead.
		if patternHold(p) == 0 && !sleep(stopc, time.Millisecond) {
			return
		}
	}
}

// finish releases the strip after a one-shot pattern runs to completion,
// so lower-priority patterns are not blocked by a pattern that is no
// longer playing. The last frame stays on the strip.
func (i *Indicator) finish(stopc chan struct{}) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.cancel != stopc {
		return
	}
	i.cancel = nil
	i.active = ""
	i.prio = 0
}

func (i *Indicator) lastLevel() uint8 {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.level
}

// write refreshes the whole strip, but only while stopc is still the
// current runner's token; a preempted runner must not repaint.
func (i *Indicator) write(stopc chan struct{}, c types.RGB, lvl uint8) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.cancel != stopc {
		return false
	}
	i.level = lvl
	i.writeLocked(c)
	return true
}

func (i *Indicator) writeLocked(c types.RGB) {
	colors := make([]types.RGB, i.count)
	for n := range colors {
		colors[n] = c
	}
	_ = i.strip.WriteColors(colors)
}

func sleep(stopc chan struct{}, d time.Duration) bool {
	select {
	case <-stopc:
		return false
	case <-time.After(d):
		return true
	}
}

func patternHold(p types.BlinkPattern) (total uint32) {
	for _, s := range p.Steps {
		total += s.HoldMS
	}
	return total
}

// Package types holds the public payload and configuration types shared
// between the board package, device implementations, and applications.
package types

// RGB is one LED colour. Values are raw 8-bit channel intensities.
type RGB struct {
	R, G, B uint8
}

// Scale returns the colour with all channels scaled by level/255.
func (c RGB) Scale(level uint8) RGB {
	return RGB{
		R: uint8(uint16(c.R) * uint16(level) / 255),
		G: uint8(uint16(c.G) * uint16(level) / 255),
		B: uint8(uint16(c.B) * uint16(level) / 255),
	}
}

// BlinkStep is one entry in a blink pattern: show Color at Brightness,
// hold for HoldMS, then advance.
type BlinkStep struct {
	Color      RGB
	Brightness uint8
	HoldMS     uint32
}

// BlinkPattern is a named indicator sequence. Higher Priority patterns
// preempt lower ones; equal priority restarts the pattern.
type BlinkPattern struct {
	Name      string
	Priority  uint8
	Loop      bool
	RampSteps int // >0 fades brightness between steps instead of snapping
	Steps     []BlinkStep
}

// ButtonEvent is published on the event bus when a logical button
// changes state.
type ButtonEvent struct {
	Name    string `json:"name"`
	Index   int    `json:"index"`
	Pressed bool   `json:"pressed"`
	TSms    int64  `json:"ts_ms"`
}

// VolumeStats reports filesystem capacity, as far as the backing
// driver can tell.
type VolumeStats struct {
	TotalBytes uint32 `json:"total_bytes"`
	UsedBytes  uint32 `json:"used_bytes"`
}

// Package ramp produces stepped brightness levels for indicator fades.
package ramp

// Levels returns the intermediate levels of a linear ramp from cur to to,
// inclusive of the final value, spread over the given number of steps.
// steps <= 1 snaps straight to the target.
func Levels(cur, to uint8, steps int) []uint8 {
	if steps <= 1 || cur == to {
		return []uint8{to}
	}
	out := make([]uint8, 0, steps)
	d := int(to) - int(cur)
	for i := 1; i < steps; i++ {
		out = append(out, uint8(int(cur)+d*i/steps))
	}
	return append(out, to)
}

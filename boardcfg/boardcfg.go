// Package boardcfg applies embedded per-variant configuration on top of
// a board profile: the knobs that are deployment policy rather than
// wiring (bus clock, mount points, open-file limits, format-on-failure).
package boardcfg

import (
	"errors"

	"github.com/andreyvit/tinyjson"

	"boardcode-go/board"
)

// Apply overlays the embedded configuration for the profile's variant,
// if one exists. A variant without embedded config keeps its defaults.
func Apply(p *board.Profile) error {
	raw, ok := embeddedConfigs[p.Name]
	if !ok {
		return nil
	}
	m, err := decode(raw)
	if err != nil {
		return err
	}
	applyOverrides(p, m)
	return nil
}

func decode(raw []byte) (map[string]any, error) {
	r := tinyjson.Raw(raw)
	val := r.Value()
	r.EnsureEOF()
	m, ok := val.(map[string]any)
	if !ok {
		return nil, errors.New("embedded config is not a JSON object")
	}
	return m, nil
}

func applyOverrides(p *board.Profile, m map[string]any) {
	if v, ok := asInt(m["i2c_clock_hz"]); ok && v > 0 {
		p.I2C.ClockHz = uint32(v)
	}
	if a, ok := m["assets"].(map[string]any); ok {
		if s, ok := a["mount_point"].(string); ok && s != "" {
			p.Assets.MountPoint = s
		}
		if s, ok := a["label"].(string); ok && s != "" {
			p.Assets.Label = s
		}
		if v, ok := asInt(a["max_files"]); ok && v > 0 {
			p.Assets.MaxFiles = v
		}
		if b, ok := a["format_on_fail"].(bool); ok {
			p.Assets.FormatOnFail = b
		}
	}
	if c, ok := m["card"].(map[string]any); ok {
		if s, ok := c["mount_point"].(string); ok && s != "" {
			p.Card.MountPoint = s
		}
		if v, ok := asInt(c["max_files"]); ok && v > 0 {
			p.Card.MaxFiles = v
		}
		if b, ok := c["format_on_fail"].(bool); ok {
			p.Card.FormatOnFail = b
		}
	}
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

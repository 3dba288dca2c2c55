package boardcfg

// Embedded configuration, keyed by profile name. Values here mirror the
// build-time options the board firmware used to carry; edit per
// deployment or generate at build time.

const cfgKorvo1 = `{
  "i2c_clock_hz": 400000,
  "assets": {
    "mount_point": "/spiffs",
    "label": "storage",
    "max_files": 5,
    "format_on_fail": false
  },
  "card": {
    "mount_point": "/sdcard",
    "max_files": 5,
    "format_on_fail": false
  }
}`

var embeddedConfigs = map[string][]byte{
	"korvo-1": []byte(cfgKorvo1),
}

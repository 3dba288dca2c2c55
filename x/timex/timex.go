// Package timex supplies the millisecond timestamps stamped onto log
// lines and event payloads.
package timex

import "time"

// NowMs is the current wall-clock time in Unix milliseconds.
func NowMs() int64 { return time.Now().UnixMilli() }

// Package logx is a small tag-prefixed logger usable from both host and
// MCU builds. It formats with x/conv instead of fmt so TinyGo images stay
// small. Output defaults to stdout; platform bootstrap may redirect it.
package logx

import (
	"io"
	"os"
	"sync"

	"boardcode-go/x/conv"
	"boardcode-go/x/timex"
)

type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

var (
	mu       sync.Mutex
	out      io.Writer = os.Stdout
	minLevel           = LevelInfo
)

// SetOutput redirects log output (e.g. to a UART writer on MCU builds).
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w != nil {
		out = w
	}
}

// SetLevel sets the minimum emitted level.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	minLevel = l
}

func Debug(tag string, args ...any) { emit(LevelDebug, 'D', tag, args) }
func Info(tag string, args ...any)  { emit(LevelInfo, 'I', tag, args) }
func Warn(tag string, args ...any)  { emit(LevelWarn, 'W', tag, args) }
func Error(tag string, args ...any) { emit(LevelError, 'E', tag, args) }

// emit writes "L (ms) tag: a b c\n". Supported argument types: string,
// error, bool, signed/unsigned integers. Anything else prints as <?>.
func emit(l Level, mark byte, tag string, args []any) {
	mu.Lock()
	defer mu.Unlock()
	if l < minLevel {
		return
	}
	buf := make([]byte, 0, 96)
	buf = append(buf, mark, ' ', '(')
	buf = conv.AppendInt(buf, timex.NowMs())
	buf = append(buf, ") "...)
	buf = append(buf, tag...)
	buf = append(buf, ':')
	for _, a := range args {
		buf = append(buf, ' ')
		buf = appendArg(buf, a)
	}
	buf = append(buf, '\n')
	_, _ = out.Write(buf)
}

func appendArg(buf []byte, a any) []byte {
	switch v := a.(type) {
	case string:
		return append(buf, v...)
	case error:
		return append(buf, v.Error()...)
	case bool:
		if v {
			return append(buf, "true"...)
		}
		return append(buf, "false"...)
	case int:
		return conv.AppendInt(buf, int64(v))
	case int8:
		return conv.AppendInt(buf, int64(v))
	case int16:
		return conv.AppendInt(buf, int64(v))
	case int32:
		return conv.AppendInt(buf, int64(v))
	case int64:
		return conv.AppendInt(buf, v)
	case uint:
		return conv.AppendUint(buf, uint64(v))
	case uint8:
		return conv.AppendUint(buf, uint64(v))
	case uint16:
		return conv.AppendUint(buf, uint64(v))
	case uint32:
		return conv.AppendUint(buf, uint64(v))
	case uint64:
		return conv.AppendUint(buf, v)
	default:
		return append(buf, "<?>"...)
	}
}

package logx

import (
	"bytes"
	"strings"
	"testing"
)

func TestEmitFormatsArgs(t *testing.T) {
	var b bytes.Buffer
	SetOutput(&b)
	defer SetOutput(nil) // nil is ignored; keep explicit reset below
	SetLevel(LevelDebug)

	Info("assets", "total:", 1024, "used:", uint32(256), "ok:", true)

	line := b.String()
	if !strings.HasPrefix(line, "I (") {
		t.Fatalf("missing level/timestamp prefix: %q", line)
	}
	for _, want := range []string{"assets:", "total: 1024", "used: 256", "ok: true"} {
		if !strings.Contains(line, want) {
			t.Fatalf("line %q missing %q", line, want)
		}
	}
	if !strings.HasSuffix(line, "\n") {
		t.Fatalf("line should end with newline: %q", line)
	}
}

func TestLevelFilter(t *testing.T) {
	var b bytes.Buffer
	SetOutput(&b)
	SetLevel(LevelError)
	defer SetLevel(LevelInfo)

	Info("tag", "dropped")
	if b.Len() != 0 {
		t.Fatalf("info should be filtered at error level, got %q", b.String())
	}
	Error("tag", "kept")
	if b.Len() == 0 {
		t.Fatal("error should pass the filter")
	}
}

func TestSetOutputIgnoresNil(t *testing.T) {
	var b bytes.Buffer
	SetOutput(&b)
	SetOutput(nil)
	SetLevel(LevelInfo)
	Info("tag", "still here")
	if b.Len() == 0 {
		t.Fatal("nil SetOutput must not discard the sink")
	}
}

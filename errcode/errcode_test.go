package errcode

import (
	"errors"
	"testing"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]Code{
		"ok":              OK,
		"invalid_arg":     InvalidArg,
		"failed":          Failed,
		"not_initialized": NotInitialized,
		"not_mounted":     NotMounted,
		"already_mounted": AlreadyMounted,
		"unknown_pattern": UnknownPattern,
		"bad_thresholds":  BadThresholds,
		"error":           Error,
	}
	for want, c := range cases {
		if c.Error() != want {
			t.Fatalf("code %q mismatch: got %q", want, c.Error())
		}
	}
}

func TestOf(t *testing.T) {
	if Of(nil) != OK {
		t.Fatalf("Of(nil) = %v, want OK", Of(nil))
	}
	if Of(InvalidArg) != InvalidArg {
		t.Fatalf("Of(Code) should pass the code through")
	}
	wrapped := Wrap(NotMounted, "card_unmount", errors.New("boom"))
	if Of(wrapped) != NotMounted {
		t.Fatalf("Of(*E) = %v, want NotMounted", Of(wrapped))
	}
	if Of(errors.New("opaque")) != Error {
		t.Fatalf("opaque errors should map to Error")
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("i2c timeout")
	err := Wrap(Error, "bus_init", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("wrapped error should unwrap to its cause")
	}
	var e *E
	if !errors.As(err, &e) || e.Op != "bus_init" {
		t.Fatalf("expected *E with op bus_init, got %#v", err)
	}
}

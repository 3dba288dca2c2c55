package errcode

// Code is a stable error identifier for board bring-up failures.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK         Code = "ok"
	InvalidArg Code = "invalid_arg"
	Failed     Code = "failed" // a collaborator returned an empty handle

	NotInitialized Code = "not_initialized"
	NotMounted     Code = "not_mounted"
	AlreadyMounted Code = "already_mounted"

	UnknownPattern Code = "unknown_pattern"
	BadThresholds  Code = "bad_thresholds"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	if e.Msg != "" {
		return string(e.C) + ": " + e.Msg
	}
	return string(e.C)
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}

// Wrap attaches an operation name and code to a driver error.
func Wrap(c Code, op string, err error) error {
	return &E{C: c, Op: op, Err: err}
}

package errs

import "errors"

// Code classifies an error for callers outside the usecase layer.
type Code string

const (
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
)

// Error is a coded error. Two Errors match under errors.Is when code and
// message are equal, so sentinels keep matching after WithDetail.
type Error struct {
	code   Code
	msg    string
	detail map[string]any
	cause  error
}

func Coded(code Code, msg string) *Error {
	return &Error{code: code, msg: msg}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.code == e.code && t.msg == e.msg
}

func (e *Error) Code() Code             { return e.code }
func (e *Error) Message() string        { return e.msg }
func (e *Error) Detail() map[string]any { return e.detail }

// WithDetail returns a copy of e carrying an extra detail entry.
func (e *Error) WithDetail(key string, value any) *Error {
	cp := *e
	cp.detail = make(map[string]any, len(e.detail)+1)
	for k, v := range e.detail {
		cp.detail[k] = v
	}
	cp.detail[key] = value
	return &cp
}

// WithCause returns a copy of e wrapping cause.
func (e *Error) WithCause(cause error) *Error {
	cp := *e
	cp.cause = cause
	return &cp
}

// CodeOf returns the code of the first coded error in the chain, or CodeInternal.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var ce *Error
	if errors.As(err, &ce) {
		return ce.code
	}
	return CodeInternal
}

// DetailOf returns the detail map of the first coded error in the chain.
func DetailOf(err error) map[string]any {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.detail
	}
	return nil
}

var (
	ErrUnauthenticated = Coded(CodeUnauthenticated, "caller is not authenticated")
	ErrInternal        = Coded(CodeInternal, "internal error")
)

// Internal wraps an unexpected failure so that it surfaces as CodeInternal.
func Internal(err error) error {
	if err == nil {
		return nil
	}
	if CodeOf(err) != CodeInternal {
		return err
	}
	return ErrInternal.WithCause(err)
}

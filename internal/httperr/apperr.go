package httperr

import "errors"

type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindBusiness
	KindExternal
)

// AppError classifies every failure the booking core can surface. Lower
// layers return raw errors; use cases wrap them before propagating so no
// untyped error ever reaches a handler.
type AppError struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func ErrValidation(code, message string) error {
	return &AppError{Kind: KindValidation, Code: code, Message: message}
}

func ErrNotFound(code, message string) error {
	return &AppError{Kind: KindNotFound, Code: code, Message: message}
}

func ErrBusiness(code, message string) error {
	return &AppError{Kind: KindBusiness, Code: code, Message: message}
}

func ErrExternal(code string, err error) error {
	msg := "servicio externo no disponible."
	if err != nil {
		msg = err.Error()
	}
	return &AppError{Kind: KindExternal, Code: code, Message: msg, Err: err}
}

func IsKind(err error, kind Kind) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind == kind
	}
	return false
}

func IsCode(err error, code string) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}

func AsApp(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

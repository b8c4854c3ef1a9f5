package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Code int

const (
	BadRequestCode      Code = http.StatusBadRequest
	UnauthorizedCode    Code = http.StatusUnauthorized
	NotFoundCode        Code = http.StatusNotFound
	ConflictCode        Code = http.StatusConflict
	TooManyRequestsCode Code = http.StatusTooManyRequests
	InternalErrorCode   Code = http.StatusInternalServerError
	NotImplementedCode  Code = http.StatusNotImplemented
	BadGatewayCode      Code = http.StatusBadGateway
)

var ErrStrMap = map[Code]string{
	BadRequestCode:      "Bad request",
	UnauthorizedCode:    "Unauthorized",
	NotFoundCode:        "Not found",
	ConflictCode:        "Conflict",
	TooManyRequestsCode: "Too Many Requests",
	InternalErrorCode:   "Internal server error",
	NotImplementedCode:  "Not implemented",
	BadGatewayCode:      "Upstream service error",
}

// AppError carries a user facing message and the http status it maps to.
// Err keeps the underlying cause for logging, it is never written to the client.
type AppError struct {
	Code Code
	Msg  string
	Err  error
}

func New(code Code, msg string) *AppError {
	return &AppError{Code: code, Msg: msg}
}

func Newf(code Code, format string, args ...any) *AppError {
	return &AppError{Code: code, Msg: fmt.Sprintf(format, args...)}
}

func Wrap(code Code, msg string, err error) *AppError {
	return &AppError{Code: code, Msg: msg, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) Status() int {
	return int(e.Code)
}

// As returns the *AppError in err's chain, if any.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func IsCode(err error, code Code) bool {
	appErr, ok := As(err)
	return ok && appErr.Code == code
}

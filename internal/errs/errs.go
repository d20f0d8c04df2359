package errs

import (
	"errors"
	"fmt"
)

type Code int

const (
	ValidationCode   Code = 42201
	NotFoundCode     Code = 40401
	BusinessRuleCode Code = 40001
	InternalCode     Code = 50001
)

var ErrStrMap = map[Code]string{
	ValidationCode:   "validation failed",
	NotFoundCode:     "resource not found",
	BusinessRuleCode: "business rule violated",
	InternalCode:     "internal server error",
}

// FieldError 單一欄位驗證錯誤
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error 領域層統一錯誤型別
// handler 依據 Code 轉換成 http status, 不對外洩漏內部錯誤
type Error struct {
	Code    Code
	Message string
	Fields  []FieldError
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap 保留底層錯誤, 對外只顯示message
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

func NewValidation(fields []FieldError) *Error {
	return &Error{Code: ValidationCode, Message: ErrStrMap[ValidationCode], Fields: fields}
}

// AsError 取出*Error, 非領域錯誤一律視為internal
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(InternalCode, ErrStrMap[InternalCode], err)
}

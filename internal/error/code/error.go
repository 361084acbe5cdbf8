package code

import "errors"

// Error 帶錯誤碼的業務錯誤，由 controller 轉換為回應
type Error struct {
	Code    int
	Message string
	Err     error
}

// New 建立業務錯誤，message 為空時使用錯誤碼預設訊息
func New(code int, message string) *Error {
	if message == "" {
		message = GetMessage(code)
	}
	return &Error{Code: code, Message: message}
}

// Wrap 以錯誤碼包裝底層錯誤
func Wrap(code int, err error) *Error {
	return &Error{Code: code, Message: GetMessage(code), Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is 錯誤碼相同即視為同一錯誤
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return t.Code == e.Code
	}
	return false
}

// From 取出錯誤碼，非業務錯誤回傳 ErrUnknown
func From(err error) (int, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return ErrUnknown, false
}

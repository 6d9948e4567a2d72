package common

import (
	"github.com/sirupsen/logrus"
)

// AppError is a classified failure: a stable code, a readable message and the
// underlying kind it wraps.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code string, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Log writes the failure to entry at warn level.
func (e *AppError) Log(entry *logrus.Entry) {
	fields := logrus.Fields{"code": e.Code}
	if e.Err != nil {
		fields["kind"] = e.Err.Error()
	}
	entry.WithFields(fields).Warn(e.Message)
}

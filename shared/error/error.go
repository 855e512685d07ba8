package shared

import "errors"

var (
	// ErrInvalidLogLevel when LOG_LEVEL is not a level logrus understands
	ErrInvalidLogLevel = errors.New("invalid log level")
)

package device

import "errors"

var (
	ErrInvalidThresholds = errors.New("invalid swipe thresholds")
	ErrUnknownProfile    = errors.New("unknown threshold profile")
	ErrInvalidSignals    = errors.New("invalid device signals")
	ErrReadThresholds    = errors.New("failed to read thresholds file")
)

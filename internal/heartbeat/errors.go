package heartbeat

import "codeberg.org/mutker/envlogd/internal/errors"

const (
	// Initialization errors
	ErrPinUnavailable = errors.ErrorCode("heartbeat_pin_unavailable")
)

package store

import "codeberg.org/mutker/envlogd/internal/errors"

const (
	// Initialization errors
	ErrMediumInit = errors.ErrorCode("store_medium_init_failed")

	// Per-cycle append errors. These are reported to the cycle as normal
	// outcomes and never escalate.
	ErrUnreachable   = errors.ErrorCode("store_unreachable")
	ErrWriteRejected = errors.ErrorCode("store_write_rejected")
)

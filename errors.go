package gridlist

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidColumnCount is returned when the column count resolves below 1.
	ErrInvalidColumnCount = errors.New("column count must be at least 1")

	// ErrNegativeGap is returned when the grid gap resolves below 0.
	ErrNegativeGap = errors.New("grid gap must not be negative")

	// ErrNegativeMargin is returned when the window margin resolves below 0.
	ErrNegativeMargin = errors.New("window margin must not be negative")

	// ErrDuplicateKey is returned when two items report the same key.
	ErrDuplicateKey = errors.New("duplicate item key")

	// ErrSignalUnavailable is returned by observers that cannot deliver a
	// requested signal in the host environment.
	ErrSignalUnavailable = errors.New("observation signal unavailable")
)

// ConfigError describes a caller contract violation found while resolving
// a grid configuration. It wraps one of the sentinel errors above.
type ConfigError struct {
	Field string // "columnCount", "gridGap", "windowMargin" or "key"
	Value any
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("gridlist: %s=%v: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

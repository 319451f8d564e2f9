package dict

import "errors"

var (
	ErrInvalidCapacity   = errors.New("capacity must be positive")
	ErrInvalidLoadFactor = errors.New("max load must be in (0, 1]")
	ErrDuplicateKey      = errors.New("key already present")
	ErrTableFull         = errors.New("table full")
)

package btree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrNilNode signals that a tree or node reference required by an operation is nil.
	ErrNilNode = errors.New("btree: nil node")
)

package preorder

import "errors"

var (
	// ErrConstruction signals that a key stream cannot be rebuilt into a tree.
	ErrConstruction = errors.New("preorder: no valid tree")
	// ErrCorruptStream signals an unreadable or tampered encoded stream.
	ErrCorruptStream = errors.New("preorder: corrupt stream")
)

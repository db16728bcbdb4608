package validate

import "errors"

// ErrInvariantViolation is returned by Report.Err if any check failed.
var ErrInvariantViolation = errors.New("validate: invariant violation")

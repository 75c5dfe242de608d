// File: api/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Common error types for the fixcap library.

package api

import "fmt"

// Common errors used across the library.
var (
	// ErrCapacityExceeded is returned by bounded containers when a push
	// would exceed the fixed capacity. The container is left unchanged.
	ErrCapacityExceeded = fmt.Errorf("capacity exceeded")

	// ErrInvalidArgument reports a malformed constructor argument.
	ErrInvalidArgument = fmt.Errorf("invalid argument")

	// ErrNotSupported reports an operation unavailable on this platform.
	ErrNotSupported = fmt.Errorf("operation not supported")
)

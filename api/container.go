// File: api/container.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Shared read-access contract for fixcap containers.

package api

// Container is the read-access contract satisfied by every fixcap container.
type Container[T any] interface {
	// Len returns the number of logically valid elements.
	Len() int

	// Cap returns the fixed capacity (the backing storage length).
	Cap() int

	// View returns a read-only view of exactly Len() elements.
	View() []T
}

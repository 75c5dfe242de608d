// File: api/storage.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Backing-storage contract shared by all fixcap containers.
//
// Containers never allocate: they index into a storage value supplied at
// construction time. Storage is the sole seam deciding where that memory
// lives (stack array, package-level buffer, mmap'd region).

package api

// Storage exposes fixed-length views of a contiguous element region.
//
// Both views must cover the same elements, and their length must not change
// across calls for the lifetime of the value. The container constructed over
// a Storage value exclusively owns it; callers must not retain or mutate the
// views while the container exists.
type Storage[T any] interface {
	// View returns a read-only view of the elements.
	// Callers must not write through the returned slice.
	View() []T

	// MutView returns a mutable view of the same elements.
	MutView() []T
}

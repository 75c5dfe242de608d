// File: storage/slice.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Slice-backed storage: the canonical provider. Wraps memory the caller
// already owns, including fixed-size arrays via arr[:].

package storage

import (
	"github.com/momentics/fixcap/api"
)

// Ensure compile-time interface compliance.
var _ api.Storage[int] = Slice[int]{}

// Slice adapts a caller-owned slice to the api.Storage contract.
//
// The container built over it takes exclusive ownership of the elements;
// the caller must not read or write data through its own reference while
// the container is in use.
type Slice[T any] struct {
	data []T
}

// OfSlice wraps data as backing storage. The slice length becomes the
// container capacity and never changes.
func OfSlice[T any](data []T) Slice[T] {
	return Slice[T]{data: data}
}

// Bytes is slice-backed storage over a raw byte region.
type Bytes = Slice[byte]

// OfBytes wraps a byte region as backing storage.
func OfBytes(data []byte) Bytes {
	return OfSlice(data)
}

// View returns the read-only view.
func (s Slice[T]) View() []T { return s.data }

// MutView returns the mutable view.
func (s Slice[T]) MutView() []T { return s.data }

// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake storage implementation for testing fixcap containers.

package fake

import (
	"github.com/momentics/fixcap/api"
)

// Ensure compile-time interface compliance.
var _ api.Storage[int] = (*Storage[int])(nil)

// Storage is an instrumented implementation of api.Storage. It records how
// often each view is requested, letting tests assert that container
// operations go through the contract and that the view length stays fixed.
type Storage[T any] struct {
	Data         []T
	ViewCalls    int
	MutViewCalls int
}

// NewStorage creates a fake storage of n zero-valued elements.
func NewStorage[T any](n int) *Storage[T] {
	return &Storage[T]{Data: make([]T, n)}
}

// View returns the read-only view.
func (s *Storage[T]) View() []T {
	s.ViewCalls++
	return s.Data
}

// MutView returns the mutable view.
func (s *Storage[T]) MutView() []T {
	s.MutViewCalls++
	return s.Data
}

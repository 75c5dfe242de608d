//go:build !linux
// +build !linux

// File: storage/mmap_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub mmap storage for platforms without the anonymous-mapping path.

package storage

import (
	"github.com/momentics/fixcap/api"
)

// Mmap is unavailable on this platform.
type Mmap[T any] struct{}

// NewMmap always fails on this platform.
func NewMmap[T any](n int) (*Mmap[T], error) {
	return nil, api.ErrNotSupported
}

// View returns an empty view.
func (m *Mmap[T]) View() []T { return nil }

// MutView returns an empty view.
func (m *Mmap[T]) MutView() []T { return nil }

// Close is a no-op.
func (m *Mmap[T]) Close() error { return nil }

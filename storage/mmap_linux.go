//go:build linux
// +build linux

// File: storage/mmap_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux off-heap storage backed by an anonymous memory mapping.
// The mapping is page-aligned, so it satisfies the alignment of any
// element type. The element view is produced by a single unsafe.Slice
// conversion over the mapped region; the region length is fixed at
// construction and the mapping never moves, so every index below the
// view length is in range for the lifetime of the value.

package storage

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/momentics/fixcap/api"
)

var _ api.Storage[int64] = (*Mmap[int64])(nil)

// Mmap is a fixed-length element region held outside the Go heap.
//
// Element types must be plain, pointer-free values: the garbage collector
// does not scan mapped memory, and the region is released wholesale by
// Close without per-element cleanup.
type Mmap[T any] struct {
	raw   []byte
	elems []T
}

// NewMmap maps an anonymous region holding n elements of type T.
// The caller must Close the returned value to release the mapping.
func NewMmap[T any](n int) (*Mmap[T], error) {
	if n < 0 {
		return nil, api.ErrInvalidArgument
	}
	var zero T
	size := n * int(unsafe.Sizeof(zero))
	if size == 0 {
		// Degenerate but representable: zero-capacity storage, no mapping.
		return &Mmap[T]{}, nil
	}
	raw, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, err
	}
	return &Mmap[T]{
		raw:   raw,
		elems: unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), n),
	}, nil
}

// View returns the read-only element view.
func (m *Mmap[T]) View() []T { return m.elems }

// MutView returns the mutable element view.
func (m *Mmap[T]) MutView() []T { return m.elems }

// Close unmaps the region. The storage and any container built over it
// must not be used afterwards.
func (m *Mmap[T]) Close() error {
	if m.raw == nil {
		return nil
	}
	raw := m.raw
	m.raw = nil
	m.elems = nil
	return unix.Munmap(raw)
}

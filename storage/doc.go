// Package storage
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Concrete backing-storage providers for fixcap containers.
// Slice wraps caller-owned memory with zero indirection; Mmap maps a fixed,
// page-aligned off-heap region on platforms that support it.
// See slice.go, mmap_linux.go for implementation details.
package storage

// Package ring
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity circular buffer with overwrite-on-full semantics.
// Push never fails: once the buffer is full, each push overwrites the slot
// at the current write index. Single-owner, single-thread use; no internal
// synchronization. Constructors are pure and usable in package-level var
// initialization.
package ring

// Package vec
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity bounded vector with reject-on-full semantics.
// Push fails with api.ErrCapacityExceeded once the vector is full; Pop
// removes from the end. Single-owner, single-thread use; no internal
// synchronization. Constructors are pure and usable in package-level var
// initialization.
package vec

// File: storage/slice_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/momentics/fixcap/storage"
)

func TestSlice_ViewsShareElements(t *testing.T) {
	data := []int{1, 2, 3}
	st := storage.OfSlice(data)

	st.MutView()[1] = 20

	assert.Equal(t, []int{1, 20, 3}, st.View(), "both views cover the same region")
	assert.Equal(t, 20, data[1])
}

func TestSlice_FixedLength(t *testing.T) {
	st := storage.OfSlice(make([]byte, 8))

	for i := 0; i < 4; i++ {
		assert.Equal(t, 8, len(st.View()))
		assert.Equal(t, 8, len(st.MutView()))
	}
}

func TestOfBytes(t *testing.T) {
	region := make([]byte, 16)
	st := storage.OfBytes(region)

	st.MutView()[0] = 0xFF
	assert.Equal(t, byte(0xFF), region[0])
	assert.Equal(t, 16, len(st.View()))
}

//go:build linux
// +build linux

// File: storage/mmap_linux_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/fixcap/api"
	"github.com/momentics/fixcap/ring"
	"github.com/momentics/fixcap/storage"
	"github.com/momentics/fixcap/vec"
)

func TestMmap_ReadWrite(t *testing.T) {
	st, err := storage.NewMmap[int64](1024)
	require.NoError(t, err)
	defer func() { assert.NoError(t, st.Close()) }()

	require.Equal(t, 1024, len(st.View()))
	require.Equal(t, 1024, len(st.MutView()))

	mut := st.MutView()
	for i := range mut {
		mut[i] = int64(i * i)
	}
	view := st.View()
	assert.Equal(t, int64(0), view[0])
	assert.Equal(t, int64(1023*1023), view[1023])
}

func TestMmap_ZeroLength(t *testing.T) {
	st, err := storage.NewMmap[int32](0)
	require.NoError(t, err)

	assert.Equal(t, 0, len(st.View()))
	assert.NoError(t, st.Close())
}

func TestMmap_NegativeLength(t *testing.T) {
	_, err := storage.NewMmap[byte](-1)
	assert.ErrorIs(t, err, api.ErrInvalidArgument)
}

func TestMmap_CloseTwice(t *testing.T) {
	st, err := storage.NewMmap[byte](64)
	require.NoError(t, err)

	assert.NoError(t, st.Close())
	assert.NoError(t, st.Close())
	assert.Nil(t, st.View())
}

func TestMmap_BacksContainers(t *testing.T) {
	rst, err := storage.NewMmap[uint32](3)
	require.NoError(t, err)
	defer rst.Close()

	b := ring.New[uint32, *storage.Mmap[uint32]](rst)
	for i := uint32(1); i <= 4; i++ {
		b.Push(i)
	}
	assert.Equal(t, []uint32{4, 2, 3}, b.View())

	vst, err := storage.NewMmap[uint32](2)
	require.NoError(t, err)
	defer vst.Close()

	v := vec.New[uint32, *storage.Mmap[uint32]](vst)
	require.NoError(t, v.Push(7))
	require.NoError(t, v.Push(8))
	assert.ErrorIs(t, v.Push(9), api.ErrCapacityExceeded)
	got, ok := v.Pop()
	require.True(t, ok)
	assert.Equal(t, uint32(8), got)
}

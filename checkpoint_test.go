package arena

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckpointNoAllocations(t *testing.T) {
	a := testArena(t, 1024)
	_, err := a.Alloc(100)
	require.NoError(t, err)

	used := a.TotalUsed()
	allocated := a.TotalAllocated()
	cur := a.current

	c := a.Begin()
	a.End(c)

	assert.Equal(t, used, a.TotalUsed())
	assert.Equal(t, allocated, a.TotalAllocated())
	assert.Equal(t, cur, a.current, "current block should be unchanged")
}

func TestCheckpointRewindAcrossBlocks(t *testing.T) {
	// A: 40 bytes, then a checkpointed B large enough to spill into a new
	// block, then C after the rewind. C must land where B was, A must be
	// untouched, and the used total must show only A and C.
	a := testArena(t, 64)

	aBuf, err := a.Alloc(40)
	require.NoError(t, err)
	for i := range aBuf {
		aBuf[i] = byte(i)
	}

	c := a.Begin()
	bBuf, err := a.Alloc(80)
	require.NoError(t, err)
	require.Equal(t, 2, a.NumBlocks(), "B should force a new block")
	a.End(c)

	assert.Equal(t, 40, a.TotalUsed(), "rewind should discard B entirely")

	cBuf, err := a.Alloc(32) // 40+32 > 64, so C reuses B's block
	require.NoError(t, err)

	assert.Equal(t, addr(bBuf), addr(cBuf), "C should overlap where B was carved")
	assert.Equal(t, 40+32, a.TotalUsed())
	for i := range aBuf {
		require.Equal(t, byte(i), aBuf[i], "A byte %d changed", i)
	}
}

func TestCheckpointNested(t *testing.T) {
	a := testArena(t, 1024)

	_, err := a.Alloc(8)
	require.NoError(t, err)
	outer := a.Begin()

	_, err = a.Alloc(16)
	require.NoError(t, err)
	inner := a.Begin()

	_, err = a.Alloc(32)
	require.NoError(t, err)

	// LIFO: inner first, then outer.
	a.End(inner)
	assert.Equal(t, 24, a.TotalUsed())
	a.End(outer)
	assert.Equal(t, 8, a.TotalUsed())
}

func TestCheckpointSentinel(t *testing.T) {
	a := testArena(t, 1024)
	_, err := a.Alloc(64)
	require.NoError(t, err)
	used := a.TotalUsed()

	// The zero Checkpoint and one taken from a dead arena are both no-ops.
	a.End(Checkpoint{})
	assert.Equal(t, used, a.TotalUsed())

	var nilArena *Arena
	c := nilArena.Begin()
	a.End(c)
	assert.Equal(t, used, a.TotalUsed())
	nilArena.End(c)
}

func TestScope(t *testing.T) {
	a := testArena(t, 1024)
	_, err := a.Alloc(8)
	require.NoError(t, err)

	err = a.Scope(func(a *Arena) error {
		tmp, err := a.Alloc(256)
		require.NoError(t, err)
		require.Len(t, tmp, 256)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 8, a.TotalUsed(), "scope allocations should not survive")
}

func TestScopeError(t *testing.T) {
	a := testArena(t, 1024)
	boom := errors.New("boom")

	err := a.Scope(func(a *Arena) error {
		_, err := a.Alloc(128)
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom, "scope should propagate fn's error")
	assert.Equal(t, 0, a.TotalUsed(), "rewind should run on the error path too")
}

func TestScopePanic(t *testing.T) {
	a := testArena(t, 1024)

	func() {
		defer func() { _ = recover() }()
		_ = a.Scope(func(a *Arena) error {
			_, _ = a.Alloc(128)
			panic("unwound")
		})
	}()
	assert.Equal(t, 0, a.TotalUsed(), "rewind should run when fn panics")
}

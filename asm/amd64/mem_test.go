package amd64

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slowlang/asmkit/asm"
)

func TestPtr(t *testing.T) {
	m := Ptr(RBP, -8, 8)

	require.Equal(t, TypeGpq, m.BaseType())
	require.Equal(t, RBP.ID(), m.BaseID())
	require.Equal(t, int64(-8), m.Offset())
	require.Equal(t, uint32(8), m.Size())
	require.False(t, m.HasIndex())
	require.False(t, m.IsOffset64Bit())
}

func TestPtrIndex(t *testing.T) {
	m := PtrIndex(RAX, RCX, 2, 16, 4)

	require.Equal(t, RAX.ID(), m.BaseID())
	require.Equal(t, RCX.ID(), m.IndexID())
	require.Equal(t, TypeGpq, m.IndexType())
	require.Equal(t, int64(16), m.Offset())
	require.Equal(t, uint32(2), m.Shift())
	require.True(t, m.HasShift())
}

func TestLabelPtr(t *testing.T) {
	m := LabelPtr(asm.NewLabel(4), 32, 8)

	require.True(t, m.HasBaseLabel())
	require.Equal(t, uint32(4), m.BaseID())
	require.Equal(t, int64(32), m.Offset())
	require.False(t, m.IsOffset64Bit())
}

func TestAbsRel(t *testing.T) {
	const addr = 0x7fff_8000_1234_5678

	a := Abs(addr, 4)

	require.True(t, a.IsAbs())
	require.True(t, a.IsOffset64Bit())
	require.Equal(t, int64(addr), a.Offset())
	require.Equal(t, uint32(4), a.Size())

	r := Rel(0x1000, 8)

	require.True(t, r.IsRel())
	require.Equal(t, int64(0x1000), r.Offset())
}

func TestShiftSegmentIndependent(t *testing.T) {
	m := PtrIndex(RBX, RSI, 3, 0, 1)

	require.False(t, m.HasSegment())

	m.SetSegment(SegGS)

	assert.Equal(t, SegGS, m.Segment())
	assert.True(t, m.HasSegment())
	assert.Equal(t, uint32(3), m.Shift())

	m.SetShift(1)

	assert.Equal(t, uint32(1), m.Shift())
	assert.Equal(t, SegGS, m.Segment())

	// neutral fields unaffected by the x86 bits
	assert.Equal(t, RBX.ID(), m.BaseID())
	assert.Equal(t, RSI.ID(), m.IndexID())
	assert.Equal(t, uint32(1), m.Size())

	m.ResetSegment()
	assert.False(t, m.HasSegment())
}

package asm

import (
	"testing"

	tassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemRoundTrip(t *testing.T) {
	d := Decomposed{
		BaseType:  RegTypeGp64,
		BaseID:    5,
		IndexType: RegTypeGp64,
		IndexID:   11,
		Offset:    -64,
		Size:      8,
	}

	m := NewMem(d)

	require.Equal(t, OpMem, m.Kind())
	require.Equal(t, d.BaseType, m.BaseType())
	require.Equal(t, d.BaseID, m.BaseID())
	require.Equal(t, d.IndexType, m.IndexType())
	require.Equal(t, d.IndexID, m.IndexID())
	require.Equal(t, d.Offset, m.OffsetLo32())
	require.Equal(t, int64(d.Offset), m.Offset())
	require.Equal(t, d.Size, m.Size())

	require.True(t, m.HasBase())
	require.True(t, m.HasIndex())
	require.True(t, m.HasBaseAndIndex())
	require.True(t, m.HasBaseReg())
	require.True(t, m.HasIndexReg())
	require.False(t, m.HasBaseLabel())
}

func TestMemReset(t *testing.T) {
	m := NewMem(Decomposed{BaseType: RegTypeGp64, BaseID: 1, Offset: 8, Size: 4})

	m.Reset()

	require.Equal(t, OpMem, m.Kind())
	require.False(t, m.HasBaseOrIndex())
	require.False(t, m.HasOffset())
	require.Equal(t, uint32(0), m.Size())
}

func TestMemBaseLabel(t *testing.T) {
	m := NewMem(Decomposed{BaseType: LabelTag, BaseID: 3, Offset: 4})

	require.True(t, m.HasBase())
	require.True(t, m.HasBaseLabel())
	require.False(t, m.HasBaseReg())
	require.Equal(t, uint32(3), m.BaseID())
	require.Equal(t, int64(4), m.Offset())
}

func TestMemSetters(t *testing.T) {
	var m Mem
	m.Reset()

	m.SetBase(NewReg(gpqTraits.Sig, 2))

	require.True(t, m.HasBaseReg())
	require.Equal(t, RegTypeGp64, m.BaseType())
	require.Equal(t, uint32(2), m.BaseID())
	require.False(t, m.IsOffset64Bit())

	m.SetIndex(NewReg(gpqTraits.Sig, 9))

	require.True(t, m.HasIndexReg())
	require.Equal(t, uint32(9), m.IndexID())

	m.SetBaseID(4)
	require.Equal(t, uint32(4), m.BaseID())
	require.Equal(t, RegTypeGp64, m.BaseType())

	m.SetIndexID(10)
	require.Equal(t, uint32(10), m.IndexID())
	require.Equal(t, RegTypeGp64, m.IndexType())

	m.SetSize(16)
	require.Equal(t, uint32(16), m.Size())

	m.SetBaseLabel(NewLabel(8))

	require.True(t, m.HasBaseLabel())
	require.Equal(t, uint32(8), m.BaseID())

	m.ResetIndex()
	require.False(t, m.HasIndex())

	m.ResetBase()
	require.False(t, m.HasBase())
	require.True(t, m.IsOffset64Bit())
}

func TestMemAddrType(t *testing.T) {
	m := NewMem(Decomposed{BaseType: RegTypeGp64, BaseID: 1})

	require.Equal(t, AddrTypeDefault, m.AddrType())

	m.SetAbs()
	require.True(t, m.IsAbs())
	require.False(t, m.IsRel())

	m.SetRel()
	require.True(t, m.IsRel())
	require.False(t, m.IsAbs())

	m.ResetAddrType()
	require.Equal(t, AddrTypeDefault, m.AddrType())
}

func TestMemRegHome(t *testing.T) {
	m := NewMem(Decomposed{BaseType: RegTypeGp64, BaseID: VirtIDMin})

	require.False(t, m.IsRegHome())

	m.SetRegHome()
	require.True(t, m.IsRegHome())

	m.ClearRegHome()
	require.False(t, m.IsRegHome())
}

func TestOffsetDualityBased(t *testing.T) {
	m := NewMem(Decomposed{BaseType: RegTypeGp64, BaseID: 7, Offset: 100})

	require.False(t, m.IsOffset64Bit())
	require.True(t, m.HasOffset())
	require.Equal(t, int64(100), m.Offset())

	// negative low word sign extends
	m.SetOffsetLo32(-1)
	require.Equal(t, int64(-1), m.Offset())
	require.Equal(t, int32(-1), m.OffsetLo32())

	// 64-bit store keeps only the low word, base id untouched
	m.SetOffset(0x1_0000_0002)
	require.Equal(t, int64(2), m.Offset())
	require.Equal(t, uint32(7), m.BaseID())

	// low word wraps, no carry into the base id
	m.SetOffsetLo32(0x7fff_ffff)
	m.AddOffset(1)
	require.Equal(t, int32(-0x8000_0000), m.OffsetLo32())
	require.Equal(t, uint32(7), m.BaseID())

	m.AddOffsetLo32(-1)
	require.Equal(t, int32(0x7fff_ffff), m.OffsetLo32())
	require.Equal(t, uint32(7), m.BaseID())

	m.ResetOffset()
	require.False(t, m.HasOffset())
	require.Equal(t, uint32(7), m.BaseID())
}

func TestOffsetDualityAbsolute(t *testing.T) {
	var m Mem
	m.Reset()

	require.True(t, m.IsOffset64Bit())
	require.False(t, m.HasOffset())

	m.SetOffset(0x1122_3344_5566_7788)

	require.True(t, m.HasOffset())
	require.Equal(t, int64(0x1122_3344_5566_7788), m.Offset())
	require.Equal(t, int32(0x5566_7788), m.OffsetLo32())
	require.Equal(t, int32(0x1122_3344), m.OffsetHi32())

	// carry propagates across the word boundary
	m.SetOffset(0xffff_ffff)
	m.AddOffset(1)
	require.Equal(t, int64(0x1_0000_0000), m.Offset())

	m.AddOffset(-1)
	require.Equal(t, int64(0xffff_ffff), m.Offset())

	// full 64-bit wrap
	m.SetOffset(-1)
	require.True(t, m.HasOffset())
	m.AddOffset(1)
	require.Equal(t, int64(0), m.Offset())
	require.False(t, m.HasOffset())

	// high word alone still counts as an offset
	m.SetOffset(1 << 32)
	require.True(t, m.HasOffset())
	require.Equal(t, int32(0), m.OffsetLo32())

	m.ResetOffset()
	require.False(t, m.HasOffset())
	require.Equal(t, int64(0), m.Offset())
}

func TestOffsetModeFlipsWithBase(t *testing.T) {
	var m Mem
	m.Reset()

	m.SetOffset(0x1_0000_0000)
	require.Equal(t, int64(0x1_0000_0000), m.Offset())

	// attaching a base reinterprets the high word as the base id
	m.SetBase(NewReg(gpqTraits.Sig, 0))

	tassert.False(t, m.IsOffset64Bit())
	tassert.Equal(t, int64(0), m.Offset())
}

func TestMemFlagsPreserved(t *testing.T) {
	const backendBits = Sig(0x15) << 16

	m := NewMem(Decomposed{
		BaseType: RegTypeGp64,
		BaseID:   1,
		Flags:    backendBits,
	})

	require.Equal(t, backendBits, m.Sig()&(backendBits))

	m.SetSize(8)
	m.SetAbs()

	tassert.Equal(t, backendBits, m.Sig()&(backendBits))
}

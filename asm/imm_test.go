package asm

import (
	"math"
	"testing"

	tassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImmFits(t *testing.T) {
	for _, tc := range []struct {
		v    int64
		i8   bool
		u8   bool
		i16  bool
		u16  bool
		i32  bool
		u32  bool
	}{
		{v: 0, i8: true, u8: true, i16: true, u16: true, i32: true, u32: true},
		{v: 127, i8: true, u8: true, i16: true, u16: true, i32: true, u32: true},
		{v: 128, u8: true, i16: true, u16: true, i32: true, u32: true},
		{v: 255, u8: true, i16: true, u16: true, i32: true, u32: true},
		{v: 256, i16: true, u16: true, i32: true, u32: true},
		{v: -128, i8: true, i16: true, i32: true},
		{v: -129, i16: true, i32: true},
		{v: 65535, u16: true, i32: true, u32: true},
		{v: 65536, i32: true, u32: true},
		{v: -32768, i16: true, i32: true},
		{v: -32769, i32: true},
		{v: 2147483647, i32: true, u32: true},
		{v: 2147483648, u32: true},
		{v: -2147483648, i32: true},
		{v: -2147483649},
		{v: 4294967295, u32: true},
		{v: 4294967296},
		{v: -1, i8: true, i16: true, i32: true},
	} {
		i := NewImm(tc.v)

		tassert.Equal(t, tc.i8, i.FitsInt8(), "%d int8", tc.v)
		tassert.Equal(t, tc.u8, i.FitsUint8(), "%d uint8", tc.v)
		tassert.Equal(t, tc.i16, i.FitsInt16(), "%d int16", tc.v)
		tassert.Equal(t, tc.u16, i.FitsUint16(), "%d uint16", tc.v)
		tassert.Equal(t, tc.i32, i.FitsInt32(), "%d int32", tc.v)
		tassert.Equal(t, tc.u32, i.FitsUint32(), "%d uint32", tc.v)
	}
}

func TestImmExtension(t *testing.T) {
	// signed sources sign extend
	require.Equal(t, int64(-1), NewImm(int8(-1)).Int64())
	require.Equal(t, int64(-1), NewImm(int32(-1)).Int64())

	// unsigned sources zero extend
	require.Equal(t, int64(0xff), NewImm(uint8(0xff)).Int64())
	require.Equal(t, int64(0xffff_ffff), NewImm(uint32(0xffff_ffff)).Int64())

	require.Equal(t, uint64(math.MaxUint64), NewImm(uint64(math.MaxUint64)).Uint64())
}

func TestImmAccessors(t *testing.T) {
	i := NewImm(uint64(0x1122_3344_5566_7788))

	require.Equal(t, OpImm, i.Kind())
	require.Equal(t, int8(-0x78), i.Int8())
	require.Equal(t, uint8(0x88), i.Uint8())
	require.Equal(t, uint16(0x7788), i.Uint16())
	require.Equal(t, uint32(0x5566_7788), i.Uint32())
	require.Equal(t, int32(0x5566_7788), i.Int32Lo())
	require.Equal(t, int32(0x1122_3344), i.Int32Hi())
	require.Equal(t, uint32(0x5566_7788), i.Uint32Lo())
	require.Equal(t, uint32(0x1122_3344), i.Uint32Hi())
}

func TestImmSetters(t *testing.T) {
	var i Imm = NewImm(0)

	i.SetInt8(-5)
	require.Equal(t, int64(-5), i.Int64())

	i.SetUint8(0xff)
	require.Equal(t, int64(0xff), i.Int64())

	i.SetInt16(-300)
	require.Equal(t, int64(-300), i.Int64())

	i.SetUint32(0x8000_0000)
	require.Equal(t, int64(0x8000_0000), i.Int64())

	i.SetInt64(-1)
	require.Equal(t, uint64(math.MaxUint64), i.Uint64())

	i.SetUint64(42)
	require.Equal(t, int64(42), i.Int64())
}

func TestImmExtendOps(t *testing.T) {
	i := NewImm(uint64(0x1122_3344_5566_7788))

	i.SignExtend8Bits()
	require.Equal(t, int64(-0x78), i.Int64())

	i.SetUint64(0x1122_3344_5566_7788)
	i.ZeroExtend16Bits()
	require.Equal(t, int64(0x7788), i.Int64())

	i.SetUint64(0xffff_ffff_8000_0000)
	i.ZeroExtend32Bits()
	require.Equal(t, int64(0x8000_0000), i.Int64())

	i.SignExtend32Bits()
	require.Equal(t, int64(-0x8000_0000), i.Int64())

	i.SetUint64(0x8000)
	i.SignExtend16Bits()
	require.Equal(t, int64(-0x8000), i.Int64())

	i.SetUint64(0x1ff)
	i.ZeroExtend8Bits()
	require.Equal(t, int64(0xff), i.Int64())
}

func TestImmFloat64(t *testing.T) {
	for _, f := range []float64{0, 1, -1.5, math.Pi, math.Inf(1)} {
		i := NewImmFloat64(f)

		require.Equal(t, f, i.Float64())
		require.Equal(t, math.Float64bits(f), i.Uint64())
	}

	var i Imm = NewImm(0)

	i.SetFloat64(2.5)
	require.Equal(t, 2.5, i.Float64())
}

package asm

import (
	"math"

	"golang.org/x/exp/constraints"
)

type (
	// Imm is an immediate operand, a 64-bit payload reinterpretable as any
	// integer width or a float64 bit pattern.
	Imm struct {
		Operand
	}
)

// NewImm builds an immediate from any integer value. Signed sources are sign
// extended, unsigned ones zero extended.
func NewImm[T constraints.Integer](v T) Imm {
	return Imm{Operand{sig: Sig(OpImm), data: uint64(int64(v))}}
}

// NewImmFloat64 stores the raw float64 bit pattern.
func NewImmFloat64(f float64) Imm {
	return Imm{Operand{sig: Sig(OpImm), data: math.Float64bits(f)}}
}

// Fit predicates let encoders pick the shortest legal encoding. A value that
// does not fit is not an error, the predicate just says no.

func (i Imm) FitsInt8() bool  { return int64(i.data) == int64(int8(i.data)) }
func (i Imm) FitsUint8() bool { return i.data <= 0xff }

func (i Imm) FitsInt16() bool  { return int64(i.data) == int64(int16(i.data)) }
func (i Imm) FitsUint16() bool { return i.data <= 0xffff }

func (i Imm) FitsInt32() bool  { return int64(i.data) == int64(int32(i.data)) }
func (i Imm) FitsUint32() bool { return i.data <= 0xffff_ffff }

func (i Imm) Int8() int8     { return int8(i.data) }
func (i Imm) Uint8() uint8   { return uint8(i.data) }
func (i Imm) Int16() int16   { return int16(i.data) }
func (i Imm) Uint16() uint16 { return uint16(i.data) }
func (i Imm) Int32() int32   { return int32(i.data) }
func (i Imm) Uint32() uint32 { return uint32(i.data) }
func (i Imm) Int64() int64   { return int64(i.data) }
func (i Imm) Uint64() uint64 { return i.data }

func (i Imm) Int32Lo() int32   { return int32(i.data) }
func (i Imm) Int32Hi() int32   { return int32(i.data >> 32) }
func (i Imm) Uint32Lo() uint32 { return uint32(i.data) }
func (i Imm) Uint32Hi() uint32 { return uint32(i.data >> 32) }

// Float64 reinterprets the payload bits as a float64.
func (i Imm) Float64() float64 { return math.Float64frombits(i.data) }

func (i *Imm) SetInt8(v int8)     { i.data = uint64(int64(v)) }
func (i *Imm) SetUint8(v uint8)   { i.data = uint64(v) }
func (i *Imm) SetInt16(v int16)   { i.data = uint64(int64(v)) }
func (i *Imm) SetUint16(v uint16) { i.data = uint64(v) }
func (i *Imm) SetInt32(v int32)   { i.data = uint64(int64(v)) }
func (i *Imm) SetUint32(v uint32) { i.data = uint64(v) }
func (i *Imm) SetInt64(v int64)   { i.data = uint64(v) }
func (i *Imm) SetUint64(v uint64) { i.data = v }

func (i *Imm) SetFloat64(f float64) { i.data = math.Float64bits(f) }

func (i *Imm) SignExtend8Bits()  { i.data = uint64(int64(int8(i.data))) }
func (i *Imm) SignExtend16Bits() { i.data = uint64(int64(int16(i.data))) }
func (i *Imm) SignExtend32Bits() { i.data = uint64(int64(int32(i.data))) }

func (i *Imm) ZeroExtend8Bits()  { i.data &= 0xff }
func (i *Imm) ZeroExtend16Bits() { i.data &= 0xffff }
func (i *Imm) ZeroExtend32Bits() { i.data &= 0xffff_ffff }

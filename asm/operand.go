package asm

import "unsafe"

type (
	// Kind is the operand kind stored in the lowest signature bits.
	Kind uint32

	// Operand holds a register, memory reference, immediate, or label.
	// The zero value is the none operand.
	Operand struct {
		sig  Sig
		base uint32
		data uint64
	}
)

const (
	OpNone Kind = iota
	OpReg
	OpMem
	OpImm
	OpLabel
)

const (
	// BadID splits the register id space: physical ids are below it,
	// virtual ids above, the value itself means no register.
	BadID uint32 = 0xff

	// InvalidID means no id at all. Used by unbound labels.
	InvalidID uint32 = 0xffff_ffff
)

// Virtual register id band. An allocator index maps into it by a fixed
// additive offset.
const (
	VirtIDMin   uint32 = 256
	VirtIDMax          = InvalidID - 1
	VirtIDCount        = VirtIDMax - VirtIDMin + 1
)

// Downstream operand arrays rely on these exact sizes.
var (
	_ [16]byte = [unsafe.Sizeof(Operand{})]byte{}
	_ [8]byte  = [unsafe.Sizeof(RegOnly{})]byte{}

	// IsRegOrMem needs mem to follow reg.
	_ [1]struct{} = [OpMem - OpReg]struct{}{}
)

// MakeOperand builds an operand from raw parts: signature, base id and two
// payload words (low, high).
func MakeOperand(sig Sig, base, d0, d1 uint32) Operand {
	return Operand{sig: sig, base: base, data: uint64(d0) | uint64(d1)<<32}
}

func IsVirtID(id uint32) bool       { return id-VirtIDMin < VirtIDCount }
func IndexToVirtID(i uint32) uint32 { return i + VirtIDMin }
func VirtIDToIndex(id uint32) uint32 {
	assert(IsVirtID(id), "not a virtual register id")

	return id - VirtIDMin
}

func (o Operand) Sig() Sig          { return o.sig }
func (o *Operand) SetSig(s Sig)     { o.sig = s }
func (o Operand) HasSig(s Sig) bool { return o.sig == s }

func (o Operand) Kind() Kind { return Kind(o.sig.Field(SigOpMask)) }

func (o Operand) IsNone() bool  { return o.sig == 0 }
func (o Operand) IsReg() bool   { return o.Kind() == OpReg }
func (o Operand) IsMem() bool   { return o.Kind() == OpMem }
func (o Operand) IsImm() bool   { return o.Kind() == OpImm }
func (o Operand) IsLabel() bool { return o.Kind() == OpLabel }

func (o Operand) IsRegOrMem() bool { return o.Kind()-OpReg <= OpMem-OpReg }

func (o Operand) IsPhysReg() bool { return o.IsReg() && o.base < BadID }
func (o Operand) IsVirtReg() bool { return o.IsReg() && o.base > BadID }

// IsRegType reports whether the operand is a register of type t.
// Only the kind and reg-type fields are compared.
func (o Operand) IsRegType(t RegType) bool {
	const mask = SigOpMask | SigRegTypeMask

	return o.sig&mask == Sig(OpReg)<<SigOpShift|Sig(t)<<SigRegTypeShift
}

func (o Operand) IsRegTypeID(t RegType, id uint32) bool {
	return o.IsRegType(t) && o.base == id
}

func (o Operand) HasSize() bool { return o.sig.HasField(SigSizeMask) }

// Size is the operand size in bytes. Zero for none, imm and label, the
// architectural width for registers, optional metadata for mem.
func (o Operand) Size() uint32 { return o.sig.Field(SigSizeMask) }

// ID is the base id field. Reg id for registers, base reg or label id for
// mem (or the high address half), label id for labels, zero otherwise.
func (o Operand) ID() uint32 { return o.base }

// Equal is exact structural equality of all 16 bytes. Two mem operands
// describing the same address through different fields are not equal.
func (o Operand) Equal(b Operand) bool { return o == b }

// Reset makes the operand none again, whatever kind it was.
func (o *Operand) Reset() { *o = Operand{} }

func (k Kind) String() string {
	switch k {
	case OpNone:
		return "none"
	case OpReg:
		return "reg"
	case OpMem:
		return "mem"
	case OpImm:
		return "imm"
	case OpLabel:
		return "label"
	default:
		return "bad"
	}
}

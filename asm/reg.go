package asm

type (
	// RegType is an architecture neutral register type. Backends map their
	// concrete kinds onto these values and may extend them from
	// RegTypeCustom up.
	RegType uint32

	// RegGroup is an architecture neutral register class. Groups Gp and Vec
	// mean the same thing on every backend, Other0 and Other1 are backend
	// specific.
	RegGroup uint32

	// RegTraits binds a concrete register kind to its type, group, size and
	// precomputed signature. Backends expose closed tables of these.
	RegTraits struct {
		Valid  bool
		Count  uint32
		TypeID uint32

		Type  RegType
		Group RegGroup
		Size  uint32

		Sig Sig
	}

	// Reg is a physical or virtual register operand.
	Reg struct {
		Operand
	}

	// RegOnly is the 8-byte reduced register form for structures that hold
	// very many register references. Behaves like a Reg with zero payload.
	RegOnly struct {
		sig Sig
		id  uint32
	}
)

const (
	RegTypeNone RegType = 0
	// 1 is reserved for LabelTag and never names a register type.
	RegTypeGp8Lo   RegType = 2
	RegTypeGp8Hi   RegType = 3
	RegTypeGp16    RegType = 4
	RegTypeGp32    RegType = 5
	RegTypeGp64    RegType = 6
	RegTypeVec32   RegType = 7
	RegTypeVec64   RegType = 8
	RegTypeVec128  RegType = 9
	RegTypeVec256  RegType = 10
	RegTypeVec512  RegType = 11
	RegTypeVec1024 RegType = 12
	RegTypeOther0  RegType = 13
	RegTypeOther1  RegType = 14
	RegTypeIP      RegType = 15
	RegTypeCustom  RegType = 16
	RegTypeMax     RegType = 31
)

const (
	RegGroupGp RegGroup = iota
	RegGroupVec
	RegGroupOther0
	RegGroupOther1

	// RegGroupVirt is the count of groups the register allocator works with.
	RegGroupVirt

	RegGroupCount RegGroup = 16
)

// Abstract type ids bound to register kinds by RegTraits. Consumed by calling
// convention code, opaque here.
const (
	TypeIDVoid uint32 = iota
	TypeIDI8
	TypeIDI16
	TypeIDI32
	TypeIDI64
	TypeIDF32
	TypeIDF64
	TypeIDV64
	TypeIDV128
	TypeIDV256
	TypeIDV512
	TypeIDMask
	TypeIDMm
)

// MakeRegTraits precomputes the signature for a register kind.
func MakeRegTraits(t RegType, g RegGroup, size, count, typeID uint32) RegTraits {
	return RegTraits{
		Valid:  true,
		Count:  count,
		TypeID: typeID,

		Type:  t,
		Group: g,
		Size:  size,

		Sig: Sig(OpReg)<<SigOpShift |
			Sig(t)<<SigRegTypeShift |
			Sig(g)<<SigRegGroupShift |
			Sig(size)<<SigSizeShift,
	}
}

func NewReg(sig Sig, id uint32) Reg {
	return Reg{MakeOperand(sig, id, 0, 0)}
}

// IsValid: the register has a signature and an id, physical or virtual.
func (r Reg) IsValid() bool { return r.sig != 0 && r.base != BadID }

func (r Reg) IsPhysReg() bool { return r.base < BadID }
func (r Reg) IsVirtReg() bool { return r.base > BadID }

// IsSame compares the first 8 bytes only. Same as Equal for correctly built
// registers, which always have zero payload.
func (r Reg) IsSame(b Reg) bool { return r.sig == b.sig && r.base == b.base }

func (r Reg) IsType(t RegType) bool {
	return r.sig&SigRegTypeMask == Sig(t)<<SigRegTypeShift
}

func (r Reg) IsGroup(g RegGroup) bool {
	return r.sig&SigRegGroupMask == Sig(g)<<SigRegGroupShift
}

func (r Reg) IsGp() bool  { return r.IsGroup(RegGroupGp) }
func (r Reg) IsVec() bool { return r.IsGroup(RegGroupVec) }

func (r Reg) Type() RegType   { return RegType(r.sig.Field(SigRegTypeMask)) }
func (r Reg) Group() RegGroup { return RegGroup(r.sig.Field(SigRegGroupMask)) }

// CloneAs reinterprets the id under another register kind. The caller is
// responsible for the kinds being compatible.
func (r Reg) CloneAs(tr RegTraits) Reg { return NewReg(tr.Sig, r.base) }

// CloneAsReg reinterprets the id under the signature of b.
func (r Reg) CloneAsReg(b Reg) Reg { return NewReg(b.sig, r.base) }

func (r *Reg) SetID(id uint32) { r.base = id }

func (r *Reg) SetSigAndID(sig Sig, id uint32) {
	r.sig = sig
	r.base = id
}

// IsGpOp reports whether op is a general purpose register of any type and
// size. Only kind and group are compared.
func IsGpOp(op Operand) bool {
	const mask = SigOpMask | SigRegGroupMask

	return op.sig&mask == Sig(OpReg)<<SigOpShift|Sig(RegGroupGp)<<SigRegGroupShift
}

// IsVecOp reports whether op is a vector register of any type and size.
func IsVecOp(op Operand) bool {
	const mask = SigOpMask | SigRegGroupMask

	return op.sig&mask == Sig(OpReg)<<SigOpShift|Sig(RegGroupVec)<<SigRegGroupShift
}

func IsGpOpID(op Operand, id uint32) bool  { return IsGpOp(op) && op.base == id }
func IsVecOpID(op Operand, id uint32) bool { return IsVecOp(op) && op.base == id }

// RegOnlyFrom packs a register into the 8-byte form. Lossless, the payload of
// a register is always zero.
func RegOnlyFrom(r Reg) (ro RegOnly) {
	ro.Init(r.sig, r.base)

	return ro
}

func (r *RegOnly) Init(sig Sig, id uint32) {
	r.sig = sig
	r.id = id
}

func (r *RegOnly) Reset() { r.Init(0, 0) }

func (r RegOnly) IsNone() bool { return r.sig == 0 }
func (r RegOnly) IsReg() bool  { return r.sig != 0 }

func (r RegOnly) IsPhysReg() bool { return r.id < BadID }
func (r RegOnly) IsVirtReg() bool { return r.id > BadID }

func (r RegOnly) Sig() Sig   { return r.sig }
func (r RegOnly) ID() uint32 { return r.id }

func (r *RegOnly) SetID(id uint32) { r.id = id }

func (r RegOnly) Type() RegType   { return RegType(r.sig.Field(SigRegTypeMask)) }
func (r RegOnly) Group() RegGroup { return RegGroup(r.sig.Field(SigRegGroupMask)) }

// ToReg restores the full 16-byte register form.
func (r RegOnly) ToReg() Reg { return NewReg(r.sig, r.id) }

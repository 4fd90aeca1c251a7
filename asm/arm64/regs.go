// Package arm64 maps aarch64 register kinds onto the neutral operand model
// and provides the architectural register tables.
package arm64

import (
	"github.com/nikandfor/hacked/hfmt"

	"github.com/slowlang/asmkit/asm"
)

// Concrete register types. W and X are the 32 and 64-bit views of the same
// gp file, B..V are views of the same vector file.
const (
	TypeNone = asm.RegTypeNone
	TypeGpW  = asm.RegTypeGp32
	TypeGpX  = asm.RegTypeGp64
	TypeVecS = asm.RegTypeVec32
	TypeVecD = asm.RegTypeVec64
	TypeVecV = asm.RegTypeVec128
	TypeVecB = asm.RegTypeCustom + 0
	TypeVecH = asm.RegTypeCustom + 1
	TypePC   = asm.RegTypeIP
)

const (
	GroupGp  = asm.RegGroupGp
	GroupVec = asm.RegGroupVec
	GroupPC  = asm.RegGroupVirt + 0
)

// Register id 31 is SP in address contexts and ZR elsewhere, the operand
// model does not distinguish them.
const (
	IDSp uint32 = 31
	IDZr uint32 = 31
)

// Traits is the closed per-kind table, indexed by register type.
var Traits = [asm.RegTypeMax + 1]asm.RegTraits{
	TypeGpW:  asm.MakeRegTraits(TypeGpW, GroupGp, 4, 32, asm.TypeIDI32),
	TypeGpX:  asm.MakeRegTraits(TypeGpX, GroupGp, 8, 32, asm.TypeIDI64),
	TypeVecB: asm.MakeRegTraits(TypeVecB, GroupVec, 1, 32, asm.TypeIDV128),
	TypeVecH: asm.MakeRegTraits(TypeVecH, GroupVec, 2, 32, asm.TypeIDV128),
	TypeVecS: asm.MakeRegTraits(TypeVecS, GroupVec, 4, 32, asm.TypeIDF32),
	TypeVecD: asm.MakeRegTraits(TypeVecD, GroupVec, 8, 32, asm.TypeIDF64),
	TypeVecV: asm.MakeRegTraits(TypeVecV, GroupVec, 16, 32, asm.TypeIDV128),
	TypePC:   asm.MakeRegTraits(TypePC, GroupPC, 8, 1, asm.TypeIDVoid),
}

// SigOf returns the precomputed signature of a register type, zero for an
// unknown type.
func SigOf(t asm.RegType) asm.Sig { return Traits[t&asm.RegTypeMax].Sig }

// FromTypeAndID builds a register from a concrete type and id.
func FromTypeAndID(t asm.RegType, id uint32) asm.Reg {
	return asm.NewReg(SigOf(t), id)
}

func W(id uint32) asm.Reg { return asm.NewReg(Traits[TypeGpW].Sig, id) }
func X(id uint32) asm.Reg { return asm.NewReg(Traits[TypeGpX].Sig, id) }
func B(id uint32) asm.Reg { return asm.NewReg(Traits[TypeVecB].Sig, id) }
func H(id uint32) asm.Reg { return asm.NewReg(Traits[TypeVecH].Sig, id) }
func S(id uint32) asm.Reg { return asm.NewReg(Traits[TypeVecS].Sig, id) }
func D(id uint32) asm.Reg { return asm.NewReg(Traits[TypeVecD].Sig, id) }
func V(id uint32) asm.Reg { return asm.NewReg(Traits[TypeVecV].Sig, id) }

var (
	X0  = X(0)
	X1  = X(1)
	X2  = X(2)
	X3  = X(3)
	X4  = X(4)
	X5  = X(5)
	X6  = X(6)
	X7  = X(7)
	X8  = X(8)
	X9  = X(9)
	X10 = X(10)
	X11 = X(11)
	X12 = X(12)
	X13 = X(13)
	X14 = X(14)
	X15 = X(15)
	X16 = X(16)
	X17 = X(17)
	X18 = X(18)
	X19 = X(19)
	X20 = X(20)
	X21 = X(21)
	X22 = X(22)
	X23 = X(23)
	X24 = X(24)
	X25 = X(25)
	X26 = X(26)
	X27 = X(27)
	X28 = X(28)

	FP = X(29)
	LR = X(30)
	SP = X(IDSp)

	W0  = W(0)
	W1  = W(1)
	W2  = W(2)
	W3  = W(3)
	W4  = W(4)
	W5  = W(5)
	W6  = W(6)
	W7  = W(7)
	W8  = W(8)
	W9  = W(9)
	W10 = W(10)
	W11 = W(11)
	W12 = W(12)
	W13 = W(13)
	W14 = W(14)
	W15 = W(15)
	W16 = W(16)
	W17 = W(17)
	W18 = W(18)
	W19 = W(19)
	W20 = W(20)
	W21 = W(21)
	W22 = W(22)
	W23 = W(23)
	W24 = W(24)
	W25 = W(25)
	W26 = W(26)
	W27 = W(27)
	W28 = W(28)
	W29 = W(29)
	W30 = W(30)

	WZR = W(IDZr)
	XZR = X(IDZr)

	S0 = S(0)
	S1 = S(1)
	S2 = S(2)
	S3 = S(3)
	S4 = S(4)
	S5 = S(5)
	S6 = S(6)
	S7 = S(7)

	D0 = D(0)
	D1 = D(1)
	D2 = D(2)
	D3 = D(3)
	D4 = D(4)
	D5 = D(5)
	D6 = D(6)
	D7 = D(7)

	V0 = V(0)
	V1 = V(1)
	V2 = V(2)
	V3 = V(3)
	V4 = V(4)
	V5 = V(5)
	V6 = V(6)
	V7 = V(7)

	PC = asm.NewReg(Traits[TypePC].Sig, 0)
)

// AppendRegName appends the architectural register name, or v<index> for a
// virtual register id.
func AppendRegName(b []byte, t asm.RegType, id uint32) []byte {
	if asm.IsVirtID(id) {
		return hfmt.Appendf(b, "v%d", asm.VirtIDToIndex(id))
	}

	switch {
	case t == TypeGpX && id == IDSp:
		return append(b, "sp"...)
	case t == TypeGpW && id == IDZr:
		return append(b, "wzr"...)
	case t == TypeGpX:
		return hfmt.Appendf(b, "x%d", id)
	case t == TypeGpW:
		return hfmt.Appendf(b, "w%d", id)
	case t == TypeVecB:
		return hfmt.Appendf(b, "b%d", id)
	case t == TypeVecH:
		return hfmt.Appendf(b, "h%d", id)
	case t == TypeVecS:
		return hfmt.Appendf(b, "s%d", id)
	case t == TypeVecD:
		return hfmt.Appendf(b, "d%d", id)
	case t == TypeVecV:
		return hfmt.Appendf(b, "q%d", id)
	case t == TypePC:
		return append(b, "pc"...)
	default:
		return hfmt.Appendf(b, "r?%d.%d", t, id)
	}
}

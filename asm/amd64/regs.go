// Package amd64 maps x86-64 register kinds onto the neutral operand model
// and provides the architectural register tables.
package amd64

import (
	"github.com/nikandfor/hacked/hfmt"

	"github.com/slowlang/asmkit/asm"
)

// Concrete register types. Gp and vec kinds reuse the neutral slots, the
// rest extends from RegTypeCustom.
const (
	TypeNone  = asm.RegTypeNone
	TypeGpbLo = asm.RegTypeGp8Lo
	TypeGpbHi = asm.RegTypeGp8Hi
	TypeGpw   = asm.RegTypeGp16
	TypeGpd   = asm.RegTypeGp32
	TypeGpq   = asm.RegTypeGp64
	TypeXmm   = asm.RegTypeVec128
	TypeYmm   = asm.RegTypeVec256
	TypeZmm   = asm.RegTypeVec512
	TypeMm    = asm.RegTypeOther0
	TypeKReg  = asm.RegTypeOther1
	TypeSReg  = asm.RegTypeCustom + 0
	TypeCReg  = asm.RegTypeCustom + 1
	TypeDReg  = asm.RegTypeCustom + 2
	TypeSt    = asm.RegTypeCustom + 3
	TypeBnd   = asm.RegTypeCustom + 4
	TypeRip   = asm.RegTypeIP
)

// Register groups. Groups from GroupSReg up are never touched by the
// register allocator.
const (
	GroupGp   = asm.RegGroupGp
	GroupVec  = asm.RegGroupVec
	GroupMm   = asm.RegGroupOther0
	GroupKReg = asm.RegGroupOther1

	GroupSReg = asm.RegGroupVirt + 0
	GroupCReg = asm.RegGroupVirt + 1
	GroupDReg = asm.RegGroupVirt + 2
	GroupSt   = asm.RegGroupVirt + 3
	GroupBnd  = asm.RegGroupVirt + 4
	GroupRip  = asm.RegGroupVirt + 5
)

// Traits is the closed per-kind table, indexed by register type.
var Traits = [asm.RegTypeMax + 1]asm.RegTraits{
	TypeGpbLo: asm.MakeRegTraits(TypeGpbLo, GroupGp, 1, 16, asm.TypeIDI8),
	TypeGpbHi: asm.MakeRegTraits(TypeGpbHi, GroupGp, 1, 4, asm.TypeIDI8),
	TypeGpw:   asm.MakeRegTraits(TypeGpw, GroupGp, 2, 16, asm.TypeIDI16),
	TypeGpd:   asm.MakeRegTraits(TypeGpd, GroupGp, 4, 16, asm.TypeIDI32),
	TypeGpq:   asm.MakeRegTraits(TypeGpq, GroupGp, 8, 16, asm.TypeIDI64),
	TypeXmm:   asm.MakeRegTraits(TypeXmm, GroupVec, 16, 32, asm.TypeIDV128),
	TypeYmm:   asm.MakeRegTraits(TypeYmm, GroupVec, 32, 32, asm.TypeIDV256),
	TypeZmm:   asm.MakeRegTraits(TypeZmm, GroupVec, 64, 32, asm.TypeIDV512),
	TypeMm:    asm.MakeRegTraits(TypeMm, GroupMm, 8, 8, asm.TypeIDMm),
	TypeKReg:  asm.MakeRegTraits(TypeKReg, GroupKReg, 0, 8, asm.TypeIDMask),
	TypeSReg:  asm.MakeRegTraits(TypeSReg, GroupSReg, 2, 7, asm.TypeIDVoid),
	TypeCReg:  asm.MakeRegTraits(TypeCReg, GroupCReg, 0, 16, asm.TypeIDVoid),
	TypeDReg:  asm.MakeRegTraits(TypeDReg, GroupDReg, 0, 16, asm.TypeIDVoid),
	TypeSt:    asm.MakeRegTraits(TypeSt, GroupSt, 10, 8, asm.TypeIDVoid),
	TypeBnd:   asm.MakeRegTraits(TypeBnd, GroupBnd, 16, 4, asm.TypeIDVoid),
	TypeRip:   asm.MakeRegTraits(TypeRip, GroupRip, 0, 1, asm.TypeIDVoid),
}

// SigOf returns the precomputed signature of a register type, zero for an
// unknown type.
func SigOf(t asm.RegType) asm.Sig { return Traits[t&asm.RegTypeMax].Sig }

// FromTypeAndID builds a register from a concrete type and id.
func FromTypeAndID(t asm.RegType, id uint32) asm.Reg {
	return asm.NewReg(SigOf(t), id)
}

func Gpb(id uint32) asm.Reg   { return asm.NewReg(Traits[TypeGpbLo].Sig, id) }
func GpbHi(id uint32) asm.Reg { return asm.NewReg(Traits[TypeGpbHi].Sig, id) }
func Gpw(id uint32) asm.Reg   { return asm.NewReg(Traits[TypeGpw].Sig, id) }
func Gpd(id uint32) asm.Reg   { return asm.NewReg(Traits[TypeGpd].Sig, id) }
func Gpq(id uint32) asm.Reg   { return asm.NewReg(Traits[TypeGpq].Sig, id) }
func Xmm(id uint32) asm.Reg   { return asm.NewReg(Traits[TypeXmm].Sig, id) }
func Ymm(id uint32) asm.Reg   { return asm.NewReg(Traits[TypeYmm].Sig, id) }
func Zmm(id uint32) asm.Reg   { return asm.NewReg(Traits[TypeZmm].Sig, id) }
func Mm(id uint32) asm.Reg    { return asm.NewReg(Traits[TypeMm].Sig, id) }
func K(id uint32) asm.Reg     { return asm.NewReg(Traits[TypeKReg].Sig, id) }
func SReg(id uint32) asm.Reg  { return asm.NewReg(Traits[TypeSReg].Sig, id) }
func CReg(id uint32) asm.Reg  { return asm.NewReg(Traits[TypeCReg].Sig, id) }
func DReg(id uint32) asm.Reg  { return asm.NewReg(Traits[TypeDReg].Sig, id) }
func St(id uint32) asm.Reg    { return asm.NewReg(Traits[TypeSt].Sig, id) }
func Bnd(id uint32) asm.Reg   { return asm.NewReg(Traits[TypeBnd].Sig, id) }

var (
	RAX = Gpq(0)
	RCX = Gpq(1)
	RDX = Gpq(2)
	RBX = Gpq(3)
	RSP = Gpq(4)
	RBP = Gpq(5)
	RSI = Gpq(6)
	RDI = Gpq(7)
	R8  = Gpq(8)
	R9  = Gpq(9)
	R10 = Gpq(10)
	R11 = Gpq(11)
	R12 = Gpq(12)
	R13 = Gpq(13)
	R14 = Gpq(14)
	R15 = Gpq(15)

	EAX  = Gpd(0)
	ECX  = Gpd(1)
	EDX  = Gpd(2)
	EBX  = Gpd(3)
	ESP  = Gpd(4)
	EBP  = Gpd(5)
	ESI  = Gpd(6)
	EDI  = Gpd(7)
	R8D  = Gpd(8)
	R9D  = Gpd(9)
	R10D = Gpd(10)
	R11D = Gpd(11)
	R12D = Gpd(12)
	R13D = Gpd(13)
	R14D = Gpd(14)
	R15D = Gpd(15)

	AX   = Gpw(0)
	CX   = Gpw(1)
	DX   = Gpw(2)
	BX   = Gpw(3)
	SP   = Gpw(4)
	BP   = Gpw(5)
	SI   = Gpw(6)
	DI   = Gpw(7)
	R8W  = Gpw(8)
	R9W  = Gpw(9)
	R10W = Gpw(10)
	R11W = Gpw(11)
	R12W = Gpw(12)
	R13W = Gpw(13)
	R14W = Gpw(14)
	R15W = Gpw(15)

	AL   = Gpb(0)
	CL   = Gpb(1)
	DL   = Gpb(2)
	BL   = Gpb(3)
	SPL  = Gpb(4)
	BPL  = Gpb(5)
	SIL  = Gpb(6)
	DIL  = Gpb(7)
	R8B  = Gpb(8)
	R9B  = Gpb(9)
	R10B = Gpb(10)
	R11B = Gpb(11)
	R12B = Gpb(12)
	R13B = Gpb(13)
	R14B = Gpb(14)
	R15B = Gpb(15)

	AH = GpbHi(0)
	CH = GpbHi(1)
	DH = GpbHi(2)
	BH = GpbHi(3)

	XMM0  = Xmm(0)
	XMM1  = Xmm(1)
	XMM2  = Xmm(2)
	XMM3  = Xmm(3)
	XMM4  = Xmm(4)
	XMM5  = Xmm(5)
	XMM6  = Xmm(6)
	XMM7  = Xmm(7)
	XMM8  = Xmm(8)
	XMM9  = Xmm(9)
	XMM10 = Xmm(10)
	XMM11 = Xmm(11)
	XMM12 = Xmm(12)
	XMM13 = Xmm(13)
	XMM14 = Xmm(14)
	XMM15 = Xmm(15)

	YMM0 = Ymm(0)
	YMM1 = Ymm(1)
	YMM2 = Ymm(2)
	YMM3 = Ymm(3)
	YMM4 = Ymm(4)
	YMM5 = Ymm(5)
	YMM6 = Ymm(6)
	YMM7 = Ymm(7)

	ZMM0 = Zmm(0)
	ZMM1 = Zmm(1)
	ZMM2 = Zmm(2)
	ZMM3 = Zmm(3)
	ZMM4 = Zmm(4)
	ZMM5 = Zmm(5)
	ZMM6 = Zmm(6)
	ZMM7 = Zmm(7)

	MM0 = Mm(0)
	MM1 = Mm(1)
	MM2 = Mm(2)
	MM3 = Mm(3)
	MM4 = Mm(4)
	MM5 = Mm(5)
	MM6 = Mm(6)
	MM7 = Mm(7)

	K0 = K(0)
	K1 = K(1)
	K2 = K(2)
	K3 = K(3)
	K4 = K(4)
	K5 = K(5)
	K6 = K(6)
	K7 = K(7)

	ST0 = St(0)
	ST1 = St(1)
	ST2 = St(2)
	ST3 = St(3)
	ST4 = St(4)
	ST5 = St(5)
	ST6 = St(6)
	ST7 = St(7)

	BND0 = Bnd(0)
	BND1 = Bnd(1)
	BND2 = Bnd(2)
	BND3 = Bnd(3)

	ES = SReg(SegES)
	CS = SReg(SegCS)
	SS = SReg(SegSS)
	DS = SReg(SegDS)
	FS = SReg(SegFS)
	GS = SReg(SegGS)

	RIP = asm.NewReg(Traits[TypeRip].Sig, 0)
)

// Segment register ids as stored in the mem segment field. Zero means no
// override.
const (
	SegES uint32 = 1 + iota
	SegCS
	SegSS
	SegDS
	SegFS
	SegGS
)

var (
	gpqNames = [16]string{"rax", "rcx", "rdx", "rbx", "rsp", "rbp", "rsi", "rdi", "r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15"}
	gpdNames = [16]string{"eax", "ecx", "edx", "ebx", "esp", "ebp", "esi", "edi", "r8d", "r9d", "r10d", "r11d", "r12d", "r13d", "r14d", "r15d"}
	gpwNames = [16]string{"ax", "cx", "dx", "bx", "sp", "bp", "si", "di", "r8w", "r9w", "r10w", "r11w", "r12w", "r13w", "r14w", "r15w"}
	gpbNames = [16]string{"al", "cl", "dl", "bl", "spl", "bpl", "sil", "dil", "r8b", "r9b", "r10b", "r11b", "r12b", "r13b", "r14b", "r15b"}
	gphNames = [4]string{"ah", "ch", "dh", "bh"}
	sgNames  = [7]string{"", "es", "cs", "ss", "ds", "fs", "gs"}
)

// AppendRegName appends the architectural register name, or v<index> for a
// virtual register id.
func AppendRegName(b []byte, t asm.RegType, id uint32) []byte {
	if asm.IsVirtID(id) {
		return hfmt.Appendf(b, "v%d", asm.VirtIDToIndex(id))
	}

	switch {
	case t == TypeGpq && id < 16:
		return append(b, gpqNames[id]...)
	case t == TypeGpd && id < 16:
		return append(b, gpdNames[id]...)
	case t == TypeGpw && id < 16:
		return append(b, gpwNames[id]...)
	case t == TypeGpbLo && id < 16:
		return append(b, gpbNames[id]...)
	case t == TypeGpbHi && id < 4:
		return append(b, gphNames[id]...)
	case t == TypeXmm:
		return hfmt.Appendf(b, "xmm%d", id)
	case t == TypeYmm:
		return hfmt.Appendf(b, "ymm%d", id)
	case t == TypeZmm:
		return hfmt.Appendf(b, "zmm%d", id)
	case t == TypeMm:
		return hfmt.Appendf(b, "mm%d", id)
	case t == TypeKReg:
		return hfmt.Appendf(b, "k%d", id)
	case t == TypeSReg && id < 7:
		return append(b, sgNames[id]...)
	case t == TypeCReg:
		return hfmt.Appendf(b, "cr%d", id)
	case t == TypeDReg:
		return hfmt.Appendf(b, "dr%d", id)
	case t == TypeSt:
		return hfmt.Appendf(b, "st%d", id)
	case t == TypeBnd:
		return hfmt.Appendf(b, "bnd%d", id)
	case t == TypeRip:
		return append(b, "rip"...)
	default:
		return hfmt.Appendf(b, "r?%d.%d", t, id)
	}
}

package arm64

import "github.com/slowlang/asmkit/asm"

type (
	// OffsetMode is the aarch64 base update discipline.
	OffsetMode uint32

	// Mem is a memory operand with the aarch64 use of the spare signature
	// bits: index shift amount and offset mode.
	Mem struct {
		asm.Mem
	}
)

const (
	OffsetFixed OffsetMode = iota
	OffsetPreIndex
	OffsetPostIndex
)

const (
	// |........|..XXXXXX|........|........|
	SigMemShiftShift         = 16
	SigMemShiftMask  asm.Sig = 0x3f << SigMemShiftShift

	// |........|XX......|........|........|
	SigMemOffsetModeShift         = 22
	SigMemOffsetModeMask  asm.Sig = 0x03 << SigMemOffsetModeShift
)

// Ptr is [base, #disp].
func Ptr(base asm.Reg, disp int32, size uint32) Mem {
	return Mem{asm.NewMem(asm.Decomposed{
		BaseType: base.Type(),
		BaseID:   base.ID(),
		Offset:   disp,
		Size:     size,
	})}
}

// PtrIndex is [base, index, lsl #shift].
func PtrIndex(base, index asm.Reg, shift uint32, size uint32) Mem {
	return Mem{asm.NewMem(asm.Decomposed{
		BaseType:  base.Type(),
		BaseID:    base.ID(),
		IndexType: index.Type(),
		IndexID:   index.ID(),
		Size:      size,
		Flags:     asm.Sig(shift) << SigMemShiftShift,
	})}
}

// PtrPre is [base, #disp]! (base updated before the access).
func PtrPre(base asm.Reg, disp int32, size uint32) Mem {
	return Mem{asm.NewMem(asm.Decomposed{
		BaseType: base.Type(),
		BaseID:   base.ID(),
		Offset:   disp,
		Size:     size,
		Flags:    asm.Sig(OffsetPreIndex) << SigMemOffsetModeShift,
	})}
}

// PtrPost is [base], #disp (base updated after the access).
func PtrPost(base asm.Reg, disp int32, size uint32) Mem {
	return Mem{asm.NewMem(asm.Decomposed{
		BaseType: base.Type(),
		BaseID:   base.ID(),
		Offset:   disp,
		Size:     size,
		Flags:    asm.Sig(OffsetPostIndex) << SigMemOffsetModeShift,
	})}
}

// LabelPtr is a label-relative reference.
func LabelPtr(l asm.Label, disp int32, size uint32) Mem {
	return Mem{asm.NewMem(asm.Decomposed{
		BaseType: asm.LabelTag,
		BaseID:   l.ID(),
		Offset:   disp,
		Size:     size,
	})}
}

func (m Mem) Shift() uint32 {
	return m.Sig().Field(SigMemShiftMask)
}

func (m *Mem) SetShift(shift uint32) {
	m.SetSig(m.Sig().WithField(SigMemShiftMask, shift))
}

func (m Mem) OffsetMode() OffsetMode {
	return OffsetMode(m.Sig().Field(SigMemOffsetModeMask))
}

func (m *Mem) SetOffsetMode(mode OffsetMode) {
	m.SetSig(m.Sig().WithField(SigMemOffsetModeMask, uint32(mode)))
}

func (m Mem) IsPreIndex() bool  { return m.OffsetMode() == OffsetPreIndex }
func (m Mem) IsPostIndex() bool { return m.OffsetMode() == OffsetPostIndex }

package amd64

import "github.com/slowlang/asmkit/asm"

type (
	// Mem is a memory operand with the x86 use of the spare signature
	// bits: index shift (scale) and segment override.
	Mem struct {
		asm.Mem
	}
)

// x86 packs scale and segment override into the spare signature range
// between the reg-home flag and the size byte.
const (
	// |........|......XX|........|........|
	SigMemShiftShift         = 16
	SigMemShiftMask  asm.Sig = 0x03 << SigMemShiftShift

	// |........|...XXX..|........|........|
	SigMemSegmentShift         = 18
	SigMemSegmentMask  asm.Sig = 0x07 << SigMemSegmentShift
)

// Ptr is [base + disp].
func Ptr(base asm.Reg, disp int32, size uint32) Mem {
	return Mem{asm.NewMem(asm.Decomposed{
		BaseType: base.Type(),
		BaseID:   base.ID(),
		Offset:   disp,
		Size:     size,
	})}
}

// PtrIndex is [base + index<<shift + disp].
func PtrIndex(base, index asm.Reg, shift uint32, disp int32, size uint32) Mem {
	return Mem{asm.NewMem(asm.Decomposed{
		BaseType:  base.Type(),
		BaseID:    base.ID(),
		IndexType: index.Type(),
		IndexID:   index.ID(),
		Offset:    disp,
		Size:      size,
		Flags:     asm.Sig(shift) << SigMemShiftShift,
	})}
}

// LabelPtr is [label + disp].
func LabelPtr(l asm.Label, disp int32, size uint32) Mem {
	return Mem{asm.NewMem(asm.Decomposed{
		BaseType: asm.LabelTag,
		BaseID:   l.ID(),
		Offset:   disp,
		Size:     size,
	})}
}

// Abs is a 64-bit absolute address, no base.
func Abs(addr uint64, size uint32) (m Mem) {
	m = Mem{asm.NewMem(asm.Decomposed{
		Size:  size,
		Flags: asm.SigMemAbs,
	})}
	m.SetOffset(int64(addr))

	return m
}

// Rel is a rip-relative target address, no base.
func Rel(addr uint64, size uint32) (m Mem) {
	m = Mem{asm.NewMem(asm.Decomposed{
		Size:  size,
		Flags: asm.SigMemRel,
	})}
	m.SetOffset(int64(addr))

	return m
}

func (m Mem) Shift() uint32 {
	return m.Sig().Field(SigMemShiftMask)
}

func (m *Mem) SetShift(shift uint32) {
	m.SetSig(m.Sig().WithField(SigMemShiftMask, shift))
}

func (m Mem) HasShift() bool { return m.Sig().HasField(SigMemShiftMask) }

func (m Mem) Segment() uint32 {
	return m.Sig().Field(SigMemSegmentMask)
}

func (m *Mem) SetSegment(seg uint32) {
	m.SetSig(m.Sig().WithField(SigMemSegmentMask, seg))
}

func (m Mem) HasSegment() bool { return m.Sig().HasField(SigMemSegmentMask) }

func (m *Mem) ResetSegment() { m.SetSegment(0) }

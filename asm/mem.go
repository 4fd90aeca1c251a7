package asm

type (
	// AddrType is the memory addressing kind.
	AddrType uint32

	// Decomposed is the unpacked form a memory operand is built from.
	// Flags are backend bits packed into the spare signature range.
	Decomposed struct {
		BaseType  RegType
		BaseID    uint32
		IndexType RegType
		IndexID   uint32
		Offset    int32
		Size      uint32
		Flags     Sig
	}

	// Mem is a memory operand.
	//
	// BASE is a register, a label, or absent. When absent the operand is a
	// 64-bit absolute address: the base id field holds the high 32 address
	// bits and the low payload word the low 32. When present the offset is
	// a signed 32-bit displacement and the base id field holds the base's
	// own id.
	Mem struct {
		Operand
	}
)

const (
	AddrTypeDefault AddrType = iota
	AddrTypeAbs
	AddrTypeRel
)

const (
	SigMemAbs = Sig(AddrTypeAbs) << SigMemAddrTypeShift
	SigMemRel = Sig(AddrTypeRel) << SigMemAddrTypeShift
)

// NewMem packs decomposed fields into a memory operand.
func NewMem(d Decomposed) Mem {
	return Mem{MakeOperand(
		Sig(OpMem)<<SigOpShift|
			Sig(d.BaseType)<<SigMemBaseTypeShift|
			Sig(d.IndexType)<<SigMemIndexTypeShift|
			Sig(d.Size)<<SigSizeShift|
			d.Flags,
		d.BaseID,
		d.IndexID,
		uint32(d.Offset),
	)}
}

// Reset makes the operand point to [0].
func (m *Mem) Reset() {
	*m = Mem{MakeOperand(Sig(OpMem), 0, 0, 0)}
}

func (m Mem) AddrType() AddrType {
	return AddrType(m.sig.Field(SigMemAddrTypeMask))
}

func (m *Mem) SetAddrType(t AddrType) {
	m.sig = m.sig.WithField(SigMemAddrTypeMask, uint32(t))
}

func (m *Mem) ResetAddrType() { m.SetAddrType(AddrTypeDefault) }

func (m Mem) IsAbs() bool { return m.AddrType() == AddrTypeAbs }
func (m *Mem) SetAbs()    { m.SetAddrType(AddrTypeAbs) }

func (m Mem) IsRel() bool { return m.AddrType() == AddrTypeRel }
func (m *Mem) SetRel()    { m.SetAddrType(AddrTypeRel) }

// RegHome marks a spilled virtual register home slot.
func (m Mem) IsRegHome() bool  { return m.sig.HasField(SigMemRegHomeFlag) }
func (m *Mem) SetRegHome()     { m.sig |= SigMemRegHomeFlag }
func (m *Mem) ClearRegHome()   { m.sig &^= SigMemRegHomeFlag }

func (m Mem) HasBase() bool  { return m.sig&SigMemBaseTypeMask != 0 }
func (m Mem) HasIndex() bool { return m.sig&SigMemIndexTypeMask != 0 }

func (m Mem) HasBaseOrIndex() bool { return m.sig&SigMemBaseIndexMask != 0 }
func (m Mem) HasBaseAndIndex() bool {
	return m.sig&SigMemBaseTypeMask != 0 && m.sig&SigMemIndexTypeMask != 0
}

// Register types start after LabelTag, so one compare tells label from reg.
func (m Mem) HasBaseReg() bool {
	return m.sig&SigMemBaseTypeMask > Sig(LabelTag)<<SigMemBaseTypeShift
}

func (m Mem) HasBaseLabel() bool {
	return m.sig&SigMemBaseTypeMask == Sig(LabelTag)<<SigMemBaseTypeShift
}

func (m Mem) HasIndexReg() bool {
	return m.sig&SigMemIndexTypeMask > Sig(LabelTag)<<SigMemIndexTypeShift
}

// BaseType is the base register type, LabelTag for a label base, zero when
// the base slot is empty. Check HasBaseLabel before trusting BaseID.
func (m Mem) BaseType() RegType {
	return RegType(m.sig.Field(SigMemBaseTypeMask))
}

func (m Mem) IndexType() RegType {
	return RegType(m.sig.Field(SigMemIndexTypeMask))
}

// BaseAndIndexTypes returns both type fields as one integer for combined
// validation.
func (m Mem) BaseAndIndexTypes() uint32 {
	return m.sig.Field(SigMemBaseIndexMask)
}

func (m Mem) BaseID() uint32  { return m.base }
func (m Mem) IndexID() uint32 { return uint32(m.data) }

// SetBaseID rewrites the base id leaving its type untouched. This is the
// entry point the register allocator uses.
func (m *Mem) SetBaseID(id uint32) { m.base = id }

func (m *Mem) SetIndexID(id uint32) {
	m.data = m.data&^uint64(0xffff_ffff) | uint64(id)
}

func (m *Mem) SetBase(r Reg)        { m.setBase(r.Type(), r.ID()) }
func (m *Mem) SetBaseLabel(l Label) { m.setBase(LabelTag, l.ID()) }
func (m *Mem) SetIndex(r Reg)       { m.setIndex(r.Type(), r.ID()) }

func (m *Mem) setBase(t RegType, id uint32) {
	m.sig = m.sig.WithField(SigMemBaseTypeMask, uint32(t))
	m.base = id
}

func (m *Mem) setIndex(t RegType, id uint32) {
	m.sig = m.sig.WithField(SigMemIndexTypeMask, uint32(t))
	m.SetIndexID(id)
}

func (m *Mem) ResetBase()  { m.setBase(0, 0) }
func (m *Mem) ResetIndex() { m.setIndex(0, 0) }

func (m *Mem) SetSize(size uint32) {
	m.sig = m.sig.WithField(SigSizeMask, size)
}

// IsOffset64Bit: no base means the operand is a 64-bit absolute address
// split across the base id (high) and low offset words.
func (m Mem) IsOffset64Bit() bool { return m.BaseType() == RegTypeNone }

func (m Mem) HasOffset() bool {
	if m.IsOffset64Bit() {
		return m.offLo()|m.base != 0
	}

	return m.offLo() != 0
}

func (m Mem) Offset() int64 {
	if m.IsOffset64Bit() {
		return int64(uint64(m.offLo()) | uint64(m.base)<<32)
	}

	return int64(int32(m.offLo())) // sign extend
}

func (m Mem) OffsetLo32() int32 { return int32(m.offLo()) }

// OffsetHi32 is garbage unless IsOffset64Bit. Never use it blindly.
func (m Mem) OffsetHi32() int32 { return int32(m.base) }

// SetOffset stores a 64-bit offset or absolute address. With a base present
// only the low 32 bits can be stored, the base id word is not touched.
func (m *Mem) SetOffset(off int64) {
	m.setOffLo(uint32(uint64(off)))

	if m.IsOffset64Bit() {
		m.base = uint32(uint64(off) >> 32)
	}
}

func (m *Mem) SetOffsetLo32(off int32) { m.setOffLo(uint32(off)) }

// AddOffset adjusts the offset by off. In absolute mode the add is a full
// 64-bit add with carry across both words. In based mode only the low word
// is adjusted and wraps silently, the base id word holds a register id,
// not address bits.
func (m *Mem) AddOffset(off int64) {
	if m.IsOffset64Bit() {
		sum := uint64(off) + (uint64(m.offLo()) | uint64(m.base)<<32)

		m.setOffLo(uint32(sum))
		m.base = uint32(sum >> 32)

		return
	}

	m.setOffLo(m.offLo() + uint32(uint64(off)))
}

// AddOffsetLo32 adds to the low word only. Fast path, use it only when a
// base is known to be present.
func (m *Mem) AddOffsetLo32(off int32) { m.setOffLo(m.offLo() + uint32(off)) }

func (m *Mem) ResetOffset()     { m.SetOffset(0) }
func (m *Mem) ResetOffsetLo32() { m.SetOffsetLo32(0) }

func (m Mem) offLo() uint32 { return uint32(m.data >> 32) }

func (m *Mem) setOffLo(v uint32) {
	m.data = m.data&0xffff_ffff | uint64(v)<<32
}

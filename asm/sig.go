package asm

import "math/bits"

type (
	// Sig is the packed operand signature word.
	Sig uint32
)

// Signature bit layout. Reg and mem sub-layouts overlay the same 3..15 range,
// the kind field in bits 0..2 tells which one applies. The top byte is the
// operand size for every kind.
const (
	// |........|........|........|.....XXX|
	SigOpShift     = 0
	SigOpMask  Sig = 0x07 << SigOpShift

	// |........|........|........|XXXXX...|
	SigRegTypeShift     = 3
	SigRegTypeMask  Sig = 0x1f << SigRegTypeShift

	// |........|........|....XXXX|........|
	SigRegGroupShift     = 8
	SigRegGroupMask  Sig = 0x0f << SigRegGroupShift

	// |........|........|........|XXXXX...|
	SigMemBaseTypeShift     = 3
	SigMemBaseTypeMask  Sig = 0x1f << SigMemBaseTypeShift

	// |........|........|...XXXXX|........|
	SigMemIndexTypeShift     = 8
	SigMemIndexTypeMask  Sig = 0x1f << SigMemIndexTypeShift

	// |........|........|...XXXXX|XXXXX...|
	SigMemBaseIndexShift     = 3
	SigMemBaseIndexMask  Sig = 0x3ff << SigMemBaseIndexShift

	// |........|........|.XX.....|........|
	SigMemAddrTypeShift     = 13
	SigMemAddrTypeMask  Sig = 0x03 << SigMemAddrTypeShift

	// |........|........|X.......|........|
	SigMemRegHomeShift     = 15
	SigMemRegHomeFlag  Sig = 0x01 << SigMemRegHomeShift

	// |XXXXXXXX|........|........|........|
	SigSizeShift     = 24
	SigSizeMask  Sig = 0xff << SigSizeShift
)

// Field extracts the field selected by mask. The same routine serves every
// field, per-field shifts are derived from the mask.
func (s Sig) Field(mask Sig) uint32 {
	tz := bits.TrailingZeros32(uint32(mask))

	return uint32(s>>tz) & uint32(mask>>tz)
}

// WithField returns s with the field selected by mask replaced by val.
// val must fit the field width, excess bits are a caller bug.
func (s Sig) WithField(mask Sig, val uint32) Sig {
	tz := bits.TrailingZeros32(uint32(mask))

	assert(val&^uint32(mask>>tz) == 0, "signature field value wider than mask")

	return s&^mask | Sig(val)<<tz
}

func (s Sig) HasField(mask Sig) bool { return s&mask != 0 }

// Sig doubles as a register info view over a bare signature word.

func (s Sig) IsValid() bool { return s != 0 }

func (s Sig) Op() Kind           { return Kind(s.Field(SigOpMask)) }
func (s Sig) RegType() RegType   { return RegType(s.Field(SigRegTypeMask)) }
func (s Sig) RegGroup() RegGroup { return RegGroup(s.Field(SigRegGroupMask)) }
func (s Sig) Size() uint32       { return s.Field(SigSizeMask) }

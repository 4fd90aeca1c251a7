package asm

type (
	// Label is a symbolic code or data location. Ids are allocated and
	// bound by the embedding code generation context, the operand only
	// carries the id.
	Label struct {
		Operand
	}

	// LabelType matters to name resolution, not to the encoding.
	LabelType uint32
)

// LabelTag is a pseudo register type. No real register type is ever 1, so a
// mem base field can hold either a register type or this tag over the same
// bits.
const LabelTag RegType = 1

const (
	LabelAnonymous LabelType = iota
	LabelLocal
	LabelGlobal

	LabelTypeCount
)

func NewLabel(id uint32) Label {
	return Label{MakeOperand(Sig(OpLabel), id, 0, 0)}
}

// Reset reinitializes to an unbound label, not to a none operand.
func (l *Label) Reset() {
	*l = NewLabel(InvalidID)
}

// IsValid: the label got an id from an emitter.
func (l Label) IsValid() bool { return l.base != InvalidID }

func (l *Label) SetID(id uint32) { l.base = id }

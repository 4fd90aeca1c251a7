// Package format renders operands as assembly-flavored text.
//
// Virtual registers render as v<index>, labels as L<id>. Register names
// come from the backend tables.
package format

import (
	"github.com/nikandfor/hacked/hfmt"
	"tlog.app/go/errors"

	"github.com/slowlang/asmkit/asm"
	"github.com/slowlang/asmkit/asm/amd64"
	"github.com/slowlang/asmkit/asm/arm64"
)

type (
	Flags uint32

	namer func(b []byte, t asm.RegType, id uint32) []byte
)

const (
	HexImms Flags = 1 << iota
	HexOffsets
)

func Operand(b []byte, flags Flags, arch string, op asm.Operand) (_ []byte, err error) {
	switch op.Kind() {
	case asm.OpNone:
		return append(b, "<none>"...), nil
	case asm.OpReg:
		return Register(b, arch, op.Sig().RegType(), op.ID())
	case asm.OpMem:
		return Mem(b, flags, arch, asm.Mem{Operand: op})
	case asm.OpImm:
		return Imm(b, flags, asm.Imm{Operand: op}.Int64()), nil
	case asm.OpLabel:
		return Label(b, op.ID()), nil
	default:
		return nil, errors.New("bad operand kind: %v", op.Kind())
	}
}

func Register(b []byte, arch string, t asm.RegType, id uint32) ([]byte, error) {
	name, err := archNamer(arch)
	if err != nil {
		return nil, err
	}

	return name(b, t, id), nil
}

func Label(b []byte, id uint32) []byte {
	if id == asm.InvalidID {
		return append(b, "L?"...)
	}

	return hfmt.Appendf(b, "L%d", id)
}

func Imm(b []byte, flags Flags, v int64) []byte {
	if flags&HexImms != 0 {
		return hfmt.Appendf(b, "0x%x", uint64(v))
	}

	return hfmt.Appendf(b, "%d", v)
}

func Mem(b []byte, flags Flags, arch string, m asm.Mem) (_ []byte, err error) {
	name, err := archNamer(arch)
	if err != nil {
		return nil, err
	}

	b = append(b, '[')

	switch {
	case m.HasBaseLabel():
		b = Label(b, m.BaseID())
	case m.HasBaseReg():
		b = name(b, m.BaseType(), m.BaseID())
	}

	if m.HasIndexReg() {
		if m.HasBase() {
			b = append(b, " + "...)
		}

		b = name(b, m.IndexType(), m.IndexID())

		if arch == "amd64" {
			if sh := (amd64.Mem{Mem: m}).Shift(); sh != 0 {
				b = hfmt.Appendf(b, "*%d", 1<<sh)
			}
		}
	}

	b, err = memOffset(b, flags, m)
	if err != nil {
		return nil, errors.Wrap(err, "offset")
	}

	b = append(b, ']')

	return b, nil
}

func memOffset(b []byte, flags Flags, m asm.Mem) ([]byte, error) {
	if !m.HasOffset() {
		if !m.HasBaseOrIndex() {
			b = append(b, '0')
		}

		return b, nil
	}

	off := m.Offset()

	if !m.HasBaseOrIndex() {
		// bare absolute address
		return hfmt.Appendf(b, "0x%x", uint64(off)), nil
	}

	if flags&HexOffsets != 0 {
		if off < 0 {
			return hfmt.Appendf(b, " - 0x%x", uint64(-off)), nil
		}

		return hfmt.Appendf(b, " + 0x%x", uint64(off)), nil
	}

	if off < 0 {
		return hfmt.Appendf(b, " - %d", -off), nil
	}

	return hfmt.Appendf(b, " + %d", off), nil
}

func archNamer(arch string) (namer, error) {
	switch arch {
	case "amd64":
		return amd64.AppendRegName, nil
	case "arm64":
		return arm64.AppendRegName, nil
	default:
		return nil, errors.New("unsupported arch: %v", arch)
	}
}

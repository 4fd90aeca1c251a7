package asm

import "tlog.app/go/tlog/tlwire"

func (o Operand) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	switch o.Kind() {
	case OpReg:
		return Reg{o}.TlogAppend(b)
	case OpMem:
		return Mem{o}.TlogAppend(b)
	case OpImm:
		return Imm{o}.TlogAppend(b)
	case OpLabel:
		return Label{o}.TlogAppend(b)
	}

	if o.IsNone() {
		return e.AppendNil(b)
	}

	b = e.AppendMap(b, 2)
	b = e.AppendKeyInt64(b, "sig", int64(o.sig))
	b = e.AppendKeyInt64(b, "id", int64(o.base))

	return b
}

func (r Reg) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	b = e.AppendMap(b, 5)
	b = e.AppendKey(b, "op")
	b = e.AppendString(b, "reg")
	b = e.AppendKeyInt64(b, "type", int64(r.Type()))
	b = e.AppendKeyInt64(b, "group", int64(r.Group()))
	b = e.AppendKeyInt64(b, "size", int64(r.Size()))
	b = e.AppendKeyInt64(b, "id", int64(r.base))

	return b
}

func (m Mem) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	b = e.AppendMap(b, -1)
	b = e.AppendKey(b, "op")
	b = e.AppendString(b, "mem")

	if m.HasBase() {
		b = e.AppendKeyInt64(b, "base_type", int64(m.BaseType()))
		b = e.AppendKeyInt64(b, "base", int64(m.BaseID()))
	}

	if m.HasIndex() {
		b = e.AppendKeyInt64(b, "index_type", int64(m.IndexType()))
		b = e.AppendKeyInt64(b, "index", int64(m.IndexID()))
	}

	if m.HasOffset() {
		b = e.AppendKeyInt64(b, "off", m.Offset())
	}

	if m.Size() != 0 {
		b = e.AppendKeyInt64(b, "size", int64(m.Size()))
	}

	b = e.AppendBreak(b)

	return b
}

func (i Imm) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	b = e.AppendMap(b, 2)
	b = e.AppendKey(b, "op")
	b = e.AppendString(b, "imm")
	b = e.AppendKeyInt64(b, "val", i.Int64())

	return b
}

func (l Label) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	b = e.AppendMap(b, 2)
	b = e.AppendKey(b, "op")
	b = e.AppendString(b, "label")

	if l.IsValid() {
		b = e.AppendKeyInt64(b, "id", int64(l.base))
	} else {
		b = e.AppendKey(b, "id")
		b = e.AppendNil(b)
	}

	return b
}

func (r RegOnly) TlogAppend(b []byte) []byte {
	if r.IsNone() {
		var e tlwire.Encoder

		return e.AppendNil(b)
	}

	return r.ToReg().TlogAppend(b)
}

package main

import (
	"fmt"
	"os"
	"strconv"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/asmkit/asm"
	"github.com/slowlang/asmkit/asm/amd64"
	"github.com/slowlang/asmkit/asm/arm64"
	"github.com/slowlang/asmkit/format"
)

func main() {
	sigCmd := &cli.Command{
		Name:        "sig",
		Description: "decode operand signature words",
		Action:      sigAct,
		Args:        cli.Args{},
	}

	opCmd := &cli.Command{
		Name:        "op",
		Description: "decode a full operand: arch sig base payload_lo payload_hi",
		Action:      opAct,
		Args:        cli.Args{},
	}

	regsCmd := &cli.Command{
		Name:        "regs",
		Description: "dump architecture register trait tables",
		Action:      regsAct,
		Args:        cli.Args{},
	}

	app := &cli.Command{
		Name:        "asmkit",
		Description: "asmkit is a tool for inspecting operand encodings",
		Commands: []*cli.Command{
			sigCmd,
			opCmd,
			regsCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func sigAct(c *cli.Command) (err error) {
	for _, a := range c.Args {
		v, err := strconv.ParseUint(a, 0, 32)
		if err != nil {
			return errors.Wrap(err, "parse %v", a)
		}

		s := asm.Sig(v)

		fmt.Printf("%#08x  op %v", uint32(s), s.Op())

		switch s.Op() {
		case asm.OpReg:
			fmt.Printf("  type %d  group %d  size %d", s.RegType(), s.RegGroup(), s.Size())
		case asm.OpMem:
			fmt.Printf("  base_type %d  index_type %d  addr %d  size %d",
				s.Field(asm.SigMemBaseTypeMask),
				s.Field(asm.SigMemIndexTypeMask),
				s.Field(asm.SigMemAddrTypeMask),
				s.Size())
		}

		fmt.Printf("\n")
	}

	return nil
}

func opAct(c *cli.Command) (err error) {
	if len(c.Args) != 5 {
		return errors.New("args: arch sig base payload_lo payload_hi")
	}

	arch := c.Args[0]

	var w [4]uint32

	for i, a := range c.Args[1:] {
		v, err := strconv.ParseUint(a, 0, 32)
		if err != nil {
			return errors.Wrap(err, "parse %v", a)
		}

		w[i] = uint32(v)
	}

	op := asm.MakeOperand(asm.Sig(w[0]), w[1], w[2], w[3])

	tlog.Printw("decoded operand", "op", op)

	b, err := format.Operand(nil, 0, arch, op)
	if err != nil {
		return errors.Wrap(err, "format")
	}

	fmt.Printf("%s\n", b)

	return nil
}

func regsAct(c *cli.Command) (err error) {
	for _, a := range c.Args {
		var tab *[asm.RegTypeMax + 1]asm.RegTraits

		switch a {
		case "amd64":
			tab = &amd64.Traits
		case "arm64":
			tab = &arm64.Traits
		default:
			return errors.New("unsupported arch: %v", a)
		}

		for t, tr := range tab {
			if !tr.Valid {
				continue
			}

			b, err := format.Register(nil, a, asm.RegType(t), 0)
			if err != nil {
				return errors.Wrap(err, "format reg")
			}

			fmt.Printf("%-6s  type %2d  group %2d  size %3d  count %3d  sig %#08x\n",
				b, tr.Type, tr.Group, tr.Size, tr.Count, uint32(tr.Sig))
		}
	}

	return nil
}

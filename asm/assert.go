package asm

import (
	"fmt"

	"tlog.app/go/loc"
)

// assert guards hot path contracts. Violations are bugs in the calling code
// generation logic, so checks exist in debug builds only (asmkitdebug tag),
// release builds produce well-defined garbage instead.
func assert(ok bool, msg string) {
	if !debugChecks || ok {
		return
	}

	panic(fmt.Sprintf("%v (from %v)", msg, loc.Caller(1)))
}

/*

Package asm is the operand model shared by every backend.

Operand value (16 bytes):

	signature ->
		packed kind, reg type and group (or mem base and index types), size
	base id ->
		reg id, mem base reg or label id, or high half of a 64-bit address
	payload ->
		imm value, or mem index id and low offset half

The signature is a single 32-bit word so that one load and one mask classify
an operand. Backends (asm/amd64, asm/arm64) map their register kinds onto the
neutral type and group space defined here and precompute per-kind signatures
in RegTraits tables.

*/
package asm

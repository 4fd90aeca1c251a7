//go:build asmkitdebug

package asm

const debugChecks = true

// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package disasm implements a 65816 instruction disassembler.
package disasm

import (
	"fmt"

	"github.com/beevik/w816/internal/bus"
	"github.com/beevik/w816/internal/cpu"
)

var hex = "0123456789ABCDEF"

// hexString returns a big-endian hexadecimal string representation of
// a little-endian operand byte slice.
func hexString(b []byte) string {
	hexlen := len(b) * 2
	hexbuf := make([]byte, hexlen)
	j := hexlen - 1
	for _, n := range b {
		hexbuf[j] = hex[n&0xf]
		hexbuf[j-1] = hex[n>>4]
		j -= 2
	}
	return string(hexbuf)
}

// Disassemble formats the instruction at the 24-bit address addr,
// given the processor's current M/X widths (which affect the operand
// length of immediate-mode instructions). It returns the formatted
// line and the address of the following instruction.
func Disassemble(b *bus.Bus, addr uint32, memWidth, idxWidth int) (line string, next uint32) {
	opcode := b.Read(addr)
	name := cpu.OpcodeName(opcode)
	mode := cpu.OpcodeMode(opcode)
	length := cpu.OperandLength(opcode, memWidth, idxWidth)

	operand := make([]byte, length)
	for i := range operand {
		operand[i] = b.Read(addr + 1 + uint32(i))
	}

	next = addr + 1 + uint32(length)

	if mode == cpu.ModeRelative8 && length == 1 {
		target := relativeTarget(addr, 2, operand[0])
		line = fmt.Sprintf("%s $%04X", name, target&0xffff)
		return line, next
	}
	if mode == cpu.ModeBlockMove && length == 2 {
		line = fmt.Sprintf("%s $%02X,$%02X", name, operand[0], operand[1])
		return line, next
	}

	format := cpu.OperandFormat(mode)
	if format == "" {
		line = name
		return line, next
	}

	// hexString consumes operand in its natural little-endian memory
	// order and renders it most-significant-digit first, so no
	// explicit byte-order reversal is needed here.
	line = name + " " + fmt.Sprintf(format, hexString(operand))
	return line, next
}

func relativeTarget(addr uint32, instrLen uint32, offset byte) uint32 {
	base := addr&0xff0000 | (addr+instrLen)&0xffff
	delta := int32(int8(offset))
	return addr&0xff0000 | uint32(int32(base&0xffff)+delta)&0xffff
}

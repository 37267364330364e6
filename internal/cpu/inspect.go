// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// OpcodeName returns the mnemonic of the instruction at opcode, or
// "???" if the byte is not implemented by this core.
func OpcodeName(opcode byte) string {
	return opcodeTable[opcode].name
}

// OpcodeMode returns the addressing mode of the instruction at opcode.
func OpcodeMode(opcode byte) Mode {
	return opcodeTable[opcode].mode
}

// OperandLength returns the number of operand bytes that follow
// opcode, given the current M/X widths (which affect ModeImmediateM
// and ModeImmediateX). It does not include the opcode byte itself.
func OperandLength(opcode byte, memWidth, idxWidth int) int {
	switch opcodeTable[opcode].mode {
	case ModeImplied, ModeAccumulator:
		return 0
	case ModeImmediateM:
		if memWidth == 8 {
			return 1
		}
		return 2
	case ModeImmediateX:
		if idxWidth == 8 {
			return 1
		}
		return 2
	case ModeImmediate8, ModeDirect, ModeDirectX, ModeDirectY,
		ModeIndirectX, ModeIndirectY, ModeRelative8:
		return 1
	case ModeAbsolute, ModeAbsoluteX, ModeAbsoluteY,
		ModeAbsoluteIndirect, ModeAbsoluteIndexedIndirectX,
		ModeRelative16, ModeBlockMove:
		return 2
	default:
		return 0
	}
}

// modeFormat gives the operand-rendering format string for each
// addressing mode, keyed by Mode's integer value.
var modeFormat = [...]string{
	ModeImplied:                  "",
	ModeAccumulator:               "A",
	ModeImmediateM:                "#$%s",
	ModeImmediateX:                "#$%s",
	ModeImmediate8:                "#$%s",
	ModeAbsolute:                  "$%s",
	ModeAbsoluteX:                 "$%s,X",
	ModeAbsoluteY:                 "$%s,Y",
	ModeAbsoluteIndirect:          "($%s)",
	ModeAbsoluteIndexedIndirectX:  "($%s,X)",
	ModeDirect:                    "$%s",
	ModeDirectX:                   "$%s,X",
	ModeDirectY:                   "$%s,Y",
	ModeIndirectX:                 "($%s,X)",
	ModeIndirectY:                 "($%s),Y",
	ModeRelative8:                 "$%s",
	ModeRelative16:                "$%s",
	ModeBlockMove:                 "$%s,$%s",
}

// OperandFormat returns the printf-style format string used to render
// an instruction's operand bytes.
func OperandFormat(mode Mode) string {
	return modeFormat[mode]
}

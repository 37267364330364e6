// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Flag bits assigned to the processor status byte P.
const (
	FlagCarry      byte = 1 << 0 // C
	FlagZero       byte = 1 << 1 // Z
	FlagIRQDisable byte = 1 << 2 // I
	FlagDecimal    byte = 1 << 3 // D
	FlagIndex8     byte = 1 << 4 // X: index registers are 8-bit when set
	FlagMemory8    byte = 1 << 5 // M: accumulator/memory are 8-bit when set
	FlagOverflow   byte = 1 << 6 // V
	FlagNegative   byte = 1 << 7 // N
)

// Registers holds the complete, mode-polymorphic 65816 register file.
// A, X and Y are always stored full width; 8-bit operations read and
// write only the low byte, per the width-gated-mask approach the
// design calls for instead of separate 8- and 16-bit register types.
type Registers struct {
	A   uint16 // accumulator (C); low byte active when M=1
	X   uint16 // X index register; low byte active when X=1
	Y   uint16 // Y index register; low byte active when X=1
	S   uint16 // stack pointer
	PC  uint16 // program counter within PBR
	PBR byte   // program bank register
	DBR byte   // data bank register
	D   uint16 // direct-page base
	P   byte   // status flags
	E   bool   // emulation-mode flag (not part of P)
}

// Init resets the register file to its post-reset state. See CPU.Reset
// for the full reset sequence, which also loads PC from the reset
// vector; Init only establishes the fixed post-reset register values.
func (r *Registers) Init() {
	r.A, r.X, r.Y = 0, 0, 0
	r.S = 0x01ff
	r.P = FlagMemory8 | FlagIndex8 | FlagIRQDisable
	r.PBR, r.DBR, r.D = 0, 0, 0
	r.E = true
}

// GetFlag reports whether the given status flag is set.
func (r *Registers) GetFlag(f byte) bool {
	return r.P&f != 0
}

// SetFlag sets or clears the given status flag.
func (r *Registers) SetFlag(f byte, on bool) {
	if on {
		r.P |= f
	} else {
		r.P &^= f
	}
}

// MemoryWidth returns 8 or 16 depending on the current M flag (forced
// to 8 in emulation mode).
func (r *Registers) MemoryWidth() int {
	if r.E || r.GetFlag(FlagMemory8) {
		return 8
	}
	return 16
}

// IndexWidth returns 8 or 16 depending on the current X flag (forced
// to 8 in emulation mode).
func (r *Registers) IndexWidth() int {
	if r.E || r.GetFlag(FlagIndex8) {
		return 8
	}
	return 16
}

// updateNZ8 sets the Zero and Negative flags from an 8-bit result.
func (r *Registers) updateNZ8(v byte) {
	r.SetFlag(FlagZero, v == 0)
	r.SetFlag(FlagNegative, v&0x80 != 0)
}

// updateNZ16 sets the Zero and Negative flags from a 16-bit result.
func (r *Registers) updateNZ16(v uint16) {
	r.SetFlag(FlagZero, v == 0)
	r.SetFlag(FlagNegative, v&0x8000 != 0)
}

// enforceEmulationInvariants clamps the register file to the shape
// that must hold after every instruction boundary: when E=1, M and X
// are forced to 1 and S is confined to page 1; and, independent of E,
// the high bytes of X/Y are zero whenever the index width is 8 bits.
func (r *Registers) enforceEmulationInvariants() {
	if r.E {
		r.P |= FlagMemory8 | FlagIndex8
		r.S = 0x0100 | (r.S & 0x00ff)
	}
	if r.IndexWidth() == 8 {
		r.X &= 0x00ff
		r.Y &= 0x00ff
	}
}

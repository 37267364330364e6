// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// opFunc implements one opcode's behavior. It is responsible for
// calling decode itself (most do) to obtain an effective address and
// advance PC past the operand; ModeImplied/ModeAccumulator operations
// and the block-move opcodes manage their own operand fetching.
type opFunc func(c *CPU, mode Mode)

type opcodeEntry struct {
	name     string
	fn       opFunc
	mode     Mode
	widthSel byte
}

// mask returns v truncated to an 8- or 16-bit width.
func mask(v uint16, width int) uint16 {
	if width == 8 {
		return v & 0x00ff
	}
	return v
}

func signBitAndRange(width int) (sign, size uint32) {
	if width == 8 {
		return 0x80, 0x100
	}
	return 0x8000, 0x10000
}

// setA stores v into the accumulator. In 8-bit mode the high byte of
// A is preserved.
func (c *CPU) setA(v uint16, width int) {
	if width == 8 {
		c.Reg.A = (c.Reg.A & 0xff00) | (v & 0x00ff)
	} else {
		c.Reg.A = v
	}
}

// setX and setY store v into X/Y, zeroing the high byte in 8-bit
// mode (index registers do not preserve their high byte, unlike A).
func (c *CPU) setX(v uint16, width int) {
	if width == 8 {
		c.Reg.X = v & 0x00ff
	} else {
		c.Reg.X = v
	}
}

func (c *CPU) setY(v uint16, width int) {
	if width == 8 {
		c.Reg.Y = v & 0x00ff
	} else {
		c.Reg.Y = v
	}
}

func (c *CPU) updateNZWidth(v uint16, width int) {
	if width == 8 {
		c.Reg.updateNZ8(byte(v))
	} else {
		c.Reg.updateNZ16(v)
	}
}

// loadRW fetches the read side of a read-modify-write operation,
// handling the accumulator form (no bus access) uniformly with the
// memory forms.
func (c *CPU) loadRW(mode Mode, width int) (addr uint32, v uint16) {
	if mode == ModeAccumulator {
		return 0, mask(c.Reg.A, width)
	}
	addr = c.decode(mode)
	v = c.loadWidth(addr, width)
	return addr, v
}

func (c *CPU) storeRW(mode Mode, addr uint32, width int, v uint16) {
	if mode == ModeAccumulator {
		c.setA(v, width)
		return
	}
	c.storeWidth(addr, width, v)
}

func flagBit(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// bcdAdd performs a nibble-wise decimal addition of a+b+carry across
// width/4 BCD digits, generalizing the 8-bit nibble-pair correction
// a nibble-pair BCD correction to an arbitrary register width. Bit
// `width` of the result is set when the addition produced a carry
// out of the topmost digit, so callers can test for it the same way
// they test binary carry (result >= 1<<width).
func bcdAdd(a, b, carry uint32, width int) uint32 {
	var result uint32
	cin := carry
	for shift := 0; shift < width; shift += 4 {
		da := (a >> shift) & 0xf
		db := (b >> shift) & 0xf
		sum := da + db + cin
		if sum >= 10 {
			sum -= 10
			cin = 1
		} else {
			cin = 0
		}
		result |= sum << shift
	}
	if cin == 1 {
		result |= 1 << uint(width)
	}
	return result
}

// bcdSub performs a nibble-wise decimal subtraction of a-b, with
// carry-in using the 6502/816 convention where carry=1 means "no
// borrow". Bit `width` of the result is set when no borrow occurred
// out of the topmost digit.
func bcdSub(a, b, carry uint32, width int) uint32 {
	var result uint32
	cin := carry
	for shift := 0; shift < width; shift += 4 {
		da := int32((a >> shift) & 0xf)
		db := int32((b >> shift) & 0xf)
		d := da - db - (1 - int32(cin))
		if d < 0 {
			d += 10
			cin = 0
		} else {
			cin = 1
		}
		result |= uint32(d) << shift
	}
	if cin == 1 {
		result |= 1 << uint(width)
	}
	return result
}

// --- Loads / stores ---

func lda(c *CPU, mode Mode) {
	width := c.Reg.MemoryWidth()
	addr := c.decode(mode)
	v := c.loadWidth(addr, width)
	c.setA(v, width)
	c.updateNZWidth(v, width)
}

func ldx(c *CPU, mode Mode) {
	width := c.Reg.IndexWidth()
	addr := c.decode(mode)
	v := c.loadWidth(addr, width)
	c.setX(v, width)
	c.updateNZWidth(v, width)
}

func ldy(c *CPU, mode Mode) {
	width := c.Reg.IndexWidth()
	addr := c.decode(mode)
	v := c.loadWidth(addr, width)
	c.setY(v, width)
	c.updateNZWidth(v, width)
}

func sta(c *CPU, mode Mode) {
	width := c.Reg.MemoryWidth()
	addr := c.decode(mode)
	c.storeWidth(addr, width, mask(c.Reg.A, width))
}

func stx(c *CPU, mode Mode) {
	width := c.Reg.IndexWidth()
	addr := c.decode(mode)
	c.storeWidth(addr, width, mask(c.Reg.X, width))
}

func sty(c *CPU, mode Mode) {
	width := c.Reg.IndexWidth()
	addr := c.decode(mode)
	c.storeWidth(addr, width, mask(c.Reg.Y, width))
}

// --- Register transfers ---

func tax(c *CPU, mode Mode) {
	width := c.Reg.IndexWidth()
	v := mask(c.Reg.A, width)
	c.setX(v, width)
	c.updateNZWidth(v, width)
}

func tay(c *CPU, mode Mode) {
	width := c.Reg.IndexWidth()
	v := mask(c.Reg.A, width)
	c.setY(v, width)
	c.updateNZWidth(v, width)
}

func txa(c *CPU, mode Mode) {
	width := c.Reg.MemoryWidth()
	v := mask(c.Reg.X, width)
	c.setA(v, width)
	c.updateNZWidth(v, width)
}

func tya(c *CPU, mode Mode) {
	width := c.Reg.MemoryWidth()
	v := mask(c.Reg.Y, width)
	c.setA(v, width)
	c.updateNZWidth(v, width)
}

func tsx(c *CPU, mode Mode) {
	width := c.Reg.IndexWidth()
	v := mask(c.Reg.S, width)
	c.setX(v, width)
	c.updateNZWidth(v, width)
}

func txs(c *CPU, mode Mode) {
	c.Reg.S = c.Reg.X
}

func tcd(c *CPU, mode Mode) {
	c.Reg.D = c.Reg.A
	c.Reg.updateNZ16(c.Reg.D)
}

func tdc(c *CPU, mode Mode) {
	c.Reg.A = c.Reg.D
	c.Reg.updateNZ16(c.Reg.A)
}

func tcs(c *CPU, mode Mode) {
	c.Reg.S = c.Reg.A
}

func tsc(c *CPU, mode Mode) {
	c.Reg.A = c.Reg.S
	c.Reg.updateNZ16(c.Reg.A)
}

// --- Stack operations ---

func pha(c *CPU, mode Mode) {
	width := c.Reg.MemoryWidth()
	if width == 8 {
		c.push(byte(c.Reg.A))
	} else {
		c.pushWord(c.Reg.A)
	}
}

func phx(c *CPU, mode Mode) {
	width := c.Reg.IndexWidth()
	if width == 8 {
		c.push(byte(c.Reg.X))
	} else {
		c.pushWord(c.Reg.X)
	}
}

func phy(c *CPU, mode Mode) {
	width := c.Reg.IndexWidth()
	if width == 8 {
		c.push(byte(c.Reg.Y))
	} else {
		c.pushWord(c.Reg.Y)
	}
}

func php(c *CPU, mode Mode) {
	c.push(c.savePS(true))
}

func phd(c *CPU, mode Mode) {
	c.pushWord(c.Reg.D)
}

func phb(c *CPU, mode Mode) {
	c.push(c.Reg.DBR)
}

func phk(c *CPU, mode Mode) {
	c.push(c.Reg.PBR)
}

func pla(c *CPU, mode Mode) {
	width := c.Reg.MemoryWidth()
	var v uint16
	if width == 8 {
		v = uint16(c.pop())
	} else {
		v = c.popWord()
	}
	c.setA(v, width)
	c.updateNZWidth(v, width)
}

func plx(c *CPU, mode Mode) {
	width := c.Reg.IndexWidth()
	var v uint16
	if width == 8 {
		v = uint16(c.pop())
	} else {
		v = c.popWord()
	}
	c.setX(v, width)
	c.updateNZWidth(v, width)
}

func ply(c *CPU, mode Mode) {
	width := c.Reg.IndexWidth()
	var v uint16
	if width == 8 {
		v = uint16(c.pop())
	} else {
		v = c.popWord()
	}
	c.setY(v, width)
	c.updateNZWidth(v, width)
}

func plp(c *CPU, mode Mode) {
	c.Reg.P = c.pop()
	// enforceEmulationInvariants (run after every instruction) forces
	// M and X back to 1 when E=1.
}

func pld(c *CPU, mode Mode) {
	c.Reg.D = c.popWord()
	c.Reg.updateNZ16(c.Reg.D)
}

func plb(c *CPU, mode Mode) {
	c.Reg.DBR = c.pop()
	c.Reg.updateNZ8(c.Reg.DBR)
}

// --- Arithmetic ---

func adc(c *CPU, mode Mode) {
	width := c.Reg.MemoryWidth()
	addr := c.decode(mode)
	operand := uint32(c.loadWidth(addr, width))
	a := uint32(mask(c.Reg.A, width))
	carryIn := flagBit(c.Reg.GetFlag(FlagCarry))
	sign, size := signBitAndRange(width)

	var result uint32
	if c.Reg.GetFlag(FlagDecimal) {
		result = bcdAdd(a, operand, carryIn, width)
	} else {
		result = a + operand + carryIn
	}

	truncated := uint16(result & (size - 1))
	carryOut := result >= size
	overflow := ((a^uint32(truncated))&(operand^uint32(truncated))&sign) != 0

	c.Reg.SetFlag(FlagCarry, carryOut)
	c.Reg.SetFlag(FlagOverflow, overflow)
	c.setA(truncated, width)
	c.updateNZWidth(truncated, width)
}

func sbc(c *CPU, mode Mode) {
	width := c.Reg.MemoryWidth()
	addr := c.decode(mode)
	operand := uint32(c.loadWidth(addr, width))
	a := uint32(mask(c.Reg.A, width))
	carryIn := flagBit(c.Reg.GetFlag(FlagCarry))
	sign, size := signBitAndRange(width)

	var result uint32
	if c.Reg.GetFlag(FlagDecimal) {
		result = bcdSub(a, operand, carryIn, width)
	} else {
		complement := (^operand) & (size - 1)
		result = a + complement + carryIn
	}

	truncated := uint16(result & (size - 1))
	carryOut := result >= size
	overflow := ((a^operand)&(a^uint32(truncated))&sign) != 0

	c.Reg.SetFlag(FlagCarry, carryOut)
	c.Reg.SetFlag(FlagOverflow, overflow)
	c.setA(truncated, width)
	c.updateNZWidth(truncated, width)
}

// --- Logic ---

func and_(c *CPU, mode Mode) {
	width := c.Reg.MemoryWidth()
	addr := c.decode(mode)
	v := c.loadWidth(addr, width)
	res := mask(c.Reg.A, width) & v
	c.setA(res, width)
	c.updateNZWidth(res, width)
}

func ora(c *CPU, mode Mode) {
	width := c.Reg.MemoryWidth()
	addr := c.decode(mode)
	v := c.loadWidth(addr, width)
	res := mask(c.Reg.A, width) | v
	c.setA(res, width)
	c.updateNZWidth(res, width)
}

func eor(c *CPU, mode Mode) {
	width := c.Reg.MemoryWidth()
	addr := c.decode(mode)
	v := c.loadWidth(addr, width)
	res := mask(c.Reg.A, width) ^ v
	c.setA(res, width)
	c.updateNZWidth(res, width)
}

// --- Shift / rotate ---

func asl(c *CPU, mode Mode) {
	width := c.Reg.MemoryWidth()
	addr, v := c.loadRW(mode, width)
	sign, _ := signBitAndRange(width)
	carry := uint32(v)&sign != 0
	v = mask(v<<1, width)
	c.Reg.SetFlag(FlagCarry, carry)
	c.updateNZWidth(v, width)
	c.storeRW(mode, addr, width, v)
}

func lsr(c *CPU, mode Mode) {
	width := c.Reg.MemoryWidth()
	addr, v := c.loadRW(mode, width)
	carry := v&1 != 0
	v >>= 1
	c.Reg.SetFlag(FlagCarry, carry)
	c.updateNZWidth(v, width)
	c.storeRW(mode, addr, width, v)
}

func rol(c *CPU, mode Mode) {
	width := c.Reg.MemoryWidth()
	addr, v := c.loadRW(mode, width)
	sign, _ := signBitAndRange(width)
	oldCarry := c.Reg.GetFlag(FlagCarry)
	carryOut := uint32(v)&sign != 0
	v = v << 1
	if oldCarry {
		v |= 1
	}
	v = mask(v, width)
	c.Reg.SetFlag(FlagCarry, carryOut)
	c.updateNZWidth(v, width)
	c.storeRW(mode, addr, width, v)
}

func ror(c *CPU, mode Mode) {
	width := c.Reg.MemoryWidth()
	addr, v := c.loadRW(mode, width)
	sign, _ := signBitAndRange(width)
	oldCarry := c.Reg.GetFlag(FlagCarry)
	carryOut := v&1 != 0
	v >>= 1
	if oldCarry {
		v |= uint16(sign)
	}
	c.Reg.SetFlag(FlagCarry, carryOut)
	c.updateNZWidth(v, width)
	c.storeRW(mode, addr, width, v)
}

// --- Increment / decrement ---

func inc(c *CPU, mode Mode) {
	width := c.Reg.MemoryWidth()
	addr, v := c.loadRW(mode, width)
	v = mask(v+1, width)
	c.updateNZWidth(v, width)
	c.storeRW(mode, addr, width, v)
}

func dec(c *CPU, mode Mode) {
	width := c.Reg.MemoryWidth()
	addr, v := c.loadRW(mode, width)
	v = mask(v-1, width)
	c.updateNZWidth(v, width)
	c.storeRW(mode, addr, width, v)
}

func inx(c *CPU, mode Mode) {
	width := c.Reg.IndexWidth()
	v := mask(c.Reg.X+1, width)
	c.setX(v, width)
	c.updateNZWidth(v, width)
}

func iny(c *CPU, mode Mode) {
	width := c.Reg.IndexWidth()
	v := mask(c.Reg.Y+1, width)
	c.setY(v, width)
	c.updateNZWidth(v, width)
}

func dex(c *CPU, mode Mode) {
	width := c.Reg.IndexWidth()
	v := mask(c.Reg.X-1, width)
	c.setX(v, width)
	c.updateNZWidth(v, width)
}

func dey(c *CPU, mode Mode) {
	width := c.Reg.IndexWidth()
	v := mask(c.Reg.Y-1, width)
	c.setY(v, width)
	c.updateNZWidth(v, width)
}

// --- Bit operations ---

func bit(c *CPU, mode Mode) {
	width := c.Reg.MemoryWidth()
	addr := c.decode(mode)
	v := c.loadWidth(addr, width)
	a := mask(c.Reg.A, width)
	c.Reg.SetFlag(FlagZero, v&a == 0)
	if mode != ModeImmediateM {
		sign, _ := signBitAndRange(width)
		overflowBit := sign >> 1
		c.Reg.SetFlag(FlagNegative, uint32(v)&sign != 0)
		c.Reg.SetFlag(FlagOverflow, uint32(v)&overflowBit != 0)
	}
}

func tsb(c *CPU, mode Mode) {
	width := c.Reg.MemoryWidth()
	addr, v := c.loadRW(mode, width)
	a := mask(c.Reg.A, width)
	c.Reg.SetFlag(FlagZero, v&a == 0)
	c.storeRW(mode, addr, width, v|a)
}

func trb(c *CPU, mode Mode) {
	width := c.Reg.MemoryWidth()
	addr, v := c.loadRW(mode, width)
	a := mask(c.Reg.A, width)
	c.Reg.SetFlag(FlagZero, v&a == 0)
	c.storeRW(mode, addr, width, v&^a)
}

// --- Compares ---

func cmp(c *CPU, mode Mode) {
	width := c.Reg.MemoryWidth()
	addr := c.decode(mode)
	v := c.loadWidth(addr, width)
	lhs := mask(c.Reg.A, width)
	diff := int32(lhs) - int32(v)
	c.Reg.SetFlag(FlagCarry, diff >= 0)
	c.updateNZWidth(mask(uint16(diff), width), width)
}

func cpx(c *CPU, mode Mode) {
	width := c.Reg.IndexWidth()
	addr := c.decode(mode)
	v := c.loadWidth(addr, width)
	lhs := mask(c.Reg.X, width)
	diff := int32(lhs) - int32(v)
	c.Reg.SetFlag(FlagCarry, diff >= 0)
	c.updateNZWidth(mask(uint16(diff), width), width)
}

func cpy(c *CPU, mode Mode) {
	width := c.Reg.IndexWidth()
	addr := c.decode(mode)
	v := c.loadWidth(addr, width)
	lhs := mask(c.Reg.Y, width)
	diff := int32(lhs) - int32(v)
	c.Reg.SetFlag(FlagCarry, diff >= 0)
	c.updateNZWidth(mask(uint16(diff), width), width)
}

// --- Branches ---

func (c *CPU) branchIf(mode Mode, cond bool) {
	addr := c.decode(mode)
	offset := int8(c.bus.Read(addr))
	if !cond {
		return
	}
	old := c.Reg.PC
	c.Reg.PC = uint16(int32(c.Reg.PC) + int32(offset))
	c.extraCycles++
	if (old^c.Reg.PC)&0xff00 != 0 {
		c.extraCycles++
	}
}

func bcc(c *CPU, mode Mode) { c.branchIf(mode, !c.Reg.GetFlag(FlagCarry)) }
func bcs(c *CPU, mode Mode) { c.branchIf(mode, c.Reg.GetFlag(FlagCarry)) }
func beq(c *CPU, mode Mode) { c.branchIf(mode, c.Reg.GetFlag(FlagZero)) }
func bne(c *CPU, mode Mode) { c.branchIf(mode, !c.Reg.GetFlag(FlagZero)) }
func bmi(c *CPU, mode Mode) { c.branchIf(mode, c.Reg.GetFlag(FlagNegative)) }
func bpl(c *CPU, mode Mode) { c.branchIf(mode, !c.Reg.GetFlag(FlagNegative)) }
func bvs(c *CPU, mode Mode) { c.branchIf(mode, c.Reg.GetFlag(FlagOverflow)) }
func bvc(c *CPU, mode Mode) { c.branchIf(mode, !c.Reg.GetFlag(FlagOverflow)) }
func bra(c *CPU, mode Mode) { c.branchIf(mode, true) }

func brl(c *CPU, mode Mode) {
	addr := c.decode(mode)
	offset := int16(c.bus.Read16(addr))
	c.Reg.PC = uint16(int32(c.Reg.PC) + int32(offset))
}

// --- Jumps / subroutines ---

func jmp(c *CPU, mode Mode) {
	switch mode {
	case ModeAbsolute:
		c.Reg.PC = c.fetchWord()
	default: // ModeAbsoluteIndirect, ModeAbsoluteIndexedIndirectX
		addr := c.decode(mode)
		c.Reg.PC = uint16(addr)
	}
}

func jsr(c *CPU, mode Mode) {
	target := c.fetchWord()
	c.pushWord(c.Reg.PC - 1)
	c.Reg.PC = target
}

func rts(c *CPU, mode Mode) {
	c.Reg.PC = c.popWord() + 1
}

// --- Interrupts ---

func brk(c *CPU, mode Mode) {
	c.decode(ModeImmediate8) // skip signature byte
	c.serviceInterrupt(vectorBRKEmulation, vectorBRKNative, true)
}

func cop(c *CPU, mode Mode) {
	c.decode(ModeImmediate8)
	c.serviceInterrupt(vectorCOPEmulation, vectorCOPNative, false)
}

func rti(c *CPU, mode Mode) {
	c.Reg.P = c.pop()
	c.Reg.PC = c.popWord()
	if !c.Reg.E {
		c.Reg.PBR = c.pop()
	}
	// enforceEmulationInvariants forces M,X back to 1 when E=1.
}

// --- Flag manipulation ---

func clc(c *CPU, mode Mode) { c.Reg.SetFlag(FlagCarry, false) }
func sec(c *CPU, mode Mode) { c.Reg.SetFlag(FlagCarry, true) }
func cli(c *CPU, mode Mode) { c.Reg.SetFlag(FlagIRQDisable, false) }
func sei(c *CPU, mode Mode) { c.Reg.SetFlag(FlagIRQDisable, true) }
func clv(c *CPU, mode Mode) { c.Reg.SetFlag(FlagOverflow, false) }
func cld(c *CPU, mode Mode) { c.Reg.SetFlag(FlagDecimal, false) }
func sed(c *CPU, mode Mode) { c.Reg.SetFlag(FlagDecimal, true) }

func rep(c *CPU, mode Mode) {
	addr := c.decode(mode)
	v := c.bus.Read(addr)
	c.Reg.P &^= v
	// enforceEmulationInvariants restores X,M when E=1: REP cannot
	// clear them in emulation mode.
}

func sep(c *CPU, mode Mode) {
	addr := c.decode(mode)
	v := c.bus.Read(addr)
	c.Reg.P |= v
}

// --- Mode exchange ---

func xce(c *CPU, mode Mode) {
	oldE, oldC := c.Reg.E, c.Reg.GetFlag(FlagCarry)
	c.Reg.E = oldC
	c.Reg.SetFlag(FlagCarry, oldE)
	if c.Reg.E {
		c.Reg.P |= FlagMemory8 | FlagIndex8
		c.Reg.X &= 0x00ff
		c.Reg.Y &= 0x00ff
		c.Reg.S = 0x0100 | (c.Reg.S & 0x00ff)
	}
}

// --- Block moves ---

func mvn(c *CPU, mode Mode) {
	dst, src := c.fetchByte(), c.fetchByte()
	v := c.bus.Read(uint32(src)<<16 | uint32(c.Reg.X))
	c.bus.Write(uint32(dst)<<16|uint32(c.Reg.Y), v)
	c.Reg.X++
	c.Reg.Y++
	c.Reg.A--
	c.Reg.DBR = dst
	if c.Reg.A != 0xffff {
		c.Reg.PC -= 3
	}
}

func mvp(c *CPU, mode Mode) {
	dst, src := c.fetchByte(), c.fetchByte()
	v := c.bus.Read(uint32(src)<<16 | uint32(c.Reg.X))
	c.bus.Write(uint32(dst)<<16|uint32(c.Reg.Y), v)
	c.Reg.X--
	c.Reg.Y--
	c.Reg.A--
	c.Reg.DBR = dst
	if c.Reg.A != 0xffff {
		c.Reg.PC -= 3
	}
}

// --- Halt / wait / reserved ---

func stp(c *CPU, mode Mode) { c.state = Stopped }
func wai(c *CPU, mode Mode) { c.state = Waiting }

func wdm(c *CPU, mode Mode) {
	c.decode(ModeImmediate8) // reserved; consumes a signature byte
}

func nop(c *CPU, mode Mode) {}

// undefined is dispatched for opcodes this core does not implement
// (65816 long-addressing, stack-relative and (direct) indirect forms,
// JSL/JML/RTL, JSR (abs,X), STZ, XBA, TXY, TYX, PEA, PEI and PER):
// treated as a no-op consuming a small constant cycle count.
func undefined(c *CPU, mode Mode) {}

// opcodeTable is the flat 256-entry dispatch table used to fetch and
// run every opcode. An exhaustive table reads better than a deep
// switch and makes coverage auditable at a glance. Entries not named
// below default to {"???", undefined, ModeImplied, widthNone}.
var opcodeTable = buildOpcodeTable()

func buildOpcodeTable() [256]opcodeEntry {
	var t [256]opcodeEntry
	for i := range t {
		t[i] = opcodeEntry{"???", undefined, ModeImplied, widthNone}
	}

	set := func(op byte, name string, fn opFunc, mode Mode, widthSel byte) {
		t[op] = opcodeEntry{name, fn, mode, widthSel}
	}

	set(0x00, "BRK", brk, ModeImplied, widthNone)
	set(0x02, "COP", cop, ModeImplied, widthNone)
	set(0x42, "WDM", wdm, ModeImplied, widthNone)

	// Loads
	set(0xa9, "LDA", lda, ModeImmediateM, widthM)
	set(0xa5, "LDA", lda, ModeDirect, widthM)
	set(0xb5, "LDA", lda, ModeDirectX, widthM)
	set(0xad, "LDA", lda, ModeAbsolute, widthM)
	set(0xbd, "LDA", lda, ModeAbsoluteX, widthM)
	set(0xb9, "LDA", lda, ModeAbsoluteY, widthM)
	set(0xa1, "LDA", lda, ModeIndirectX, widthM)
	set(0xb1, "LDA", lda, ModeIndirectY, widthM)

	set(0xa2, "LDX", ldx, ModeImmediateX, widthX)
	set(0xa6, "LDX", ldx, ModeDirect, widthX)
	set(0xb6, "LDX", ldx, ModeDirectY, widthX)
	set(0xae, "LDX", ldx, ModeAbsolute, widthX)
	set(0xbe, "LDX", ldx, ModeAbsoluteY, widthX)

	set(0xa0, "LDY", ldy, ModeImmediateX, widthX)
	set(0xa4, "LDY", ldy, ModeDirect, widthX)
	set(0xb4, "LDY", ldy, ModeDirectX, widthX)
	set(0xac, "LDY", ldy, ModeAbsolute, widthX)
	set(0xbc, "LDY", ldy, ModeAbsoluteX, widthX)

	// Stores
	set(0x85, "STA", sta, ModeDirect, widthM)
	set(0x95, "STA", sta, ModeDirectX, widthM)
	set(0x8d, "STA", sta, ModeAbsolute, widthM)
	set(0x9d, "STA", sta, ModeAbsoluteX, widthM)
	set(0x99, "STA", sta, ModeAbsoluteY, widthM)
	set(0x81, "STA", sta, ModeIndirectX, widthM)
	set(0x91, "STA", sta, ModeIndirectY, widthM)

	set(0x86, "STX", stx, ModeDirect, widthX)
	set(0x96, "STX", stx, ModeDirectY, widthX)
	set(0x8e, "STX", stx, ModeAbsolute, widthX)

	set(0x84, "STY", sty, ModeDirect, widthX)
	set(0x94, "STY", sty, ModeDirectX, widthX)
	set(0x8c, "STY", sty, ModeAbsolute, widthX)

	// Register transfers
	set(0xaa, "TAX", tax, ModeImplied, widthNone)
	set(0xa8, "TAY", tay, ModeImplied, widthNone)
	set(0x8a, "TXA", txa, ModeImplied, widthNone)
	set(0x98, "TYA", tya, ModeImplied, widthNone)
	set(0xba, "TSX", tsx, ModeImplied, widthNone)
	set(0x9a, "TXS", txs, ModeImplied, widthNone)
	set(0x5b, "TCD", tcd, ModeImplied, widthNone)
	set(0x7b, "TDC", tdc, ModeImplied, widthNone)
	set(0x1b, "TCS", tcs, ModeImplied, widthNone)
	set(0x3b, "TSC", tsc, ModeImplied, widthNone)

	// Stack operations
	set(0x48, "PHA", pha, ModeImplied, widthM)
	set(0xda, "PHX", phx, ModeImplied, widthX)
	set(0x5a, "PHY", phy, ModeImplied, widthX)
	set(0x08, "PHP", php, ModeImplied, widthNone)
	set(0x0b, "PHD", phd, ModeImplied, widthNone)
	set(0x8b, "PHB", phb, ModeImplied, widthNone)
	set(0x4b, "PHK", phk, ModeImplied, widthNone)
	set(0x68, "PLA", pla, ModeImplied, widthM)
	set(0xfa, "PLX", plx, ModeImplied, widthX)
	set(0x7a, "PLY", ply, ModeImplied, widthX)
	set(0x28, "PLP", plp, ModeImplied, widthNone)
	set(0x2b, "PLD", pld, ModeImplied, widthNone)
	set(0xab, "PLB", plb, ModeImplied, widthNone)

	// Arithmetic
	set(0x69, "ADC", adc, ModeImmediateM, widthM)
	set(0x65, "ADC", adc, ModeDirect, widthM)
	set(0x75, "ADC", adc, ModeDirectX, widthM)
	set(0x6d, "ADC", adc, ModeAbsolute, widthM)
	set(0x7d, "ADC", adc, ModeAbsoluteX, widthM)
	set(0x79, "ADC", adc, ModeAbsoluteY, widthM)
	set(0x61, "ADC", adc, ModeIndirectX, widthM)
	set(0x71, "ADC", adc, ModeIndirectY, widthM)

	set(0xe9, "SBC", sbc, ModeImmediateM, widthM)
	set(0xe5, "SBC", sbc, ModeDirect, widthM)
	set(0xf5, "SBC", sbc, ModeDirectX, widthM)
	set(0xed, "SBC", sbc, ModeAbsolute, widthM)
	set(0xfd, "SBC", sbc, ModeAbsoluteX, widthM)
	set(0xf9, "SBC", sbc, ModeAbsoluteY, widthM)
	set(0xe1, "SBC", sbc, ModeIndirectX, widthM)
	set(0xf1, "SBC", sbc, ModeIndirectY, widthM)

	// Logic
	set(0x29, "AND", and_, ModeImmediateM, widthM)
	set(0x25, "AND", and_, ModeDirect, widthM)
	set(0x35, "AND", and_, ModeDirectX, widthM)
	set(0x2d, "AND", and_, ModeAbsolute, widthM)
	set(0x3d, "AND", and_, ModeAbsoluteX, widthM)
	set(0x39, "AND", and_, ModeAbsoluteY, widthM)
	set(0x21, "AND", and_, ModeIndirectX, widthM)
	set(0x31, "AND", and_, ModeIndirectY, widthM)

	set(0x09, "ORA", ora, ModeImmediateM, widthM)
	set(0x05, "ORA", ora, ModeDirect, widthM)
	set(0x15, "ORA", ora, ModeDirectX, widthM)
	set(0x0d, "ORA", ora, ModeAbsolute, widthM)
	set(0x1d, "ORA", ora, ModeAbsoluteX, widthM)
	set(0x19, "ORA", ora, ModeAbsoluteY, widthM)
	set(0x01, "ORA", ora, ModeIndirectX, widthM)
	set(0x11, "ORA", ora, ModeIndirectY, widthM)

	set(0x49, "EOR", eor, ModeImmediateM, widthM)
	set(0x45, "EOR", eor, ModeDirect, widthM)
	set(0x55, "EOR", eor, ModeDirectX, widthM)
	set(0x4d, "EOR", eor, ModeAbsolute, widthM)
	set(0x5d, "EOR", eor, ModeAbsoluteX, widthM)
	set(0x59, "EOR", eor, ModeAbsoluteY, widthM)
	set(0x41, "EOR", eor, ModeIndirectX, widthM)
	set(0x51, "EOR", eor, ModeIndirectY, widthM)

	// Shift / rotate
	set(0x0a, "ASL", asl, ModeAccumulator, widthM)
	set(0x06, "ASL", asl, ModeDirect, widthM)
	set(0x16, "ASL", asl, ModeDirectX, widthM)
	set(0x0e, "ASL", asl, ModeAbsolute, widthM)
	set(0x1e, "ASL", asl, ModeAbsoluteX, widthM)

	set(0x4a, "LSR", lsr, ModeAccumulator, widthM)
	set(0x46, "LSR", lsr, ModeDirect, widthM)
	set(0x56, "LSR", lsr, ModeDirectX, widthM)
	set(0x4e, "LSR", lsr, ModeAbsolute, widthM)
	set(0x5e, "LSR", lsr, ModeAbsoluteX, widthM)

	set(0x2a, "ROL", rol, ModeAccumulator, widthM)
	set(0x26, "ROL", rol, ModeDirect, widthM)
	set(0x36, "ROL", rol, ModeDirectX, widthM)
	set(0x2e, "ROL", rol, ModeAbsolute, widthM)
	set(0x3e, "ROL", rol, ModeAbsoluteX, widthM)

	set(0x6a, "ROR", ror, ModeAccumulator, widthM)
	set(0x66, "ROR", ror, ModeDirect, widthM)
	set(0x76, "ROR", ror, ModeDirectX, widthM)
	set(0x6e, "ROR", ror, ModeAbsolute, widthM)
	set(0x7e, "ROR", ror, ModeAbsoluteX, widthM)

	// Increment / decrement
	set(0x1a, "INC", inc, ModeAccumulator, widthM)
	set(0xe6, "INC", inc, ModeDirect, widthM)
	set(0xf6, "INC", inc, ModeDirectX, widthM)
	set(0xee, "INC", inc, ModeAbsolute, widthM)
	set(0xfe, "INC", inc, ModeAbsoluteX, widthM)

	set(0x3a, "DEC", dec, ModeAccumulator, widthM)
	set(0xc6, "DEC", dec, ModeDirect, widthM)
	set(0xd6, "DEC", dec, ModeDirectX, widthM)
	set(0xce, "DEC", dec, ModeAbsolute, widthM)
	set(0xde, "DEC", dec, ModeAbsoluteX, widthM)

	set(0xe8, "INX", inx, ModeImplied, widthX)
	set(0xc8, "INY", iny, ModeImplied, widthX)
	set(0xca, "DEX", dex, ModeImplied, widthX)
	set(0x88, "DEY", dey, ModeImplied, widthX)

	// Bit operations
	set(0x89, "BIT", bit, ModeImmediateM, widthM)
	set(0x24, "BIT", bit, ModeDirect, widthM)
	set(0x34, "BIT", bit, ModeDirectX, widthM)
	set(0x2c, "BIT", bit, ModeAbsolute, widthM)
	set(0x3c, "BIT", bit, ModeAbsoluteX, widthM)

	set(0x04, "TSB", tsb, ModeDirect, widthM)
	set(0x0c, "TSB", tsb, ModeAbsolute, widthM)
	set(0x14, "TRB", trb, ModeDirect, widthM)
	set(0x1c, "TRB", trb, ModeAbsolute, widthM)

	// Compares
	set(0xc9, "CMP", cmp, ModeImmediateM, widthM)
	set(0xc5, "CMP", cmp, ModeDirect, widthM)
	set(0xd5, "CMP", cmp, ModeDirectX, widthM)
	set(0xcd, "CMP", cmp, ModeAbsolute, widthM)
	set(0xdd, "CMP", cmp, ModeAbsoluteX, widthM)
	set(0xd9, "CMP", cmp, ModeAbsoluteY, widthM)
	set(0xc1, "CMP", cmp, ModeIndirectX, widthM)
	set(0xd1, "CMP", cmp, ModeIndirectY, widthM)

	set(0xe0, "CPX", cpx, ModeImmediateX, widthX)
	set(0xe4, "CPX", cpx, ModeDirect, widthX)
	set(0xec, "CPX", cpx, ModeAbsolute, widthX)

	set(0xc0, "CPY", cpy, ModeImmediateX, widthX)
	set(0xc4, "CPY", cpy, ModeDirect, widthX)
	set(0xcc, "CPY", cpy, ModeAbsolute, widthX)

	// Branches
	set(0x90, "BCC", bcc, ModeRelative8, widthNone)
	set(0xb0, "BCS", bcs, ModeRelative8, widthNone)
	set(0xf0, "BEQ", beq, ModeRelative8, widthNone)
	set(0xd0, "BNE", bne, ModeRelative8, widthNone)
	set(0x30, "BMI", bmi, ModeRelative8, widthNone)
	set(0x10, "BPL", bpl, ModeRelative8, widthNone)
	set(0x50, "BVC", bvc, ModeRelative8, widthNone)
	set(0x70, "BVS", bvs, ModeRelative8, widthNone)
	set(0x80, "BRA", bra, ModeRelative8, widthNone)
	set(0x82, "BRL", brl, ModeRelative16, widthNone)

	// Jumps / subroutines
	set(0x4c, "JMP", jmp, ModeAbsolute, widthNone)
	set(0x6c, "JMP", jmp, ModeAbsoluteIndirect, widthNone)
	set(0x7c, "JMP", jmp, ModeAbsoluteIndexedIndirectX, widthNone)
	set(0x20, "JSR", jsr, ModeAbsolute, widthNone)
	set(0x60, "RTS", rts, ModeImplied, widthNone)

	// Interrupts
	set(0x40, "RTI", rti, ModeImplied, widthNone)

	// Flags
	set(0x18, "CLC", clc, ModeImplied, widthNone)
	set(0x38, "SEC", sec, ModeImplied, widthNone)
	set(0x58, "CLI", cli, ModeImplied, widthNone)
	set(0x78, "SEI", sei, ModeImplied, widthNone)
	set(0xb8, "CLV", clv, ModeImplied, widthNone)
	set(0xd8, "CLD", cld, ModeImplied, widthNone)
	set(0xf8, "SED", sed, ModeImplied, widthNone)
	set(0xc2, "REP", rep, ModeImmediate8, widthNone)
	set(0xe2, "SEP", sep, ModeImmediate8, widthNone)

	// Mode exchange
	set(0xfb, "XCE", xce, ModeImplied, widthNone)

	// Block moves
	set(0x54, "MVN", mvn, ModeBlockMove, widthNone)
	set(0x44, "MVP", mvp, ModeBlockMove, widthNone)

	// Halt / wait / no-op
	set(0xdb, "STP", stp, ModeImplied, widthNone)
	set(0xcb, "WAI", wai, ModeImplied, widthNone)
	set(0xea, "NOP", nop, ModeImplied, widthNone)

	return t
}

// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Mode identifies a 65816 addressing mode. Each mode advances PC by
// its own operand length and, where applicable, yields a 24-bit
// effective address.
type Mode byte

const (
	ModeImplied    Mode = iota // no operand (flag ops, transfers, ...)
	ModeAccumulator            // operates on A directly
	ModeImmediateM             // 1 byte if M=1, else 2
	ModeImmediateX             // 1 byte if X=1, else 2
	ModeImmediate8             // always 1 byte (REP/SEP masks)
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeAbsoluteIndirect          // JMP (abs)
	ModeAbsoluteIndexedIndirectX  // JMP (abs,X)
	ModeDirect
	ModeDirectX
	ModeDirectY
	ModeIndirectX // (direct,X)
	ModeIndirectY // (direct),Y
	ModeRelative8 // branches
	ModeRelative16 // BRL
	ModeBlockMove  // MVN/MVP
)

// pbrpc returns the 24-bit address of the next byte to fetch: PBR:PC.
func (c *CPU) pbrpc() uint32 {
	return uint32(c.Reg.PBR)<<16 | uint32(c.Reg.PC)
}

// fetchByte reads the byte at PBR:PC and advances PC by one.
func (c *CPU) fetchByte() byte {
	v := c.bus.Read(c.pbrpc())
	c.Reg.PC++
	return v
}

// fetchWord reads a little-endian 16-bit value at PBR:PC and advances
// PC by two.
func (c *CPU) fetchWord() uint16 {
	lo := c.fetchByte()
	hi := c.fetchByte()
	return uint16(lo) | uint16(hi)<<8
}

// decode advances PC past mode's operand bytes and returns the 24-bit
// effective address the operation should read or write. For
// ModeImplied and ModeAccumulator the return value is unused.
func (c *CPU) decode(mode Mode) uint32 {
	switch mode {
	case ModeImplied, ModeAccumulator:
		return 0

	case ModeImmediateM:
		addr := c.pbrpc()
		if c.Reg.MemoryWidth() == 8 {
			c.Reg.PC++
		} else {
			c.Reg.PC += 2
		}
		return addr

	case ModeImmediateX:
		addr := c.pbrpc()
		if c.Reg.IndexWidth() == 8 {
			c.Reg.PC++
		} else {
			c.Reg.PC += 2
		}
		return addr

	case ModeImmediate8:
		addr := c.pbrpc()
		c.Reg.PC++
		return addr

	case ModeAbsolute:
		lo := c.fetchWord()
		return uint32(c.Reg.DBR)<<16 | uint32(lo)

	case ModeAbsoluteX:
		lo := c.fetchWord()
		sum := lo + c.Reg.X // wraps in the unsigned 16-bit offset domain before the DBR merge
		return uint32(c.Reg.DBR)<<16 | uint32(sum)

	case ModeAbsoluteY:
		lo := c.fetchWord()
		sum := lo + c.Reg.Y
		return uint32(c.Reg.DBR)<<16 | uint32(sum)

	case ModeAbsoluteIndirect:
		lo := c.fetchWord()
		ptr := c.bus.Read16(uint32(lo))
		return uint32(c.Reg.PBR)<<16 | uint32(ptr)

	case ModeAbsoluteIndexedIndirectX:
		lo := c.fetchWord()
		ptrAddr := uint32(c.Reg.PBR)<<16 | uint32(lo+c.Reg.X)
		ptr := c.bus.Read16(ptrAddr)
		return uint32(c.Reg.PBR)<<16 | uint32(ptr)

	case ModeDirect:
		lo := c.fetchByte()
		return uint32(c.Reg.D + uint16(lo))

	case ModeDirectX:
		lo := c.fetchByte()
		return uint32(c.Reg.D + uint16(lo) + c.Reg.X)

	case ModeDirectY:
		lo := c.fetchByte()
		return uint32(c.Reg.D + uint16(lo) + c.Reg.Y)

	case ModeIndirectX:
		lo := c.fetchByte()
		zp := c.Reg.D + uint16(lo) + c.Reg.X
		ptr := c.bus.Read16(uint32(zp))
		return uint32(c.Reg.DBR)<<16 | uint32(ptr)

	case ModeIndirectY:
		lo := c.fetchByte()
		zp := c.Reg.D + uint16(lo)
		ptr := c.bus.Read16(uint32(zp))
		return uint32(c.Reg.DBR)<<16 | uint32(ptr+c.Reg.Y)

	case ModeRelative8:
		addr := c.pbrpc()
		c.Reg.PC++
		return addr

	case ModeRelative16:
		addr := c.pbrpc()
		c.Reg.PC += 2
		return addr

	case ModeBlockMove:
		// MVN/MVP read their two bank operand bytes directly in the
		// operation handler; decode only advances PC past them.
		addr := c.pbrpc()
		c.Reg.PC += 2
		return addr

	default:
		// Every opcode entry carries a Mode that decode handles; this
		// is unreached by the dispatch table. The bus never fails, so
		// decode doesn't either: fall back to the current PC instead
		// of panicking.
		return c.pbrpc()
	}
}

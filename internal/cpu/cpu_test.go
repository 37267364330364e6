// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import (
	"testing"

	"github.com/beevik/w816/internal/bus"
)

func newTestCPU(t *testing.T, program []byte) *CPU {
	t.Helper()
	b := bus.New()
	rom := make([]byte, 0x8000)
	rom = append(rom, program...)
	for len(rom) < 0x10000 {
		rom = append(rom, 0)
	}
	rom[0xfffc] = 0x00
	rom[0xfffd] = 0x80
	if !b.LoadROM(rom) {
		t.Fatal("LoadROM failed")
	}
	c := NewCPU(b)
	c.Reset()
	return c
}

func (c *CPU) loadAt(addr uint32, data []byte) {
	for i, v := range data {
		c.bus.Write(addr+uint32(i), v)
	}
}

// S1: immediate load (8-bit).
func TestImmediateLoad8Bit(t *testing.T) {
	c := newTestCPU(t, []byte{0xa9, 0x42})
	c.Step()
	if c.Reg.A&0xff != 0x42 {
		t.Fatalf("A = %#x", c.Reg.A)
	}
	if c.Reg.PC != 0x8002 {
		t.Fatalf("PC = %#x", c.Reg.PC)
	}
	if c.Reg.GetFlag(FlagZero) || c.Reg.GetFlag(FlagNegative) {
		t.Fatal("unexpected Z/N")
	}
}

// S2: immediate load (16-bit), after clearing M via REP #$20.
func TestImmediateLoad16Bit(t *testing.T) {
	c := newTestCPU(t, []byte{0xfb, 0xc2, 0x20, 0xa9, 0x34, 0x12})
	c.Step() // XCE: E=0 (carry starts 0)
	c.Step() // REP #$20: clear M
	c.Step() // LDA #$1234
	if c.Reg.A != 0x1234 {
		t.Fatalf("A = %#x", c.Reg.A)
	}
	if c.Reg.PC != 0x8006 {
		t.Fatalf("PC = %#x", c.Reg.PC)
	}
}

// S3: counter loop.
func TestCounterLoop(t *testing.T) {
	c := newTestCPU(t, []byte{
		0xa2, 0x00, // LDX #$00
		0xe8,             // loop: INX
		0xe0, 0x0a,       // CPX #$0A
		0xd0, 0xfb,       // BNE loop
		0x8e, 0x00, 0x10, // STX $1000
	})
	for i := 0; i < 200 && c.bus.Read(0x001000) == 0; i++ {
		c.Step()
	}
	if c.Reg.X&0xff != 0x0a {
		t.Fatalf("X = %#x", c.Reg.X)
	}
	if got := c.bus.Read(0x001000); got != 0x0a {
		t.Fatalf("mem[0x1000] = %#x", got)
	}
}

// S4: find maximum.
func TestFindMaximum(t *testing.T) {
	c := newTestCPU(t, []byte{
		0xad, 0x00, 0x01, // LDA $0100
		0xa2, 0x01, // LDX #$01
		0xdd, 0x00, 0x01, // loop: CMP $0100,X
		0xb0, 0x03, // BCS skip (A >= mem, skip load)
		0xbd, 0x00, 0x01, // LDA $0100,X
		0xe8,       // skip: INX
		0xe0, 0x04, // CPX #$04
		0xd0, 0xf3, // BNE loop
		0x8d, 0x00, 0x10, // STA $1000
	})
	c.loadAt(0x000100, []byte{0x42, 0x87, 0x23, 0x91})
	for i := 0; i < 500 && c.bus.Read(0x001000) == 0; i++ {
		c.Step()
	}
	if got := c.bus.Read(0x001000); got != 0x91 {
		t.Fatalf("mem[0x1000] = %#x", got)
	}
	if c.Reg.A&0xff != 0x91 {
		t.Fatalf("A = %#x", c.Reg.A)
	}
}

// S5: JSR/RTS round trip.
func TestJSRRTSRoundTrip(t *testing.T) {
	program := make([]byte, 0x1001)
	copy(program, []byte{0x20, 0x00, 0x90}) // JSR $9000
	program[0x1000] = 0x60                  // RTS at $9000 (ROM, so it is part of the image)
	c := newTestCPU(t, program)
	sBefore := c.Reg.S
	c.Step() // JSR
	c.Step() // RTS
	if c.Reg.PC != 0x8003 {
		t.Fatalf("PC = %#x", c.Reg.PC)
	}
	if c.Reg.S != sBefore {
		t.Fatalf("S = %#x, want %#x", c.Reg.S, sBefore)
	}
}

// S6: XCE transitions.
func TestXCETransitions(t *testing.T) {
	c := newTestCPU(t, []byte{0x18, 0xfb}) // CLC, XCE
	c.Step()                               // CLC
	mBefore := c.Reg.GetFlag(FlagMemory8)
	xBefore := c.Reg.GetFlag(FlagIndex8)
	c.Step() // XCE: E=1,C=0 -> E=0,C=1
	if c.Reg.E {
		t.Fatal("E should be 0 after XCE")
	}
	if !c.Reg.GetFlag(FlagCarry) {
		t.Fatal("C should be 1 after XCE")
	}
	if c.Reg.GetFlag(FlagMemory8) != mBefore || c.Reg.GetFlag(FlagIndex8) != xBefore {
		t.Fatal("M/X must not change on an E=1->0 transition")
	}
}

// S7: block move MVN. The transfer needs 16-bit X/Y, so the program
// first leaves emulation mode (CLC, XCE) and widens the index
// registers (REP #$10) before the MVN itself; block moves are only
// practical in native mode, since emulation mode forces X/Y to 8 bits
// at every instruction boundary. The destination also has to land in
// plain WRAM (bank $7E) rather than a system-bank offset in the
// hardware-register window, which discards writes.
func TestBlockMoveMVN(t *testing.T) {
	c := newTestCPU(t, []byte{0x18, 0xfb, 0xc2, 0x10, 0x54, 0x7e, 0x01}) // CLC, XCE, REP #$10, MVN dst=$7e src=$01
	c.Step() // CLC
	c.Step() // XCE: enter native mode
	c.Step() // REP #$10: widen X/Y to 16 bits

	c.Reg.A = 0x0003
	c.Reg.X = 0x1000
	c.Reg.Y = 0x2000
	c.loadAt(0x011000, []byte{0xaa, 0xbb, 0xcc, 0xdd})

	for i := 0; i < 100 && c.Reg.A != 0xffff; i++ {
		c.Step()
	}

	want := []byte{0xaa, 0xbb, 0xcc, 0xdd}
	for i, w := range want {
		if got := c.bus.Read(0x7e2000 + uint32(i)); got != w {
			t.Fatalf("dst[%d] = %#x, want %#x", i, got, w)
		}
	}
	if c.Reg.X != 0x1004 {
		t.Fatalf("X = %#x", c.Reg.X)
	}
	if c.Reg.Y != 0x2004 {
		t.Fatalf("Y = %#x", c.Reg.Y)
	}
	if c.Reg.DBR != 0x7e {
		t.Fatalf("DBR = %#x", c.Reg.DBR)
	}
}

func TestResetEntersEmulationMode(t *testing.T) {
	c := newTestCPU(t, nil)
	if !c.Reg.E {
		t.Fatal("reset must enter emulation mode")
	}
	if c.Reg.MemoryWidth() != 8 || c.Reg.IndexWidth() != 8 {
		t.Fatal("reset must force 8-bit M/X")
	}
	if c.state != Running {
		t.Fatal("reset must enter Running")
	}
}

func TestWAIWakesOnPendingInterrupt(t *testing.T) {
	c := newTestCPU(t, []byte{0xcb}) // WAI
	c.Step()
	if c.State() != Waiting {
		t.Fatal("WAI must enter Waiting")
	}
	c.SetPendingInterrupt(IRQ)
	c.Reg.SetFlag(FlagIRQDisable, false)
	c.Step()
	if c.State() != Running {
		t.Fatal("a pending IRQ must wake the processor")
	}
}

func TestSTPHaltsUntilReset(t *testing.T) {
	c := newTestCPU(t, []byte{0xdb}) // STP
	c.Step()
	if c.State() != Stopped {
		t.Fatal("STP must enter Stopped")
	}
	before := c.Cycles
	c.Step()
	c.Step()
	if c.Cycles != before+2 {
		t.Fatal("Stopped state should still tick at a fixed idle cost")
	}
	c.Reset()
	if c.State() != Running {
		t.Fatal("Reset must clear Stopped")
	}
}

func TestBreakpointFires(t *testing.T) {
	c := newTestCPU(t, []byte{0xea, 0xea}) // NOP, NOP
	var hit *Breakpoint
	h := breakpointFunc{
		onBreak: func(cpu *CPU, b *Breakpoint) { hit = b },
	}
	d := NewDebugger(h)
	d.AddBreakpoint(0x008000)
	c.SetDebugger(d)
	c.Step()
	if hit == nil || hit.Address != 0x008000 {
		t.Fatal("expected breakpoint at 0x8000 to fire")
	}
}

type breakpointFunc struct {
	onBreak     func(cpu *CPU, b *Breakpoint)
	onDataBreak func(cpu *CPU, b *DataBreakpoint)
}

func (f breakpointFunc) OnBreakpoint(cpu *CPU, b *Breakpoint) {
	if f.onBreak != nil {
		f.onBreak(cpu, b)
	}
}

func (f breakpointFunc) OnDataBreakpoint(cpu *CPU, b *DataBreakpoint) {
	if f.onDataBreak != nil {
		f.onDataBreak(cpu, b)
	}
}

func TestDataBreakpointFires(t *testing.T) {
	c := newTestCPU(t, []byte{0x8d, 0x00, 0x10}) // STA $1000
	var hit *DataBreakpoint
	h := breakpointFunc{
		onDataBreak: func(cpu *CPU, b *DataBreakpoint) { hit = b },
	}
	d := NewDebugger(h)
	d.AddDataBreakpoint(0x001000)
	c.SetDebugger(d)
	c.Step()
	if hit == nil || hit.Address != 0x001000 {
		t.Fatal("expected data breakpoint at 0x1000 to fire")
	}
}

func TestBCDAddition(t *testing.T) {
	c := newTestCPU(t, []byte{0xf8, 0xa9, 0x15, 0x69, 0x27}) // SED, LDA #$15, ADC #$27
	c.Step() // SED
	c.Step() // LDA
	c.Step() // ADC
	if c.Reg.A&0xff != 0x42 {
		t.Fatalf("decimal ADC result = %#x, want 0x42", c.Reg.A&0xff)
	}
}

func TestBRKPushesPCAndEntersHandler(t *testing.T) {
	rom := make([]byte, 0x10000)
	rom[0x8000] = 0x00 // BRK
	rom[0x8001] = 0x00 // signature byte
	rom[0xfffc] = 0x00 // reset vector low  -> 0x8000
	rom[0xfffd] = 0x80 // reset vector high
	rom[0xfffe] = 0x00 // BRK vector low    -> 0x9000
	rom[0xffff] = 0x90 // BRK vector high
	b := bus.New()
	if !b.LoadROM(rom) {
		t.Fatal("LoadROM failed")
	}
	c := NewCPU(b)
	c.Reset()
	sBefore := c.Reg.S
	c.Step()
	if c.Reg.PC != 0x9000 {
		t.Fatalf("PC = %#x, want 0x9000", c.Reg.PC)
	}
	if c.Reg.S != sBefore-3 {
		t.Fatalf("S = %#x, want %#x", c.Reg.S, sBefore-3)
	}
	if !c.Reg.GetFlag(FlagIRQDisable) {
		t.Fatal("BRK must set I")
	}
}

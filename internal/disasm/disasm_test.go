// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package disasm

import (
	"testing"

	"github.com/beevik/w816/internal/bus"
)

func TestDisassembleImmediateLoad(t *testing.T) {
	b := bus.New()
	// Bus writes to the ROM window are discarded, so build the image first.
	rom := make([]byte, 0x10000)
	rom[0x8000] = 0xa9
	rom[0x8001] = 0x42
	b.LoadROM(rom)

	line, next := Disassemble(b, 0x008000, 8, 8)
	if line != "LDA #$42" {
		t.Fatalf("line = %q", line)
	}
	if next != 0x008002 {
		t.Fatalf("next = %#x", next)
	}
}

func TestDisassembleAbsolute(t *testing.T) {
	b := bus.New()
	rom := make([]byte, 0x10000)
	rom[0x8000] = 0x8d
	rom[0x8001] = 0x00
	rom[0x8002] = 0x10
	b.LoadROM(rom)

	line, next := Disassemble(b, 0x008000, 8, 8)
	if line != "STA $1000" {
		t.Fatalf("line = %q", line)
	}
	if next != 0x008003 {
		t.Fatalf("next = %#x", next)
	}
}

func TestDisassembleImplied(t *testing.T) {
	b := bus.New()
	rom := make([]byte, 0x10000)
	rom[0x8000] = 0xea
	b.LoadROM(rom)

	line, next := Disassemble(b, 0x008000, 8, 8)
	if line != "NOP" {
		t.Fatalf("line = %q", line)
	}
	if next != 0x008001 {
		t.Fatalf("next = %#x", next)
	}
}

func TestDisassembleBranch(t *testing.T) {
	b := bus.New()
	rom := make([]byte, 0x10000)
	rom[0x8000] = 0xd0 // BNE
	rom[0x8001] = 0xfb // -5
	b.LoadROM(rom)

	line, next := Disassemble(b, 0x008000, 8, 8)
	if line != "BNE $7FFD" {
		t.Fatalf("line = %q", line)
	}
	if next != 0x008002 {
		t.Fatalf("next = %#x", next)
	}
}

// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bus

import "testing"

func romOf(size int, fill func(i int) byte) []byte {
	b := make([]byte, size)
	for i := range b {
		b[i] = fill(i)
	}
	return b
}

func TestLoadROMRejectsEmpty(t *testing.T) {
	b := New()
	if ok := b.LoadROM(nil); ok {
		t.Fatal("LoadROM(nil) should fail")
	}
	if len(b.ROM) != 0 {
		t.Fatal("LoadROM(nil) must not mutate state")
	}
}

func TestLoadROMPadsToPowerOfTwo(t *testing.T) {
	b := New()
	if !b.LoadROM(make([]byte, 3)) {
		t.Fatal("LoadROM should succeed")
	}
	if len(b.ROM) != 4 {
		t.Fatalf("expected padded size 4, got %d", len(b.ROM))
	}
}

func TestWRAMLowMirror(t *testing.T) {
	b := New()
	b.Write(0x000010, 0x42)
	if got := b.Read(0x000010); got != 0x42 {
		t.Fatalf("got %#x", got)
	}
	// The low-WRAM window is mirrored at the same offset in every system bank.
	if got := b.Read(0x800010); got != 0x42 {
		t.Fatalf("mirror got %#x", got)
	}
	// Same linear WRAM byte as seen through the full 128KiB window.
	if got := b.Read(0x7e0010); got != 0x42 {
		t.Fatalf("full wram view got %#x", got)
	}
}

func TestFullWRAMBanks(t *testing.T) {
	b := New()
	b.Write(0x7e0000, 0x11)
	b.Write(0x7f0000, 0x22)
	if b.WRAM[0] != 0x11 || b.WRAM[0x10000] != 0x22 {
		t.Fatal("bank 7e/7f did not linearize correctly")
	}
}

func TestHardwareRegisterWindowIsOpenBus(t *testing.T) {
	b := New()
	b.Write(0x002100, 0x99) // discarded
	if got := b.Read(0x002100); got != 0xff {
		t.Fatalf("expected open bus 0xff, got %#x", got)
	}
}

func TestSaveRAMWindow(t *testing.T) {
	b := New()
	b.SetSRAM(0x800) // 2KiB, rounds to power of two already
	b.Write(0x006000, 0x55)
	if got := b.Read(0x006000); got != 0x55 {
		t.Fatalf("got %#x", got)
	}
}

func TestSaveRAMAbsentIsOpenBus(t *testing.T) {
	b := New()
	b.Write(0x006000, 0x55) // discarded, no SRAM configured
	if got := b.Read(0x006000); got != 0xff {
		t.Fatalf("expected open bus, got %#x", got)
	}
}

func TestROMIsReadOnly(t *testing.T) {
	b := New()
	b.LoadROM(romOf(0x10000, func(i int) byte { return byte(i) }))
	before := b.Read(0x008000)
	b.Write(0x008000, 0xff)
	after := b.Read(0x008000)
	if before != after {
		t.Fatal("write to ROM must be discarded")
	}
}

func TestRead16LittleEndian(t *testing.T) {
	b := New()
	b.Write(0x7e1000, 0x34)
	b.Write(0x7e1001, 0x12)
	if got := b.Read16(0x7e1000); got != 0x1234 {
		t.Fatalf("got %#x", got)
	}
}

func TestWrite16RoundTrip(t *testing.T) {
	b := New()
	b.Write16(0x7e2000, 0xabcd)
	if got := b.Read16(0x7e2000); got != 0xabcd {
		t.Fatalf("got %#x", got)
	}
}

func TestPureROMBanks(t *testing.T) {
	b := New()
	b.LoadROM(romOf(0x20000, func(i int) byte { return byte(i) }))
	// bank 0x40 offset 0x0000 => linear 0x400000, masked into ROM size.
	got := b.Read(0x400000)
	want := byte(0x400000 & (0x20000 - 1))
	if got != want {
		t.Fatalf("got %#x want %#x", got, want)
	}
}

// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"bytes"
	"strings"
	"testing"
)

func newTestHost(t *testing.T) *Host {
	t.Helper()
	h := New()
	rom := make([]byte, 0x10000)
	rom[0xfffc] = 0x00
	rom[0xfffd] = 0x80
	if !h.LoadROM(rom) {
		t.Fatal("LoadROM failed")
	}
	h.Reset()
	return h
}

func runScript(h *Host, script string) string {
	var out bytes.Buffer
	h.RunCommands(strings.NewReader(script), &out, false)
	return out.String()
}

func TestBreakpointAddListRemove(t *testing.T) {
	h := newTestHost(t)
	out := runScript(h, "breakpoint add $8000\nbreakpoint list\nbreakpoint remove $8000\nbreakpoint list\n")
	if !strings.Contains(out, "Breakpoint added at $008000") {
		t.Fatalf("missing add confirmation: %q", out)
	}
	if !strings.Contains(out, "$008000 (enabled)") {
		t.Fatalf("missing list entry: %q", out)
	}
	if !strings.Contains(out, "No breakpoints set.") {
		t.Fatalf("breakpoint was not removed: %q", out)
	}
}

func TestRunStopsAtBreakpoint(t *testing.T) {
	h := newTestHost(t)
	// Bus writes to the ROM window are discarded, so patch the image.
	h.bus.ROM[0x8000] = 0xea // NOP
	h.bus.ROM[0x8001] = 0xea // NOP
	h.bus.ROM[0x8002] = 0xea // NOP

	out := runScript(h, "breakpoint add $8002\nrun\n")
	if !strings.Contains(out, "Breakpoint hit at $008002") {
		t.Fatalf("expected breakpoint hit: %q", out)
	}
	if h.cpu.Reg.PC != 0x8002 {
		t.Fatalf("PC = %#x, want 0x8002", h.cpu.Reg.PC)
	}
}

func TestSetRegister(t *testing.T) {
	h := newTestHost(t)
	out := runScript(h, "set a $42\n")
	if !strings.Contains(out, "A set to $0042") {
		t.Fatalf("unexpected output: %q", out)
	}
	if h.cpu.Reg.A != 0x42 {
		t.Fatalf("A = %#x, want 0x42", h.cpu.Reg.A)
	}
}

func TestStepInAdvancesPC(t *testing.T) {
	h := newTestHost(t)
	h.bus.ROM[0x8000] = 0xa9 // LDA #$55
	h.bus.ROM[0x8001] = 0x55

	runScript(h, "step in\n")
	if h.cpu.Reg.A&0xff != 0x55 {
		t.Fatalf("A = %#x, want 0x55", h.cpu.Reg.A)
	}
	if h.cpu.Reg.PC != 0x8002 {
		t.Fatalf("PC = %#x, want 0x8002", h.cpu.Reg.PC)
	}
}

func TestMemorySetAndDump(t *testing.T) {
	h := newTestHost(t)
	runScript(h, "memory set $1000 $11 $22 $33\n")
	if h.bus.Read(0x001000) != 0x11 || h.bus.Read(0x001002) != 0x33 {
		t.Fatal("memory set did not write expected bytes")
	}
	out := runScript(h, "memory dump $1000 3\n")
	if !strings.Contains(out, "11 22 33") {
		t.Fatalf("unexpected dump output: %q", out)
	}
}

func TestQuitEndsCommandLoop(t *testing.T) {
	h := newTestHost(t)
	var out bytes.Buffer
	h.RunCommands(strings.NewReader("quit\nregister\n"), &out, false)
	if strings.Contains(out.String(), "PC=") {
		t.Fatal("commands after quit should not have run")
	}
}

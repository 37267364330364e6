// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host wraps the bus, CPU, and disassembler packages in an
// interactive command processor: a line-oriented debugger shell that
// can set breakpoints, step the processor, dump memory, and load
// binary images.
package host

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/beevik/cmd"
	"github.com/beevik/w816/internal/bus"
	"github.com/beevik/w816/internal/cpu"
	"github.com/beevik/w816/internal/disasm"
)

// A selection is a command matched against the command tree, along with
// the unmatched trailing arguments.
type selection struct {
	Command *cmd.Command
	Args    []string
}

type state byte

const (
	stateProcessingCommands state = iota
	stateRunning
	stateBreakpoint
)

// Host holds a single emulated W65C816S system: its bus, CPU,
// debugger, and the command-shell state needed to drive them
// interactively.
type Host struct {
	input       *bufio.Scanner
	output      *bufio.Writer
	interactive bool

	bus      *bus.Bus
	cpu      *cpu.CPU
	debugger *cpu.Debugger

	lastCmd  *selection
	state    state
	settings *settings
}

// New creates a host with a fresh bus and CPU. The caller must load a
// ROM image with LoadROM before the CPU can be reset and run.
func New() *Host {
	h := &Host{
		state:    stateProcessingCommands,
		settings: newSettings(),
	}

	h.bus = bus.New()
	h.cpu = cpu.NewCPU(h.bus)
	h.debugger = cpu.NewDebugger(newDebugHandler(h))
	h.cpu.SetDebugger(h.debugger)

	return h
}

// LoadROM installs a ROM image on the host's bus. It must be called
// before Reset.
func (h *Host) LoadROM(data []byte) bool {
	return h.bus.LoadROM(data)
}

// Reset resets the emulated processor.
func (h *Host) Reset() {
	h.cpu.Reset()
}

// RunCommands reads command lines from r and writes responses to w.
// If interactive is true, a prompt is displayed, and the instruction
// at the current PC is shown at startup and after the register, reset
// and step commands.
func (h *Host) RunCommands(r io.Reader, w io.Writer, interactive bool) {
	h.input = bufio.NewScanner(r)
	h.output = bufio.NewWriter(w)
	h.interactive = interactive

	if interactive {
		h.println()
	}
	h.displayPC()

	for {
		h.prompt()

		line, err := h.getLine()
		if err != nil {
			break
		}

		var c selection
		if line != "" {
			var node cmd.Node
			node, c.Args, err = cmds.Lookup(line)
			switch {
			case err == cmd.ErrNotFound:
				h.println("Command not found.")
				continue
			case err == cmd.ErrAmbiguous:
				h.println("Command is ambiguous.")
				continue
			case err != nil:
				h.printf("ERROR: %v.\n", err)
				continue
			}
			c.Command, _ = node.(*cmd.Command)
		} else if h.lastCmd != nil {
			c = *h.lastCmd
		}

		if c.Command == nil {
			continue
		}
		h.lastCmd = &c

		handler := c.Command.Data.(func(*Host, selection) error)
		if err = handler(h, c); err != nil {
			break
		}
	}
}

// Break interrupts a running CPU, returning the shell to command mode.
func (h *Host) Break() {
	h.println()
	if h.state == stateRunning {
		h.displayPC()
	}
	h.state = stateProcessingCommands
	h.prompt()
}

func (h *Host) write(p []byte) (int, error) {
	return h.output.Write(p)
}

func (h *Host) print(args ...any) {
	fmt.Fprint(h.output, args...)
}

func (h *Host) printf(format string, args ...any) {
	fmt.Fprintf(h.output, format, args...)
	h.flush()
}

func (h *Host) println(args ...any) {
	fmt.Fprintln(h.output, args...)
	h.flush()
}

func (h *Host) flush() {
	h.output.Flush()
}

func (h *Host) getLine() (string, error) {
	if h.input.Scan() {
		return h.input.Text(), nil
	}
	if h.input.Err() != nil {
		return "", h.input.Err()
	}
	return "", io.EOF
}

func (h *Host) prompt() {
	if h.interactive {
		h.printf("* ")
	}
}

func (h *Host) displayPC() {
	if h.interactive {
		line, _ := disasm.Disassemble(h.bus, pc24(h.cpu.Reg), h.cpu.Reg.MemoryWidth(), h.cpu.Reg.IndexWidth())
		h.printf("%06X: %s\n", pc24(h.cpu.Reg), line)
	}
}

func pc24(r cpu.Registers) uint32 {
	return uint32(r.PBR)<<16 | uint32(r.PC)
}

func parseAddr(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "$")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q", s)
	}
	return uint32(v), nil
}

func parseByte(s string) (byte, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "$")
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid byte %q", s)
	}
	return byte(v), nil
}

func (h *Host) cmdHelp(c selection) error {
	if len(c.Args) == 0 {
		h.println("Commands: help, register, set, reset, run, step in, step over,")
		h.println("breakpoint, databreakpoint, disassemble, memory dump, memory set,")
		h.println("load, interrupt, quit. Type 'help <command>' for details.")
		return nil
	}
	node, _, err := cmds.Lookup(strings.Join(c.Args, " "))
	target, _ := node.(*cmd.Command)
	if err != nil || target == nil {
		h.println("Command not found.")
		return nil
	}
	if target.Usage != "" {
		h.printf("Syntax: %s\n", target.Usage)
	}
	switch {
	case target.Description != "":
		h.println(target.Description)
	case target.Brief != "":
		h.println(target.Brief)
	}
	return nil
}

func (h *Host) cmdQuit(c selection) error {
	return io.EOF
}

func (h *Host) cmdReset(c selection) error {
	h.cpu.Reset()
	h.displayPC()
	return nil
}

func (h *Host) cmdRegisters(c selection) error {
	r := &h.cpu.Reg
	h.printf("PC=%02X:%04X A=%04X X=%04X Y=%04X S=%04X D=%04X DBR=%02X\n",
		r.PBR, r.PC, r.A, r.X, r.Y, r.S, r.D, r.DBR)
	h.printf("P=%s E=%v  Cycles=%d  State=%v\n", flagString(r.P), r.E, h.cpu.Cycles, h.cpu.State())
	h.displayPC()
	return nil
}

func flagString(p byte) string {
	bits := "NVMXDIZC"
	out := make([]byte, 8)
	for i := 0; i < 8; i++ {
		bit := p&(1<<(7-i)) != 0
		c := strings.ToLower(string(bits[i]))[0]
		if bit {
			c = bits[i]
		}
		out[i] = c
	}
	return string(out)
}

func (h *Host) cmdSet(c selection) error {
	if len(c.Args) == 0 {
		h.println("Settings:")
		h.settings.Display(h.output)
		return nil
	}
	if len(c.Args) < 2 {
		h.println("set <register-or-setting> <value>")
		return nil
	}

	key, value := strings.ToLower(c.Args[0]), c.Args[1]

	r := &h.cpu.Reg
	switch key {
	case "a":
		v, err := strconv.ParseUint(strings.TrimPrefix(value, "$"), 16, 16)
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		r.A = uint16(v)
		h.printf("A set to $%04X.\n", r.A)
		return nil
	case "x":
		v, err := strconv.ParseUint(strings.TrimPrefix(value, "$"), 16, 16)
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		r.X = uint16(v)
		h.printf("X set to $%04X.\n", r.X)
		return nil
	case "y":
		v, err := strconv.ParseUint(strings.TrimPrefix(value, "$"), 16, 16)
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		r.Y = uint16(v)
		h.printf("Y set to $%04X.\n", r.Y)
		return nil
	case "pc", ".":
		v, err := strconv.ParseUint(strings.TrimPrefix(value, "$"), 16, 16)
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		r.PC = uint16(v)
		h.printf("PC set to $%04X.\n", r.PC)
		return nil
	}

	switch h.settings.Kind(key) {
	case reflect.Invalid:
		h.printf("Setting %q not found.\n", key)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		if err := h.settings.Set(key, b); err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.println("Setting updated.")
	default:
		n, err := strconv.ParseUint(strings.TrimPrefix(value, "$"), 0, 32)
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		if err := h.settings.Set(key, n); err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.println("Setting updated.")
	}
	return nil
}

func (h *Host) cmdInterrupt(c selection) error {
	if len(c.Args) < 1 {
		h.println("interrupt <nmi|irq>")
		return nil
	}
	switch strings.ToLower(c.Args[0]) {
	case "nmi":
		h.cpu.SetPendingInterrupt(cpu.NMI)
		h.println("NMI requested.")
	case "irq":
		h.cpu.SetPendingInterrupt(cpu.IRQ)
		h.println("IRQ requested.")
	default:
		h.println("Unknown interrupt source.")
	}
	return nil
}

func (h *Host) cmdLoad(c selection) error {
	if len(c.Args) < 2 {
		h.println("load <filename> <address>")
		return nil
	}
	addr, err := parseAddr(c.Args[1])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}
	data, err := os.ReadFile(c.Args[0])
	if err != nil {
		h.printf("Failed to read %q: %v\n", c.Args[0], err)
		return nil
	}
	for i, v := range data {
		h.bus.Write(addr+uint32(i), v)
	}
	h.printf("Loaded %d bytes at $%06X.\n", len(data), addr)
	return nil
}

func (h *Host) cmdMemoryDump(c selection) error {
	addr := h.settings.NextMemAddr
	count := h.settings.MemDumpBytes
	if len(c.Args) > 0 {
		a, err := parseAddr(c.Args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		addr = a
	}
	if len(c.Args) > 1 {
		n, err := strconv.Atoi(c.Args[1])
		if err == nil {
			count = n
		}
	}

	for i := 0; i < count; i += 16 {
		h.printf("%06X:", addr+uint32(i))
		for j := 0; j < 16 && i+j < count; j++ {
			h.printf(" %02X", h.bus.Read(addr+uint32(i+j)))
		}
		h.println()
	}
	h.settings.NextMemAddr = addr + uint32(count)
	return nil
}

func (h *Host) cmdMemorySet(c selection) error {
	if len(c.Args) < 2 {
		h.println("memory set <address> <byte> [<byte>...]")
		return nil
	}
	addr, err := parseAddr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}
	for i, s := range c.Args[1:] {
		v, err := parseByte(s)
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.bus.Write(addr+uint32(i), v)
	}
	h.printf("Wrote %d byte(s) at $%06X.\n", len(c.Args)-1, addr)
	return nil
}

func (h *Host) cmdDisassemble(c selection) error {
	addr := h.settings.NextDisasmAddr
	if addr == 0 {
		addr = pc24(h.cpu.Reg)
	}
	count := h.settings.DisasmLines
	if len(c.Args) > 0 {
		a, err := parseAddr(c.Args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		addr = a
	}
	if len(c.Args) > 1 {
		n, err := strconv.Atoi(c.Args[1])
		if err == nil {
			count = n
		}
	}

	for i := 0; i < count; i++ {
		line, next := disasm.Disassemble(h.bus, addr, h.cpu.Reg.MemoryWidth(), h.cpu.Reg.IndexWidth())
		h.printf("%06X: %s\n", addr, line)
		addr = next
	}
	h.settings.NextDisasmAddr = addr
	return nil
}

func (h *Host) cmdBreakpointList(c selection) error {
	bps := h.debugger.GetBreakpoints()
	if len(bps) == 0 {
		h.println("No breakpoints set.")
		return nil
	}
	for _, b := range bps {
		state := "enabled"
		if b.Disabled {
			state = "disabled"
		}
		h.printf("$%06X (%s)\n", b.Address, state)
	}
	return nil
}

func (h *Host) cmdBreakpointAdd(c selection) error {
	if len(c.Args) < 1 {
		h.println("breakpoint add <address>")
		return nil
	}
	addr, err := parseAddr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}
	h.debugger.AddBreakpoint(addr)
	h.printf("Breakpoint added at $%06X.\n", addr)
	return nil
}

func (h *Host) cmdBreakpointRemove(c selection) error {
	if len(c.Args) < 1 {
		h.println("breakpoint remove <address>")
		return nil
	}
	addr, err := parseAddr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}
	if h.debugger.GetBreakpoint(addr) == nil {
		h.printf("No breakpoint set at $%06X.\n", addr)
		return nil
	}
	h.debugger.RemoveBreakpoint(addr)
	h.printf("Breakpoint at $%06X removed.\n", addr)
	return nil
}

func (h *Host) cmdBreakpointEnable(c selection) error {
	return h.toggleBreakpoint(c, true)
}

func (h *Host) cmdBreakpointDisable(c selection) error {
	return h.toggleBreakpoint(c, false)
}

func (h *Host) toggleBreakpoint(c selection, enable bool) error {
	if len(c.Args) < 1 {
		h.println("breakpoint <enable|disable> <address>")
		return nil
	}
	addr, err := parseAddr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}
	if enable {
		h.debugger.EnableBreakpoint(addr)
	} else {
		h.debugger.DisableBreakpoint(addr)
	}
	h.printf("Breakpoint at $%06X updated.\n", addr)
	return nil
}

func (h *Host) cmdDataBreakpointList(c selection) error {
	dbps := h.debugger.GetDataBreakpoints()
	if len(dbps) == 0 {
		h.println("No data breakpoints set.")
		return nil
	}
	for _, b := range dbps {
		state := "enabled"
		if b.Disabled {
			state = "disabled"
		}
		if b.Conditional {
			h.printf("$%06X == $%02X (%s)\n", b.Address, b.Value, state)
		} else {
			h.printf("$%06X (%s)\n", b.Address, state)
		}
	}
	return nil
}

func (h *Host) cmdDataBreakpointAdd(c selection) error {
	if len(c.Args) < 1 {
		h.println("databreakpoint add <address> [<value>]")
		return nil
	}
	addr, err := parseAddr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}
	if len(c.Args) > 1 {
		v, err := parseByte(c.Args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.debugger.AddConditionalDataBreakpoint(addr, v)
	} else {
		h.debugger.AddDataBreakpoint(addr)
	}
	h.printf("Data breakpoint added at $%06X.\n", addr)
	return nil
}

func (h *Host) cmdDataBreakpointRemove(c selection) error {
	if len(c.Args) < 1 {
		h.println("databreakpoint remove <address>")
		return nil
	}
	addr, err := parseAddr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}
	h.debugger.RemoveDataBreakpoint(addr)
	h.printf("Data breakpoint at $%06X removed.\n", addr)
	return nil
}

func (h *Host) cmdDataBreakpointEnable(c selection) error {
	return h.toggleDataBreakpoint(c, true)
}

func (h *Host) cmdDataBreakpointDisable(c selection) error {
	return h.toggleDataBreakpoint(c, false)
}

func (h *Host) toggleDataBreakpoint(c selection, enable bool) error {
	if len(c.Args) < 1 {
		h.println("databreakpoint <enable|disable> <address>")
		return nil
	}
	addr, err := parseAddr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}
	if enable {
		h.debugger.EnableDataBreakpoint(addr)
	} else {
		h.debugger.DisableDataBreakpoint(addr)
	}
	h.printf("Data breakpoint at $%06X updated.\n", addr)
	return nil
}

func (h *Host) cmdRun(c selection) error {
	if len(c.Args) > 0 {
		addr, err := parseAddr(c.Args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.cpu.Reg.PBR = byte(addr >> 16)
		h.cpu.Reg.PC = uint16(addr)
	}

	h.printf("Running from $%02X:%04X. Press ctrl-C to break.\n", h.cpu.Reg.PBR, h.cpu.Reg.PC)

	h.state = stateRunning
	for h.state == stateRunning {
		if b := h.debugger.GetBreakpoint(pc24(h.cpu.Reg)); b != nil && !b.Disabled {
			h.onBreakpoint(h.cpu, b)
			break
		}
		h.cpu.Step()
		if h.cpu.State() == cpu.Stopped {
			break
		}
	}
	h.state = stateProcessingCommands
	return nil
}

func (h *Host) cmdStepIn(c selection) error {
	count := 1
	if len(c.Args) > 0 {
		if n, err := strconv.Atoi(c.Args[0]); err == nil {
			count = n
		}
	}
	for i := 0; i < count; i++ {
		h.cpu.Step()
		if i < h.settings.StepLines {
			h.displayPC()
		}
	}
	return nil
}

func (h *Host) cmdStepOver(c selection) error {
	count := 1
	if len(c.Args) > 0 {
		if n, err := strconv.Atoi(c.Args[0]); err == nil {
			count = n
		}
	}
	for i := 0; i < count; i++ {
		h.stepOver()
		if i < h.settings.StepLines {
			h.displayPC()
		}
	}
	return nil
}

// stepOver runs the instruction at the current PC; if it is a JSR
// it places a temporary breakpoint just past the call and runs to it
// instead of descending into the subroutine.
func (h *Host) stepOver() {
	opcode := h.bus.Read(pc24(h.cpu.Reg))
	if cpu.OpcodeName(opcode) != "JSR" {
		h.cpu.Step()
		return
	}

	length := cpu.OperandLength(opcode, h.cpu.Reg.MemoryWidth(), h.cpu.Reg.IndexWidth())
	returnAddr := uint32(h.cpu.Reg.PBR)<<16 | uint32(h.cpu.Reg.PC+uint16(length)+1)

	h.debugger.AddBreakpoint(returnAddr)
	defer h.debugger.RemoveBreakpoint(returnAddr)

	depth := h.cpu.Reg.S
	h.cpu.Step() // execute the JSR itself
	for h.cpu.Reg.S <= depth && pc24(h.cpu.Reg) != returnAddr {
		h.cpu.Step()
	}
}

func (h *Host) onBreakpoint(c *cpu.CPU, b *cpu.Breakpoint) {
	h.state = stateBreakpoint
	h.printf("Breakpoint hit at $%06X.\n", b.Address)
}

func (h *Host) onDataBreakpoint(c *cpu.CPU, b *cpu.DataBreakpoint) {
	h.state = stateBreakpoint
	h.printf("Data breakpoint hit at $%06X.\n", b.Address)
}

// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import "sort"

// Debugger intercepts instruction fetches and data stores on a CPU and
// notifies a BreakpointHandler when an address matches a breakpoint it
// has been given. Addresses are the processor's full 24-bit bank:offset
// form, not the 16-bit offsets a 6502-class debugger would use.
type Debugger struct {
	handler         BreakpointHandler
	breakpoints     map[uint32]*Breakpoint
	dataBreakpoints map[uint32]*DataBreakpoint
}

// BreakpointHandler receives notifications when the debugger's
// breakpoints are hit.
type BreakpointHandler interface {
	OnBreakpoint(cpu *CPU, b *Breakpoint)
	OnDataBreakpoint(cpu *CPU, b *DataBreakpoint)
}

// Breakpoint stops execution when the program counter (as PBR:PC)
// reaches Address.
type Breakpoint struct {
	Address  uint32
	Disabled bool
}

// DataBreakpoint stops execution when a byte is stored to Address. If
// Conditional is set, it only fires when the stored byte equals Value.
type DataBreakpoint struct {
	Address     uint32
	Disabled    bool
	Conditional bool
	Value       byte
}

// NewDebugger creates a debugger that reports breakpoint hits to handler.
func NewDebugger(handler BreakpointHandler) *Debugger {
	return &Debugger{
		handler:         handler,
		breakpoints:     make(map[uint32]*Breakpoint),
		dataBreakpoints: make(map[uint32]*DataBreakpoint),
	}
}

type byBPAddr []*Breakpoint

func (a byBPAddr) Len() int           { return len(a) }
func (a byBPAddr) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byBPAddr) Less(i, j int) bool { return a[i].Address < a[j].Address }

// GetBreakpoint looks up a breakpoint by address, returning nil if none
// is set there.
func (d *Debugger) GetBreakpoint(addr uint32) *Breakpoint {
	return d.breakpoints[addr]
}

// GetBreakpoints returns all breakpoints, sorted by address.
func (d *Debugger) GetBreakpoints() []*Breakpoint {
	var bps []*Breakpoint
	for _, b := range d.breakpoints {
		bps = append(bps, b)
	}
	sort.Sort(byBPAddr(bps))
	return bps
}

// AddBreakpoint sets an execution breakpoint at addr. If one already
// exists there it is replaced and re-enabled.
func (d *Debugger) AddBreakpoint(addr uint32) *Breakpoint {
	b := &Breakpoint{Address: addr}
	d.breakpoints[addr] = b
	return b
}

// RemoveBreakpoint removes the breakpoint at addr, if any.
func (d *Debugger) RemoveBreakpoint(addr uint32) {
	delete(d.breakpoints, addr)
}

// EnableBreakpoint re-enables a previously disabled breakpoint.
func (d *Debugger) EnableBreakpoint(addr uint32) {
	if b, ok := d.breakpoints[addr]; ok {
		b.Disabled = false
	}
}

// DisableBreakpoint disables a breakpoint without removing it.
func (d *Debugger) DisableBreakpoint(addr uint32) {
	if b, ok := d.breakpoints[addr]; ok {
		b.Disabled = true
	}
}

type byDBPAddr []*DataBreakpoint

func (a byDBPAddr) Len() int           { return len(a) }
func (a byDBPAddr) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byDBPAddr) Less(i, j int) bool { return a[i].Address < a[j].Address }

// GetDataBreakpoint looks up a data breakpoint by address, returning
// nil if none is set there.
func (d *Debugger) GetDataBreakpoint(addr uint32) *DataBreakpoint {
	return d.dataBreakpoints[addr]
}

// GetDataBreakpoints returns all data breakpoints, sorted by address.
func (d *Debugger) GetDataBreakpoints() []*DataBreakpoint {
	var bps []*DataBreakpoint
	for _, b := range d.dataBreakpoints {
		bps = append(bps, b)
	}
	sort.Sort(byDBPAddr(bps))
	return bps
}

// AddDataBreakpoint sets an unconditional data breakpoint at addr.
func (d *Debugger) AddDataBreakpoint(addr uint32) *DataBreakpoint {
	b := &DataBreakpoint{Address: addr}
	d.dataBreakpoints[addr] = b
	return b
}

// AddConditionalDataBreakpoint sets a data breakpoint at addr that only
// fires when the stored byte equals value.
func (d *Debugger) AddConditionalDataBreakpoint(addr uint32, value byte) *DataBreakpoint {
	b := &DataBreakpoint{Address: addr, Conditional: true, Value: value}
	d.dataBreakpoints[addr] = b
	return b
}

// RemoveDataBreakpoint removes the data breakpoint at addr, if any.
func (d *Debugger) RemoveDataBreakpoint(addr uint32) {
	delete(d.dataBreakpoints, addr)
}

// EnableDataBreakpoint re-enables a previously disabled data breakpoint.
func (d *Debugger) EnableDataBreakpoint(addr uint32) {
	if b, ok := d.dataBreakpoints[addr]; ok {
		b.Disabled = false
	}
}

// DisableDataBreakpoint disables a data breakpoint without removing it.
func (d *Debugger) DisableDataBreakpoint(addr uint32) {
	if b, ok := d.dataBreakpoints[addr]; ok {
		b.Disabled = true
	}
}

// onExecute is called by CPU.Step before each instruction fetch.
func (d *Debugger) onExecute(cpu *CPU, addr uint32) {
	if d.handler == nil {
		return
	}
	if b, ok := d.breakpoints[addr]; ok && !b.Disabled {
		d.handler.OnBreakpoint(cpu, b)
	}
}

// onDataStore is called by CPU.storeWidth after each memory write.
func (d *Debugger) onDataStore(cpu *CPU, addr uint32, v byte) {
	if d.handler == nil {
		return
	}
	if b, ok := d.dataBreakpoints[addr]; ok && !b.Disabled {
		if !b.Conditional || b.Value == v {
			d.handler.OnDataBreakpoint(cpu, b)
		}
	}
}

// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import "github.com/beevik/cmd"

var cmds *cmd.Tree

func init() {
	root := cmd.NewTree(cmd.TreeDescriptor{Name: "w816"})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "help",
		Description: "Display help for a command.",
		Usage:       "help [<command>]",
		Data:        (*Host).cmdHelp,
	})

	// Breakpoint commands.
	bp := root.AddSubtree(cmd.TreeDescriptor{Name: "breakpoint", Brief: "Breakpoint commands"})
	bp.AddCommand(cmd.CommandDescriptor{
		Name:        "list",
		Brief:       "List breakpoints",
		Description: "List all current breakpoints.",
		Usage:       "breakpoint list",
		Data:        (*Host).cmdBreakpointList,
	})
	bp.AddCommand(cmd.CommandDescriptor{
		Name:  "add",
		Brief: "Add a breakpoint",
		Description: "Add a breakpoint at the specified 24-bit address." +
			" The breakpoint starts enabled.",
		Usage: "breakpoint add <address>",
		Data:  (*Host).cmdBreakpointAdd,
	})
	bp.AddCommand(cmd.CommandDescriptor{
		Name:        "remove",
		Brief:       "Remove a breakpoint",
		Description: "Remove a breakpoint at the specified address.",
		Usage:       "breakpoint remove <address>",
		Data:        (*Host).cmdBreakpointRemove,
	})
	bp.AddCommand(cmd.CommandDescriptor{
		Name:        "enable",
		Brief:       "Enable a breakpoint",
		Description: "Enable a previously added breakpoint.",
		Usage:       "breakpoint enable <address>",
		Data:        (*Host).cmdBreakpointEnable,
	})
	bp.AddCommand(cmd.CommandDescriptor{
		Name:        "disable",
		Brief:       "Disable a breakpoint",
		Description: "Disable a previously added breakpoint.",
		Usage:       "breakpoint disable <address>",
		Data:        (*Host).cmdBreakpointDisable,
	})

	// Data breakpoint commands.
	db := root.AddSubtree(cmd.TreeDescriptor{Name: "databreakpoint", Brief: "Data breakpoint commands"})
	db.AddCommand(cmd.CommandDescriptor{
		Name:        "list",
		Brief:       "List data breakpoints",
		Description: "List all current data breakpoints.",
		Usage:       "databreakpoint list",
		Data:        (*Host).cmdDataBreakpointList,
	})
	db.AddCommand(cmd.CommandDescriptor{
		Name:  "add",
		Brief: "Add a data breakpoint",
		Description: "Add a data breakpoint at the specified memory address." +
			" When the CPU stores data at this address, the breakpoint will" +
			" stop execution. Optionally, a byte value may be specified so" +
			" that the breakpoint only fires on that value.",
		Usage: "databreakpoint add <address> [<value>]",
		Data:  (*Host).cmdDataBreakpointAdd,
	})
	db.AddCommand(cmd.CommandDescriptor{
		Name:        "remove",
		Brief:       "Remove a data breakpoint",
		Description: "Remove a data breakpoint at the specified address.",
		Usage:       "databreakpoint remove <address>",
		Data:        (*Host).cmdDataBreakpointRemove,
	})
	db.AddCommand(cmd.CommandDescriptor{
		Name:        "enable",
		Brief:       "Enable a data breakpoint",
		Description: "Enable a previously added data breakpoint.",
		Usage:       "databreakpoint enable <address>",
		Data:        (*Host).cmdDataBreakpointEnable,
	})
	db.AddCommand(cmd.CommandDescriptor{
		Name:        "disable",
		Brief:       "Disable a data breakpoint",
		Description: "Disable a previously added data breakpoint.",
		Usage:       "databreakpoint disable <address>",
		Data:        (*Host).cmdDataBreakpointDisable,
	})

	root.AddCommand(cmd.CommandDescriptor{
		Name:        "disassemble",
		Brief:       "Disassemble code",
		Description: "Disassemble code at the specified address. If omitted, continue where the previous disassembly ended (the current PC the first time).",
		Usage:       "disassemble [<address>] [<count>]",
		Data:        (*Host).cmdDisassemble,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "interrupt",
		Brief:       "Request an interrupt",
		Description: "Request an NMI or IRQ on the emulated processor.",
		Usage:       "interrupt <nmi|irq>",
		Data:        (*Host).cmdInterrupt,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "load",
		Brief:       "Load a binary image into memory",
		Description: "Load raw bytes from a file into bus-addressable memory starting at the given address.",
		Usage:       "load <filename> <address>",
		Data:        (*Host).cmdLoad,
	})

	// Memory commands.
	me := root.AddSubtree(cmd.TreeDescriptor{Name: "memory", Brief: "Memory commands"})
	me.AddCommand(cmd.CommandDescriptor{
		Name:        "dump",
		Brief:       "Dump memory",
		Description: "Dump a range of memory bytes in hex.",
		Usage:       "memory dump [<address>] [<count>]",
		Data:        (*Host).cmdMemoryDump,
	})
	me.AddCommand(cmd.CommandDescriptor{
		Name:        "set",
		Brief:       "Set memory bytes",
		Description: "Write one or more byte values starting at an address.",
		Usage:       "memory set <address> <byte> [<byte>...]",
		Data:        (*Host).cmdMemorySet,
	})

	root.AddCommand(cmd.CommandDescriptor{
		Name:        "quit",
		Brief:       "Quit",
		Description: "Quit the debugger.",
		Usage:       "quit",
		Data:        (*Host).cmdQuit,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "register",
		Brief:       "Display registers",
		Description: "Display the CPU register file and the instruction at the current PC.",
		Usage:       "register",
		Data:        (*Host).cmdRegisters,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "reset",
		Brief:       "Reset the processor",
		Description: "Reset the processor, entering emulation mode at the reset vector.",
		Usage:       "reset",
		Data:        (*Host).cmdReset,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "run",
		Brief:       "Run the CPU",
		Description: "Run the CPU starting at the current PC, or an address if given, until a breakpoint or halt.",
		Usage:       "run [<address>]",
		Data:        (*Host).cmdRun,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "set",
		Brief:       "Set a register or debugger setting",
		Description: "Set a CPU register or a debugger setting to a value.",
		Usage:       "set [<register-or-setting> <value>]",
		Data:        (*Host).cmdSet,
	})

	// Step commands.
	st := root.AddSubtree(cmd.TreeDescriptor{Name: "step", Brief: "Step the processor"})
	st.AddCommand(cmd.CommandDescriptor{
		Name:        "in",
		Brief:       "Step one instruction",
		Description: "Execute a single instruction, stepping into subroutine calls.",
		Usage:       "step in [<count>]",
		Data:        (*Host).cmdStepIn,
	})
	st.AddCommand(cmd.CommandDescriptor{
		Name:        "over",
		Brief:       "Step over a subroutine call",
		Description: "Execute a single instruction, stepping over JSR calls by running to the matching RTS.",
		Usage:       "step over [<count>]",
		Data:        (*Host).cmdStepOver,
	})

	root.AddShortcut("b", "breakpoint")
	root.AddShortcut("ba", "breakpoint add")
	root.AddShortcut("br", "breakpoint remove")
	root.AddShortcut("bl", "breakpoint list")
	root.AddShortcut("be", "breakpoint enable")
	root.AddShortcut("bd", "breakpoint disable")
	root.AddShortcut("d", "disassemble")
	root.AddShortcut("db", "databreakpoint")
	root.AddShortcut("dbl", "databreakpoint list")
	root.AddShortcut("dba", "databreakpoint add")
	root.AddShortcut("dbr", "databreakpoint remove")
	root.AddShortcut("dbe", "databreakpoint enable")
	root.AddShortcut("dbd", "databreakpoint disable")
	root.AddShortcut("m", "memory dump")
	root.AddShortcut("ms", "memory set")
	root.AddShortcut("r", "register")
	root.AddShortcut("s", "step over")
	root.AddShortcut("si", "step in")
	root.AddShortcut("q", "quit")
	root.AddShortcut("?", "help")
	root.AddShortcut(".", "register")

	cmds = root
}

// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command w816dbg is an interactive command-line debugger for the
// W65C816S emulation core. It loads a ROM image, exposes the
// register file and memory bus to the operator, and runs commands
// either from a script file or interactively from the terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/beevik/term"
	"github.com/beevik/w816/internal/host"
)

var romPath string

func init() {
	flag.StringVar(&romPath, "rom", "", "ROM image to load at boot")
	flag.CommandLine.Usage = func() {
		fmt.Println("Usage: w816dbg -rom <file> [script] ..\nOptions:")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	h := host.New()

	if romPath != "" {
		data, err := os.ReadFile(romPath)
		if err != nil {
			exitOnError(err)
		}
		if !h.LoadROM(data) {
			exitOnError(fmt.Errorf("ROM image %q has an invalid size", romPath))
		}
		h.Reset()
	}

	for _, filename := range flag.Args() {
		file, err := os.Open(filename)
		if err != nil {
			exitOnError(err)
		}
		h.RunCommands(file, os.Stdout, false)
		file.Close()
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go handleInterrupt(h, c)

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	h.RunCommands(os.Stdin, os.Stdout, interactive)
}

func handleInterrupt(h *host.Host, c chan os.Signal) {
	for {
		<-c
		h.Break()
	}
}

func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	os.Exit(1)
}

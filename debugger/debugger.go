// Package debugger is a line-based REPL driving a *mos6502.CPU, grounded on
// the reference command set (peek/write/jump/step/run) but renamed to the
// fuller command surface a standalone tool needs: step, continue, regs,
// break, and mem.
package debugger

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/n-ulricksen/fantasyconsole/mos6502"
	"github.com/n-ulricksen/fantasyconsole/numlit"
)

// Debugger wraps a CPU with a breakpoint set and a command loop.
type Debugger struct {
	cpu         *mos6502.CPU
	breakpoints map[uint16]bool
	out         io.Writer
}

// New returns a Debugger attached to cpu, printing prompts and command
// output to out.
func New(cpu *mos6502.CPU, out io.Writer) *Debugger {
	return &Debugger{cpu: cpu, breakpoints: make(map[uint16]bool), out: out}
}

// AddBreakpoint registers a PC value the run loop should stop at.
func (d *Debugger) AddBreakpoint(addr uint16) {
	d.breakpoints[addr] = true
}

// Run reads and executes commands from in until a "quit" command or the end
// of the input stream, then returns control to the caller. "continue" runs
// the CPU until a registered breakpoint is hit and then prompts again.
func (d *Debugger) Run(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(d.out, "$%04X>> ", d.cpu.PC)
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "step", "s":
			cycles := d.cpu.Step()
			fmt.Fprintf(d.out, "stepped %d cycles, PC=$%04X\n", cycles, d.cpu.PC)
		case "continue", "c", "r":
			d.runUntilBreakpoint()
		case "regs":
			d.printRegs()
		case "break", "b":
			if len(fields) < 2 {
				fmt.Fprintln(d.out, "syntax: break <addr>")
				continue
			}
			addr, err := numlit.ParseUint16(fields[1])
			if err != nil {
				fmt.Fprintln(d.out, "error:", err)
				continue
			}
			d.AddBreakpoint(addr)
		case "mem", "m":
			if len(fields) < 3 {
				fmt.Fprintln(d.out, "syntax: mem <addr> <len>")
				continue
			}
			d.dumpMem(fields[1], fields[2])
		case "q", "quit":
			return
		default:
			fmt.Fprintln(d.out, "unknown command", fields[0])
		}
	}
}

func (d *Debugger) runUntilBreakpoint() {
	for {
		d.cpu.Step()
		if d.breakpoints[d.cpu.PC] {
			fmt.Fprintf(d.out, "hit breakpoint at $%04X\n", d.cpu.PC)
			return
		}
	}
}

func (d *Debugger) printRegs() {
	c := d.cpu
	fmt.Fprintf(d.out, "A=$%02X X=$%02X Y=$%02X SP=$%02X PC=$%04X P=$%02X\n",
		c.A, c.X, c.Y, c.SP, c.PC, c.P)
}

func (d *Debugger) dumpMem(addrStr, lenStr string) {
	addr, err := numlit.ParseUint16(addrStr)
	if err != nil {
		fmt.Fprintln(d.out, "error:", err)
		return
	}
	length, err := numlit.Parse(lenStr)
	if err != nil {
		fmt.Fprintln(d.out, "error:", err)
		return
	}

	fmt.Fprintf(d.out, "$%04X: ", addr)
	for i := uint64(0); i < length; i++ {
		fmt.Fprintf(d.out, "%02X ", d.cpu.PeekByte(addr+uint16(i)))
	}
	fmt.Fprintln(d.out)
}

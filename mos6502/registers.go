// Package mos6502 implements a cycle-counting MOS 6502 interpreter: the full
// documented instruction set, all documented addressing modes, page-crossing
// cycle penalties, flag semantics, IRQ/NMI/RESET vectors, an optional
// BRK-as-software-breakpoint mode, and a disassembly side-channel.
//
// The interpreter is deliberately single-threaded and cooperative: Step runs
// to completion without yielding, and every bus access happens synchronously
// in program order.
package mos6502

import "github.com/n-ulricksen/fantasyconsole/bus"

// Status flag bit positions, fixed by the hardware.
const (
	FlagC uint8 = 0x01 // Carry
	FlagZ uint8 = 0x02 // Zero
	FlagI uint8 = 0x04 // Interrupt disable
	FlagD uint8 = 0x08 // Decimal mode (unused; binary arithmetic only)
	FlagB uint8 = 0x10 // Break command
	FlagU uint8 = 0x20 // Unused, always set
	FlagV uint8 = 0x40 // Overflow
	FlagN uint8 = 0x80 // Negative
)

// Interrupt lines accepted by Raise.
const (
	LineIRQ   = 4  // maskable IRQ/BRK; honored only if I=0 and B=0
	LineNMI   = 6  // always honored
	LineReset = 40 // honored only if I=0 (a deliberate hardware-inaccurate quirk)
)

const (
	stackPage   uint16 = 0x0100
	vectorNMI   uint16 = 0xFFFA
	vectorReset uint16 = 0xFFFC
	vectorIRQ   uint16 = 0xFFFE
)

// Slave is the bus a CPU attaches to: a (uint16,uint8) address space, in
// practice always a *decoder.Decoder composing RAM/ROM/peripherals.
type Slave = bus.Slave[uint16, uint8]

// CPU is a MOS 6502 register file plus the interpreter driving it.
type CPU struct {
	A, X, Y uint8
	PC      uint16
	SP      uint8
	P       uint8

	// Ticks is an unbounded counter of elapsed machine cycles.
	Ticks uint64

	// Debug switches on the disassembly side-channel: each Step appends a
	// formatted trace line to Disasm.
	Debug  bool
	Disasm string

	// CodeBreakpointMode, when set, turns BRK into a software breakpoint
	// instead of running the interrupt sequence: it latches
	// breakpointPending for an external debugger to observe and clear via
	// TakeBreakpointPending.
	CodeBreakpointMode bool
	breakpointPending  bool

	bus Slave

	table [256]opcode

	// Scratch fields populated by the current instruction's fetch, read by
	// its execute. Conventionally named after the reference implementation
	// this core is modeled on.
	addr        uint16
	value       uint8
	accFetch    bool // fetch operand is the accumulator, not a bus address
	pageCross   bool // addressing mode crossed a page boundary this fetch
	debugPC     uint16
	curMnemonic string
}

// NewCPU returns a CPU attached to bus b, with all registers zeroed except
// SP=0xFF and P=U|I. The caller sets PC explicitly (there is no implicit
// RESET on construction); the surrounding program either writes PC directly
// or raises RESET to load the vector.
func NewCPU(b Slave) *CPU {
	cpu := &CPU{
		SP:  0xFF,
		P:   FlagU | FlagI,
		bus: b,
	}
	cpu.table = newOpcodeTable()
	return cpu
}

func (cpu *CPU) getFlag(f uint8) bool { return cpu.P&f != 0 }

func (cpu *CPU) setFlag(f uint8, set bool) {
	if set {
		cpu.P |= f
	} else {
		cpu.P &^= f
	}
}

func (cpu *CPU) read(addr uint16) uint8 { return cpu.bus.Read(addr) }

// PeekByte exposes a bus read to external inspectors (the debugger
// collaborator) without otherwise touching CPU state.
func (cpu *CPU) PeekByte(addr uint16) uint8 { return cpu.bus.Read(addr) }
func (cpu *CPU) write(addr uint16, v uint8) { cpu.bus.Write(addr, v) }

func (cpu *CPU) readWord(addr uint16) uint16 {
	lo := cpu.read(addr)
	hi := cpu.read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// readWordZeroPageWrap reads a little-endian 16-bit pointer out of page zero,
// wrapping the high-byte fetch back to $00 instead of crossing into page one.
// This is the faithful hardware behavior for (indirect,X): see the open
// question recorded in DESIGN.md.
func (cpu *CPU) readWordZeroPageWrap(addr uint8) uint16 {
	lo := cpu.read(uint16(addr))
	hi := cpu.read(uint16(addr + 1))
	return uint16(hi)<<8 | uint16(lo)
}

func (cpu *CPU) stackPush(v uint8) {
	cpu.write(stackPage|uint16(cpu.SP), v)
	cpu.SP--
}

func (cpu *CPU) stackPop() uint8 {
	cpu.SP++
	return cpu.read(stackPage | uint16(cpu.SP))
}

func (cpu *CPU) pushWord(v uint16) {
	cpu.stackPush(uint8(v >> 8))
	cpu.stackPush(uint8(v))
}

func (cpu *CPU) popWord() uint16 {
	lo := cpu.stackPop()
	hi := cpu.stackPop()
	return uint16(hi)<<8 | uint16(lo)
}

// TakeBreakpointPending returns whether a software breakpoint (BRK under
// CodeBreakpointMode) is pending, and atomically clears the flag.
func (cpu *CPU) TakeBreakpointPending() bool {
	pending := cpu.breakpointPending
	cpu.breakpointPending = false
	return pending
}

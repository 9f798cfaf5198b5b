package mos6502

import "fmt"

// Status-flag set/clear, no-op, and the invalid-opcode abort.

func opCLC(cpu *CPU) int { cpu.setFlag(FlagC, false); return 0 }
func opCLD(cpu *CPU) int { cpu.setFlag(FlagD, false); return 0 }
func opCLI(cpu *CPU) int { cpu.setFlag(FlagI, false); return 0 }
func opCLV(cpu *CPU) int { cpu.setFlag(FlagV, false); return 0 }
func opSEC(cpu *CPU) int { cpu.setFlag(FlagC, true); return 0 }
func opSED(cpu *CPU) int { cpu.setFlag(FlagD, true); return 0 }
func opSEI(cpu *CPU) int { cpu.setFlag(FlagI, true); return 0 }

func opNOP(cpu *CPU) int { return 0 }

// invalidFetch aborts the program: this core only implements the documented
// opcode set. Anything else is a programmer bug, not a recoverable runtime
// condition.
func invalidFetch(cpu *CPU) {
	opcode := cpu.read(cpu.debugPC)
	panic(fmt.Sprintf("mos6502: invalid opcode $%02X at $%04X", opcode, cpu.debugPC))
}

func nopExecute(cpu *CPU) int { return 0 }

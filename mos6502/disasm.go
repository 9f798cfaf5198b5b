package mos6502

import "fmt"

// disassembleLast formats a trace line for the instruction Step just ran,
// in the style of cpuDisassembler.go's per-addressing-mode operand syntax,
// but emitted after execution (not as a static code scan) so it can report
// the actual effective address and the register file left behind.
func (cpu *CPU) disassembleLast() string {
	opcode := cpu.read(cpu.debugPC)

	operand := "{IMP}"
	switch {
	case cpu.accFetch:
		operand = "A {ACC}"
	case cpu.PC-cpu.debugPC == 1:
		// no operand byte was consumed (implied, or accumulator already handled)
	default:
		operand = fmt.Sprintf("$%04X {ADDR}", cpu.addr)
	}

	flags := ""
	for _, f := range []struct {
		bit  uint8
		name string
	}{
		{FlagN, "N"}, {FlagV, "V"}, {FlagZ, "Z"}, {FlagC, "C"},
	} {
		if cpu.getFlag(f.bit) {
			flags += f.name
		} else {
			flags += "-"
		}
	}

	return fmt.Sprintf("$%04X: %s %s [A=$%02X X=$%02X Y=$%02X SP=$%02X |$%02X| %s]",
		cpu.debugPC, cpu.curMnemonic, operand, cpu.A, cpu.X, cpu.Y, cpu.SP, opcode, flags)
}

package mos6502

// Step executes exactly one instruction: fetch the opcode byte at PC, run
// its addressing-mode fetch, run its execute, and account for cycles. It
// returns the number of cycles the instruction consumed.
func (cpu *CPU) Step() int {
	cpu.debugPC = cpu.PC
	cpu.accFetch = false
	cpu.pageCross = false

	code := cpu.read(cpu.PC)
	cpu.PC++

	entry := cpu.table[code]
	cpu.curMnemonic = entry.name

	entry.fetch(cpu)
	extra := entry.execute(cpu)

	cycles := entry.cycles + extra
	if cpu.pageCross && entry.pageCrossPenalty {
		cycles++
	}
	cpu.Ticks += uint64(cycles)

	if cpu.Debug {
		cpu.Disasm += cpu.disassembleLast() + "\n"
	}

	return cycles
}

// Raise delivers an interrupt line. IRQ is masked by the I flag and by a
// live BRK (B set); NMI is never masked; RESET is honored only if I=0, a
// deliberate departure from real 6502 hardware (which always honors RESET)
// kept because the input spec pins this exact gating behavior. Unrecognized
// lines are logged and dropped.
func (cpu *CPU) Raise(line int) {
	switch line {
	case LineNMI:
		cpu.serviceInterrupt(vectorNMI, false)
	case LineIRQ:
		if cpu.getFlag(FlagI) || cpu.getFlag(FlagB) {
			return
		}
		cpu.serviceInterrupt(vectorIRQ, true)
	case LineReset:
		if cpu.getFlag(FlagI) {
			return
		}
		cpu.A, cpu.X, cpu.Y = 0, 0, 0
		cpu.SP = 0xFF
		cpu.P = FlagU | FlagI
		cpu.PC = cpu.readWord(vectorReset)
	default:
		logger.Printf("mos6502: ignoring unrecognized interrupt line %d", line)
	}
}

// serviceInterrupt runs the shared IRQ/NMI sequence: push PC, push P
// unmodified, load the vector, then set B on the live register only after
// the push completes — so the byte that went on the stack reflects the
// pre-interrupt state.
func (cpu *CPU) serviceInterrupt(vector uint16, setB bool) {
	cpu.pushWord(cpu.PC)
	cpu.stackPush(cpu.P)
	cpu.setFlag(FlagI, true)
	cpu.PC = cpu.readWord(vector)
	if setB {
		cpu.setFlag(FlagB, true)
	}
}

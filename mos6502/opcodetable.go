package mos6502

// opcode pairs an addressing-mode fetch with a mnemonic's execute, plus the
// base cycle cost and a disassembly name. The fetch and execute are kept
// separate so one execute function implements a mnemonic once and is reused
// across every addressing-mode variant; what varies between "LDA #imm" and
// "LDA $zp" is only the fetch.
type opcode struct {
	name    string
	fetch   func(*CPU)
	execute func(*CPU) int
	cycles  int

	// pageCrossPenalty gates the addressing mode's proposed +1 cycle: the
	// mode (amABX/amABY/amIZY) sets cpu.pageCross whenever indexing crosses
	// a page, but only read-style instructions actually pay for it on real
	// hardware. Stores and read-modify-write opcodes already register their
	// worst-case (always-crossing) cycle count as the fixed base above, so
	// honoring the mode's proposed extra cycle on top of that would
	// double-count. This mirrors the teacher's own
	// extraCycles1 & extraCycles2 AND-gate: the mode proposes, the
	// instruction opts in.
	pageCrossPenalty bool
}

// newOpcodeTable builds the 256-entry dispatch table. Entries never
// registered below default to the invalid-opcode abort: this core only
// implements the documented instruction set.
func newOpcodeTable() [256]opcode {
	var t [256]opcode
	for i := range t {
		t[i] = opcode{name: "???", fetch: invalidFetch, execute: nopExecute, cycles: 0}
	}

	reg := func(code byte, name string, fetch func(*CPU), exec func(*CPU) int, cycles int) {
		t[code] = opcode{name: name, fetch: fetch, execute: exec, cycles: cycles}
	}

	// regX is reg plus pageCrossPenalty=true: used only for read-style
	// opcodes on indexed/indirect-indexed addressing modes, where the mode's
	// proposed extra cycle on a page cross is genuinely owed. Stores and
	// read-modify-write opcodes on the same modes stay on plain reg with
	// their fixed worst-case base cost instead.
	regX := func(code byte, name string, fetch func(*CPU), exec func(*CPU) int, cycles int) {
		reg(code, name, fetch, exec, cycles)
		e := t[code]
		e.pageCrossPenalty = true
		t[code] = e
	}

	reg(0x69, "ADC", amIMM, opADC, 2)
	reg(0x65, "ADC", amZP0, opADC, 3)
	reg(0x75, "ADC", amZPX, opADC, 4)
	reg(0x6D, "ADC", amABS, opADC, 4)
	regX(0x7D, "ADC", amABX, opADC, 4)
	regX(0x79, "ADC", amABY, opADC, 4)
	reg(0x61, "ADC", amIZX, opADC, 6)
	regX(0x71, "ADC", amIZY, opADC, 5)

	reg(0x29, "AND", amIMM, opAND, 2)
	reg(0x25, "AND", amZP0, opAND, 3)
	reg(0x35, "AND", amZPX, opAND, 4)
	reg(0x2D, "AND", amABS, opAND, 4)
	regX(0x3D, "AND", amABX, opAND, 4)
	regX(0x39, "AND", amABY, opAND, 4)
	reg(0x21, "AND", amIZX, opAND, 6)
	regX(0x31, "AND", amIZY, opAND, 5)

	reg(0x0A, "ASL", amACC, opASL, 2)
	reg(0x06, "ASL", amZP0, opASL, 5)
	reg(0x16, "ASL", amZPX, opASL, 6)
	reg(0x0E, "ASL", amABS, opASL, 6)
	reg(0x1E, "ASL", amABX, opASL, 7)

	reg(0x90, "BCC", amREL, opBCC, 2)
	reg(0xB0, "BCS", amREL, opBCS, 2)
	reg(0xF0, "BEQ", amREL, opBEQ, 2)

	reg(0x24, "BIT", amZP0, opBIT, 3)
	reg(0x2C, "BIT", amABS, opBIT, 4)

	reg(0x30, "BMI", amREL, opBMI, 2)
	reg(0xD0, "BNE", amREL, opBNE, 2)
	reg(0x10, "BPL", amREL, opBPL, 2)

	reg(0x00, "BRK", amIMM, opBRK, 7)

	reg(0x50, "BVC", amREL, opBVC, 2)
	reg(0x70, "BVS", amREL, opBVS, 2)

	reg(0x18, "CLC", amIMP, opCLC, 2)
	reg(0xD8, "CLD", amIMP, opCLD, 2)
	reg(0x58, "CLI", amIMP, opCLI, 2)
	reg(0xB8, "CLV", amIMP, opCLV, 2)

	reg(0xC9, "CMP", amIMM, opCMP, 2)
	reg(0xC5, "CMP", amZP0, opCMP, 3)
	reg(0xD5, "CMP", amZPX, opCMP, 4)
	reg(0xCD, "CMP", amABS, opCMP, 4)
	regX(0xDD, "CMP", amABX, opCMP, 4)
	regX(0xD9, "CMP", amABY, opCMP, 4)
	reg(0xC1, "CMP", amIZX, opCMP, 6)
	regX(0xD1, "CMP", amIZY, opCMP, 5)

	reg(0xE0, "CPX", amIMM, opCPX, 2)
	reg(0xE4, "CPX", amZP0, opCPX, 3)
	reg(0xEC, "CPX", amABS, opCPX, 4)

	reg(0xC0, "CPY", amIMM, opCPY, 2)
	reg(0xC4, "CPY", amZP0, opCPY, 3)
	reg(0xCC, "CPY", amABS, opCPY, 4)

	reg(0xC6, "DEC", amZP0, opDEC, 5)
	reg(0xD6, "DEC", amZPX, opDEC, 6)
	reg(0xCE, "DEC", amABS, opDEC, 6)
	reg(0xDE, "DEC", amABX, opDEC, 7)

	reg(0xCA, "DEX", amIMP, opDEX, 2)
	reg(0x88, "DEY", amIMP, opDEY, 2)

	reg(0x49, "EOR", amIMM, opEOR, 2)
	reg(0x45, "EOR", amZP0, opEOR, 3)
	reg(0x55, "EOR", amZPX, opEOR, 4)
	reg(0x4D, "EOR", amABS, opEOR, 4)
	regX(0x5D, "EOR", amABX, opEOR, 4)
	regX(0x59, "EOR", amABY, opEOR, 4)
	reg(0x41, "EOR", amIZX, opEOR, 6)
	regX(0x51, "EOR", amIZY, opEOR, 5)

	reg(0xE6, "INC", amZP0, opINC, 5)
	reg(0xF6, "INC", amZPX, opINC, 6)
	reg(0xEE, "INC", amABS, opINC, 6)
	reg(0xFE, "INC", amABX, opINC, 7)

	reg(0xE8, "INX", amIMP, opINX, 2)
	reg(0xC8, "INY", amIMP, opINY, 2)

	reg(0x4C, "JMP", amABS, opJMP, 3)
	reg(0x6C, "JMP", amIND, opJMP, 5)

	reg(0x20, "JSR", amABS, opJSR, 6)

	reg(0xA9, "LDA", amIMM, opLDA, 2)
	reg(0xA5, "LDA", amZP0, opLDA, 3)
	reg(0xB5, "LDA", amZPX, opLDA, 4)
	reg(0xAD, "LDA", amABS, opLDA, 4)
	regX(0xBD, "LDA", amABX, opLDA, 4)
	regX(0xB9, "LDA", amABY, opLDA, 4)
	reg(0xA1, "LDA", amIZX, opLDA, 6)
	regX(0xB1, "LDA", amIZY, opLDA, 5)

	reg(0xA2, "LDX", amIMM, opLDX, 2)
	reg(0xA6, "LDX", amZP0, opLDX, 3)
	reg(0xB6, "LDX", amZPY, opLDX, 4)
	reg(0xAE, "LDX", amABS, opLDX, 4)
	regX(0xBE, "LDX", amABY, opLDX, 4)

	reg(0xA0, "LDY", amIMM, opLDY, 2)
	reg(0xA4, "LDY", amZP0, opLDY, 3)
	reg(0xB4, "LDY", amZPX, opLDY, 4)
	reg(0xAC, "LDY", amABS, opLDY, 4)
	regX(0xBC, "LDY", amABX, opLDY, 4)

	reg(0x4A, "LSR", amACC, opLSR, 2)
	reg(0x46, "LSR", amZP0, opLSR, 5)
	reg(0x56, "LSR", amZPX, opLSR, 6)
	reg(0x4E, "LSR", amABS, opLSR, 6)
	reg(0x5E, "LSR", amABX, opLSR, 7)

	reg(0xEA, "NOP", amIMP, opNOP, 2)

	reg(0x09, "ORA", amIMM, opORA, 2)
	reg(0x05, "ORA", amZP0, opORA, 3)
	reg(0x15, "ORA", amZPX, opORA, 4)
	reg(0x0D, "ORA", amABS, opORA, 4)
	regX(0x1D, "ORA", amABX, opORA, 4)
	regX(0x19, "ORA", amABY, opORA, 4)
	reg(0x01, "ORA", amIZX, opORA, 6)
	regX(0x11, "ORA", amIZY, opORA, 5)

	reg(0x48, "PHA", amIMP, opPHA, 3)
	reg(0x08, "PHP", amIMP, opPHP, 3)
	reg(0x68, "PLA", amIMP, opPLA, 4)
	reg(0x28, "PLP", amIMP, opPLP, 4)

	reg(0x2A, "ROL", amACC, opROL, 2)
	reg(0x26, "ROL", amZP0, opROL, 5)
	reg(0x36, "ROL", amZPX, opROL, 6)
	reg(0x2E, "ROL", amABS, opROL, 6)
	reg(0x3E, "ROL", amABX, opROL, 7)

	reg(0x6A, "ROR", amACC, opROR, 2)
	reg(0x66, "ROR", amZP0, opROR, 5)
	reg(0x76, "ROR", amZPX, opROR, 6)
	reg(0x6E, "ROR", amABS, opROR, 6)
	reg(0x7E, "ROR", amABX, opROR, 7)

	reg(0x40, "RTI", amIMP, opRTI, 6)
	reg(0x60, "RTS", amIMP, opRTS, 6)

	reg(0xE9, "SBC", amIMM, opSBC, 2)
	reg(0xE5, "SBC", amZP0, opSBC, 3)
	reg(0xF5, "SBC", amZPX, opSBC, 4)
	reg(0xED, "SBC", amABS, opSBC, 4)
	regX(0xFD, "SBC", amABX, opSBC, 4)
	regX(0xF9, "SBC", amABY, opSBC, 4)
	reg(0xE1, "SBC", amIZX, opSBC, 6)
	regX(0xF1, "SBC", amIZY, opSBC, 5)

	reg(0x38, "SEC", amIMP, opSEC, 2)
	reg(0xF8, "SED", amIMP, opSED, 2)
	reg(0x78, "SEI", amIMP, opSEI, 2)

	reg(0x85, "STA", amZP0, opSTA, 3)
	reg(0x95, "STA", amZPX, opSTA, 4)
	reg(0x8D, "STA", amABS, opSTA, 4)
	reg(0x9D, "STA", amABX, opSTA, 5)
	reg(0x99, "STA", amABY, opSTA, 5)
	reg(0x81, "STA", amIZX, opSTA, 6)
	reg(0x91, "STA", amIZY, opSTA, 6)

	reg(0x86, "STX", amZP0, opSTX, 3)
	reg(0x96, "STX", amZPY, opSTX, 4)
	reg(0x8E, "STX", amABS, opSTX, 4)

	reg(0x84, "STY", amZP0, opSTY, 3)
	reg(0x94, "STY", amZPX, opSTY, 4)
	reg(0x8C, "STY", amABS, opSTY, 4)

	reg(0xAA, "TAX", amIMP, opTAX, 2)
	reg(0xA8, "TAY", amIMP, opTAY, 2)
	reg(0xBA, "TSX", amIMP, opTSX, 2)
	reg(0x8A, "TXA", amIMP, opTXA, 2)
	reg(0x9A, "TXS", amIMP, opTXS, 2)
	reg(0x98, "TYA", amIMP, opTYA, 2)

	return t
}

package mos6502

// Arithmetic and compare/increment mnemonics. Decimal mode is not supported;
// ADC/SBC are always binary.

func opADC(cpu *CPU) int {
	m := cpu.fetchValue()
	carryIn := uint16(0)
	if cpu.getFlag(FlagC) {
		carryIn = 1
	}

	result := uint16(cpu.A) + uint16(m) + carryIn
	r := uint8(result)

	cpu.setFlag(FlagC, result > 0xFF)
	cpu.setFlag(FlagZ, r == 0)
	cpu.setFlag(FlagN, r&0x80 != 0)
	cpu.setFlag(FlagV, (cpu.A^r)&(m^r)&0x80 != 0)

	cpu.A = r
	return 0
}

func opSBC(cpu *CPU) int {
	m := cpu.fetchValue()
	carryIn := uint16(0)
	if cpu.getFlag(FlagC) {
		carryIn = 1
	}

	inv := m ^ 0xFF
	result := uint16(cpu.A) + uint16(inv) + carryIn
	r := uint8(result)

	cpu.setFlag(FlagC, result > 0xFF)
	cpu.setFlag(FlagZ, r == 0)
	cpu.setFlag(FlagN, r&0x80 != 0)
	cpu.setFlag(FlagV, (cpu.A^r)&(inv^r)&0x80 != 0)

	cpu.A = r
	return 0
}

// compare implements the shared CMP/CPX/CPY semantics: N is set from reg<M
// directly rather than from bit 7 of (reg-M). The two differ when reg and M
// are far apart: reg-M >= 0x80 or M-reg >= 0x81 (e.g. reg=0x01, M=0x90).
func compare(cpu *CPU, reg uint8) {
	m := cpu.fetchValue()
	cpu.setFlag(FlagC, reg >= m)
	cpu.setFlag(FlagZ, reg == m)
	cpu.setFlag(FlagN, reg < m)
}

func opCMP(cpu *CPU) int { compare(cpu, cpu.A); return 0 }
func opCPX(cpu *CPU) int { compare(cpu, cpu.X); return 0 }
func opCPY(cpu *CPU) int { compare(cpu, cpu.Y); return 0 }

func opINC(cpu *CPU) int {
	v := cpu.fetchValue() + 1
	cpu.writeResult(v)
	cpu.setFlag(FlagZ, v == 0)
	cpu.setFlag(FlagN, v&0x80 != 0)
	return 0
}

func opDEC(cpu *CPU) int {
	v := cpu.fetchValue() - 1
	cpu.writeResult(v)
	cpu.setFlag(FlagZ, v == 0)
	cpu.setFlag(FlagN, v&0x80 != 0)
	return 0
}

func opINX(cpu *CPU) int {
	cpu.X++
	cpu.setFlag(FlagZ, cpu.X == 0)
	cpu.setFlag(FlagN, cpu.X&0x80 != 0)
	return 0
}

func opINY(cpu *CPU) int {
	cpu.Y++
	cpu.setFlag(FlagZ, cpu.Y == 0)
	cpu.setFlag(FlagN, cpu.Y&0x80 != 0)
	return 0
}

func opDEX(cpu *CPU) int {
	cpu.X--
	cpu.setFlag(FlagZ, cpu.X == 0)
	cpu.setFlag(FlagN, cpu.X&0x80 != 0)
	return 0
}

func opDEY(cpu *CPU) int {
	cpu.Y--
	cpu.setFlag(FlagZ, cpu.Y == 0)
	cpu.setFlag(FlagN, cpu.Y&0x80 != 0)
	return 0
}

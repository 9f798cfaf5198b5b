package mos6502

// Loads, stores, register transfers, and stack transfers.

func opLDA(cpu *CPU) int {
	cpu.A = cpu.fetchValue()
	cpu.setFlag(FlagZ, cpu.A == 0)
	cpu.setFlag(FlagN, cpu.A&0x80 != 0)
	return 0
}

func opLDX(cpu *CPU) int {
	cpu.X = cpu.fetchValue()
	cpu.setFlag(FlagZ, cpu.X == 0)
	cpu.setFlag(FlagN, cpu.X&0x80 != 0)
	return 0
}

func opLDY(cpu *CPU) int {
	cpu.Y = cpu.fetchValue()
	cpu.setFlag(FlagZ, cpu.Y == 0)
	cpu.setFlag(FlagN, cpu.Y&0x80 != 0)
	return 0
}

func opSTA(cpu *CPU) int { cpu.write(cpu.addr, cpu.A); return 0 }
func opSTX(cpu *CPU) int { cpu.write(cpu.addr, cpu.X); return 0 }
func opSTY(cpu *CPU) int { cpu.write(cpu.addr, cpu.Y); return 0 }

func opTAX(cpu *CPU) int {
	cpu.X = cpu.A
	cpu.setFlag(FlagZ, cpu.X == 0)
	cpu.setFlag(FlagN, cpu.X&0x80 != 0)
	return 0
}

func opTAY(cpu *CPU) int {
	cpu.Y = cpu.A
	cpu.setFlag(FlagZ, cpu.Y == 0)
	cpu.setFlag(FlagN, cpu.Y&0x80 != 0)
	return 0
}

func opTXA(cpu *CPU) int {
	cpu.A = cpu.X
	cpu.setFlag(FlagZ, cpu.A == 0)
	cpu.setFlag(FlagN, cpu.A&0x80 != 0)
	return 0
}

func opTYA(cpu *CPU) int {
	cpu.A = cpu.Y
	cpu.setFlag(FlagZ, cpu.A == 0)
	cpu.setFlag(FlagN, cpu.A&0x80 != 0)
	return 0
}

func opTSX(cpu *CPU) int {
	cpu.X = cpu.SP
	cpu.setFlag(FlagZ, cpu.X == 0)
	cpu.setFlag(FlagN, cpu.X&0x80 != 0)
	return 0
}

func opTXS(cpu *CPU) int {
	cpu.SP = cpu.X
	return 0
}

func opPHA(cpu *CPU) int { cpu.stackPush(cpu.A); return 0 }

func opPHP(cpu *CPU) int { cpu.stackPush(cpu.P); return 0 }

func opPLA(cpu *CPU) int {
	cpu.A = cpu.stackPop()
	cpu.setFlag(FlagZ, cpu.A == 0)
	cpu.setFlag(FlagN, cpu.A&0x80 != 0)
	return 0
}

func opPLP(cpu *CPU) int {
	cpu.P = cpu.stackPop()
	cpu.setFlag(FlagU, true)
	return 0
}

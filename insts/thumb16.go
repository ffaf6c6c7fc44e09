package insts

// 16-bit Thumb field packers.
//
// Each packer takes the instruction's fixed bits (operand fields zero) and ORs
// the operands into place. Bit positions below count from bit 0 of the halfword.

// lowRegs returns a RegisterOutOfRange opcode for the first register that does
// not fit a 3-bit field.
func lowRegs(regs ...Register) (Opcode, bool) {
	for _, r := range regs {
		if !r.IsLow() {
			return regOutOfRange(r), false
		}
	}
	return Opcode{}, true
}

// anyRegs returns a RegisterOutOfRange opcode for the first register outside r0-r15.
func anyRegs(regs ...Register) (Opcode, bool) {
	for _, r := range regs {
		if !r.Valid() {
			return regOutOfRange(r), false
		}
	}
	return Opcode{}, true
}

// Thumb16NoOperand encodes an instruction with no operands (NOP, WFI, ...).
func Thumb16NoOperand(base uint16) Opcode {
	return thumb16(base)
}

// Thumb16Imm encodes a bare immediate of width 7, 8 or 11 bits into bits [width-1:0].
// The immediate is masked to the field width.
func Thumb16Imm(base uint16, width uint, imm uint16) Opcode {
	switch width {
	case 7, 8, 11:
	default:
		return fail(EncodeError, "no %d-bit immediate form", width)
	}

	mask := uint16(1)<<width - 1
	return thumb16(base | imm&mask)
}

// Thumb16RegImm8 encodes a low register and an 8-bit immediate.
// Format: base | Rd [10:8] | imm8 [7:0]
func Thumb16RegImm8(base uint16, rd Register, imm8 uint8) Opcode {
	if op, ok := lowRegs(rd); !ok {
		return op
	}

	inst := base
	inst |= uint16(rd&regLowMask) << 8
	inst |= uint16(imm8)
	return thumb16(inst)
}

// Thumb16RegImm5 encodes two low registers and a 5-bit immediate.
// Format: base | imm5 [10:6] | Rm [5:3] | Rd [2:0]
func Thumb16RegImm5(base uint16, rd, rm Register, imm5 uint8) Opcode {
	if op, ok := lowRegs(rd, rm); !ok {
		return op
	}

	inst := base
	inst |= uint16(imm5&0x1F) << 6
	inst |= uint16(rm&regLowMask) << 3
	inst |= uint16(rd & regLowMask)
	return thumb16(inst)
}

// Thumb16LowImm5 encodes a low register and a 5-bit immediate, as used by CBZ/CBNZ.
// Format: base | imm5 [7:3] | Rn [2:0]
func Thumb16LowImm5(base uint16, rn Register, imm5 uint8) Opcode {
	if op, ok := lowRegs(rn); !ok {
		return op
	}

	inst := base
	inst |= uint16(imm5&0x1F) << 3
	inst |= uint16(rn & regLowMask)
	return thumb16(inst)
}

// Thumb16TwoLow encodes two low registers.
// Format: base | Rm [5:3] | Rd [2:0]
func Thumb16TwoLow(base uint16, rd, rm Register) Opcode {
	if op, ok := lowRegs(rd, rm); !ok {
		return op
	}

	inst := base
	inst |= uint16(rm&regLowMask) << 3
	inst |= uint16(rd & regLowMask)
	return thumb16(inst)
}

// Thumb16ThreeLow encodes three low registers.
// Format: base | Rm [8:6] | Rn [5:3] | Rd [2:0]
func Thumb16ThreeLow(base uint16, rd, rn, rm Register) Opcode {
	if op, ok := lowRegs(rd, rn, rm); !ok {
		return op
	}

	inst := base
	inst |= uint16(rm&regLowMask) << 6
	inst |= uint16(rn&regLowMask) << 3
	inst |= uint16(rd & regLowMask)
	return thumb16(inst)
}

// Thumb16TwoLowImm3 encodes two low registers and a 3-bit immediate.
// Format: base | imm3 [8:6] | Rm [5:3] | Rd [2:0]
func Thumb16TwoLowImm3(base uint16, rd, rm Register, imm3 uint8) Opcode {
	if op, ok := lowRegs(rd, rm); !ok {
		return op
	}

	inst := base
	inst |= uint16(imm3&0x7) << 6
	inst |= uint16(rm&regLowMask) << 3
	inst |= uint16(rd & regLowMask)
	return thumb16(inst)
}

// Thumb16OneAny encodes a single register r0-r15 (BX, BLX).
// Format: base | Rm [6:3]
func Thumb16OneAny(base uint16, rm Register) Opcode {
	if op, ok := anyRegs(rm); !ok {
		return op
	}
	return thumb16(base | uint16(rm&regMask)<<3)
}

// Thumb16TwoAny encodes two registers r0-r15. The first register's high bit is
// displaced to bit 7.
// Format: base | R1[3] [7] | R2 [6:3] | R1[2:0] [2:0]
func Thumb16TwoAny(base uint16, r1, r2 Register) Opcode {
	if op, ok := anyRegs(r1, r2); !ok {
		return op
	}

	inst := base
	inst |= uint16(r2&regMask) << 3
	inst |= uint16(r1 & regLowMask)
	if r1&regHighBit != 0 {
		inst |= highRegFlag
	}
	return thumb16(inst)
}

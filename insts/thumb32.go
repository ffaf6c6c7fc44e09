package insts

// 32-bit Thumb-2 field packers.
//
// Base opcodes are the full 32-bit instruction with operand fields zero; bit
// positions below count from bit 0 of that word. The result is split into
// halfwords, upper halfword first.

const (
	imm12Max  = 0xFFF
	imm5Max   = 0x1F
	setFlags  = 1 << 20
	shiftBits = 4
)

func sfBit(sf bool) uint32 {
	if sf {
		return setFlags
	}
	return 0
}

// splitImm12 spreads imm12 over i [26], imm3 [14:12] and imm8 [7:0].
func splitImm12(imm12 uint16) uint32 {
	i := uint32(imm12>>11) & 0x1
	imm3 := uint32(imm12>>8) & 0x7
	imm8 := uint32(imm12) & 0xFF
	return i<<26 | imm3<<12 | imm8
}

// splitImm5 spreads imm5 over imm3 [14:12] and imm2 [7:6].
func splitImm5(imm5 uint8) uint32 {
	imm2 := uint32(imm5) & 0x3
	imm3 := uint32(imm5>>2) & 0x7
	return imm3<<12 | imm2<<6
}

func checkImm12(imm12 uint16) (Opcode, bool) {
	if imm12 > imm12Max {
		return fail(EncodeError, "imm12 0x%X does not fit 12 bits", imm12), false
	}
	return Opcode{}, true
}

func checkImm5(imm5 uint8) (Opcode, bool) {
	if imm5 > imm5Max {
		return fail(EncodeError, "imm5 %d does not fit 5 bits", imm5), false
	}
	return Opcode{}, true
}

func checkShift(shift ShiftType, imm5 uint8) (Opcode, bool) {
	if op, ok := checkImm5(imm5); !ok {
		return op, false
	}
	if err := ValidateShift(shift, imm5); err != nil {
		return fail(EncodeError, "%v", err), false
	}
	return Opcode{}, true
}

// Thumb32NoOperand encodes an instruction with no operands (DSB, DMB, ISB, CLREX).
func Thumb32NoOperand(base uint32) Opcode {
	return thumb32(base)
}

// Thumb32OneRegImm12 encodes one register and a split 12-bit immediate.
// Format: base | i [26] | imm3 [14:12] | Rd [11:8] | imm8 [7:0]
func Thumb32OneRegImm12(base uint32, rd Register, imm12 uint16) Opcode {
	if op, ok := anyRegs(rd); !ok {
		return op
	}
	if op, ok := checkImm12(imm12); !ok {
		return op
	}

	inst := base
	inst |= uint32(rd&regMask) << 8
	inst |= splitImm12(imm12)
	return thumb32(inst)
}

// Thumb32TwoRegImm12 encodes two registers and a split 12-bit immediate.
// Format: base | i [26] | Rn [19:16] | imm3 [14:12] | Rd [11:8] | imm8 [7:0]
func Thumb32TwoRegImm12(base uint32, rd, rn Register, imm12 uint16) Opcode {
	return twoRegImm12(base, rd, rn, imm12, false)
}

// Thumb32TwoRegImm12SF is Thumb32TwoRegImm12 with the set-flags bit [20].
func Thumb32TwoRegImm12SF(base uint32, rd, rn Register, imm12 uint16, sf bool) Opcode {
	return twoRegImm12(base, rd, rn, imm12, sf)
}

func twoRegImm12(base uint32, rd, rn Register, imm12 uint16, sf bool) Opcode {
	if op, ok := anyRegs(rd, rn); !ok {
		return op
	}
	if op, ok := checkImm12(imm12); !ok {
		return op
	}

	inst := base
	inst |= sfBit(sf)
	inst |= uint32(rn&regMask) << 16
	inst |= uint32(rd&regMask) << 8
	inst |= splitImm12(imm12)
	return thumb32(inst)
}

// Thumb32TwoRegImm5SF encodes two registers, a split 5-bit shift amount and the
// set-flags bit. The shift type, if any, is part of base.
// Format: base | S [20] | imm3 [14:12] | Rd [11:8] | imm2 [7:6] | Rm [3:0]
func Thumb32TwoRegImm5SF(base uint32, rd, rn Register, imm5 uint8, sf bool) Opcode {
	if op, ok := anyRegs(rd, rn); !ok {
		return op
	}
	if op, ok := checkImm5(imm5); !ok {
		return op
	}

	inst := base
	inst |= sfBit(sf)
	inst |= uint32(rd&regMask) << 8
	inst |= uint32(rn & regMask)
	inst |= splitImm5(imm5)
	return thumb32(inst)
}

// Thumb32TwoRegImm5Shift encodes two registers and a shifted-register operand.
// Format: base | imm3 [14:12] | Rd [11:8] | imm2 [7:6] | type [5:4] | Rm [3:0]
func Thumb32TwoRegImm5Shift(base uint32, rd, rn Register, imm5 uint8, shift ShiftType) Opcode {
	return twoRegImm5Shift(base, rd, rn, imm5, shift, false)
}

// Thumb32TwoRegImm5ShiftSF is Thumb32TwoRegImm5Shift with the set-flags bit [20].
func Thumb32TwoRegImm5ShiftSF(base uint32, rd, rn Register, imm5 uint8, shift ShiftType, sf bool) Opcode {
	return twoRegImm5Shift(base, rd, rn, imm5, shift, sf)
}

func twoRegImm5Shift(base uint32, rd, rn Register, imm5 uint8, shift ShiftType, sf bool) Opcode {
	if op, ok := anyRegs(rd, rn); !ok {
		return op
	}
	if op, ok := checkShift(shift, imm5); !ok {
		return op
	}

	inst := base
	inst |= sfBit(sf)
	inst |= uint32(rd&regMask) << 8
	inst |= uint32(rn & regMask)
	inst |= splitImm5(imm5)
	inst |= shift.Code() << shiftBits
	return thumb32(inst)
}

// Thumb32ThreeReg encodes three registers.
// Format: base | Rn [19:16] | Rd [11:8] | Rm [3:0]
func Thumb32ThreeReg(base uint32, rd, rn, rm Register) Opcode {
	return threeReg(base, rd, rn, rm, false)
}

// Thumb32ThreeRegSF is Thumb32ThreeReg with the set-flags bit [20].
func Thumb32ThreeRegSF(base uint32, rd, rn, rm Register, sf bool) Opcode {
	return threeReg(base, rd, rn, rm, sf)
}

func threeReg(base uint32, rd, rn, rm Register, sf bool) Opcode {
	if op, ok := anyRegs(rd, rn, rm); !ok {
		return op
	}

	inst := base
	inst |= sfBit(sf)
	inst |= uint32(rn&regMask) << 16
	inst |= uint32(rd&regMask) << 8
	inst |= uint32(rm & regMask)
	return thumb32(inst)
}

// Thumb32ThreeRegImm5ShiftSF encodes three registers with a shifted Rm.
// Format: base | S [20] | Rn [19:16] | imm3 [14:12] | Rd [11:8] | imm2 [7:6] | type [5:4] | Rm [3:0]
func Thumb32ThreeRegImm5ShiftSF(
	base uint32,
	rd, rn, rm Register,
	imm5 uint8,
	shift ShiftType,
	sf bool,
) Opcode {
	if op, ok := anyRegs(rd, rn, rm); !ok {
		return op
	}
	if op, ok := checkShift(shift, imm5); !ok {
		return op
	}

	inst := base
	inst |= sfBit(sf)
	inst |= uint32(rn&regMask) << 16
	inst |= uint32(rd&regMask) << 8
	inst |= uint32(rm & regMask)
	inst |= splitImm5(imm5)
	inst |= shift.Code() << shiftBits
	return thumb32(inst)
}

// Thumb32Bitfield encodes BFI: insert width bits of Rn into Rd starting at lsb.
// Format: base | Rn [19:16] | imm3 [14:12] | Rd [11:8] | imm2 [7:6] | msb [4:0]
//
// lsb is split as imm3:imm2 and msb = lsb + width - 1.
func Thumb32Bitfield(base uint32, rd, rn Register, lsb, width uint8) Opcode {
	if op, ok := anyRegs(rd, rn); !ok {
		return op
	}
	if lsb > 31 {
		return fail(EncodeError, "bitfield lsb %d outside 0-31", lsb)
	}
	if width == 0 || int(width) > 32-int(lsb) {
		return fail(EncodeError, "bitfield width %d invalid for lsb %d", width, lsb)
	}

	msb := uint32(lsb) + uint32(width) - 1

	inst := base
	inst |= uint32(rn&regMask) << 16
	inst |= uint32(rd&regMask) << 8
	inst |= splitImm5(lsb)
	inst |= msb
	return thumb32(inst)
}

// Thumb32BitfieldClear encodes BFC. Base carries Rn = 0b1111.
func Thumb32BitfieldClear(base uint32, rd Register, lsb, width uint8) Opcode {
	return Thumb32Bitfield(base, rd, R0, lsb, width)
}

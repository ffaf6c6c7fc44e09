package mnemonic

import "github.com/sarchlab/thumbgen/insts"

// Operands carries every operand a format may consume. Fields a format does not
// use are ignored.
type Operands struct {
	Rd insts.Register
	Rn insts.Register
	Rm insts.Register

	// Imm is the immediate of the imm*, reg_imm*, low_imm5, two_low_imm3 and
	// 32-bit imm12/imm5 formats.
	Imm uint32

	Shift    insts.ShiftType
	SetFlags bool

	// Displacement is the signed byte offset of the branch formats.
	Displacement int32

	// Lsb and Width describe the bit range of the bitfield formats.
	Lsb   uint8
	Width uint8
}

func imm8(ops Operands) (uint8, insts.Opcode, bool) {
	if ops.Imm > 0xFF {
		return 0, insts.Failed(insts.EncodeError, "immediate %d does not fit 8 bits", ops.Imm), false
	}
	return uint8(ops.Imm), insts.Opcode{}, true
}

func imm16(ops Operands) (uint16, insts.Opcode, bool) {
	if ops.Imm > 0xFFFF {
		return 0, insts.Failed(insts.EncodeError, "immediate %d does not fit 16 bits", ops.Imm), false
	}
	return uint16(ops.Imm), insts.Opcode{}, true
}

// Encode packs ops into the entry's base opcode using the entry's format.
func (e Entry) Encode(ops Operands) insts.Opcode {
	if !e.Format.Is32Bit() && e.Opcode > 0xFFFF {
		return insts.Failed(insts.EncodeError, "%s: opcode 0x%X does not fit 16 bits", e.Mnemonic, e.Opcode)
	}

	switch e.Format {
	case insts.FormatNoOperand,
		insts.FormatImm7, insts.FormatImm8, insts.FormatImm11,
		insts.FormatRegImm8, insts.FormatRegImm5, insts.FormatLowImm5,
		insts.FormatTwoLow, insts.FormatThreeLow, insts.FormatTwoLowImm3,
		insts.FormatOneAny, insts.FormatTwoAny:
		return e.encode16(uint16(e.Opcode), ops)
	default:
		return e.encode32(ops)
	}
}

func (e Entry) encode16(base uint16, ops Operands) insts.Opcode {
	switch e.Format {
	case insts.FormatNoOperand:
		return insts.Thumb16NoOperand(base)
	case insts.FormatImm7, insts.FormatImm8, insts.FormatImm11:
		imm, op, ok := imm16(ops)
		if !ok {
			return op
		}
		return insts.Thumb16Imm(base, e.Format.ImmWidth(), imm)
	case insts.FormatOneAny:
		return insts.Thumb16OneAny(base, ops.Rm)
	case insts.FormatTwoAny:
		return insts.Thumb16TwoAny(base, ops.Rd, ops.Rm)
	case insts.FormatTwoLow:
		return insts.Thumb16TwoLow(base, ops.Rd, ops.Rm)
	case insts.FormatThreeLow:
		return insts.Thumb16ThreeLow(base, ops.Rd, ops.Rn, ops.Rm)
	}

	imm, op, ok := imm8(ops)
	if !ok {
		return op
	}

	switch e.Format {
	case insts.FormatRegImm8:
		return insts.Thumb16RegImm8(base, ops.Rd, imm)
	case insts.FormatRegImm5:
		return insts.Thumb16RegImm5(base, ops.Rd, ops.Rm, imm)
	case insts.FormatLowImm5:
		return insts.Thumb16LowImm5(base, ops.Rn, imm)
	case insts.FormatTwoLowImm3:
		return insts.Thumb16TwoLowImm3(base, ops.Rd, ops.Rm, imm)
	}

	return insts.Failed(insts.EncodeError, "%s: unsupported format %v", e.Mnemonic, e.Format)
}

func (e Entry) encode32(ops Operands) insts.Opcode {
	base := e.Opcode

	switch e.Format {
	case insts.FormatNoOperand32:
		return insts.Thumb32NoOperand(base)
	case insts.FormatThreeReg:
		return insts.Thumb32ThreeReg(base, ops.Rd, ops.Rn, ops.Rm)
	case insts.FormatThreeRegSF:
		return insts.Thumb32ThreeRegSF(base, ops.Rd, ops.Rn, ops.Rm, ops.SetFlags)
	case insts.FormatBranch:
		return insts.Thumb32Branch(base, ops.Displacement)
	case insts.FormatCondBranch:
		return insts.Thumb32CondBranch(base, ops.Displacement)
	case insts.FormatBitfield:
		return insts.Thumb32Bitfield(base, ops.Rd, ops.Rn, ops.Lsb, ops.Width)
	case insts.FormatBitfieldClear:
		return insts.Thumb32BitfieldClear(base, ops.Rd, ops.Lsb, ops.Width)
	case insts.FormatOneRegImm12, insts.FormatTwoRegImm12, insts.FormatTwoRegImm12SF:
		imm, op, ok := imm16(ops)
		if !ok {
			return op
		}
		switch e.Format {
		case insts.FormatOneRegImm12:
			return insts.Thumb32OneRegImm12(base, ops.Rd, imm)
		case insts.FormatTwoRegImm12:
			return insts.Thumb32TwoRegImm12(base, ops.Rd, ops.Rn, imm)
		default:
			return insts.Thumb32TwoRegImm12SF(base, ops.Rd, ops.Rn, imm, ops.SetFlags)
		}
	}

	imm, op, ok := imm8(ops)
	if !ok {
		return op
	}

	switch e.Format {
	case insts.FormatTwoRegImm5SF:
		return insts.Thumb32TwoRegImm5SF(base, ops.Rd, ops.Rn, imm, ops.SetFlags)
	case insts.FormatTwoRegImm5Shift:
		return insts.Thumb32TwoRegImm5Shift(base, ops.Rd, ops.Rn, imm, ops.Shift)
	case insts.FormatTwoRegImm5ShiftSF:
		return insts.Thumb32TwoRegImm5ShiftSF(base, ops.Rd, ops.Rn, imm, ops.Shift, ops.SetFlags)
	case insts.FormatThreeRegImm5ShiftSF:
		return insts.Thumb32ThreeRegImm5ShiftSF(base, ops.Rd, ops.Rn, ops.Rm, imm, ops.Shift, ops.SetFlags)
	}

	return insts.Failed(insts.EncodeError, "%s: unsupported format %v", e.Mnemonic, e.Format)
}

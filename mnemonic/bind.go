package mnemonic

import (
	"fmt"

	"github.com/sarchlab/thumbgen/insts"
)

// Typed bindings. Each Bind* function resolves a mnemonic in a table once and
// returns an encoder with the argument list of the mnemonic's format. They
// fail if the mnemonic is missing or has a different format.

func (t *Table) bind(mnemonic string, want insts.Format) (Entry, error) {
	e, ok := t.Lookup(mnemonic)
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownMnemonic, mnemonic)
	}
	if e.Format != want {
		return Entry{}, fmt.Errorf("%w: %s is %v, not %v", ErrFormatMismatch, mnemonic, e.Format, want)
	}
	return e, nil
}

func must[F any](f F, err error) F {
	if err != nil {
		panic(fmt.Sprintf("mnemonic: %v", err))
	}
	return f
}

// BindNoOperand binds a no_operand or no_operand_32 mnemonic.
func (t *Table) BindNoOperand(mnemonic string) (func() insts.Opcode, error) {
	e, ok := t.Lookup(mnemonic)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMnemonic, mnemonic)
	}
	if e.Format != insts.FormatNoOperand && e.Format != insts.FormatNoOperand32 {
		return nil, fmt.Errorf("%w: %s is %v, not an operandless form", ErrFormatMismatch, mnemonic, e.Format)
	}
	return func() insts.Opcode { return e.Encode(Operands{}) }, nil
}

// BindImm binds an imm7, imm8 or imm11 mnemonic.
func (t *Table) BindImm(mnemonic string) (func(imm uint16) insts.Opcode, error) {
	e, ok := t.Lookup(mnemonic)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMnemonic, mnemonic)
	}
	width := e.Format.ImmWidth()
	if width == 0 {
		return nil, fmt.Errorf("%w: %s is %v, not a bare immediate form", ErrFormatMismatch, mnemonic, e.Format)
	}
	base := uint16(e.Opcode)
	return func(imm uint16) insts.Opcode { return insts.Thumb16Imm(base, width, imm) }, nil
}

// BindRegImm8 binds a reg_imm8 mnemonic.
func (t *Table) BindRegImm8(mnemonic string) (func(rd insts.Register, imm8 uint8) insts.Opcode, error) {
	e, err := t.bind(mnemonic, insts.FormatRegImm8)
	if err != nil {
		return nil, err
	}
	base := uint16(e.Opcode)
	return func(rd insts.Register, imm8 uint8) insts.Opcode {
		return insts.Thumb16RegImm8(base, rd, imm8)
	}, nil
}

// BindRegImm5 binds a reg_imm5 mnemonic.
func (t *Table) BindRegImm5(mnemonic string) (func(rd, rm insts.Register, imm5 uint8) insts.Opcode, error) {
	e, err := t.bind(mnemonic, insts.FormatRegImm5)
	if err != nil {
		return nil, err
	}
	base := uint16(e.Opcode)
	return func(rd, rm insts.Register, imm5 uint8) insts.Opcode {
		return insts.Thumb16RegImm5(base, rd, rm, imm5)
	}, nil
}

// BindLowImm5 binds a low_imm5 mnemonic (CBZ, CBNZ).
func (t *Table) BindLowImm5(mnemonic string) (func(rn insts.Register, imm5 uint8) insts.Opcode, error) {
	e, err := t.bind(mnemonic, insts.FormatLowImm5)
	if err != nil {
		return nil, err
	}
	base := uint16(e.Opcode)
	return func(rn insts.Register, imm5 uint8) insts.Opcode {
		return insts.Thumb16LowImm5(base, rn, imm5)
	}, nil
}

// BindTwoLow binds a two_low mnemonic.
func (t *Table) BindTwoLow(mnemonic string) (func(rd, rm insts.Register) insts.Opcode, error) {
	e, err := t.bind(mnemonic, insts.FormatTwoLow)
	if err != nil {
		return nil, err
	}
	base := uint16(e.Opcode)
	return func(rd, rm insts.Register) insts.Opcode {
		return insts.Thumb16TwoLow(base, rd, rm)
	}, nil
}

// BindThreeLow binds a three_low mnemonic.
func (t *Table) BindThreeLow(mnemonic string) (func(rd, rn, rm insts.Register) insts.Opcode, error) {
	e, err := t.bind(mnemonic, insts.FormatThreeLow)
	if err != nil {
		return nil, err
	}
	base := uint16(e.Opcode)
	return func(rd, rn, rm insts.Register) insts.Opcode {
		return insts.Thumb16ThreeLow(base, rd, rn, rm)
	}, nil
}

// BindTwoLowImm3 binds a two_low_imm3 mnemonic.
func (t *Table) BindTwoLowImm3(mnemonic string) (func(rd, rm insts.Register, imm3 uint8) insts.Opcode, error) {
	e, err := t.bind(mnemonic, insts.FormatTwoLowImm3)
	if err != nil {
		return nil, err
	}
	base := uint16(e.Opcode)
	return func(rd, rm insts.Register, imm3 uint8) insts.Opcode {
		return insts.Thumb16TwoLowImm3(base, rd, rm, imm3)
	}, nil
}

// BindOneAny binds a one_any mnemonic.
func (t *Table) BindOneAny(mnemonic string) (func(rm insts.Register) insts.Opcode, error) {
	e, err := t.bind(mnemonic, insts.FormatOneAny)
	if err != nil {
		return nil, err
	}
	base := uint16(e.Opcode)
	return func(rm insts.Register) insts.Opcode {
		return insts.Thumb16OneAny(base, rm)
	}, nil
}

// BindTwoAny binds a two_any mnemonic.
func (t *Table) BindTwoAny(mnemonic string) (func(rd, rm insts.Register) insts.Opcode, error) {
	e, err := t.bind(mnemonic, insts.FormatTwoAny)
	if err != nil {
		return nil, err
	}
	base := uint16(e.Opcode)
	return func(rd, rm insts.Register) insts.Opcode {
		return insts.Thumb16TwoAny(base, rd, rm)
	}, nil
}

// BindOneRegImm12 binds a one_reg_imm12 mnemonic.
func (t *Table) BindOneRegImm12(mnemonic string) (func(rd insts.Register, imm12 uint16) insts.Opcode, error) {
	e, err := t.bind(mnemonic, insts.FormatOneRegImm12)
	if err != nil {
		return nil, err
	}
	return func(rd insts.Register, imm12 uint16) insts.Opcode {
		return insts.Thumb32OneRegImm12(e.Opcode, rd, imm12)
	}, nil
}

// BindTwoRegImm12 binds a two_reg_imm12 mnemonic.
func (t *Table) BindTwoRegImm12(mnemonic string) (func(rd, rn insts.Register, imm12 uint16) insts.Opcode, error) {
	e, err := t.bind(mnemonic, insts.FormatTwoRegImm12)
	if err != nil {
		return nil, err
	}
	return func(rd, rn insts.Register, imm12 uint16) insts.Opcode {
		return insts.Thumb32TwoRegImm12(e.Opcode, rd, rn, imm12)
	}, nil
}

// BindTwoRegImm12SF binds a two_reg_imm12_sf mnemonic.
func (t *Table) BindTwoRegImm12SF(
	mnemonic string,
) (func(rd, rn insts.Register, imm12 uint16, sf bool) insts.Opcode, error) {
	e, err := t.bind(mnemonic, insts.FormatTwoRegImm12SF)
	if err != nil {
		return nil, err
	}
	return func(rd, rn insts.Register, imm12 uint16, sf bool) insts.Opcode {
		return insts.Thumb32TwoRegImm12SF(e.Opcode, rd, rn, imm12, sf)
	}, nil
}

// BindTwoRegImm5SF binds a two_reg_imm5_sf mnemonic.
func (t *Table) BindTwoRegImm5SF(
	mnemonic string,
) (func(rd, rn insts.Register, imm5 uint8, sf bool) insts.Opcode, error) {
	e, err := t.bind(mnemonic, insts.FormatTwoRegImm5SF)
	if err != nil {
		return nil, err
	}
	return func(rd, rn insts.Register, imm5 uint8, sf bool) insts.Opcode {
		return insts.Thumb32TwoRegImm5SF(e.Opcode, rd, rn, imm5, sf)
	}, nil
}

// BindTwoRegImm5Shift binds a two_reg_imm5_shift mnemonic.
func (t *Table) BindTwoRegImm5Shift(
	mnemonic string,
) (func(rd, rn insts.Register, imm5 uint8, shift insts.ShiftType) insts.Opcode, error) {
	e, err := t.bind(mnemonic, insts.FormatTwoRegImm5Shift)
	if err != nil {
		return nil, err
	}
	return func(rd, rn insts.Register, imm5 uint8, shift insts.ShiftType) insts.Opcode {
		return insts.Thumb32TwoRegImm5Shift(e.Opcode, rd, rn, imm5, shift)
	}, nil
}

// BindTwoRegImm5ShiftSF binds a two_reg_imm5_shift_sf mnemonic.
func (t *Table) BindTwoRegImm5ShiftSF(
	mnemonic string,
) (func(rd, rn insts.Register, imm5 uint8, shift insts.ShiftType, sf bool) insts.Opcode, error) {
	e, err := t.bind(mnemonic, insts.FormatTwoRegImm5ShiftSF)
	if err != nil {
		return nil, err
	}
	return func(rd, rn insts.Register, imm5 uint8, shift insts.ShiftType, sf bool) insts.Opcode {
		return insts.Thumb32TwoRegImm5ShiftSF(e.Opcode, rd, rn, imm5, shift, sf)
	}, nil
}

// BindThreeReg binds a three_reg mnemonic.
func (t *Table) BindThreeReg(mnemonic string) (func(rd, rn, rm insts.Register) insts.Opcode, error) {
	e, err := t.bind(mnemonic, insts.FormatThreeReg)
	if err != nil {
		return nil, err
	}
	return func(rd, rn, rm insts.Register) insts.Opcode {
		return insts.Thumb32ThreeReg(e.Opcode, rd, rn, rm)
	}, nil
}

// BindThreeRegSF binds a three_reg_sf mnemonic.
func (t *Table) BindThreeRegSF(mnemonic string) (func(rd, rn, rm insts.Register, sf bool) insts.Opcode, error) {
	e, err := t.bind(mnemonic, insts.FormatThreeRegSF)
	if err != nil {
		return nil, err
	}
	return func(rd, rn, rm insts.Register, sf bool) insts.Opcode {
		return insts.Thumb32ThreeRegSF(e.Opcode, rd, rn, rm, sf)
	}, nil
}

// BindThreeRegImm5ShiftSF binds a three_reg_imm5_shift_sf mnemonic.
func (t *Table) BindThreeRegImm5ShiftSF(
	mnemonic string,
) (func(rd, rn, rm insts.Register, imm5 uint8, shift insts.ShiftType, sf bool) insts.Opcode, error) {
	e, err := t.bind(mnemonic, insts.FormatThreeRegImm5ShiftSF)
	if err != nil {
		return nil, err
	}
	return func(rd, rn, rm insts.Register, imm5 uint8, shift insts.ShiftType, sf bool) insts.Opcode {
		return insts.Thumb32ThreeRegImm5ShiftSF(e.Opcode, rd, rn, rm, imm5, shift, sf)
	}, nil
}

// BindBranch binds a branch or cond_branch mnemonic.
func (t *Table) BindBranch(mnemonic string) (func(disp int32) insts.Opcode, error) {
	e, ok := t.Lookup(mnemonic)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMnemonic, mnemonic)
	}
	switch e.Format {
	case insts.FormatBranch:
		return func(disp int32) insts.Opcode { return insts.Thumb32Branch(e.Opcode, disp) }, nil
	case insts.FormatCondBranch:
		return func(disp int32) insts.Opcode { return insts.Thumb32CondBranch(e.Opcode, disp) }, nil
	default:
		return nil, fmt.Errorf("%w: %s is %v, not a branch form", ErrFormatMismatch, mnemonic, e.Format)
	}
}

// BindBitfield binds a bitfield mnemonic.
func (t *Table) BindBitfield(
	mnemonic string,
) (func(rd, rn insts.Register, lsb, width uint8) insts.Opcode, error) {
	e, err := t.bind(mnemonic, insts.FormatBitfield)
	if err != nil {
		return nil, err
	}
	return func(rd, rn insts.Register, lsb, width uint8) insts.Opcode {
		return insts.Thumb32Bitfield(e.Opcode, rd, rn, lsb, width)
	}, nil
}

// BindBitfieldClear binds a bitfield_clear mnemonic.
func (t *Table) BindBitfieldClear(mnemonic string) (func(rd insts.Register, lsb, width uint8) insts.Opcode, error) {
	e, err := t.bind(mnemonic, insts.FormatBitfieldClear)
	if err != nil {
		return nil, err
	}
	return func(rd insts.Register, lsb, width uint8) insts.Opcode {
		return insts.Thumb32BitfieldClear(e.Opcode, rd, lsb, width)
	}, nil
}

package insts

import (
	"fmt"
	"strings"
)

// ShiftType represents the shift applied to a register operand.
type ShiftType uint8

// Shift types.
const (
	ShiftLSL  ShiftType = iota // Logical shift left
	ShiftLSR                   // Logical shift right
	ShiftASR                   // Arithmetic shift right
	ShiftRRX                   // Rotate right with extend (imm5 == 0)
	ShiftROR                   // Rotate right (imm5 != 0)
	ShiftNone                  // No shift field
)

// Code returns the 2-bit encoding of the shift type.
//
// RRX and ROR share 0b11; the accompanying imm5 tells them apart. ShiftNone
// contributes no bits.
func (s ShiftType) Code() uint32 {
	switch s {
	case ShiftLSL:
		return 0b00
	case ShiftLSR:
		return 0b01
	case ShiftASR:
		return 0b10
	case ShiftRRX, ShiftROR:
		return 0b11
	default:
		return 0
	}
}

// String returns the assembler name of the shift type.
func (s ShiftType) String() string {
	switch s {
	case ShiftLSL:
		return "lsl"
	case ShiftLSR:
		return "lsr"
	case ShiftASR:
		return "asr"
	case ShiftRRX:
		return "rrx"
	case ShiftROR:
		return "ror"
	case ShiftNone:
		return "none"
	default:
		return fmt.Sprintf("ShiftType(%d)", uint8(s))
	}
}

// ParseShift parses a shift name as printed by String (case-insensitive).
func ParseShift(name string) (ShiftType, error) {
	for s := ShiftLSL; s <= ShiftNone; s++ {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return ShiftNone, fmt.Errorf("unknown shift type %q", name)
}

// ValidateShift checks that a shift type can be encoded together with imm5.
//
// The hardware reads code 0b11 with imm5 == 0 as RRX, so ROR #0 would silently
// become RRX and RRX with a non-zero amount would become ROR. Both are rejected,
// as is ShiftNone, which has no encoding in a shift field.
func ValidateShift(s ShiftType, imm5 uint8) error {
	switch s {
	case ShiftLSL, ShiftLSR, ShiftASR:
		return nil
	case ShiftRRX:
		if imm5 != 0 {
			return fmt.Errorf("rrx takes no shift amount, got #%d", imm5)
		}
		return nil
	case ShiftROR:
		if imm5 == 0 {
			return fmt.Errorf("ror #0 encodes as rrx")
		}
		return nil
	case ShiftNone:
		return fmt.Errorf("shift type none in a shift field")
	default:
		return fmt.Errorf("unknown shift type %d", uint8(s))
	}
}

package insts

import "fmt"

// Format represents an instruction encoding format, one per field packer.
type Format uint8

// Instruction formats.
const (
	FormatUnknown Format = iota

	// 16-bit
	FormatNoOperand  // no operands
	FormatImm7       // imm7 [6:0]
	FormatImm8       // imm8 [7:0]
	FormatImm11      // imm11 [10:0]
	FormatRegImm8    // Rd [10:8], imm8
	FormatRegImm5    // imm5 [10:6], Rm [5:3], Rd [2:0]
	FormatLowImm5    // imm5 [7:3], Rn [2:0]
	FormatTwoLow     // Rm [5:3], Rd [2:0]
	FormatThreeLow   // Rm [8:6], Rn [5:3], Rd [2:0]
	FormatTwoLowImm3 // imm3 [8:6], Rm [5:3], Rd [2:0]
	FormatOneAny     // Rm [6:3]
	FormatTwoAny     // R1[3] [7], R2 [6:3], R1 [2:0]

	// 32-bit
	FormatNoOperand32
	FormatOneRegImm12
	FormatTwoRegImm12
	FormatTwoRegImm12SF
	FormatTwoRegImm5SF
	FormatTwoRegImm5Shift
	FormatTwoRegImm5ShiftSF
	FormatThreeReg
	FormatThreeRegSF
	FormatThreeRegImm5ShiftSF
	FormatCondBranch
	FormatBranch
	FormatBitfield
	FormatBitfieldClear

	numFormats
)

var formatTags = [numFormats]string{
	FormatUnknown:             "unknown",
	FormatNoOperand:           "no_operand",
	FormatImm7:                "imm7",
	FormatImm8:                "imm8",
	FormatImm11:               "imm11",
	FormatRegImm8:             "reg_imm8",
	FormatRegImm5:             "reg_imm5",
	FormatLowImm5:             "low_imm5",
	FormatTwoLow:              "two_low",
	FormatThreeLow:            "three_low",
	FormatTwoLowImm3:          "two_low_imm3",
	FormatOneAny:              "one_any",
	FormatTwoAny:              "two_any",
	FormatNoOperand32:         "no_operand_32",
	FormatOneRegImm12:         "one_reg_imm12",
	FormatTwoRegImm12:         "two_reg_imm12",
	FormatTwoRegImm12SF:       "two_reg_imm12_sf",
	FormatTwoRegImm5SF:        "two_reg_imm5_sf",
	FormatTwoRegImm5Shift:     "two_reg_imm5_shift",
	FormatTwoRegImm5ShiftSF:   "two_reg_imm5_shift_sf",
	FormatThreeReg:            "three_reg",
	FormatThreeRegSF:          "three_reg_sf",
	FormatThreeRegImm5ShiftSF: "three_reg_imm5_shift_sf",
	FormatCondBranch:          "cond_branch",
	FormatBranch:              "branch",
	FormatBitfield:            "bitfield",
	FormatBitfieldClear:       "bitfield_clear",
}

// Formats returns every known format, 16-bit formats first.
func Formats() []Format {
	formats := make([]Format, 0, numFormats-1)
	for f := FormatNoOperand; f < numFormats; f++ {
		formats = append(formats, f)
	}
	return formats
}

// ParseFormat returns the format with the given tag.
func ParseFormat(tag string) (Format, error) {
	for f := FormatNoOperand; f < numFormats; f++ {
		if formatTags[f] == tag {
			return f, nil
		}
	}
	return FormatUnknown, fmt.Errorf("unknown format tag %q", tag)
}

// String returns the format tag.
func (f Format) String() string {
	if f < numFormats {
		return formatTags[f]
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// Is32Bit reports whether the format produces a 32-bit instruction.
func (f Format) Is32Bit() bool {
	return f >= FormatNoOperand32 && f < numFormats
}

// ImmWidth returns the immediate width of the bare-immediate formats, 0 otherwise.
func (f Format) ImmWidth() uint {
	switch f {
	case FormatImm7:
		return 7
	case FormatImm8:
		return 8
	case FormatImm11:
		return 11
	default:
		return 0
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	if f == FormatUnknown || f >= numFormats {
		return nil, fmt.Errorf("cannot marshal format %d", uint8(f))
	}
	return []byte(formatTags[f]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

package insts

import (
	"fmt"
	"strconv"
	"strings"
)

// Register identifies one of the sixteen core registers.
type Register uint8

// Core registers.
const (
	R0 Register = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15
)

// Register aliases.
const (
	SP = R13 // Stack pointer
	LR = R14 // Link register
	PC = R15 // Program counter
)

// NumRegisters is the number of addressable core registers.
const NumRegisters = 16

const (
	regLowMask  = 0x7
	regMask     = 0xF
	regHighBit  = 0x8
	highRegFlag = 1 << 7 // displaced high-register bit of the two_any form
)

// NewRegister converts a register number into a Register.
func NewRegister(n int) (Register, error) {
	if n < 0 || n >= NumRegisters {
		return 0, fmt.Errorf("%w: r%d", ErrRegisterOutOfRange, n)
	}
	return Register(n), nil
}

// ParseRegister parses "r0".."r15", "sp", "lr" or "pc" (case-insensitive).
func ParseRegister(s string) (Register, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "sp":
		return SP, nil
	case "lr":
		return LR, nil
	case "pc":
		return PC, nil
	}

	if !strings.HasPrefix(name, "r") {
		return 0, fmt.Errorf("invalid register name %q", s)
	}
	n, err := strconv.Atoi(name[1:])
	if err != nil {
		return 0, fmt.Errorf("invalid register name %q: %w", s, err)
	}
	return NewRegister(n)
}

// Valid reports whether r names one of r0-r15.
func (r Register) Valid() bool {
	return r < NumRegisters
}

// IsLow reports whether r is one of r0-r7, the registers a 3-bit field can hold.
func (r Register) IsLow() bool {
	return r <= R7
}

// String returns the assembler name of the register.
func (r Register) String() string {
	switch r {
	case SP:
		return "sp"
	case LR:
		return "lr"
	case PC:
		return "pc"
	}
	if !r.Valid() {
		return fmt.Sprintf("Register(%d)", uint8(r))
	}
	return "r" + strconv.Itoa(int(r))
}

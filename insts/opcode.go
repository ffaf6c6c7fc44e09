package insts

import (
	"errors"
	"fmt"
)

// Encoding errors. Opcode.Err wraps one of these.
var (
	ErrRegisterOutOfRange = errors.New("register out of range")
	ErrEncode             = errors.New("encode error")
)

// Kind tells which variant an Opcode holds.
type Kind uint8

// Opcode kinds. The zero value is an error so that an uninitialised Opcode can
// never be emitted.
const (
	KindError Kind = iota
	KindThumb16
	KindThumb32
)

// ErrorKind classifies a failed encoding.
type ErrorKind uint8

// Error kinds.
const (
	EncodeError ErrorKind = iota
	RegisterOutOfRange
)

// Opcode is the result of an encoder: a 16-bit instruction, a 32-bit instruction
// split into halfwords, or an error.
//
// Instruction bits can only be read through Thumb16, Thumb32 or Halfwords, all of
// which refuse to hand out bits for the error variant. Opcode values are
// comparable with ==.
type Opcode struct {
	kind    Kind
	hi      uint16
	lo      uint16
	errKind ErrorKind
	detail  string
}

func thumb16(word uint16) Opcode {
	return Opcode{kind: KindThumb16, lo: word}
}

// thumb32 splits word into its upper halfword (emitted first) and lower halfword.
func thumb32(word uint32) Opcode {
	return Opcode{
		kind: KindThumb32,
		hi:   uint16(word >> 16),
		lo:   uint16(word & 0xFFFF),
	}
}

func fail(kind ErrorKind, format string, args ...interface{}) Opcode {
	return Opcode{kind: KindError, errKind: kind, detail: fmt.Sprintf(format, args...)}
}

// Failed returns an error opcode of the given kind. Callers outside this package
// use it to reject operands before they reach a packer.
func Failed(kind ErrorKind, format string, args ...interface{}) Opcode {
	return fail(kind, format, args...)
}

func regOutOfRange(r Register) Opcode {
	if !r.Valid() {
		return fail(RegisterOutOfRange, "register %d does not exist", uint8(r))
	}
	return fail(RegisterOutOfRange, "%v is not a low register", r)
}

// Kind returns the variant held by the opcode.
func (o Opcode) Kind() Kind {
	return o.kind
}

// Thumb16 returns the instruction word of a 16-bit opcode.
func (o Opcode) Thumb16() (uint16, bool) {
	if o.kind != KindThumb16 {
		return 0, false
	}
	return o.lo, true
}

// Thumb32 returns the halfwords of a 32-bit opcode, upper halfword first.
func (o Opcode) Thumb32() (hi, lo uint16, ok bool) {
	if o.kind != KindThumb32 {
		return 0, 0, false
	}
	return o.hi, o.lo, true
}

// Halfwords returns the opcode in emission order. It is nil for an error.
func (o Opcode) Halfwords() []uint16 {
	switch o.kind {
	case KindThumb16:
		return []uint16{o.lo}
	case KindThumb32:
		return []uint16{o.hi, o.lo}
	default:
		return nil
	}
}

// Size returns the number of halfwords the opcode occupies (0 for an error).
func (o Opcode) Size() int {
	switch o.kind {
	case KindThumb16:
		return 1
	case KindThumb32:
		return 2
	default:
		return 0
	}
}

// Err returns nil for a valid opcode. For the error variant it returns an error
// wrapping ErrRegisterOutOfRange or ErrEncode.
func (o Opcode) Err() error {
	if o.kind != KindError {
		return nil
	}

	sentinel := ErrEncode
	if o.errKind == RegisterOutOfRange {
		sentinel = ErrRegisterOutOfRange
	}
	if o.detail == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, o.detail)
}

// ErrorKind returns the error classification. ok is false for a valid opcode.
func (o Opcode) ErrorKind() (kind ErrorKind, ok bool) {
	if o.kind != KindError {
		return 0, false
	}
	return o.errKind, true
}

// String formats the opcode for diagnostics.
func (o Opcode) String() string {
	switch o.kind {
	case KindThumb16:
		return fmt.Sprintf("%04X", o.lo)
	case KindThumb32:
		return fmt.Sprintf("%04X %04X", o.hi, o.lo)
	default:
		return "error: " + o.Err().Error()
	}
}

// Package program collects encoded Thumb instructions into a bounded machine-code
// image.
//
// A Sequence owns a fixed-capacity halfword buffer and a write cursor. Opcodes are
// appended whole: a 32-bit instruction is written as both of its halfwords or not
// at all. A Sequence has no internal locking and must have a single writer.
package program

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/sarchlab/thumbgen/insts"
)

// Append errors.
var (
	ErrCapacityExceeded = errors.New("instruction sequence full")
	ErrInvalidOpcode    = errors.New("invalid opcode")
)

// Sequence is an append-only buffer of 16-bit instruction halfwords.
type Sequence struct {
	words  []uint16
	cursor int
}

// NewSequence creates an empty sequence that holds up to capacity halfwords.
// A negative capacity is treated as zero.
func NewSequence(capacity int) *Sequence {
	if capacity < 0 {
		capacity = 0
	}
	return &Sequence{words: make([]uint16, capacity)}
}

// Append writes op at the cursor and advances it by the opcode's size.
//
// An error opcode is refused with ErrInvalidOpcode wrapping the opcode's own
// error. If the opcode does not fit in the remaining space, ErrCapacityExceeded
// is returned. In both cases the sequence is left unchanged.
func (s *Sequence) Append(op insts.Opcode) error {
	if err := op.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOpcode, err)
	}

	need := op.Size()
	// cursor and need are never negative, so this cannot wrap.
	if s.cursor+need > len(s.words) {
		return fmt.Errorf("%w: %d of %d halfwords used, %d more needed",
			ErrCapacityExceeded, s.cursor, len(s.words), need)
	}

	copy(s.words[s.cursor:], op.Halfwords())
	s.cursor += need
	return nil
}

// AppendAll appends opcodes in order and stops at the first failure. It returns
// the number of opcodes appended.
func (s *Sequence) AppendAll(ops ...insts.Opcode) (int, error) {
	for i, op := range ops {
		if err := s.Append(op); err != nil {
			return i, fmt.Errorf("opcode %d: %w", i, err)
		}
	}
	return len(ops), nil
}

// Len returns the number of halfwords written.
func (s *Sequence) Len() int {
	return s.cursor
}

// Cap returns the capacity in halfwords.
func (s *Sequence) Cap() int {
	return len(s.words)
}

// Free returns the number of halfwords still available.
func (s *Sequence) Free() int {
	return len(s.words) - s.cursor
}

// Drain returns a copy of the written halfwords in emission order. The
// sequence is not reset.
func (s *Sequence) Drain() []uint16 {
	out := make([]uint16, s.cursor)
	copy(out, s.words[:s.cursor])
	return out
}

// Bytes serialises the written halfwords in the given byte order. Cortex-M
// targets take binary.LittleEndian.
func (s *Sequence) Bytes(order binary.AppendByteOrder) []byte {
	program := make([]byte, 0, s.cursor*2)
	for _, w := range s.words[:s.cursor] {
		program = order.AppendUint16(program, w)
	}
	return program
}

// WriteTo writes the little-endian image of the written halfwords to w.
func (s *Sequence) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.Bytes(binary.LittleEndian))
	if err != nil {
		return int64(n), fmt.Errorf("failed to write instruction image: %w", err)
	}
	return int64(n), nil
}

// Package insts provides ARM Thumb/Thumb-2 instruction definitions and encoding.
//
// This package packs typed operands into Thumb machine code. It supports:
//   - 16-bit Thumb formats: low-register (r0-r7) and any-register (r0-r15) forms,
//     immediates of 3, 5, 7, 8 and 11 bits
//   - 32-bit Thumb-2 formats: split imm12, split imm5 with shift type, three-register
//     forms, bitfield insert/clear
//   - Branch displacements for B<cond>.W and B.W/BL
//
// Every encoder returns an Opcode, which is either a 16-bit word, a pair of halfwords
// or an error. Out-of-range operands are reported, never truncated.
//
// Usage:
//
//	op := insts.Thumb16RegImm8(0x2000, insts.R0, 2) // MOVS r0, #2
//	if w, ok := op.Thumb16(); ok {
//		fmt.Printf("0x%04X\n", w) // 0x2002
//	}
package insts

package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/thumbgen/insts"
)

var _ = Describe("Thumb32 packers", func() {
	Describe("Thumb32NoOperand", func() {
		It("should encode DMB", func() {
			Expect(word32(insts.Thumb32NoOperand(0xF3BF8F5F))).To(Equal(uint32(0xF3BF8F5F)))
		})
	})

	Describe("split imm12", func() {
		It("should spread 0x8FF over i, imm3 and imm8", func() {
			w := word32(insts.Thumb32TwoRegImm12SF(0xF1400000, insts.R1, insts.R2, 0x8FF, false))

			i := bits(w, 26, 26)
			imm3 := bits(w, 14, 12)
			imm8 := bits(w, 7, 0)
			Expect(i).To(Equal(uint32(1)))
			Expect(imm3).To(Equal(uint32(0b000)))
			Expect(imm8).To(Equal(uint32(0xFF)))
			Expect(i<<11 | imm3<<8 | imm8).To(Equal(uint32(0x8FF)))
		})

		It("should reconstruct every imm12", func() {
			for imm := uint16(0); imm <= 0xFFF; imm += 7 {
				w := word32(insts.Thumb32TwoRegImm12(0xF2000000, insts.R0, insts.R0, imm))
				Expect(bits(w, 26, 26)<<11 | bits(w, 14, 12)<<8 | bits(w, 7, 0)).To(Equal(uint32(imm)))
			}
		})

		It("should encode ADDW r0, r1, #0xABC", func() {
			Expect(word32(insts.Thumb32TwoRegImm12(0xF2000000, insts.R0, insts.R1, 0xABC))).
				To(Equal(uint32(0xF60120BC)))
		})

		It("should encode ADR r3, #0x123", func() {
			Expect(word32(insts.Thumb32OneRegImm12(0xF20F0000, insts.R3, 0x123))).
				To(Equal(uint32(0xF20F1323)))
		})

		It("should set bit 20 only when flags are requested", func() {
			w := word32(insts.Thumb32TwoRegImm12SF(0xF0000000, insts.R4, insts.R5, 1, true))
			Expect(bits(w, 20, 20)).To(Equal(uint32(1)))
			Expect(bits(w, 19, 16)).To(Equal(uint32(5)))
			Expect(bits(w, 11, 8)).To(Equal(uint32(4)))

			w = word32(insts.Thumb32TwoRegImm12SF(0xF0000000, insts.R4, insts.R5, 1, false))
			Expect(bits(w, 20, 20)).To(BeZero())
		})

		It("should reject immediates wider than 12 bits", func() {
			Expect(insts.Thumb32TwoRegImm12(0xF2000000, insts.R0, insts.R1, 0x1000).Err()).
				To(MatchError(insts.ErrEncode))
			Expect(insts.Thumb32OneRegImm12(0xF20F0000, insts.R0, 0xFFFF).Err()).
				To(MatchError(insts.ErrEncode))
		})
	})

	Describe("split imm5", func() {
		It("should encode ASRS.W r1, r2, #5", func() {
			Expect(word32(insts.Thumb32TwoRegImm5SF(0xEA4F0020, insts.R1, insts.R2, 5, true))).
				To(Equal(uint32(0xEA5F1162)))
		})

		It("should reconstruct every imm5", func() {
			for imm := uint8(0); imm <= 31; imm++ {
				w := word32(insts.Thumb32TwoRegImm5SF(0xEA4F0020, insts.R0, insts.R0, imm, false))
				Expect(bits(w, 14, 12)<<2 | bits(w, 7, 6)).To(Equal(uint32(imm)))
			}
		})

		It("should reject amounts wider than 5 bits", func() {
			Expect(insts.Thumb32TwoRegImm5SF(0xEA4F0020, insts.R0, insts.R0, 32, false).Err()).
				To(MatchError(insts.ErrEncode))
		})
	})

	Describe("shift type", func() {
		It("should place the shift code in bits [5:4]", func() {
			w := word32(insts.Thumb32TwoRegImm5Shift(0xEB100F00, insts.R0, insts.R5, 3, insts.ShiftLSR))
			Expect(bits(w, 5, 4)).To(Equal(uint32(0b01)))
			Expect(bits(w, 7, 6)).To(Equal(uint32(0b11)))
			Expect(bits(w, 14, 12)).To(BeZero())
			Expect(bits(w, 3, 0)).To(Equal(uint32(5)))
		})

		It("should encode RRX as code 0b11 with a zero amount", func() {
			w := word32(insts.Thumb32TwoRegImm5ShiftSF(0xEB0D0000, insts.R0, insts.R1, 0, insts.ShiftRRX, false))
			Expect(bits(w, 5, 4)).To(Equal(uint32(0b11)))
			Expect(bits(w, 14, 12)<<2 | bits(w, 7, 6)).To(BeZero())
		})

		It("should reject ROR #0 and RRX with an amount", func() {
			Expect(insts.Thumb32TwoRegImm5Shift(0xEB100F00, insts.R0, insts.R1, 0, insts.ShiftROR).Err()).
				To(MatchError(insts.ErrEncode))
			Expect(insts.Thumb32ThreeRegImm5ShiftSF(0xEB000000, insts.R0, insts.R1, insts.R2, 4, insts.ShiftRRX, false).Err()).
				To(MatchError(insts.ErrEncode))
		})

		It("should reject NONE in a shift field", func() {
			Expect(insts.Thumb32TwoRegImm5ShiftSF(0xEB0D0000, insts.R0, insts.R1, 0, insts.ShiftNone, true).Err()).
				To(MatchError(insts.ErrEncode))
		})
	})

	Describe("three registers", func() {
		It("should encode CLZ r1, r2", func() {
			Expect(word32(insts.Thumb32ThreeReg(0xFAB0F080, insts.R1, insts.R2, insts.R2))).
				To(Equal(uint32(0xFAB2F182)))
		})

		It("should encode ASRS.W r0, r1, r2", func() {
			Expect(word32(insts.Thumb32ThreeRegSF(0xFA40F000, insts.R0, insts.R1, insts.R2, true))).
				To(Equal(uint32(0xFA51F002)))
		})

		It("should combine the register and shifted-operand layouts", func() {
			w := word32(insts.Thumb32ThreeRegImm5ShiftSF(
				0xEB000000, insts.R8, insts.R9, insts.R10, 31, insts.ShiftASR, true))

			Expect(bits(w, 31, 21)).To(Equal(uint32(0xEB000000 >> 21)))
			Expect(bits(w, 20, 20)).To(Equal(uint32(1)))
			Expect(bits(w, 19, 16)).To(Equal(uint32(9)))
			Expect(bits(w, 14, 12)<<2 | bits(w, 7, 6)).To(Equal(uint32(31)))
			Expect(bits(w, 11, 8)).To(Equal(uint32(8)))
			Expect(bits(w, 5, 4)).To(Equal(uint32(0b10)))
			Expect(bits(w, 3, 0)).To(Equal(uint32(10)))
		})

		It("should accept high registers but not registers past r15", func() {
			Expect(insts.Thumb32ThreeReg(0xFAB0F080, insts.R15, insts.R14, insts.R13).Err()).NotTo(HaveOccurred())
			Expect(insts.Thumb32ThreeReg(0xFAB0F080, insts.R0, 16, insts.R0).Err()).
				To(MatchError(insts.ErrRegisterOutOfRange))
			Expect(insts.Thumb32TwoRegImm12(0xF2000000, 31, insts.R0, 0).Err()).
				To(MatchError(insts.ErrRegisterOutOfRange))
		})
	})

	Describe("bitfields", func() {
		It("should encode BFI r0, r1, #8, #4", func() {
			Expect(word32(insts.Thumb32Bitfield(0xF3600000, insts.R0, insts.R1, 8, 4))).
				To(Equal(uint32(0xF361200B)))
		})

		It("should encode BFC r2, #0, #16", func() {
			Expect(word32(insts.Thumb32BitfieldClear(0xF36F0000, insts.R2, 0, 16))).
				To(Equal(uint32(0xF36F020F)))
		})

		It("should accept a field reaching bit 31", func() {
			w := word32(insts.Thumb32Bitfield(0xF3600000, insts.R0, insts.R1, 31, 1))
			Expect(bits(w, 14, 12)<<2 | bits(w, 7, 6)).To(Equal(uint32(31)))
			Expect(bits(w, 4, 0)).To(Equal(uint32(31)))
		})

		It("should reject fields that do not fit a word", func() {
			Expect(insts.Thumb32Bitfield(0xF3600000, insts.R0, insts.R1, 0, 0).Err()).To(MatchError(insts.ErrEncode))
			Expect(insts.Thumb32Bitfield(0xF3600000, insts.R0, insts.R1, 30, 3).Err()).To(MatchError(insts.ErrEncode))
			Expect(insts.Thumb32Bitfield(0xF3600000, insts.R0, insts.R1, 32, 1).Err()).To(MatchError(insts.ErrEncode))
		})
	})
})

package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/thumbgen/insts"
)

var _ = Describe("ShiftType", func() {
	DescribeTable("shift codes",
		func(s insts.ShiftType, code uint32) {
			Expect(s.Code()).To(Equal(code))
		},
		Entry("LSL", insts.ShiftLSL, uint32(0b00)),
		Entry("LSR", insts.ShiftLSR, uint32(0b01)),
		Entry("ASR", insts.ShiftASR, uint32(0b10)),
		Entry("RRX", insts.ShiftRRX, uint32(0b11)),
		Entry("ROR", insts.ShiftROR, uint32(0b11)),
		Entry("NONE", insts.ShiftNone, uint32(0)),
	)

	Describe("ValidateShift", func() {
		It("should accept any amount for LSL, LSR and ASR", func() {
			for _, s := range []insts.ShiftType{insts.ShiftLSL, insts.ShiftLSR, insts.ShiftASR} {
				Expect(insts.ValidateShift(s, 0)).To(Succeed())
				Expect(insts.ValidateShift(s, 31)).To(Succeed())
			}
		})

		It("should only accept RRX without an amount", func() {
			Expect(insts.ValidateShift(insts.ShiftRRX, 0)).To(Succeed())
			Expect(insts.ValidateShift(insts.ShiftRRX, 1)).NotTo(Succeed())
		})

		It("should reject ROR #0, which the hardware reads as RRX", func() {
			Expect(insts.ValidateShift(insts.ShiftROR, 0)).NotTo(Succeed())
			Expect(insts.ValidateShift(insts.ShiftROR, 8)).To(Succeed())
		})

		It("should reject NONE in a shift field", func() {
			Expect(insts.ValidateShift(insts.ShiftNone, 0)).NotTo(Succeed())
		})
	})

	It("should print assembler names", func() {
		Expect(insts.ShiftASR.String()).To(Equal("asr"))
		Expect(insts.ShiftRRX.String()).To(Equal("rrx"))
	})

	It("should parse the names it prints", func() {
		for s := insts.ShiftLSL; s <= insts.ShiftNone; s++ {
			parsed, err := insts.ParseShift(s.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed).To(Equal(s))
		}

		parsed, err := insts.ParseShift("ROR")
		Expect(err).NotTo(HaveOccurred())
		Expect(parsed).To(Equal(insts.ShiftROR))

		_, err = insts.ParseShift("rol")
		Expect(err).To(HaveOccurred())
	})
})

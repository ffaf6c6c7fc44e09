package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/thumbgen/insts"
)

var _ = Describe("Register", func() {
	It("should treat r0-r7 as low registers", func() {
		for r := insts.R0; r <= insts.R7; r++ {
			Expect(r.IsLow()).To(BeTrue(), "%v", r)
		}
		for r := insts.R8; r <= insts.R15; r++ {
			Expect(r.IsLow()).To(BeFalse(), "%v", r)
		}
	})

	It("should only accept register numbers 0-15", func() {
		r, err := insts.NewRegister(15)
		Expect(err).NotTo(HaveOccurred())
		Expect(r).To(Equal(insts.PC))

		_, err = insts.NewRegister(16)
		Expect(err).To(MatchError(insts.ErrRegisterOutOfRange))

		_, err = insts.NewRegister(-1)
		Expect(err).To(MatchError(insts.ErrRegisterOutOfRange))

		Expect(insts.Register(16).Valid()).To(BeFalse())
	})

	DescribeTable("parsing register names",
		func(name string, want insts.Register) {
			r, err := insts.ParseRegister(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(r).To(Equal(want))
		},
		Entry("r0", "r0", insts.R0),
		Entry("upper case", "R7", insts.R7),
		Entry("r12", "r12", insts.R12),
		Entry("sp", "sp", insts.SP),
		Entry("lr", "LR", insts.LR),
		Entry("pc", "pc", insts.PC),
		Entry("r13 alias", "r13", insts.SP),
	)

	DescribeTable("rejecting bad register names",
		func(name string) {
			_, err := insts.ParseRegister(name)
			Expect(err).To(HaveOccurred())
		},
		Entry("empty", ""),
		Entry("no number", "r"),
		Entry("too high", "r16"),
		Entry("not a register", "x3"),
	)

	It("should print assembler names", func() {
		Expect(insts.R3.String()).To(Equal("r3"))
		Expect(insts.R12.String()).To(Equal("r12"))
		Expect(insts.SP.String()).To(Equal("sp"))
		Expect(insts.LR.String()).To(Equal("lr"))
		Expect(insts.PC.String()).To(Equal("pc"))
		Expect(insts.Register(20).String()).To(Equal("Register(20)"))
	})
})

var _ = Describe("Cond", func() {
	It("should place the condition in the 16-bit branch", func() {
		Expect(insts.CondEQ.Thumb16Branch()).To(Equal(uint16(0xD000)))
		Expect(insts.CondNE.Thumb16Branch()).To(Equal(uint16(0xD100)))
		Expect(insts.CondLE.Thumb16Branch()).To(Equal(uint16(0xDD00)))
	})

	It("should place the condition in the 32-bit branch", func() {
		Expect(insts.CondEQ.Thumb32Branch()).To(Equal(uint32(0xF0008000)))
		Expect(insts.CondNE.Thumb32Branch()).To(Equal(uint32(0xF0408000)))
		Expect(insts.CondLE.Thumb32Branch()).To(Equal(uint32(0xF3408000)))
	})

	It("should print assembler suffixes", func() {
		Expect(insts.CondHI.String()).To(Equal("hi"))
		Expect(insts.CondAL.String()).To(Equal("al"))
	})
})

package mnemonic_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/thumbgen/insts"
	"github.com/sarchlab/thumbgen/mnemonic"
)

var _ = Describe("Bindings", func() {
	It("should assemble the mov/mov/add example", func() {
		Expect(word16(mnemonic.M0MovImm(insts.R0, 2))).To(Equal(uint16(0x2002)))
		Expect(word16(mnemonic.M0MovImm(insts.R1, 3))).To(Equal(uint16(0x2103)))
		Expect(word16(mnemonic.M0AddLow(insts.R2, insts.R1, insts.R0))).To(Equal(uint16(0x180A)))
	})

	It("should encode 32-bit forms", func() {
		Expect(word32(mnemonic.M0Isb())).To(Equal(uint32(0xF3BF8F6F)))
		Expect(word32(mnemonic.M3Clrex())).To(Equal(uint32(0xF3BF8F2F)))
		Expect(word32(mnemonic.M3Bfi(insts.R0, insts.R1, 8, 4))).To(Equal(uint32(0xF361200B)))
		Expect(word32(mnemonic.M3Beq(0))).To(Equal(uint32(0xF0008000)))
		Expect(word32(mnemonic.M3AndImm(insts.R1, insts.R2, 0xFF, false))).To(Equal(uint32(0xF00201FF)))
	})

	It("should leave errors in the opcode", func() {
		Expect(errorKind(mnemonic.M0AdcLow(insts.R9, insts.R0))).To(Equal(insts.RegisterOutOfRange))
		Expect(errorKind(mnemonic.M3B(3))).To(Equal(insts.EncodeError))
	})

	Describe("binding a custom table", func() {
		var t *mnemonic.Table

		BeforeEach(func() {
			var err error
			t, err = mnemonic.NewTable([]mnemonic.Entry{
				{Mnemonic: "movs", Opcode: 0x2000, Format: insts.FormatRegImm8},
				{Mnemonic: "svc", Opcode: 0xDF00, Format: insts.FormatImm8},
				{Mnemonic: "bl", Opcode: 0xF000D000, Format: insts.FormatBranch},
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should bind by format", func() {
			movs, err := t.BindRegImm8("movs")
			Expect(err).NotTo(HaveOccurred())
			Expect(word16(movs(insts.R7, 0x42))).To(Equal(uint16(0x2742)))

			svc, err := t.BindImm("svc")
			Expect(err).NotTo(HaveOccurred())
			Expect(word16(svc(0x1AB))).To(Equal(uint16(0xDFAB)))

			bl, err := t.BindBranch("bl")
			Expect(err).NotTo(HaveOccurred())
			Expect(bl(2)).To(Equal(mnemonic.M0Bl(2)))
		})

		It("should refuse a mnemonic of another format", func() {
			_, err := t.BindTwoLow("movs")
			Expect(err).To(MatchError(mnemonic.ErrFormatMismatch))

			_, err = t.BindImm("movs")
			Expect(err).To(MatchError(mnemonic.ErrFormatMismatch))

			_, err = t.BindNoOperand("bl")
			Expect(err).To(MatchError(mnemonic.ErrFormatMismatch))

			_, err = t.BindBranch("svc")
			Expect(err).To(MatchError(mnemonic.ErrFormatMismatch))
		})

		It("should refuse an unknown mnemonic", func() {
			_, err := t.BindThreeReg("clz")
			Expect(err).To(MatchError(mnemonic.ErrUnknownMnemonic))
		})
	})
})

package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/thumbgen/insts"
)

const (
	baseBW   = 0xF0009000 // B.W
	baseBL   = 0xF000D000 // BL
	baseBEQW = 0xF0008000 // BEQ.W
)

// branchFields are the displacement fields of a 32-bit branch.
type branchFields struct {
	s, j1, j2, imm10, imm11 uint32
}

func splitBranch(op insts.Opcode) branchFields {
	GinkgoHelper()
	w := word32(op)
	return branchFields{
		s:     bits(w, 26, 26),
		j1:    bits(w, 13, 13),
		j2:    bits(w, 11, 11),
		imm10: bits(w, 25, 16),
		imm11: bits(w, 10, 0),
	}
}

// decodeBranch reassembles a B.W/BL displacement:
// I1 = NOT(J1 EOR S), I2 = NOT(J2 EOR S), imm32 = SignExtend(S:I1:I2:imm10:imm11:0).
func decodeBranch(f branchFields) int32 {
	i1 := ^(f.j1 ^ f.s) & 0x1
	i2 := ^(f.j2 ^ f.s) & 0x1
	imm32 := f.s<<24 | i1<<23 | i2<<22 | f.imm10<<12 | f.imm11<<1
	return int32(imm32<<7) >> 7
}

// decodeCondBranch reassembles a B<cond>.W displacement:
// imm32 = SignExtend(S:J2:J1:imm6:imm11:0).
func decodeCondBranch(f branchFields) int32 {
	imm6 := f.imm10 & 0x3F
	imm32 := f.s<<20 | f.j2<<19 | f.j1<<18 | imm6<<12 | f.imm11<<1
	return int32(imm32<<11) >> 11
}

var _ = Describe("Branch displacements", func() {
	Describe("Thumb32Branch", func() {
		DescribeTable("round trip",
			func(disp int32) {
				f := splitBranch(insts.Thumb32Branch(baseBW, disp))
				Expect(decodeBranch(f)).To(Equal(disp))
			},
			Entry("-16", int32(-16)),
			Entry("0", int32(0)),
			Entry("16", int32(16)),
			Entry("4094", int32(4094)),
			Entry("-4096", int32(-4096)),
			Entry("largest forward", int32(insts.BranchRange-2)),
			Entry("largest backward", int32(-insts.BranchRange)),
			Entry("bit 21 set", int32(0x200000)),
		)

		It("should derive J1 and J2 from S and the I bits", func() {
			for _, disp := range []int32{-16, 0, 16, 4094, -4096} {
				d := uint32(disp)
				s, i1, i2 := d>>25&1, d>>24&1, d>>23&1

				f := splitBranch(insts.Thumb32Branch(baseBL, disp))
				Expect(f.s).To(Equal(s))
				Expect(f.j1 == 1).To(Equal(s == i1))
				Expect(f.j2 == 1).To(Equal(s == i2))
				Expect(f.imm10).To(Equal(d >> 12 & 0x3FF))
				Expect(f.imm11).To(Equal(d >> 1 & 0x7FF))
			}
		})

		It("should encode BL to the next instruction", func() {
			Expect(word32(insts.Thumb32Branch(baseBL, 0))).To(Equal(uint32(0xF000F800)))
		})

		It("should encode B.W to itself", func() {
			Expect(word32(insts.Thumb32Branch(baseBW, -4))).To(Equal(uint32(0xF7FFBFFE)))
		})

		It("should reject odd displacements", func() {
			Expect(insts.Thumb32Branch(baseBW, 3).Err()).To(MatchError(insts.ErrEncode))
		})

		It("should reject displacements out of range", func() {
			Expect(insts.Thumb32Branch(baseBW, insts.BranchRange).Err()).To(MatchError(insts.ErrEncode))
			Expect(insts.Thumb32Branch(baseBW, -insts.BranchRange-2).Err()).To(MatchError(insts.ErrEncode))
		})
	})

	Describe("Thumb32CondBranch", func() {
		DescribeTable("round trip",
			func(disp int32) {
				f := splitBranch(insts.Thumb32CondBranch(baseBEQW, disp))
				Expect(decodeCondBranch(f)).To(Equal(disp))
			},
			Entry("-16", int32(-16)),
			Entry("0", int32(0)),
			Entry("16", int32(16)),
			Entry("4094", int32(4094)),
			Entry("-4096", int32(-4096)),
			Entry("largest forward", int32(insts.CondBranchRange-2)),
			Entry("largest backward", int32(-insts.CondBranchRange)),
		)

		It("should carry the raw displacement bits in J1 and J2", func() {
			for _, disp := range []int32{-16, 0, 16, 4094, -4096} {
				d := uint32(disp)

				f := splitBranch(insts.Thumb32CondBranch(baseBEQW, disp))
				Expect(f.s).To(Equal(d >> 25 & 1))
				Expect(f.j1).To(Equal(d >> 24 & 1))
				Expect(f.j2).To(Equal(d >> 23 & 1))
				Expect(f.imm11).To(Equal(d >> 1 & 0x7FF))
			}
		})

		It("should differ from the unconditional form for forward branches", func() {
			cond := splitBranch(insts.Thumb32CondBranch(baseBEQW, 16))
			uncond := splitBranch(insts.Thumb32Branch(baseBW, 16))

			Expect(cond.j1).To(BeZero())
			Expect(cond.j2).To(BeZero())
			Expect(uncond.j1).To(Equal(uint32(1)))
			Expect(uncond.j2).To(Equal(uint32(1)))
		})

		It("should keep the condition field of the base", func() {
			for _, c := range []insts.Cond{insts.CondEQ, insts.CondNE, insts.CondGE, insts.CondLE} {
				for _, disp := range []int32{-4096, -2, 0, 2, 4094} {
					w := word32(insts.Thumb32CondBranch(c.Thumb32Branch(), disp))
					Expect(bits(w, 25, 22)).To(Equal(uint32(c)), "%v %d", c, disp)
				}
			}
		})

		It("should encode BNE.W back by 4", func() {
			Expect(word32(insts.Thumb32CondBranch(insts.CondNE.Thumb32Branch(), -4))).
				To(Equal(uint32(0xF47FAFFE)))
		})

		It("should reject odd or out-of-range displacements", func() {
			Expect(insts.Thumb32CondBranch(baseBEQW, -1).Err()).To(MatchError(insts.ErrEncode))
			Expect(insts.Thumb32CondBranch(baseBEQW, insts.CondBranchRange).Err()).To(MatchError(insts.ErrEncode))
			Expect(insts.Thumb32CondBranch(baseBEQW, -insts.CondBranchRange-2).Err()).To(MatchError(insts.ErrEncode))
		})
	})
})

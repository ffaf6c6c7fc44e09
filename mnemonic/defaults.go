package mnemonic

import (
	"fmt"

	"github.com/sarchlab/thumbgen/insts"
)

// Mnemonic naming: m0_ forms exist on every Thumb core, m3_ forms need Thumb-2.
// The suffix names the operand shape (_low, _any, _imm8, ...).

func e16(name string, opcode uint16, f insts.Format) Entry {
	return Entry{Mnemonic: name, Opcode: uint32(opcode), Format: f}
}

func e32(name string, opcode uint32, f insts.Format) Entry {
	return Entry{Mnemonic: name, Opcode: opcode, Format: f}
}

// thumb16Entries holds the 16-bit instruction forms.
var thumb16Entries = []Entry{
	e16("m0_adc_low", 0x4140, insts.FormatTwoLow),
	e16("m0_add_imm3", 0x1C00, insts.FormatTwoLowImm3),
	e16("m0_add_imm8", 0x3000, insts.FormatRegImm8),
	e16("m0_add_low", 0x1800, insts.FormatThreeLow),
	e16("m0_add_any", 0x4400, insts.FormatTwoAny),
	e16("m0_add_sp_imm8", 0xA800, insts.FormatRegImm8),
	e16("m0_add_sp_imm7", 0xB000, insts.FormatImm7),
	e16("m0_and_low", 0x4000, insts.FormatTwoLow),
	e16("m0_asr_imm", 0x1000, insts.FormatRegImm5),
	e16("m0_asr_low", 0x4100, insts.FormatTwoLow),
	e16("m0_b_imm11", 0xE000, insts.FormatImm11),
	e16("m0_beq_imm8", insts.CondEQ.Thumb16Branch(), insts.FormatImm8),
	e16("m0_bne_imm8", insts.CondNE.Thumb16Branch(), insts.FormatImm8),
	e16("m0_bcs_imm8", insts.CondCS.Thumb16Branch(), insts.FormatImm8),
	e16("m0_bcc_imm8", insts.CondCC.Thumb16Branch(), insts.FormatImm8),
	e16("m0_bmi_imm8", insts.CondMI.Thumb16Branch(), insts.FormatImm8),
	e16("m0_bpl_imm8", insts.CondPL.Thumb16Branch(), insts.FormatImm8),
	e16("m0_bvs_imm8", insts.CondVS.Thumb16Branch(), insts.FormatImm8),
	e16("m0_bvc_imm8", insts.CondVC.Thumb16Branch(), insts.FormatImm8),
	e16("m0_bhi_imm8", insts.CondHI.Thumb16Branch(), insts.FormatImm8),
	e16("m0_bls_imm8", insts.CondLS.Thumb16Branch(), insts.FormatImm8),
	e16("m0_bge_imm8", insts.CondGE.Thumb16Branch(), insts.FormatImm8),
	e16("m0_blt_imm8", insts.CondLT.Thumb16Branch(), insts.FormatImm8),
	e16("m0_bgt_imm8", insts.CondGT.Thumb16Branch(), insts.FormatImm8),
	e16("m0_ble_imm8", insts.CondLE.Thumb16Branch(), insts.FormatImm8),
	e16("m0_bic_low", 0x4380, insts.FormatTwoLow),
	e16("m0_bkpt_imm8", 0xBE00, insts.FormatImm8),
	e16("m0_blx_any", 0x4780, insts.FormatOneAny),
	e16("m0_bx_any", 0x4700, insts.FormatOneAny),
	e16("m0_cbnz_f_imm5", 0xBB00, insts.FormatLowImm5),
	e16("m0_cbnz_n_imm5", 0xB900, insts.FormatLowImm5),
	e16("m0_cbz_f_imm5", 0xB300, insts.FormatLowImm5),
	e16("m0_cbz_n_imm5", 0xB100, insts.FormatLowImm5),
	e16("m0_cmn_low", 0x42C0, insts.FormatTwoLow),
	e16("m0_cmp_imm8", 0x2800, insts.FormatRegImm8),
	e16("m0_cmp_low", 0x4280, insts.FormatTwoLow),
	e16("m0_cmp_any", 0x4500, insts.FormatTwoAny),
	e16("m0_eor_low", 0x4040, insts.FormatTwoLow),
	e16("m0_ldr_imm5", 0x6800, insts.FormatRegImm5),
	e16("m0_ldr_imm8", 0x9800, insts.FormatRegImm8),
	e16("m0_ldr_lit", 0x4800, insts.FormatRegImm8),
	e16("m0_ldr_low", 0x5800, insts.FormatThreeLow),
	e16("m0_ldrb_imm5", 0x7800, insts.FormatRegImm5),
	e16("m0_ldrb_low", 0x5C00, insts.FormatThreeLow),
	e16("m0_ldrh_imm5", 0x8800, insts.FormatRegImm5),
	e16("m0_ldrh_low", 0x5A00, insts.FormatThreeLow),
	e16("m0_ldrsb_low", 0x5600, insts.FormatThreeLow),
	e16("m0_ldrsh_low", 0x5E00, insts.FormatThreeLow),
	e16("m0_lsl_imm5", 0x0000, insts.FormatRegImm5),
	e16("m0_lsl_low", 0x4080, insts.FormatTwoLow),
	e16("m0_lsr_imm5", 0x0800, insts.FormatRegImm5),
	e16("m0_lsr_low", 0x40C0, insts.FormatTwoLow),
	e16("m0_mov_imm", 0x2000, insts.FormatRegImm8),
	e16("m0_mov_any", 0x4600, insts.FormatTwoAny),
	e16("m0_mov_low", 0x0000, insts.FormatTwoLow),
	e16("m0_mul_low", 0x4340, insts.FormatTwoLow),
	e16("m0_mvn_low", 0x43C0, insts.FormatTwoLow),
	e16("m0_nop", 0xBF00, insts.FormatNoOperand),
	e16("m0_orr_low", 0x4300, insts.FormatTwoLow),
	e16("m0_pop", 0xBC00, insts.FormatImm8),
	e16("m0_pop_pc", 0xBD00, insts.FormatImm8),
	e16("m0_push", 0xB400, insts.FormatImm8),
	e16("m0_push_lr", 0xB500, insts.FormatImm8),
	e16("m0_rev_low", 0xBA00, insts.FormatTwoLow),
	e16("m0_rev16_low", 0xBA40, insts.FormatTwoLow),
	e16("m0_revsh_low", 0xBAC0, insts.FormatTwoLow),
	e16("m0_ror_low", 0x41C0, insts.FormatTwoLow),
	e16("m0_rsb_low", 0x4240, insts.FormatTwoLow),
	e16("m0_sbc_low", 0x4180, insts.FormatTwoLow),
	e16("m0_sev", 0xBF40, insts.FormatNoOperand),
	e16("m0_str_imm5", 0x6000, insts.FormatRegImm5),
	e16("m0_str_imm8", 0x9000, insts.FormatRegImm8),
	e16("m0_str_low", 0x5000, insts.FormatThreeLow),
	e16("m0_strb_imm5", 0x7000, insts.FormatRegImm5),
	e16("m0_strb_low", 0x5400, insts.FormatThreeLow),
	e16("m0_strh_imm5", 0x8000, insts.FormatRegImm5),
	e16("m0_strh_low", 0x5200, insts.FormatThreeLow),
	e16("m0_sub_low", 0x1A00, insts.FormatThreeLow),
	e16("m0_sub_imm3", 0x1E00, insts.FormatTwoLowImm3),
	e16("m0_sub_imm8", 0x3800, insts.FormatRegImm8),
	e16("m0_sub_sp_imm", 0xB080, insts.FormatImm7),
	e16("m0_svc_imm8", 0xDF00, insts.FormatImm8),
	e16("m0_sxtb_low", 0xB240, insts.FormatTwoLow),
	e16("m0_sxth_low", 0xB200, insts.FormatTwoLow),
	e16("m0_tst_low", 0x4200, insts.FormatTwoLow),
	e16("m0_udf_imm8", 0xDE00, insts.FormatImm8),
	e16("m0_uxtb_low", 0xB2C0, insts.FormatTwoLow),
	e16("m0_uxth_low", 0xB280, insts.FormatTwoLow),
	e16("m0_wfe", 0xBF20, insts.FormatNoOperand),
	e16("m0_wfi", 0xBF30, insts.FormatNoOperand),
	e16("m0_yield", 0xBF10, insts.FormatNoOperand),
}

// thumb32Entries holds the 32-bit instruction forms.
var thumb32Entries = []Entry{
	e32("m0_dsb", 0xF3BF8F4F, insts.FormatNoOperand32),
	e32("m0_dmb", 0xF3BF8F5F, insts.FormatNoOperand32),
	e32("m0_isb", 0xF3BF8F6F, insts.FormatNoOperand32),
	e32("m0_bl", 0xF000D000, insts.FormatBranch),
	e32("m3_adc_imm", 0xF1400000, insts.FormatTwoRegImm12SF),
	e32("m3_adc_any", 0xEB400000, insts.FormatThreeRegImm5ShiftSF),
	e32("m3_add_const", 0xF1000000, insts.FormatTwoRegImm12SF),
	e32("m3_add_imm", 0xF2000000, insts.FormatTwoRegImm12),
	e32("m3_add_any", 0xEB000000, insts.FormatThreeRegImm5ShiftSF),
	e32("m3_add_sp_imm", 0xEB0D0000, insts.FormatTwoRegImm5ShiftSF),
	e32("m3_add_pc_imm", 0xF20F0000, insts.FormatOneRegImm12),
	e32("m3_sub_pc_imm", 0xF2AF0000, insts.FormatOneRegImm12),
	e32("m3_and_imm", 0xF0000000, insts.FormatTwoRegImm12SF),
	e32("m3_and_any", 0xEA000000, insts.FormatThreeRegImm5ShiftSF),
	e32("m3_asr_imm", 0xEA4F0020, insts.FormatTwoRegImm5SF),
	e32("m3_asr_any", 0xFA40F000, insts.FormatThreeRegSF),
	e32("m3_beq", insts.CondEQ.Thumb32Branch(), insts.FormatCondBranch),
	e32("m3_bne", insts.CondNE.Thumb32Branch(), insts.FormatCondBranch),
	e32("m3_bcs", insts.CondCS.Thumb32Branch(), insts.FormatCondBranch),
	e32("m3_bcc", insts.CondCC.Thumb32Branch(), insts.FormatCondBranch),
	e32("m3_bmi", insts.CondMI.Thumb32Branch(), insts.FormatCondBranch),
	e32("m3_bpl", insts.CondPL.Thumb32Branch(), insts.FormatCondBranch),
	e32("m3_bvs", insts.CondVS.Thumb32Branch(), insts.FormatCondBranch),
	e32("m3_bvc", insts.CondVC.Thumb32Branch(), insts.FormatCondBranch),
	e32("m3_bhi", insts.CondHI.Thumb32Branch(), insts.FormatCondBranch),
	e32("m3_bls", insts.CondLS.Thumb32Branch(), insts.FormatCondBranch),
	e32("m3_bge", insts.CondGE.Thumb32Branch(), insts.FormatCondBranch),
	e32("m3_blt", insts.CondLT.Thumb32Branch(), insts.FormatCondBranch),
	e32("m3_bgt", insts.CondGT.Thumb32Branch(), insts.FormatCondBranch),
	e32("m3_ble", insts.CondLE.Thumb32Branch(), insts.FormatCondBranch),
	e32("m3_b", 0xF0009000, insts.FormatBranch),
	e32("m3_bfc", 0xF36F0000, insts.FormatBitfieldClear),
	e32("m3_bfi", 0xF3600000, insts.FormatBitfield),
	e32("m3_bic_imm", 0xF0200000, insts.FormatTwoRegImm12SF),
	e32("m3_bic_any", 0xEA200000, insts.FormatThreeRegImm5ShiftSF),
	e32("m3_clrex", 0xF3BF8F2F, insts.FormatNoOperand32),
	e32("m3_clz", 0xFAB0F080, insts.FormatThreeReg),
	e32("m3_mov_shift", 0xEA4F0000, insts.FormatTwoRegImm5Shift),
}

var defaultTable = mustNewTable(append(append([]Entry{}, thumb16Entries...), thumb32Entries...))

func mustNewTable(entries []Entry) *Table {
	t, err := NewTable(entries)
	if err != nil {
		panic(fmt.Sprintf("mnemonic: built-in table: %v", err))
	}
	return t
}

// Default returns the built-in table. It is shared and must not be modified.
func Default() *Table {
	return defaultTable
}

// Lookup finds mnemonic in the built-in table.
func Lookup(mnemonic string) (Entry, error) {
	e, ok := defaultTable.Lookup(mnemonic)
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownMnemonic, mnemonic)
	}
	return e, nil
}

// Encode encodes ops for mnemonic using the built-in table.
func Encode(mnemonic string, ops Operands) (insts.Opcode, error) {
	return defaultTable.Encode(mnemonic, ops)
}

package mnemonic

// Encoders for the built-in table, one per mnemonic.
var (
	// 16-bit
	M0AdcLow    = must(defaultTable.BindTwoLow("m0_adc_low"))
	M0AddImm3   = must(defaultTable.BindTwoLowImm3("m0_add_imm3"))
	M0AddImm8   = must(defaultTable.BindRegImm8("m0_add_imm8"))
	M0AddLow    = must(defaultTable.BindThreeLow("m0_add_low"))
	M0AddAny    = must(defaultTable.BindTwoAny("m0_add_any"))
	M0AddSPImm8 = must(defaultTable.BindRegImm8("m0_add_sp_imm8"))
	M0AddSPImm7 = must(defaultTable.BindImm("m0_add_sp_imm7"))
	M0AndLow    = must(defaultTable.BindTwoLow("m0_and_low"))
	M0AsrImm    = must(defaultTable.BindRegImm5("m0_asr_imm"))
	M0AsrLow    = must(defaultTable.BindTwoLow("m0_asr_low"))
	M0BImm11    = must(defaultTable.BindImm("m0_b_imm11"))
	M0BeqImm8   = must(defaultTable.BindImm("m0_beq_imm8"))
	M0BneImm8   = must(defaultTable.BindImm("m0_bne_imm8"))
	M0BcsImm8   = must(defaultTable.BindImm("m0_bcs_imm8"))
	M0BccImm8   = must(defaultTable.BindImm("m0_bcc_imm8"))
	M0BmiImm8   = must(defaultTable.BindImm("m0_bmi_imm8"))
	M0BplImm8   = must(defaultTable.BindImm("m0_bpl_imm8"))
	M0BvsImm8   = must(defaultTable.BindImm("m0_bvs_imm8"))
	M0BvcImm8   = must(defaultTable.BindImm("m0_bvc_imm8"))
	M0BhiImm8   = must(defaultTable.BindImm("m0_bhi_imm8"))
	M0BlsImm8   = must(defaultTable.BindImm("m0_bls_imm8"))
	M0BgeImm8   = must(defaultTable.BindImm("m0_bge_imm8"))
	M0BltImm8   = must(defaultTable.BindImm("m0_blt_imm8"))
	M0BgtImm8   = must(defaultTable.BindImm("m0_bgt_imm8"))
	M0BleImm8   = must(defaultTable.BindImm("m0_ble_imm8"))
	M0BicLow    = must(defaultTable.BindTwoLow("m0_bic_low"))
	M0BkptImm8  = must(defaultTable.BindImm("m0_bkpt_imm8"))
	M0BlxAny    = must(defaultTable.BindOneAny("m0_blx_any"))
	M0BxAny     = must(defaultTable.BindOneAny("m0_bx_any"))
	M0CbnzFImm5 = must(defaultTable.BindLowImm5("m0_cbnz_f_imm5"))
	M0CbnzNImm5 = must(defaultTable.BindLowImm5("m0_cbnz_n_imm5"))
	M0CbzFImm5  = must(defaultTable.BindLowImm5("m0_cbz_f_imm5"))
	M0CbzNImm5  = must(defaultTable.BindLowImm5("m0_cbz_n_imm5"))
	M0CmnLow    = must(defaultTable.BindTwoLow("m0_cmn_low"))
	M0CmpImm8   = must(defaultTable.BindRegImm8("m0_cmp_imm8"))
	M0CmpLow    = must(defaultTable.BindTwoLow("m0_cmp_low"))
	M0CmpAny    = must(defaultTable.BindTwoAny("m0_cmp_any"))
	M0EorLow    = must(defaultTable.BindTwoLow("m0_eor_low"))
	M0LdrImm5   = must(defaultTable.BindRegImm5("m0_ldr_imm5"))
	M0LdrImm8   = must(defaultTable.BindRegImm8("m0_ldr_imm8"))
	M0LdrLit    = must(defaultTable.BindRegImm8("m0_ldr_lit"))
	M0LdrLow    = must(defaultTable.BindThreeLow("m0_ldr_low"))
	M0LdrbImm5  = must(defaultTable.BindRegImm5("m0_ldrb_imm5"))
	M0LdrbLow   = must(defaultTable.BindThreeLow("m0_ldrb_low"))
	M0LdrhImm5  = must(defaultTable.BindRegImm5("m0_ldrh_imm5"))
	M0LdrhLow   = must(defaultTable.BindThreeLow("m0_ldrh_low"))
	M0LdrsbLow  = must(defaultTable.BindThreeLow("m0_ldrsb_low"))
	M0LdrshLow  = must(defaultTable.BindThreeLow("m0_ldrsh_low"))
	M0LslImm5   = must(defaultTable.BindRegImm5("m0_lsl_imm5"))
	M0LslLow    = must(defaultTable.BindTwoLow("m0_lsl_low"))
	M0LsrImm5   = must(defaultTable.BindRegImm5("m0_lsr_imm5"))
	M0LsrLow    = must(defaultTable.BindTwoLow("m0_lsr_low"))
	M0MovImm    = must(defaultTable.BindRegImm8("m0_mov_imm"))
	M0MovAny    = must(defaultTable.BindTwoAny("m0_mov_any"))
	M0MovLow    = must(defaultTable.BindTwoLow("m0_mov_low"))
	M0MulLow    = must(defaultTable.BindTwoLow("m0_mul_low"))
	M0MvnLow    = must(defaultTable.BindTwoLow("m0_mvn_low"))
	M0Nop       = must(defaultTable.BindNoOperand("m0_nop"))
	M0OrrLow    = must(defaultTable.BindTwoLow("m0_orr_low"))
	M0Pop       = must(defaultTable.BindImm("m0_pop"))
	M0PopPC     = must(defaultTable.BindImm("m0_pop_pc"))
	M0Push      = must(defaultTable.BindImm("m0_push"))
	M0PushLR    = must(defaultTable.BindImm("m0_push_lr"))
	M0RevLow    = must(defaultTable.BindTwoLow("m0_rev_low"))
	M0Rev16Low  = must(defaultTable.BindTwoLow("m0_rev16_low"))
	M0RevshLow  = must(defaultTable.BindTwoLow("m0_revsh_low"))
	M0RorLow    = must(defaultTable.BindTwoLow("m0_ror_low"))
	M0RsbLow    = must(defaultTable.BindTwoLow("m0_rsb_low"))
	M0SbcLow    = must(defaultTable.BindTwoLow("m0_sbc_low"))
	M0Sev       = must(defaultTable.BindNoOperand("m0_sev"))
	M0StrImm5   = must(defaultTable.BindRegImm5("m0_str_imm5"))
	M0StrImm8   = must(defaultTable.BindRegImm8("m0_str_imm8"))
	M0StrLow    = must(defaultTable.BindThreeLow("m0_str_low"))
	M0StrbImm5  = must(defaultTable.BindRegImm5("m0_strb_imm5"))
	M0StrbLow   = must(defaultTable.BindThreeLow("m0_strb_low"))
	M0StrhImm5  = must(defaultTable.BindRegImm5("m0_strh_imm5"))
	M0StrhLow   = must(defaultTable.BindThreeLow("m0_strh_low"))
	M0SubLow    = must(defaultTable.BindThreeLow("m0_sub_low"))
	M0SubImm3   = must(defaultTable.BindTwoLowImm3("m0_sub_imm3"))
	M0SubImm8   = must(defaultTable.BindRegImm8("m0_sub_imm8"))
	M0SubSPImm  = must(defaultTable.BindImm("m0_sub_sp_imm"))
	M0SvcImm8   = must(defaultTable.BindImm("m0_svc_imm8"))
	M0SxtbLow   = must(defaultTable.BindTwoLow("m0_sxtb_low"))
	M0SxthLow   = must(defaultTable.BindTwoLow("m0_sxth_low"))
	M0TstLow    = must(defaultTable.BindTwoLow("m0_tst_low"))
	M0UdfImm8   = must(defaultTable.BindImm("m0_udf_imm8"))
	M0UxtbLow   = must(defaultTable.BindTwoLow("m0_uxtb_low"))
	M0UxthLow   = must(defaultTable.BindTwoLow("m0_uxth_low"))
	M0Wfe       = must(defaultTable.BindNoOperand("m0_wfe"))
	M0Wfi       = must(defaultTable.BindNoOperand("m0_wfi"))
	M0Yield     = must(defaultTable.BindNoOperand("m0_yield"))

	// 32-bit
	M0Dsb      = must(defaultTable.BindNoOperand("m0_dsb"))
	M0Dmb      = must(defaultTable.BindNoOperand("m0_dmb"))
	M0Isb      = must(defaultTable.BindNoOperand("m0_isb"))
	M0Bl       = must(defaultTable.BindBranch("m0_bl"))
	M3AdcImm   = must(defaultTable.BindTwoRegImm12SF("m3_adc_imm"))
	M3AdcAny   = must(defaultTable.BindThreeRegImm5ShiftSF("m3_adc_any"))
	M3AddConst = must(defaultTable.BindTwoRegImm12SF("m3_add_const"))
	M3AddImm   = must(defaultTable.BindTwoRegImm12("m3_add_imm"))
	M3AddAny   = must(defaultTable.BindThreeRegImm5ShiftSF("m3_add_any"))
	M3AddSPImm = must(defaultTable.BindTwoRegImm5ShiftSF("m3_add_sp_imm"))
	M3AddPCImm = must(defaultTable.BindOneRegImm12("m3_add_pc_imm"))
	M3SubPCImm = must(defaultTable.BindOneRegImm12("m3_sub_pc_imm"))
	M3AndImm   = must(defaultTable.BindTwoRegImm12SF("m3_and_imm"))
	M3AndAny   = must(defaultTable.BindThreeRegImm5ShiftSF("m3_and_any"))
	M3AsrImm   = must(defaultTable.BindTwoRegImm5SF("m3_asr_imm"))
	M3AsrAny   = must(defaultTable.BindThreeRegSF("m3_asr_any"))
	M3Beq      = must(defaultTable.BindBranch("m3_beq"))
	M3Bne      = must(defaultTable.BindBranch("m3_bne"))
	M3Bcs      = must(defaultTable.BindBranch("m3_bcs"))
	M3Bcc      = must(defaultTable.BindBranch("m3_bcc"))
	M3Bmi      = must(defaultTable.BindBranch("m3_bmi"))
	M3Bpl      = must(defaultTable.BindBranch("m3_bpl"))
	M3Bvs      = must(defaultTable.BindBranch("m3_bvs"))
	M3Bvc      = must(defaultTable.BindBranch("m3_bvc"))
	M3Bhi      = must(defaultTable.BindBranch("m3_bhi"))
	M3Bls      = must(defaultTable.BindBranch("m3_bls"))
	M3Bge      = must(defaultTable.BindBranch("m3_bge"))
	M3Blt      = must(defaultTable.BindBranch("m3_blt"))
	M3Bgt      = must(defaultTable.BindBranch("m3_bgt"))
	M3Ble      = must(defaultTable.BindBranch("m3_ble"))
	M3B        = must(defaultTable.BindBranch("m3_b"))
	M3Bfc      = must(defaultTable.BindBitfieldClear("m3_bfc"))
	M3Bfi      = must(defaultTable.BindBitfield("m3_bfi"))
	M3BicImm   = must(defaultTable.BindTwoRegImm12SF("m3_bic_imm"))
	M3BicAny   = must(defaultTable.BindThreeRegImm5ShiftSF("m3_bic_any"))
	M3Clrex    = must(defaultTable.BindNoOperand("m3_clrex"))
	M3Clz      = must(defaultTable.BindThreeReg("m3_clz"))
	M3MovShift = must(defaultTable.BindTwoRegImm5Shift("m3_mov_shift"))
)

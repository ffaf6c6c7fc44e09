package insts

// Branch displacement encoders.
//
// Displacements are signed byte offsets from the branch target base (PC + 4);
// bit 0 is implicitly zero and must be clear. Symbol resolution is the caller's
// job.

// Accepted displacement ranges, [-range, range).
//
// S, I1 and I2 are taken from bits 25, 24 and 23 of the displacement. Within
// these ranges those bits are copies of the sign, so the selection agrees with
// the architectural S:I1:I2 (B.W) and S:J2:J1 (B<cond>.W) positions and every
// accepted displacement decodes back to itself.
const (
	BranchRange     = 1 << 22
	CondBranchRange = 1 << 18
)

func checkDisplacement(disp int32, limit int32) (Opcode, bool) {
	if disp&1 != 0 {
		return fail(EncodeError, "branch displacement %d is odd", disp), false
	}
	if disp < -limit || disp >= limit {
		return fail(EncodeError, "branch displacement %d outside [%d, %d)", disp, -limit, limit), false
	}
	return Opcode{}, true
}

// Thumb32Branch encodes B.W and BL (encodings T4 and T1).
// Format: base | S [26] | imm10 [25:16] | J1 [13] | J2 [11] | imm11 [10:0]
//
// J1 = NOT(I1 XOR S), J2 = NOT(I2 XOR S).
func Thumb32Branch(base uint32, disp int32) Opcode {
	if op, ok := checkDisplacement(disp, BranchRange); !ok {
		return op
	}

	d := uint32(disp)
	s := (d >> 25) & 0x1
	i1 := (d >> 24) & 0x1
	i2 := (d >> 23) & 0x1
	j1 := ^(i1 ^ s) & 0x1
	j2 := ^(i2 ^ s) & 0x1
	imm10 := (d >> 12) & 0x3FF // bits [21:12]
	imm11 := (d >> 1) & 0x7FF  // bits [11:1]

	inst := base
	inst |= s << 26
	inst |= imm10 << 16
	inst |= j1 << 13
	inst |= j2 << 11
	inst |= imm11
	return thumb32(inst)
}

// Thumb32CondBranch encodes B<cond>.W (encoding T3). The condition is part of
// base, at bits [25:22].
// Format: base | S [26] | cond [25:22] | imm6 [21:16] | J1 [13] | J2 [11] | imm11 [10:0]
//
// J1 and J2 are the raw displacement bits, not combined with S. Only bits
// [17:12] of the displacement reach the upper halfword; above them sits cond.
func Thumb32CondBranch(base uint32, disp int32) Opcode {
	if op, ok := checkDisplacement(disp, CondBranchRange); !ok {
		return op
	}

	d := uint32(disp)
	s := (d >> 25) & 0x1
	j1 := (d >> 24) & 0x1
	j2 := (d >> 23) & 0x1
	imm6 := (d >> 12) & 0x3F  // bits [17:12]
	imm11 := (d >> 1) & 0x7FF // bits [11:1]

	inst := base
	inst |= s << 26
	inst |= imm6 << 16
	inst |= j1 << 13
	inst |= j2 << 11
	inst |= imm11
	return thumb32(inst)
}

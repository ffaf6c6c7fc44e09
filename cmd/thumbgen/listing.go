package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sarchlab/thumbgen/insts"
	"github.com/sarchlab/thumbgen/mnemonic"
	"github.com/sarchlab/thumbgen/program"
)

// instruction is one parsed listing line.
type instruction struct {
	line     int
	mnemonic string
	ops      mnemonic.Operands
}

// parseListing reads one instruction per line: a mnemonic followed by
// key=value operands, e.g. "m0_mov_imm rd=r0 imm=2". A bare "s" sets the
// flags bit. Blank lines and text after '#' are ignored.
func parseListing(r io.Reader) ([]instruction, error) {
	var prog []instruction

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++

		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		ops, err := parseOperands(fields[1:])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		prog = append(prog, instruction{
			line:     lineNum,
			mnemonic: fields[0],
			ops:      ops,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read listing: %w", err)
	}

	return prog, nil
}

func parseOperands(fields []string) (mnemonic.Operands, error) {
	var ops mnemonic.Operands

	for _, field := range fields {
		if field == "s" {
			ops.SetFlags = true
			continue
		}

		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return ops, fmt.Errorf("operand %q is not key=value", field)
		}

		var err error
		switch key {
		case "rd":
			ops.Rd, err = insts.ParseRegister(value)
		case "rn":
			ops.Rn, err = insts.ParseRegister(value)
		case "rm":
			ops.Rm, err = insts.ParseRegister(value)
		case "imm":
			var n uint64
			n, err = strconv.ParseUint(value, 0, 32)
			ops.Imm = uint32(n)
		case "shift":
			ops.Shift, err = insts.ParseShift(value)
		case "disp":
			var n int64
			n, err = strconv.ParseInt(value, 0, 32)
			ops.Displacement = int32(n)
		case "lsb":
			ops.Lsb, err = parseUint8(value)
		case "width":
			ops.Width, err = parseUint8(value)
		default:
			return ops, fmt.Errorf("unknown operand %q", key)
		}

		if err != nil {
			return ops, fmt.Errorf("operand %s: %w", key, err)
		}
	}

	return ops, nil
}

func parseUint8(value string) (uint8, error) {
	n, err := strconv.ParseUint(value, 0, 8)
	return uint8(n), err
}

// assemble encodes every instruction with table and appends it to seq. It
// stops at the first instruction that fails to encode or does not fit.
func assemble(table *mnemonic.Table, prog []instruction, seq *program.Sequence) ([]insts.Opcode, error) {
	opcodes := make([]insts.Opcode, 0, len(prog))

	for _, inst := range prog {
		op, err := table.Encode(inst.mnemonic, inst.ops)
		if err != nil {
			return opcodes, fmt.Errorf("line %d: %w", inst.line, err)
		}
		if err := seq.Append(op); err != nil {
			return opcodes, fmt.Errorf("line %d: %s: %w", inst.line, inst.mnemonic, err)
		}
		opcodes = append(opcodes, op)
	}

	return opcodes, nil
}

package mnemonic

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sarchlab/thumbgen/insts"
)

// LoadOptions controls table loading.
type LoadOptions struct {
	// Verbose prints every loaded entry and every duplicate base opcode.
	Verbose bool

	// Output receives verbose output. Defaults to os.Stderr.
	Output io.Writer
}

// record is the JSON form of an Entry. Opcodes may be written as numbers or as
// strings in any base strconv.ParseUint accepts with base 0 ("0x4140").
type record struct {
	Mnemonic string       `json:"mnemonic"`
	Opcode   opcodeValue  `json:"opcode"`
	Format   insts.Format `json:"format"`
}

type opcodeValue uint32

func (v *opcodeValue) UnmarshalJSON(data []byte) error {
	text := string(data)
	base := 10
	if len(data) > 0 && data[0] == '"' {
		unquoted, err := strconv.Unquote(text)
		if err != nil {
			return fmt.Errorf("invalid opcode %s: %w", text, err)
		}
		text = unquoted
		base = 0
	}

	n, err := strconv.ParseUint(text, base, 32)
	if err != nil {
		return fmt.Errorf("invalid opcode %s: %w", string(data), err)
	}
	*v = opcodeValue(n)
	return nil
}

func (v opcodeValue) MarshalJSON() ([]byte, error) {
	if v > 0xFFFF {
		return []byte(fmt.Sprintf(`"0x%08X"`, uint32(v))), nil
	}
	return []byte(fmt.Sprintf(`"0x%04X"`, uint32(v))), nil
}

// LoadTable reads a JSON array of {"mnemonic", "opcode", "format"} records.
func LoadTable(r io.Reader, opts LoadOptions) (*Table, error) {
	var records []record

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to parse opcode table: %w", err)
	}

	entries := make([]Entry, len(records))
	for i, rec := range records {
		entries[i] = Entry{
			Mnemonic: rec.Mnemonic,
			Opcode:   uint32(rec.Opcode),
			Format:   rec.Format,
		}
	}

	t, err := NewTable(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to build opcode table: %w", err)
	}

	if opts.Verbose {
		out := opts.Output
		if out == nil {
			out = os.Stderr
		}
		t.report(out)
	}

	return t, nil
}

// LoadTableFile loads a table from a JSON file.
func LoadTableFile(path string, opts LoadOptions) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open opcode table: %w", err)
	}
	defer f.Close()

	return LoadTable(f, opts)
}

func (t *Table) report(out io.Writer) {
	for _, e := range t.entries {
		fmt.Fprintf(out, "Loaded: %-16s 0x%08X %v\n", e.Mnemonic, e.Opcode, e.Format)
	}

	for _, d := range t.Duplicates() {
		fmt.Fprintf(out, "WARNING: opcodes at indices %d (%s) and %d (%s) are the same: 0x%08X\n",
			d.FirstIndex, d.First.Mnemonic, d.SecondIndex, d.Second.Mnemonic, d.First.Opcode)
	}
}

// WriteJSON writes the table in the format LoadTable reads.
func (t *Table) WriteJSON(w io.Writer) error {
	records := make([]record, len(t.entries))
	for i, e := range t.entries {
		records[i] = record{
			Mnemonic: e.Mnemonic,
			Opcode:   opcodeValue(e.Opcode),
			Format:   e.Format,
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize opcode table: %w", err)
	}
	data = append(data, '\n')

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write opcode table: %w", err)
	}
	return nil
}

// SaveTable writes the table to a JSON file.
func (t *Table) SaveTable(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create opcode table file: %w", err)
	}

	if err := t.WriteJSON(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

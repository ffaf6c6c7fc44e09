// Package mnemonic maps Thumb mnemonics to their base opcode and encoding format
// and dispatches encode requests to the matching packer in package insts.
//
// A Table is built from Entry records, either the built-in Default table or one
// loaded from JSON with LoadTable. Per-mnemonic functions such as M0MovImm are
// thin bindings over the default table.
package mnemonic

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sarchlab/thumbgen/insts"
)

// Table errors.
var (
	ErrUnknownMnemonic   = errors.New("unknown mnemonic")
	ErrFormatMismatch    = errors.New("format mismatch")
	ErrDuplicateMnemonic = errors.New("duplicate mnemonic")
	ErrInvalidEntry      = errors.New("invalid table entry")
)

// Entry is one opcode table record.
type Entry struct {
	// Mnemonic names the instruction form, e.g. "m0_add_low".
	Mnemonic string

	// Opcode holds the fixed bits with every operand field zero. 16-bit formats
	// use the low halfword only.
	Opcode uint32

	// Format selects the field packer.
	Format insts.Format
}

// Validate checks that the entry names a known format and that its opcode fits
// the format's width.
func (e Entry) Validate() error {
	if e.Mnemonic == "" {
		return fmt.Errorf("%w: empty mnemonic", ErrInvalidEntry)
	}
	if _, err := insts.ParseFormat(e.Format.String()); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidEntry, e.Mnemonic, err)
	}
	if !e.Format.Is32Bit() && e.Opcode > 0xFFFF {
		return fmt.Errorf("%w: %s: opcode 0x%X does not fit 16 bits",
			ErrInvalidEntry, e.Mnemonic, e.Opcode)
	}
	return nil
}

// Duplicate reports two entries that share a base opcode.
type Duplicate struct {
	First, Second Entry
	FirstIndex    int
	SecondIndex   int
}

// Table is an ordered, immutable set of entries indexed by mnemonic.
type Table struct {
	entries []Entry
	index   map[string]int
}

// NewTable validates entries and builds a table. Mnemonics must be unique.
func NewTable(entries []Entry) (*Table, error) {
	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if prev, ok := t.index[e.Mnemonic]; ok {
			return nil, fmt.Errorf("%w: %s at entries %d and %d",
				ErrDuplicateMnemonic, e.Mnemonic, prev, i)
		}
		t.index[e.Mnemonic] = len(t.entries)
		t.entries = append(t.entries, e)
	}

	return t, nil
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the entries in table order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Lookup returns the entry for a mnemonic.
func (t *Table) Lookup(mnemonic string) (Entry, bool) {
	i, ok := t.index[mnemonic]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Mnemonics returns every mnemonic in sorted order.
func (t *Table) Mnemonics() []string {
	names := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		names = append(names, e.Mnemonic)
	}
	sort.Strings(names)
	return names
}

// Duplicates returns every pair of entries with the same base opcode and width.
// Aliases such as MOVS Rd, Rm and LSLS Rd, Rm, #0 show up here.
func (t *Table) Duplicates() []Duplicate {
	var dups []Duplicate
	for i := 0; i < len(t.entries); i++ {
		for j := i + 1; j < len(t.entries); j++ {
			a, b := t.entries[i], t.entries[j]
			if a.Opcode == b.Opcode && a.Format.Is32Bit() == b.Format.Is32Bit() {
				dups = append(dups, Duplicate{
					First:       a,
					Second:      b,
					FirstIndex:  i,
					SecondIndex: j,
				})
			}
		}
	}
	return dups
}

// Encode looks up mnemonic and encodes ops with its format. The error is only
// set when the mnemonic is unknown; encoding failures are carried by the
// returned Opcode.
func (t *Table) Encode(mnemonic string, ops Operands) (insts.Opcode, error) {
	e, ok := t.Lookup(mnemonic)
	if !ok {
		return insts.Opcode{}, fmt.Errorf("%w: %q", ErrUnknownMnemonic, mnemonic)
	}
	return e.Encode(ops), nil
}

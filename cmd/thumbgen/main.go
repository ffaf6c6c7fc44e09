// Package main provides the thumbgen command.
// thumbgen encodes a listing of Thumb instructions into a flat binary image.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sarchlab/thumbgen/image"
	"github.com/sarchlab/thumbgen/mnemonic"
	"github.com/sarchlab/thumbgen/program"
)

var (
	tablePath  = flag.String("table", "", "Path to an opcode table JSON file (default: built-in table)")
	dumpTable  = flag.String("dump-table", "", "Write the opcode table as JSON to this path and exit")
	outputPath = flag.String("o", "out.bin", "Output binary path")
	capacity   = flag.Int("capacity", 1024, "Sequence capacity in halfwords")
	loadAddr   = flag.Uint64("base", image.DefaultLoadAddress, "Load address of the image")
	verbose    = flag.Bool("v", false, "Verbose output")
)

func main() {
	flag.Parse()

	table, err := loadTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading opcode table: %v\n", err)
		os.Exit(1)
	}

	if *dumpTable != "" {
		if err := table.SaveTable(*dumpTable); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing opcode table: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: thumbgen [options] <listing.txt>\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(table, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadTable() (*mnemonic.Table, error) {
	if *tablePath == "" {
		return mnemonic.Default(), nil
	}
	return mnemonic.LoadTableFile(*tablePath, mnemonic.LoadOptions{
		Verbose: *verbose,
		Output:  os.Stderr,
	})
}

func run(table *mnemonic.Table, listingPath string) error {
	f, err := os.Open(listingPath)
	if err != nil {
		return fmt.Errorf("failed to open listing: %w", err)
	}
	prog, err := parseListing(f)
	f.Close()
	if err != nil {
		return err
	}

	seq := program.NewSequence(*capacity)
	opcodes, err := assemble(table, prog, seq)
	if err != nil {
		return err
	}

	img := image.New(*loadAddr, uint64(seq.Cap())*2)
	if _, err := img.Load(img.Base(), seq); err != nil {
		return err
	}

	if *verbose {
		addr := img.Base()
		for i, op := range opcodes {
			fmt.Printf("0x%08X: %-9s %s\n", addr, op, prog[i].mnemonic)
			addr += uint64(op.Size()) * 2
		}
	}

	out, err := os.Create(*outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	n, err := img.WriteTo(out)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("failed to close output file: %w", cerr)
	}
	if err != nil {
		return err
	}

	if *verbose {
		fmt.Printf("Wrote %d bytes (%d halfwords) to %s\n", n, seq.Len(), *outputPath)
	}
	return nil
}

// Package main provides the entry point for thumbgen.
// thumbgen encodes ARM Thumb/Thumb-2 instructions into flat machine-code images.
//
// For the full CLI, use: go run ./cmd/thumbgen
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("thumbgen - ARM Thumb/Thumb-2 instruction encoder")
	fmt.Println("")
	fmt.Println("Usage: thumbgen [options] <listing.txt>")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -table       Path to an opcode table JSON file")
	fmt.Println("  -dump-table  Write the opcode table as JSON and exit")
	fmt.Println("  -o           Output binary path (default out.bin)")
	fmt.Println("  -base        Load address (default 0x20000000)")
	fmt.Println("  -v           Verbose output")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/thumbgen' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/thumbgen' instead.")
	}
}

// Package image models the target memory an encoded program is loaded into.
//
// An Image is a window of target address space starting at a base address and
// backed by an akita mem.Storage. Sequences are stored little-endian, the byte
// order of Cortex-M cores, and can be read back a halfword at a time.
package image

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/sarchlab/akita/v4/mem/mem"

	"github.com/sarchlab/thumbgen/program"
)

// DefaultLoadAddress is the start of SRAM on Cortex-M parts, where programs
// are placed when loaded through a debugger.
const DefaultLoadAddress uint64 = 0x20000000

// Image errors.
var (
	ErrOutOfRange = errors.New("address outside image")
	ErrUnaligned  = errors.New("address not halfword aligned")
)

// Image is a region of target memory.
type Image struct {
	base    uint64
	size    uint64
	storage *mem.Storage

	// end is one past the highest address written.
	end uint64
}

// New creates a zero-filled image covering [base, base+size).
func New(base, size uint64) *Image {
	return &Image{
		base:    base,
		size:    size,
		storage: mem.NewStorage(size),
		end:     base,
	}
}

// Base returns the first address of the image.
func (img *Image) Base() uint64 {
	return img.base
}

// Size returns the size of the image in bytes.
func (img *Image) Size() uint64 {
	return img.size
}

// End returns one past the highest address written so far.
func (img *Image) End() uint64 {
	return img.end
}

func (img *Image) offset(addr, n uint64) (uint64, error) {
	if addr < img.base || addr-img.base > img.size || n > img.size-(addr-img.base) {
		return 0, fmt.Errorf("%w: [0x%X, 0x%X) not in [0x%X, 0x%X)",
			ErrOutOfRange, addr, addr+n, img.base, img.base+img.size)
	}
	return addr - img.base, nil
}

// Write stores raw bytes at addr.
func (img *Image) Write(addr uint64, data []byte) error {
	off, err := img.offset(addr, uint64(len(data)))
	if err != nil {
		return err
	}

	if err := img.storage.Write(off, data); err != nil {
		return fmt.Errorf("failed to write image at 0x%X: %w", addr, err)
	}

	if end := addr + uint64(len(data)); end > img.end {
		img.end = end
	}
	return nil
}

// Read returns n bytes starting at addr.
func (img *Image) Read(addr, n uint64) ([]byte, error) {
	off, err := img.offset(addr, n)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return []byte{}, nil
	}

	data, err := img.storage.Read(off, n)
	if err != nil {
		return nil, fmt.Errorf("failed to read image at 0x%X: %w", addr, err)
	}
	return data, nil
}

// WriteHalfwords stores halfwords little-endian starting at addr.
func (img *Image) WriteHalfwords(addr uint64, words []uint16) error {
	if addr%2 != 0 {
		return fmt.Errorf("%w: 0x%X", ErrUnaligned, addr)
	}

	data := make([]byte, 0, len(words)*2)
	for _, w := range words {
		data = binary.LittleEndian.AppendUint16(data, w)
	}
	return img.Write(addr, data)
}

// Halfword reads the little-endian halfword at addr.
func (img *Image) Halfword(addr uint64) (uint16, error) {
	if addr%2 != 0 {
		return 0, fmt.Errorf("%w: 0x%X", ErrUnaligned, addr)
	}

	data, err := img.Read(addr, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(data), nil
}

// Load stores the written part of seq at addr and returns the address just
// past it, where the next sequence can go.
func (img *Image) Load(addr uint64, seq *program.Sequence) (uint64, error) {
	if addr%2 != 0 {
		return 0, fmt.Errorf("%w: 0x%X", ErrUnaligned, addr)
	}

	data := seq.Bytes(binary.LittleEndian)
	if err := img.Write(addr, data); err != nil {
		return 0, fmt.Errorf("failed to load sequence: %w", err)
	}
	return addr + uint64(len(data)), nil
}

// WriteTo writes the bytes from the base address up to End to w, the layout
// of a flat binary for a debugger's load command.
func (img *Image) WriteTo(w io.Writer) (int64, error) {
	data, err := img.Read(img.base, img.end-img.base)
	if err != nil {
		return 0, err
	}

	n, err := w.Write(data)
	if err != nil {
		return int64(n), fmt.Errorf("failed to write image: %w", err)
	}
	return int64(n), nil
}

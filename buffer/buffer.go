package buffer

import (
	"errors"
	"fmt"
)

// DefaultCapacity is the rune capacity used when Options.Capacity is zero.
const DefaultCapacity = 4096

var (
	// ErrCapacityExceeded reports a mutation that would grow the buffer past
	// its capacity.
	ErrCapacityExceeded = errors.New("buffer: capacity exceeded")

	// ErrOutOfRange reports a splice range outside [0, Len].
	ErrOutOfRange = errors.New("buffer: offset out of range")
)

type Options struct {
	Capacity int // default: DefaultCapacity
}

// Buffer is an owned rune sequence with a fixed maximum length.
type Buffer struct {
	text     []rune
	capacity int
	version  uint64
}

func New(opt Options) *Buffer {
	if opt.Capacity <= 0 {
		opt.Capacity = DefaultCapacity
	}
	return &Buffer{
		text:     make([]rune, 0, minInt(opt.Capacity, 256)),
		capacity: opt.Capacity,
	}
}

func (b *Buffer) Cap() int { return b.capacity }

func (b *Buffer) Len() int { return len(b.text) }

func (b *Buffer) Version() uint64 { return b.version }

// At returns the rune at offset, or 0 for offset == Len.
func (b *Buffer) At(offset int) rune {
	if offset < 0 || offset >= len(b.text) {
		return 0
	}
	return b.text[offset]
}

// Runes returns the current text without copying. Callers must not modify it
// and must not keep it across mutations.
func (b *Buffer) Runes() []rune { return b.text }

func (b *Buffer) Text() string { return string(b.text) }

// Splice deletes deleteCount runes at offset and inserts ins in their place.
//
// On error the buffer is left unchanged.
func (b *Buffer) Splice(offset, deleteCount int, ins []rune) error {
	n := len(b.text)
	if offset < 0 || deleteCount < 0 || offset > n || deleteCount > n-offset {
		return fmt.Errorf("%w: splice(%d, %d) on length %d", ErrOutOfRange, offset, deleteCount, n)
	}
	next := n - deleteCount + len(ins)
	if next > b.capacity {
		return fmt.Errorf("%w: length %d > capacity %d", ErrCapacityExceeded, next, b.capacity)
	}
	if deleteCount == 0 && len(ins) == 0 {
		return nil
	}

	tail := n - offset - deleteCount
	switch {
	case next > n:
		b.text = append(b.text, make([]rune, next-n)...)
		copy(b.text[offset+len(ins):], b.text[offset+deleteCount:offset+deleteCount+tail])
	case next < n:
		copy(b.text[offset+len(ins):], b.text[offset+deleteCount:])
		b.text = b.text[:next]
	}
	copy(b.text[offset:], ins)
	b.version++
	return nil
}

// Take returns a copy of the current text.
func (b *Buffer) Take() []rune {
	return append([]rune(nil), b.text...)
}

// Reset clears the buffer to length 0.
func (b *Buffer) Reset() {
	if len(b.text) == 0 {
		return
	}
	b.text = b.text[:0]
	b.version++
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

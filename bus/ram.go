package bus

import "fmt"

// RAM is a contiguous, fixed-size, read/write slave. Accessing an address
// past the end of the cell vector is a fatal bounds violation: the
// abstraction gives no recovery path.
type RAM[A Unsigned, D Unsigned] struct {
	cells []D
}

// NewRAM allocates a RAM slave of the given size, zero-filled.
func NewRAM[A Unsigned, D Unsigned](size int) *RAM[A, D] {
	return &RAM[A, D]{cells: make([]D, size)}
}

// Fill bulk-loads bytes into the cell vector starting at offset. Used to seed
// RAM at construction (e.g. a default vector table, or a preloaded stack).
func (m *RAM[A, D]) Fill(data []D, offset int) {
	copy(m.cells[offset:], data)
}

func (m *RAM[A, D]) Read(addr A) D {
	i := int(addr)
	if i < 0 || i >= len(m.cells) {
		panic(fmt.Sprintf("bus: RAM read out of bounds at $%X (size %d)", addr, len(m.cells)))
	}
	return m.cells[i]
}

func (m *RAM[A, D]) Write(addr A, val D) {
	i := int(addr)
	if i < 0 || i >= len(m.cells) {
		panic(fmt.Sprintf("bus: RAM write out of bounds at $%X (size %d)", addr, len(m.cells)))
	}
	m.cells[i] = val
}

package bus

import "fmt"

// ROM is a fixed, read-only slave: its cell vector is provided at
// construction and never mutated. Writes are silently dropped, matching the
// default unmapped-write policy, not a fatal error.
type ROM[A Unsigned, D Unsigned] struct {
	cells []D
}

// NewROM copies data into a new ROM slave. The caller's slice may be reused
// or discarded afterward.
func NewROM[A Unsigned, D Unsigned](data []D) *ROM[A, D] {
	cells := make([]D, len(data))
	copy(cells, data)
	return &ROM[A, D]{cells: cells}
}

func (m *ROM[A, D]) Read(addr A) D {
	i := int(addr)
	if i < 0 || i >= len(m.cells) {
		panic(fmt.Sprintf("bus: ROM read out of bounds at $%X (size %d)", addr, len(m.cells)))
	}
	return m.cells[i]
}

// Write is a no-op: ROM.Read is unchanged after any Write.
func (m *ROM[A, D]) Write(addr A, val D) {}

// Package bus defines the address-bus protocol shared by every master/slave
// pair in the fantasy console: a CPU talking to a decoder, a decoder talking
// to RAM/ROM, or a width adapter bridging two bus widths.
package bus

// Unsigned is the set of integer widths a bus may use for addresses or data.
// The 6502 core only ever instantiates (uint16, uint8), but the protocol
// itself is generic: other_examples' width-adapter tests exercise (uint8,
// uint8) and (uint32, uint32) as well.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Slave is anything that exposes byte-level read/write at an address. Both
// operations may mutate internal state (a terminal advancing its input
// queue, for example) and must never block.
//
// Unmapped behavior is defined by the implementation: the convention used
// throughout this module is "return zero" for reads and "silently drop" for
// writes.
type Slave[A Unsigned, D Unsigned] interface {
	Read(addr A) D
	Write(addr A, val D)
}

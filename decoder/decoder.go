// Package decoder implements the address-decoding fabric (spec component C3):
// a vector of (lo, hi, slave) mappings plus optional mirror rewrites, composed
// into a single flat address space. A Decoder is itself a bus.Slave, so
// decoders can be nested or attached directly to a CPU.
package decoder

import (
	"fmt"

	"github.com/n-ulricksen/fantasyconsole/bus"
)

// mapping binds one address range to a slave. Ranges are not checked for
// overlap at insertion time; when two mappings overlap, the first one
// inserted wins. This is observable behavior, not a bug.
type mapping[A bus.Unsigned, D bus.Unsigned] struct {
	start, end A
	slave      bus.Slave[A, D]
}

func (m mapping[A, D]) contains(a A) bool { return a >= m.start && a <= m.end }

// mirrorRewrite rewrites an access to [start,end] to target+(a-start) before
// mapping lookup. Mirrors compose with mappings, never with other mirrors:
// a rewritten address is not re-checked against the mirror list.
type mirrorRewrite[A bus.Unsigned] struct {
	start, end, target A
}

func (m mirrorRewrite[A]) contains(a A) bool { return a >= m.start && a <= m.end }

// Decoder composes slaves into one flat address space.
type Decoder[A bus.Unsigned, D bus.Unsigned] struct {
	mappings []mapping[A, D]
	mirrors  []mirrorRewrite[A]

	// PanicOnUnmapped turns an access with no matching mapping into a fatal
	// abort instead of the silent "return zero / drop write" default.
	// Development aid only; production machines leave this false.
	PanicOnUnmapped bool
}

// New returns an empty decoder with no mappings or mirrors.
func New[A bus.Unsigned, D bus.Unsigned]() *Decoder[A, D] {
	return &Decoder[A, D]{}
}

// Map appends a mapping binding [start,end] to slave, in slave-relative
// addressing: the decoder forwards reads/writes with the address translated
// to slave.Read(a-start)/slave.Write(a-start, v).
func (d *Decoder[A, D]) Map(start, end A, slave bus.Slave[A, D]) {
	d.mappings = append(d.mappings, mapping[A, D]{start: start, end: end, slave: slave})
}

// Mirror appends a mirror rewrite: an access to [start,end] is rewritten to
// target+(a-start) before mapping lookup.
func (d *Decoder[A, D]) Mirror(start, end, target A) {
	d.mirrors = append(d.mirrors, mirrorRewrite[A]{start: start, end: end, target: target})
}

// rewrite applies the first matching mirror, in insertion order, or returns
// addr unchanged if none match.
func (d *Decoder[A, D]) rewrite(addr A) A {
	for _, m := range d.mirrors {
		if m.contains(addr) {
			return m.target + (addr - m.start)
		}
	}
	return addr
}

// lookup returns the first mapping (in insertion order) whose range contains
// addr, and ok=false if none does.
func (d *Decoder[A, D]) lookup(addr A) (mapping[A, D], bool) {
	for _, m := range d.mappings {
		if m.contains(addr) {
			return m, true
		}
	}
	return mapping[A, D]{}, false
}

func (d *Decoder[A, D]) Read(addr A) D {
	a := d.rewrite(addr)
	if m, ok := d.lookup(a); ok {
		return m.slave.Read(a - m.start)
	}
	if d.PanicOnUnmapped {
		panic(fmt.Sprintf("decoder: unknown mapping $%X", a))
	}
	var zero D
	return zero
}

func (d *Decoder[A, D]) Write(addr A, val D) {
	a := d.rewrite(addr)
	if m, ok := d.lookup(a); ok {
		m.slave.Write(a-m.start, val)
		return
	}
	if d.PanicOnUnmapped {
		panic(fmt.Sprintf("decoder: unknown mapping $%X", a))
	}
	// silently drop
}

// Package widthadapter bridges a master with address/data widths (A,D) to a
// slave with widths (A2,D2). All conversions are the natural modular-integer
// casts (two's-complement truncation or zero-extension); the adapter never
// stitches multiple inner accesses together when the outer type is wider
// than the inner one. Truncation is the contract, not a bug to work around.
package widthadapter

import "github.com/n-ulricksen/fantasyconsole/bus"

// Adapter exposes a bus.Slave[A,D] backed by an inner bus.Slave[A2,D2].
type Adapter[A bus.Unsigned, D bus.Unsigned, A2 bus.Unsigned, D2 bus.Unsigned] struct {
	inner bus.Slave[A2, D2]
}

// New wraps inner, exposing it at the outer widths A, D.
func New[A bus.Unsigned, D bus.Unsigned, A2 bus.Unsigned, D2 bus.Unsigned](inner bus.Slave[A2, D2]) *Adapter[A, D, A2, D2] {
	return &Adapter[A, D, A2, D2]{inner: inner}
}

func (a *Adapter[A, D, A2, D2]) Read(addr A) D {
	return D(a.inner.Read(A2(addr)))
}

func (a *Adapter[A, D, A2, D2]) Write(addr A, val D) {
	a.inner.Write(A2(addr), D2(val))
}

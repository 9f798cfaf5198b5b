package main

import "math/rand"

// rngSlave is the one-byte RNG peripheral at the illustrative default
// memory map's $2005: every read returns a fresh random byte, writes are
// ignored.
type rngSlave struct{}

func (rngSlave) Read(addr uint16) uint8  { return uint8(rand.Intn(256)) }
func (rngSlave) Write(addr uint16, v uint8) {}

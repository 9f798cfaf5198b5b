// Package terminal is a memory-mapped console peripheral: four
// consecutive addresses give a running program stdin/stdout/stderr and a
// process-exit escape hatch, grounded on the reference UnixTerm device.
package terminal

import (
	"io"
	"os"
)

// Register offsets within the peripheral's four-byte window.
const (
	RegStdin  uint16 = 0x00 // read: pop next buffered input byte, 0 if empty
	RegStdout uint16 = 0x01 // write: echo a byte to stdout; read: last byte written
	RegStderr uint16 = 0x02 // write: echo a byte to stderr; read: last byte written
	RegExit   uint16 = 0x03 // write: terminate the process with this exit code
)

// Terminal implements bus.Slave[uint16, uint8] over a four-byte window.
// Reads are mutating on RegStdin: each read advances the input queue, per
// the core's contract that a read may mutate peripheral state.
type Terminal struct {
	stdout io.Writer
	stderr io.Writer
	exit   func(int)

	input      []byte
	lastStdout uint8
	lastStderr uint8
}

// New returns a Terminal writing to os.Stdout/os.Stderr and exiting the
// process via os.Exit on a write to RegExit.
func New() *Terminal {
	return &Terminal{stdout: os.Stdout, stderr: os.Stderr, exit: os.Exit}
}

// Feed appends bytes to the buffered stdin queue a running program will
// drain one byte per read of RegStdin.
func (t *Terminal) Feed(data []byte) {
	t.input = append(t.input, data...)
}

func (t *Terminal) Read(addr uint16) uint8 {
	switch addr {
	case RegStdin:
		if len(t.input) == 0 {
			return 0
		}
		b := t.input[0]
		t.input = t.input[1:]
		return b
	case RegStdout:
		return t.lastStdout
	case RegStderr:
		return t.lastStderr
	default:
		return 0
	}
}

func (t *Terminal) Write(addr uint16, val uint8) {
	switch addr {
	case RegStdout:
		t.stdout.Write([]byte{val})
		t.lastStdout = val
	case RegStderr:
		t.stderr.Write([]byte{val})
		t.lastStderr = val
	case RegExit:
		t.exit(int(val))
	}
}

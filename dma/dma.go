// Package dma is a block-transfer engine: it copies bytes between two
// bus.Slave address spaces a few at a time across repeated Step calls,
// instead of all at once, so a caller driving it from the same loop as a
// CPU can budget how many DMA bytes move per tick the way the bcm283x DMA
// controller budgets transfers across channels.
package dma

import "github.com/n-ulricksen/fantasyconsole/bus"

// Slave is the (uint16,uint8) address space a Block reads from and writes
// to.
type Slave = bus.Slave[uint16, uint8]

// Block is a single in-flight (or idle) transfer. bytesPerStep bounds how
// many bytes Step moves on each call, the caller-chosen "number of ticks"
// a transfer is spread across.
type Block struct {
	src, dst     Slave
	srcAddr      uint16
	dstAddr      uint16
	remaining    uint16
	bytesPerStep uint16
	cursor       uint16
}

// New returns an idle Block. Call Start to begin a transfer.
func New(src, dst Slave) *Block {
	return &Block{src: src, dst: dst, bytesPerStep: 1}
}

// Start begins copying length bytes from src[srcAddr:] to dst[dstAddr:],
// moving at most bytesPerStep bytes per Step call. bytesPerStep is clamped
// to at least 1.
func (b *Block) Start(srcAddr, dstAddr, length, bytesPerStep uint16) {
	if bytesPerStep == 0 {
		bytesPerStep = 1
	}
	b.srcAddr = srcAddr
	b.dstAddr = dstAddr
	b.remaining = length
	b.bytesPerStep = bytesPerStep
	b.cursor = 0
}

// Busy reports whether a transfer is still in progress.
func (b *Block) Busy() bool { return b.remaining > 0 }

// Step moves up to bytesPerStep bytes and returns the count actually moved.
// It is a no-op once the transfer has finished.
func (b *Block) Step() int {
	moved := 0
	for moved < int(b.bytesPerStep) && b.remaining > 0 {
		v := b.src.Read(b.srcAddr + b.cursor)
		b.dst.Write(b.dstAddr+b.cursor, v)
		b.cursor++
		b.remaining--
		moved++
	}
	return moved
}

// Remaining reports how many bytes are left to transfer.
func (b *Block) Remaining() uint16 { return b.remaining }

// Register offsets within a Controller's eight-byte window, grounded on the
// original source's DmaBlock register poke layout (block/address/count/
// flags written a byte at a time): src/dst/length are each two bytes,
// big-endian, followed by a one-byte transfer chunk size and a one-byte
// control/status register.
const (
	RegSrcHi   uint16 = 0x00
	RegSrcLo   uint16 = 0x01
	RegDstHi   uint16 = 0x02
	RegDstLo   uint16 = 0x03
	RegLenHi   uint16 = 0x04
	RegLenLo   uint16 = 0x05
	RegChunk   uint16 = 0x06
	RegControl uint16 = 0x07 // write nonzero: Start(); read: 1 while Busy, else 0
)

// Controller exposes a Block as a memory-mapped peripheral: a running 6502
// program pokes the source/destination/length registers, then writes
// RegControl to latch a Start, and polls RegControl for completion instead
// of calling Start/Step directly from host code.
type Controller struct {
	block *Block

	src, dst, length uint16
}

// NewController wraps block as a register-addressable peripheral.
func NewController(block *Block) *Controller {
	return &Controller{block: block}
}

// Step advances the in-flight transfer, if any, the same as Block.Step.
func (c *Controller) Step() int { return c.block.Step() }

func (c *Controller) Read(addr uint16) uint8 {
	switch addr {
	case RegControl:
		if c.block.Busy() {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func (c *Controller) Write(addr uint16, val uint8) {
	switch addr {
	case RegSrcHi:
		c.src = uint16(val)<<8 | c.src&0x00FF
	case RegSrcLo:
		c.src = c.src&0xFF00 | uint16(val)
	case RegDstHi:
		c.dst = uint16(val)<<8 | c.dst&0x00FF
	case RegDstLo:
		c.dst = c.dst&0xFF00 | uint16(val)
	case RegLenHi:
		c.length = uint16(val)<<8 | c.length&0x00FF
	case RegLenLo:
		c.length = c.length&0xFF00 | uint16(val)
	case RegChunk:
		c.block.bytesPerStep = uint16(val)
		if c.block.bytesPerStep == 0 {
			c.block.bytesPerStep = 1
		}
	case RegControl:
		if val != 0 {
			c.block.Start(c.src, c.dst, c.length, c.block.bytesPerStep)
		}
	}
}

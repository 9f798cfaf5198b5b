package decoder

import (
	"testing"

	"github.com/n-ulricksen/fantasyconsole/bus"
)

func TestMapInsertionOrderWins(t *testing.T) {
	first := bus.NewRAM[uint16, uint8](0x100)
	second := bus.NewRAM[uint16, uint8](0x100)

	first.Write(0x10, 0xAA)
	second.Write(0x10, 0xBB)

	d := New[uint16, uint8]()
	d.Map(0x0000, 0x00FF, first)
	d.Map(0x0000, 0x00FF, second) // overlaps, should never win

	if got := d.Read(0x10); got != 0xAA {
		t.Errorf("Read(0x10) = %#x, want first mapping's 0xAA", got)
	}
}

func TestMirrorRewrite(t *testing.T) {
	ram := bus.NewRAM[uint16, uint8](0x80)

	d := New[uint16, uint8]()
	d.Map(0x0080, 0x00FF, ram)
	d.Mirror(0x0180, 0x01FF, 0x0080)

	d.Write(0x0180, 0x42)

	if got := d.Read(0x0080); got != 0x42 {
		t.Errorf("Read(0x0080) after mirrored write = %#x, want 0x42", got)
	}
}

func TestMirrorsDoNotCompose(t *testing.T) {
	ram := bus.NewRAM[uint16, uint8](0x10)
	ram.Write(0x0000, 0x5A) // what a second (composed) rewrite would reach

	d := New[uint16, uint8]()
	d.Map(0x0000, 0x000F, ram)
	// Two chained mirror windows: 0x20-0x2F -> 0x10-0x1F, 0x10-0x1F -> 0x00-0x0F.
	// An access to 0x20 must resolve via the FIRST matching mirror only (to
	// 0x10), and that rewritten address must NOT be re-checked against the
	// mirror list, so it stays unmapped (no mapping covers 0x10-0x1F).
	d.Mirror(0x0020, 0x002F, 0x0010)
	d.Mirror(0x0010, 0x001F, 0x0000)

	if got := d.Read(0x0020); got != 0 {
		t.Errorf("Read(0x0020) = %#x, want 0 (mirror must not re-rewrite)", got)
	}
}

func TestPanicOnUnmapped(t *testing.T) {
	d := New[uint16, uint8]()
	d.PanicOnUnmapped = true

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on unmapped access")
		}
	}()
	d.Read(0x1234)
}

func TestUnmappedDefaultsToZeroAndDrop(t *testing.T) {
	d := New[uint16, uint8]()

	if got := d.Read(0x1234); got != 0 {
		t.Errorf("Read of unmapped address = %#x, want 0", got)
	}
	d.Write(0x1234, 0xFF) // must not panic
}

func TestSlaveRelativeAddressing(t *testing.T) {
	ram := bus.NewRAM[uint16, uint8](0x10)

	d := New[uint16, uint8]()
	d.Map(0x2000, 0x200F, ram)

	d.Write(0x2005, 0x99)

	if got := ram.Read(0x0005); got != 0x99 {
		t.Errorf("underlying RAM.Read(0x0005) = %#x, want 0x99 (slave-relative)", got)
	}
}

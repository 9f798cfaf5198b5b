package bus

import "testing"

func TestRAMReadWrite(t *testing.T) {
	ram := NewRAM[uint16, uint8](256)

	for a := 0; a < 256; a++ {
		addr := uint16(a)
		for _, v := range []uint8{0x00, 0x42, 0xFF} {
			ram.Write(addr, v)
			if got := ram.Read(addr); got != v {
				t.Fatalf("RAM.Write(%d, %#x) then Read = %#x, want %#x", addr, v, got, v)
			}
		}
	}
}

func TestRAMFill(t *testing.T) {
	ram := NewRAM[uint16, uint8](16)
	ram.Fill([]uint8{1, 2, 3}, 4)

	want := []uint8{0, 0, 0, 0, 1, 2, 3, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	for i, w := range want {
		if got := ram.Read(uint16(i)); got != w {
			t.Errorf("RAM.Read(%d) = %#x, want %#x", i, got, w)
		}
	}
}

func TestRAMOutOfBoundsPanics(t *testing.T) {
	ram := NewRAM[uint16, uint8](4)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on out-of-bounds RAM read")
		}
	}()
	ram.Read(4)
}

func TestROMWriteIsNoOp(t *testing.T) {
	rom := NewROM[uint16, uint8]([]uint8{0xAA, 0xBB, 0xCC})

	rom.Write(1, 0x42)

	if got := rom.Read(1); got != 0xBB {
		t.Errorf("ROM.Read(1) after Write = %#x, want unchanged %#x", got, 0xBB)
	}
}

func TestROMReadsInitialData(t *testing.T) {
	data := []uint8{1, 2, 3, 4}
	rom := NewROM[uint16, uint8](data)

	// Mutating the caller's backing slice must not affect the ROM's copy.
	data[0] = 0xFF

	if got := rom.Read(0); got != 1 {
		t.Errorf("ROM.Read(0) = %#x, want %#x (independent copy)", got, 1)
	}
}

// Command fantasyconsole is the illustrative CLI collaborator: it wires
// the bus/decoder/mos6502 core, a terminal, an audio sink, a framebuffer
// window, and a DMA block engine into the default memory map and runs the
// CPU at a chosen clock rate.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/faiface/pixel/pixelgl"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"gopkg.in/urfave/cli.v2"

	"github.com/n-ulricksen/fantasyconsole/audiosink"
	"github.com/n-ulricksen/fantasyconsole/bus"
	"github.com/n-ulricksen/fantasyconsole/debugger"
	"github.com/n-ulricksen/fantasyconsole/decoder"
	"github.com/n-ulricksen/fantasyconsole/dma"
	"github.com/n-ulricksen/fantasyconsole/hostwindow"
	"github.com/n-ulricksen/fantasyconsole/mos6502"
	"github.com/n-ulricksen/fantasyconsole/numlit"
	"github.com/n-ulricksen/fantasyconsole/romfile"
	"github.com/n-ulricksen/fantasyconsole/terminal"
)

const (
	addrRAMStart  = 0x0000
	addrRAMEnd    = 0x1FFF
	addrTermStart = 0x2000
	addrTermEnd   = 0x2003
	addrAudio     = 0x2004
	addrRNG       = 0x2005
	addrDMAStart  = 0x2006
	addrDMAEnd    = 0x200D
	addrFBStart   = 0x4000
	addrFBEnd     = 0x7FFF
	addrROMStart  = 0xC000
	addrROMEnd    = 0xFFFF

	fbWidth  = 256
	fbHeight = 64 // (addrFBEnd-addrFBStart+1) bytes / fbWidth
)

func main() {
	app := &cli.App{
		Name:  "fantasyconsole",
		Usage: "run a 6502 fantasy-console ROM",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "pc", Value: "0xc000", Usage: "initial program counter"},
			&cli.IntFlag{Name: "hz", Value: 1000000, Usage: "simulated clock rate in Hz"},
			&cli.BoolFlag{Name: "debug", Usage: "enable the debug panel and disassembly trace"},
			&cli.BoolFlag{Name: "no-vblank", Usage: "disable the 60Hz NMI raise"},
			&cli.StringFlag{Name: "breakpoint", Usage: "comma-separated PC values to drop into the debugger at"},
			&cli.BoolFlag{Name: "code-breakpoint", Usage: "treat BRK as a software breakpoint instead of an interrupt"},
		},
		Action: run,
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	romPath := c.Args().Get(0)
	if romPath == "" {
		return cli.Exit("usage: fantasyconsole [flags] <rom-path>", 1)
	}

	rom, err := romfile.Load(romPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("fantasyconsole: %v", err), 1)
	}

	pc, err := numlit.ParseUint16(c.String("pc"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("fantasyconsole: %v", err), 1)
	}

	dec := decoder.New[uint16, uint8]()
	ram := bus.NewRAM[uint16, uint8](addrRAMEnd - addrRAMStart + 1)
	dec.Map(addrRAMStart, addrRAMEnd, ram)

	term := terminal.New()
	dec.Map(addrTermStart, addrTermEnd, term)

	audioCtx := audio.NewContext(44100)
	sink := audiosink.New(audioCtx)
	dec.Map(addrAudio, addrAudio, sink)

	dec.Map(addrRNG, addrRNG, rngSlave{})

	fb := bus.NewRAM[uint16, uint8](addrFBEnd - addrFBStart + 1)
	dec.Map(addrFBStart, addrFBEnd, fb)

	dec.Map(addrROMStart, addrROMEnd, rom)

	cpu := mos6502.NewCPU(dec)
	cpu.PC = pc
	cpu.Debug = c.Bool("debug")
	cpu.CodeBreakpointMode = c.Bool("code-breakpoint")

	dbg := debugger.New(cpu, os.Stdout)
	breakAt := make(map[uint16]bool)
	for _, addr := range parseBreakpoints(c.String("breakpoint")) {
		dbg.AddBreakpoint(addr)
		breakAt[addr] = true
	}

	win := hostwindow.New("fantasyconsole", fbWidth, fbHeight, cpu.Debug)

	hzToTicksPerFrame := c.Int("hz") / 60
	noVBlank := c.Bool("no-vblank")

	transferEngine := dma.NewController(dma.New(dec, dec))
	dec.Map(addrDMAStart, addrDMAEnd, transferEngine)

	pixelgl.Run(func() {
		for !win.ShouldClose() {
			var ticksThisFrame int
			for ticksThisFrame < hzToTicksPerFrame {
				if cpu.TakeBreakpointPending() {
					dbg.Run(bufio.NewReader(os.Stdin))
				}
				ticksThisFrame += cpu.Step()
				transferEngine.Step()
				if breakAt[cpu.PC] {
					dbg.Run(bufio.NewReader(os.Stdin))
				}
			}

			if !noVBlank {
				cpu.Raise(mos6502.LineNMI)
			}

			if cpu.Debug {
				win.WriteRegDebugString(fmt.Sprintf("A=$%02X X=$%02X Y=$%02X SP=$%02X PC=$%04X", cpu.A, cpu.X, cpu.Y, cpu.SP, cpu.PC))
				win.WriteInstDebugString(cpu.Disasm)
			}

			win.UpdateScreen()
		}
	})

	return nil
}

func parseBreakpoints(s string) []uint16 {
	if s == "" {
		return nil
	}
	var addrs []uint16
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if i > start {
				if addr, err := numlit.ParseUint16(s[start:i]); err == nil {
					addrs = append(addrs, addr)
				}
			}
			start = i + 1
		}
	}
	return addrs
}

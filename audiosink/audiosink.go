// Package audiosink is the memory-mapped audio peripheral's host-side sink:
// a square-wave tone generator played through ebiten/v2/audio, grounded on
// the reference Beeper (a write triggers a tone) but replacing its rodio
// sine wave with a synthesized square wave, since synthesis quality is
// explicitly out of scope for this core.
package audiosink

import (
	"io"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

// Register offsets within the peripheral's single-byte window.
const (
	RegFrequency uint16 = 0x00 // write: set tone frequency in Hz/4, trigger playback
)

// Sink drives one square-wave voice. A write to RegFrequency starts (or
// restarts) a short tone at the written frequency; reads return the last
// frequency byte written.
type Sink struct {
	ctx      *audio.Context
	player   *audio.Player
	lastFreq uint8
	duration float64 // seconds
}

// New returns a Sink using ctx to create players. ctx is owned by the
// caller (typically one per process, shared across peripherals).
func New(ctx *audio.Context) *Sink {
	return &Sink{ctx: ctx, duration: 0.1}
}

func (s *Sink) Read(addr uint16) uint8 {
	if addr == RegFrequency {
		return s.lastFreq
	}
	return 0
}

func (s *Sink) Write(addr uint16, val uint8) {
	if addr != RegFrequency {
		return
	}
	s.lastFreq = val
	hz := float64(val) * 4
	if hz == 0 {
		return
	}
	s.play(hz)
}

func (s *Sink) play(hz float64) {
	player, err := s.ctx.NewPlayer(newSquareWave(hz, s.duration))
	if err != nil {
		return
	}
	s.player = player
	s.player.Play()
}

// squareWave is an io.Reader producing a 16-bit stereo PCM square wave at
// hz for the given duration, the stream shape ebiten/v2/audio.Player reads
// from.
type squareWave struct {
	hz       float64
	pos      int64
	total    int64
}

func newSquareWave(hz, durationSeconds float64) *squareWave {
	return &squareWave{hz: hz, total: int64(durationSeconds * sampleRate)}
}

func (w *squareWave) Read(buf []byte) (int, error) {
	const bytesPerFrame = 4 // 16-bit stereo
	n := len(buf) / bytesPerFrame
	if n == 0 {
		return 0, nil
	}

	for i := 0; i < n; i++ {
		if w.pos >= w.total {
			return i * bytesPerFrame, io.EOF
		}

		period := sampleRate / w.hz
		phase := math.Mod(float64(w.pos), period) / period
		sample := int16(8000)
		if phase >= 0.5 {
			sample = -8000
		}

		offset := i * bytesPerFrame
		buf[offset] = byte(sample)
		buf[offset+1] = byte(sample >> 8)
		buf[offset+2] = byte(sample)
		buf[offset+3] = byte(sample >> 8)

		w.pos++
	}
	return n * bytesPerFrame, nil
}

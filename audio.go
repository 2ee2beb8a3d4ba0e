package main

import (
	"io"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	sampleRate    = 44100
	channelCount  = 2
	bitDepthBytes = 2 // int16 LE
)

type Waveform int

const (
	WaveformSine Waveform = iota
	WaveformTriangle
	WaveformSquare
	WaveformSawtooth
)

// AudioSystem synthesizes short tones over oto. A zero or failed system is
// usable: every call degrades to silence.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

func NewAudioSystem() *AudioSystem {
	ctx, ready, err := oto.NewContext(sampleRate, channelCount, bitDepthBytes)
	if err != nil {
		log.Printf("audio unavailable: %v", err)
		return &AudioSystem{}
	}
	return &AudioSystem{ctx: ctx, ready: ready}
}

// PlayTone fires a single tone and forgets it. It never blocks the caller
// and never reports failure.
func (a *AudioSystem) PlayTone(freq, durationSec float64, w Waveform) {
	if a == nil || a.ctx == nil {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	samples := genTone(freq, durationSec, w)
	if len(samples) == 0 {
		return
	}
	go func() {
		player := a.ctx.NewPlayer(&toneReader{data: samples})
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type toneReader struct {
	data []byte
	pos  int
}

func (r *toneReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// genTone renders one waveform with a short linear attack and release so
// tones start and stop click-free.
func genTone(freq, durationSec float64, w Waveform) []byte {
	n := int(durationSec * sampleRate)
	if n <= 0 || freq <= 0 {
		return nil
	}
	buf := make([]byte, n*channelCount*bitDepthBytes)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		p := float64(i) / float64(n)
		phase := math.Mod(freq*t, 1.0)

		var s float64
		switch w {
		case WaveformTriangle:
			s = 1 - 4*math.Abs(phase-0.5)
		case WaveformSquare:
			if phase < 0.5 {
				s = 1
			} else {
				s = -1
			}
		case WaveformSawtooth:
			s = 2*phase - 1
		default:
			s = math.Sin(2 * math.Pi * freq * t)
		}

		env := math.Min(1, p/0.05) * math.Min(1, (1-p)/0.2)
		putStereoI16(buf, i, s*env*0.3)
	}
	return buf
}

// putStereoI16 writes a [-1,1] sample as int16 LE to both channels at frame i.
func putStereoI16(buf []byte, i int, sample float64) {
	v := int16(sample * math.MaxInt16)
	buf[i*4] = byte(v)
	buf[i*4+1] = byte(v >> 8)
	buf[i*4+2] = byte(v)
	buf[i*4+3] = byte(v >> 8)
}

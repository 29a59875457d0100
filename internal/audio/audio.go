// Package audio plays the procedural sound effects through an oto context.
package audio

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"circuitboard/internal/audio/synth"
	"circuitboard/internal/circuit"
)

// maxSparks limits simultaneous sparks; a burst of reroutes would
// otherwise stack into clipping.
const maxSparks = 2

// System manages playback. A nil *System is valid and silent.
type System struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64

	activeSparks int32
	seq          uint64
}

// New opens the audio device. The context becomes usable asynchronously;
// sounds requested before it is ready are dropped.
func New(volume float64) (*System, error) {
	ctx, ready, err := oto.NewContext(synth.SampleRate, synth.ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, err
	}
	return &System{ctx: ctx, ready: ready, volume: volume}, nil
}

func (s *System) isReady() bool {
	if s == nil {
		return false
	}
	select {
	case <-s.ready:
		return true
	default:
		return false
	}
}

// Play renders kind and plays it on its own goroutine.
func (s *System) Play(kind synth.Kind, pan float64) {
	if !s.isReady() {
		return
	}
	if kind == synth.Spark {
		if atomic.LoadInt32(&s.activeSparks) >= maxSparks {
			return
		}
		atomic.AddInt32(&s.activeSparks, 1)
	}
	samples := synth.Generate(kind, atomic.AddUint64(&s.seq, 1), pan)
	if len(samples) == 0 {
		if kind == synth.Spark {
			atomic.AddInt32(&s.activeSparks, -1)
		}
		return
	}
	go func() {
		if kind == synth.Spark {
			defer atomic.AddInt32(&s.activeSparks, -1)
		}
		player := s.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(s.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// PlayWhenReady waits up to timeout for the device before playing kind.
func (s *System) PlayWhenReady(kind synth.Kind, pan float64, timeout time.Duration) {
	if s == nil {
		return
	}
	go func() {
		select {
		case <-s.ready:
			s.Play(kind, pan)
		case <-time.After(timeout):
		}
	}()
}

// Attach plays a spark on every path regeneration, panned by the new
// origin's horizontal position.
func (s *System) Attach(bus *circuit.EventBus, anim *circuit.Animator) {
	if s == nil || bus == nil {
		return
	}
	bus.Subscribe(circuit.EventRegenerate, func(e circuit.Event) {
		pan := 0.0
		if w := anim.Bounds().W; w > 0 {
			pan = e.X/w*2 - 1
		}
		s.Play(synth.Spark, pan)
	})
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

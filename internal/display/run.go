// Package display hosts the circuit animation in a desktop GL window.
package display

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"circuitboard/internal/audio"
	"circuitboard/internal/audio/synth"
	"circuitboard/internal/circuit"
	"circuitboard/internal/config"
)

// Run opens the window and animates until it is closed, Escape is pressed,
// or ctx is done.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	// GLFW and GL calls must stay on the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window, err := initWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Debug("opengl ready", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	bg := circuit.Palette.Background
	gl.ClearColor(float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255, 1)

	rend, err := NewRenderer()
	if err != nil {
		return err
	}
	defer rend.Destroy()

	seed := cfg.ResolveSeed(time.Now())
	events := circuit.NewEventBus()
	anim := circuit.NewAnimator(circuit.NewRand(seed), circuit.WithEvents(events))
	events.Subscribe(circuit.EventResize, func(e circuit.Event) {
		log.Debug("paths rebuilt",
			zap.Float64("width", e.X),
			zap.Float64("height", e.Y),
			zap.Int("paths", e.Data))
	})

	if cfg.Audio.Enabled {
		sfx, err := audio.New(cfg.Audio.Volume)
		if err != nil {
			log.Warn("audio disabled", zap.Error(err))
		} else {
			sfx.Attach(events, anim)
			sfx.PlayWhenReady(synth.PowerOn, 0, 2*time.Second)
		}
	}

	fbW, fbH := window.GetFramebufferSize()
	frame := circuit.NewFrame(fbW, fbH)
	anim.Resize(fbW, fbH)
	frame.Clear()
	rend.Upload(frame)

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		frame.Resize(w, h)
		anim.Resize(w, h)
	})

	log.Info("circuitboard running",
		zap.Uint64("seed", seed),
		zap.Int("width", fbW),
		zap.Int("height", fbH),
		zap.Int("paths", len(anim.Paths())))

	stepper := circuit.NewStepper(cfg.TickRate)
	input := NewInput()
	last := glfw.GetTime()

	for !window.ShouldClose() {
		select {
		case <-ctx.Done():
			window.SetShouldClose(true)
			continue
		default:
		}

		glfw.PollEvents()
		now := glfw.GetTime()
		dt := now - last
		last = now

		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}
		if input.JustPressed(window, glfw.KeyR) {
			anim.Resize(frame.Width(), frame.Height())
		}

		fbW, fbH = window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			// Minimised: wait instead of spinning.
			glfw.WaitEventsTimeout(0.1)
			stepper.Reset()
			last = glfw.GetTime()
			continue
		}

		if ticks := stepper.Ticks(dt); ticks > 0 {
			for i := 1; i < ticks; i++ {
				anim.Update()
			}
			anim.Render(frame)
			rend.Upload(frame)
		}
		rend.Draw(fbW, fbH)
		window.SwapBuffers()
	}

	log.Info("circuitboard stopped")
	return nil
}

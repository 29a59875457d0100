// Package export renders the animation headlessly to an animated GIF or a
// directory of PNG frames.
package export

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"circuitboard/internal/circuit"
	"circuitboard/internal/config"
)

// ErrEmpty is returned when there is nothing to capture.
var ErrEmpty = errors.New("export: nothing to render")

// Options describe one capture run.
type Options struct {
	Width, Height int
	Frames        int
	Warmup        int
	Format        config.ExportFormat
	// Output is the GIF file, or the directory for PNG frames.
	Output  string
	DelayMS int
	Seed    uint64

	Reporter Reporter
}

// OptionsFromConfig copies the export section of cfg.
func OptionsFromConfig(cfg config.ExportConfig, seed uint64) Options {
	return Options{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Frames:  cfg.Frames,
		Warmup:  cfg.Warmup,
		Format:  cfg.Format,
		Output:  cfg.Output,
		DelayMS: cfg.DelayMS,
		Seed:    seed,
	}
}

// Result summarises a finished capture.
type Result struct {
	Frames int
	Paths  int
	Files  []string
}

// Render runs Warmup silent ticks, then captures Frames rendered ticks.
func Render(ctx context.Context, opts Options, log *zap.Logger) (Result, error) {
	if opts.Width <= 0 || opts.Height <= 0 || opts.Frames <= 0 {
		return Result{}, ErrEmpty
	}
	if log == nil {
		log = zap.NewNop()
	}
	rep := opts.Reporter
	if rep == nil {
		rep = nopReporter{}
	}

	events := circuit.NewEventBus()
	regenerated := 0
	events.Subscribe(circuit.EventRegenerate, func(circuit.Event) { regenerated++ })

	anim := circuit.NewAnimator(circuit.NewRand(opts.Seed), circuit.WithEvents(events))
	anim.Resize(opts.Width, opts.Height)
	frame := circuit.NewFrame(opts.Width, opts.Height)
	res := Result{Paths: len(anim.Paths())}

	log.Info("export started",
		zap.String("format", string(opts.Format)),
		zap.String("output", opts.Output),
		zap.Int("width", opts.Width),
		zap.Int("height", opts.Height),
		zap.Int("frames", opts.Frames),
		zap.Int("paths", res.Paths),
		zap.Uint64("seed", opts.Seed))

	for i := 0; i < opts.Warmup; i++ {
		anim.Update()
	}

	var sink frameSink
	switch opts.Format {
	case config.FormatGIF, "":
		sink = newGIFSink(opts.Output, opts.DelayMS)
	case config.FormatPNG:
		if err := os.MkdirAll(opts.Output, 0o755); err != nil {
			return res, fmt.Errorf("creating output dir: %w", err)
		}
		sink = &pngSink{dir: opts.Output}
	default:
		return res, fmt.Errorf("unknown export format %q", opts.Format)
	}

	rep.Start(opts.Frames)
	for i := 0; i < opts.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("export interrupted after %d frames: %w", res.Frames, err)
		}
		anim.Render(frame)
		if err := sink.add(frame.Image()); err != nil {
			return res, err
		}
		res.Frames++
		rep.Update(res.Frames, fmt.Sprintf("frame %d", res.Frames))
	}

	files, err := sink.close()
	if err != nil {
		return res, err
	}
	rep.Finish()
	res.Files = files

	log.Info("export finished",
		zap.Int("frames", res.Frames),
		zap.Int("files", len(res.Files)),
		zap.Int("regenerated", regenerated))
	return res, nil
}

type frameSink interface {
	add(img *image.RGBA) error
	close() ([]string, error)
}

type gifSink struct {
	path  string
	delay int
	anim  gif.GIF
}

func newGIFSink(path string, delayMS int) *gifSink {
	// GIF delays are in hundredths of a second.
	delay := delayMS / 10
	if delay < 1 {
		delay = 1
	}
	return &gifSink{path: path, delay: delay}
}

func (s *gifSink) add(img *image.RGBA) error {
	b := img.Bounds()
	p := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(p, b, img, b.Min)
	s.anim.Image = append(s.anim.Image, p)
	s.anim.Delay = append(s.anim.Delay, s.delay)
	return nil
}

func (s *gifSink) close() ([]string, error) {
	f, err := os.Create(s.path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", s.path, err)
	}
	if err := gif.EncodeAll(f, &s.anim); err != nil {
		f.Close()
		return nil, fmt.Errorf("encoding gif: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("closing %s: %w", s.path, err)
	}
	return []string{s.path}, nil
}

type pngSink struct {
	dir   string
	n     int
	files []string
}

func (s *pngSink) add(img *image.RGBA) error {
	path := filepath.Join(s.dir, fmt.Sprintf("frame_%04d.png", s.n))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	s.n++
	s.files = append(s.files, path)
	return nil
}

func (s *pngSink) close() ([]string, error) { return s.files, nil }

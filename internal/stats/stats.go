// Package stats simulates path generation and wrapping and summarises the
// resulting distributions.
package stats

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"circuitboard/internal/circuit"
)

type Options struct {
	Width, Height int
	// Paths overrides the collection size derived from Width x Height.
	Paths int
	Wraps int
	Seed  uint64
}

// Summary describes one sample.
type Summary struct {
	Mean, StdDev, Min, Max float64
}

func summarize(x []float64) Summary {
	if len(x) == 0 {
		return Summary{}
	}
	mean, std := stat.MeanStdDev(x, nil)
	if len(x) < 2 {
		std = 0
	}
	return Summary{Mean: mean, StdDev: std, Min: floats.Min(x), Max: floats.Max(x)}
}

type Report struct {
	Paths int

	TargetLength   Summary
	PolylineLength Summary
	Waypoints      Summary
	Speed          Summary

	Wraps            int
	Regenerated      int
	RegenerationRate float64
	RegenerationSE   float64

	// MaxOvershoot is the largest polyline length minus target length seen
	// over initial and regenerated paths.
	MaxOvershoot float64
}

// Simulate builds a collection and forces opts.Wraps wraps round-robin
// through it.
func Simulate(opts Options) Report {
	b := circuit.Bounds{W: float64(opts.Width), H: float64(opts.Height)}
	n := opts.Paths
	if n <= 0 {
		n = circuit.PathCount(opts.Width, opts.Height)
	}
	src := circuit.NewRand(opts.Seed)

	rep := Report{Paths: n, MaxOvershoot: math.Inf(-1)}
	paths := make([]circuit.Path, n)
	target := make([]float64, 0, n)
	length := make([]float64, 0, n)
	points := make([]float64, 0, n)
	speed := make([]float64, 0, n)

	observe := func(p *circuit.Path) {
		l := circuit.PathLength(p.Waypoints)
		if over := l - p.TargetLength; over > rep.MaxOvershoot {
			rep.MaxOvershoot = over
		}
	}

	for i := range paths {
		paths[i] = circuit.NewPath(src, b)
		p := &paths[i]
		target = append(target, p.TargetLength)
		length = append(length, circuit.PathLength(p.Waypoints))
		points = append(points, float64(len(p.Waypoints)))
		speed = append(speed, p.Speed)
		observe(p)
	}

	if n > 0 {
		for w := 0; w < opts.Wraps; w++ {
			p := &paths[w%n]
			p.Progress = p.TargetLength
			if p.Advance(src, b) == circuit.Regenerated {
				rep.Regenerated++
				observe(p)
			}
			rep.Wraps++
		}
	}

	rep.TargetLength = summarize(target)
	rep.PolylineLength = summarize(length)
	rep.Waypoints = summarize(points)
	rep.Speed = summarize(speed)
	if rep.Wraps > 0 {
		p := float64(rep.Regenerated) / float64(rep.Wraps)
		rep.RegenerationRate = p
		rep.RegenerationSE = math.Sqrt(p * (1 - p) / float64(rep.Wraps))
	}
	if math.IsInf(rep.MaxOvershoot, -1) {
		rep.MaxOvershoot = 0
	}
	return rep
}

// Write prints the report as an aligned table.
func (r Report) Write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "paths\t%d\n", r.Paths)
	fmt.Fprintln(tw, "\tmean\tstddev\tmin\tmax")
	for _, row := range []struct {
		name string
		s    Summary
	}{
		{"target length", r.TargetLength},
		{"polyline length", r.PolylineLength},
		{"waypoints", r.Waypoints},
		{"speed", r.Speed},
	} {
		fmt.Fprintf(tw, "%s\t%.3f\t%.3f\t%.3f\t%.3f\n", row.name, row.s.Mean, row.s.StdDev, row.s.Min, row.s.Max)
	}
	fmt.Fprintf(tw, "wraps\t%d\n", r.Wraps)
	fmt.Fprintf(tw, "regenerated\t%d\n", r.Regenerated)
	fmt.Fprintf(tw, "regeneration rate\t%.4f ± %.4f\n", r.RegenerationRate, r.RegenerationSE)
	fmt.Fprintf(tw, "max overshoot\t%.6f\n", r.MaxOvershoot)
	return tw.Flush()
}

package circuit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePathShape(t *testing.T) {
	for seed := uint64(1); seed <= 500; seed++ {
		src := NewRand(seed)
		origin := Point{X: src.Float64() * 800, Y: src.Float64() * 600}
		target := rangeF(src, MinTargetLength, TargetLengthSpan)

		pts := GeneratePath(src, origin, target)

		require.GreaterOrEqual(t, len(pts), 2, "seed %d", seed)
		assert.Equal(t, origin, pts[0], "seed %d", seed)
		for i := 1; i < len(pts); i++ {
			dx := pts[i].X != pts[i-1].X
			dy := pts[i].Y != pts[i-1].Y
			assert.True(t, dx != dy, "seed %d step %d moves on both or neither axis: %v -> %v", seed, i, pts[i-1], pts[i])
		}

		length := PathLength(pts)
		assert.InDelta(t, target, length, 1e-6, "seed %d", seed)
		assert.GreaterOrEqual(t, length, target-(MinSegment+SegmentSpan), "seed %d", seed)
	}
}

func TestGeneratePathScripted(t *testing.T) {
	t.Run("single clipped step", func(t *testing.T) {
		// horizontal, 20+0.5*50 = 45, positive
		src := &scripted{vals: []float64{0.9, 0.5, 0.9}}
		pts := GeneratePath(src, Point{X: 10, Y: 10}, 45)
		assert.Equal(t, []Point{{X: 10, Y: 10}, {X: 55, Y: 10}}, pts)
	})

	t.Run("final step clipped to remaining", func(t *testing.T) {
		src := &scripted{vals: []float64{
			0.9, 0.5, 0.9, // horizontal +45
			0.1, 0.99, 0.2, // vertical, 69.5 clipped to 55, negative
		}}
		pts := GeneratePath(src, Point{X: 10, Y: 10}, 100)
		require.Len(t, pts, 3)
		assert.Equal(t, Point{X: 55, Y: 10}, pts[1])
		assert.InDelta(t, 55, pts[2].X, 1e-12)
		assert.InDelta(t, -45, pts[2].Y, 1e-12)
	})
}

func TestGeneratePathTinyTarget(t *testing.T) {
	src := NewRand(7)
	pts := GeneratePath(src, Point{X: 100, Y: 100}, 0.001)
	require.Len(t, pts, 2)
	assert.InDelta(t, 0.001, PathLength(pts), 1e-12)

	pts = GeneratePath(src, Point{X: 100, Y: 100}, 0)
	require.Len(t, pts, 2)
	l := PathLength(pts)
	assert.GreaterOrEqual(t, l, MinSegment)
	assert.Less(t, l, MinSegment+SegmentSpan)
}

func TestNewPathRanges(t *testing.T) {
	src := NewRand(99)
	b := Bounds{W: 640, H: 480}
	for i := 0; i < 1000; i++ {
		p := NewPath(src, b)
		assert.GreaterOrEqual(t, p.Origin.X, 0.0)
		assert.Less(t, p.Origin.X, b.W)
		assert.GreaterOrEqual(t, p.Origin.Y, 0.0)
		assert.Less(t, p.Origin.Y, b.H)
		assert.GreaterOrEqual(t, p.TargetLength, 50.0)
		assert.Less(t, p.TargetLength, 250.0)
		assert.GreaterOrEqual(t, p.Speed, 0.5)
		assert.Less(t, p.Speed, 2.5)
		assert.GreaterOrEqual(t, p.StrokeWidth, 0.5)
		assert.Less(t, p.StrokeWidth, 2.0)
		assert.GreaterOrEqual(t, p.BaseAlpha, 0.1)
		assert.Less(t, p.BaseAlpha, 0.6)
		assert.Zero(t, p.Progress)
		assert.Equal(t, p.Origin, p.Waypoints[0])
	}
}

func TestMarkerAt(t *testing.T) {
	tests := []struct {
		name     string
		pts      []Point
		progress float64
		want     Point
		ok       bool
	}{
		{"straight quarter", []Point{{0, 0}, {100, 0}}, 25, Point{25, 0}, true},
		{"start", []Point{{0, 0}, {100, 0}}, 0, Point{0, 0}, true},
		{"end", []Point{{0, 0}, {100, 0}}, 100, Point{100, 0}, true},
		{"around corner", []Point{{0, 0}, {10, 0}, {10, 10}}, 15, Point{10, 5}, true},
		{"negative direction", []Point{{50, 50}, {50, 10}}, 10, Point{50, 40}, true},
		{"skips zero-length segment", []Point{{0, 0}, {0, 0}, {10, 0}}, 5, Point{5, 0}, true},
		{"past the end", []Point{{0, 0}, {10, 0}}, 10.5, Point{}, false},
		{"single point", []Point{{3, 4}}, 0, Point{}, false},
		{"all degenerate", []Point{{3, 4}, {3, 4}}, 0, Point{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MarkerAt(tt.pts, tt.progress)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestAdvanceKeepsProgressInRange(t *testing.T) {
	src := NewRand(3)
	b := Bounds{W: 1000, H: 400}
	p := NewPath(src, b)
	wraps := 0
	for i := 0; i < 20000; i++ {
		tr := p.Advance(src, b)
		require.GreaterOrEqual(t, p.Progress, 0.0)
		require.Less(t, p.Progress, p.TargetLength)
		if tr != Traveling {
			wraps++
			assert.Zero(t, p.Progress)
		}
		_, ok := p.Marker()
		assert.True(t, ok, "marker must stay on the polyline at progress %v", p.Progress)
	}
	assert.Greater(t, wraps, 0)
}

func TestAdvanceTraveling(t *testing.T) {
	p := Path{TargetLength: 100, Speed: 2, Progress: 10, Waypoints: []Point{{0, 0}, {100, 0}}}
	tr := p.Advance(&scripted{}, Bounds{W: 10, H: 10})
	assert.Equal(t, Traveling, tr)
	assert.Equal(t, 12.0, p.Progress)
}

func TestAdvanceWrapKeepsWaypoints(t *testing.T) {
	pts := []Point{{0, 0}, {100, 0}}
	p := Path{TargetLength: 100, Speed: 2, Progress: 99, Waypoints: pts}
	tr := p.Advance(&scripted{vals: []float64{RegenerateChance}}, Bounds{W: 10, H: 10})
	assert.Equal(t, Wrapped, tr)
	assert.Zero(t, p.Progress)
	assert.Equal(t, pts, p.Waypoints)
}

func TestAdvanceRegenerates(t *testing.T) {
	p := Path{TargetLength: 45, Speed: 50, StrokeWidth: 1, BaseAlpha: 0.3, Waypoints: []Point{{0, 0}, {45, 0}}}
	src := &scripted{vals: []float64{
		0.05,     // below RegenerateChance
		0.5, 0.5, // origin
		0.9, 0.5, 0.9, // horizontal +45
	}}
	tr := p.Advance(src, Bounds{W: 200, H: 100})
	assert.Equal(t, Regenerated, tr)
	assert.Equal(t, Point{X: 100, Y: 50}, p.Origin)
	assert.Equal(t, []Point{{100, 50}, {145, 50}}, p.Waypoints)
	assert.Equal(t, 45.0, p.TargetLength)
	assert.Equal(t, 50.0, p.Speed)
	assert.Equal(t, 0.3, p.BaseAlpha)
}

func TestRegenerationRate(t *testing.T) {
	const wraps = 100000
	src := NewRand(20240601)
	b := Bounds{W: 1920, H: 1080}
	p := NewPath(src, b)
	p.Speed = p.TargetLength // every advance wraps

	regen := 0
	for i := 0; i < wraps; i++ {
		switch p.Advance(src, b) {
		case Regenerated:
			regen++
			assert.True(t, p.Origin.X >= 0 && p.Origin.X < b.W && p.Origin.Y >= 0 && p.Origin.Y < b.H)
		case Traveling:
			t.Fatalf("advance %d did not wrap", i)
		}
	}
	frac := float64(regen) / wraps
	// Standard error is about 0.00095; allow five of them.
	assert.InDelta(t, RegenerateChance, frac, 0.005)
}

func TestMarkerAlphaUnclamped(t *testing.T) {
	p := Path{BaseAlpha: 0.59}
	assert.InDelta(t, 1.09, p.MarkerAlpha(), 1e-12)
}

func TestTransitionString(t *testing.T) {
	assert.Equal(t, "traveling", Traveling.String())
	assert.Equal(t, "wrapped", Wrapped.String())
	assert.Equal(t, "regenerated", Regenerated.String())
	assert.Equal(t, "unknown", Transition(9).String())
}

func TestBounds(t *testing.T) {
	assert.True(t, Bounds{W: 0, H: 10}.Empty())
	assert.True(t, Bounds{W: 10, H: -1}.Empty())
	assert.False(t, Bounds{W: 1, H: 1}.Empty())
	assert.Equal(t, 400000.0, Bounds{W: 1000, H: 400}.Area())
	assert.False(t, math.IsNaN(Bounds{}.Area()))
}

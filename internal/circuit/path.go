package circuit

import "math"

// Point is a surface-space coordinate; y grows downward.
type Point struct {
	X, Y float64
}

// Bounds is the drawable surface size.
type Bounds struct {
	W, H float64
}

func (b Bounds) Area() float64 { return b.W * b.H }

// Empty reports whether the surface has no drawable area.
func (b Bounds) Empty() bool { return b.W <= 0 || b.H <= 0 }

// RandomPoint picks a point uniformly inside b.
func (b Bounds) RandomPoint(src Source) Point {
	x := src.Float64() * b.W
	y := src.Float64() * b.H
	return Point{X: x, Y: y}
}

// Path is one circuit trace with its travelling marker.
type Path struct {
	Origin       Point
	TargetLength float64
	Waypoints    []Point
	Speed        float64
	Progress     float64
	StrokeWidth  float64
	BaseAlpha    float64
}

// Transition is the outcome of one Advance.
type Transition uint8

const (
	Traveling Transition = iota
	Wrapped
	Regenerated
)

func (t Transition) String() string {
	switch t {
	case Traveling:
		return "traveling"
	case Wrapped:
		return "wrapped"
	case Regenerated:
		return "regenerated"
	}
	return "unknown"
}

// NewPath creates a path at a random origin inside b.
func NewPath(src Source, b Bounds) Path {
	origin := b.RandomPoint(src)
	p := Path{
		Origin:       origin,
		TargetLength: rangeF(src, MinTargetLength, TargetLengthSpan),
		Speed:        rangeF(src, MinSpeed, SpeedSpan),
		StrokeWidth:  rangeF(src, MinStrokeWidth, StrokeWidthSpan),
	}
	p.Waypoints = GeneratePath(src, origin, p.TargetLength)
	p.BaseAlpha = rangeF(src, MinBaseAlpha, BaseAlphaSpan)
	return p
}

// GeneratePath walks from origin in random horizontal or vertical steps
// until targetLength is used up. Every step is clipped to the remaining
// length, so the result has at least two points and its length matches
// targetLength up to rounding.
func GeneratePath(src Source, origin Point, targetLength float64) []Point {
	pts := make([]Point, 1, 8)
	pts[0] = origin
	cur := origin
	remaining := targetLength
	for {
		horizontal := src.Float64() > 0.5
		seg := rangeF(src, MinSegment, SegmentSpan)
		if remaining > 0 {
			seg = math.Min(remaining, seg)
		}
		step := seg
		if src.Float64() <= 0.5 {
			step = -seg
		}
		if horizontal {
			cur.X += step
		} else {
			cur.Y += step
		}
		pts = append(pts, cur)
		remaining -= seg
		if remaining <= 0 {
			return pts
		}
	}
}

// PathLength is the sum of segment lengths of the polyline.
func PathLength(pts []Point) float64 {
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += segmentLength(pts[i-1], pts[i])
	}
	return total
}

func segmentLength(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Advance moves the marker one tick. On reaching the target length the
// marker restarts, and with RegenerateChance the path is rebuilt at a new
// origin inside b. Length, speed and cosmetics survive regeneration.
func (p *Path) Advance(src Source, b Bounds) Transition {
	p.Progress += p.Speed
	if p.Progress < p.TargetLength {
		return Traveling
	}
	p.Progress = 0
	if src.Float64() >= RegenerateChance {
		return Wrapped
	}
	p.Origin = b.RandomPoint(src)
	p.Waypoints = GeneratePath(src, p.Origin, p.TargetLength)
	return Regenerated
}

// Marker returns the marker position for the current progress.
func (p *Path) Marker() (Point, bool) {
	return MarkerAt(p.Waypoints, p.Progress)
}

// MarkerAlpha is the marker opacity. It is BaseAlpha plus a fixed boost
// and is not clamped here; values above 1 are clamped by the surface.
func (p *Path) MarkerAlpha() float64 {
	return p.BaseAlpha + MarkerAlphaBoost
}

// MarkerAt interpolates the point at distance progress along pts.
// Zero-length segments are skipped. ok is false when progress lies past
// the end of the polyline.
func MarkerAt(pts []Point, progress float64) (pt Point, ok bool) {
	traveled := 0.0
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		dist := segmentLength(a, b)
		if dist == 0 {
			continue
		}
		if progress <= traveled+dist {
			ratio := (progress - traveled) / dist
			return Point{X: a.X + (b.X-a.X)*ratio, Y: a.Y + (b.Y-a.Y)*ratio}, true
		}
		traveled += dist
	}
	return Point{}, false
}

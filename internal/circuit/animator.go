package circuit

import "math"

// Animator owns the surface bounds and the path collection. Resize and
// the tick methods are the only mutators; callers run them on one
// goroutine.
type Animator struct {
	src    Source
	bounds Bounds
	paths  []Path
	events *EventBus
}

type Option func(*Animator)

// WithEvents routes wrap, regenerate and resize events to eb.
func WithEvents(eb *EventBus) Option {
	return func(a *Animator) { a.events = eb }
}

func NewAnimator(src Source, opts ...Option) *Animator {
	a := &Animator{src: src}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// PathCount is the collection size for a width x height surface.
func PathCount(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return int(math.Floor(float64(width) * float64(height) / AreaPerPath))
}

// Resize records new bounds and replaces the whole collection.
func (a *Animator) Resize(width, height int) {
	b := Bounds{W: float64(width), H: float64(height)}
	n := PathCount(width, height)
	paths := make([]Path, n)
	for i := range paths {
		paths[i] = NewPath(a.src, b)
	}
	a.bounds = b
	a.paths = paths
	a.events.Emit(Event{Type: EventResize, X: b.W, Y: b.H, Data: n})
}

func (a *Animator) Bounds() Bounds { return a.bounds }

// Paths exposes the live collection. It is replaced on every Resize.
func (a *Animator) Paths() []Path { return a.paths }

// Update advances every path by one tick without drawing.
func (a *Animator) Update() {
	for i := range a.paths {
		a.advance(i)
	}
}

// Render runs one tick: clear, then advance and draw each path in order.
func (a *Animator) Render(s Surface) {
	s.Clear()
	for i := range a.paths {
		a.advance(i)
		Draw(s, &a.paths[i])
	}
}

func (a *Animator) advance(i int) Transition {
	p := &a.paths[i]
	t := p.Advance(a.src, a.bounds)
	switch t {
	case Wrapped:
		a.events.Emit(Event{Type: EventWrap, X: p.Origin.X, Y: p.Origin.Y, Data: i})
	case Regenerated:
		a.events.Emit(Event{Type: EventWrap, X: p.Origin.X, Y: p.Origin.Y, Data: i})
		a.events.Emit(Event{Type: EventRegenerate, X: p.Origin.X, Y: p.Origin.Y, Data: i})
	}
	return t
}

// Draw renders the faint static trace and, when the marker lies on the
// polyline, the glowing marker. Glow is always reset before returning so
// it never bleeds into the next path's trace.
func Draw(s Surface, p *Path) {
	s.StrokePolyline(p.Waypoints, p.StrokeWidth, Palette.Trace, TraceAlpha)
	if pt, ok := p.Marker(); ok {
		s.SetGlow(GlowBlur, Palette.Glow)
		s.FillCircle(pt, MarkerRadius, Palette.Electron, p.MarkerAlpha())
	}
	s.ResetGlow()
}

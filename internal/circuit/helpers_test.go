package circuit

import "fmt"

// scripted replays fixed values and panics when it runs dry.
type scripted struct {
	vals []float64
	i    int
}

func (s *scripted) Float64() float64 {
	if s.i >= len(s.vals) {
		panic(fmt.Sprintf("scripted source exhausted after %d values", s.i))
	}
	v := s.vals[s.i]
	s.i++
	return v
}

type call struct {
	op     string
	pts    []Point
	center Point
	width  float64
	alpha  float64
	col    RGB
	glowOn bool
}

// recorder is a Surface that logs every call with the glow state at the
// time of the call.
type recorder struct {
	calls  []call
	glowOn bool
}

func (r *recorder) Clear() {
	r.calls = append(r.calls, call{op: "clear", glowOn: r.glowOn})
}

func (r *recorder) StrokePolyline(pts []Point, width float64, col RGB, alpha float64) {
	cp := append([]Point(nil), pts...)
	r.calls = append(r.calls, call{op: "stroke", pts: cp, width: width, col: col, alpha: alpha, glowOn: r.glowOn})
}

func (r *recorder) FillCircle(center Point, radius float64, col RGB, alpha float64) {
	r.calls = append(r.calls, call{op: "fill", center: center, width: radius, col: col, alpha: alpha, glowOn: r.glowOn})
}

func (r *recorder) SetGlow(blur float64, col RGB) {
	r.glowOn = true
	r.calls = append(r.calls, call{op: "glow", width: blur, col: col, glowOn: true})
}

func (r *recorder) ResetGlow() {
	r.glowOn = false
	r.calls = append(r.calls, call{op: "reset"})
}

func (r *recorder) ops() []string {
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.op
	}
	return out
}

package circuit

// Stepper converts wall-clock frame deltas into whole fixed-rate ticks.
type Stepper struct {
	step  float64
	accum float64
}

func NewStepper(rate float64) *Stepper {
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return &Stepper{step: 1 / rate}
}

// Ticks adds dt seconds and returns how many ticks are due. Deltas above
// MaxFrameDelta are clamped.
func (s *Stepper) Ticks(dt float64) int {
	s.accum += clampF(dt, 0, MaxFrameDelta)
	n := int(s.accum / s.step)
	s.accum -= float64(n) * s.step
	return n
}

// Reset drops any partial tick.
func (s *Stepper) Reset() { s.accum = 0 }

package circuit

// Surface is the 2D drawing target the animator renders to. Glow set by
// SetGlow stays active for subsequent fills until ResetGlow.
type Surface interface {
	Clear()
	StrokePolyline(pts []Point, width float64, col RGB, alpha float64)
	FillCircle(center Point, radius float64, col RGB, alpha float64)
	SetGlow(blur float64, col RGB)
	ResetGlow()
}

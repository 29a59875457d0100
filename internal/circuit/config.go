package circuit

// Collection density: one path per this many square surface units.
const AreaPerPath = 20000

// Path shape. Lengths are in surface units.
const (
	MinTargetLength  = 50.0
	TargetLengthSpan = 200.0 // TargetLength in [50, 250)
	MinSegment       = 20.0
	SegmentSpan      = 50.0 // segment length in [20, 70) before clipping
)

// Marker motion, in surface units per tick.
const (
	MinSpeed  = 0.5
	SpeedSpan = 2.0
)

// RegenerateChance is the probability that a wrap rebuilds the path at a
// new origin instead of replaying the same waypoints.
const RegenerateChance = 0.1

// Cosmetics fixed at path creation.
const (
	MinStrokeWidth   = 0.5
	StrokeWidthSpan  = 1.5
	MinBaseAlpha     = 0.1
	BaseAlphaSpan    = 0.5
	MarkerAlphaBoost = 0.5
)

// Drawing.
const (
	TraceAlpha   = 0.05
	MarkerRadius = 2.0
	GlowBlur     = 10.0
)

// Tick pacing.
const (
	DefaultTickRate = 60.0
	MaxFrameDelta   = 0.1 // seconds; longer stalls are not replayed
)

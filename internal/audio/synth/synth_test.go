package synth

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samples(buf []byte) []float32 {
	out := make([]float32, len(buf)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	return out
}

func TestGenerateSpark(t *testing.T) {
	buf := Generate(Spark, 42, 0)
	require.NotEmpty(t, buf)
	assert.Zero(t, len(buf)%FrameBytes)
	assert.Equal(t, int(0.11*SampleRate), len(buf)/FrameBytes)

	peak := float32(0)
	for _, s := range samples(buf) {
		require.False(t, math.IsNaN(float64(s)))
		assert.LessOrEqual(t, s, float32(1))
		assert.GreaterOrEqual(t, s, float32(-1))
		if a := float32(math.Abs(float64(s))); a > peak {
			peak = a
		}
	}
	assert.Greater(t, peak, float32(0.01), "spark is audible")
}

func TestSparkSeedVaries(t *testing.T) {
	assert.Equal(t, Generate(Spark, 7, 0), Generate(Spark, 7, 0))
	assert.NotEqual(t, Generate(Spark, 7, 0), Generate(Spark, 8, 0))
}

func TestSparkPan(t *testing.T) {
	s := samples(Generate(Spark, 3, -1))
	var left, right float64
	for i := 0; i+1 < len(s); i += 2 {
		left += math.Abs(float64(s[i]))
		right += math.Abs(float64(s[i+1]))
	}
	assert.Greater(t, left, 0.0)
	assert.InDelta(t, 0, right, 1e-3, "hard left pan leaves the right channel silent")
}

func TestGeneratePowerOn(t *testing.T) {
	buf := Generate(PowerOn, 0, 0)
	require.NotEmpty(t, buf)
	assert.Zero(t, len(buf)%FrameBytes)
	assert.Nil(t, Generate(Kind(99), 0, 0))
}

func TestADSR(t *testing.T) {
	assert.InDelta(t, 0.5, adsr(0.01, 0.02, 0.3, 0.2, 0.4), 1e-9)
	assert.InDelta(t, 1.0, adsr(0.02, 0.02, 0.3, 0.2, 0.4), 1e-9)
	assert.InDelta(t, 0.2, adsr(0.5, 0.02, 0.3, 0.2, 0.4), 1e-9)
	assert.InDelta(t, 0.0, adsr(1.0, 0.02, 0.3, 0.2, 0.4), 1e-9)
}

func TestPanGains(t *testing.T) {
	l, r := panGains(0)
	assert.InDelta(t, l, r, 1e-12)
	assert.InDelta(t, 1, l*l+r*r, 1e-12)
	l, r = panGains(5)
	assert.InDelta(t, 0, l, 1e-12)
	assert.InDelta(t, 1, r, 1e-12)
}

// Package synth generates the procedural sound effects as interleaved
// stereo float32 little-endian PCM.
package synth

import "math"

const (
	SampleRate   = 44100
	ChannelCount = 2
	FrameBytes   = 8 // two float32 channels
)

// Kind identifies a sound effect.
type Kind int

const (
	// Spark plays when a circuit is rerouted.
	Spark Kind = iota
	// PowerOn plays once when the window opens.
	PowerOn
)

// Generate renders kind. seed varies the noise so repeated sparks do not
// sound identical; pan in [-1, 1] places the sound left to right.
func Generate(kind Kind, seed uint64, pan float64) []byte {
	switch kind {
	case Spark:
		return genSpark(seed, pan)
	case PowerOn:
		return genPowerOn()
	}
	return nil
}

// genSpark: short electrical zap, a falling FM chirp over a highpassed
// noise crackle.
func genSpark(seed uint64, pan float64) []byte {
	n := int(0.11 * SampleRate)
	buf := makeBuf(n)
	if seed == 0 {
		seed = 1
	}
	left, right := panGains(pan)
	prev := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.35, 0.2, 0.4)
		freq := 2400 - 1500*p
		chirp := fm(t, freq, 1.5, 2.5*env) * 0.25
		noise := lcg(&seed)
		hp := noise - prev // crude highpass keeps only the crackle
		prev = noise
		crackle := hp * math.Exp(-p*9) * 0.3
		s := softSat((chirp + crackle) * env)
		putStereoF32LR(buf, i, s*left, s*right)
	}
	return buf
}

// genPowerOn: soft rising two-note hum.
func genPowerOn() []byte {
	freqs := []float64{220, 329.63} // A3 E4
	noteLen := SampleRate * 140 / 1000
	tail := int(0.25 * SampleRate)
	total := len(freqs)*noteLen + tail
	mix := make([]float64, total)

	for fi, freq := range freqs {
		start := fi * noteLen
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.05, 0.4, 0.3, 0.4)
			mix[start+j] += fm(t, freq, 1.0, 1.2*env) * env * 0.3
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// panGains is an equal-power pan law.
func panGains(pan float64) (left, right float64) {
	if pan < -1 {
		pan = -1
	} else if pan > 1 {
		pan = 1
	}
	angle := (pan + 1) * math.Pi / 4
	return math.Cos(angle), math.Sin(angle)
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	putStereoF32LR(buf, i, sample, sample)
}

// putStereoF32LR writes independent left/right samples in [-1,1].
func putStereoF32LR(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	buf[i*8] = byte(lv)
	buf[i*8+1] = byte(lv >> 8)
	buf[i*8+2] = byte(lv >> 16)
	buf[i*8+3] = byte(lv >> 24)
	buf[i*8+4] = byte(rv)
	buf[i*8+5] = byte(rv >> 8)
	buf[i*8+6] = byte(rv >> 16)
	buf[i*8+7] = byte(rv >> 24)
}

// softSat applies gentle tanh-like saturation with no hard clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*FrameBytes) }

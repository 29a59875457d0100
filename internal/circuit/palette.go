package circuit

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Palette holds the board colours: dark navy background, cyan traces,
// white electrons with a cyan glow.
var Palette = struct {
	Background RGB
	Trace      RGB
	Electron   RGB
	Glow       RGB
}{
	Background: RGB{R: 5, G: 8, B: 18},
	Trace:      RGB{R: 0, G: 243, B: 255},
	Electron:   RGB{R: 255, G: 255, B: 255},
	Glow:       RGB{R: 0, G: 243, B: 255},
}

package display

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"circuitboard/internal/circuit"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer presents a circuit.Frame as one textured quad.
type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32
	uTex int32

	tex        uint32
	texW, texH int
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(frameVertSrc, frameFragSrc)
	if err != nil {
		return nil, fmt.Errorf("frame program: %w", err)
	}
	r := &Renderer{prog: prog}

	// Unit quad (6 vertices, 2 triangles).
	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))

	gl.UseProgram(prog)
	r.uTex = gl.GetUniformLocation(prog, gl.Str("uTex\x00"))
	gl.Uniform1i(r.uTex, 0)

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.tex != 0 {
		gl.DeleteTextures(1, &r.tex)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}

// ensureTexture (re)allocates the texture when the frame size changes.
func (r *Renderer) ensureTexture(w, h int, pix []byte) bool {
	if r.tex != 0 && r.texW == w && r.texH == h {
		return false
	}
	if r.tex == 0 {
		gl.GenTextures(1, &r.tex)
	}
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(w), int32(h), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix),
	)
	r.texW, r.texH = w, h
	return true
}

// Upload copies the frame's pixels into the texture.
func (r *Renderer) Upload(f *circuit.Frame) {
	w, h := f.Width(), f.Height()
	pix := f.Pix()
	if w <= 0 || h <= 0 || len(pix) == 0 {
		return
	}
	gl.ActiveTexture(gl.TEXTURE0)
	if r.ensureTexture(w, h, pix) {
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	gl.TexSubImage2D(
		gl.TEXTURE_2D, 0, 0, 0,
		int32(w), int32(h),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix),
	)
}

// Draw clears the viewport and stretches the last uploaded frame over it.
func (r *Renderer) Draw(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if r.tex == 0 {
		return
	}
	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

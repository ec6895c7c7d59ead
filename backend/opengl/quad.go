package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	surfaces "github.com/wpchop/implicit-surfaces"
)

// quadPositions covers clip space at the far plane, one vec4 per corner.
var quadPositions = []float32{
	-1, -1, 0.999, 1,
	1, -1, 0.999, 1,
	1, 1, 0.999, 1,
	-1, 1, 0.999, 1,
}

var quadIndices = []uint32{0, 1, 2, 0, 2, 3}

// Quad is a full-screen quad drawable.
type Quad struct {
	vao, vbo uint32
	ebo      uint32
	count    int32
}

var _ surfaces.Drawable = (*Quad)(nil)

// NewQuad uploads the quad's position and index buffers.
func NewQuad() *Quad {
	q := &Quad{count: int32(len(quadIndices))}

	gl.GenVertexArrays(1, &q.vao)
	gl.BindVertexArray(q.vao)

	gl.GenBuffers(1, &q.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadPositions)*4, gl.Ptr(quadPositions), gl.STATIC_DRAW)

	gl.GenBuffers(1, &q.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, q.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(quadIndices)*4, gl.Ptr(quadIndices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	return q
}

// BindPos binds the vertex array and position buffer.
func (q *Quad) BindPos() bool {
	if q.vbo == 0 {
		return false
	}
	gl.BindVertexArray(q.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	return true
}

// BindIdx binds the vertex array and index buffer.
func (q *Quad) BindIdx() {
	gl.BindVertexArray(q.vao)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, q.ebo)
}

func (q *Quad) DrawMode() surfaces.DrawMode { return surfaces.Triangles }

func (q *Quad) ElemCount() int32 { return q.count }

// Delete releases OpenGL resources.
func (q *Quad) Delete() {
	if q.ebo != 0 {
		gl.DeleteBuffers(1, &q.ebo)
	}
	if q.vbo != 0 {
		gl.DeleteBuffers(1, &q.vbo)
	}
	if q.vao != 0 {
		gl.DeleteVertexArrays(1, &q.vao)
	}
	q.vao, q.vbo, q.ebo = 0, 0, 0
}

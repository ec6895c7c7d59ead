// Package opengl implements surfaces.Driver on OpenGL 4.1 core.
package opengl

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	surfaces "github.com/wpchop/implicit-surfaces"
)

// Driver issues surfaces.Driver calls against the current OpenGL context.
// gl.Init must have been called on the owning thread.
type Driver struct{}

var _ surfaces.Driver = Driver{}

// NewDriver returns a driver for the current context.
func NewDriver() Driver {
	return Driver{}
}

func (Driver) CreateShader(kind surfaces.StageKind) surfaces.ShaderHandle {
	return surfaces.ShaderHandle(gl.CreateShader(stageType(kind)))
}

func (Driver) ShaderSource(s surfaces.ShaderHandle, source string) {
	csource, free := gl.Strs(terminated(source))
	gl.ShaderSource(uint32(s), 1, csource, nil)
	free()
}

func (Driver) CompileShader(s surfaces.ShaderHandle) {
	gl.CompileShader(uint32(s))
}

func (Driver) ShaderCompiled(s surfaces.ShaderHandle) bool {
	var status int32
	gl.GetShaderiv(uint32(s), gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (Driver) ShaderInfoLog(s surfaces.ShaderHandle) string {
	var logLength int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(uint32(s), logLength, nil, &log[0])
	return trimLog(log)
}

func (Driver) DeleteShader(s surfaces.ShaderHandle) {
	gl.DeleteShader(uint32(s))
}

func (Driver) CreateProgram() surfaces.ProgramHandle {
	return surfaces.ProgramHandle(gl.CreateProgram())
}

func (Driver) AttachShader(p surfaces.ProgramHandle, s surfaces.ShaderHandle) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (Driver) LinkProgram(p surfaces.ProgramHandle) {
	gl.LinkProgram(uint32(p))
}

func (Driver) ProgramLinked(p surfaces.ProgramHandle) bool {
	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (Driver) ProgramInfoLog(p surfaces.ProgramHandle) string {
	var logLength int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetProgramInfoLog(uint32(p), logLength, nil, &log[0])
	return trimLog(log)
}

func (Driver) DeleteProgram(p surfaces.ProgramHandle) {
	gl.DeleteProgram(uint32(p))
}

func (Driver) UseProgram(p surfaces.ProgramHandle) {
	gl.UseProgram(uint32(p))
}

func (Driver) AttribLocation(p surfaces.ProgramHandle, name string) int32 {
	return gl.GetAttribLocation(uint32(p), gl.Str(terminated(name)))
}

func (Driver) UniformLocation(p surfaces.ProgramHandle, name string) int32 {
	return gl.GetUniformLocation(uint32(p), gl.Str(terminated(name)))
}

func (Driver) Uniform1f(loc int32, v float32) {
	gl.Uniform1f(loc, v)
}

func (Driver) Uniform2f(loc int32, x, y float32) {
	gl.Uniform2f(loc, x, y)
}

func (Driver) Uniform3fv(loc int32, v [3]float32) {
	gl.Uniform3fv(loc, 1, &v[0])
}

func (Driver) Uniform1i(loc int32, v int32) {
	gl.Uniform1i(loc, v)
}

// UniformMatrix4fv uploads m as-is; surfaces matrices are column-major.
func (Driver) UniformMatrix4fv(loc int32, m [16]float32) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

func (Driver) EnableVertexAttribArray(loc uint32) {
	gl.EnableVertexAttribArray(loc)
}

func (Driver) DisableVertexAttribArray(loc uint32) {
	gl.DisableVertexAttribArray(loc)
}

func (Driver) VertexAttribPointer(loc uint32, size int32, normalized bool, stride int32) {
	gl.VertexAttribPointerWithOffset(loc, size, gl.FLOAT, normalized, stride, 0)
}

func (Driver) DrawElements(mode surfaces.DrawMode, count int32) {
	gl.DrawElements(drawMode(mode), count, gl.UNSIGNED_INT, gl.PtrOffset(0))
}

func (Driver) CreateTexture() surfaces.TextureHandle {
	var tex uint32
	gl.GenTextures(1, &tex)
	return surfaces.TextureHandle(tex)
}

func (Driver) DeleteTexture(t surfaces.TextureHandle) {
	tex := uint32(t)
	gl.DeleteTextures(1, &tex)
}

func (Driver) ActiveTexture(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
}

func (Driver) BindTexture(t surfaces.TextureHandle) {
	gl.BindTexture(gl.TEXTURE_2D, uint32(t))
}

func (Driver) TexParameter(param surfaces.TextureParam, value surfaces.TextureValue) {
	gl.TexParameteri(gl.TEXTURE_2D, textureParam(param), textureValue(value))
}

func (Driver) TexImage2D(width, height int32, pixels []byte) {
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
}

func stageType(kind surfaces.StageKind) uint32 {
	switch kind {
	case surfaces.FragmentStage:
		return gl.FRAGMENT_SHADER
	default:
		return gl.VERTEX_SHADER
	}
}

func drawMode(mode surfaces.DrawMode) uint32 {
	switch mode {
	case surfaces.Points:
		return gl.POINTS
	case surfaces.Lines:
		return gl.LINES
	case surfaces.LineStrip:
		return gl.LINE_STRIP
	case surfaces.TriangleStrip:
		return gl.TRIANGLE_STRIP
	case surfaces.TriangleFan:
		return gl.TRIANGLE_FAN
	default:
		return gl.TRIANGLES
	}
}

func textureParam(param surfaces.TextureParam) uint32 {
	switch param {
	case surfaces.TextureWrapS:
		return gl.TEXTURE_WRAP_S
	case surfaces.TextureWrapT:
		return gl.TEXTURE_WRAP_T
	case surfaces.TextureMinFilter:
		return gl.TEXTURE_MIN_FILTER
	default:
		return gl.TEXTURE_MAG_FILTER
	}
}

func textureValue(value surfaces.TextureValue) int32 {
	switch value {
	case surfaces.ClampToEdge:
		return gl.CLAMP_TO_EDGE
	default:
		return gl.NEAREST
	}
}

// terminated appends the NUL go-gl expects on C strings.
func terminated(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

func trimLog(log []byte) string {
	return strings.TrimRight(string(log), "\x00\n ")
}

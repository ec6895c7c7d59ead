package surfaces

// StageKind identifies a shader stage.
type StageKind uint32

const (
	VertexStage StageKind = iota + 1
	FragmentStage
)

func (k StageKind) String() string {
	switch k {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return "unknown"
	}
}

// DrawMode is the primitive topology used by an indexed draw.
type DrawMode uint32

const (
	Points DrawMode = iota
	Lines
	LineStrip
	Triangles
	TriangleStrip
	TriangleFan
)

// ShaderHandle, ProgramHandle and TextureHandle are opaque driver object names.
type (
	ShaderHandle  uint32
	ProgramHandle uint32
	TextureHandle uint32
)

// TextureParam names a 2D texture sampling parameter.
type TextureParam uint32

const (
	TextureWrapS TextureParam = iota
	TextureWrapT
	TextureMinFilter
	TextureMagFilter
)

// TextureValue is a value for a TextureParam.
type TextureValue uint32

const (
	ClampToEdge TextureValue = iota
	Nearest
)

// Driver is the raw graphics context a Program drives. Implementations map
// each method onto a single native call. Locations use -1 for "not found",
// the way the native API reports it.
//
// A Driver is bound to the thread owning the native context and is not safe
// for concurrent use.
type Driver interface {
	CreateShader(kind StageKind) ShaderHandle
	ShaderSource(s ShaderHandle, source string)
	CompileShader(s ShaderHandle)
	ShaderCompiled(s ShaderHandle) bool
	ShaderInfoLog(s ShaderHandle) string
	DeleteShader(s ShaderHandle)

	CreateProgram() ProgramHandle
	AttachShader(p ProgramHandle, s ShaderHandle)
	LinkProgram(p ProgramHandle)
	ProgramLinked(p ProgramHandle) bool
	ProgramInfoLog(p ProgramHandle) string
	DeleteProgram(p ProgramHandle)
	UseProgram(p ProgramHandle)

	AttribLocation(p ProgramHandle, name string) int32
	UniformLocation(p ProgramHandle, name string) int32

	Uniform1f(loc int32, v float32)
	Uniform2f(loc int32, x, y float32)
	Uniform3fv(loc int32, v [3]float32)
	Uniform1i(loc int32, v int32)
	UniformMatrix4fv(loc int32, m [16]float32)

	EnableVertexAttribArray(loc uint32)
	DisableVertexAttribArray(loc uint32)
	// VertexAttribPointer declares a float attribute reading from offset 0
	// of the bound array buffer.
	VertexAttribPointer(loc uint32, size int32, normalized bool, stride int32)
	// DrawElements draws count 32-bit unsigned indices from offset 0 of the
	// bound element buffer.
	DrawElements(mode DrawMode, count int32)

	CreateTexture() TextureHandle
	DeleteTexture(t TextureHandle)
	ActiveTexture(unit uint32)
	BindTexture(t TextureHandle)
	TexParameter(param TextureParam, value TextureValue)
	// TexImage2D uploads tightly packed RGBA8 pixels to mip level 0 of the
	// bound texture.
	TexImage2D(width, height int32, pixels []byte)
}

package surfaces

import "log/slog"

// Shader is a compiled shader stage.
type Shader struct {
	ctx    *Context
	handle ShaderHandle
	kind   StageKind
	source string
}

// NewShader compiles source as a stage of the given kind. A rejected stage
// returns a *CompileError carrying the driver's info log.
func NewShader(ctx *Context, kind StageKind, source string) (*Shader, error) {
	d := ctx.driver

	h := d.CreateShader(kind)
	d.ShaderSource(h, source)
	d.CompileShader(h)

	if !d.ShaderCompiled(h) {
		log := diagnostic(d.ShaderInfoLog(h), "driver reported no diagnostic")
		d.DeleteShader(h)
		return nil, &CompileError{Kind: kind, Log: log}
	}

	ctx.log.Debug("shader compiled", slog.String("stage", kind.String()), slog.Any("handle", h))

	return &Shader{ctx: ctx, handle: h, kind: kind, source: source}, nil
}

// Handle returns the driver's shader name.
func (s *Shader) Handle() ShaderHandle { return s.handle }

// Kind returns the shader stage.
func (s *Shader) Kind() StageKind { return s.kind }

// Source returns the source text the stage was compiled from.
func (s *Shader) Source() string { return s.source }

// Delete releases the driver object. Programs already linked against the
// shader keep working.
func (s *Shader) Delete() {
	if s.handle != 0 {
		s.ctx.driver.DeleteShader(s.handle)
		s.handle = 0
	}
}

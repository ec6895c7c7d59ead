package surfaces

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex layout of the position attribute: vec4 floats, tightly packed.
const (
	positionComponents = 4
	positionStride     = 0
)

// Program is a linked shader program with a fixed table of attribute and
// uniform slots. Setters bind the program through its Context and silently
// skip slots the linked source does not declare.
type Program struct {
	ctx     *Context
	handle  ProgramHandle
	shaders []*Shader
	slots   slots

	texUnit uint32
	texture TextureHandle
}

// NewProgram links shaders into a program and resolves its slots. A failed
// link returns a *LinkError and releases the program object.
func NewProgram(ctx *Context, shaders []*Shader, opts ...ProgramOption) (*Program, error) {
	if len(shaders) == 0 {
		return nil, ErrNoShaders
	}

	d := ctx.driver
	h := d.CreateProgram()
	for _, s := range shaders {
		d.AttachShader(h, s.handle)
	}
	d.LinkProgram(h)

	if !d.ProgramLinked(h) {
		log := diagnostic(d.ProgramInfoLog(h), "driver reported no diagnostic")
		d.DeleteProgram(h)
		return nil, &LinkError{Log: log}
	}

	p := &Program{
		ctx:     ctx,
		handle:  h,
		shaders: append([]*Shader(nil), shaders...),
		slots:   resolveSlots(d, h),
	}

	for _, opt := range opts {
		opt(p)
	}

	ctx.log.Debug("program linked",
		slog.Any("handle", h),
		slog.Int("stages", len(shaders)),
		slog.Any("absent", p.slots.absent()))

	return p, nil
}

// Handle returns the driver's program name.
func (p *Program) Handle() ProgramHandle { return p.handle }

// Shaders returns the stages the program was linked from.
func (p *Program) Shaders() []*Shader { return p.shaders }

// Slot returns the resolved slot for one of the fixed names. Unknown names
// are absent.
func (p *Program) Slot(name string) Slot { return p.slots.byName(name) }

// Activate binds the program unless it is already bound.
func (p *Program) Activate() {
	p.ctx.Use(p.handle)
}

// SetViewportSize sets u_Screen.
func (p *Program) SetViewportSize(width, height float32) {
	p.Activate()
	if loc, ok := p.slots.screen.Location(); ok {
		p.ctx.driver.Uniform2f(loc, width, height)
	}
}

// SetElapsedTime sets u_Time.
func (p *Program) SetElapsedTime(t float32) {
	p.Activate()
	if loc, ok := p.slots.time.Location(); ok {
		p.ctx.driver.Uniform1f(loc, t)
	}
}

// SetCameraBasis sets u_Up and u_Eye.
func (p *Program) SetCameraBasis(up, eye mgl32.Vec3) {
	p.Activate()
	if loc, ok := p.slots.up.Location(); ok {
		p.ctx.driver.Uniform3fv(loc, up)
	}
	if loc, ok := p.slots.eye.Location(); ok {
		p.ctx.driver.Uniform3fv(loc, eye)
	}
}

// SetViewTransform sets u_View to the inverse of view.
//
// A singular view pushes the identity matrix and returns an error wrapping
// ErrSingularMatrix.
func (p *Program) SetViewTransform(view mgl32.Mat4) error {
	p.Activate()
	loc, ok := p.slots.view.Location()
	if !ok {
		return nil
	}

	inv, err := invert(view)
	p.ctx.driver.UniformMatrix4fv(loc, inv)
	if err != nil {
		p.ctx.log.Warn("view transform not invertible, using identity", slog.Any("program", p.handle))
		return fmt.Errorf("set view transform: %w", err)
	}
	return nil
}

// Draw renders d with the program. The position attribute is enabled only
// for the duration of the call and only when d provides a position buffer.
func (p *Program) Draw(d Drawable) {
	p.Activate()
	drv := p.ctx.driver

	loc, ok := p.slots.pos.Location()
	enabled := ok && d.BindPos()
	if enabled {
		drv.EnableVertexAttribArray(uint32(loc))
		drv.VertexAttribPointer(uint32(loc), positionComponents, false, positionStride)
	}

	d.BindIdx()
	drv.DrawElements(d.DrawMode(), d.ElemCount())

	if enabled {
		drv.DisableVertexAttribArray(uint32(loc))
	}
}

// Delete releases the program and its texture. Shaders stay owned by the
// caller.
func (p *Program) Delete() {
	d := p.ctx.driver
	if p.texture != 0 {
		d.DeleteTexture(p.texture)
		p.texture = 0
	}
	if p.handle != 0 {
		p.ctx.release(p.handle)
		d.DeleteProgram(p.handle)
		p.handle = 0
	}
}

// invert returns the inverse of m, or the identity and ErrSingularMatrix
// when m has no inverse.
func invert(m mgl32.Mat4) (mgl32.Mat4, error) {
	if m.Det() == 0 {
		return mgl32.Ident4(), ErrSingularMatrix
	}
	return m.Inv(), nil
}

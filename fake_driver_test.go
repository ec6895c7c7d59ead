package surfaces_test

import (
	"strings"

	surfaces "github.com/wpchop/implicit-surfaces"
)

// badSource makes fakeDriver reject a stage.
const badSource = "#error"

const (
	testVertexSource = `
in vec4 vs_Pos;
void main() { gl_Position = vs_Pos; }
`
	testFragmentSource = `
uniform mat4 u_View;
uniform vec2 u_Screen;
uniform vec3 u_Up;
uniform vec3 u_Eye;
uniform float u_Time;
uniform sampler2D u_Texture;
void main() {}
`
)

type call struct {
	name string
	args []any
}

type fakeShader struct {
	kind     surfaces.StageKind
	source   string
	compiled bool
}

type fakeProgram struct {
	shaders []surfaces.ShaderHandle
	linked  bool
	log     string
	locs    map[string]int32
}

// fakeDriver records every call and compiles by inspection: a stage fails
// when its source contains badSource, a program links when it has both a
// vertex and a fragment stage, and a name resolves when it occurs in the
// source of an attached stage.
type fakeDriver struct {
	calls []call

	next     uint32
	shaders  map[surfaces.ShaderHandle]*fakeShader
	programs map[surfaces.ProgramHandle]*fakeProgram
	textures map[surfaces.TextureHandle]bool

	silentLogs bool
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		shaders:  make(map[surfaces.ShaderHandle]*fakeShader),
		programs: make(map[surfaces.ProgramHandle]*fakeProgram),
		textures: make(map[surfaces.TextureHandle]bool),
	}
}

func (d *fakeDriver) record(name string, args ...any) {
	d.calls = append(d.calls, call{name: name, args: args})
}

// count returns how many times name was called.
func (d *fakeDriver) count(name string) int {
	n := 0
	for _, c := range d.calls {
		if c.name == name {
			n++
		}
	}
	return n
}

// names returns the recorded call names in order.
func (d *fakeDriver) names() []string {
	out := make([]string, len(d.calls))
	for i, c := range d.calls {
		out[i] = c.name
	}
	return out
}

// last returns the most recent call named name.
func (d *fakeDriver) last(name string) (call, bool) {
	for i := len(d.calls) - 1; i >= 0; i-- {
		if d.calls[i].name == name {
			return d.calls[i], true
		}
	}
	return call{}, false
}

func (d *fakeDriver) reset() {
	d.calls = nil
}

func (d *fakeDriver) handle() uint32 {
	d.next++
	return d.next
}

func (d *fakeDriver) CreateShader(kind surfaces.StageKind) surfaces.ShaderHandle {
	h := surfaces.ShaderHandle(d.handle())
	d.shaders[h] = &fakeShader{kind: kind}
	d.record("CreateShader", kind)
	return h
}

func (d *fakeDriver) ShaderSource(s surfaces.ShaderHandle, source string) {
	d.shaders[s].source = source
	d.record("ShaderSource", s)
}

func (d *fakeDriver) CompileShader(s surfaces.ShaderHandle) {
	sh := d.shaders[s]
	sh.compiled = !strings.Contains(sh.source, badSource)
	d.record("CompileShader", s)
}

func (d *fakeDriver) ShaderCompiled(s surfaces.ShaderHandle) bool {
	d.record("ShaderCompiled", s)
	return d.shaders[s].compiled
}

func (d *fakeDriver) ShaderInfoLog(s surfaces.ShaderHandle) string {
	d.record("ShaderInfoLog", s)
	if d.silentLogs || d.shaders[s].compiled {
		return ""
	}
	return "ERROR: 0:1: '#error' : user-defined error"
}

func (d *fakeDriver) DeleteShader(s surfaces.ShaderHandle) {
	delete(d.shaders, s)
	d.record("DeleteShader", s)
}

func (d *fakeDriver) CreateProgram() surfaces.ProgramHandle {
	h := surfaces.ProgramHandle(d.handle())
	d.programs[h] = &fakeProgram{}
	d.record("CreateProgram")
	return h
}

func (d *fakeDriver) AttachShader(p surfaces.ProgramHandle, s surfaces.ShaderHandle) {
	prog := d.programs[p]
	prog.shaders = append(prog.shaders, s)
	d.record("AttachShader", p, s)
}

func (d *fakeDriver) LinkProgram(p surfaces.ProgramHandle) {
	prog := d.programs[p]
	stages := map[surfaces.StageKind]bool{}
	var sources []string
	for _, s := range prog.shaders {
		sh := d.shaders[s]
		stages[sh.kind] = true
		sources = append(sources, sh.source)
	}

	switch {
	case !stages[surfaces.VertexStage]:
		prog.log = "error: no vertex stage attached"
	case !stages[surfaces.FragmentStage]:
		prog.log = "error: no fragment stage attached"
	default:
		prog.linked = true
	}

	prog.locs = make(map[string]int32)
	all := strings.Join(sources, "\n")
	next := int32(0)
	for _, name := range []string{
		surfaces.AttrPosition, surfaces.UniformView, surfaces.UniformScreen, surfaces.UniformUp,
		surfaces.UniformEye, surfaces.UniformTime, surfaces.UniformTexture,
	} {
		if strings.Contains(all, name) {
			prog.locs[name] = next
			next++
		}
	}
	d.record("LinkProgram", p)
}

func (d *fakeDriver) ProgramLinked(p surfaces.ProgramHandle) bool {
	d.record("ProgramLinked", p)
	return d.programs[p].linked
}

func (d *fakeDriver) ProgramInfoLog(p surfaces.ProgramHandle) string {
	d.record("ProgramInfoLog", p)
	if d.silentLogs {
		return ""
	}
	return d.programs[p].log
}

func (d *fakeDriver) DeleteProgram(p surfaces.ProgramHandle) {
	delete(d.programs, p)
	d.record("DeleteProgram", p)
}

func (d *fakeDriver) UseProgram(p surfaces.ProgramHandle) {
	d.record("UseProgram", p)
}

func (d *fakeDriver) location(p surfaces.ProgramHandle, name string) int32 {
	if loc, ok := d.programs[p].locs[name]; ok {
		return loc
	}
	return -1
}

func (d *fakeDriver) AttribLocation(p surfaces.ProgramHandle, name string) int32 {
	d.record("AttribLocation", p, name)
	return d.location(p, name)
}

func (d *fakeDriver) UniformLocation(p surfaces.ProgramHandle, name string) int32 {
	d.record("UniformLocation", p, name)
	return d.location(p, name)
}

func (d *fakeDriver) Uniform1f(loc int32, v float32) {
	d.record("Uniform1f", loc, v)
}

func (d *fakeDriver) Uniform2f(loc int32, x, y float32) {
	d.record("Uniform2f", loc, x, y)
}

func (d *fakeDriver) Uniform3fv(loc int32, v [3]float32) {
	d.record("Uniform3fv", loc, v)
}

func (d *fakeDriver) Uniform1i(loc int32, v int32) {
	d.record("Uniform1i", loc, v)
}

func (d *fakeDriver) UniformMatrix4fv(loc int32, m [16]float32) {
	d.record("UniformMatrix4fv", loc, m)
}

func (d *fakeDriver) EnableVertexAttribArray(loc uint32) {
	d.record("EnableVertexAttribArray", loc)
}

func (d *fakeDriver) DisableVertexAttribArray(loc uint32) {
	d.record("DisableVertexAttribArray", loc)
}

func (d *fakeDriver) VertexAttribPointer(loc uint32, size int32, normalized bool, stride int32) {
	d.record("VertexAttribPointer", loc, size, normalized, stride)
}

func (d *fakeDriver) DrawElements(mode surfaces.DrawMode, count int32) {
	d.record("DrawElements", mode, count)
}

func (d *fakeDriver) CreateTexture() surfaces.TextureHandle {
	h := surfaces.TextureHandle(d.handle())
	d.textures[h] = true
	d.record("CreateTexture")
	return h
}

func (d *fakeDriver) DeleteTexture(t surfaces.TextureHandle) {
	delete(d.textures, t)
	d.record("DeleteTexture", t)
}

func (d *fakeDriver) ActiveTexture(unit uint32) {
	d.record("ActiveTexture", unit)
}

func (d *fakeDriver) BindTexture(t surfaces.TextureHandle) {
	d.record("BindTexture", t)
}

func (d *fakeDriver) TexParameter(param surfaces.TextureParam, value surfaces.TextureValue) {
	d.record("TexParameter", param, value)
}

func (d *fakeDriver) TexImage2D(width, height int32, pixels []byte) {
	d.record("TexImage2D", width, height, append([]byte(nil), pixels...))
}

// fakeDrawable is a Drawable that records into the driver's call log.
type fakeDrawable struct {
	d      *fakeDriver
	hasPos bool
}

func (f *fakeDrawable) BindPos() bool {
	f.d.record("BindPos")
	return f.hasPos
}

func (f *fakeDrawable) BindIdx() {
	f.d.record("BindIdx")
}

func (f *fakeDrawable) DrawMode() surfaces.DrawMode { return surfaces.Triangles }

func (f *fakeDrawable) ElemCount() int32 { return 6 }

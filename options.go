package surfaces

// ProgramOption configures a Program.
type ProgramOption func(*Program)

// WithTextureUnit sets the texture unit BindTexture binds to and writes into
// u_Texture. The default is unit 0.
func WithTextureUnit(unit uint32) ProgramOption {
	return func(p *Program) { p.texUnit = unit }
}

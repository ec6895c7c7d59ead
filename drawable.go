package surfaces

// Drawable is geometry a Program can draw.
type Drawable interface {
	// BindPos binds the position buffer and reports whether one exists.
	BindPos() bool
	// BindIdx binds the 32-bit index buffer.
	BindIdx()
	DrawMode() DrawMode
	ElemCount() int32
}

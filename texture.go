package surfaces

import (
	"image"

	"golang.org/x/image/draw"
)

// BindTexture uploads img into the program's texture and binds it to the
// program's texture unit. The texture object is created on the first call
// and reused afterwards. u_Texture is set to the unit when present.
func (p *Program) BindTexture(img image.Image) error {
	if img == nil || img.Bounds().Empty() {
		return ErrEmptyImage
	}

	p.Activate()
	d := p.ctx.driver
	rgba := toRGBA(img)

	d.ActiveTexture(p.texUnit)
	if p.texture == 0 {
		p.texture = d.CreateTexture()
		d.BindTexture(p.texture)
		d.TexParameter(TextureWrapS, ClampToEdge)
		d.TexParameter(TextureWrapT, ClampToEdge)
		d.TexParameter(TextureMinFilter, Nearest)
		d.TexParameter(TextureMagFilter, Nearest)
	} else {
		d.BindTexture(p.texture)
	}

	size := rgba.Rect.Size()
	d.TexImage2D(int32(size.X), int32(size.Y), rgba.Pix)

	if loc, ok := p.slots.texture.Location(); ok {
		d.Uniform1i(loc, int32(p.texUnit))
	}
	return nil
}

// Texture returns the program's texture, or 0 before the first BindTexture.
func (p *Program) Texture() TextureHandle { return p.texture }

// toRGBA returns img as tightly packed RGBA anchored at the origin.
func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) && rgba.Stride == 4*b.Dx() {
		return rgba
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

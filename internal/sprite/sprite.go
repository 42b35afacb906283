package sprite

import "github.com/vovakirdan/pixel-arcade/internal/core"

// Sprite draws the current frame of its animation from a shared texture.
type Sprite struct {
	Pos       core.Vec2      // Top-left corner in screen pixels
	Composite core.Composite // How frames combine with the screen

	tex  *core.Texture
	anim *Animation
}

// NewSprite creates a sprite at pos. The texture is shared; the animation is
// owned by the sprite and must not be handed to another one.
func NewSprite(tex *core.Texture, anim *Animation, pos core.Vec2) *Sprite {
	return &Sprite{
		Pos:  pos,
		tex:  tex,
		anim: anim,
	}
}

// Update advances the animation by dt ticks.
func (s *Sprite) Update(dt int) {
	s.anim.Advance(dt)
}

// Draw blits the current frame at Pos. It does not touch animation state.
func (s *Sprite) Draw(dst *core.Screen) {
	dst.BlitWith(s.tex, s.anim.Frame().Src, s.Pos, s.Composite)
}

// Bounds returns the screen-space box of the current frame.
func (s *Sprite) Bounds() core.Rect {
	return core.RectAt(s.Pos, s.anim.Frame().Src.Size())
}

// Animation returns the sprite's animation.
func (s *Sprite) Animation() *Animation {
	return s.anim
}

// Texture returns the shared texture.
func (s *Sprite) Texture() *core.Texture {
	return s.tex
}

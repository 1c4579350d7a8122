package hooks

import (
	"image"

	"badc0de.net/pkg/go-alttextures/textures"
)

// DrawDecision tells the host how to draw an entity. If Substitute is
// false the host draws the entity as it normally would.
type DrawDecision struct {
	Substitute bool

	// Texture is the sheet to draw from and Source the cell within it.
	Texture image.Image
	Source  image.Rectangle

	Model *textures.TextureModel
}

// OnDraw decides whether e is drawn with an alternative texture.
//
// The entity keeps its original look if it has no tag, if its tag selects no
// variation, or if the tagged texture is not registered (any more).
func (h *Handler) OnDraw(e Entity) DrawDecision {
	tag, ok := h.store.Get(e.EntityID())
	if !ok || !tag.Substitutes() || tag.Variation < 0 {
		return DrawDecision{}
	}
	m, ok := h.reg.Model(tag.TextureID)
	if !ok || tag.Variation >= m.Variations() {
		return DrawDecision{}
	}
	return DrawDecision{
		Substitute: true,
		Texture:    m.Texture,
		Source:     m.VariationRect(tag.Variation),
		Model:      m,
	}
}

package hooks

import (
	"github.com/golang/glog"

	"badc0de.net/pkg/go-alttextures/tags"
	"badc0de.net/pkg/go-alttextures/textures"
)

// OnGiantCropCreated gives a newly grown giant crop a random alternative
// texture, if any is registered for it in the current season. Giant crops
// cannot be painted by hand, so this is the only way they get one.
func (h *Handler) OnGiantCropCreated(c *GiantCrop) {
	bare := textures.BareModelName(textures.GiantCrop, c.HarvestName)
	if !h.reg.HasAlternativeTexture(bare) {
		return
	}
	h.assignRandom(c.ID, bare)
}

// assignRandom tags id with a random variation of a random model available
// for bare in the current season. It does nothing if there is none.
func (h *Handler) assignRandom(id tags.EntityID, bare string) bool {
	var candidates []*textures.TextureModel
	for _, m := range h.reg.AvailableModels(bare, h.host.CurrentSeason()) {
		if m.Variations() > 0 {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		return false
	}
	m := candidates[h.rnd.Intn(len(candidates))]
	tag := tags.ForModel(m, h.rnd.Intn(m.Variations()))
	if err := h.store.Set(id, tag); err != nil {
		glog.Errorf("assigning %s to %s: %v", tag, id, err)
		return false
	}
	return true
}

package textures

import (
	"sort"
)

// Registry holds registered texture models keyed by texture id.
//
// A Registry is not safe for concurrent use. Callers that share one between
// goroutines must serialize access themselves.
type Registry struct {
	models map[string]*TextureModel
	order  []string

	// bare model name -> texture ids, in registration order
	byBareName map[string][]string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		models:     make(map[string]*TextureModel),
		byBareName: make(map[string][]string),
	}
}

// Len returns the number of registered models.
func (r *Registry) Len() int {
	return len(r.models)
}

// Model returns the model registered under textureID.
func (r *Registry) Model(textureID string) (*TextureModel, bool) {
	m, ok := r.models[textureID]
	return m, ok
}

// AvailableModels returns the models registered for bareName that apply in
// season: those registered for that season plus the season-less ones. A
// NoSeason query does not filter by season at all.
func (r *Registry) AvailableModels(bareName string, season Season) []*TextureModel {
	var out []*TextureModel
	for _, id := range r.byBareName[bareName] {
		m := r.models[id]
		if season == NoSeason || m.Season == "" || m.Season == string(season) {
			out = append(out, m)
		}
	}
	return out
}

// HasAlternativeTexture reports whether any model is registered for bareName,
// in any season.
func (r *Registry) HasAlternativeTexture(bareName string) bool {
	return len(r.byBareName[bareName]) > 0
}

// Models iterates over all models in registration order.
func (r *Registry) Models() func(yield func(*TextureModel) bool) {
	return func(yield func(*TextureModel) bool) {
		for _, id := range r.order {
			if !yield(r.models[id]) {
				return
			}
		}
	}
}

// ModelsByOwner returns the models registered by owner, in registration order.
func (r *Registry) ModelsByOwner(owner string) []*TextureModel {
	var out []*TextureModel
	for _, id := range r.order {
		if m := r.models[id]; m.Owner == owner {
			out = append(out, m)
		}
	}
	return out
}

// Owners returns the distinct owners with at least one model, sorted.
func (r *Registry) Owners() []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range r.models {
		if !seen[m.Owner] {
			seen[m.Owner] = true
			out = append(out, m.Owner)
		}
	}
	sort.Strings(out)
	return out
}

// put stores m under its texture id, replacing any model stored there.
func (r *Registry) put(m *TextureModel) {
	if old, ok := r.models[m.TextureID]; ok {
		r.models[m.TextureID] = m
		if oldBare := old.BareName(); oldBare != m.BareName() {
			r.byBareName[oldBare] = removeID(r.byBareName[oldBare], m.TextureID)
			if len(r.byBareName[oldBare]) == 0 {
				delete(r.byBareName, oldBare)
			}
			r.byBareName[m.BareName()] = append(r.byBareName[m.BareName()], m.TextureID)
		}
		return
	}
	r.models[m.TextureID] = m
	r.order = append(r.order, m.TextureID)
	r.byBareName[m.BareName()] = append(r.byBareName[m.BareName()], m.TextureID)
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, i := range ids {
		if i != id {
			out = append(out, i)
		}
	}
	return out
}

// Package tags keeps the texture selection attached to individual entities.
//
// The game persists this selection with each entity. Here it lives in a side
// table keyed by entity identity, behind the Store interface, so that a host
// can keep it wherever it keeps the rest of its entity state.
package tags

import (
	"fmt"

	"badc0de.net/pkg/go-alttextures/textures"
)

// NoVariation is the variation of an entity that keeps its original look.
const NoVariation = -1

// EntityID identifies an entity instance within a host session.
type EntityID string

// Tag is the texture selection of one entity.
type Tag struct {
	Owner     string
	TextureID string
	Season    string
	Variation int
}

// Substitutes reports whether the tag asks for a texture to be drawn instead
// of the entity's own sprite.
func (t Tag) Substitutes() bool {
	return t.TextureID != "" && t.Variation != NoVariation
}

// BareModelName returns the texture id without owner prefix and season
// suffix.
func (t Tag) BareModelName() string {
	return textures.StripModelName(t.TextureID, t.Owner, textures.Season(t.Season))
}

func (t Tag) String() string {
	return fmt.Sprintf("%s#%d", t.TextureID, t.Variation)
}

// ForModel returns a tag selecting variation of m.
func ForModel(m *textures.TextureModel, variation int) Tag {
	return Tag{
		Owner:     m.Owner,
		TextureID: m.TextureID,
		Season:    m.Season,
		Variation: variation,
	}
}

// Default returns the tag given to an entity the first time it is painted:
// the default owner's id for modelName, which no content pack registers.
//
// If season is set, it is tracked in the tag and must already be part of
// modelName.
func Default(modelName string, season textures.Season) Tag {
	return Tag{
		Owner:     textures.DefaultOwner,
		TextureID: textures.TextureID(textures.DefaultOwner, modelName),
		Season:    string(season),
		Variation: 0,
	}
}

// Store is a side table of tags keyed by entity.
type Store interface {
	Get(id EntityID) (Tag, bool)
	Set(id EntityID, t Tag) error
	Delete(id EntityID) error
}

// MemoryStore is an in-memory Store. It is not safe for concurrent use.
type MemoryStore struct {
	tags map[EntityID]Tag
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tags: make(map[EntityID]Tag)}
}

func (s *MemoryStore) Get(id EntityID) (Tag, bool) {
	t, ok := s.tags[id]
	return t, ok
}

func (s *MemoryStore) Set(id EntityID, t Tag) error {
	s.tags[id] = t
	return nil
}

func (s *MemoryStore) Delete(id EntityID) error {
	delete(s.tags, id)
	return nil
}

// Len returns the number of tagged entities.
func (s *MemoryStore) Len() int {
	return len(s.tags)
}

// Package hooks implements the callbacks a host game invokes when it draws
// an entity or when the player uses one of the texture tools.
//
// The host owns the game loop and calls into a Handler synchronously from its
// update and render thread. The Handler never calls back into the game except
// through the Host interface.
package hooks

import (
	"image"
	"math/rand"

	"badc0de.net/pkg/go-alttextures/menu"
	"badc0de.net/pkg/go-alttextures/tags"
	"badc0de.net/pkg/go-alttextures/textures"
)

// TileSize is the size of a map tile in pixels.
const TileSize = 64

////// Interfaces //////

// Host is the game session the handler serves.
type Host interface {
	CurrentSeason() textures.Season

	// ShowMessage shows a short-lived notice to the player.
	ShowMessage(msg string)

	// OpenMenu opens the texture selection menu described by req. The
	// menu reports the player's choice through menu.Confirm.
	OpenMenu(req *menu.Request)
}

// RandomSource is implemented by hosts that want to control the random
// choices the handler makes, e.g. to keep them in step with the game's own
// seeded generator.
type RandomSource interface {
	Rand() *rand.Rand
}

// Location answers "what is on this tile" for the location the player is in.
// Each method returns nil if there is nothing of that kind on the tile.
type Location interface {
	BuildingAt(tile image.Point) *Building
	ObjectAt(tile image.Point) *Object
	TerrainFeatureAt(tile image.Point) TerrainFeature
	CharacterAt(tile image.Point) *Character
}

////// Entities //////

// Entity is anything that can carry a texture tag.
type Entity interface {
	EntityID() tags.EntityID
}

type Building struct {
	ID           tags.EntityID
	BuildingType string
	TilesWide    int
}

type Object struct {
	ID   tags.EntityID
	Name string

	// Kind is Object, Craftable or Furniture. Unknown is treated as Object.
	Kind textures.TextureType
}

type Character struct {
	ID   tags.EntityID
	Name string
}

// TerrainFeature is one of the terrain feature types below.
type TerrainFeature interface {
	Entity
	terrainFeature()
}

// Soil is tilled ground. It cannot be painted.
type Soil struct{ ID tags.EntityID }

// GiantCrop is a crop that merged into a single large sprite. It is painted
// automatically when created and cannot be painted by hand.
type GiantCrop struct {
	ID          tags.EntityID
	HarvestName string
}

// Grass cannot be painted by hand either.
type Grass struct{ ID tags.EntityID }

type Flooring struct {
	ID   tags.EntityID
	Name string
}

type Tree struct {
	ID tags.EntityID

	// TreeType is the name used in model names, e.g. "Oak" or "Mahogany".
	TreeType string
}

type FruitTree struct {
	ID tags.EntityID

	// SaplingName is the name of the sapling the tree grows from, e.g.
	// "Cherry Sapling".
	SaplingName string
}

// OtherTerrainFeature stands for terrain features without texture support.
type OtherTerrainFeature struct{ ID tags.EntityID }

func (b *Building) EntityID() tags.EntityID            { return b.ID }
func (o *Object) EntityID() tags.EntityID              { return o.ID }
func (c *Character) EntityID() tags.EntityID           { return c.ID }
func (s *Soil) EntityID() tags.EntityID                { return s.ID }
func (g *GiantCrop) EntityID() tags.EntityID           { return g.ID }
func (g *Grass) EntityID() tags.EntityID               { return g.ID }
func (f *Flooring) EntityID() tags.EntityID            { return f.ID }
func (t *Tree) EntityID() tags.EntityID                { return t.ID }
func (f *FruitTree) EntityID() tags.EntityID           { return f.ID }
func (o *OtherTerrainFeature) EntityID() tags.EntityID { return o.ID }

func (*Soil) terrainFeature()                {}
func (*GiantCrop) terrainFeature()           {}
func (*Grass) terrainFeature()               {}
func (*Flooring) terrainFeature()            {}
func (*Tree) terrainFeature()                {}
func (*FruitTree) terrainFeature()           {}
func (*OtherTerrainFeature) terrainFeature() {}

// objectType maps an object's kind to the texture type of its models.
func objectType(o *Object) textures.TextureType {
	switch o.Kind {
	case textures.Craftable, textures.Furniture:
		return o.Kind
	default:
		return textures.Object
	}
}

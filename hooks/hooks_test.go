package hooks

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"badc0de.net/pkg/go-alttextures/menu"
	"badc0de.net/pkg/go-alttextures/tags"
	"badc0de.net/pkg/go-alttextures/textures"
	"badc0de.net/pkg/go-alttextures/ttesting"
)

type fakeHost struct {
	season   textures.Season
	messages []string
	menus    []*menu.Request
}

func (h *fakeHost) CurrentSeason() textures.Season { return h.season }
func (h *fakeHost) ShowMessage(msg string)         { h.messages = append(h.messages, msg) }
func (h *fakeHost) OpenMenu(req *menu.Request)     { h.menus = append(h.menus, req) }
func (h *fakeHost) Rand() *rand.Rand               { return rand.New(rand.NewSource(1)) }

type fakeLocation struct {
	buildings  map[image.Point]*Building
	objects    map[image.Point]*Object
	terrain    map[image.Point]TerrainFeature
	characters map[image.Point]*Character
}

func newFakeLocation() *fakeLocation {
	return &fakeLocation{
		buildings:  make(map[image.Point]*Building),
		objects:    make(map[image.Point]*Object),
		terrain:    make(map[image.Point]TerrainFeature),
		characters: make(map[image.Point]*Character),
	}
}

func (l *fakeLocation) BuildingAt(p image.Point) *Building   { return l.buildings[p] }
func (l *fakeLocation) ObjectAt(p image.Point) *Object       { return l.objects[p] }
func (l *fakeLocation) CharacterAt(p image.Point) *Character { return l.characters[p] }
func (l *fakeLocation) TerrainFeatureAt(p image.Point) TerrainFeature {
	if f, ok := l.terrain[p]; ok {
		return f
	}
	return nil
}

// px returns the pixel position of the centre of a tile.
func px(x, y int) image.Point {
	return image.Pt(x*TileSize+TileSize/2, y*TileSize+TileSize/2)
}

func setup(t *testing.T) (*Handler, *fakeHost, *fakeLocation, *tags.MemoryStore) {
	t.Helper()
	reg := textures.New()
	sheet := []image.Image{
		ttesting.SolidImage(16, 16, color.RGBA{R: 0xFF, A: 0xFF}),
		ttesting.SolidImage(16, 16, color.RGBA{G: 0xFF, A: 0xFF}),
	}
	models := []*textures.TextureModel{
		{ItemName: "Brick", Type: "Flooring"},
		{ItemName: "Brick", Type: "Flooring", Seasons: []string{"spring"}},
		{ItemName: "Barn", Type: "Building"},
		{ItemName: "Keg", Type: "Craftable"},
		{ItemName: "Abigail", Type: "Character", Seasons: []string{"winter"}},
		{ItemName: "Oak", Type: "Tree", Seasons: []string{"summer"}},
		{ItemName: "Melon", Type: "GiantCrop"},
	}
	for _, m := range models {
		if err := reg.AddAlternativeTexture(m, "Pack", sheet); err != nil {
			t.Fatalf("AddAlternativeTexture(%s): %v", m.NameWithSeason(), err)
		}
	}
	host := &fakeHost{season: textures.Spring}
	store := tags.NewMemoryStore()
	return New(reg, store, host), host, newFakeLocation(), store
}

func TestOnDraw(t *testing.T) {
	h, _, _, store := setup(t)
	floor := &Flooring{ID: "floor-1", Name: "Brick"}

	if d := h.OnDraw(floor); d.Substitute {
		t.Errorf("untagged entity substituted")
	}

	m, _ := h.Registry().Model("Pack.Flooring_Brick")
	store.Set(floor.ID, tags.ForModel(m, 1))
	d := h.OnDraw(floor)
	if !d.Substitute {
		t.Fatalf("tagged entity not substituted")
	}
	if want := image.Rect(0, 16, 16, 32); d.Source != want {
		t.Errorf("source: got %v; want %v", d.Source, want)
	}
	if d.Texture != m.Texture {
		t.Errorf("texture is not the model's sheet")
	}

	store.Set(floor.ID, tags.ForModel(m, tags.NoVariation))
	ttesting.AssertEqualBool(t, "variation -1 falls through", h.OnDraw(floor).Substitute, false)

	store.Set(floor.ID, tags.ForModel(m, 2))
	ttesting.AssertEqualBool(t, "variation beyond sheet falls through", h.OnDraw(floor).Substitute, false)

	store.Set(floor.ID, tags.Tag{Owner: "Gone", TextureID: "Gone.Flooring_Brick", Variation: 0})
	ttesting.AssertEqualBool(t, "unknown model falls through", h.OnDraw(floor).Substitute, false)
}

func TestDefaultTagThenDraw(t *testing.T) {
	h, _, _, store := setup(t)
	obj := &Object{ID: "keg-1", Name: "Keg", Kind: textures.Craftable}

	// A default id that a pack happens to register resolves on draw.
	tag := h.tagOf(target{id: obj.ID, typ: textures.Craftable, name: "Keg"}, textures.NoSeason)
	ttesting.AssertEqualString(t, "default id", tag.TextureID, "Stardew.Default.Craftable_Keg")
	h.Registry().AddAlternativeTexture(&textures.TextureModel{ItemName: "Keg", Type: "Craftable"}, textures.DefaultOwner, []image.Image{ttesting.SolidImage(16, 16, color.RGBA{A: 0xFF})})
	ttesting.AssertEqualBool(t, "default tag substitutes once resolvable", h.OnDraw(obj).Substitute, true)

	tag.Variation = tags.NoVariation
	store.Set(obj.ID, tag)
	ttesting.AssertEqualBool(t, "explicit -1 never substitutes", h.OnDraw(obj).Substitute, false)
}

func TestPaintBucketOpensMenu(t *testing.T) {
	h, host, loc, store := setup(t)
	loc.terrain[image.Pt(3, 4)] = &Flooring{ID: "floor-1", Name: "Brick"}

	out := h.OnToolUse(&Tool{Kind: PaintBucket}, loc, px(3, 4))
	ttesting.AssertEqualBool(t, "handled", out.Handled, true)
	ttesting.AssertEqualBool(t, "canceled", out.Canceled, true)
	if out.Menu == nil || len(host.menus) != 1 {
		t.Fatalf("menu not opened; messages: %v", host.messages)
	}
	ttesting.AssertEqualString(t, "bare name", out.Menu.BareModelName, "Flooring_Brick")
	// vanilla + 2 variations of each of the two spring-visible models
	ttesting.AssertEqualInt(t, "candidates", len(out.Menu.Candidates), 5)

	tag, ok := store.Get("floor-1")
	ttesting.AssertEqualBool(t, "default tag assigned", ok, true)
	ttesting.AssertEqualString(t, "default tag id", tag.TextureID, "Stardew.Default.Flooring_Brick_spring")
}

func TestPaintBucketPrefersBuildings(t *testing.T) {
	h, host, loc, _ := setup(t)
	loc.buildings[image.Pt(1, 1)] = &Building{ID: "barn-1", BuildingType: "Barn", TilesWide: 7}
	loc.objects[image.Pt(1, 1)] = &Object{ID: "keg-1", Name: "Keg", Kind: textures.Craftable}

	out := h.OnToolUse(&Tool{Kind: PaintBucket}, loc, px(1, 1))
	if out.Menu == nil {
		t.Fatalf("menu not opened; messages: %v", host.messages)
	}
	ttesting.AssertEqualString(t, "targets building", string(out.Menu.EntityID), "barn-1")
	ttesting.AssertEqualInt(t, "tile width", out.Menu.TileWidth, 7)
}

func TestPaintBucketRejects(t *testing.T) {
	h, host, loc, store := setup(t)
	loc.terrain[image.Pt(0, 0)] = &Soil{ID: "soil"}
	loc.terrain[image.Pt(1, 0)] = &Grass{ID: "grass"}
	loc.terrain[image.Pt(2, 0)] = &GiantCrop{ID: "melon"}
	loc.terrain[image.Pt(3, 0)] = &OtherTerrainFeature{ID: "bush"}
	loc.terrain[image.Pt(4, 0)] = &Tree{ID: "oak", TreeType: "Oak"}

	for x := 0; x < 3; x++ {
		out := h.OnToolUse(&Tool{Kind: PaintBucket}, loc, px(x, 0))
		ttesting.AssertEqualString(t, "cannot paint", out.Message, msgCannotPaint)
	}

	out := h.OnToolUse(&Tool{Kind: PaintBucket}, loc, px(3, 0))
	ttesting.AssertEqualString(t, "unsupported terrain is silent", out.Message, "")
	ttesting.AssertEqualBool(t, "still canceled", out.Canceled, true)

	// Oak only has summer textures.
	out = h.OnToolUse(&Tool{Kind: PaintBucket}, loc, px(4, 0))
	ttesting.AssertEqualString(t, "no textures this season", out.Message, "Tree_Oak has no alternative textures for this season!")
	if out.Menu != nil {
		t.Errorf("menu opened without candidates")
	}

	out = h.OnToolUse(&Tool{Kind: PaintBucket}, loc, px(9, 9))
	ttesting.AssertEqualString(t, "empty tile", out.Message, "")

	ttesting.AssertEqualInt(t, "messages shown", len(host.messages), 4)
	ttesting.AssertEqualInt(t, "only the oak got a default tag", store.Len(), 1)
}

func TestScissors(t *testing.T) {
	h, host, loc, _ := setup(t)
	loc.characters[image.Pt(2, 2)] = &Character{ID: "abigail", Name: "Abigail"}

	out := h.OnToolUse(&Tool{Kind: Scissors}, loc, px(2, 2))
	ttesting.AssertEqualString(t, "no spring textures", out.Message, "Character_Abigail has no alternative textures for this season!")

	host.season = textures.Winter
	h.Tags().Delete("abigail")
	out = h.OnToolUse(&Tool{Kind: Scissors}, loc, px(2, 2))
	if out.Menu == nil {
		t.Fatalf("menu not opened; messages: %v", host.messages)
	}
	ttesting.AssertEqualString(t, "title", out.Menu.Title, menu.TitleScissors)
}

func TestOtherToolIsNotHandled(t *testing.T) {
	h, _, loc, _ := setup(t)
	out := h.OnToolUse(&Tool{Kind: OtherTool}, loc, px(0, 0))
	ttesting.AssertEqualBool(t, "handled", out.Handled, false)
	ttesting.AssertEqualBool(t, "canceled", out.Canceled, false)
}

func TestPaintBrush(t *testing.T) {
	h, host, loc, store := setup(t)
	loc.objects[image.Pt(0, 0)] = &Object{ID: "keg-1", Name: "Keg", Kind: textures.Craftable}
	loc.objects[image.Pt(1, 0)] = &Object{ID: "keg-2", Name: "Keg", Kind: textures.Craftable}
	loc.buildings[image.Pt(2, 0)] = &Building{ID: "barn-1", BuildingType: "Barn"}

	brush := &Tool{Kind: PaintBrush}
	out := h.OnToolUse(brush, loc, px(0, 0))
	ttesting.AssertEqualString(t, "nothing to copy", out.Message, "Craftable_Keg has no alternative texture to copy!")

	m, _ := h.Registry().Model("Pack.Craftable_Keg")
	store.Set("keg-1", tags.ForModel(m, 1))
	h.OnToolUse(brush, loc, px(0, 0))
	if brush.Brush == nil {
		t.Fatalf("brush did not pick up the texture; messages: %v", host.messages)
	}

	out = h.OnToolUse(brush, loc, px(2, 0))
	ttesting.AssertEqualString(t, "mismatched target", out.Message, "You can't use Craftable_Keg on Building_Barn!")

	h.OnToolUse(brush, loc, px(1, 0))
	got, ok := store.Get("keg-2")
	if !ok || got != tags.ForModel(m, 1) {
		t.Errorf("keg-2 tag: got %v, %t; want %v", got, ok, tags.ForModel(m, 1))
	}
}

func TestOnGiantCropCreated(t *testing.T) {
	h, _, _, store := setup(t)

	h.OnGiantCropCreated(&GiantCrop{ID: "pumpkin", HarvestName: "Pumpkin"})
	ttesting.AssertEqualInt(t, "no texture for pumpkins", store.Len(), 0)

	h.OnGiantCropCreated(&GiantCrop{ID: "melon", HarvestName: "Melon"})
	tag, ok := store.Get("melon")
	if !ok {
		t.Fatalf("giant melon not tagged")
	}
	ttesting.AssertEqualString(t, "texture id", tag.TextureID, "Pack.GiantCrop_Melon")
	if tag.Variation < 0 || tag.Variation > 1 {
		t.Errorf("variation %d out of range", tag.Variation)
	}
	ttesting.AssertEqualBool(t, "drawn substituted", h.OnDraw(&GiantCrop{ID: "melon"}).Substitute, true)
}

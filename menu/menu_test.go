package menu

import (
	"image"
	"image/color"
	"testing"

	"badc0de.net/pkg/go-alttextures/tags"
	"badc0de.net/pkg/go-alttextures/textures"
	"badc0de.net/pkg/go-alttextures/ttesting"
)

func registry(t *testing.T) *textures.Registry {
	t.Helper()
	reg := textures.New()
	red := ttesting.SolidImage(32, 32, color.RGBA{R: 0xFF, A: 0xFF})
	blue := ttesting.SolidImage(32, 32, color.RGBA{B: 0xFF, A: 0xFF})
	models := []struct {
		m     *textures.TextureModel
		owner string
		imgs  []image.Image
	}{
		{&textures.TextureModel{
			ItemName: "Chest", Type: "Craftable", Keywords: []string{"Wooden"},
			ManualVariations: []textures.Variation{{ID: 0, Keywords: []string{"Red Lid"}}, {ID: 1, Keywords: []string{"Blue Lid"}}},
		}, "Lids", []image.Image{red, blue}},
		{&textures.TextureModel{ItemName: "Chest", Type: "Craftable", Keywords: []string{"Stone"}, Seasons: []string{"winter"}}, "Stones", []image.Image{blue}},
	}
	for _, m := range models {
		if err := reg.AddAlternativeTexture(m.m, m.owner, m.imgs); err != nil {
			t.Fatalf("AddAlternativeTexture: %v", err)
		}
	}
	return reg
}

func TestNewRequest(t *testing.T) {
	reg := registry(t)
	current := tags.Default("Craftable_Chest_spring", textures.Spring)

	req := NewRequest(reg, "chest-1", current, textures.Craftable, "Craftable_Chest", textures.Spring, TitlePaintBucket)
	ttesting.AssertEqualInt(t, "spring candidates", len(req.Candidates), 3)
	ttesting.AssertEqualBool(t, "vanilla first", req.Candidates[0].Vanilla(), true)
	ttesting.AssertEqualString(t, "vanilla keeps texture id", req.Candidates[0].TextureID, current.TextureID)
	ttesting.AssertEqualStrings(t, "manual keywords", req.Candidates[2].Keywords, []string{"Blue Lid", "Wooden", "Lids"})

	req = NewRequest(reg, "chest-1", current, textures.Craftable, "Craftable_Chest", textures.Winter, TitlePaintBucket)
	ttesting.AssertEqualInt(t, "winter candidates", len(req.Candidates), 4)
	ttesting.AssertEqualStrings(t, "model keywords", req.Candidates[3].Keywords, []string{"Stone", "Stones"})
}

func TestFilter(t *testing.T) {
	reg := registry(t)
	req := NewRequest(reg, "chest-1", tags.Tag{}, textures.Craftable, "Craftable_Chest", textures.Winter, TitlePaintBucket)

	tests := []struct {
		query string
		want  int
	}{
		{"", 4},
		{"lid", 3},
		{"BLUE lid", 2},
		{"stone", 2},
		{"gold", 1},
	}
	for _, tt := range tests {
		ttesting.AssertEqualInt(t, "query "+tt.query, len(req.Filter(tt.query)), tt.want)
	}
}

func TestThumbnail(t *testing.T) {
	reg := registry(t)
	req := NewRequest(reg, "chest-1", tags.Tag{}, textures.Craftable, "Craftable_Chest", textures.Spring, TitlePaintBucket)

	if Thumbnail(reg, req.Candidates[0], 16, 16) != nil {
		t.Errorf("vanilla candidate has a thumbnail")
	}
	thumb := Thumbnail(reg, req.Candidates[2], 16, 16)
	if thumb == nil {
		t.Fatalf("no thumbnail")
	}
	ttesting.AssertEqualInt(t, "thumb width", thumb.Bounds().Dx(), 16)
	ttesting.AssertEqualInt(t, "thumb height", thumb.Bounds().Dy(), 16)
	_, _, b, _ := thumb.At(thumb.Bounds().Min.X, thumb.Bounds().Min.Y).RGBA()
	ttesting.AssertEqualInt(t, "blue cell", int(b>>8), 0xFF)
}

func TestConfirm(t *testing.T) {
	reg := registry(t)
	store := tags.NewMemoryStore()
	req := NewRequest(reg, "chest-1", tags.Tag{}, textures.Craftable, "Craftable_Chest", textures.Spring, TitlePaintBucket)

	if err := Confirm(store, req, req.Candidates[1]); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	got, _ := store.Get("chest-1")
	want := tags.Tag{Owner: "Lids", TextureID: "Lids.Craftable_Chest", Variation: 0}
	if got != want {
		t.Errorf("got %v; want %v", got, want)
	}
}

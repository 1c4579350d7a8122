// Package menu builds the data a texture selection menu works with.
//
// The menu itself (paint bucket, scissors) is drawn by the host. This package
// decides which choices it offers, filters them by keyword, renders preview
// thumbnails and writes the player's final choice back to the entity's tag.
package menu

import (
	"image"
	"image/draw"
	"strings"

	"github.com/golang/glog"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-alttextures/tags"
	"badc0de.net/pkg/go-alttextures/textures"
)

const (
	TitlePaintBucket = "Paint Bucket"
	TitleScissors    = "Scissors"
)

// Candidate is one choice offered by the menu.
type Candidate struct {
	TextureID string
	Owner     string
	Season    string
	Variation int
	Keywords  []string
}

// Vanilla reports whether choosing c restores the entity's original look.
func (c Candidate) Vanilla() bool {
	return c.Variation == tags.NoVariation
}

// Tag returns the tag that selects c.
func (c Candidate) Tag() tags.Tag {
	return tags.Tag{Owner: c.Owner, TextureID: c.TextureID, Season: c.Season, Variation: c.Variation}
}

// Request is what the host needs to open a selection menu for one entity.
type Request struct {
	EntityID      tags.EntityID
	Type          textures.TextureType
	BareModelName string
	Season        textures.Season
	Title         string

	// TileWidth is the width of the entity in tiles, for multi-tile
	// buildings. Zero means one tile.
	TileWidth int

	Candidates []Candidate
}

// NewRequest lists every variation of every model registered for bareName in
// season. The first candidate always restores the original look; it keeps
// the entity's current texture id so the bare name can still be derived
// from the tag later.
func NewRequest(reg *textures.Registry, id tags.EntityID, current tags.Tag, typ textures.TextureType, bareName string, season textures.Season, title string) *Request {
	req := &Request{
		EntityID:      id,
		Type:          typ,
		BareModelName: bareName,
		Season:        season,
		Title:         title,
	}
	vanilla := current
	vanilla.Variation = tags.NoVariation
	req.Candidates = append(req.Candidates, Candidate{
		TextureID: vanilla.TextureID,
		Owner:     vanilla.Owner,
		Season:    vanilla.Season,
		Variation: tags.NoVariation,
	})
	for _, m := range reg.AvailableModels(bareName, season) {
		for v := 0; v < m.Variations(); v++ {
			req.Candidates = append(req.Candidates, Candidate{
				TextureID: m.TextureID,
				Owner:     m.Owner,
				Season:    m.Season,
				Variation: v,
				Keywords:  m.VariationKeywords(v),
			})
		}
	}
	glog.V(2).Infof("menu for %s (%s): %d candidates", id, bareName, len(req.Candidates))
	return req
}

// Filter returns the candidates matching query. Every whitespace separated
// term of the query must be contained in one of the candidate's keywords,
// ignoring case. An empty query matches everything; the vanilla candidate
// is always kept.
func (r *Request) Filter(query string) []Candidate {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return r.Candidates
	}
	var out []Candidate
	for _, c := range r.Candidates {
		if c.Vanilla() || matches(c.Keywords, terms) {
			out = append(out, c)
		}
	}
	return out
}

func matches(keywords, terms []string) bool {
	for _, term := range terms {
		found := false
		for _, kw := range keywords {
			if strings.Contains(strings.ToLower(kw), term) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Thumbnail returns the candidate's cell scaled down to fit maxW*maxH,
// keeping its aspect ratio. It returns nil for the vanilla candidate and for
// candidates whose model is no longer registered.
func Thumbnail(reg *textures.Registry, c Candidate, maxW, maxH uint) image.Image {
	if c.Vanilla() {
		return nil
	}
	m, ok := reg.Model(c.TextureID)
	if !ok {
		return nil
	}
	cell := m.VariationImage(c.Variation)
	if cell == nil {
		return nil
	}
	// resize expects its input at the origin.
	b := cell.Bounds()
	src := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(src, src.Bounds(), cell, b.Min, draw.Src)
	return resize.Thumbnail(maxW, maxH, src, resize.NearestNeighbor)
}

// Confirm stores the tag for the player's choice on the requesting entity.
func Confirm(store tags.Store, req *Request, c Candidate) error {
	if err := store.Set(req.EntityID, c.Tag()); err != nil {
		return errors.Wrapf(err, "assigning %s to %s", c.TextureID, req.EntityID)
	}
	glog.V(1).Infof("%s now uses %s", req.EntityID, c.Tag())
	return nil
}

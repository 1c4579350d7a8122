// Package web serves a browser for the textures in a registry and the tags
// of a tag store.
package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"net/http"
	"strconv"
	"sync"

	"github.com/andybons/gogif"
	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/vincent-petithory/dataurl"

	"badc0de.net/pkg/go-alttextures/menu"
	"badc0de.net/pkg/go-alttextures/tags"
	"badc0de.net/pkg/go-alttextures/textures"
)

// Handler serves the texture browser. The registry and store are not safe
// for concurrent use, so every request holds the handler's lock.
type Handler struct {
	mu    sync.Mutex
	reg   *textures.Registry
	store tags.Store

	// ThumbnailSize bounds the thumbnails embedded in candidate lists.
	ThumbnailSize uint
}

// NewHandler constructs a web handler for the passed registry and store.
func NewHandler(reg *textures.Registry, store tags.Store) *Handler {
	return &Handler{
		reg:           reg,
		store:         store,
		ThumbnailSize: 64,
	}
}

type modelJSON struct {
	TextureID  string   `json:"textureId"`
	Owner      string   `json:"owner"`
	Type       string   `json:"type"`
	ItemName   string   `json:"itemName"`
	Season     string   `json:"season,omitempty"`
	BareName   string   `json:"bareName"`
	Variations int      `json:"variations"`
	Keywords   []string `json:"keywords,omitempty"`
}

type candidateJSON struct {
	TextureID string   `json:"textureId"`
	Variation int      `json:"variation"`
	Keywords  []string `json:"keywords,omitempty"`
	Thumbnail string   `json:"thumbnail,omitempty"`
}

type tagJSON struct {
	TextureID string `json:"textureId"`
	Variation int    `json:"variation"`
	Owner     string `json:"owner,omitempty"`
	Season    string `json:"season,omitempty"`
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		glog.Errorf("encoding json response: %v", err)
	}
}

func (h *Handler) texturesHandler(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	owner := r.URL.Query().Get("owner")
	out := []modelJSON{}
	for m := range h.reg.Models() {
		if owner != "" && m.Owner != owner {
			continue
		}
		out = append(out, modelJSON{
			TextureID:  m.TextureID,
			Owner:      m.Owner,
			Type:       m.Type,
			ItemName:   m.ItemName,
			Season:     m.Season,
			BareName:   m.BareName(),
			Variations: m.Variations(),
			Keywords:   m.Keywords,
		})
	}
	writeJSON(w, out)
}

func (h *Handler) modelsHandler(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	bare := mux.Vars(r)["bare"]
	season := textures.NoSeason
	if s := r.URL.Query().Get("season"); s != "" {
		var ok bool
		if season, ok = textures.ParseSeason(s); !ok {
			http.Error(w, "unknown season", http.StatusBadRequest)
			return
		}
	}

	req := menu.NewRequest(h.reg, "", tags.Tag{}, textures.Unknown, bare, season, menu.TitlePaintBucket)
	req.Candidates = req.Filter(r.URL.Query().Get("q"))

	out := []candidateJSON{}
	for _, c := range req.Candidates {
		if c.Vanilla() {
			continue
		}
		cj := candidateJSON{TextureID: c.TextureID, Variation: c.Variation, Keywords: c.Keywords}
		if thumb := menu.Thumbnail(h.reg, c, h.ThumbnailSize, h.ThumbnailSize); thumb != nil {
			buf := &bytes.Buffer{}
			if err := png.Encode(buf, thumb); err == nil {
				cj.Thumbnail = dataurl.New(buf.Bytes(), "image/png").String()
			}
		}
		out = append(out, cj)
	}
	writeJSON(w, out)
}

// etag identifies a rendering of a model; texture ids are replaced on
// re-registration, so the sheet's size and cell size are part of it.
func etag(kind string, m *textures.TextureModel, variation int, mime string) string {
	generation := 1 // bump if the way we generate it changes
	b := m.Texture.Bounds()
	return fmt.Sprintf(`W/"%s:%d:%s:%dx%d:%dx%d:%d:%s"`, kind, generation, m.TextureID, b.Dx(), b.Dy(), m.TextureWidth, m.TextureHeight, variation, mime)
}

func notModified(w http.ResponseWriter, r *http.Request, tag string) bool {
	w.Header().Set("Cache-Control", "public; max-age=3600")
	w.Header().Set("ETag", tag)
	if r.Header.Get("If-None-Match") == tag {
		w.WriteHeader(http.StatusNotModified)
		return true
	}
	return false
}

func (h *Handler) cellHandler(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	vars := mux.Vars(r)
	m, ok := h.reg.Model(vars["id"])
	if !ok {
		http.Error(w, "no such texture", http.StatusNotFound)
		return
	}
	variation, err := strconv.Atoi(vars["variation"])
	if err != nil {
		http.Error(w, "variation not a number", http.StatusBadRequest)
		return
	}
	img := m.VariationImage(variation)
	if img == nil {
		http.Error(w, "no such variation", http.StatusNotFound)
		return
	}

	mime := "image/png"
	if notModified(w, r, etag("cell", m, variation, mime)) {
		return
	}
	w.Header().Set("Content-Type", mime)
	w.WriteHeader(http.StatusOK)
	png.Encode(w, img)
}

// gifHandler cycles through all variations of a texture.
func (h *Handler) gifHandler(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	m, ok := h.reg.Model(mux.Vars(r)["id"])
	if !ok || m.Variations() == 0 {
		http.Error(w, "no such texture", http.StatusNotFound)
		return
	}

	mime := "image/gif"
	if notModified(w, r, etag("cycle", m, -1, mime)) {
		return
	}

	delay := 50
	if d := r.URL.Query().Get("delay"); d != "" {
		if v, err := strconv.Atoi(d); err == nil && v > 0 {
			delay = v
		}
	}

	g := gif.GIF{}
	quantizer := gogif.MedianCutQuantizer{NumColor: 255} // Up to 255 colors plus 1 space for transparency.
	for v := 0; v < m.Variations(); v++ {
		cell := m.VariationImage(v)
		b := image.Rect(0, 0, cell.Bounds().Dx(), cell.Bounds().Dy())

		pal := image.NewPaletted(b, nil)
		quantizer.Quantize(pal, b, cell, cell.Bounds().Min)

		// The quantizer's palette has no transparent entry; prepend one so
		// that it is index 0 and the frame background.
		palTransparent := image.NewPaletted(b, append(color.Palette{color.Transparent}, pal.Palette...))
		draw.Draw(palTransparent, b, cell, cell.Bounds().Min, draw.Over)

		g.Image = append(g.Image, palTransparent)
		g.Delay = append(g.Delay, delay)
		g.Disposal = append(g.Disposal, gif.DisposalBackground)
	}
	g.BackgroundIndex = 0

	w.Header().Set("Content-Type", mime)
	w.WriteHeader(http.StatusOK)
	if err := gif.EncodeAll(w, &g); err != nil {
		glog.Errorf("encoding gif for %s: %v", m.TextureID, err)
	}
}

func (h *Handler) getTagHandler(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	tag, ok := h.store.Get(tags.EntityID(mux.Vars(r)["id"]))
	if !ok {
		http.Error(w, "entity has no tag", http.StatusNotFound)
		return
	}
	writeJSON(w, tagJSON{TextureID: tag.TextureID, Variation: tag.Variation, Owner: tag.Owner, Season: tag.Season})
}

func (h *Handler) putTagHandler(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var in tagJSON
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "bad tag: "+err.Error(), http.StatusBadRequest)
		return
	}
	m, ok := h.reg.Model(in.TextureID)
	if !ok {
		http.Error(w, "no such texture", http.StatusNotFound)
		return
	}
	if in.Variation != tags.NoVariation && (in.Variation < 0 || in.Variation >= m.Variations()) {
		http.Error(w, "no such variation", http.StatusBadRequest)
		return
	}

	id := tags.EntityID(mux.Vars(r)["id"])
	tag := tags.ForModel(m, in.Variation)
	if err := h.store.Set(id, tag); err != nil {
		glog.Errorf("storing tag of %s: %v", id, err)
		http.Error(w, "could not store tag", http.StatusInternalServerError)
		return
	}
	writeJSON(w, tagJSON{TextureID: tag.TextureID, Variation: tag.Variation, Owner: tag.Owner, Season: tag.Season})
}

// RegisterRoutes adds the handler's routes to r.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/textures", h.texturesHandler).Methods(http.MethodGet)
	r.HandleFunc("/models/{bare}", h.modelsHandler).Methods(http.MethodGet)
	r.HandleFunc("/texture/{id}/{variation:[0-9]+}.png", h.cellHandler).Methods(http.MethodGet)
	r.HandleFunc("/texture/{id}.gif", h.gifHandler).Methods(http.MethodGet)
	r.HandleFunc("/entity/{id}/tag", h.getTagHandler).Methods(http.MethodGet)
	r.HandleFunc("/entity/{id}/tag", h.putTagHandler).Methods(http.MethodPut)
	r.HandleFunc("/sitemap.xml", h.sitemapHandler).Methods(http.MethodGet)
}

package web

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
)

// SitemapURLImage is an entry in the image sitemap extension.
type SitemapURLImage struct {
	Loc string `xml:"image:loc"` // namespace 'http://www.google.com/schemas/sitemap-image/1.1'
}

type SitemapURL struct {
	XMLName  xml.Name `xml:"url"`
	Loc      string   `xml:"loc"`
	Priority float32  `xml:"priority,omitempty"` // 0.0-1.0, default if unspecified is 0.5

	Image []SitemapURLImage `xml:"image:image,omitempty"`
}

type SitemapURLSet struct {
	XMLName    xml.Name     `xml:"http://www.sitemaps.org/schemas/sitemap/0.9 urlset"`
	XMLNSImage string       `xml:"xmlns:image,attr"`
	URL        []SitemapURL `xml:"url,omitempty"` // up to 50k entries
}

func (e *SitemapURLSet) Write(w http.ResponseWriter, r *http.Request) {
	e.XMLNSImage = "http://www.google.com/schemas/sitemap-image/1.1"

	w.Header().Set("Content-Type", "application/xml")

	fmt.Fprintf(w, "%s", xml.Header)
	enc := xml.NewEncoder(w)
	enc.Indent("", " ")
	if err := enc.Encode(e); err != nil {
		http.Error(w, "<error>could not encode sitemap</error>", http.StatusInternalServerError)
		return
	}
}

// sitemapHandler lists one URL per bare model name, with the cells of every
// model registered for it as images.
func (h *Handler) sitemapHandler(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	base := "http://" + r.Host
	if r.TLS != nil {
		base = "https://" + r.Host
	}
	base = strings.TrimSuffix(base, "/")

	set := &SitemapURLSet{}
	byBare := map[string]int{}
	for m := range h.reg.Models() {
		bare := m.BareName()
		idx, ok := byBare[bare]
		if !ok {
			idx = len(set.URL)
			byBare[bare] = idx
			set.URL = append(set.URL, SitemapURL{Loc: base + "/models/" + bare})
		}
		for v := 0; v < m.Variations(); v++ {
			set.URL[idx].Image = append(set.URL[idx].Image, SitemapURLImage{
				Loc: fmt.Sprintf("%s/texture/%s/%d.png", base, m.TextureID, v),
			})
		}
	}
	set.Write(w, r)
}

package textures

import (
	"fmt"
	"image"
	"strings"
)

// Variation is a manually declared variation of a texture model. Its index
// in TextureModel.ManualVariations is the cell it describes.
type Variation struct {
	ID           int      `json:"Id"`
	ChanceWeight float64  `json:"ChanceWeight,omitempty"`
	Keywords     []string `json:"Keywords,omitempty"`
}

// TextureModel describes one substitutable texture.
//
// Content packs fill in the declared fields (ItemName, Type, Seasons,
// Keywords, ManualVariations and the cell size). Owner, Season, ModelName,
// TextureID and Texture are stamped by Registry.AddAlternativeTexture.
type TextureModel struct {
	Owner    string `json:"-"`
	ItemName string `json:"ItemName"`
	ItemID   int    `json:"ItemId,omitempty"`
	Type     string `json:"Type"`

	Seasons []string `json:"Seasons,omitempty"`
	Season  string   `json:"-"`

	Keywords         []string    `json:"Keywords,omitempty"`
	ManualVariations []Variation `json:"ManualVariations,omitempty"`

	// Size of a single cell. Zero is replaced with the size of the
	// supplied image at registration.
	TextureWidth  int `json:"TextureWidth,omitempty"`
	TextureHeight int `json:"TextureHeight,omitempty"`

	EnableContentPatcherCheck bool `json:"EnableContentPatcherCheck,omitempty"`

	ModelName string      `json:"-"`
	TextureID string      `json:"-"`
	Texture   image.Image `json:"-"`
}

// TextureType returns the parsed Type.
func (m *TextureModel) TextureType() TextureType {
	return ParseTextureType(m.Type)
}

// BareName is the model name without owner and season, e.g. "Flooring_Brick".
// Models from different content packs that target the same item share it.
func (m *TextureModel) BareName() string {
	return BareModelName(m.TextureType(), m.ItemName)
}

// NameWithSeason returns the bare name with the declared seasons appended,
// for log messages about models that are not registered yet.
func (m *TextureModel) NameWithSeason() string {
	if len(m.Seasons) == 0 {
		return m.BareName()
	}
	return fmt.Sprintf("%s_%s", m.BareName(), strings.Join(m.Seasons, "_"))
}

// Clone returns a copy of m whose keyword and variation slices are not
// shared with m. The texture itself is shared.
func (m *TextureModel) Clone() *TextureModel {
	c := *m
	c.Seasons = append([]string(nil), m.Seasons...)
	c.Keywords = append([]string(nil), m.Keywords...)
	if m.ManualVariations != nil {
		c.ManualVariations = make([]Variation, len(m.ManualVariations))
		for i, v := range m.ManualVariations {
			v.Keywords = append([]string(nil), v.Keywords...)
			c.ManualVariations[i] = v
		}
	}
	return &c
}

// Variations returns the number of selectable cells in the texture sheet.
func (m *TextureModel) Variations() int {
	if m.Texture == nil || m.TextureHeight <= 0 {
		return 0
	}
	n := m.Texture.Bounds().Dy() / m.TextureHeight
	if mv := len(m.ManualVariations); mv > 0 && mv < n {
		n = mv
	}
	return n
}

// VariationRect returns the source rectangle of cell i within Texture. It
// does not check i against Variations.
func (m *TextureModel) VariationRect(i int) image.Rectangle {
	origin := m.Texture.Bounds().Min
	return image.Rect(0, i*m.TextureHeight, m.TextureWidth, (i+1)*m.TextureHeight).Add(origin)
}

// VariationImage returns cell i of the texture sheet, or nil if there is no
// such cell.
func (m *TextureModel) VariationImage(i int) image.Image {
	if i < 0 || i >= m.Variations() {
		return nil
	}
	r := m.VariationRect(i)
	if si, ok := m.Texture.(interface {
		SubImage(image.Rectangle) image.Image
	}); ok {
		return si.SubImage(r)
	}
	return cropped{m.Texture, r}
}

// VariationKeywords returns the keywords describing cell i: the manual
// variation's keywords if it has any, otherwise the model's.
func (m *TextureModel) VariationKeywords(i int) []string {
	if i >= 0 && i < len(m.ManualVariations) && len(m.ManualVariations[i].Keywords) > 0 {
		return m.ManualVariations[i].Keywords
	}
	return m.Keywords
}

func (m *TextureModel) String() string {
	return fmt.Sprintf("TextureModel{ID: %s, Owner: %s, Type: %s, Item: %s, Season: %q, Cell: %dx%d, Variations: %d, Keywords: %v}",
		m.TextureID, m.Owner, m.Type, m.ItemName, m.Season, m.TextureWidth, m.TextureHeight, m.Variations(), m.Keywords)
}

// cropped restricts an image without SubImage support to a rectangle.
type cropped struct {
	image.Image
	r image.Rectangle
}

func (c cropped) Bounds() image.Rectangle { return c.r }

// addKeywords appends each of kw to set unless it is already there.
func addKeywords(set []string, kw ...string) []string {
	for _, k := range kw {
		found := false
		for _, s := range set {
			if s == k {
				found = true
				break
			}
		}
		if !found {
			set = append(set, k)
		}
	}
	return set
}

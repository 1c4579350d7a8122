package textures

import (
	"image"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

var (
	ErrMissingOwner = errors.New("textures: owner is not set")
	ErrNoTextures   = errors.New("textures: no textures supplied")
	ErrNilModel     = errors.New("textures: model is nil")
	ErrUnknownType  = errors.New("textures: unknown texture type")
)

// AddAlternativeTexture registers model on behalf of owner.
//
// A model without declared seasons is registered once, season-less. A model
// with declared seasons is registered once per season (at most four), each
// under its own texture id. Every registered copy is independent of model
// and of the other copies, except for the texture sheet which they share.
//
// More than one image is stitched into one vertical sheet. An existing model
// with the same texture id is replaced.
//
// Invalid input, including a type ParseTextureType does not recognize, is
// logged and returned as an error; the registry is then left unchanged.
func (r *Registry) AddAlternativeTexture(model *TextureModel, owner string, textures []image.Image) error {
	_, err := r.Register(model, owner, textures)
	return err
}

// Register is AddAlternativeTexture, also returning the registered copies in
// season order.
func (r *Registry) Register(model *TextureModel, owner string, textures []image.Image) ([]*TextureModel, error) {
	if model == nil {
		glog.Warningf("Unable to add alternative texture from %s: model is nil", owner)
		return nil, ErrNilModel
	}
	if owner == "" {
		glog.Warningf("Unable to add alternative texture %s: owner is not set", model.NameWithSeason())
		return nil, ErrMissingOwner
	}
	if len(textures) == 0 {
		glog.Warningf("Unable to add alternative texture %s: no textures supplied", model.NameWithSeason())
		return nil, ErrNoTextures
	}
	textureType := model.TextureType()
	if textureType == Unknown {
		glog.Warningf("Unable to add alternative texture %s from %s: unknown type %q", model.NameWithSeason(), owner, model.Type)
		return nil, errors.Wrapf(ErrUnknownType, "%q", model.Type)
	}

	var sheet image.Image
	if len(textures) == 1 {
		sheet = textures[0]
	} else {
		glog.V(2).Infof("stitching %d textures for %s.%s", len(textures), owner, model.NameWithSeason())
		stitched, err := Stitch(textures)
		if err != nil {
			glog.Warningf("Unable to add alternative texture %s from %s: %v", model.NameWithSeason(), owner, err)
			return nil, errors.Wrapf(err, "stitching %s", model.NameWithSeason())
		}
		sheet = stitched
	}

	model.Owner = owner
	model.Type = textureType.String()

	var added []*TextureModel
	for s := 0; s < len(Seasons); s++ {
		if (len(model.Seasons) == 0 && s > 0) || (len(model.Seasons) > 0 && s >= len(model.Seasons)) {
			continue
		}

		m := model.Clone()

		// Grass packs are matched by type only; item names may be translated.
		if textureType == Grass {
			m.ItemName = "Grass"
		}

		m.Keywords = addKeywords(m.Keywords, owner)
		for i := range m.ManualVariations {
			m.ManualVariations[i].Keywords = addKeywords(m.ManualVariations[i].Keywords, m.Keywords...)
		}

		season := NoSeason
		if len(model.Seasons) > 0 {
			if parsed, ok := ParseSeason(model.Seasons[s]); ok {
				season = parsed
			} else {
				season = Season(model.Seasons[s])
				glog.Warningf("alternative texture %s from %s declares unknown season %q", model.BareName(), owner, model.Seasons[s])
			}
		}
		m.Season = string(season)

		m.ModelName = ModelName(textureType, m.ItemName, season)
		m.TextureID = TextureID(owner, m.ModelName)

		m.Texture = sheet
		if m.TextureWidth <= 0 {
			m.TextureWidth = sheet.Bounds().Dx()
		}
		if m.TextureHeight <= 0 {
			m.TextureHeight = textures[0].Bounds().Dy()
		}

		r.put(m)
		added = append(added, m)
		glog.V(2).Info(m.String())
	}
	return added, nil
}

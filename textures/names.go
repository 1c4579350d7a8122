package textures

import "strings"

// DefaultOwner owns the ids assigned to entities that have never been
// painted. No content pack registers textures under it.
const DefaultOwner = "Stardew.Default"

// BareModelName joins a texture type and an item name, e.g. "Tree_Oak".
func BareModelName(t TextureType, itemName string) string {
	return t.String() + "_" + itemName
}

// ModelName returns the bare model name, suffixed with the season if there
// is one.
func ModelName(t TextureType, itemName string, season Season) string {
	if season == NoSeason {
		return BareModelName(t, itemName)
	}
	return BareModelName(t, itemName) + "_" + string(season)
}

// TextureID prefixes a model name with its owner.
func TextureID(owner, modelName string) string {
	return owner + "." + modelName
}

// StripModelName recovers the bare model name from a texture id by removing
// the owner prefix and the season suffix.
func StripModelName(textureID, owner string, season Season) string {
	name := strings.TrimPrefix(textureID, owner+".")
	if season != NoSeason {
		name = strings.TrimSuffix(name, "_"+string(season))
	}
	return name
}

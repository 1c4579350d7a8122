package textures

import "strings"

// TextureType classifies what kind of entity a texture applies to.
type TextureType int

const (
	Unknown TextureType = iota
	Object
	Craftable
	Furniture
	Building
	Character
	Crop
	GiantCrop
	Flooring
	Tree
	FruitTree
	Grass
	Bush
	ResourceClump
	Decoration
	TextureTypeLast // not a valid type
)

var textureTypeNames = [TextureTypeLast]string{
	Unknown:       "Unknown",
	Object:        "Object",
	Craftable:     "Craftable",
	Furniture:     "Furniture",
	Building:      "Building",
	Character:     "Character",
	Crop:          "Crop",
	GiantCrop:     "GiantCrop",
	Flooring:      "Flooring",
	Tree:          "Tree",
	FruitTree:     "FruitTree",
	Grass:         "Grass",
	Bush:          "Bush",
	ResourceClump: "ResourceClump",
	Decoration:    "Decoration",
}

// String returns the name used for the type in model names, e.g. "FruitTree".
func (t TextureType) String() string {
	if t < 0 || t >= TextureTypeLast {
		return textureTypeNames[Unknown]
	}
	return textureTypeNames[t]
}

// ParseTextureType parses a declared texture type. Matching ignores case,
// so "fruittree" and "FruitTree" are the same type. Anything unrecognized
// is Unknown.
func ParseTextureType(s string) TextureType {
	s = strings.TrimSpace(s)
	for t := Object; t < TextureTypeLast; t++ {
		if strings.EqualFold(textureTypeNames[t], s) {
			return t
		}
	}
	return Unknown
}

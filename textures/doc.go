// Package textures implements the registry of alternative textures.
//
// A content pack declares a TextureModel (an item name, a texture type, an
// optional list of seasons and optional manual variations) and supplies one
// or more images. The registry expands the declaration across seasons,
// derives canonical texture ids, stitches multi-part images into a single
// vertical sheet and keeps the result for lookup by in-game entities.
//
// A sheet is a column of equally sized cells; each cell is one selectable
// variation of the texture.
package textures

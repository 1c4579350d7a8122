// Package contentpack loads alternative textures from content pack
// directories into a textures.Registry.
//
// A content pack is a directory with a manifest.json and a textures
// directory. Every subdirectory of textures declares one model in a
// texture.json file and supplies its pixels either as a single texture.png
// sheet or as texture_0.png, texture_1.png, ... parts that are stitched
// together in numeric order.
package contentpack

import (
	"context"
	"encoding/json"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"badc0de.net/pkg/go-alttextures/textures"
)

const (
	ManifestFile    = "manifest.json"
	TexturesDir     = "textures"
	DeclarationFile = "texture.json"
)

// Manifest identifies a content pack. UniqueID becomes the owner of every
// model the pack declares.
type Manifest struct {
	Name        string `json:"Name"`
	Author      string `json:"Author"`
	Version     string `json:"Version"`
	Description string `json:"Description,omitempty"`
	UniqueID    string `json:"UniqueID"`
}

// Pack is a loaded content pack.
type Pack struct {
	Dir      string
	Manifest Manifest

	// TextureIDs lists the texture ids registered from the pack.
	TextureIDs []string

	// Skipped maps texture folders that could not be loaded to the reason.
	Skipped map[string]error
}

// declaration is the texture.json schema.
type declaration struct {
	textures.TextureModel

	// Variations splits a single texture.png into this many cells when
	// TextureHeight is not given.
	Variations int `json:"Variations,omitempty"`
}

// folder is one texture folder after decoding.
type folder struct {
	name  string
	decl  declaration
	parts []image.Image
	err   error
}

// ReadManifest reads and validates the manifest of the pack in dir.
func ReadManifest(dir string) (Manifest, error) {
	var m Manifest
	b, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return m, errors.Wrap(err, "reading manifest")
	}
	if err := json.Unmarshal(b, &m); err != nil {
		return m, errors.Wrap(err, "parsing manifest")
	}
	if strings.TrimSpace(m.UniqueID) == "" {
		return m, errors.Errorf("manifest in %s has no UniqueID", dir)
	}
	return m, nil
}

// Load registers every texture declared by the pack in dir.
//
// Images are decoded concurrently; models are registered on the calling
// goroutine in folder name order. A folder that fails to load is logged and
// recorded in Pack.Skipped; a missing or invalid manifest fails the whole
// pack.
func Load(ctx context.Context, reg *textures.Registry, dir string) (*Pack, error) {
	manifest, err := ReadManifest(dir)
	if err != nil {
		return nil, err
	}
	pack := &Pack{Dir: dir, Manifest: manifest, Skipped: make(map[string]error)}

	entries, err := os.ReadDir(filepath.Join(dir, TexturesDir))
	if err != nil {
		return nil, errors.Wrapf(err, "listing textures of %s", manifest.UniqueID)
	}
	var folders []*folder
	for _, e := range entries {
		if e.IsDir() {
			folders = append(folders, &folder{name: e.Name()})
		}
	}
	sort.Slice(folders, func(i, j int) bool { return folders[i].name < folders[j].name })

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, f := range folders {
		f := f
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			f.decl, f.parts, f.err = readFolder(filepath.Join(dir, TexturesDir, f.name))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrapf(err, "loading %s", manifest.UniqueID)
	}

	for _, f := range folders {
		if f.err != nil {
			glog.Warningf("skipping texture folder %s of %s: %v", f.name, manifest.UniqueID, f.err)
			pack.Skipped[f.name] = f.err
			continue
		}
		model := &f.decl.TextureModel
		if len(f.parts) == 1 && model.TextureHeight == 0 && f.decl.Variations > 1 {
			model.TextureHeight = f.parts[0].Bounds().Dy() / f.decl.Variations
		}
		added, err := reg.Register(model, manifest.UniqueID, f.parts)
		if err != nil {
			pack.Skipped[f.name] = err
			continue
		}
		glog.V(1).Infof("%s: %s registered %d model(s)", manifest.UniqueID, f.name, len(added))
		for _, m := range added {
			pack.TextureIDs = append(pack.TextureIDs, m.TextureID)
		}
	}
	glog.Infof("loaded content pack %s (%s) from %s: %d texture(s), %d skipped", manifest.Name, manifest.UniqueID, dir, len(pack.TextureIDs), len(pack.Skipped))
	return pack, nil
}

// LoadAll loads the packs in dirs in order. Packs that fail to load are
// logged and left out; the error reports the first failure.
func LoadAll(ctx context.Context, reg *textures.Registry, dirs []string) ([]*Pack, error) {
	var packs []*Pack
	var firstErr error
	for _, dir := range dirs {
		p, err := Load(ctx, reg, dir)
		if err != nil {
			glog.Errorf("content pack in %s: %v", dir, err)
			if firstErr == nil {
				firstErr = errors.Wrapf(err, "content pack in %s", dir)
			}
			continue
		}
		packs = append(packs, p)
	}
	return packs, firstErr
}

func readFolder(dir string) (declaration, []image.Image, error) {
	var d declaration
	b, err := os.ReadFile(filepath.Join(dir, DeclarationFile))
	if err != nil {
		return d, nil, errors.Wrap(err, "reading declaration")
	}
	if err := json.Unmarshal(b, &d); err != nil {
		return d, nil, errors.Wrap(err, "parsing declaration")
	}

	files, err := textureFiles(dir)
	if err != nil {
		return d, nil, err
	}
	parts := make([]image.Image, len(files))
	for i, fn := range files {
		img, err := decodePNG(fn)
		if err != nil {
			return d, nil, err
		}
		parts[i] = img
	}
	return d, parts, nil
}

// textureFiles returns texture.png, or texture_N.png sorted by N.
func textureFiles(dir string) ([]string, error) {
	single := filepath.Join(dir, "texture.png")
	if _, err := os.Stat(single); err == nil {
		return []string{single}, nil
	}

	matches, err := filepath.Glob(filepath.Join(dir, "texture_*.png"))
	if err != nil {
		return nil, errors.Wrap(err, "listing texture parts")
	}
	type part struct {
		n  int
		fn string
	}
	var parts []part
	for _, fn := range matches {
		base := strings.TrimSuffix(strings.TrimPrefix(filepath.Base(fn), "texture_"), ".png")
		n, err := strconv.Atoi(base)
		if err != nil {
			continue
		}
		parts = append(parts, part{n, fn})
	}
	if len(parts) == 0 {
		return nil, errors.Errorf("no texture.png or texture_N.png in %s", dir)
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i].n < parts[j].n })
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = p.fn
	}
	return out, nil
}

func decodePNG(fn string) (image.Image, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, errors.Wrap(err, "opening texture")
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", filepath.Base(fn))
	}
	return img, nil
}

// Command atprint prints alternative textures from content packs on a
// terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"sort"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"
	"github.com/nfnt/resize"

	"badc0de.net/pkg/go-alttextures/contentpack"
	"badc0de.net/pkg/go-alttextures/imageprint"
	"badc0de.net/pkg/go-alttextures/paths"
	"badc0de.net/pkg/go-alttextures/textures"
)

var (
	textureID = flag.String("texture", "", "texture id to print; all textures are listed if empty")
	variation = flag.Int("variation", -1, "variation to print; the whole sheet is printed if negative")
	mode      = flag.String("mode", "24bit", "one of 24bit, 256, nocolor, iterm, rasterm")
	blanks    = flag.Bool("blanks", true, "whether to just use colored blanks instead of some bad ascii art")
	downsize  = flag.Bool("downsize", true, "whether to fit the image to the terminal")

	packDirs string
)

func list(reg *textures.Registry) {
	var ids []string
	for m := range reg.Models() {
		ids = append(ids, fmt.Sprintf("%s\t%d", m.TextureID, m.Variations()))
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Println(id)
	}
}

func out(p *imageprint.Printer, img image.Image, name string) error {
	if *downsize {
		termSize, err := GetTermSize()
		if err == nil {
			w, h := fitBounds(termSize, p.Mode == imageprint.RasTerm || p.Mode == imageprint.ITerm)
			img = resize.Thumbnail(w, h, img, resize.Lanczos3)
		} else {
			glog.V(1).Infof("not downsizing: %v", err)
		}
	}
	return p.Print(img, name)
}

func main() {
	paths.SetupPackDirsFlag("pack_dirs", &packDirs)
	flag.Set("logtostderr", "true")
	flagutil.Parse()

	m, err := imageprint.ParseMode(*mode)
	if err != nil {
		glog.Exitf("bad --mode: %v", err)
	}

	dirs, err := paths.ExpandPackDirs(paths.SplitList(packDirs))
	if err != nil {
		glog.Exitf("finding content packs: %v", err)
	}
	reg := textures.New()
	packs, err := contentpack.LoadAll(context.Background(), reg, dirs)
	if err != nil && len(packs) == 0 {
		glog.Exitf("loading content packs: %v", err)
	}

	if *textureID == "" {
		list(reg)
		return
	}

	model, ok := reg.Model(*textureID)
	if !ok {
		glog.Exitf("no texture %q in %d loaded textures", *textureID, reg.Len())
	}

	img, name := model.Texture, model.TextureID+".png"
	if *variation >= 0 {
		if img = model.VariationImage(*variation); img == nil {
			glog.Exitf("%s has %d variations, no variation %d", model.TextureID, model.Variations(), *variation)
		}
		name = fmt.Sprintf("%s_%d.png", model.TextureID, *variation)
	}

	p := &imageprint.Printer{W: os.Stdout, Mode: m, Blanks: *blanks}
	if err := out(p, img, name); err != nil {
		glog.Exitf("printing %s: %v", name, err)
	}
}

package hooks

import (
	"fmt"
	"image"

	"github.com/golang/glog"

	"badc0de.net/pkg/go-alttextures/menu"
	"badc0de.net/pkg/go-alttextures/tags"
	"badc0de.net/pkg/go-alttextures/textures"
)

// ToolKind identifies the texture tools. Any other tool is OtherTool.
type ToolKind int

const (
	OtherTool ToolKind = iota
	PaintBucket
	Scissors
	PaintBrush
)

// Tool is the tool the player is using.
type Tool struct {
	Kind ToolKind

	// Brush holds the tag a paint brush has picked up, if any.
	Brush *tags.Tag
}

// ToolOutcome reports what OnToolUse did.
type ToolOutcome struct {
	// Handled is false for tools that are not texture tools; the host
	// then uses the tool as usual.
	Handled bool

	// Canceled means the host must not perform the tool's normal action.
	// It is set for every texture tool.
	Canceled bool

	// Menu is the menu request passed to Host.OpenMenu, if one was opened.
	Menu *menu.Request

	// Message is the notice passed to Host.ShowMessage, if one was shown.
	Message string
}

const msgCannotPaint = "You can't put paint on that!"

// target is an entity the texture tools can work on.
type target struct {
	id        tags.EntityID
	typ       textures.TextureType
	name      string
	tilesWide int
}

// OnToolUse handles the player using tool at pixel position px in loc.
//
// The paint bucket and the scissors open a selection menu for the targeted
// entity; the paint brush copies a texture from one entity to another. None
// of them is ever used in the game's own sense.
func (h *Handler) OnToolUse(tool *Tool, loc Location, px image.Point) ToolOutcome {
	if tool == nil || tool.Kind == OtherTool {
		return ToolOutcome{}
	}
	tile := image.Pt(px.X/TileSize, px.Y/TileSize)

	var out ToolOutcome
	switch tool.Kind {
	case PaintBucket:
		out = h.usePaintBucket(loc, tile)
	case Scissors:
		out = h.useScissors(loc, tile)
	case PaintBrush:
		out = h.usePaintBrush(tool, loc, tile)
	}
	out.Handled = true
	out.Canceled = true
	return out
}

func (h *Handler) usePaintBucket(loc Location, tile image.Point) ToolOutcome {
	t, msg, ok := paintTarget(loc, tile)
	if !ok {
		if msg != "" {
			h.host.ShowMessage(msg)
		}
		return ToolOutcome{Message: msg}
	}
	return h.openMenu(t, menu.TitlePaintBucket)
}

func (h *Handler) useScissors(loc Location, tile image.Point) ToolOutcome {
	c := loc.CharacterAt(tile)
	if c == nil {
		return ToolOutcome{}
	}
	return h.openMenu(target{id: c.ID, typ: textures.Character, name: c.Name}, menu.TitleScissors)
}

// paintTarget finds what the paint bucket or brush is pointed at: a building,
// then an object, then a terrain feature. If nothing paintable is there, it
// returns the message to show the player, if any.
func paintTarget(loc Location, tile image.Point) (target, string, bool) {
	if b := loc.BuildingAt(tile); b != nil {
		return target{id: b.ID, typ: textures.Building, name: b.BuildingType, tilesWide: b.TilesWide}, "", true
	}
	if o := loc.ObjectAt(tile); o != nil {
		return target{id: o.ID, typ: objectType(o), name: o.Name}, "", true
	}
	switch f := loc.TerrainFeatureAt(tile).(type) {
	case nil:
		return target{}, "", false
	case *Soil, *GiantCrop, *Grass:
		return target{}, msgCannotPaint, false
	case *Flooring:
		return target{id: f.ID, typ: textures.Flooring, name: f.Name}, "", true
	case *Tree:
		return target{id: f.ID, typ: textures.Tree, name: f.TreeType}, "", true
	case *FruitTree:
		return target{id: f.ID, typ: textures.FruitTree, name: f.SaplingName}, "", true
	default:
		return target{}, "", false
	}
}

// tagOf returns the tag of t, assigning the default tag for the current
// season first if t has none.
func (h *Handler) tagOf(t target, season textures.Season) tags.Tag {
	if tag, ok := h.store.Get(t.id); ok {
		return tag
	}
	tag := tags.Default(textures.ModelName(t.typ, t.name, season), season)
	if err := h.store.Set(t.id, tag); err != nil {
		glog.Errorf("assigning default tag to %s: %v", t.id, err)
	}
	return tag
}

func (h *Handler) openMenu(t target, title string) ToolOutcome {
	season := h.host.CurrentSeason()
	tag := h.tagOf(t, season)

	bare := tag.BareModelName()
	if len(h.reg.AvailableModels(bare, season)) == 0 {
		msg := fmt.Sprintf("%s has no alternative textures for this season!", bare)
		h.host.ShowMessage(msg)
		return ToolOutcome{Message: msg}
	}

	req := menu.NewRequest(h.reg, t.id, tag, t.typ, bare, season, title)
	req.TileWidth = t.tilesWide
	h.host.OpenMenu(req)
	return ToolOutcome{Menu: req}
}

// usePaintBrush picks up the target's texture with an empty brush, and
// applies the brush's texture to a target of the same kind otherwise.
func (h *Handler) usePaintBrush(tool *Tool, loc Location, tile image.Point) ToolOutcome {
	t, msg, ok := paintTarget(loc, tile)
	if !ok {
		if msg != "" {
			h.host.ShowMessage(msg)
		}
		return ToolOutcome{Message: msg}
	}

	if tool.Brush == nil {
		tag, ok := h.store.Get(t.id)
		if !ok || !tag.Substitutes() {
			msg := fmt.Sprintf("%s has no alternative texture to copy!", textures.BareModelName(t.typ, t.name))
			h.host.ShowMessage(msg)
			return ToolOutcome{Message: msg}
		}
		if _, ok := h.reg.Model(tag.TextureID); !ok {
			msg := fmt.Sprintf("%s has no alternative texture to copy!", tag.BareModelName())
			h.host.ShowMessage(msg)
			return ToolOutcome{Message: msg}
		}
		tool.Brush = &tag
		msg := fmt.Sprintf("Copied %s", tag.TextureID)
		h.host.ShowMessage(msg)
		return ToolOutcome{Message: msg}
	}

	brush := *tool.Brush
	if want := textures.BareModelName(t.typ, t.name); brush.BareModelName() != want {
		msg := fmt.Sprintf("You can't use %s on %s!", brush.BareModelName(), want)
		h.host.ShowMessage(msg)
		return ToolOutcome{Message: msg}
	}
	if err := h.store.Set(t.id, brush); err != nil {
		glog.Errorf("painting %s with %s: %v", t.id, brush, err)
	}
	return ToolOutcome{}
}

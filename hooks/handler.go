package hooks

import (
	"math/rand"
	"time"

	"badc0de.net/pkg/go-alttextures/tags"
	"badc0de.net/pkg/go-alttextures/textures"
)

// Handler resolves draw calls and tool use against a registry and the tags
// of the host's entities. It is not safe for concurrent use.
type Handler struct {
	reg   *textures.Registry
	store tags.Store
	host  Host

	rnd *rand.Rand
}

// New returns a handler for one host session.
func New(reg *textures.Registry, store tags.Store, host Host) *Handler {
	h := &Handler{
		reg:   reg,
		store: store,
		host:  host,
	}
	if rs, ok := host.(RandomSource); ok {
		h.rnd = rs.Rand()
	} else {
		h.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return h
}

// Registry returns the registry the handler resolves textures in.
func (h *Handler) Registry() *textures.Registry {
	return h.reg
}

// Tags returns the handler's tag store.
func (h *Handler) Tags() tags.Store {
	return h.store
}

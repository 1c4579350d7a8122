// Command atweb serves a browser for the alternative textures of a set of
// content packs, and lets entity tags be read and assigned over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"runtime"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	_ "golang.org/x/net/trace"

	"badc0de.net/pkg/go-alttextures/contentpack"
	"badc0de.net/pkg/go-alttextures/paths"
	"badc0de.net/pkg/go-alttextures/tags"
	"badc0de.net/pkg/go-alttextures/tags/sqlitetags"
	"badc0de.net/pkg/go-alttextures/textures"
	"badc0de.net/pkg/go-alttextures/web"
)

var (
	listenAddress = flag.String("listen_address", ":8080", "http listen address for atweb")
	tagsDB        = flag.String("tags_db", "", "sqlite database holding entity tags; tags are kept in memory if empty")
	thumbnailSize = flag.Uint("thumbnail_size", 64, "largest side of thumbnails in candidate lists")

	packDirs string
)

func openStore() (tags.Store, func()) {
	if *tagsDB == "" {
		return tags.NewMemoryStore(), func() {}
	}
	s, err := sqlitetags.Open(*tagsDB)
	if err != nil {
		glog.Exitf("opening tag database: %v", err)
	}
	if n, err := s.Len(); err == nil {
		glog.Infof("%s holds %d tag(s)", *tagsDB, n)
	}
	return s, func() {
		if err := s.Close(); err != nil {
			glog.Errorf("closing tag database: %v", err)
		}
	}
}

func main() {
	paths.SetupPackDirsFlag("pack_dirs", &packDirs)
	flagutil.Parse()

	dirs, err := paths.ExpandPackDirs(paths.SplitList(packDirs))
	if err != nil {
		glog.Exitf("finding content packs: %v", err)
	}
	reg := textures.New()
	packs, err := contentpack.LoadAll(context.Background(), reg, dirs)
	if err != nil {
		glog.Warningf("some content packs failed to load: %v", err)
	}
	glog.Infof("loaded %d content pack(s), %d texture(s) from %d owner(s)", len(packs), reg.Len(), len(reg.Owners()))

	store, closeStore := openStore()
	defer closeStore()

	h := web.NewHandler(reg, store)
	h.ThumbnailSize = *thumbnailSize

	r := mux.NewRouter()
	h.RegisterRoutes(r)
	http.HandleFunc("/debug/minimetrics", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "runtime.NumGoroutine(): %d\n", runtime.NumGoroutine())
	})
	r.PathPrefix("/debug/").Handler(http.DefaultServeMux)

	glog.Infof("serving on %s", *listenAddress)
	if err := http.ListenAndServe(*listenAddress, handlers.CombinedLoggingHandler(os.Stderr, r)); err != nil {
		closeStore()
		glog.Fatal(err)
	}
}

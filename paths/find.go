// Package paths locates content pack directories.
package paths

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// EnvPackRoot names the environment variable checked first by Find.
const EnvPackRoot = "ALTTEXTURES_PACKS"

const manifestFile = "manifest.json"

// possibleRoots lists the directories Find looks in, most specific first.
func possibleRoots(dirName string) []string {
	var roots []string
	if env := os.Getenv(EnvPackRoot); env != "" {
		roots = append(roots, env)
	}
	roots = append(roots, dirName)
	if exe, err := os.Executable(); err == nil {
		roots = append(roots, filepath.Join(filepath.Dir(exe), dirName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		roots = append(roots, filepath.Join(home, ".local", "share", "alttextures", dirName))
	}
	return roots
}

// Find returns the first existing directory among the places content packs
// are usually kept: $ALTTEXTURES_PACKS, ./dirName, dirName next to the
// running binary, and ~/.local/share/alttextures/dirName. It returns an
// empty string if there is none.
func Find(dirName string) string {
	for _, path := range possibleRoots(dirName) {
		if fi, err := os.Stat(path); err == nil && fi.IsDir() {
			glog.Infof("paths.Find(%q)=%s", dirName, path)
			return path
		}
	}
	return ""
}

// IsPack reports whether dir holds a content pack manifest.
func IsPack(dir string) bool {
	fi, err := os.Stat(filepath.Join(dir, manifestFile))
	return err == nil && !fi.IsDir()
}

// ExpandPackDirs turns a list of directories into a list of content pack
// directories. A directory that is a pack itself is kept; any other
// directory contributes its immediate subdirectories that are packs, sorted
// by name.
func ExpandPackDirs(dirs []string) ([]string, error) {
	var out []string
	for _, dir := range dirs {
		if IsPack(dir) {
			out = append(out, dir)
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, errors.Wrapf(err, "listing pack root %s", dir)
		}
		var packs []string
		for _, e := range entries {
			if p := filepath.Join(dir, e.Name()); e.IsDir() && IsPack(p) {
				packs = append(packs, p)
			}
		}
		sort.Strings(packs)
		if len(packs) == 0 {
			glog.Warningf("no content packs in %s", dir)
		}
		out = append(out, packs...)
	}
	return out, nil
}

// SplitList splits a comma separated list of directories, dropping empty
// entries.
func SplitList(s string) []string {
	var out []string
	for _, d := range strings.Split(s, ",") {
		if d = strings.TrimSpace(d); d != "" {
			out = append(out, d)
		}
	}
	return out
}

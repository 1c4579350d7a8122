package sqlitetags

import (
	"path/filepath"
	"testing"

	"badc0de.net/pkg/go-alttextures/tags"
	"badc0de.net/pkg/go-alttextures/ttesting"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tags.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	want := tags.Tag{Owner: "A", TextureID: "A.Tree_Oak_fall", Season: "fall", Variation: 2}
	if err := s.Set("tree-7", want); err != nil {
		t.Fatalf("Set: %v", err)
	}
	want.Variation = tags.NoVariation
	if err := s.Set("tree-7", want); err != nil {
		t.Fatalf("Set (replace): %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	got, ok := s.Get("tree-7")
	if !ok || got != want {
		t.Errorf("got %v, %t; want %v, true", got, ok, want)
	}
	n, err := s.Len()
	if err != nil {
		t.Fatalf("Len: %v", err)
	}
	ttesting.AssertEqualInt(t, "one row", n, 1)

	if err := s.Delete("tree-7"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := s.Get("tree-7"); ok {
		t.Errorf("tag survived delete")
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Errorf("expected error for blank path")
	}
}

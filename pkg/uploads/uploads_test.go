package uploads

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAllowedFile(t *testing.T) {
	cases := []struct {
		filename string
		want     bool
	}{
		{"proof.png", true},
		{"proof.jpg", true},
		{"proof.jpeg", true},
		{"banner.gif", true},
		{"banner.webp", true},
		{"PROOF.PNG", true},
		{"archive.tar.gz", false},
		{"malware.exe", false},
		{"script.php", false},
		{"noextension", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := AllowedFile(tc.filename); got != tc.want {
			t.Errorf("AllowedFile(%q) = %v, want %v", tc.filename, got, tc.want)
		}
	}
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	store := NewStore(t.TempDir())

	first, err := store.Save("photo.PNG", strings.NewReader("one"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	second, err := store.Save("photo.PNG", strings.NewReader("two"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if first == second {
		t.Errorf("expected unique stored names, both were %q", first)
	}
	if !strings.HasSuffix(first, ".png") {
		t.Errorf("stored name %q should keep a lowercased extension", first)
	}
	if strings.Contains(first, "-") {
		t.Errorf("stored name %q should not contain dashes", first)
	}

	path, err := store.Path(first)
	if err != nil {
		t.Fatalf("path: %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(content) != "one" {
		t.Errorf("stored content = %q, want %q", content, "one")
	}
}

func TestSaveRejectsDisallowedExtension(t *testing.T) {
	store := NewStore(t.TempDir())

	if _, err := store.Save("shell.sh", strings.NewReader("#!/bin/sh")); !errors.Is(err, ErrFileType) {
		t.Errorf("err = %v, want ErrFileType", err)
	}
}

func TestPathRejectsTraversal(t *testing.T) {
	store := NewStore(t.TempDir())

	for _, filename := range []string{"", "../secret.png", "a/b.png", ".." + string(filepath.Separator) + "x.png"} {
		if _, err := store.Path(filename); !errors.Is(err, ErrInvalidFilename) {
			t.Errorf("Path(%q) err = %v, want ErrInvalidFilename", filename, err)
		}
	}
}

func TestDeleteMissingFileIsNoop(t *testing.T) {
	store := NewStore(t.TempDir())

	if err := store.Delete("never-stored.png"); err != nil {
		t.Errorf("delete missing: %v", err)
	}
	if err := store.Delete(""); err != nil {
		t.Errorf("delete empty: %v", err)
	}

	stored, err := store.Save("img.png", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Delete(stored); err != nil {
		t.Fatalf("delete: %v", err)
	}
	path, _ := store.Path(stored)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file %q still exists after delete", stored)
	}
}

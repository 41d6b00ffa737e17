package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestUploadStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewUploadStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	path, err := store.Save("cut.jpg", []byte("jpeg-bytes"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if filepath.Dir(path) != dir {
		t.Errorf("file must live under the store dir, got %s", path)
	}
	if filepath.Ext(path) != ".jpg" {
		t.Errorf("original extension must be preserved, got %s", path)
	}
	if filepath.Base(path) == "cut.jpg" {
		t.Error("stored name must not be the client-supplied name")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "jpeg-bytes" {
		t.Errorf("content mismatch: %q", data)
	}
}

func TestUploadStore_Save_UniqueNames(t *testing.T) {
	store, err := NewUploadStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	first, err := store.Save("cut.jpg", []byte("a"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	second, err := store.Save("cut.jpg", []byte("b"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if first == second {
		t.Error("same client filename must not collide on disk")
	}
}

func TestNewUploadStore_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	if _, err := NewUploadStore(dir); err != nil {
		t.Fatalf("new store: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("upload dir must be created: %v", err)
	}
}

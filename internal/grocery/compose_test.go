package grocery

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestComposeEvenCounterExcludesAlternate(t *testing.T) {
	counter := NewCounterStore(filepath.Join(t.TempDir(), "counter.txt"))
	c := NewComposer([]string{"milk", "eggs"}, []string{"foil", "soap"}, counter)

	combined, updated, err := c.Compose()
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if !reflect.DeepEqual(combined, []string{"milk", "eggs"}) {
		t.Errorf("Expected static list only, got %v", combined)
	}
	if updated != 1 {
		t.Errorf("Expected counter 1, got %d", updated)
	}
}

func TestComposeOddCounterIncludesAlternate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter.txt")
	counter := NewCounterStore(path)
	if err := counter.Save(1); err != nil {
		t.Fatal(err)
	}

	c := NewComposer([]string{"milk"}, []string{"foil"}, counter)
	combined, updated, err := c.Compose()
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if !reflect.DeepEqual(combined, []string{"milk", "foil"}) {
		t.Errorf("Expected combined list, got %v", combined)
	}
	if updated != 2 {
		t.Errorf("Expected counter 2, got %d", updated)
	}
}

func TestComposePersistsCounter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter.txt")
	counter := NewCounterStore(path)
	c := NewComposer(nil, nil, counter)

	if _, _, err := c.Compose(); err != nil {
		t.Fatalf("Compose failed: %v", err)
	}

	// A fresh store sees the flushed value.
	n, err := NewCounterStore(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected persisted counter 1, got %d", n)
	}

	// The atomic write leaves no temp file behind.
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("Expected temp file to be renamed away, stat err: %v", err)
	}
}

func TestCounterMissingFileReadsZero(t *testing.T) {
	counter := NewCounterStore(filepath.Join(t.TempDir(), "absent.txt"))
	n, err := counter.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected 0 for missing file, got %d", n)
	}
}

func TestCounterRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter.txt")
	if err := os.WriteFile(path, []byte("three"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewCounterStore(path).Load(); err == nil {
		t.Fatal("Expected error for non-integer counter, got nil")
	}
}

func TestCounterTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter.txt")
	if err := os.WriteFile(path, []byte(" 7\n"), 0644); err != nil {
		t.Fatal(err)
	}

	n, err := NewCounterStore(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if n != 7 {
		t.Errorf("Expected 7, got %d", n)
	}
}

package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	ctx := context.Background()

	if err := c.Set(ctx, "layout:abc", []byte("svg bytes"), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	data, ok, err := c.Get(ctx, "layout:abc")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok {
		t.Fatal("Get() reported a miss for a stored key")
	}
	if string(data) != "svg bytes" {
		t.Errorf("Get() = %q, want %q", data, "svg bytes")
	}
}

func TestFileCacheMiss(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}

	_, ok, err := c.Get(context.Background(), "never-set")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Error("Get() reported a hit for a missing key")
	}
}

func TestFileCacheExpiry(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	time.Sleep(time.Millisecond)

	_, ok, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Error("expired entry still returned")
	}
}

func TestFileCacheDelete(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("deleted entry still returned")
	}

	// Deleting again is not an error.
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete() of missing key error = %v", err)
	}
}

func TestFileCacheCorruptEntryIsMiss(t *testing.T) {
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	path := c.(*FileCache).path("k")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, ok, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Error("corrupt entry returned as a hit")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt entry not removed")
	}
}

func TestFileCacheKeyDistribution(t *testing.T) {
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	path := c.(*FileCache).path("some key")

	rel, err := filepath.Rel(dir, path)
	if err != nil {
		t.Fatal(err)
	}
	if len(filepath.Dir(rel)) != 2 {
		t.Errorf("key file %q not sharded into a two-char subdirectory", rel)
	}
}

func TestNullCache(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("null cache returned a hit")
	}
}

func TestKeys(t *testing.T) {
	if LayoutKey("abc") == LayoutKey("def") {
		t.Error("layout keys for different hashes collide")
	}
	if ArtifactKey("abc", "svg", 1) == ArtifactKey("abc", "png", 1) {
		t.Error("artifact keys for different formats collide")
	}
	if ArtifactKey("abc", "png", 1) == ArtifactKey("abc", "png", 2) {
		t.Error("artifact keys for different scales collide")
	}
	if LayoutKey("abc") != LayoutKey("abc") {
		t.Error("layout keys are not deterministic")
	}
}

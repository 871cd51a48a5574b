package store

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/afmdw/asset-hub/internal/model"
)

func TestLoadAssetsFirstRun(t *testing.T) {
	s := New(t.TempDir())

	assets, err := s.LoadAssets()
	if err != nil {
		t.Fatalf("LoadAssets on empty dir failed: %v", err)
	}
	if len(assets) != 0 {
		t.Errorf("expected empty collection, got %d assets", len(assets))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New(t.TempDir())

	assets := []model.Asset{
		{ID: "A-1", Name: "Laptop", Type: "Hardware", Status: "Active", Cost: "1200"},
		{ID: "A-2", Name: "Office License", Type: "Software", Status: "Active", Cost: "99.99"},
	}

	if err := s.SaveAssets(assets); err != nil {
		t.Fatalf("SaveAssets failed: %v", err)
	}

	loaded, err := s.LoadAssets()
	if err != nil {
		t.Fatalf("LoadAssets failed: %v", err)
	}
	if !reflect.DeepEqual(assets, loaded) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, assets)
	}

	// Saving what was loaded must be idempotent
	if err := s.SaveAssets(loaded); err != nil {
		t.Fatalf("second SaveAssets failed: %v", err)
	}
	reloaded, err := s.LoadAssets()
	if err != nil {
		t.Fatalf("second LoadAssets failed: %v", err)
	}
	if !reflect.DeepEqual(loaded, reloaded) {
		t.Errorf("save/load not idempotent:\n got %+v\nwant %+v", reloaded, loaded)
	}
}

func TestOwnersRoundTrip(t *testing.T) {
	s := New(t.TempDir())

	owners := map[string]model.Owner{
		"Alice": {CreatedDate: "2024-03-01 09:00:00"},
		"Bob":   {CreatedDate: "2024-04-15 14:30:00"},
	}

	if err := s.SaveOwners(owners); err != nil {
		t.Fatalf("SaveOwners failed: %v", err)
	}

	loaded, err := s.LoadOwners()
	if err != nil {
		t.Fatalf("LoadOwners failed: %v", err)
	}
	if !reflect.DeepEqual(owners, loaded) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, owners)
	}
}

func TestLoadCorruptAssets(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	if err := os.WriteFile(s.AssetsPath(), []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	_, err := s.LoadAssets()
	var corrupt *CorruptDataError
	if !errors.As(err, &corrupt) {
		t.Fatalf("expected CorruptDataError, got %v", err)
	}
	if corrupt.Path != s.AssetsPath() {
		t.Errorf("error path = %q, want %q", corrupt.Path, s.AssetsPath())
	}
}

func TestSaveCleansUpTempFile(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	if err := s.SaveAssets([]model.Asset{{ID: "A-1", Name: "Laptop"}}); err != nil {
		t.Fatalf("SaveAssets failed: %v", err)
	}

	tmpPath := s.AssetsPath() + ".tmp"
	if _, err := os.Stat(tmpPath); !os.IsNotExist(err) {
		t.Error("temp file was not cleaned up")
	}
}

func TestSaveBacksUpPreviousSnapshot(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	first := []model.Asset{{ID: "A-1", Name: "Laptop"}}
	if err := s.SaveAssets(first); err != nil {
		t.Fatalf("first SaveAssets failed: %v", err)
	}
	firstData, err := os.ReadFile(s.AssetsPath())
	if err != nil {
		t.Fatalf("failed to read assets file: %v", err)
	}

	second := append(first, model.Asset{ID: "A-2", Name: "Monitor"})
	if err := s.SaveAssets(second); err != nil {
		t.Fatalf("second SaveAssets failed: %v", err)
	}

	bakData, err := os.ReadFile(s.AssetsPath() + ".bak")
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(bakData) != string(firstData) {
		t.Error("backup does not match the previous snapshot")
	}
}

func TestLockExcludesSecondStore(t *testing.T) {
	dir := t.TempDir()

	s1 := New(dir)
	if err := s1.Lock(); err != nil {
		t.Fatalf("first Lock failed: %v", err)
	}
	defer s1.Unlock()

	s2 := New(dir)
	err := s2.Lock()
	if err == nil {
		s2.Unlock()
		t.Fatal("second Lock should fail while first is held")
	}
	// The underlying flock error stays inspectable through the wrap
	if !errors.Is(err, unix.EWOULDBLOCK) && !errors.Is(err, unix.EAGAIN) {
		t.Errorf("contention error does not wrap the flock errno: %v", err)
	}

	s1.Unlock()
	if err := s2.Lock(); err != nil {
		t.Fatalf("Lock after Unlock failed: %v", err)
	}
	s2.Unlock()

	if _, err := os.Stat(filepath.Join(dir, ".lock")); err != nil {
		t.Errorf("lock file missing: %v", err)
	}
}

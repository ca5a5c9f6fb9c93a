package db

import (
	"path/filepath"
	"reflect"
	"testing"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return db
}

func TestLoadSources_EmptyDatabase(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	urls, err := db.LoadSources()
	if err != nil {
		t.Fatalf("LoadSources() error = %v", err)
	}
	if urls == nil {
		t.Fatal("LoadSources() returned nil, want empty slice")
	}
	if len(urls) != 0 {
		t.Errorf("LoadSources() = %v, want empty", urls)
	}
}

func TestSaveSources_PreservesOrder(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	urls := []string{
		"https://forum.example.com",
		"https://shop.example.com",
		"https://parts.example.com",
	}
	if err := db.SaveSources(urls); err != nil {
		t.Fatalf("SaveSources() error = %v", err)
	}

	got, err := db.LoadSources()
	if err != nil {
		t.Fatalf("LoadSources() error = %v", err)
	}
	if !reflect.DeepEqual(got, urls) {
		t.Errorf("LoadSources() = %v, want %v", got, urls)
	}
}

func TestSaveSources_ReplacesWholesale(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := db.SaveSources([]string{"https://old.example.com"}); err != nil {
		t.Fatal(err)
	}
	replacement := []string{"https://new.example.com"}
	if err := db.SaveSources(replacement); err != nil {
		t.Fatal(err)
	}

	got, _ := db.LoadSources()
	if !reflect.DeepEqual(got, replacement) {
		t.Errorf("LoadSources() = %v, want %v", got, replacement)
	}
}

func TestSaveSources_DeduplicatesKeepingFirst(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := db.SaveSources([]string{"https://a.example.com", "https://b.example.com", "https://a.example.com"}); err != nil {
		t.Fatal(err)
	}

	got, _ := db.LoadSources()
	want := []string{"https://a.example.com", "https://b.example.com"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadSources() = %v, want %v", got, want)
	}
}

func TestAddAndRemoveSource(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	changed, err := db.AddSource("https://a.example.com")
	if err != nil || !changed {
		t.Fatalf("AddSource() = %v, %v; want true, nil", changed, err)
	}
	changed, err = db.AddSource("https://a.example.com")
	if err != nil || changed {
		t.Fatalf("duplicate AddSource() = %v, %v; want false, nil", changed, err)
	}

	changed, err = db.RemoveSource("https://a.example.com")
	if err != nil || !changed {
		t.Fatalf("RemoveSource() = %v, %v; want true, nil", changed, err)
	}
	changed, err = db.RemoveSource("https://missing.example.com")
	if err != nil || changed {
		t.Fatalf("absent RemoveSource() = %v, %v; want false, nil", changed, err)
	}
}

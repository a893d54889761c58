package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/okian/imagecatalog/internal/domain/model"
)

func sampleRecords() []model.Image {
	return []model.Image{
		{ID: 1, Name: "sample1.jpg", URL: "https://example.com/sample1.jpg"},
		{ID: 7, Name: "sample7.jpg", URL: "https://example.com/sample7.jpg"},
		{ID: 3, Name: "sample3.jpg", URL: "https://example.com/sample3.jpg"},
	}
}

func TestMemStore_BasicOperations(t *testing.T) {
	ctx := context.Background()
	store, err := NewMemStore(ctx, sampleRecords())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if count := store.Count(ctx); count != 3 {
		t.Errorf("expected count 3, got %d", count)
	}

	// Every present id returns the exact record.
	for _, want := range sampleRecords() {
		got, err := store.Get(ctx, want.ID)
		if err != nil {
			t.Fatalf("Get(%d) unexpected error: %v", want.ID, err)
		}
		if got != want {
			t.Errorf("Get(%d) = %+v, want %+v", want.ID, got, want)
		}
	}

	// Absent ids return ErrNotFound.
	for _, id := range []int{0, 2, 999, -1} {
		if _, err := store.Get(ctx, id); !errors.Is(err, ErrNotFound) {
			t.Errorf("Get(%d) error = %v, want ErrNotFound", id, err)
		}
	}
}

func TestMemStore_ListPreservesOrder(t *testing.T) {
	ctx := context.Background()
	store, err := NewMemStore(ctx, sampleRecords())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := store.List(ctx)
	second := store.List(ctx)
	if len(first) != 3 {
		t.Fatalf("expected 3 records, got %d", len(first))
	}
	wantIDs := []int{1, 7, 3}
	for i, img := range first {
		if img.ID != wantIDs[i] {
			t.Errorf("position %d: expected id %d, got %d", i, wantIDs[i], img.ID)
		}
		if second[i] != img {
			t.Errorf("position %d: List is not idempotent", i)
		}
	}

	// Mutating the returned slice must not leak into the store.
	first[0].Name = "mutated.jpg"
	if got := store.List(ctx)[0].Name; got != "sample1.jpg" {
		t.Errorf("store was mutated through List result: %q", got)
	}
}

func TestMemStore_EmptyCatalog(t *testing.T) {
	ctx := context.Background()
	store, err := NewMemStore(ctx, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list := store.List(ctx)
	if list == nil || len(list) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", list)
	}
	if _, err := store.Get(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemStore_RejectsDuplicateIDs(t *testing.T) {
	records := append(sampleRecords(), model.Image{ID: 7, Name: "dup.jpg", URL: "https://example.com/dup.jpg"})
	_, err := NewMemStore(context.Background(), records)
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if !strings.Contains(err.Error(), "id 7") {
		t.Errorf("error should name the duplicate id: %v", err)
	}
}

func TestMemStore_RejectsInvalidRecords(t *testing.T) {
	cases := map[string]model.Image{
		"empty name":   {ID: 1, Name: "", URL: "https://example.com/a.jpg"},
		"relative url": {ID: 1, Name: "a.jpg", URL: "a.jpg"},
	}
	for name, rec := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewMemStore(context.Background(), []model.Image{rec})
			if !errors.Is(err, ErrInvalidRecord) {
				t.Fatalf("expected ErrInvalidRecord, got %v", err)
			}
		})
	}
}

func TestMemStore_SizeReporter(t *testing.T) {
	var reported int
	_, err := NewMemStore(context.Background(), sampleRecords(), WithSizeReporter(func(n int) { reported = n }))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reported != 3 {
		t.Errorf("expected reported size 3, got %d", reported)
	}
}

func TestMemStore_ConcurrentReads(t *testing.T) {
	ctx := context.Background()
	store, err := NewMemStore(ctx, sampleRecords())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = store.List(ctx)
				if _, err := store.Get(ctx, 7); err != nil {
					t.Errorf("Get(7) failed: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestDecode(t *testing.T) {
	doc := `{"images":[{"id":1,"name":"sample1.jpg","url":"https://example.com/sample1.jpg"}]}`
	records, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := model.Image{ID: 1, Name: "sample1.jpg", URL: "https://example.com/sample1.jpg"}
	if len(records) != 1 || records[0] != want {
		t.Errorf("Decode = %+v, want [%+v]", records, want)
	}

	bad := map[string]string{
		"malformed json":   `{"images": [`,
		"missing images":   `{}`,
		"unknown field":    `{"images":[{"id":1,"name":"a.jpg","url":"https://x.y/a.jpg","size":3}]}`,
		"string id":        `{"images":[{"id":"1","name":"a.jpg","url":"https://x.y/a.jpg"}]}`,
		"images not array": `{"images":{}}`,
	}
	for name, in := range bad {
		t.Run(name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(in)); !errors.Is(err, ErrDecodeCatalog) {
				t.Errorf("expected ErrDecodeCatalog, got %v", err)
			}
		})
	}
}

func TestLoadFile_Bundled(t *testing.T) {
	ctx := context.Background()
	store, _, err := LoadFile(ctx, "")
	if err != nil {
		t.Fatalf("bundled catalog failed to load: %v", err)
	}
	if store.Count(ctx) == 0 {
		t.Fatal("bundled catalog is empty")
	}
	img, err := store.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get(1) on bundled catalog: %v", err)
	}
	if img.Name != "sample1.jpg" || img.URL != "https://example.com/sample1.jpg" {
		t.Errorf("unexpected first record: %+v", img)
	}
}

func TestLoadFile_Path(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	good := filepath.Join(dir, "catalog.json")
	doc := `{"images":[{"id":10,"name":"ten.jpg","url":"https://cdn.example.com/ten.jpg"}]}`
	if err := os.WriteFile(good, []byte(doc), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	store, _, err := LoadFile(ctx, good)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Count(ctx) != 1 {
		t.Errorf("expected 1 record, got %d", store.Count(ctx))
	}

	if _, _, err := LoadFile(ctx, filepath.Join(dir, "missing.json")); !errors.Is(err, ErrOpenCatalog) {
		t.Errorf("expected ErrOpenCatalog, got %v", err)
	}

	dup := filepath.Join(dir, "dup.json")
	dupDoc := `{"images":[{"id":1,"name":"a.jpg","url":"https://x.y/a.jpg"},{"id":1,"name":"b.jpg","url":"https://x.y/b.jpg"}]}`
	if err := os.WriteFile(dup, []byte(dupDoc), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	if _, _, err := LoadFile(ctx, dup); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID, got %v", err)
	}
}

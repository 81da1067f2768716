package gallery

import (
	"context"
	"testing"
	"time"

	"github.com/tikzgo/tikzgo/pkg/errors"
)

func TestNewFigure(t *testing.T) {
	fig, err := New("axes", "\\draw (0, 0) rectangle (1, 1);")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if fig.ID == "" {
		t.Error("expected generated ID")
	}
	if fig.Name != "axes" {
		t.Errorf("Name = %q", fig.Name)
	}
	if fig.CreatedAt.IsZero() || !fig.CreatedAt.Equal(fig.UpdatedAt) {
		t.Error("timestamps not initialized together")
	}

	other, err := New("axes", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if other.ID == fig.ID {
		t.Error("IDs must be unique")
	}
}

func TestNewFigureRejectsBadNames(t *testing.T) {
	for _, name := range []string{"", "../escape", "a/b", "bad\x00name"} {
		if _, err := New(name, "src"); err == nil {
			t.Errorf("New(%q) accepted invalid name", name)
		} else if !errors.Is(err, errors.ErrCodeInvalidName) {
			t.Errorf("New(%q) error code = %v", name, errors.GetCode(err))
		}
	}
}

func TestFileStoreGetPutDelete(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	fig, _ := New("spiral", "\\draw (0, 0) circle (1cm);")
	fig.PNG = []byte{0x89, 'P', 'N', 'G'}
	if err := store.Put(ctx, fig); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := store.Get(ctx, fig.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != fig.Name || got.Source != fig.Source {
		t.Errorf("Get = %+v, want %+v", got, fig)
	}
	if string(got.PNG) != string(fig.PNG) {
		t.Error("PNG bytes not round-tripped")
	}

	byName, err := store.GetByName(ctx, "spiral")
	if err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	if byName.ID != fig.ID {
		t.Errorf("GetByName ID = %q, want %q", byName.ID, fig.ID)
	}

	if err := store.Delete(ctx, fig.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, fig.ID); !errors.Is(err, errors.ErrCodeFigureNotFound) {
		t.Errorf("Get after delete: %v", err)
	}
	if err := store.Delete(ctx, fig.ID); !errors.Is(err, errors.ErrCodeFigureNotFound) {
		t.Errorf("second Delete: %v", err)
	}
}

func TestFileStoreListOrdersByCreation(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"third", "first", "second"} {
		fig, _ := New(name, "")
		switch name {
		case "first":
			fig.CreatedAt = base
		case "second":
			fig.CreatedAt = base.Add(time.Minute)
		case "third":
			fig.CreatedAt = base.Add(2 * time.Minute)
		}
		if err := store.Put(ctx, fig); err != nil {
			t.Fatalf("Put %d: %v", i, err)
		}
	}

	figs, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var names []string
	for _, fig := range figs {
		names = append(names, fig.Name)
	}
	want := []string{"first", "second", "third"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("List order = %v, want %v", names, want)
		}
	}
}

func TestFileStorePutReplacesSameName(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	old, _ := New("plot", "old source")
	if err := store.Put(ctx, old); err != nil {
		t.Fatalf("Put: %v", err)
	}
	replacement, _ := New("plot", "new source")
	if err := store.Put(ctx, replacement); err != nil {
		t.Fatalf("Put replacement: %v", err)
	}

	figs, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(figs) != 1 {
		t.Fatalf("len(List) = %d, want 1", len(figs))
	}
	if figs[0].Source != "new source" {
		t.Errorf("Source = %q", figs[0].Source)
	}
	if _, err := store.Get(ctx, old.ID); !errors.Is(err, errors.ErrCodeFigureNotFound) {
		t.Errorf("old figure still retrievable: %v", err)
	}
}

func TestFileStoreGetByNameMissing(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if _, err := store.GetByName(context.Background(), "nope"); !errors.Is(err, errors.ErrCodeFigureNotFound) {
		t.Errorf("GetByName: %v", err)
	}
}

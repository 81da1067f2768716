package gallery

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// FileStore is a file-based figure store for CLI use.
// Figures are stored as JSON files in a config directory.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a new file-based figure store.
// If baseDir is empty, defaults to ~/.config/tikzgo/gallery/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "tikzgo", "gallery")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create gallery dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) figurePath(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}

func (s *FileStore) Get(ctx context.Context, id string) (*Figure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read(s.figurePath(id), id)
}

func (s *FileStore) read(path, id string) (*Figure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, notFound(id)
		}
		return nil, fmt.Errorf("read figure file: %w", err)
	}

	var fig Figure
	if err := json.Unmarshal(data, &fig); err != nil {
		return nil, fmt.Errorf("parse figure: %w", err)
	}
	return &fig, nil
}

func (s *FileStore) GetByName(ctx context.Context, name string) (*Figure, error) {
	figs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, fig := range figs {
		if fig.Name == name {
			return fig, nil
		}
	}
	return nil, notFound(name)
}

func (s *FileStore) List(ctx context.Context) ([]*Figure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read gallery dir: %w", err)
	}

	figs := make([]*Figure, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		fig, err := s.read(filepath.Join(s.baseDir, entry.Name()), entry.Name())
		if err != nil {
			continue
		}
		figs = append(figs, fig)
	}
	sort.Slice(figs, func(i, j int) bool {
		return figs[i].CreatedAt.Before(figs[j].CreatedAt)
	})
	return figs, nil
}

func (s *FileStore) Put(ctx context.Context, fig *Figure) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A name points at one figure; drop any older file reusing it.
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return fmt.Errorf("read gallery dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		path := filepath.Join(s.baseDir, entry.Name())
		old, err := s.read(path, entry.Name())
		if err != nil {
			continue
		}
		if old.Name == fig.Name && old.ID != fig.ID {
			os.Remove(path)
		}
	}

	data, err := json.MarshalIndent(fig, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal figure: %w", err)
	}
	if err := os.WriteFile(s.figurePath(fig.ID), data, 0600); err != nil {
		return fmt.Errorf("write figure file: %w", err)
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.figurePath(id)); err != nil {
		if os.IsNotExist(err) {
			return notFound(id)
		}
		return fmt.Errorf("remove figure file: %w", err)
	}
	return nil
}

func (s *FileStore) Close(ctx context.Context) error { return nil }

// Path returns the base directory for figure files.
func (s *FileStore) Path() string {
	return s.baseDir
}

var _ Store = (*FileStore)(nil)

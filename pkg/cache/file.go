package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// FileCache stores entries as individual files under a directory, sharded by
// the first two characters of the key hash so no single directory grows too
// large. Suitable for CLI usage.
type FileCache struct {
	dir string
}

// NewFileCache creates a file-based cache rooted at dir.
// The directory is created if it doesn't exist.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// Dir returns the cache root directory.
func (c *FileCache) Dir() string { return c.dir }

// Get retrieves an entry from the cache.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(c.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores an entry. Writes go through a temp file and rename so a
// concurrent reader never observes a partial entry.
func (c *FileCache) Set(ctx context.Context, key string, data []byte) error {
	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Delete removes an entry.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for the file cache.
func (c *FileCache) Close() error { return nil }

// path maps a key to a sharded file path. Keys may contain a "type:" prefix;
// only the hash part is used for the filename.
func (c *FileCache) path(key string) string {
	name := key
	if i := strings.IndexByte(key, ':'); i >= 0 {
		name = key[:i] + "-" + key[i+1:]
	}
	hash := Hash([]byte(key))
	return filepath.Join(c.dir, hash[:2], name+".bin")
}

var _ Cache = (*FileCache)(nil)

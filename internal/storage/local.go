package storage

import (
	"FlashVault/config"
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore implements Store on a filesystem media root. Writes land in a
// temp file next to the target and are renamed into place, so a concurrent
// reader never observes a half-written blob.
type LocalStore struct {
	root string
}

// NewLocalStore builds a Store rooted at dir.
func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{root: dir}
}

// objectPath maps a key to a path under the media root. Keys are
// slash-separated; anything trying to climb out of the root is rejected.
func (s *LocalStore) objectPath(object string) (string, bool) {
	clean := filepath.Clean(filepath.FromSlash(object))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", false
	}
	return filepath.Join(s.root, clean), true
}

// PutObject writes a blob under the media root.
func (s *LocalStore) PutObject(ctx context.Context, object string, reader io.Reader, size int64, opts PutOptions) error {
	path, ok := s.objectPath(object)
	if !ok {
		return os.ErrInvalid
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".put-*")
	if err != nil {
		return err
	}
	if _, err := io.Copy(tmp, reader); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return nil
}

// GetObject opens a blob under the media root.
func (s *LocalStore) GetObject(ctx context.Context, object string) (io.ReadCloser, ObjectInfo, error) {
	path, ok := s.objectPath(object)
	if !ok {
		return nil, ObjectInfo{}, ErrNotFound
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ObjectInfo{}, ErrNotFound
		}
		return nil, ObjectInfo{}, err
	}
	stat, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, ObjectInfo{}, err
	}
	info := ObjectInfo{
		ObjectName: object,
		Size:       stat.Size(),
	}
	return f, info, nil
}

// RemoveObject deletes a blob under the media root.
func (s *LocalStore) RemoveObject(ctx context.Context, object string) error {
	path, ok := s.objectPath(object)
	if !ok {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// InitLocal initializes the filesystem media root as the default store.
func InitLocal() {
	root := config.MediaConfigInstance.MediaRoot
	if err := os.MkdirAll(root, 0o755); err != nil {
		log.Fatalln("create media root fail:", err)
	}
	Default = NewLocalStore(root)
}

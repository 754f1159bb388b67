package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound reports a get of a key that holds no blob.
var ErrNotFound = errors.New("object not found")

// PutOptions describes upload options for blob storage.
type PutOptions struct {
	ContentType string
}

// ObjectInfo describes a stored blob.
type ObjectInfo struct {
	ObjectName  string
	Size        int64
	ContentType string
}

// Store abstracts media blob storage. Writes are idempotent per key: a
// re-put of the same key overwrites, last write wins.
type Store interface {
	PutObject(ctx context.Context, object string, reader io.Reader, size int64, opts PutOptions) error
	GetObject(ctx context.Context, object string) (io.ReadCloser, ObjectInfo, error)
	RemoveObject(ctx context.Context, object string) error
}

// Default is the main media store instance.
var Default Store

// DefaultTest is the test media store instance.
var DefaultTest Store

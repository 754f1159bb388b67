// Package pipeline turns one uploaded image into a stored blob and the key
// persisted on the owning record. Everything runs inline in the save call:
// resolve the storage key, transcode, write the blob, hand the key back.
// The first failing step aborts the rest; a transcode failure never reaches
// the store and a store failure never rewrites the owning record.
package pipeline

import (
	"FlashVault/internal/storage"
	"FlashVault/internal/transcode"
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingOwnerContext reports a storage key request without a
	// resolved owner (for cards: the Deck -> Subject -> creator chain).
	ErrMissingOwnerContext = errors.New("owner context missing")
	// ErrBadFilename reports an upload filename with no usable basename.
	ErrBadFilename = errors.New("bad upload filename")
	// ErrMissingContent reports a card face with neither text nor image.
	ErrMissingContent = errors.New("face needs text or an image")
)

// ObjectName derives the storage key for an owner's upload:
// "user_<owner>/<basename>". The basename strips any directory component
// the client put in the filename, so a crafted name cannot escape the
// owner's namespace. An owner name carrying a path separator would split
// the namespace and is rejected outright (registration constrains the
// charset, this guards every other caller). Same inputs always give the
// same key; a repeated basename overwrites the previous blob.
func ObjectName(ownerUsername, filename string) (string, error) {
	if strings.TrimSpace(ownerUsername) == "" {
		return "", ErrMissingOwnerContext
	}
	if strings.ContainsAny(ownerUsername, `/\`) {
		return "", ErrMissingOwnerContext
	}
	base := filename
	if i := strings.LastIndexAny(base, "/\\"); i >= 0 {
		base = base[i+1:]
	}
	base = strings.TrimSpace(base)
	if base == "" || base == "." || base == ".." {
		return "", ErrBadFilename
	}
	return fmt.Sprintf("user_%s/%s", ownerUsername, base), nil
}

// ValidateFace enforces the card face rule: at least one of text, an already
// stored image reference, or a fresh upload must be present.
func ValidateFace(text, imageRef string, hasUpload bool) error {
	if strings.TrimSpace(text) == "" && imageRef == "" && !hasUpload {
		return ErrMissingContent
	}
	return nil
}

// Process runs the card-face pipeline for one upload: resolve key,
// transcode with bound, write the blob, return the key.
func Process(ctx context.Context, ownerUsername, filename string, raw []byte, bound transcode.Bound) (string, error) {
	return run(ctx, ownerUsername, filename, raw, bound, transcode.Transcode)
}

// ProcessProfile is Process with the profile rule: sources already within
// bound are stored unchanged instead of re-encoded.
func ProcessProfile(ctx context.Context, ownerUsername, filename string, raw []byte, bound transcode.Bound) (string, error) {
	return run(ctx, ownerUsername, filename, raw, bound, transcode.TranscodeProfile)
}

func run(
	ctx context.Context,
	ownerUsername, filename string,
	raw []byte,
	bound transcode.Bound,
	encode func([]byte, transcode.Bound) (*transcode.Encoded, error),
) (string, error) {
	object, err := ObjectName(ownerUsername, filename)
	if err != nil {
		return "", err
	}
	encoded, err := encode(raw, bound)
	if err != nil {
		return "", err
	}
	if storage.Default == nil {
		return "", errors.New("storage not initialized")
	}
	if err := storage.Default.PutObject(
		ctx,
		object,
		bytes.NewReader(encoded.Bytes),
		int64(len(encoded.Bytes)),
		storage.PutOptions{ContentType: contentTypeFor(encoded.Format)},
	); err != nil {
		return "", err
	}
	return object, nil
}

func contentTypeFor(format string) string {
	switch format {
	case "webp":
		return "image/webp"
	case "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}

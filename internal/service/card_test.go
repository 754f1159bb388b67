package service

import (
	"FlashVault/internal/pipeline"
	"FlashVault/internal/storage"
	"FlashVault/model"
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"sync"
	"testing"
)

// countingStore is an in-memory Store that counts writes.
type countingStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	puts    int
}

func newCountingStore() *countingStore {
	return &countingStore{objects: make(map[string][]byte)}
}

func (s *countingStore) PutObject(ctx context.Context, object string, reader io.Reader, size int64, opts storage.PutOptions) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[object] = data
	s.puts++
	return nil
}

func (s *countingStore) GetObject(ctx context.Context, object string) (io.ReadCloser, storage.ObjectInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[object]
	if !ok {
		return nil, storage.ObjectInfo{}, storage.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), storage.ObjectInfo{ObjectName: object, Size: int64(len(data))}, nil
}

func (s *countingStore) RemoveObject(ctx context.Context, object string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, object)
	return nil
}

func withCountingStore(t *testing.T) *countingStore {
	t.Helper()
	prev := storage.Default
	store := newCountingStore()
	storage.Default = store
	t.Cleanup(func() { storage.Default = prev })
	return store
}

func makePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 100, A: 255})
		}
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// ownerNotCalled fails the test if the owner chain is ever loaded.
func ownerNotCalled(t *testing.T) func() (string, error) {
	return func() (string, error) {
		t.Fatal("owner chain loaded on a save without new uploads")
		return "", nil
	}
}

func TestApplyCardInputResaveWithoutBytesSkipsImageWork(t *testing.T) {
	store := withCountingStore(t)

	card := model.Card{
		Question:      "what is a monoid",
		QuestionImage: "user_bob/diagram.png",
		Answer:        "a set with an associative op and identity",
		DeckID:        1,
	}
	in := CardInput{
		Question: "what is a monoid, really",
		Answer:   card.Answer,
	}

	if err := applyCardInput(context.Background(), ownerNotCalled(t), &card, in); err != nil {
		t.Fatal(err)
	}
	if store.puts != 0 {
		t.Fatalf("text-only re-save wrote %d blobs, want 0", store.puts)
	}
	if card.QuestionImage != "user_bob/diagram.png" {
		t.Fatalf("image reference rewritten to %q on a byte-free save", card.QuestionImage)
	}
	if card.Question != "what is a monoid, really" {
		t.Fatalf("question text not updated: %q", card.Question)
	}
}

func TestApplyCardInputProcessesNewUpload(t *testing.T) {
	store := withCountingStore(t)

	card := model.Card{DeckID: 1}
	in := CardInput{
		Question:       "name this shape",
		Answer:         "a torus",
		QuestionUpload: &FaceUpload{Filename: "shape.png", Data: makePNG(t, 64, 64)},
	}
	owner := func() (string, error) { return "bob", nil }

	if err := applyCardInput(context.Background(), owner, &card, in); err != nil {
		t.Fatal(err)
	}
	if card.QuestionImage != "user_bob/shape.png" {
		t.Fatalf("got key %q, want user_bob/shape.png", card.QuestionImage)
	}
	if store.puts != 1 {
		t.Fatalf("got %d puts, want 1", store.puts)
	}
	blob := store.objects[card.QuestionImage]
	if len(blob) < 12 || !bytes.Equal(blob[0:4], []byte("RIFF")) || !bytes.Equal(blob[8:12], []byte("WEBP")) {
		t.Fatal("stored face blob is not WEBP")
	}
}

func TestApplyCardInputRejectsEmptyFace(t *testing.T) {
	store := withCountingStore(t)

	card := model.Card{DeckID: 1}
	in := CardInput{Answer: "the answer"}

	err := applyCardInput(context.Background(), ownerNotCalled(t), &card, in)
	if !errors.Is(err, pipeline.ErrMissingContent) {
		t.Fatalf("got %v, want ErrMissingContent", err)
	}
	if !strings.HasPrefix(err.Error(), "question:") {
		t.Fatalf("error %q does not name the failing face", err)
	}
	if store.puts != 0 {
		t.Fatalf("invalid card wrote %d blobs, want 0", store.puts)
	}
}

func TestApplyCardInputSanitizesText(t *testing.T) {
	withCountingStore(t)

	card := model.Card{DeckID: 1}
	in := CardInput{
		Question: "<script>alert(1)</script>what is XSS",
		Answer:   "<b>injection</b> via markup",
	}

	if err := applyCardInput(context.Background(), ownerNotCalled(t), &card, in); err != nil {
		t.Fatal(err)
	}
	if card.Question != "what is XSS" {
		t.Fatalf("question not sanitized: %q", card.Question)
	}
	if card.Answer != "injection via markup" {
		t.Fatalf("answer not sanitized: %q", card.Answer)
	}
}

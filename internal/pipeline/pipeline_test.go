package pipeline

import (
	"FlashVault/internal/storage"
	"FlashVault/internal/transcode"
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"
	"testing"
)

// memStore is an in-memory Store used to observe pipeline writes.
type memStore struct {
	mu           sync.Mutex
	objects      map[string][]byte
	contentTypes map[string]string
	putErr       error
}

func newMemStore() *memStore {
	return &memStore{
		objects:      make(map[string][]byte),
		contentTypes: make(map[string]string),
	}
}

func (m *memStore) PutObject(ctx context.Context, object string, reader io.Reader, size int64, opts storage.PutOptions) error {
	if m.putErr != nil {
		return m.putErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[object] = data
	m.contentTypes[object] = opts.ContentType
	return nil
}

func (m *memStore) GetObject(ctx context.Context, object string) (io.ReadCloser, storage.ObjectInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[object]
	if !ok {
		return nil, storage.ObjectInfo{}, storage.ErrNotFound
	}
	info := storage.ObjectInfo{
		ObjectName:  object,
		Size:        int64(len(data)),
		ContentType: m.contentTypes[object],
	}
	return io.NopCloser(bytes.NewReader(data)), info, nil
}

func (m *memStore) RemoveObject(ctx context.Context, object string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, object)
	delete(m.contentTypes, object)
	return nil
}

func withMemStore(t *testing.T) *memStore {
	t.Helper()
	prev := storage.Default
	store := newMemStore()
	storage.Default = store
	t.Cleanup(func() { storage.Default = prev })
	return store
}

func makePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestObjectNameIsDeterministic(t *testing.T) {
	first, err := ObjectName("alice", "diagram.png")
	if err != nil {
		t.Fatal(err)
	}
	second, err := ObjectName("alice", "diagram.png")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatalf("same inputs gave %q and %q", first, second)
	}
	if first != "user_alice/diagram.png" {
		t.Fatalf("got %q, want user_alice/diagram.png", first)
	}
}

func TestObjectNameStripsDirectoryComponents(t *testing.T) {
	cases := map[string]string{
		"../../etc/passwd":       "user_alice/passwd",
		"/tmp/upload.png":        "user_alice/upload.png",
		`C:\Users\x\evil.png`:    "user_alice/evil.png",
		"nested/dir/photo.jpeg":  "user_alice/photo.jpeg",
		"plain.gif":              "user_alice/plain.gif",
		"  padded.png ":          "user_alice/padded.png",
		"dir/../../../deep.webp": "user_alice/deep.webp",
	}
	for filename, want := range cases {
		got, err := ObjectName("alice", filename)
		if err != nil {
			t.Fatalf("ObjectName(alice, %q): %v", filename, err)
		}
		if got != want {
			t.Fatalf("ObjectName(alice, %q) = %q, want %q", filename, got, want)
		}
	}
}

func TestObjectNameRejectsBadInputs(t *testing.T) {
	if _, err := ObjectName("", "photo.png"); !errors.Is(err, ErrMissingOwnerContext) {
		t.Fatalf("empty owner: got %v, want ErrMissingOwnerContext", err)
	}
	for _, owner := range []string{"a/b", "../alice", `alice\b`, "/alice"} {
		if _, err := ObjectName(owner, "photo.png"); !errors.Is(err, ErrMissingOwnerContext) {
			t.Fatalf("owner %q: got %v, want ErrMissingOwnerContext", owner, err)
		}
	}
	for _, filename := range []string{"", "   ", ".", "..", "dir/", "dir/.."} {
		if _, err := ObjectName("alice", filename); !errors.Is(err, ErrBadFilename) {
			t.Fatalf("filename %q: got %v, want ErrBadFilename", filename, err)
		}
	}
}

func TestValidateFace(t *testing.T) {
	if err := ValidateFace("", "", false); !errors.Is(err, ErrMissingContent) {
		t.Fatalf("empty face: got %v, want ErrMissingContent", err)
	}
	if err := ValidateFace("  \t ", "", false); !errors.Is(err, ErrMissingContent) {
		t.Fatalf("whitespace-only text: got %v, want ErrMissingContent", err)
	}
	if err := ValidateFace("what is 2+2", "", false); err != nil {
		t.Fatalf("text only: %v", err)
	}
	if err := ValidateFace("", "user_alice/pic.png", false); err != nil {
		t.Fatalf("stored image only: %v", err)
	}
	if err := ValidateFace("", "", true); err != nil {
		t.Fatalf("fresh upload only: %v", err)
	}
	if err := ValidateFace("both", "user_alice/pic.png", true); err != nil {
		t.Fatalf("text and image: %v", err)
	}
}

func TestProcessStoresTranscodedBlob(t *testing.T) {
	store := withMemStore(t)
	raw := makePNG(t, 64, 64)

	key, err := Process(context.Background(), "bob", "pic.png", raw, transcode.Bound{Width: 800, Height: 800})
	if err != nil {
		t.Fatal(err)
	}
	if key != "user_bob/pic.png" {
		t.Fatalf("got key %q, want user_bob/pic.png", key)
	}
	data, ok := store.objects[key]
	if !ok {
		t.Fatal("blob not written")
	}
	if !bytes.Equal(data[0:4], []byte("RIFF")) || !bytes.Equal(data[8:12], []byte("WEBP")) {
		t.Fatal("stored blob is not WEBP")
	}
	if ct := store.contentTypes[key]; ct != "image/webp" {
		t.Fatalf("got content type %q, want image/webp", ct)
	}
}

func TestProcessDecodeFailureWritesNothing(t *testing.T) {
	store := withMemStore(t)

	_, err := Process(context.Background(), "bob", "pic.png", []byte("not an image"), transcode.Bound{Width: 800, Height: 800})
	if !errors.Is(err, transcode.ErrDecode) {
		t.Fatalf("got %v, want ErrDecode", err)
	}
	if len(store.objects) != 0 {
		t.Fatal("a failed transcode must not reach the store")
	}
}

func TestProcessStoreFailurePropagates(t *testing.T) {
	store := withMemStore(t)
	store.putErr = errors.New("backend down")

	_, err := Process(context.Background(), "bob", "pic.png", makePNG(t, 16, 16), transcode.Bound{Width: 800, Height: 800})
	if err == nil || !errors.Is(err, store.putErr) {
		t.Fatalf("got %v, want wrapped store error", err)
	}
}

func TestProcessProfileKeepsSmallSource(t *testing.T) {
	store := withMemStore(t)
	raw := makePNG(t, 100, 100)

	key, err := ProcessProfile(context.Background(), "carol", "avatar.png", raw, transcode.Bound{Width: 300, Height: 300})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(store.objects[key], raw) {
		t.Fatal("within-bound profile upload must be stored unchanged")
	}
	if ct := store.contentTypes[key]; ct != "image/png" {
		t.Fatalf("got content type %q, want image/png", ct)
	}
}

func TestProcessSameKeyOverwrites(t *testing.T) {
	store := withMemStore(t)
	ctx := context.Background()
	bound := transcode.Bound{Width: 800, Height: 800}

	first, err := Process(ctx, "bob", "pic.png", makePNG(t, 32, 32), bound)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Process(ctx, "bob", "pic.png", makePNG(t, 48, 48), bound)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatalf("resave produced a new key: %q vs %q", first, second)
	}
	if len(store.objects) != 1 {
		t.Fatalf("got %d stored objects, want 1", len(store.objects))
	}
}

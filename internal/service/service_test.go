package service

import (
	"FlashVault/config"
	"FlashVault/internal/repo"
	"FlashVault/internal/storage"
	"FlashVault/model"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"testing"
	"time"
)

// These tests run against the dedicated test database and bucket, the same
// stack the server deploys on. Set SERVICE_TEST=1 with MySQL, Redis and
// MinIO reachable to run them.

var backendsOnce sync.Once

func setupBackends(t *testing.T) {
	t.Helper()
	if os.Getenv("SERVICE_TEST") != "1" {
		t.Skip("set SERVICE_TEST=1 to run database-backed service tests")
	}
	backendsOnce.Do(func() {
		config.InitConfig()
		repo.InitMysqlTest()
		repo.InitRedis()
		storage.InitMinioTest()
		storage.Default = storage.DefaultTest
	})
	cleanTables(t)
}

func cleanTables(t *testing.T) {
	t.Helper()
	repo.Db.Exec("SET FOREIGN_KEY_CHECKS = 0")
	for _, table := range []string{"card", "deck", "subject", "profile", "user_db"} {
		if err := repo.Db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("clean %s failed: %v", table, err)
		}
	}
	repo.Db.Exec("SET FOREIGN_KEY_CHECKS = 1")
}

func createTestUser(t *testing.T, prefix string) *model.User {
	t.Helper()
	suffix := time.Now().UnixNano()
	user := &model.User{
		UserName: fmt.Sprintf("%s_%d", prefix, suffix),
		Password: "123456",
		Email:    fmt.Sprintf("%s_%d@test.com", prefix, suffix),
		IsActive: true,
	}
	if err := CreateUser(user); err != nil {
		t.Fatal(err)
	}
	return user
}

func createTestDeck(t *testing.T, user *model.User) *model.Deck {
	t.Helper()
	subject := &model.Subject{Name: "Math", CreatorID: user.ID}
	if err := CreateSubject(subject); err != nil {
		t.Fatal(err)
	}
	deck := &model.Deck{Name: "Algebra", Description: "group theory", SubjectID: subject.ID}
	if err := CreateDeck(deck); err != nil {
		t.Fatal(err)
	}
	return deck
}

func readStoredBlob(t *testing.T, key string) []byte {
	t.Helper()
	obj, _, err := storage.Default.GetObject(context.Background(), key)
	if err != nil {
		t.Fatalf("get %q: %v", key, err)
	}
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestCreateUserCreatesDefaultProfile(t *testing.T) {
	setupBackends(t)

	user := createTestUser(t, "profile_user")
	profile, err := GetProfileByUserID(user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if profile.Image != config.MediaConfigInstance.DefaultProfileImage {
		t.Fatalf("new profile image is %q, want the default sentinel %q",
			profile.Image, config.MediaConfigInstance.DefaultProfileImage)
	}
}

func TestSaveCardResaveKeepsStoredBlob(t *testing.T) {
	setupBackends(t)
	ctx := context.Background()

	user := createTestUser(t, "card_user")
	deck := createTestDeck(t, user)

	card := model.Card{DeckID: deck.ID}
	in := CardInput{
		Question:       "what curve is this",
		Answer:         "a parabola",
		QuestionUpload: &FaceUpload{Filename: "curve.png", Data: makePNG(t, 64, 64)},
	}
	if err := SaveCard(ctx, &card, in); err != nil {
		t.Fatal(err)
	}

	wantKey := fmt.Sprintf("user_%s/curve.png", user.UserName)
	if card.QuestionImage != wantKey {
		t.Fatalf("got key %q, want %q", card.QuestionImage, wantKey)
	}
	blobBefore := readStoredBlob(t, wantKey)

	// Text-only re-save: the stored key and blob must survive untouched.
	again := CardInput{
		Question: "what curve is this, exactly",
		Answer:   "a parabola",
	}
	if err := SaveCard(ctx, &card, again); err != nil {
		t.Fatal(err)
	}
	if card.QuestionImage != wantKey {
		t.Fatalf("re-save rewrote the key to %q", card.QuestionImage)
	}
	blobAfter := readStoredBlob(t, wantKey)
	if !bytes.Equal(blobBefore, blobAfter) {
		t.Fatal("re-save without new bytes changed the stored blob")
	}

	stored, err := GetCard(card.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Question != "what curve is this, exactly" {
		t.Fatalf("persisted question is %q", stored.Question)
	}
	if stored.QuestionImage != wantKey {
		t.Fatalf("persisted key is %q, want %q", stored.QuestionImage, wantKey)
	}
}

func TestSaveProfileImageRewritesReference(t *testing.T) {
	setupBackends(t)
	ctx := context.Background()

	user := createTestUser(t, "avatar_user")
	profile, err := SaveProfileImage(ctx, user.ID, user.UserName, "avatar.png", makePNG(t, 100, 100))
	if err != nil {
		t.Fatal(err)
	}
	wantKey := fmt.Sprintf("user_%s/avatar.png", user.UserName)
	if profile.Image != wantKey {
		t.Fatalf("got key %q, want %q", profile.Image, wantKey)
	}
	// 100x100 is within the profile bound, so the stored blob is the
	// original PNG byte-for-byte.
	if !bytes.Equal(readStoredBlob(t, wantKey), makePNG(t, 100, 100)) {
		t.Fatal("within-bound profile upload was re-encoded")
	}
}

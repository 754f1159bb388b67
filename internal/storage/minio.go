package storage

import (
	"FlashVault/config"
	"context"
	"fmt"
	"io"
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStore implements Store with a MinIO client bound to one bucket.
type MinioStore struct {
	client *minio.Client
	bucket string
}

// NewMinioStore builds a Store from a MinIO client and bucket.
func NewMinioStore(client *minio.Client, bucket string) *MinioStore {
	return &MinioStore{client: client, bucket: bucket}
}

// PutObject uploads a blob to MinIO.
func (s *MinioStore) PutObject(ctx context.Context, object string, reader io.Reader, size int64, opts PutOptions) error {
	_, err := s.client.PutObject(ctx, s.bucket, object, reader, size, minio.PutObjectOptions{
		ContentType: opts.ContentType,
	})
	return err
}

// GetObject fetches a blob and its size from MinIO.
func (s *MinioStore) GetObject(ctx context.Context, object string) (io.ReadCloser, ObjectInfo, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	stat, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ObjectInfo{}, ErrNotFound
		}
		return nil, ObjectInfo{}, err
	}
	info := ObjectInfo{
		ObjectName:  object,
		Size:        stat.Size,
		ContentType: stat.ContentType,
	}
	return obj, info, nil
}

// RemoveObject deletes a blob from MinIO.
func (s *MinioStore) RemoveObject(ctx context.Context, object string) error {
	return s.client.RemoveObject(ctx, s.bucket, object, minio.RemoveObjectOptions{})
}

func newMinioClient() *minio.Client {
	client, err := minio.New(fmt.Sprintf("%s:%s", config.AppConfig.MinioHost, config.AppConfig.MinioPort), &minio.Options{
		Creds:  credentials.NewStaticV4(config.AppConfig.MinioUsername, config.AppConfig.MinioPassword, ""),
		Secure: false,
	})
	if err != nil {
		log.Fatalln("minio error:", err)
	}
	return client
}

func ensureBucket(client *minio.Client, bucket string) {
	ctx := context.Background()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		log.Fatalln("check bucket fail:", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			log.Fatalln("create bucket fail:", err)
		}
	}
}

// InitMinio initializes the MinIO client and bucket as the default store.
func InitMinio() {
	client := newMinioClient()
	ensureBucket(client, config.AppConfig.BucketName)
	Default = NewMinioStore(client, config.AppConfig.BucketName)
}

// InitMinioTest initializes the test MinIO bucket.
func InitMinioTest() {
	client := newMinioClient()
	ensureBucket(client, config.AppConfig.BucketNameTest)
	DefaultTest = NewMinioStore(client, config.AppConfig.BucketNameTest)
}

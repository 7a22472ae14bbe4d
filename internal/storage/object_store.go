// Package storage adapts MinIO (or any S3 compatible store) for uploaded images.
package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/minio/minio-go/v7/pkg/tags"
)

// PathPrefix starts every object path handed out to clients.
const PathPrefix = "/objects/"

var (
	ErrObjectMissing = errors.New("object does not exist")
	ErrForeignURL    = errors.New("url does not point into the upload bucket")
)

// MinioStore implements presigned access and tag-based ACL metadata on one bucket.
type MinioStore struct {
	client *minio.Client
	bucket string
}

// NewMinioStore connects to MinIO and ensures the bucket exists.
func NewMinioStore(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool) (*MinioStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}
	return &MinioStore{client: client, bucket: bucket}, nil
}

// PresignPut generates a pre-signed PUT URL for a direct client upload.
func (m *MinioStore) PresignPut(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := m.client.PresignedPutObject(ctx, m.bucket, key, expiry)
	if err != nil {
		return "", fmt.Errorf("presign put: %w", err)
	}
	return u.String(), nil
}

// PresignGet generates a pre-signed GET URL.
func (m *MinioStore) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.bucket, key, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("presign get: %w", err)
	}
	return u.String(), nil
}

// SetTags replaces the object's tag set.
func (m *MinioStore) SetTags(ctx context.Context, key string, values map[string]string) error {
	t, err := tags.MapToObjectTags(values)
	if err != nil {
		return fmt.Errorf("build tags: %w", err)
	}
	if err := m.client.PutObjectTagging(ctx, m.bucket, key, t, minio.PutObjectTaggingOptions{}); err != nil {
		return fmt.Errorf("put tags: %w", missing(err))
	}
	return nil
}

// Tags returns the object's tag set.
func (m *MinioStore) Tags(ctx context.Context, key string) (map[string]string, error) {
	t, err := m.client.GetObjectTagging(ctx, m.bucket, key, minio.GetObjectTaggingOptions{})
	if err != nil {
		return nil, fmt.Errorf("get tags: %w", missing(err))
	}
	return t.ToMap(), nil
}

// NormalizePath maps an upload URL of this bucket to its object path.
func (m *MinioStore) NormalizePath(raw string) (string, error) {
	return NormalizePath(m.bucket, raw)
}

func missing(err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchObject":
		return ErrObjectMissing
	}
	return err
}

// NormalizePath accepts an object path, a path-style URL
// (https://host/<bucket>/<key>?sig) or a virtual-host URL
// (https://<bucket>.host/<key>?sig) and returns "/objects/<key>".
func NormalizePath(bucket, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, PathPrefix) {
		key, err := KeyFromPath(raw)
		if err != nil {
			return "", err
		}
		return PathPrefix + key, nil
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", ErrForeignURL
	}

	p := strings.TrimPrefix(u.Path, "/")
	switch {
	case strings.HasPrefix(u.Host, bucket+"."):
	case strings.HasPrefix(p, bucket+"/"):
		p = strings.TrimPrefix(p, bucket+"/")
	default:
		return "", ErrForeignURL
	}

	key, err := cleanKey(p)
	if err != nil {
		return "", err
	}
	return PathPrefix + key, nil
}

// KeyFromPath extracts the bucket key from "/objects/<key>".
func KeyFromPath(objectPath string) (string, error) {
	if !strings.HasPrefix(objectPath, PathPrefix) {
		return "", fmt.Errorf("object path must start with %s", PathPrefix)
	}
	return cleanKey(strings.TrimPrefix(objectPath, PathPrefix))
}

func cleanKey(key string) (string, error) {
	if key == "" || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	cleaned := path.Clean("/" + key)[1:]
	if cleaned == "" {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	return cleaned, nil
}

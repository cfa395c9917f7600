package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIO keeps prescription uploads in an object bucket. Records store
// only the object key.
type MinIO struct {
	client *minio.Client
	bucket string
}

// NewMinIO creates the client. hostPort is e.g. "127.0.0.1:9000".
func NewMinIO(hostPort, accessKey, secretKey, bucket string, useSSL bool) (*MinIO, error) {
	c, err := minio.New(hostPort, &minio.Options{Creds: credentials.NewStaticV4(accessKey, secretKey, ""), Secure: useSSL})
	if err != nil {
		return nil, err
	}

	// Ensure bucket exists
	ctx := context.Background()
	exists, err := c.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := c.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	return &MinIO{client: c, bucket: bucket}, nil
}

// sanitizeFileName keeps keys to [a-z0-9-_.].
var nonSafe = regexp.MustCompile(`[^a-z0-9\-_.]+`)

func sanitizeFileName(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "-")
	name = nonSafe.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-_")
	if name == "" {
		name = "file"
	}
	return name
}

// ObjectName builds a collision-resistant key for an upload.
func ObjectName(filename string) string {
	base := sanitizeFileName(strings.TrimSuffix(filename, path.Ext(filename)))
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%s_%s%s", uuid.New().String(), base, ext)
}

// Upload stores a multipart file under key.
func (m *MinIO) Upload(ctx context.Context, fileHeader *multipart.FileHeader, key string) error {
	f, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	buf := &bytes.Buffer{}
	if _, err := io.Copy(buf, f); err != nil {
		return err
	}

	_, err = m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(buf.Bytes()), int64(buf.Len()),
		minio.PutObjectOptions{ContentType: fileHeader.Header.Get("Content-Type")})
	return err
}

// Fetch streams an object back. The caller closes the reader.
func (m *MinIO) Fetch(ctx context.Context, key string) (io.ReadCloser, string, int64, error) {
	stat, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, "", 0, err
	}
	obj, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", 0, err
	}
	return obj, stat.ContentType, stat.Size, nil
}

func (m *MinIO) Remove(ctx context.Context, key string) error {
	return m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
}

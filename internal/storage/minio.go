package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const publicReadPolicy = `{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`

type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// ImageStore keeps uploaded pet and campaign images in a public bucket.
type ImageStore struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// NewImageStore connects to MinIO and creates the bucket if it is missing.
func NewImageStore(ctx context.Context, opts Options) (*ImageStore, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", opts.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", opts.Bucket, err)
		}
		log.Printf("Created bucket: %s", opts.Bucket)

		// image URLs are handed straight to browsers
		if err := client.SetBucketPolicy(ctx, opts.Bucket, fmt.Sprintf(publicReadPolicy, opts.Bucket)); err != nil {
			log.Printf("Warning: Failed to make bucket %s public: %v", opts.Bucket, err)
		}
	}

	scheme := "http"
	if opts.UseSSL {
		scheme = "https"
	}

	log.Println("✅ Connected to MinIO")
	return &ImageStore{
		client:  client,
		bucket:  opts.Bucket,
		baseURL: scheme + "://" + opts.Endpoint,
	}, nil
}

// Put stores r under a fresh object name that keeps the original extension
// and returns the object's URL.
func (s *ImageStore) Put(ctx context.Context, filename, contentType string, r io.Reader, size int64) (string, error) {
	objectName := ObjectName(filename)

	_, err := s.client.PutObject(ctx, s.bucket, objectName, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", objectName, err)
	}
	return s.baseURL + "/" + url.PathEscape(s.bucket) + "/" + url.PathEscape(objectName), nil
}

// ObjectName derives a collision-free object key from an uploaded file name.
func ObjectName(filename string) string {
	return uuid.NewString() + strings.ToLower(path.Ext(path.Base(filename)))
}

package content

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"mime"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/anonymity12/habitplanet/pkg/config"
)

// ArtStore keeps generated card images and returns the reference a card
// carries as its image url.
type ArtStore interface {
	Put(ctx context.Context, mimeType string, data []byte) (string, error)
}

// DataURLStore embeds the image into the reference itself.
type DataURLStore struct{}

func (DataURLStore) Put(_ context.Context, mimeType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty image")
	}
	if mimeType == "" {
		mimeType = "image/png"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

type s3Client interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store writes images content-addressed under cards/ so the same picture
// is stored once.
type S3Store struct {
	client s3Client
	bucket string
}

func NewS3Store(cfg config.S3Config) *S3Store {
	opts := s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: true,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	return NewS3StoreWithClient(s3.New(opts), cfg.Bucket)
}

func NewS3StoreWithClient(client s3Client, bucket string) *S3Store {
	return &S3Store{
		client: client,
		bucket: bucket,
	}
}

func (s *S3Store) Put(ctx context.Context, mimeType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty image")
	}
	if mimeType == "" {
		mimeType = "image/png"
	}
	sum := sha256.Sum256(data)
	key := "cards/" + hex.EncodeToString(sum[:]) + extension(mimeType)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(mimeType),
	})
	if err != nil {
		return "", errors.New("uploading card art error: " + err.Error())
	}
	return "s3://" + s.bucket + "/" + key, nil
}

func extension(mimeType string) string {
	switch mimeType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	}
	if exts, err := mime.ExtensionsByType(mimeType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	if _, sub, ok := strings.Cut(mimeType, "/"); ok && sub != "" {
		return "." + sub
	}
	return ".bin"
}

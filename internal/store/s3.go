package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/jhoffmann/masterblog/internal/model"
)

// S3Backend stores the collection as one JSON object, same format as the
// file backend. A missing object is an empty collection.
type S3Backend struct {
	client *s3.Client
	bucket string
	key    string
}

func NewS3Backend(accessKeyID, accessKeySecret, region, endpoint, bucket, key string) (*S3Backend, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKeyID, accessKeySecret, "")),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("error initializing S3 client: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	return &S3Backend{
		client: client,
		bucket: bucket,
		key:    key,
	}, nil
}

func (b *S3Backend) Load() ([]model.Post, error) {
	out, err := b.client.GetObject(context.TODO(), &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(b.key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return []model.Post{}, nil
		}
		return nil, fmt.Errorf("error reading %s/%s: %w", b.bucket, b.key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading %s/%s: %w", b.bucket, b.key, err)
	}

	var posts []model.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		storeLogger.Warn().Err(err).Str("bucket", b.bucket).Str("key", b.key).
			Msg("Malformed storage object, starting empty")
		return []model.Post{}, nil
	}

	return posts, nil
}

func (b *S3Backend) Save(posts []model.Post) error {
	data, err := json.MarshalIndent(posts, "", "    ")
	if err != nil {
		return err
	}

	_, err = b.client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(b.bucket),
		Key:         aws.String(b.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("error writing %s/%s: %w", b.bucket, b.key, err)
	}
	return nil
}

func (b *S3Backend) Close() error {
	return nil
}

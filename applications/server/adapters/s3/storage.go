package s3

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"

	"github.com/intakekit/intake/applications/server/domain"
	"github.com/intakekit/intake/applications/server/interfaces"
)

// filenameMetadataKey holds the original upload filename on the object;
// the object key itself is the opaque identifier.
const filenameMetadataKey = "filename"

type s3Storage struct {
	client *s3.Client
	bucket string
	log    log.Logger
}

func NewStorage(client *s3.Client, bucket string, logger log.Logger) interfaces.StorageCapability {
	return &s3Storage{
		client: client,
		bucket: bucket,
		log:    logger,
	}
}

func (s *s3Storage) Store(ctx context.Context, name string, content io.Reader) (string, error) {
	id := uuid.NewString()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(id),
		Body:        content,
		ContentType: aws.String("application/octet-stream"),
		Metadata:    map[string]string{filenameMetadataKey: name},
	})
	if err != nil {
		return "", fmt.Errorf("can't put object to bucket %s: %w", s.bucket, err)
	}

	level.Info(s.log).Log("msg", "file stored",
		"id", id,
		"name", name,
		"bucket", s.bucket,
	)

	return id, nil
}

func (s *s3Storage) Open(ctx context.Context, id string) (domain.StoredFile, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(id),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return domain.StoredFile{}, interfaces.ErrNotFound
		}

		return domain.StoredFile{}, fmt.Errorf("can't get object from bucket %s: %w", s.bucket, err)
	}

	return domain.StoredFile{
		Name:          out.Metadata[filenameMetadataKey],
		ContentLength: aws.ToInt64(out.ContentLength),
		Body:          out.Body,
	}, nil
}

func (s *s3Storage) Delete(ctx context.Context, id string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(id),
	})
	if err != nil {
		return fmt.Errorf("can't delete object from bucket %s: %w", s.bucket, err)
	}

	return nil
}

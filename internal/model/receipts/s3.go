package receipts

import (
	"bytes"
	"context"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"max.ks1230/expense-bot/internal/model/customerr"
)

const (
	keyPrefix   = "receipts"
	contentType = "image/jpeg"
)

type s3Config interface {
	Bucket() string
	Region() string
	Endpoint() string
	AccessKeyID() string
	SecretAccessKey() string
}

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store keeps receipts as objects receipts/<userID>/<uuid>.jpg in one bucket.
type S3Store struct {
	client objectPutter
	bucket string
}

func NewS3Store(ctx context.Context, cfg s3Config) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region()),
	}
	if cfg.AccessKeyID() != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID(),
			cfg.SecretAccessKey(),
			"",
		)))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "load aws config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint() != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint())
			o.UsePathStyle = true
		}
	})
	return newS3Store(client, cfg.Bucket()), nil
}

func newS3Store(client objectPutter, bucket string) *S3Store {
	return &S3Store{client: client, bucket: bucket}
}

// SaveReceipt returns the s3:// URI of the stored object.
func (s *S3Store) SaveReceipt(ctx context.Context, userID int64, photo []byte) (string, error) {
	key := path.Join(keyPrefix, objectName(userID))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(photo),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", customerr.NewNetworkError("put receipt", err)
	}
	return "s3://" + s.bucket + "/" + key, nil
}

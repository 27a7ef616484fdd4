package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"go-certtrack/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Allowed proof content types and the extension stored for each.
var AllowedProofTypes = map[string]string{
	"application/pdf": ".pdf",
	"image/png":       ".png",
	"image/jpeg":      ".jpg",
	"image/jpg":       ".jpg",
}

//go:generate mockgen -source=s3.go -destination=mock/s3_mock.go -package=mock
type ProofStorage interface {
	PresignUpload(ctx context.Context, key, contentType string) (string, error)
	PresignDownload(ctx context.Context, key string) (string, error)
}

// S3 presigns certificate proof uploads and downloads against a single bucket.
type S3 struct {
	presign *s3.PresignClient
	bucket  string
	expires time.Duration
	logger  *zap.Logger
}

func NewS3(ctx context.Context, cfg config.S3Config, logger *zap.Logger) (*S3, error) {
	if logger == nil {
		logger = zap.L()
	}
	logger = logger.Named("storage.s3")

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
		logger.Info("s3 using static credentials", zap.String("region", cfg.Region), zap.String("bucket", cfg.Bucket))
	} else {
		logger.Warn("s3 using default credential chain")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	expires := cfg.PresignTTL
	if expires <= 0 {
		expires = 15 * time.Minute
	}

	return &S3{
		presign: s3.NewPresignClient(s3.NewFromConfig(awsCfg)),
		bucket:  cfg.Bucket,
		expires: expires,
		logger:  logger,
	}, nil
}

func (s *S3) PresignUpload(ctx context.Context, key, contentType string) (string, error) {
	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, func(o *s3.PresignOptions) {
		o.Expires = s.expires
	})
	if err != nil {
		return "", fmt.Errorf("presign put: %w", err)
	}
	s.logger.Debug("presigned proof upload", zap.String("key", key))
	return req.URL, nil
}

func (s *S3) PresignDownload(ctx context.Context, key string) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(o *s3.PresignOptions) {
		o.Expires = s.expires
	})
	if err != nil {
		return "", fmt.Errorf("presign get: %w", err)
	}
	return req.URL, nil
}

// ProofExtension returns the stored extension for an allowed content type.
func ProofExtension(contentType string) (string, bool) {
	ext, ok := AllowedProofTypes[strings.ToLower(strings.TrimSpace(contentType))]
	return ext, ok
}

// ProofKey builds companies/<company>/certificates/<certificate>/<random><ext>.
func ProofKey(companyID, certificateID, ext string) string {
	return path.Join("companies", companyID, "certificates", certificateID, uuid.NewString()+ext)
}

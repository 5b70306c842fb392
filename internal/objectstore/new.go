package objectstore

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
)

// Options describes an S3-compatible bucket.
type Options struct {
	Bucket          string
	Endpoint        string
	Region          string
	ForcePathStyle  bool
	AccessKeyID     string
	SecretAccessKey string
}

type implStore struct {
	client   *s3.S3
	uploader *s3manager.Uploader
	bucket   string
	logger   logger.Logger
}

// New creates an S3-backed Store. Requests are signed with SigV4.
func New(opts Options, log logger.Logger) (Store, error) {
	cfg := aws.NewConfig().
		WithRegion(opts.Region).
		WithS3ForcePathStyle(opts.ForcePathStyle)
	if opts.Endpoint != "" {
		cfg = cfg.WithEndpoint(opts.Endpoint)
	}
	if opts.AccessKeyID != "" {
		cfg = cfg.WithCredentials(credentials.NewStaticCredentials(opts.AccessKeyID, opts.SecretAccessKey, ""))
	}

	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, err
	}

	client := s3.New(sess)
	return &implStore{
		client:   client,
		uploader: s3manager.NewUploaderWithClient(client),
		bucket:   opts.Bucket,
		logger:   log,
	}, nil
}

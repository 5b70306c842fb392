package queue

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/aws/aws-sdk-go/service/sqs/sqsiface"

	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
)

// Options describes an SQS-compatible queue endpoint.
type Options struct {
	QueueURL        string
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

type implQueue struct {
	client   sqsiface.SQSAPI
	queueURL string
	logger   logger.Logger
}

// New creates a Queue backed by an SQS-compatible service.
func New(opts Options, log logger.Logger) (Queue, error) {
	cfg := aws.NewConfig().WithRegion(opts.Region)
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

	return NewWithClient(sqs.New(sess), opts.QueueURL, log), nil
}

// NewWithClient wraps an existing SQS client.
func NewWithClient(client sqsiface.SQSAPI, queueURL string, log logger.Logger) Queue {
	return &implQueue{
		client:   client,
		queueURL: queueURL,
		logger:   log,
	}
}

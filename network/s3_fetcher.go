package network

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/natcap/ecoshard-services/models/common"
	"github.com/op/go-logging"
)

// S3Fetcher streams objects from an S3-compatible store to local
// files. Google Cloud Storage, where our publishers keep their
// ecoshards, speaks the same XML API, so bucket-scheme source URIs
// work alongside plain HTTPS.
type S3Fetcher struct {
	client *minio.Client
	logger *logging.Logger
}

func NewS3Fetcher(client *minio.Client, _logger *logging.Logger) *S3Fetcher {
	return &S3Fetcher{
		client: client,
		logger: _logger,
	}
}

// Fetch downloads the object named by an s3://bucket/key URI to
// destPath. Like the HTTP fetcher, it reports every failure as a
// TransferError and leaves partial output for the caller to judge
// by fingerprint.
func (f *S3Fetcher) Fetch(ctx context.Context, sourceURI, destPath string) error {
	bucket, key, err := parseBucketURI(sourceURI)
	if err != nil {
		return common.NewTransferError(sourceURI, destPath, err)
	}
	f.logger.Infof("fetching %s from bucket %s", key, bucket)
	err = f.client.FGetObject(ctx, bucket, key, destPath, minio.GetObjectOptions{})
	if err != nil {
		return common.NewTransferError(sourceURI, destPath, err)
	}
	return nil
}

func parseBucketURI(sourceURI string) (bucket, key string, err error) {
	u, err := url.Parse(sourceURI)
	if err != nil {
		return "", "", err
	}
	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if u.Scheme != "s3" || bucket == "" || key == "" {
		return "", "", fmt.Errorf("%s is not an s3://bucket/key URI", sourceURI)
	}
	return bucket, key, nil
}

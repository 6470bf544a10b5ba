package network_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/natcap/ecoshard-services/models/common"
	"github.com/natcap/ecoshard-services/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestS3FetchRejectsBadURIs(t *testing.T) {
	fetcher := network.NewS3Fetcher(nil, testLogger)
	destPath := filepath.Join(t.TempDir(), "out.tif")

	badURIs := []string{
		"https://storage.googleapis.com/bucket/key.tif", // wrong scheme
		"s3://bucket-with-no-key",
		"s3:///key-with-no-bucket.tif",
	}
	for _, uri := range badURIs {
		err := fetcher.Fetch(context.Background(), uri, destPath)
		require.Error(t, err, uri)
		var transferErr *common.TransferError
		assert.True(t, errors.As(err, &transferErr), uri)
	}
}

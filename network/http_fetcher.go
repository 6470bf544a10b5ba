package network

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/natcap/ecoshard-services/models/common"
	"github.com/natcap/ecoshard-services/util/logger"
	"github.com/op/go-logging"
)

// HTTPFetcher streams remote resources to local files over HTTP(S).
// It does one thing, once: no retries, no resumption. A failed
// transfer may leave a partial file at the destination, and callers
// must judge success by fingerprint verification, never by the file's
// existence.
type HTTPFetcher struct {
	httpClient *http.Client
	logger     *logging.Logger
}

// NewHTTPFetcher creates a fetcher whose requests time out after the
// given duration. Param timeout should come from the config and cover
// the whole transfer, not just the dial.
func NewHTTPFetcher(timeout time.Duration, _logger *logging.Logger) *HTTPFetcher {
	return &HTTPFetcher{
		httpClient: &http.Client{Timeout: timeout},
		logger:     _logger,
	}
}

// Fetch streams sourceURI to destPath, creating or overwriting the
// destination file. Any transport or local write failure comes back
// as a TransferError wrapping the cause.
func (f *HTTPFetcher) Fetch(ctx context.Context, sourceURI, destPath string) error {
	f.logger.Infof("fetching %s", destPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURI, nil)
	if err != nil {
		return common.NewTransferError(sourceURI, destPath, err)
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return common.NewTransferError(sourceURI, destPath, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return common.NewTransferError(sourceURI, destPath,
			fmt.Errorf("server returned status %d", resp.StatusCode))
	}
	outFile, err := os.Create(destPath)
	if err != nil {
		return common.NewTransferError(sourceURI, destPath, err)
	}
	body := logger.NewProgressReader(resp.Body, f.logger, "GET "+sourceURI, resp.ContentLength)
	_, copyErr := io.Copy(outFile, body)
	closeErr := outFile.Close()
	if copyErr != nil {
		return common.NewTransferError(sourceURI, destPath, copyErr)
	}
	if closeErr != nil {
		return common.NewTransferError(sourceURI, destPath, closeErr)
	}
	return nil
}

package network

import (
	"context"
	"fmt"
	"net/url"

	"github.com/natcap/ecoshard-services/constants"
	"github.com/natcap/ecoshard-services/models/common"
)

// Fetcher streams a remote resource to a local file. HTTPFetcher and
// S3Fetcher both satisfy it.
type Fetcher interface {
	Fetch(ctx context.Context, sourceURI, destPath string) error
}

// FetcherFor returns the transport matching sourceURI's scheme:
// http(s) URIs get an HTTPFetcher, s3://bucket/key URIs get an
// S3Fetcher backed by the object-store client configured for the
// publishers' provider. Unknown schemes are an error, as is an s3 URI
// when no client is configured.
func FetcherFor(appContext *common.Context, sourceURI string) (Fetcher, error) {
	u, err := url.Parse(sourceURI)
	if err != nil {
		return nil, fmt.Errorf("cannot parse source URI %s: %v", sourceURI, err)
	}
	switch u.Scheme {
	case "http", "https":
		return NewHTTPFetcher(appContext.Config.FetchTimeout, appContext.Logger), nil
	case "s3":
		client := appContext.S3Clients[constants.S3ClientGoogle]
		if client == nil {
			return nil, fmt.Errorf("no S3 client configured for provider %s", constants.S3ClientGoogle)
		}
		return NewS3Fetcher(client, appContext.Logger), nil
	default:
		return nil, fmt.Errorf("no fetcher handles scheme %q in %s", u.Scheme, sourceURI)
	}
}

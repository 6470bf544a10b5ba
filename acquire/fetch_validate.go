// Package acquire composes transport, fingerprint parsing, and
// digesting into verified-download operations, plus the archive
// materializer that unpacks zip ecoshards and records completion.
package acquire

import (
	"context"

	"github.com/natcap/ecoshard-services/digest"
	"github.com/natcap/ecoshard-services/fingerprint"
	"github.com/natcap/ecoshard-services/models/common"
)

// Fetcher streams a remote resource to a local file. The network
// package provides HTTP and S3 implementations; tests provide fakes.
type Fetcher interface {
	Fetch(ctx context.Context, sourceURI, destPath string) error
}

// FetchValidator downloads a remote resource and verifies the result
// against the fingerprint embedded in the destination file's name.
// Re-running it on an already-correct file is safe: verification is
// purely a function of the bytes on disk.
type FetchValidator struct {
	Context *common.Context
	Fetcher Fetcher
}

func NewFetchValidator(context *common.Context, fetcher Fetcher) *FetchValidator {
	return &FetchValidator{
		Context: context,
		Fetcher: fetcher,
	}
}

// Run fetches sourceURI into destPath and verifies the download
// against the fingerprint parsed from destPath's name. A malformed
// name fails with a FormatError before any bytes move. A digest
// mismatch fails with an IntegrityError and leaves the corrupt file
// in place for diagnosis, so the file's presence must never be read
// as success.
func (v *FetchValidator) Run(ctx context.Context, sourceURI, destPath string) error {
	fp, err := fingerprint.Parse(destPath)
	if err != nil {
		return err
	}
	return v.RunWith(ctx, sourceURI, destPath, fp)
}

// RunWith is Run with an explicitly supplied fingerprint, for assets
// whose published names don't carry one. A fingerprint naming an
// algorithm outside the digest registry fails here, before any bytes
// move.
func (v *FetchValidator) RunWith(ctx context.Context, sourceURI, destPath string, fp fingerprint.Fingerprint) error {
	if !digest.SupportedAlgorithm(fp.Algorithm) {
		return common.NewUnsupportedAlgorithmError(fp.Algorithm)
	}
	if err := v.Fetcher.Fetch(ctx, sourceURI, destPath); err != nil {
		return err
	}
	return v.verify(destPath, fp)
}

func (v *FetchValidator) verify(destPath string, fp fingerprint.Fingerprint) error {
	actual, err := digest.FileDigest(destPath, fp.Algorithm)
	if err != nil {
		return err
	}
	if actual != fp.Digest {
		v.Context.Logger.Errorf("%s failed verification: expected %s, got %s:%s",
			destPath, fp, fp.Algorithm, actual)
		return common.NewIntegrityError(destPath, fp.Algorithm, fp.Digest, actual)
	}
	v.Context.Logger.Infof("verified %s against %s", destPath, fp)
	return nil
}

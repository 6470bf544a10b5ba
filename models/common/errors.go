package common

import (
	"fmt"
)

// FormatError says a file path does not follow the
// <stem>_<algorithm>_<hexdigest><ext> naming convention, so no
// fingerprint can be parsed from it.
type FormatError struct {
	Path string
}

func NewFormatError(path string) *FormatError {
	return &FormatError{Path: path}
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("path %s does not end in a _<algorithm>_<hexdigest><ext> fingerprint", e.Path)
}

// NotFoundError says a local file was missing when we went to digest it.
type NotFoundError struct {
	Path string
}

func NewNotFoundError(path string) *NotFoundError {
	return &NotFoundError{Path: path}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Path)
}

// UnsupportedAlgorithmError says a fingerprint named a digest algorithm
// that is not in the registry.
type UnsupportedAlgorithmError struct {
	Algorithm string
}

func NewUnsupportedAlgorithmError(algorithm string) *UnsupportedAlgorithmError {
	return &UnsupportedAlgorithmError{Algorithm: algorithm}
}

func (e *UnsupportedAlgorithmError) Error() string {
	return fmt.Sprintf("unsupported digest algorithm %s", e.Algorithm)
}

// TransferError wraps whatever went wrong while streaming a remote
// resource to local disk: connection failures, non-success HTTP status,
// timeouts, or local write errors. A partial file may remain at the
// destination after one of these.
type TransferError struct {
	SourceURI string
	Dest      string
	Err       error
}

func NewTransferError(sourceURI, dest string, err error) *TransferError {
	return &TransferError{
		SourceURI: sourceURI,
		Dest:      dest,
		Err:       err,
	}
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer of %s to %s failed: %v", e.SourceURI, e.Dest, e.Err)
}

// IntegrityError says a downloaded file's digest did not match the
// digest its filename promised. The offending file is left on disk
// for diagnosis, so callers must never treat its presence as success.
type IntegrityError struct {
	Path      string
	Algorithm string
	Expected  string
	Actual    string
}

func NewIntegrityError(path, algorithm, expected, actual string) *IntegrityError {
	return &IntegrityError{
		Path:      path,
		Algorithm: algorithm,
		Expected:  expected,
		Actual:    actual,
	}
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s does not match its expected %s digest: expected %s, got %s",
		e.Path, e.Algorithm, e.Expected, e.Actual)
}

// ExtractionError says a downloaded file that should have been a
// well-formed zip archive could not be extracted.
type ExtractionError struct {
	Path string
	Err  error
}

func NewExtractionError(path string, err error) *ExtractionError {
	return &ExtractionError{Path: path, Err: err}
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("cannot extract archive %s: %v", e.Path, e.Err)
}

package constants

const (
	AlgMd5    = "md5"
	AlgSha1   = "sha1"
	AlgSha256 = "sha256"
	AlgSha512 = "sha512"

	// CompleteTokenSuffix is appended to an archive's base name to form
	// the path of its completion token. The token's existence, not its
	// content, is what signals "downloaded, verified, and extracted."
	CompleteTokenSuffix = ".COMPLETE"

	// DigestBufferSize is the number of bytes read per chunk when
	// streaming a file through a digest function.
	DigestBufferSize = 1024 * 1024

	S3ClientGoogle = "Google"
	S3ClientLocal  = "Local"
)

var DigestAlgorithms []string = []string{
	AlgMd5,
	AlgSha1,
	AlgSha256,
	AlgSha512,
}

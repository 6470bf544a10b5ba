// Package digest streams local files through named digest functions.
// The set of supported algorithms is a closed registry resolved per
// call; asking for anything outside it is an explicit error, never a
// silent fallback.
package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"io"
	"os"

	"github.com/natcap/ecoshard-services/constants"
	"github.com/natcap/ecoshard-services/models/common"
)

var registry = map[string]func() hash.Hash{
	constants.AlgMd5:    md5.New,
	constants.AlgSha1:   sha1.New,
	constants.AlgSha256: sha256.New,
	constants.AlgSha512: sha512.New,
}

// SupportedAlgorithm returns true if algorithm names a digest function
// in the registry.
func SupportedAlgorithm(algorithm string) bool {
	_, ok := registry[algorithm]
	return ok
}

// FileDigest streams the file at filePath through the named algorithm
// in one-megabyte chunks and returns the lowercase hex digest at the
// algorithm's full natural length. It returns a NotFoundError if the
// file is missing (checked before the algorithm is resolved) and an
// UnsupportedAlgorithmError for an unknown algorithm name.
//
// Digests are never truncated. Truncating to a fixed 32 hex characters
// would quietly weaken verification for SHA-family fingerprints, and
// every fingerprint published so far is md5, whose hex digest is
// already exactly 32 characters.
func FileDigest(filePath, algorithm string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", common.NewNotFoundError(filePath)
		}
		return "", err
	}
	defer file.Close()
	newHash, ok := registry[algorithm]
	if !ok {
		return "", common.NewUnsupportedAlgorithmError(algorithm)
	}

	digestHash := newHash()
	buf := make([]byte, constants.DigestBufferSize)
	if _, err := io.CopyBuffer(digestHash, file, buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(digestHash.Sum(nil)), nil
}

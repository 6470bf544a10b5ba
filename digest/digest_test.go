package digest_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/natcap/ecoshard-services/constants"
	"github.com/natcap/ecoshard-services/digest"
	"github.com/natcap/ecoshard-services/models/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Digests of the three-byte file "abc", straight from the FIPS and RFC
// test vectors.
var abcDigests = map[string]string{
	constants.AlgMd5:    "900150983cd24fb0d6963f7d28e17f72",
	constants.AlgSha1:   "a9993e364706816aba3e25717850c26c9cd0d89d",
	constants.AlgSha256: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
	constants.AlgSha512: "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f",
}

func writeTestFile(t *testing.T, content []byte) string {
	t.Helper()
	filePath := filepath.Join(t.TempDir(), "content.bin")
	require.NoError(t, os.WriteFile(filePath, content, 0644))
	return filePath
}

func TestFileDigest(t *testing.T) {
	filePath := writeTestFile(t, []byte("abc"))
	for algorithm, expected := range abcDigests {
		actual, err := digest.FileDigest(filePath, algorithm)
		require.NoError(t, err, algorithm)
		assert.Equal(t, expected, actual, algorithm)
	}
}

func TestFileDigestIsDeterministic(t *testing.T) {
	filePath := writeTestFile(t, []byte("the same bytes every time"))
	first, err := digest.FileDigest(filePath, constants.AlgSha256)
	require.NoError(t, err)
	second, err := digest.FileDigest(filePath, constants.AlgSha256)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Changing one byte changes the digest.
	changed := writeTestFile(t, []byte("the same bytes every timf"))
	third, err := digest.FileDigest(changed, constants.AlgSha256)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}

func TestFileDigestMissingFile(t *testing.T) {
	_, err := digest.FileDigest(filepath.Join(t.TempDir(), "nope.tif"), constants.AlgMd5)
	require.Error(t, err)
	var notFound *common.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestFileDigestMissingFileWinsOverBadAlgorithm(t *testing.T) {
	// When the file is missing and the algorithm is unknown, the
	// missing file is reported: existence is checked first.
	_, err := digest.FileDigest(filepath.Join(t.TempDir(), "nope.tif"), "whirlpool")
	require.Error(t, err)
	var notFound *common.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestFileDigestUnsupportedAlgorithm(t *testing.T) {
	filePath := writeTestFile(t, []byte("abc"))
	_, err := digest.FileDigest(filePath, "whirlpool")
	require.Error(t, err)
	var unsupported *common.UnsupportedAlgorithmError
	assert.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "whirlpool", unsupported.Algorithm)
}

func TestSupportedAlgorithm(t *testing.T) {
	for _, algorithm := range constants.DigestAlgorithms {
		assert.True(t, digest.SupportedAlgorithm(algorithm), algorithm)
	}
	assert.False(t, digest.SupportedAlgorithm("crc32"))
	assert.False(t, digest.SupportedAlgorithm(""))
}

func TestFileDigestEmptyFile(t *testing.T) {
	filePath := writeTestFile(t, []byte{})
	actual, err := digest.FileDigest(filePath, constants.AlgMd5)
	require.NoError(t, err)
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", actual)
}

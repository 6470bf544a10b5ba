package constants_test

import (
	"testing"

	"github.com/natcap/ecoshard-services/constants"
	"github.com/stretchr/testify/assert"
)

func TestDigestAlgorithms(t *testing.T) {
	assert.Equal(t, 4, len(constants.DigestAlgorithms))
	assert.Contains(t, constants.DigestAlgorithms, constants.AlgMd5)
	assert.Contains(t, constants.DigestAlgorithms, constants.AlgSha1)
	assert.Contains(t, constants.DigestAlgorithms, constants.AlgSha256)
	assert.Contains(t, constants.DigestAlgorithms, constants.AlgSha512)
}

func TestCompleteTokenSuffix(t *testing.T) {
	assert.Equal(t, ".COMPLETE", constants.CompleteTokenSuffix)
}

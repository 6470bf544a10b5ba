// Package fingerprint parses content fingerprints out of ecoshard file
// names. An ecoshard's name embeds the digest of its own bytes in the
// form <stem>_<algorithm>_<hexdigest><ext>, which lets any holder of
// the file verify it without out-of-band metadata.
package fingerprint

import (
	"fmt"
	"regexp"

	"github.com/natcap/ecoshard-services/models/common"
)

// The algorithm token may not contain underscores, the digest token is
// lowercase hex, and the extension after the digest may not contain an
// underscore. Data publishers rely on exactly this pattern.
var embeddedPattern = regexp.MustCompile(`^.*_([^_]+)_([0-9a-f]+)\.[^_]*$`)

// Fingerprint pairs a digest algorithm name with the digest a file's
// bytes are expected to produce under that algorithm.
type Fingerprint struct {
	Algorithm string
	Digest    string
}

// New returns a Fingerprint with an explicitly supplied algorithm and
// digest, for assets whose names don't carry an embedded fingerprint.
func New(algorithm, digest string) Fingerprint {
	return Fingerprint{
		Algorithm: algorithm,
		Digest:    digest,
	}
}

// Parse extracts the embedded Fingerprint from filePath. Tokens are
// returned verbatim, with no case normalization, because digest
// comparison downstream is an exact string compare. Returns a
// FormatError if filePath doesn't follow the naming convention.
func Parse(filePath string) (Fingerprint, error) {
	matches := embeddedPattern.FindStringSubmatch(filePath)
	if matches == nil {
		return Fingerprint{}, common.NewFormatError(filePath)
	}
	return Fingerprint{
		Algorithm: matches[1],
		Digest:    matches[2],
	}, nil
}

func (f Fingerprint) String() string {
	return fmt.Sprintf("%s:%s", f.Algorithm, f.Digest)
}

package service

import (
	"path/filepath"
	"strings"

	"github.com/natcap/ecoshard-services/constants"
	"github.com/natcap/ecoshard-services/util"
)

// Asset pairs a remote ecoshard with the local path it lands on. An
// Asset is a short-lived value constructed per acquisition; nothing
// holds onto it after the pipeline finishes.
type Asset struct {
	// SourceURI locates the remote resource. Either https:// or
	// s3://bucket/key.
	SourceURI string

	// LocalPath is where the downloaded bytes go. Its base name
	// carries the embedded fingerprint.
	LocalPath string
}

// NewAsset builds an Asset whose local path is the source URI's base
// name inside destDir, mirroring how the publishers name their files.
func NewAsset(sourceURI, destDir string) *Asset {
	return &Asset{
		SourceURI: sourceURI,
		LocalPath: filepath.Join(destDir, util.URLBaseName(sourceURI)),
	}
}

// IsArchive returns true for zip-packaged assets, which get extracted
// after verification.
func (a *Asset) IsArchive() bool {
	return strings.EqualFold(filepath.Ext(a.LocalPath), ".zip")
}

// TokenPath is where this asset's completion token goes. Only archive
// assets have one.
func (a *Asset) TokenPath() string {
	return a.LocalPath + constants.CompleteTokenSuffix
}

// TargetPaths lists the files whose existence means this asset is
// done, for schedulers that skip already-satisfied work. For a flat
// asset that's the verified file itself; for an archive it's the
// completion token, since the archive's own presence says nothing
// about extraction.
func (a *Asset) TargetPaths() []string {
	if a.IsArchive() {
		return []string{a.TokenPath()}
	}
	return []string{a.LocalPath}
}

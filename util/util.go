package util

import (
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FileExists returns true if the file at path exists.
// This returns false if the file is there but we can't stat it.
func FileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil
}

// AllFilesExist returns true if every path in paths exists. An empty
// list counts as all-present.
func AllFilesExist(paths []string) bool {
	for _, p := range paths {
		if !FileExists(p) {
			return false
		}
	}
	return true
}

// ExpandTilde expands the tilde in a file path to the user's home dir.
func ExpandTilde(filePath string) (string, error) {
	if !strings.HasPrefix(filePath, "~") {
		return filePath, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, strings.TrimPrefix(filePath, "~")), nil
}

// URLBaseName returns the last path segment of uri, which for our data
// publishers is the fingerprint-bearing file name. If uri can't be
// parsed as a URL, this falls back to treating it as a plain path.
func URLBaseName(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return path.Base(uri)
	}
	return path.Base(u.Path)
}

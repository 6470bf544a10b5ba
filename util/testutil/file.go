// Package testutil holds helpers for building fingerprint-named
// fixtures in tests.
package testutil

import (
	"archive/zip"
	"bytes"
	"crypto/md5"
	"fmt"
)

// Md5Name returns a file name that embeds the md5 fingerprint of
// data, following the <stem>_<algorithm>_<hexdigest><ext> convention.
func Md5Name(stem string, data []byte, ext string) string {
	return fmt.Sprintf("%s_md5_%x%s", stem, md5.Sum(data), ext)
}

// ZipBytes builds an in-memory zip archive holding the given entries,
// keyed by entry name.
func ZipBytes(entries map[string][]byte) ([]byte, error) {
	var buf bytes.Buffer
	zipWriter := zip.NewWriter(&buf)
	for name, data := range entries {
		entryWriter, err := zipWriter.Create(name)
		if err != nil {
			return nil, err
		}
		if _, err = entryWriter.Write(data); err != nil {
			return nil, err
		}
	}
	if err := zipWriter.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

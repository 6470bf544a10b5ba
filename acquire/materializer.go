package acquire

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/natcap/ecoshard-services/models/common"
	"github.com/natcap/ecoshard-services/util"
)

// ArchiveMaterializer turns a remote zip ecoshard into extracted
// files on disk plus a completion token. The token is written only
// after download, verification, and extraction have all succeeded;
// its existence is the one durable signal schedulers may trust.
type ArchiveMaterializer struct {
	Context *common.Context
	Fetcher Fetcher
}

func NewArchiveMaterializer(context *common.Context, fetcher Fetcher) *ArchiveMaterializer {
	return &ArchiveMaterializer{
		Context: context,
		Fetcher: fetcher,
	}
}

// Run fetches and verifies the archive at sourceURI into targetDir,
// extracts every entry into targetDir, then writes the completion
// token at tokenPath. Entries overwrite conflicting paths; the target
// directory is a per-asset workspace, not shared ground. Any failure
// propagates before the token is written.
func (m *ArchiveMaterializer) Run(ctx context.Context, sourceURI, targetDir, tokenPath string) error {
	archivePath := filepath.Join(targetDir, util.URLBaseName(sourceURI))
	validator := NewFetchValidator(m.Context, m.Fetcher)
	if err := validator.Run(ctx, sourceURI, archivePath); err != nil {
		return err
	}
	if err := m.extract(archivePath, targetDir); err != nil {
		return err
	}
	return m.writeToken(tokenPath)
}

func (m *ArchiveMaterializer) extract(archivePath, targetDir string) error {
	zipReader, err := zip.OpenReader(archivePath)
	if err != nil {
		return common.NewExtractionError(archivePath, err)
	}
	defer zipReader.Close()
	for _, entry := range zipReader.File {
		if err := extractEntry(entry, targetDir); err != nil {
			return common.NewExtractionError(archivePath, err)
		}
	}
	m.Context.Logger.Infof("extracted %d entries from %s", len(zipReader.File), archivePath)
	return nil
}

func extractEntry(entry *zip.File, targetDir string) error {
	entryPath := filepath.Join(targetDir, entry.Name)
	if !strings.HasPrefix(entryPath, filepath.Clean(targetDir)+string(os.PathSeparator)) {
		return fmt.Errorf("entry %s escapes the target directory", entry.Name)
	}
	if entry.FileInfo().IsDir() {
		return os.MkdirAll(entryPath, 0755)
	}
	if err := os.MkdirAll(filepath.Dir(entryPath), 0755); err != nil {
		return err
	}
	src, err := entry.Open()
	if err != nil {
		return err
	}
	defer src.Close()
	dst, err := os.Create(entryPath)
	if err != nil {
		return err
	}
	_, copyErr := io.Copy(dst, src)
	closeErr := dst.Close()
	if copyErr != nil {
		return copyErr
	}
	return closeErr
}

// writeToken records completion. The timestamp inside is informational
// only; consumers check existence, never content.
func (m *ArchiveMaterializer) writeToken(tokenPath string) error {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	if err := os.WriteFile(tokenPath, []byte(timestamp), 0644); err != nil {
		return err
	}
	m.Context.Logger.Infof("wrote completion token %s", tokenPath)
	return nil
}

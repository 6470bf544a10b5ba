package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/natcap/ecoshard-services/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "here.txt")
	require.NoError(t, os.WriteFile(existing, []byte("x"), 0644))

	assert.True(t, util.FileExists(existing))
	assert.False(t, util.FileExists(filepath.Join(dir, "not-here.txt")))
}

func TestAllFilesExist(t *testing.T) {
	dir := t.TempDir()
	one := filepath.Join(dir, "one.txt")
	two := filepath.Join(dir, "two.txt")
	require.NoError(t, os.WriteFile(one, []byte("1"), 0644))
	require.NoError(t, os.WriteFile(two, []byte("2"), 0644))

	assert.True(t, util.AllFilesExist([]string{one, two}))
	assert.False(t, util.AllFilesExist([]string{one, filepath.Join(dir, "three.txt")}))
	// Empty list counts as all-present.
	assert.True(t, util.AllFilesExist(nil))
}

func TestExpandTilde(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	expanded, err := util.ExpandTilde("~/data")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, "data"), expanded)

	unchanged, err := util.ExpandTilde("/var/data")
	require.NoError(t, err)
	assert.Equal(t, "/var/data", unchanged)
}

func TestURLBaseName(t *testing.T) {
	assert.Equal(t,
		"global_dem_3s_md5_22d0c3809af491fa09d03002bdf09748.zip",
		util.URLBaseName("https://storage.googleapis.com/global-invest-sdr-data/global_dem_3s_md5_22d0c3809af491fa09d03002bdf09748.zip"))
	assert.Equal(t, "file.tif", util.URLBaseName("s3://bucket/prefix/file.tif"))
	assert.Equal(t, "plain.csv", util.URLBaseName("plain.csv"))
}

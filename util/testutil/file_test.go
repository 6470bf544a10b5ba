package testutil_test

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/natcap/ecoshard-services/util/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMd5Name(t *testing.T) {
	// md5("abc") is the classic RFC 1321 test vector.
	name := testutil.Md5Name("data", []byte("abc"), ".tif")
	assert.Equal(t, "data_md5_900150983cd24fb0d6963f7d28e17f72.tif", name)
}

func TestZipBytes(t *testing.T) {
	data, err := testutil.ZipBytes(map[string][]byte{
		"a.shp": []byte("shape data"),
		"a.dbf": []byte("attribute data"),
	})
	require.NoError(t, err)

	zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	assert.Equal(t, 2, len(zipReader.File))
}

package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataURLRoundTrip(t *testing.T) {
	url := DataURL("application/pdf", []byte("%PDF-1.4 fake"))
	assert.Contains(t, url, "data:application/pdf;base64,")

	mimeType, data, err := Decode(url)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", mimeType)
	assert.Equal(t, []byte("%PDF-1.4 fake"), data)
}

func TestDataURLDefaultsMime(t *testing.T) {
	url := DataURL("", []byte("x"))
	assert.Contains(t, url, "data:application/octet-stream;base64,")
}

func TestReadDataURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("ten years of Go"), 0o600))

	url, err := ReadDataURL(path)
	require.NoError(t, err)

	mimeType, data, err := Decode(url)
	require.NoError(t, err)
	assert.Equal(t, "text/plain", mimeType)
	assert.Equal(t, []byte("ten years of Go"), data)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, _, err := Decode("https://example.com/not-a-data-url")
	assert.Error(t, err)

	_, _, err = Decode("data:application/pdf;base64")
	assert.Error(t, err)
}

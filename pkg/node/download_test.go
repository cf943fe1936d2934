package node

import (
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/blake2b"
)

func binaryServer(t *testing.T, body []byte, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSpec_BinaryURL(t *testing.T) {
	spec := Spec{Version: "v1.6.0"}
	url := spec.binaryURL()
	assert.Contains(t, url, "inkdevhub/swanky-node/releases/download/v1.6.0/")
	assert.Contains(t, url, "swanky-node-")

	override := Spec{URL: "http://localhost:1/custom"}
	assert.Equal(t, "http://localhost:1/custom", override.binaryURL())
}

func TestDownload_WritesExecutableBinary(t *testing.T) {
	body := []byte("fake node binary")
	srv := binaryServer(t, body, http.StatusOK)
	projectDir := t.TempDir()

	path, err := Download(projectDir, Spec{URL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(projectDir, "bin", "swanky-node"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, body, data)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0100, "binary must be executable")
}

func TestDownload_ChecksumVerified(t *testing.T) {
	body := []byte("fake node binary")
	digest := blake2b.Sum256(body)
	srv := binaryServer(t, body, http.StatusOK)

	path, err := Download(t.TempDir(), Spec{URL: srv.URL, Checksum: hex.EncodeToString(digest[:])})
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestDownload_ChecksumMismatch(t *testing.T) {
	srv := binaryServer(t, []byte("tampered"), http.StatusOK)
	projectDir := t.TempDir()

	_, err := Download(projectDir, Spec{URL: srv.URL, Checksum: "00ff"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "checksum mismatch")
	assert.NoFileExists(t, filepath.Join(projectDir, "bin", "swanky-node"))
}

func TestFetchBinary_ReturnsExecutableTempFile(t *testing.T) {
	body := []byte("some binary")
	digest := blake2b.Sum256(body)
	srv := binaryServer(t, body, http.StatusOK)
	dir := t.TempDir()

	path, err := FetchBinary(srv.URL, hex.EncodeToString(digest[:]), dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, body, data)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0100, "fetched binary must be executable")
}

func TestFetchBinary_MismatchLeavesNothingBehind(t *testing.T) {
	srv := binaryServer(t, []byte("tampered"), http.StatusOK)
	dir := t.TempDir()

	_, err := FetchBinary(srv.URL, "00ff", dir)
	require.Error(t, err)
	assert.ErrorContains(t, err, "checksum mismatch")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "failed fetch must clean up its temp file")
}

func TestDownload_HTTPError(t *testing.T) {
	srv := binaryServer(t, nil, http.StatusNotFound)

	_, err := Download(t.TempDir(), Spec{URL: srv.URL})
	require.Error(t, err)
	assert.ErrorContains(t, err, "404")
}

package node

import (
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/crypto/blake2b"

	"github.com/prxgr4mm3r/swanky-cli/pkg/ui"
)

// DefaultVersion is the swanky-node release installed when none is requested.
const DefaultVersion = "v1.6.0"

// Spec identifies one downloadable node release. Checksum, when non-empty,
// is the hex blake2b-256 digest of the binary and is verified after download.
type Spec struct {
	Version  string
	Checksum string
	// URL overrides the release asset URL when non-empty; used for mirrors
	// and tests.
	URL string
}

// binaryURL returns the release asset URL for the current OS and architecture.
func (s Spec) binaryURL() string {
	if s.URL != "" {
		return s.URL
	}
	return fmt.Sprintf(
		"https://github.com/inkdevhub/swanky-node/releases/download/%s/swanky-node-%s-%s",
		s.Version, runtime.GOOS, runtime.GOARCH,
	)
}

// FetchBinary downloads url into a temp file inside dir, hashing the stream
// with blake2b-256 as it goes. A non-empty checksum is compared against the
// hex digest and a mismatch discards the download. The returned path is the
// executable temp file; the caller renames it into its final place.
func FetchBinary(url, checksum, dir string) (string, error) {
	ui.Debug.Println("Fetching " + url)

	resp, err := http.Get(url) // #nosec G107 -- URL is built from a pinned host and version
	if err != nil {
		return "", fmt.Errorf("failed to download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to download %s: HTTP %d", url, resp.StatusCode)
	}

	tmpFile, err := os.CreateTemp(dir, "swanky-fetch-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	hasher, err := blake2b.New256(nil)
	if err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to init hasher: %w", err)
	}

	_, err = io.Copy(io.MultiWriter(tmpFile, hasher), resp.Body)
	tmpFile.Close()
	if err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}

	digest := hex.EncodeToString(hasher.Sum(nil))
	ui.Debug.Println("blake2b-256 " + digest)
	if checksum != "" && digest != checksum {
		os.Remove(tmpPath)
		return "", fmt.Errorf("checksum mismatch for %s: expected %s, got %s", url, checksum, digest)
	}

	if err := os.Chmod(tmpPath, 0755); err != nil { // #nosec G302 -- downloaded binary must be executable
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to set permissions: %w", err)
	}
	return tmpPath, nil
}

// Download fetches the release binary into projectDir/bin/swanky-node,
// verifies its checksum when the spec carries one, marks it executable, and
// returns the final path. The path is the task-callback payload that ends up
// in the project descriptor.
func Download(projectDir string, spec Spec) (string, error) {
	if spec.Version == "" {
		spec.Version = DefaultVersion
	}

	binDir := filepath.Join(projectDir, "bin")
	if err := os.MkdirAll(binDir, 0750); err != nil { // #nosec G301
		return "", fmt.Errorf("failed to create %s: %w", binDir, err)
	}

	tmpPath, err := FetchBinary(spec.binaryURL(), spec.Checksum, binDir)
	if err != nil {
		return "", err
	}

	finalPath := filepath.Join(binDir, "swanky-node")
	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to move node binary into place: %w", err)
	}
	return finalPath, nil
}

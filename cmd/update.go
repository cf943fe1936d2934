//go:build !windows

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/prxgr4mm3r/swanky-cli/pkg/node"
	"github.com/prxgr4mm3r/swanky-cli/pkg/ui"
)

var updateChecksum string

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update swanky to the latest version",
	Long:  `Downloads the latest swanky binary for your OS and architecture from GitHub Releases, optionally verifies its blake2b-256 checksum, and replaces the current executable.`,
	Run: func(cmd *cobra.Command, args []string) {
		url := fmt.Sprintf(
			"https://github.com/prxgr4mm3r/swanky-cli/releases/latest/download/swanky-%s-%s",
			runtime.GOOS, runtime.GOARCH,
		)

		execPath, err := os.Executable()
		if err == nil {
			execPath, err = filepath.EvalSymlinks(execPath)
		}
		if err != nil {
			ui.Error.Println("Failed to resolve executable path: " + err.Error())
			os.Exit(1)
		}

		spinner, _ := ui.Spin(fmt.Sprintf("%sDownloading swanky for %s/%s", ui.DownloadEmoji, runtime.GOOS, runtime.GOARCH))
		tmpPath, err := node.FetchBinary(url, updateChecksum, filepath.Dir(execPath))
		if spinner != nil {
			_ = spinner.Stop()
		}
		if err != nil {
			ui.Error.Println(err.Error())
			os.Exit(1)
		}

		if err := swapBinary(execPath, tmpPath); err != nil {
			os.Remove(tmpPath)
			ui.Error.Println(err.Error())
			os.Exit(1)
		}

		ui.Success.Println("swanky has been updated to the latest version!")
	},
}

// swapBinary replaces current with replacement, restoring the original on a
// failed rename.
func swapBinary(current, replacement string) error {
	oldPath := current + ".old"
	if err := os.Rename(current, oldPath); err != nil {
		return fmt.Errorf("failed to replace binary: %w", err)
	}
	if err := os.Rename(replacement, current); err != nil {
		_ = os.Rename(oldPath, current)
		return fmt.Errorf("failed to replace binary: %w", err)
	}
	// Best-effort cleanup of the previous binary.
	_ = os.Remove(oldPath)
	return nil
}

func init() {
	updateCmd.Flags().StringVar(&updateChecksum, "checksum", "", "Expected blake2b-256 checksum of the release binary (hex)")
	rootCmd.AddCommand(updateCmd)
}

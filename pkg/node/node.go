// Package node manages the local swanky-node binary: downloading a release,
// verifying it, and driving its run/purge lifecycle.
package node

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/prxgr4mm3r/swanky-cli/pkg/clierr"
)

// CommandExecutor abstracts process execution so node operations can be
// tested with mocks. Consumers should accept this interface.
type CommandExecutor interface {
	LookPath(file string) (string, error)
	Run(name string, args ...string) error
	Output(name string, args ...string) ([]byte, error)
}

// ExecExecutor is the real os/exec implementation. Run streams the child's
// output to the current terminal.
type ExecExecutor struct{}

// Compile-time check that ExecExecutor implements CommandExecutor.
var _ CommandExecutor = (*ExecExecutor)(nil)

func (ExecExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (ExecExecutor) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...) // #nosec G204 -- binary path comes from the project descriptor
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	return cmd.Run()
}

func (ExecExecutor) Output(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output() // #nosec G204
}

// Start runs the node binary in development mode and blocks until it exits.
func Start(executor CommandExecutor, binPath string, extraArgs ...string) error {
	if err := requireBinary(binPath); err != nil {
		return err
	}
	args := append([]string{"--dev"}, extraArgs...)
	if err := executor.Run(binPath, args...); err != nil {
		return fmt.Errorf("swanky-node exited with error: %w", err)
	}
	return nil
}

// Version returns the version string the node binary reports.
func Version(executor CommandExecutor, binPath string) (string, error) {
	if err := requireBinary(binPath); err != nil {
		return "", err
	}
	out, err := executor.Output(binPath, "--version")
	if err != nil {
		return "", fmt.Errorf("failed to query node version: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Purge deletes the development chain state kept by the node binary.
func Purge(executor CommandExecutor, binPath string) error {
	if err := requireBinary(binPath); err != nil {
		return err
	}
	if err := executor.Run(binPath, "purge-chain", "--dev", "-y"); err != nil {
		return fmt.Errorf("failed to purge chain state: %w", err)
	}
	return nil
}

func requireBinary(binPath string) error {
	if binPath == "" {
		return clierr.NewConfig("no local node path configured, run `swanky node install` first")
	}
	if _, err := os.Stat(binPath); err != nil {
		if os.IsNotExist(err) {
			return clierr.NewFile("node binary %s not found, run `swanky node install`", binPath)
		}
		return fmt.Errorf("failed to stat %s: %w", binPath, err)
	}
	return nil
}

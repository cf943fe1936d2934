// Package typegen invokes the external typechain generator for a built contract.
package typegen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prxgr4mm3r/swanky-cli/pkg/clierr"
	"github.com/prxgr4mm3r/swanky-cli/pkg/config"
	"github.com/prxgr4mm3r/swanky-cli/pkg/node"
)

// Generate produces typed bindings for the named contract. The contract must
// exist in the project descriptor and its build artifacts must be present;
// the generation itself is delegated to the typechain-polkadot command.
func Generate(executor node.CommandExecutor, projectDir string, cfg *config.Config, contractName string) error {
	ct, err := cfg.ContractByName(contractName)
	if err != nil {
		return err
	}

	artifactsDir := filepath.Join(projectDir, "artifacts", ct.ModuleName)
	if _, err := os.Stat(artifactsDir); err != nil {
		if os.IsNotExist(err) {
			return clierr.NewFile("no build artifacts for contract %q at %s, compile it first", contractName, artifactsDir)
		}
		return fmt.Errorf("failed to stat %s: %w", artifactsDir, err)
	}

	outDir := filepath.Join(projectDir, "typedContracts", ct.ModuleName)
	if err := os.MkdirAll(outDir, 0750); err != nil { // #nosec G301
		return fmt.Errorf("failed to create %s: %w", outDir, err)
	}

	if err := executor.Run("npx", "typechain-polkadot", "--in", artifactsDir, "--out", outDir); err != nil {
		return fmt.Errorf("typechain generation failed for %q: %w", contractName, err)
	}
	return nil
}

package cmd

import (
	"os"

	"github.com/prxgr4mm3r/swanky-cli/pkg/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "swanky",
	Short: "swanky scaffolds and manages ink! smart contract projects",
	Long:  `An all-in-one developer environment for Substrate smart contracts: create projects from templates, convert existing codebases, run a local node, and generate contract types.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			pterm.EnableDebugMessages()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Display verbose output")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ui.PrintBanner()
	if err := rootCmd.Execute(); err != nil {
		ui.Error.Println(err.Error())
		os.Exit(1)
	}
}

// GetRootCmd returns the root cobra command
func GetRootCmd() *cobra.Command {
	return rootCmd
}

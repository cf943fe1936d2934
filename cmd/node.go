package cmd

import (
	"github.com/spf13/cobra"
)

var nodeCmd = &cobra.Command{
	Use:   "node",
	Short: "Manage the local swanky-node",
	Long:  `Install, start, inspect, and purge the local development node used for contract testing.`,
}

func init() {
	rootCmd.AddCommand(nodeCmd)
}

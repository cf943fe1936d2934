package cmd

import (
	"github.com/spf13/cobra"
)

var contractCmd = &cobra.Command{
	Use:   "contract",
	Short: "Work with the contracts of the current project",
}

func init() {
	rootCmd.AddCommand(contractCmd)
}

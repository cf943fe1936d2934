package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prxgr4mm3r/swanky-cli/pkg/config"
	"github.com/prxgr4mm3r/swanky-cli/pkg/node"
	"github.com/prxgr4mm3r/swanky-cli/pkg/ui"
)

var nodeVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of the installed swanky-node binary",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(".")
		if err != nil {
			ui.Error.Println(err.Error())
			os.Exit(1)
		}

		version, err := node.Version(node.ExecExecutor{}, cfg.Node.LocalPath)
		if err != nil {
			ui.Error.Println(err.Error())
			os.Exit(1)
		}
		fmt.Println(version)
	},
}

func init() {
	nodeCmd.AddCommand(nodeVersionCmd)
}

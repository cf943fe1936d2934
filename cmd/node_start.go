package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/prxgr4mm3r/swanky-cli/pkg/config"
	"github.com/prxgr4mm3r/swanky-cli/pkg/env"
	"github.com/prxgr4mm3r/swanky-cli/pkg/node"
	"github.com/prxgr4mm3r/swanky-cli/pkg/ui"
)

var nodeStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the local swanky-node in development mode",
	Long:  `Runs the project's local node binary with --dev. Blocks until the node exits; chain state persists across restarts until purged.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(".")
		if err != nil {
			ui.Error.Println(err.Error())
			os.Exit(1)
		}

		if !env.IsPortAvailable(9944) {
			ui.Error.Println("Port 9944 is already in use by another process. Is a node already running?")
			os.Exit(1)
		}

		ui.Info.Println(ui.NodeEmoji + " Starting swanky-node...")
		if err := node.Start(node.ExecExecutor{}, cfg.Node.LocalPath, args...); err != nil {
			ui.Error.Println(err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	nodeCmd.AddCommand(nodeStartCmd)
}

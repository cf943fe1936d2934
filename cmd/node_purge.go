package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/prxgr4mm3r/swanky-cli/pkg/config"
	"github.com/prxgr4mm3r/swanky-cli/pkg/node"
	"github.com/prxgr4mm3r/swanky-cli/pkg/prompt"
	"github.com/prxgr4mm3r/swanky-cli/pkg/ui"
)

var purgeYes bool

var nodePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete the local development chain state",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(".")
		if err != nil {
			ui.Error.Println(err.Error())
			os.Exit(1)
		}

		if !purgeYes {
			confirmed, err := prompt.NewPtermAsker().Confirm("Delete all local chain state?", false)
			if err != nil {
				ui.Error.Println(err.Error())
				os.Exit(1)
			}
			if !confirmed {
				ui.Info.Println("Purge cancelled.")
				return
			}
		}

		if err := node.Purge(node.ExecExecutor{}, cfg.Node.LocalPath); err != nil {
			ui.Error.Println(err.Error())
			os.Exit(1)
		}
		ui.Success.Println(ui.CleanEmoji + " Chain state purged.")
	},
}

func init() {
	nodePurgeCmd.Flags().BoolVarP(&purgeYes, "yes", "y", false, "Skip the confirmation prompt")
	nodeCmd.AddCommand(nodePurgeCmd)
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prxgr4mm3r/swanky-cli/pkg/config"
	"github.com/prxgr4mm3r/swanky-cli/pkg/node"
	"github.com/prxgr4mm3r/swanky-cli/pkg/taskqueue"
	"github.com/prxgr4mm3r/swanky-cli/pkg/ui"
)

var (
	installVersion  string
	installChecksum string
)

var nodeInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Download the swanky-node binary into the current project",
	Long:  `Downloads the swanky-node release for this OS and architecture into ./bin, verifies the checksum when one is given, and records the binary path in swanky.config.json.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(".")
		if err != nil {
			ui.Error.Println(err.Error())
			os.Exit(1)
		}

		queue := taskqueue.New(taskqueue.NewSpinnerReporter())
		spec := node.Spec{Version: installVersion, Checksum: installChecksum}

		downloadTask := taskqueue.NewTask(func() (string, error) {
			return node.Download(".", spec)
		}, ui.DownloadEmoji+"Downloading swanky-node")
		downloadTask.SuccessMsg = "swanky-node downloaded"
		downloadTask.FailMsg = "Failed to download swanky-node"
		downloadTask.Callback = func(path string) {
			cfg = cfg.WithNodePath(path)
		}
		queue.Add(downloadTask)

		saveTask := taskqueue.NewTask(func() (string, error) {
			return "", cfg.Save(".")
		}, "Updating "+config.DefaultConfigFile)
		saveTask.SuccessMsg = config.DefaultConfigFile + " updated"
		saveTask.FailMsg = "Failed to update " + config.DefaultConfigFile
		queue.Add(saveTask)

		if err := queue.Run(); err != nil {
			ui.Error.Println(err.Error())
			os.Exit(1)
		}

		ui.Success.Println(fmt.Sprintf("%s swanky-node installed at %s", ui.NodeEmoji, cfg.Node.LocalPath))
	},
}

func init() {
	nodeInstallCmd.Flags().StringVar(&installVersion, "version", "", "swanky-node release tag to install")
	nodeInstallCmd.Flags().StringVar(&installChecksum, "checksum", "", "Expected blake2b-256 checksum of the binary (hex)")
	nodeCmd.AddCommand(nodeInstallCmd)
}

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/prxgr4mm3r/swanky-cli/pkg/clear"
	"github.com/prxgr4mm3r/swanky-cli/pkg/ui"
)

var clearAll bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete generated build artifacts",
	Long:  `Removes the artifacts and typedContracts directories of the current project. With --all the cargo target directory is removed as well.`,
	Run: func(cmd *cobra.Command, args []string) {
		removed, err := clear.Artifacts(".", clearAll)
		if err != nil {
			ui.Error.Println(err.Error())
			os.Exit(1)
		}

		if len(removed) == 0 {
			ui.Info.Println("Nothing to clear.")
			return
		}
		for _, path := range removed {
			ui.Info.Println(ui.CleanEmoji + " Removed " + path)
		}
		ui.Success.Println("Build artifacts cleared.")
	},
}

func init() {
	clearCmd.Flags().BoolVar(&clearAll, "all", false, "Also remove the cargo target directory")
	rootCmd.AddCommand(clearCmd)
}

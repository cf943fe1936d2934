package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/prxgr4mm3r/swanky-cli/pkg/config"
	"github.com/prxgr4mm3r/swanky-cli/pkg/node"
	"github.com/prxgr4mm3r/swanky-cli/pkg/typegen"
	"github.com/prxgr4mm3r/swanky-cli/pkg/ui"
)

var contractTypegenCmd = &cobra.Command{
	Use:   "typegen [contract-name]",
	Short: "Generate typed bindings for a compiled contract",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		contractName := args[0]

		cfg, err := config.Load(".")
		if err != nil {
			ui.Error.Println(err.Error())
			os.Exit(1)
		}

		ui.Info.Println("Generating types for contract " + contractName + "...")
		if err := typegen.Generate(node.ExecExecutor{}, ".", cfg, contractName); err != nil {
			ui.Error.Println(err.Error())
			os.Exit(1)
		}
		ui.Success.Println("Types generated in typedContracts/")
	},
}

func init() {
	contractCmd.AddCommand(contractTypegenCmd)
}

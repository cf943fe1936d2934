package cmd

import (
	"os"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/prxgr4mm3r/swanky-cli/pkg/config"
	"github.com/prxgr4mm3r/swanky-cli/pkg/ui"
)

var contractListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the contracts of the current project",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(".")
		if err != nil {
			ui.Error.Println(err.Error())
			os.Exit(1)
		}

		if len(cfg.Contracts) == 0 {
			ui.Info.Println("No contracts in this project yet.")
			return
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Contract", "Module Name", "Deployments"})
		t.SetStyle(table.StyleRounded)

		names := make([]string, 0, len(cfg.Contracts))
		for name := range cfg.Contracts {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			ct := cfg.Contracts[name]
			t.AppendRow(table.Row{ct.Name, ct.ModuleName, len(ct.Deployments)})
		}
		t.Render()
	},
}

func init() {
	contractCmd.AddCommand(contractListCmd)
}

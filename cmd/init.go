package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/prxgr4mm3r/swanky-cli/pkg/config"
	"github.com/prxgr4mm3r/swanky-cli/pkg/convert"
	"github.com/prxgr4mm3r/swanky-cli/pkg/env"
	"github.com/prxgr4mm3r/swanky-cli/pkg/node"
	"github.com/prxgr4mm3r/swanky-cli/pkg/prompt"
	"github.com/prxgr4mm3r/swanky-cli/pkg/taskqueue"
	"github.com/prxgr4mm3r/swanky-cli/pkg/templates"
	"github.com/prxgr4mm3r/swanky-cli/pkg/ui"
	"github.com/prxgr4mm3r/swanky-cli/pkg/validate"
)

var (
	convertPath  string
	templateName string
	nodeVersion  string
	skipInstall  bool
	skipNode     bool
)

var initCmd = &cobra.Command{
	Use:   "init [project-name]",
	Short: "Create a new smart contract project",
	Long:  `Generates a new smart contract workspace from a template, or converts an existing contract codebase into the managed layout when --convert is given.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		projectName := args[0]

		res := env.CheckPrerequisites()
		if !res.HasCargo {
			ui.Error.Println("Rust toolchain not found. Please install cargo to continue.")
			os.Exit(1)
		}
		if !res.HasCargoContract {
			ui.Warn.Println("cargo-contract is not installed; you will need it to compile contracts.")
		}
		if !res.HasNode {
			ui.Warn.Println("Node.js is not installed; dependency install and type generation will not work.")
		}

		if err := validate.ProjectName(projectName); err != nil {
			ui.Error.Println(err.Error())
			os.Exit(1)
		}

		projectDir, err := filepath.Abs(projectName)
		if err != nil {
			ui.Error.Println("Failed to resolve project directory: " + err.Error())
			os.Exit(1)
		}
		if err := validate.EmptyProjectDir(projectDir); err != nil {
			ui.Error.Println(err.Error())
			os.Exit(1)
		}
		if err := os.MkdirAll(projectDir, 0750); err != nil { // #nosec G301
			ui.Error.Println("Failed to create project directory: " + err.Error())
			os.Exit(1)
		}

		asker := prompt.NewPtermAsker()
		queue := taskqueue.New(taskqueue.NewSpinnerReporter())

		var cfg *config.Config
		if convertPath != "" {
			cfg, err = planConversion(projectName, projectDir, asker, queue)
		} else {
			cfg, err = planFromTemplate(projectName, projectDir, asker, queue)
		}
		if err != nil {
			ui.Error.Println(err.Error())
			os.Exit(1)
		}

		if err := queue.Run(); err != nil {
			ui.Error.Println(err.Error())
			os.Exit(1)
		}

		printProjectSummary(projectName, cfg)
		ui.Success.Println(fmt.Sprintf("%s Swanky project %s is ready!", ui.SparkleEmoji, projectName))
	},
}

func planConversion(projectName, projectDir string, asker prompt.Asker, queue *taskqueue.Queue) (*config.Config, error) {
	if err := validate.SourcePath(convertPath); err != nil {
		return nil, err
	}

	ui.Info.Println(fmt.Sprintf("Converting %s into swanky project %s...", convertPath, projectName))

	opts := convert.Options{
		SourceDir: convertPath,
		DestDir:   projectDir,
	}
	if !skipInstall {
		opts.Installer = npmInstall
	}
	return convert.Plan(opts, asker, queue)
}

func planFromTemplate(projectName, projectDir string, asker prompt.Asker, queue *taskqueue.Queue) (*config.Config, error) {
	templatesDir, err := templates.DefaultDir()
	if err != nil {
		return nil, err
	}

	tpl, err := pickTemplate(templatesDir, asker)
	if err != nil {
		return nil, err
	}

	tokens, contractName, err := collectTokens(projectName, tpl, asker)
	if err != nil {
		return nil, err
	}

	cfg := config.New().WithContract(contractName, contractName)

	renderTask := taskqueue.NewTask(func() (string, error) {
		return "", templates.Render(tpl.Dir, projectDir, tokens)
	}, "Rendering template "+tpl.Name)
	renderTask.SuccessMsg = "Template rendered"
	renderTask.FailMsg = "Failed to render template"
	queue.Add(renderTask)

	if !skipInstall {
		installTask := taskqueue.NewTask(func() (string, error) {
			return "", npmInstall(projectDir)
		}, "Installing dependencies")
		installTask.SuccessMsg = "Dependencies installed"
		installTask.FailMsg = "Dependency install failed, run it manually later"
		installTask.FatalOnError = false
		queue.Add(installTask)
	}

	if !skipNode {
		spec := node.Spec{Version: nodeVersion}
		downloadTask := taskqueue.NewTask(func() (string, error) {
			return node.Download(projectDir, spec)
		}, "Downloading swanky-node")
		downloadTask.SuccessMsg = "swanky-node downloaded"
		downloadTask.FailMsg = "Failed to download swanky-node"
		downloadTask.Callback = func(path string) {
			cfg = cfg.WithNodePath(path)
		}
		queue.Add(downloadTask)
	}

	saveTask := taskqueue.NewTask(func() (string, error) {
		return "", cfg.Save(projectDir)
	}, "Writing "+config.DefaultConfigFile)
	saveTask.SuccessMsg = config.DefaultConfigFile + " written"
	saveTask.FailMsg = "Failed to write " + config.DefaultConfigFile
	queue.Add(saveTask)

	return cfg, nil
}

func pickTemplate(templatesDir string, asker prompt.Asker) (templates.Template, error) {
	if templateName != "" {
		return templates.ByName(templatesDir, templateName)
	}

	all, err := templates.List(templatesDir)
	if err != nil {
		return templates.Template{}, err
	}
	names := make([]string, len(all))
	for i, tpl := range all {
		names[i] = tpl.Name
	}
	chosen, err := asker.Select("Which template should the project start from?", names)
	if err != nil {
		return templates.Template{}, err
	}
	for _, tpl := range all {
		if tpl.Name == chosen {
			return tpl, nil
		}
	}
	return templates.Template{}, fmt.Errorf("template %q disappeared during selection", chosen)
}

// collectTokens gathers the substitution values the template asks for. The
// project_name token is always present; contract_name defaults to "flipper"
// and doubles as the initial contract entry in the project descriptor.
func collectTokens(projectName string, tpl templates.Template, asker prompt.Asker) (map[string]string, string, error) {
	tokens := map[string]string{
		"project_name": projectName,
	}

	contractName, err := asker.Text("What should the initial contract be called?", "flipper")
	if err != nil {
		return nil, "", err
	}
	if err := validate.ProjectName(contractName); err != nil {
		return nil, "", err
	}
	tokens["contract_name"] = contractName

	for _, token := range tpl.Tokens {
		if _, exists := tokens[token.Name]; exists {
			continue
		}
		question := token.Question
		if question == "" {
			question = "Value for " + token.Name + "?"
		}
		answer, err := asker.Text(question, token.Default)
		if err != nil {
			return nil, "", err
		}
		tokens[token.Name] = answer
	}

	return tokens, contractName, nil
}

func npmInstall(projectDir string) error {
	cmd := exec.Command("npm", "install")
	cmd.Dir = projectDir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("npm install error: %v\n%s", err, string(output))
	}
	ui.Debug.Println("npm install output:\n" + string(output))
	return nil
}

func printProjectSummary(projectName string, cfg *config.Config) {
	fmt.Println()

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
	fmt.Println()
}

func init() {
	initCmd.Flags().StringVar(&convertPath, "convert", "", "Convert the existing contract project at the given path")
	initCmd.Flags().StringVarP(&templateName, "template", "t", "", "Template to scaffold from (skips the template prompt)")
	initCmd.Flags().StringVar(&nodeVersion, "node-version", "", "swanky-node release to download (defaults to the latest supported)")
	initCmd.Flags().BoolVar(&skipInstall, "no-install", false, "Skip installing project dependencies")
	initCmd.Flags().BoolVar(&skipNode, "no-node", false, "Skip downloading the local swanky-node binary")
	rootCmd.AddCommand(initCmd)
}

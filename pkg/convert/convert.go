// Package convert turns an existing contract codebase into a managed swanky
// workspace: it discovers candidate sources, resolves their module names,
// lets the user confirm what to import, and plans the copy and manifest
// merge work onto a task queue.
package convert

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prxgr4mm3r/swanky-cli/pkg/clierr"
	"github.com/prxgr4mm3r/swanky-cli/pkg/config"
	"github.com/prxgr4mm3r/swanky-cli/pkg/discover"
	"github.com/prxgr4mm3r/swanky-cli/pkg/manifest"
	"github.com/prxgr4mm3r/swanky-cli/pkg/prompt"
	"github.com/prxgr4mm3r/swanky-cli/pkg/taskqueue"
)

// Default glob sets checked against the source project root. Patterns expand
// one level only; a project keeping contracts elsewhere simply yields an
// empty group for the user to see.
var (
	ContractGlobs = []string{"contracts/*", "contract/*"}
	CrateGlobs    = []string{"crates/*", "libs/*"}
	TestGlobs     = []string{"tests/*", "test/*"}
)

// Options configures a conversion run.
type Options struct {
	// SourceDir is the existing project to import from.
	SourceDir string
	// DestDir is the new project directory; the caller has already verified
	// it exists and is empty.
	DestDir string
	// Installer runs the external dependency install inside DestDir. When
	// set it is enqueued as a non-fatal task: a failed install still leaves
	// a usable scaffold behind.
	Installer func(projectDir string) error
}

// Plan runs discovery, resolution and confirmation against opts.SourceDir,
// then enqueues the copy, manifest merge and descriptor write work onto
// queue. The returned config is the descriptor the final task will persist.
func Plan(opts Options, asker prompt.Asker, queue *taskqueue.Queue) (*config.Config, error) {
	if err := validateSource(opts.SourceDir); err != nil {
		return nil, err
	}

	set, err := discoverCandidates(opts.SourceDir)
	if err != nil {
		return nil, err
	}

	set, err = discover.ResolveModuleNames(set)
	if err != nil {
		return nil, err
	}

	set, err = ConfirmCandidates(asker, set)
	if err != nil {
		return nil, err
	}

	if len(set.Contracts) == 0 {
		return nil, clierr.NewInput("no contracts selected, nothing to convert")
	}

	cfg := config.New()
	for _, entry := range set.Contracts {
		cfg = cfg.WithContract(entry.Name, entry.ModuleName)
	}

	confirmed := set
	srcDir := opts.SourceDir
	destDir := opts.DestDir

	copyTask := taskqueue.NewTask(func() (string, error) {
		return "", Materialize(confirmed, destDir)
	}, "Copying project files")
	copyTask.SuccessMsg = "Project files copied"
	copyTask.FailMsg = "Failed to copy project files"
	queue.Add(copyTask)

	wsTask := taskqueue.NewTask(func() (string, error) {
		src := filepath.Join(srcDir, "Cargo.toml")
		dst := filepath.Join(destDir, "Cargo.toml")
		return "", manifest.MergeWorkspace(src, dst)
	}, "Merging workspace manifest")
	wsTask.SuccessMsg = "Workspace manifest written"
	wsTask.FailMsg = "Failed to merge workspace manifest"
	queue.Add(wsTask)

	srcPkg := filepath.Join(srcDir, "package.json")
	dstPkg := filepath.Join(destDir, "package.json")
	if fileExists(srcPkg) {
		// The destination is checked at run time, after earlier tasks have
		// had their chance to lay files down: an existing package.json is
		// merged (source wins), otherwise the source one is carried over.
		pkgTask := taskqueue.NewTask(func() (string, error) {
			if fileExists(dstPkg) {
				return "", manifest.MergePackageJSON(dstPkg, srcPkg)
			}
			return "", copyFile(srcPkg, dstPkg)
		}, "Merging package.json")
		pkgTask.SuccessMsg = "package.json merged"
		pkgTask.FailMsg = "Failed to merge package.json"
		queue.Add(pkgTask)
	}

	if opts.Installer != nil {
		installer := opts.Installer
		installTask := taskqueue.NewTask(func() (string, error) {
			return "", installer(destDir)
		}, "Installing dependencies")
		installTask.SuccessMsg = "Dependencies installed"
		installTask.FailMsg = "Dependency install failed, run it manually later"
		installTask.FatalOnError = false
		queue.Add(installTask)
	}

	saveTask := taskqueue.NewTask(func() (string, error) {
		return "", cfg.Save(destDir)
	}, "Writing "+config.DefaultConfigFile)
	saveTask.SuccessMsg = config.DefaultConfigFile + " written"
	saveTask.FailMsg = "Failed to write " + config.DefaultConfigFile
	queue.Add(saveTask)

	return cfg, nil
}

// discoverCandidates expands the default glob sets into the three candidate
// groups, de-duplicated by absolute path within each group.
func discoverCandidates(sourceDir string) (discover.CandidateSet, error) {
	contracts, err := discover.Discover(sourceDir, ContractGlobs)
	if err != nil {
		return discover.CandidateSet{}, err
	}
	crates, err := discover.Discover(sourceDir, CrateGlobs)
	if err != nil {
		return discover.CandidateSet{}, err
	}
	tests, err := discover.Discover(sourceDir, TestGlobs)
	if err != nil {
		return discover.CandidateSet{}, err
	}
	return discover.CandidateSet{
		Contracts: discover.Deduplicate(contracts),
		Crates:    discover.Deduplicate(crates),
		Tests:     discover.Deduplicate(tests),
	}, nil
}

func validateSource(dir string) error {
	if dir == "" {
		return clierr.NewInput("source project path must not be empty")
	}
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return clierr.NewInput("source project path %s does not exist", dir)
		}
		return fmt.Errorf("failed to stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return clierr.NewInput("source project path %s is not a directory", dir)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

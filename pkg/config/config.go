package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/prxgr4mm3r/swanky-cli/pkg/clierr"
)

// NodeSettings describes the local swanky-node binary and the versions it supports.
type NodeSettings struct {
	LocalPath              string `json:"localPath"`
	PolkadotPalletVersions string `json:"polkadotPalletVersions"`
	SupportedInk           string `json:"supportedInk"`
}

// Account is a development account known to the project.
type Account struct {
	Alias    string `json:"alias"`
	Mnemonic string `json:"mnemonic"`
	Address  string `json:"address"`
	IsDev    bool   `json:"isDev"`
}

// Network is a named chain endpoint.
type Network struct {
	URL string `json:"url"`
}

// Deployment records a single on-chain deployment of a contract.
type Deployment struct {
	Timestamp     int64  `json:"timestamp"`
	NetworkID     string `json:"networkId"`
	DeployerAlias string `json:"deployerAlias"`
	Address       string `json:"address"`
}

// Contract is one managed contract in the workspace.
type Contract struct {
	Name        string       `json:"name"`
	ModuleName  string       `json:"moduleName"`
	Deployments []Deployment `json:"deployments"`
}

// Config represents the structure of a swanky.config.json project descriptor.
type Config struct {
	Node      NodeSettings        `json:"node"`
	Accounts  []Account           `json:"accounts"`
	Networks  map[string]Network  `json:"networks"`
	Contracts map[string]Contract `json:"contracts"`
}

// DefaultConfigFile is the project descriptor file name.
const DefaultConfigFile = "swanky.config.json"

// DefaultLocalNetworkURL is the endpoint of a locally running swanky-node.
const DefaultLocalNetworkURL = "ws://127.0.0.1:9944"

// DefaultSupportedInk is the ink! version new projects are scaffolded against.
const DefaultSupportedInk = "v4.2.0"

// DefaultPalletVersions is the polkadot release the bundled node pallets track.
const DefaultPalletVersions = "polkadot-v0.9.39"

// DevAccounts are the well-known development accounts seeded into every new project.
var DevAccounts = []Account{
	{Alias: "alice", Mnemonic: "//Alice", Address: "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY", IsDev: true},
	{Alias: "bob", Mnemonic: "//Bob", Address: "5FHneW46xGXgs5mUiveU4sbTyGBzmstUspZC92UhjJM694ty", IsDev: true},
}

// New returns a config pre-populated with the defaults every fresh project starts from.
func New() *Config {
	return &Config{
		Node: NodeSettings{
			PolkadotPalletVersions: DefaultPalletVersions,
			SupportedInk:           DefaultSupportedInk,
		},
		Accounts: append([]Account(nil), DevAccounts...),
		Networks: map[string]Network{
			"local": {URL: DefaultLocalNetworkURL},
		},
		Contracts: map[string]Contract{},
	}
}

// Load reads and parses the project descriptor inside projectDir.
func Load(projectDir string) (*Config, error) {
	path := filepath.Join(projectDir, DefaultConfigFile)
	data, err := os.ReadFile(filepath.Clean(path)) // #nosec G304 -- descriptor path is workspace-local
	if err != nil {
		if os.IsNotExist(err) {
			return nil, clierr.NewConfig("no %s found in %s: not a swanky project", DefaultConfigFile, projectDir)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.Networks == nil {
		cfg.Networks = map[string]Network{}
	}
	if cfg.Contracts == nil {
		cfg.Contracts = map[string]Contract{}
	}
	return cfg, nil
}

// Save writes the descriptor to projectDir/swanky.config.json, replacing any previous file.
func (c *Config) Save(projectDir string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode project descriptor: %w", err)
	}
	path := filepath.Join(projectDir, DefaultConfigFile)
	if err := os.WriteFile(path, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WithNodePath returns a copy of the config with the local node binary path set.
// Used as a task callback target after the node download resolves its final location.
func (c *Config) WithNodePath(path string) *Config {
	out := c.clone()
	out.Node.LocalPath = path
	return out
}

// WithContract returns a copy of the config with the given contract recorded.
// Contract entries are keyed by name; re-adding a name replaces the entry.
func (c *Config) WithContract(name, moduleName string) *Config {
	out := c.clone()
	out.Contracts[name] = Contract{Name: name, ModuleName: moduleName, Deployments: []Deployment{}}
	return out
}

// ContractByName returns the named contract entry or a ConfigError if absent.
func (c *Config) ContractByName(name string) (Contract, error) {
	ct, ok := c.Contracts[name]
	if !ok {
		return Contract{}, clierr.NewConfig("contract %q not found in %s", name, DefaultConfigFile)
	}
	return ct, nil
}

func (c *Config) clone() *Config {
	out := &Config{
		Node:      c.Node,
		Accounts:  append([]Account(nil), c.Accounts...),
		Networks:  make(map[string]Network, len(c.Networks)),
		Contracts: make(map[string]Contract, len(c.Contracts)),
	}
	for k, v := range c.Networks {
		out.Networks[k] = v
	}
	for k, v := range c.Contracts {
		out.Contracts[k] = v
	}
	return out
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-maze/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default or resolved config",
	Long: `Print the built-in default configuration as YAML. The output is a
starting point for ~/.maze/configs/maze.yaml or ./configs/maze.yaml.

With --resolved, print the configuration 'maze generate' would load
from --config or the search path instead.

Examples:
  maze config > ~/.maze/configs/maze.yaml
  maze config --resolved --config ./my-maze.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the loaded config instead of the defaults")
}

func runConfig(cmd *cobra.Command, args []string) {
	if !flagResolved {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	cfg, _, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	out, err := marshalConfig(cfg)
	if err != nil {
		fail("%v", err)
	}
	fmt.Print(out)
}

func marshalConfig(cfg config.MazeConfig) (string, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return string(data), nil
}

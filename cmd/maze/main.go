// maze generates perfect mazes in the terminal by growing a spanning tree
// over a randomly weighted grid.
//
// Usage:
//
//	maze list                  - List available growth strategies
//	maze generate              - Generate and print a maze
//	maze inspect <x> <y>       - Show a cell's class and edge weights
//	maze config                - Print the default or resolved config
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible mazes
//	--config <path>      - Use a custom config YAML
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/config"

	// Import growth strategies to register them
	_ "github.com/vovakirdan/tui-maze/internal/growth"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Maze - Generate perfect mazes in your terminal",
	Long: `Maze builds a grid graph with random edge weights and grows a
spanning tree over it. The tree's edges become the corridors of a
maze in which every cell is reachable by exactly one path.

Available commands:
  list      - Show all growth strategies
  generate  - Generate and print a maze
  inspect   - Show a cell's class and edge weights
  config    - Print the default or resolved config

Examples:
  maze list
  maze generate --size large
  maze generate --width 20 --height 8 --strategy walk --seed 42
  maze inspect 0 0 --width 5 --height 5
  maze config > ~/.maze/configs/maze.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (default: config seed, where 0 means random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the CLI logger. Unknown levels fall back to info.
func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "maze",
	})
	if level == "" {
		level = "info"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", level)
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// loadConfig loads the YAML config and builds the logger it configures.
// The --log-level flag wins over the config file.
func loadConfig() (config.MazeConfig, *log.Logger, error) {
	cfg, err := config.LoadMaze(flagConfig)
	level := cfg.Log.Level
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	return cfg, newLogger(level), err
}

// resolveSeed picks the --seed flag when it was given (0 included), then a
// non-zero config seed, then a time based one.
func resolveSeed(cmd *cobra.Command, configured int64) int64 {
	return pickSeed(flagSeed, cmd.Flags().Changed("seed"), configured)
}

func pickSeed(flag int64, flagSet bool, configured int64) int64 {
	switch {
	case flagSet:
		return flag
	case configured != 0:
		return configured
	default:
		return time.Now().UnixNano()
	}
}

// fail prints an error the way every subcommand reports it and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

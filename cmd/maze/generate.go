package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-maze/internal/board"
	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/spanning"
)

var (
	flagWidth    int
	flagHeight   int
	flagSize     string
	flagStrategy string
	flagStart    string
	flagNoColor  bool
	flagInfo     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate and print a maze",
	Long: `Generate a maze and print it to stdout.

Walls are drawn as '#', corridors as spaces and the starting cell as 'S'.
Output is coloured when stdout is a terminal, unless --no-color is set
or render.color is false in the config.

Size options:
  small   - 8x6 cells
  medium  - 16x10 cells
  large   - 32x16 cells

--width and --height override the preset. --info adds a line with the
strategy, size, seed and start cell, enough to generate the maze again.

Examples:
  maze generate
  maze generate --size large
  maze generate --width 30 --height 12 --strategy walk
  maze generate --start 0,0 --seed 42 --no-color > maze.txt`,
	Args: cobra.NoArgs,
	Run:  runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&flagWidth, "width", 0, "Grid width in cells (default from config)")
	generateCmd.Flags().IntVar(&flagHeight, "height", 0, "Grid height in cells (default from config)")
	generateCmd.Flags().StringVar(&flagSize, "size", "", "Size preset: small, medium, large")
	generateCmd.Flags().StringVar(&flagStrategy, "strategy", "", "Growth strategy ID (see 'maze list')")
	generateCmd.Flags().StringVar(&flagStart, "start", "", "Starting cell as x,y (default random)")
	generateCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable coloured output")
	generateCmd.Flags().BoolVar(&flagInfo, "info", false, "Print strategy, size, seed and start below the maze")
}

func runGenerate(cmd *cobra.Command, args []string) {
	cfg, logger, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	if err := applyGenerateFlags(&cfg, cmd); err != nil {
		fail("%v", err)
	}
	if err := cfg.Validate(); err != nil {
		fail("%v", err)
	}
	if !registry.Exists(cfg.Strategy) {
		fmt.Fprintf(os.Stderr, "Error: unknown strategy %q\n", cfg.Strategy)
		fmt.Fprintln(os.Stderr, "Run 'maze list' to see available strategies.")
		os.Exit(1)
	}

	rc := core.RuntimeConfig{
		Width:    cfg.Grid.Width,
		Height:   cfg.Grid.Height,
		Seed:     resolveSeed(cmd, cfg.Seed),
		Strategy: cfg.Strategy,
	}
	logger.Debug("generating maze",
		"width", rc.Width,
		"height", rc.Height,
		"strategy", rc.Strategy,
		"seed", rc.Seed,
	)

	chooser, err := startChooser(cfg.Grid.Start, rc.Seed)
	if err != nil {
		fail("%v", err)
	}

	game, err := maze.NewGame(rc.Width, rc.Height, chooser,
		maze.WithTree(spanning.New(spanning.WithSeed(rc.Seed))),
		maze.WithStrategy(rc.Strategy),
		maze.WithLogger(logger),
	)
	if err != nil {
		fail("%v", err)
	}

	m, err := game.CreateMaze()
	if err != nil {
		fail("%v", err)
	}

	fd := int(os.Stdout.Fd())
	isTerm := term.IsTerminal(fd)
	if isTerm {
		renderW, _ := maze.RenderSize(rc.Width, rc.Height)
		if termW, _, sizeErr := term.GetSize(fd); sizeErr == nil && renderW > termW {
			logger.Warn("maze is wider than the terminal", "maze_width", renderW, "terminal_width", termW)
		}
	}

	caption := ""
	if flagInfo {
		caption = mazeCaption(rc, m)
	}
	if useColor(cfg.Render.Color, flagNoColor, isTerm) {
		fmt.Println(m.Styled(maze.ThemeFromColors(cfg.Render.WallColor, cfg.Render.StartColor), caption))
		return
	}
	fmt.Println(m.Text(caption))
}

// mazeCaption describes a generated maze in terms of the flags that rebuild it.
func mazeCaption(rc core.RuntimeConfig, m *maze.Maze) string {
	caption := fmt.Sprintf("%s %dx%d seed=%d", rc.Strategy, rc.Width, rc.Height, rc.Seed)
	if start, ok := m.Start(); ok {
		caption += fmt.Sprintf(" start=%d,%d", start.X, start.Y)
	}
	return caption
}

// applyGenerateFlags layers the command line over the loaded config:
// size preset first, then explicit dimensions, strategy and start.
func applyGenerateFlags(cfg *config.MazeConfig, cmd *cobra.Command) error {
	if flagSize != "" {
		if err := config.ApplySizePreset(cfg, config.SizePreset(flagSize)); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("width") {
		cfg.Grid.Width = flagWidth
	}
	if cmd.Flags().Changed("height") {
		cfg.Grid.Height = flagHeight
	}
	if flagStrategy != "" {
		cfg.Strategy = flagStrategy
	}
	if flagStart != "" {
		cfg.Grid.Start = flagStart
	}
	return nil
}

// startChooser returns a fixed chooser for an "x,y" start, or a random one
// seeded like the weights so a seed reproduces the whole maze.
func startChooser(start string, seed int64) (board.Chooser, error) {
	if start == "" {
		return board.NewRandomChooser(rand.New(rand.NewSource(seed))), nil
	}
	p, err := config.ParsePoint(start)
	if err != nil {
		return nil, err
	}
	return board.FixedChooser(p), nil
}

func useColor(configured, disabled, isTerminal bool) bool {
	return configured && !disabled && isTerminal
}

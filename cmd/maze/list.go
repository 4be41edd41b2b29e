package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all growth strategies",
	Long: `Shows the maze growth strategies registered in the generator.
The strategy 'maze generate' uses when --strategy is not given is marked with '*'.`,
	Run: runList,
}

func runList(cmd *cobra.Command, args []string) {
	cfg, _, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	fmt.Print(formatStrategies(registry.List(), cfg.Strategy))
}

// formatStrategies renders the strategy table, marking defaultID.
func formatStrategies(strategies []registry.StrategyInfo, defaultID string) string {
	if len(strategies) == 0 {
		return "No strategies available.\n"
	}

	var sb strings.Builder
	sb.WriteString("Available strategies:\n\n")

	idWidth := len("ID")
	for _, s := range strategies {
		idWidth = max(idWidth, len(s.ID))
	}

	fmt.Fprintf(&sb, "    %-*s  %s\n", idWidth, "ID", "Title")
	fmt.Fprintf(&sb, "    %-*s  %s\n", idWidth, "--", "-----")
	for _, s := range strategies {
		marker := " "
		if s.ID == defaultID {
			marker = "*"
		}
		fmt.Fprintf(&sb, "  %s %-*s  %s\n", marker, idWidth, s.ID, s.Title)
	}

	sb.WriteString("\n* default (set 'strategy' in the config to change it)\n")
	sb.WriteString("Run 'maze generate --strategy <id>' to use another one.\n")
	return sb.String()
}

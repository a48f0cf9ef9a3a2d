// vecgeom is a vector geometry toolkit for the terminal: an expression
// evaluator, a scene probe checker and interactive simulations built on the
// vector and intersect packages.
//
// Usage:
//
//	vecgeom eval <expr>        - Evaluate a vector expression
//	vecgeom check              - Run the probes of a scene
//	vecgeom list               - List available simulations
//	vecgeom run <sim>          - Run a simulation
//	vecgeom menu               - Pick simulations interactively
//	vecgeom serve              - Serve the menu over SSH
//	vecgeom history [sim]      - Show recorded runs and expressions
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--db <path>         - Set database path (default: ~/.vecgeom/history.db)
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import simulations to register them
	_ "github.com/vovakirdan/vecgeom/internal/sims/bounce"
	_ "github.com/vovakirdan/vecgeom/internal/sims/orbit"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagLogLevel string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vecgeom",
	Short: "Vector geometry toolkit for the terminal",
	Long: `vecgeom evaluates vector expressions, checks segment and circle
intersections in YAML scenes, and runs small simulations built on the same
vector kernel.

Available commands:
  eval     - Evaluate a vector expression
  check    - Run every probe of a scene
  list     - Show all available simulations
  run      - Run a specific simulation directly
  menu     - Interactive simulation picker
  serve    - Start SSH server for remote sessions
  history  - View recorded runs and saved expressions

Examples:
  vecgeom eval "(3, 4) + (1, 1)"
  vecgeom check --scene ./lab.yaml
  vecgeom run bounce --speed fast
  vecgeom menu
  vecgeom serve --ssh :2222`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		l, err := newLogger(flagLogLevel)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.vecgeom/history.db", "Path to history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}

// newLogger builds the root logger for the given level name.
func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "vecgeom",
		Level:           lvl,
	}), nil
}

package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/vecgeom/internal/registry"
	"github.com/vovakirdan/vecgeom/internal/storage"
)

var (
	flagHistoryLimit int
	flagClear        bool
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

var historyCmd = &cobra.Command{
	Use:   "history [sim]",
	Short: "Show recorded runs and saved expressions",
	Long: `Without arguments, show the most recent runs of every simulation and
the most recently saved expressions. With a simulation ID, show that
simulation's best runs and statistics.

Examples:
  vecgeom history
  vecgeom history bounce
  vecgeom history bounce --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 10, "Number of entries to show")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded runs of the given simulation")
}

func runHistory(_ *cobra.Command, args []string) {
	if flagClear && len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: --clear needs a simulation ID")
		os.Exit(1)
	}
	if len(args) == 1 && !registry.Exists(args[0]) {
		fmt.Fprintf(os.Stderr, "Error: unknown simulation %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'vecgeom list' to see available simulations.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		err = printRecent(store)
	} else if flagClear {
		err = store.ClearRuns(args[0])
		if err == nil {
			fmt.Printf("Cleared runs for %s.\n", args[0])
		}
	} else {
		err = printSim(store, args[0])
	}

	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printSim prints the best runs and aggregate stats of one simulation.
func printSim(store *storage.Store, simID string) error {
	runs, err := store.TopRuns(simID, flagHistoryLimit)
	if err != nil {
		return err
	}

	fmt.Println(headingStyle.Render("Best runs - " + simID))
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'vecgeom run %s' to record one.\n", simID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "Rank", "Events", "Ticks", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "----", "------", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-8d  %s\n", i+1, r.Events, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.SimStats(simID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(mutedStyle.Render(fmt.Sprintf("%d runs, best %d, average %.1f, %d ticks total",
		stats.RunsCount, stats.BestEvents, stats.AvgEvents, stats.TotalTicks)))
	return nil
}

// printRecent prints the latest runs and saved expressions.
func printRecent(store *storage.Store) error {
	runs, err := store.RecentRuns(flagHistoryLimit)
	if err != nil {
		return err
	}

	fmt.Println(headingStyle.Render("Recent runs"))
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
	} else {
		fmt.Printf("  %-10s  %-8s  %-8s  %s\n", "Sim", "Events", "Ticks", "Date")
		fmt.Printf("  %-10s  %-8s  %-8s  %s\n", "---", "------", "-----", "----")
		for _, r := range runs {
			fmt.Printf("  %-10s  %-8d  %-8d  %s\n", r.SimID, r.Events, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	evals, err := store.RecentEvals(flagHistoryLimit)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(headingStyle.Render("Saved expressions"))
	fmt.Println()
	if len(evals) == 0 {
		fmt.Println("No expressions saved yet.")
		return nil
	}
	for _, e := range evals {
		fmt.Printf("  %s %s %s\n", e.Expr, mutedStyle.Render("=>"), e.Result)
	}
	return nil
}

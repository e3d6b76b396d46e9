package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/philipparndt/lebna/internal/console"
	"github.com/philipparndt/lebna/pkg/watcher"
	"github.com/spf13/cobra"
)

var (
	totalWatch    bool
	totalDebounce time.Duration
)

var totalCmd = &cobra.Command{
	Use:   "total <file>",
	Short: "Sum the areas of the triangles listed in a file",
	Long: `Read one triangle per line (three side lengths separated by spaces or
commas, # starts a comment), add every area to a running total and print it.
With --watch the file is re-read whenever it changes.`,
	Args: cobra.ExactArgs(1),
	Run:  runTotal,
}

func init() {
	rootCmd.AddCommand(totalCmd)

	totalCmd.Flags().BoolVarP(&totalWatch, "watch", "w", false, "Recompute when the file changes")
	totalCmd.Flags().DurationVar(&totalDebounce, "debounce", 200*time.Millisecond, "Delay before recomputing after a change")
}

func runTotal(cmd *cobra.Command, args []string) {
	filename := args[0]

	if err := printTotals(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !totalWatch {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fw, err := watcher.NewFileWatcher(totalDebounce, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer fw.Close()

	err = fw.Watch([]string{filename}, func(path string) {
		fmt.Println()
		if err := printTotals(path); err != nil {
			logger.Error("failed to recompute totals", "file", path, "err", err)
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fw.Start(ctx)
	logger.Info("watching for changes", "file", filename)
	<-fw.Done()
}

func printTotals(filename string) error {
	report, err := console.TotalsFile(filename)
	if err != nil {
		return err
	}
	console.WriteReport(os.Stdout, report)
	return nil
}

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/croft/pkg/grading"
)

var watchPattern string

var gradingCmd = &cobra.Command{
	Use:   "grading",
	Short: "Import student scores and render report cards",
}

var gradingImportCmd = &cobra.Command{
	Use:   "import [glob]",
	Short: "Import score files and print the report",
	Long: `Reads every file matching the glob (doublestar patterns like
scores/**/*.csv work). Lines are "id, full name, score"; malformed lines
are skipped with a diagnostic and the import continues.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		book := grading.NewGradebook(slog.Default())

		accepted, skipped, err := book.ImportGlob(args[0])
		if err != nil {
			fatal("import aborted", err)
		}

		for _, diag := range skipped {
			fmt.Fprintf(os.Stderr, "skipped: %v\n", diag)
		}
		for _, line := range book.Report() {
			fmt.Println(line)
		}
		fmt.Fprintf(os.Stderr, "%d accepted, %d skipped\n", accepted, len(skipped))
	},
}

var gradingWatchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Re-import and re-print the report whenever score files change",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		books, err := grading.Watch(ctx, args[0], watchPattern, slog.Default())
		if err != nil {
			fatal("failed to start watcher", err)
		}

		fmt.Fprintf(os.Stderr, "watching %s for %s (ctrl-c to stop)\n", args[0], watchPattern)
		for book := range books {
			for _, line := range book.Report() {
				fmt.Println(line)
			}
			fmt.Fprintln(os.Stderr, "---")
		}
	},
}

func init() {
	rootCmd.AddCommand(gradingCmd)
	gradingCmd.AddCommand(gradingImportCmd)
	gradingCmd.AddCommand(gradingWatchCmd)
	gradingWatchCmd.Flags().StringVar(&watchPattern, "pattern", "*.csv", "Doublestar pattern for score files, relative to dir")
}

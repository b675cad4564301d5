// Package cmd implements the command-line surface: a single root command
// that tokenizes one source file.
package cmd

import (
	"log"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Cetin-Furkan/NSET-Neural-Symbolic-Entropy-Tokenizer/logutil"
)

// NewCLI builds the root cobra command.
func NewCLI() *cobra.Command {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	rootCmd := &cobra.Command{
		Use:   "nset <source-file>",
		Short: "Tokenize source code into fixed-width atomic tokens",
		Args:  cobra.ExactArgs(1),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SilenceUsage = true
			setupLogging(cmd)
		},
		RunE: runTokenize,
	}

	rootCmd.Flags().String("registry", "nset_vocab.bin", "path to the persistent vocabulary log")
	rootCmd.Flags().String("config", "", "path to an optional nset.json config file")
	rootCmd.Flags().Bool("dump-table", false, "print the emitted token stream as a table")
	rootCmd.Flags().String("export-cbor", "", "additionally write the token stream as CBOR to this path")
	rootCmd.Flags().Bool("verbose", false, "raise log verbosity to trace, print running registry stats")

	cobra.EnableCommandSorting = false

	return rootCmd
}

func setupLogging(cmd *cobra.Command) {
	verbose, _ := cmd.Flags().GetBool("verbose")

	level := slog.LevelInfo
	if verbose {
		level = logutil.LevelTrace
	}

	logger := logutil.NewLogger(os.Stderr, level)
	slog.SetDefault(logger.With("run_id", uuid.NewString()))
}


package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/containerd/console"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Cetin-Furkan/NSET-Neural-Symbolic-Entropy-Tokenizer/internal/config"
	"github.com/Cetin-Furkan/NSET-Neural-Symbolic-Entropy-Tokenizer/internal/export"
	"github.com/Cetin-Furkan/NSET-Neural-Symbolic-Entropy-Tokenizer/internal/parsetree"
	"github.com/Cetin-Furkan/NSET-Neural-Symbolic-Entropy-Tokenizer/internal/token"
	"github.com/Cetin-Furkan/NSET-Neural-Symbolic-Entropy-Tokenizer/internal/tokenizer"
	"github.com/Cetin-Furkan/NSET-Neural-Symbolic-Entropy-Tokenizer/logutil"
)

func runTokenize(cmd *cobra.Command, args []string) error {
	sourcePath := args[0]

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if registryPath, _ := cmd.Flags().GetString("registry"); cmd.Flags().Changed("registry") {
		cfg.RegistryPath = registryPath
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	dumpTable, _ := cmd.Flags().GetBool("dump-table")
	exportCBORPath, _ := cmd.Flags().GetString("export-cbor")

	green := color.New(color.FgGreen).SprintFunc()
	if _, err := os.Stat(cfg.RegistryPath); err == nil {
		fmt.Fprintf(os.Stdout, "%s\n", green(">> Loading existing vocabulary into RAM..."))
	}

	tz, err := tokenizer.New(tokenizer.Options{
		RegistryPath:     cfg.RegistryPath,
		ExtraLockedWords: cfg.ExtraLockedWords,
		EntropyThreshold: cfg.EntropyThreshold,
		BlobLengthGuard:  cfg.BlobLengthGuard,
		OnRegistryError: func(err error) {
			slog.Warn("registry write failed", "error", err)
		},
	})
	if err != nil {
		return fmt.Errorf("nset: %w", err)
	}
	defer tz.Close()

	arena, err := tz.TokenizeFile(sourcePath, parsetree.CLanguage())
	if err != nil {
		return fmt.Errorf("nset: %w", err)
	}

	if dumpTable {
		dumpTokenTable(arena, sourcePath)
	}

	if exportCBORPath != "" {
		f, err := os.Create(exportCBORPath)
		if err != nil {
			return fmt.Errorf("nset: %w", err)
		}
		defer f.Close()
		if err := export.WriteCBOR(f, arena); err != nil {
			return fmt.Errorf("nset: %w", err)
		}
	}

	fmt.Fprintf(os.Stdout, "%s\n", green(">> Tokenization Complete."))
	fmt.Fprintf(os.Stdout, "%d tokens emitted, %d dropped for capacity\n", arena.Len(), arena.Dropped())

	if verbose {
		hits, misses := tz.Stats()
		slog.Info("registry stats", "hits", hits, "misses", misses)
		logutil.Trace("tokenization finished", "tokens", arena.Len())
	}

	return nil
}

// dumpTokenTable prints the emitted stream with tablewriter. It reads the
// terminal width via containerd/console when one is attached (80 columns
// otherwise) and only uses it to turn cell auto-wrapping on when the width
// exceeds 40; column widths are not sized to the terminal.
func dumpTokenTable(arena *token.Arena, sourcePath string) {
	width := 80
	if cur, err := console.ConsoleFromFile(os.Stdout); err == nil {
		if sz, err := cur.Size(); err == nil && sz.Width > 0 {
			width = int(sz.Width)
		}
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "text", "type", "casing", "depth", "flags"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(width > 40)

	src, err := os.ReadFile(sourcePath)
	if err != nil {
		return
	}

	for i, t := range arena.Tokens() {
		table.Append([]string{
			fmt.Sprintf("%d", i),
			string(t.Text(src)),
			t.Type.String(),
			t.Casing.String(),
			fmt.Sprintf("%d", t.Depth),
			flagSummary(t),
		})
	}
	table.Render()
}

func flagSummary(t token.Token) string {
	var flags string
	add := func(set bool, name string) {
		if set {
			if flags != "" {
				flags += ","
			}
			flags += name
		}
	}
	add(t.PreSpace, "space")
	add(t.PreBreak, "break")
	add(t.HasJoiner, "joiner")
	add(t.HasSemi, "semi")
	add(t.HasComma, "comma")
	add(t.HasParen, "paren")
	add(t.HasStar, "star")
	add(t.HasClose, "close")
	return flags
}

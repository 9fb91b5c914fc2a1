package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tillbook-dev/tillbook/internal/importer"
	"github.com/tillbook-dev/tillbook/internal/store"
)

func newImportCommand(log zerolog.Logger) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "import <format> [file...]",
		Short: "Import source records from CSV files",
		Long: `Import parses CSV files into the store. Formats: vouchers, sales, purchases.
With no files, every CSV in <dir>/import/ is imported and moved to import/processed/.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runImport(cmd.Context(), absDir, args[0], args[1:], log)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")

	return cmd
}

func runImport(ctx context.Context, dir, format string, files []string, log zerolog.Logger) error {
	parser := importer.DefaultRegistry().Get(format)
	if parser == nil {
		return fmt.Errorf("unknown import format %q", format)
	}

	_, ts, err := openProject(dir, log)
	if err != nil {
		return err
	}

	fromIntake := len(files) == 0
	if fromIntake {
		scanned, err := importer.Scan(dir)
		if err != nil {
			return err
		}
		for _, f := range scanned {
			files = append(files, f.Path)
		}
		if len(files) == 0 {
			fmt.Println("Nothing to import.")
			return nil
		}
	}

	for _, path := range files {
		count, err := importFile(ctx, ts, parser, path)
		if err != nil {
			return fmt.Errorf("importing %s: %w", path, err)
		}
		if fromIntake {
			if err := importer.MarkProcessed(dir, filepath.Base(path)); err != nil {
				return err
			}
		}
		log.Info().Str("file", path).Str("format", format).Int("records", count).Msg("imported")
		fmt.Printf("Imported %d %s record(s) from %s\n", count, format, path)
	}
	return nil
}

func importFile(ctx context.Context, ts *store.TenantStore, parser importer.Parser, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	recs, err := parser.Parse(f)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, v := range recs.Vouchers {
		if _, err := ts.AddVoucher(ctx, v); err != nil {
			return count, err
		}
		count++
	}
	for _, d := range recs.Sales {
		if err := ts.AddSale(ctx, d); err != nil {
			return count, err
		}
		count++
	}
	for _, d := range recs.Purchases {
		if err := ts.AddPurchase(ctx, d); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

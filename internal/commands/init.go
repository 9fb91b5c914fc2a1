package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tillbook-dev/tillbook/internal/config"
	"github.com/tillbook-dev/tillbook/internal/store"
)

func newInitCommand(log zerolog.Logger) *cobra.Command {
	var name string
	var tenant string
	var currency string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new tillbook project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.Context(), absDir, name, tenant, currency, log)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&tenant, "tenant", "", "tenant identifier (required)")
	_ = cmd.MarkFlagRequired("tenant")
	cmd.Flags().StringVar(&currency, "currency", "₹", "currency symbol used in exports")

	return cmd
}

func runInit(ctx context.Context, dir, name, tenant, currency string, log zerolog.Logger) error {
	dirs := []string{
		"import",
		filepath.Join("import", "processed"),
		"logs",
		"exports",
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default(name, tenant)
	cfg.Business.CurrencySymbol = currency
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Create the database and seed the starter catalog.
	s, err := store.Open(filepath.Join(dir, cfg.Store.Path), log)
	if err != nil {
		return err
	}
	ts := s.ForTenant(tenant)
	for _, a := range store.DefaultAccounts() {
		if err := ts.SaveAccount(ctx, a); err != nil {
			return err
		}
	}

	fmt.Printf("Initialized tillbook project at %s for %s\n", dir, name)
	return nil
}

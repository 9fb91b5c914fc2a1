// Package commands wires the tillbook CLI.
package commands

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tillbook-dev/tillbook/internal/buildinfo"
	"github.com/tillbook-dev/tillbook/internal/config"
	"github.com/tillbook-dev/tillbook/internal/store"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand(log zerolog.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "tillbook",
		Short:   "Cash and bank book reporting for small retail",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand(log))
	rootCmd.AddCommand(newAccountsCommand(log))
	rootCmd.AddCommand(newImportCommand(log))
	rootCmd.AddCommand(newReportCommand(log))

	return rootCmd
}

// openProject loads dir/tillbook.yaml and opens the tenant's store.
func openProject(dir string, log zerolog.Logger) (*config.Config, *store.TenantStore, error) {
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return nil, nil, err
	}

	dbPath := cfg.Store.Path
	if !filepath.IsAbs(dbPath) {
		dbPath = filepath.Join(dir, dbPath)
	}
	s, err := store.Open(dbPath, log)
	if err != nil {
		return nil, nil, err
	}
	return cfg, s.ForTenant(cfg.Business.Tenant), nil
}

package commands

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newAccountsCommand(log zerolog.Logger) *cobra.Command {
	var dir string
	var cashBankOnly bool

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List the account catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			_, ts, err := openProject(absDir, log)
			if err != nil {
				return err
			}

			accounts, err := ts.Accounts(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tLABEL\tCASH/BANK\tOPENING\tCHANNEL")
			for _, a := range accounts {
				if cashBankOnly && !a.CashBank {
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\t%v\t%s\t%s\n", a.Code, a.Label, a.CashBank, a.OpeningValue.StringFixed(2), a.Channel)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().BoolVar(&cashBankOnly, "cash-bank", false, "only accounts tracked by the cash/bank report")

	return cmd
}

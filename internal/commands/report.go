package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tillbook-dev/tillbook/internal/config"
	"github.com/tillbook-dev/tillbook/internal/export"
	"github.com/tillbook-dev/tillbook/internal/model"
	"github.com/tillbook-dev/tillbook/internal/report"
	"github.com/tillbook-dev/tillbook/internal/runlog"
)

const flagDateFormat = "2006-01-02"

func newReportCommand(log zerolog.Logger) *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Financial reports",
	}
	reportCmd.AddCommand(newCashBankCommand(log))
	reportCmd.AddCommand(newHistoryCommand())
	return reportCmd
}

func newCashBankCommand(log zerolog.Logger) *cobra.Command {
	var dir string
	var from, to string
	var accountsFlag []string
	var summary bool
	var out string

	cmd := &cobra.Command{
		Use:   "cashbank",
		Short: "Cash/bank ledger report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg, ts, err := openProject(absDir, log)
			if err != nil {
				return err
			}

			window, err := resolveWindow(cfg, from, to)
			if err != nil {
				return err
			}

			started := time.Now()
			composer := report.NewComposer(ts, log)
			rep, err := composer.Run(cmd.Context(), report.Params{
				Window:        window,
				AccountLabels: accountsFlag,
			})
			if err != nil {
				return err
			}

			run := runlog.NewRun(cfg.Business.Tenant, window.From, window.To, accountsFlag, time.Since(started))
			if len(rep.Errors) > 0 {
				run.Errors = make(map[string]string, len(rep.Errors))
				for label, err := range rep.Errors {
					run.Errors[label] = err.Error()
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: account %s failed: %v\n", label, err)
				}
			}
			if err := runlog.Append(absDir, run); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: failed to write run log: %v\n", err)
			}

			opts := export.Options{
				CurrencySymbol: cfg.Business.CurrencySymbol,
				Letterhead:     cfg.Business.Name,
			}
			if out != "" {
				return writeCSVFiles(out, rep, summary, opts)
			}
			if summary {
				printSummary(cmd, rep.Summary(), opts)
				return nil
			}
			printLedgers(cmd, rep, opts)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&from, "from", "", "window start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "window end (YYYY-MM-DD)")
	cmd.Flags().StringSliceVar(&accountsFlag, "accounts", nil, "account labels (default: all cash/bank accounts)")
	cmd.Flags().BoolVar(&summary, "summary", false, "opening/receipts/payments/closing only")
	cmd.Flags().StringVar(&out, "out", "", "write CSV files into this directory instead of printing")

	return cmd
}

func newHistoryCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past report runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			runs, err := runlog.Read(absDir)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "AT\tWINDOW\tACCOUNTS\tTOOK\tFAILED")
			for _, r := range runs {
				accounts := "all"
				if len(r.Accounts) > 0 {
					accounts = strings.Join(r.Accounts, ",")
				}
				fmt.Fprintf(tw, "%s\t%s..%s\t%s\t%dms\t%d\n",
					r.At.Format(time.RFC3339),
					r.From.Format(flagDateFormat), r.To.Format(flagDateFormat),
					accounts, r.DurationMS, len(r.Errors))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")

	return cmd
}

// resolveWindow parses --from/--to, defaulting to the configured trailing
// window ending today.
func resolveWindow(cfg *config.Config, from, to string) (report.Window, error) {
	today := model.DateOf(time.Now())

	end := today
	if to != "" {
		var err error
		end, err = time.Parse(flagDateFormat, to)
		if err != nil {
			return report.Window{}, fmt.Errorf("parsing --to %q: %w", to, err)
		}
	}

	days := cfg.Report.DefaultWindowDays
	if days <= 0 {
		days = 30
	}
	start := end.AddDate(0, 0, -(days - 1))
	if from != "" {
		var err error
		start, err = time.Parse(flagDateFormat, from)
		if err != nil {
			return report.Window{}, fmt.Errorf("parsing --from %q: %w", from, err)
		}
	}

	if start.After(end) {
		return report.Window{}, fmt.Errorf("window start %s is after end %s", start.Format(flagDateFormat), end.Format(flagDateFormat))
	}
	return report.Window{From: start, To: end}, nil
}

func printLedgers(cmd *cobra.Command, rep *report.Report, opts export.Options) {
	w := cmd.OutOrStdout()
	sum := rep.Summary()
	for _, a := range sum.Accounts {
		fmt.Fprintf(w, "\n%s — %s\n", opts.Letterhead, a.Label)
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "DATE\tVOUCHER\tPARTY\tNARRATION\tIN\tOUT\tBALANCE")
		for _, row := range rep.Rows[a.Label] {
			rec := export.MarshalRow(row, opts)
			fmt.Fprintln(tw, strings.Join(rec, "\t"))
		}
		tw.Flush()
	}
}

func printSummary(cmd *cobra.Command, sum report.Summary, opts export.Options) {
	w := cmd.OutOrStdout()
	if opts.Letterhead != "" {
		fmt.Fprintln(w, opts.Letterhead)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ACCOUNT\tOPENING\tRECEIPTS\tPAYMENTS\tCLOSING")
	write := func(label string, a report.AccountSummary) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", label,
			opts.CurrencySymbol+a.Opening.StringFixed(2),
			opts.CurrencySymbol+a.Receipts.StringFixed(2),
			opts.CurrencySymbol+a.Payments.StringFixed(2),
			opts.CurrencySymbol+a.Closing.StringFixed(2))
	}
	for _, a := range sum.Accounts {
		write(a.Label, a)
	}
	write("Total", sum.Totals)
	tw.Flush()
}

// writeCSVFiles writes one ledger CSV per account plus summary.csv.
func writeCSVFiles(dir string, rep *report.Report, summaryOnly bool, opts export.Options) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	if !summaryOnly {
		for label, rows := range rep.Rows {
			path := filepath.Join(dir, fileName(label)+".csv")
			if err := writeCSV(path, func(f *os.File) error {
				return export.WriteLedger(f, label, rows, opts)
			}); err != nil {
				return err
			}
		}
	}

	path := filepath.Join(dir, "summary.csv")
	return writeCSV(path, func(f *os.File) error {
		return export.WriteSummary(f, rep.Summary(), opts)
	})
}

func writeCSV(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// fileName keeps only filesystem-safe characters from an account label.
func fileName(label string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ':
			return '-'
		default:
			return -1
		}
	}, strings.ToLower(label))
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/thegoanwedding/marketplace/internal/ops"
	"github.com/thegoanwedding/marketplace/pkg/database"
	"gorm.io/gorm"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	Format string
	Output string
}

func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a snapshot of every table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := rootOpts.openConfigured()
			if err != nil {
				return err
			}
			defer database.Close(db)

			var w io.Writer = cmd.OutOrStdout()
			if opts.Output != "" && opts.Output != "-" {
				f, err := os.Create(opts.Output)
				if err != nil {
					return WrapExitError(ExitCommandError, "create output file", err)
				}
				defer f.Close()
				w = f
			}
			if err := ops.Export(cmd.Context(), db, w, opts.Format); err != nil {
				return WrapExitError(ExitCommandError, "export", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", ops.FormatJSON, "snapshot format (json|yaml)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// SourceOptions names the store data is read from.
type SourceOptions struct {
	Driver string
	DSN    string
}

func (s *SourceOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.Driver, "from-driver", "", "source driver (postgres|sqlite)")
	cmd.Flags().StringVar(&s.DSN, "from-dsn", "", "source connection string")
	_ = cmd.MarkFlagRequired("from-driver")
	_ = cmd.MarkFlagRequired("from-dsn")
}

// open returns the source store followed by the configured target.
func (s *SourceOptions) open(rootOpts *RootOptions) (*gorm.DB, *gorm.DB, error) {
	src, err := database.Open(s.Driver, s.DSN)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "open source store", err)
	}
	dst, err := rootOpts.openConfigured()
	if err != nil {
		database.Close(src)
		return nil, nil, err
	}
	return src, dst, nil
}

func NewCopyCommand(rootOpts *RootOptions) *cobra.Command {
	src := &SourceOptions{}

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy every table from another store into the configured one",
		Long: `Copy every table from the --from store into the store configured by
DB_DRIVER, keeping ids. All rows are written in one transaction, so a
conflict leaves the target untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := src.open(rootOpts)
			if err != nil {
				return err
			}
			defer database.Close(from)
			defer database.Close(to)

			counts, err := ops.Copy(cmd.Context(), from, to)
			if err != nil {
				return WrapExitError(ExitCommandError, "copy", err)
			}
			for _, c := range counts {
				fmt.Fprintf(cmd.OutOrStdout(), "%-22s %d\n", c.Name, c.Rows)
			}
			return nil
		},
	}
	src.bind(cmd)

	return cmd
}

func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	src := &SourceOptions{}
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Compare row counts and ids between another store and the configured one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := src.open(rootOpts)
			if err != nil {
				return err
			}
			defer database.Close(from)
			defer database.Close(to)

			report, err := ops.Verify(cmd.Context(), from, to)
			if err != nil {
				return WrapExitError(ExitCommandError, "verify", err)
			}
			if err := writeReport(cmd.OutOrStdout(), report, asJSON); err != nil {
				return err
			}
			if !report.OK() {
				return NewExitError(ExitFailure, fmt.Sprintf("%d table(s) differ", len(report.Mismatched())))
			}
			return nil
		},
	}
	src.bind(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")

	return cmd
}

func writeReport(w io.Writer, report *ops.Report, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	for _, d := range report.Tables {
		mark := "ok"
		if !d.Matches() {
			mark = fmt.Sprintf("DIFF missing=%v extra=%v", d.Missing, d.Extra)
		}
		fmt.Fprintf(w, "%-22s %6d %6d  %s\n", d.Name, d.Source, d.Target, mark)
	}
	return nil
}

// Package cli wires the goanwedding commands: the HTTP server plus the
// store maintenance jobs.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thegoanwedding/marketplace/config"
	"github.com/thegoanwedding/marketplace/internal/logging"
	"github.com/thegoanwedding/marketplace/pkg/database"
	"gorm.io/gorm"
)

// RootOptions holds state shared by every subcommand.
type RootOptions struct {
	Config *config.Config
}

// NewRootCommand creates the goanwedding command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "goanwedding",
		Short: "TheGoanWedding marketplace backend",
		Long:  "Vendor directory, blog and RSVP service for TheGoanWedding, plus store maintenance jobs.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if err := cfg.Validate(); err != nil {
				return WrapExitError(ExitCommandError, "invalid configuration", err)
			}
			logging.SetupWriter(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			opts.Config = cfg
			return nil
		},
		SilenceUsage: true,
	}

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewCopyCommand(opts))
	cmd.AddCommand(NewVerifyCommand(opts))

	return cmd
}

// openConfigured opens the store named by the environment.
func (o *RootOptions) openConfigured() (*gorm.DB, error) {
	db, err := database.Open(o.Config.DBDriver, o.Config.DSN())
	if err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("open %s store", o.Config.DBDriver), err)
	}
	return db, nil
}

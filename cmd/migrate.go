package cmd

import (
	"fmt"

	"github.com/frahmantamala/bragboard/internal/session/sqlite"
	"github.com/spf13/cobra"
)

var (
	migrateCmd = &cobra.Command{
		RunE:  runMigration,
		Use:   "migrate",
		Short: "to run the session store migrations",
	}
	migrateRollback bool
	migrateStatus   bool
)

func init() {
	migrateCmd.Flags().BoolVarP(&migrateRollback, "rollback", "r", false, "to rollback the latest version of sql migration")
	migrateCmd.Flags().BoolVarP(&migrateStatus, "status", "s", false, "to print the current schema version")
}

func runMigration(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}

	db, err := sqlite.Open(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	switch {
	case migrateStatus:
	case migrateRollback:
		if err := sqlite.Rollback(ctx, db); err != nil {
			return err
		}
	default:
		if err := sqlite.Migrate(ctx, db); err != nil {
			return err
		}
	}

	version, err := sqlite.Version(ctx, db)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "session store at version %d\n", version)
	return err
}

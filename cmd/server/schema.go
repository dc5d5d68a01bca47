package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/buzkaaclicker/folio"
	"github.com/buzkaaclicker/folio/persistent"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Create the tables in POSTGRES_DSN, or print their SQL when it is not set",
	RunE: func(cmd *cobra.Command, args []string) error {
		dsn := os.Getenv("POSTGRES_DSN")
		if dsn == "" {
			for _, script := range []string{folio.ProjectsTableSQL, folio.ProfilesTableSQL, folio.HobbiesTableSQL} {
				fmt.Fprintln(cmd.OutOrStdout(), script)
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		db, err := persistent.PgOpen(ctx, dsn)
		if err != nil {
			return fmt.Errorf("open postgres: %w", err)
		}
		defer db.Close()

		if err := persistent.CreateSchema(ctx, db); err != nil {
			return err
		}
		logrus.Infoln("Schema created.")
		return nil
	},
}

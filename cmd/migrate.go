package main

import (
	"context"
	"fmt"
	"os"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	var (
		dir    string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations with Atlas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			return runMigrations(cmd.Context(), cfg.DB.BuildDSN(), dir, dryRun)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "migrations", "directory holding the migration files and atlas.sum")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print pending migrations without applying them")
	return cmd
}

func runMigrations(ctx context.Context, dsn, dir string, dryRun bool) error {
	workdir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(os.DirFS(dir)),
	)
	if err != nil {
		return errs.Wrap(err, "failed to prepare migration directory")
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), "atlas")
	if err != nil {
		return errs.Wrap(err, "failed to initialize atlas client")
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dsn,
		DryRun: dryRun,
	})
	if err != nil {
		return errs.Wrap(err, "failed to apply migrations")
	}

	if len(res.Applied) == 0 {
		fmt.Println("No pending migrations.")
		return nil
	}
	for _, f := range res.Applied {
		fmt.Printf("applied %s\n", f.Name)
	}
	fmt.Printf("schema is at version %s\n", res.Target)
	return nil
}

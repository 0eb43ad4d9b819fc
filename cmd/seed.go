package main

import (
	"errors"

	"github.com/spf13/cobra"

	"incubator/pkg/catalog"
	"incubator/pkg/config"
	"incubator/pkg/db"
	"incubator/pkg/logging"
)

func newSeedCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the catalog JSON into Postgres",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return errors.New("DATABASE_URL is required to seed")
			}
			log := logging.New(cfg.LogLevel)
			defer func() { _ = log.Sync() }()
			ctx := cmd.Context()

			pool, err := db.Connect(ctx, db.PoolOptions{URL: cfg.DatabaseURL, MaxConns: cfg.DBMaxConns})
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := db.ApplySchema(ctx, pool, cfg.SchemaPath); err != nil {
				return err
			}

			var loader catalog.Loader = catalog.EmbeddedLoader()
			if dir != "" {
				loader = catalog.DirLoader(dir)
			}
			data, err := loader.Load(ctx)
			if err != nil {
				return err
			}
			if err := catalog.Validate(data); err != nil {
				return err
			}
			if err := catalog.Seed(ctx, pool, data); err != nil {
				return err
			}

			log.Info("catalog seeded",
				"jobs", len(data.Jobs), "startups", len(data.Startups), "events", len(data.Events),
				"team", len(data.Team), "faq", len(data.FAQ), "programs", len(data.Programs))
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "read catalog JSON from this directory instead of the built-in data")
	return cmd
}

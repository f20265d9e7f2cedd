package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/config"
	"github.com/shashiranjanraj/vastra/database/seeders"
	"github.com/shashiranjanraj/vastra/pkg/mongodb"
)

// vastra seed — load the default catalog into MongoDB.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the product catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		db, disconnect, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			return err
		}
		defer disconnect(context.Background()) //nolint:errcheck

		if err := seeders.SeedProducts(ctx, repositories.NewProductRepository(db)); err != nil {
			return err
		}

		fmt.Printf("seeded %d products\n", len(seeders.Catalog))
		return nil
	},
}

package main

import (
	"context"

	"dondusang/internal/db"
	"dondusang/internal/seed"
	"dondusang/internal/store"

	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:   "seed",
	Usage:  "Seed blood groups and sample accounts",
	Action: runSeed,
}

func runSeed(cCtx *cli.Context) error {
	ctx := context.Background()

	config, err := loadConfig()
	if err != nil {
		return err
	}

	pool, err := db.Connect(ctx, config)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		return err
	}

	if err := seed.SeedBloodGroups(ctx, store.NewBloodGroupRepository(pool)); err != nil {
		return err
	}

	return seed.SeedUsers(ctx, store.NewUserRepository(pool))
}

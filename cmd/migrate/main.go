package main

import (
	"context"
	"flag"
	"log"

	"hrdash/internal/platform/config"
	"hrdash/internal/platform/db"
	"hrdash/internal/platform/fixtures"
)

func main() {
	envFile := flag.String("env", "", "path to an env file (defaults to ./.env when present)")
	flag.Parse()

	action := "up"
	if flag.NArg() > 0 {
		action = flag.Arg(0)
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	if action == "seed" {
		if err := seed(cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
		return
	}

	m, err := db.NewMigrator(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open migrations: %v", err)
	}
	defer m.Close()

	result, err := db.Run(m, action)
	if err != nil {
		log.Fatalf("migration %s failed: %v", action, err)
	}
	log.Printf("migration %s completed: %s", action, result)
}

func seed(cfg config.Config) error {
	ctx := context.Background()
	ds, err := fixtures.Load(cfg.FixturesPath)
	if err != nil {
		return err
	}
	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	seeded, err := db.Seed(ctx, pool, ds)
	if err != nil {
		return err
	}
	if seeded {
		log.Printf("seeded %d employees", len(ds.Employees))
	} else {
		log.Printf("database already populated, nothing to seed")
	}
	return nil
}

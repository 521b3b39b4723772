// Package main applies or rolls back the database schema.
//
//	migrate up          apply all pending migrations
//	migrate down        roll back everything
//	migrate steps -n 1  apply (or with a negative n, roll back) n migrations
//	migrate version     print the current version
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"bizreport/internal/infrastructure/config"
	"bizreport/internal/infrastructure/storage/postgres"
	"bizreport/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	steps := flag.Int("n", 1, "number of migrations for the steps command")
	flag.Parse()
	cmd := flag.Arg(0)
	if cmd == "" {
		cmd = "up"
	}

	log, err := logger.New(logger.Config{Level: "info", Development: true})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("failed to load config", "error", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(cfg.Database.DSN))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	migrator, err := postgres.NewMigrator(pool, log)
	if err != nil {
		log.Fatalw("failed to create migrator", "error", err)
	}
	defer func() { _ = migrator.Close() }()

	switch cmd {
	case "up":
		err = migrator.Up()
	case "down":
		err = migrator.Down()
	case "steps":
		err = migrator.Steps(*steps)
	case "version":
		var (
			version uint
			dirty   bool
		)
		version, dirty, err = migrator.Version()
		if err == nil {
			fmt.Printf("version=%d dirty=%t\n", version, dirty)
		}
	default:
		err = fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		log.Fatalw("migration failed", "command", cmd, "error", err)
	}
}

// Package main seeds a demo dataset for one owner and prints a bearer token for it.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"bizreport/internal/core/id"
	"bizreport/internal/domain/auth"
	"bizreport/internal/infrastructure/config"
	"bizreport/internal/infrastructure/storage/postgres"
	"bizreport/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	ownerFlag := flag.String("owner", "", "owner id to seed (default: a new id)")
	flag.Parse()

	log, err := logger.New(logger.Config{Level: "info", Development: true})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("failed to load config", "error", err)
	}

	ownerID := id.New()
	if *ownerFlag != "" {
		if ownerID, err = id.Parse(*ownerFlag); err != nil {
			log.Fatalw("invalid owner id", "owner", *ownerFlag, "error", err)
		}
	}

	ctx := logger.WithLogger(context.Background(), log)

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(cfg.Database.DSN))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	data := demoDataset(ownerID)

	err = txm.RunInTransaction(ctx, func(ctx context.Context) error {
		return insertDataset(ctx, txm.GetQuerier(ctx), data)
	})
	if err != nil {
		pool.Close()
		log.Fatalw("failed to seed demo data", "error", err)
	}
	log.Infow("demo data seeded",
		"owner_id", ownerID,
		"clients", len(data.clients),
		"products", len(data.products),
		"revenue_entries", len(data.revenues),
		"expense_entries", len(data.expenses),
	)

	jwtCfg := auth.DefaultJWTConfig(cfg.JWT.Secret)
	jwtCfg.Issuer = cfg.JWT.Issuer
	jwtCfg.AccessTokenTTL = cfg.JWT.TokenTTL
	token, expiresAt, err := auth.NewJWTService(jwtCfg).GenerateAccessToken("seed", ownerID, "demo@bizreport.local", []string{"owner"})
	if err != nil {
		log.Fatalw("failed to sign token", "error", err)
	}

	fmt.Printf("owner:   %s\ntoken:   %s\nexpires: %s\n", ownerID, token, expiresAt.Format("2006-01-02 15:04"))
}

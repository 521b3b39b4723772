// Package main builds the overview report for one owner and prints it as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	appctx "bizreport/internal/core/context"
	"bizreport/internal/core/id"
	"bizreport/internal/domain/reports"
	"bizreport/internal/infrastructure/config"
	"bizreport/internal/infrastructure/http/v1/dto"
	"bizreport/internal/infrastructure/storage/postgres"
	"bizreport/internal/infrastructure/storage/postgres/report_repo"
	"bizreport/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	ownerFlag := flag.String("owner", "", "owner id (UUID)")
	flag.Parse()

	ownerID, err := id.Parse(*ownerFlag)
	if err != nil || id.IsNil(ownerID) {
		fmt.Fprintln(os.Stderr, "usage: report -owner <uuid>")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Level: cfg.Log.Level, OutputPaths: []string{"stderr"}})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := logger.WithLogger(context.Background(), log)
	ctx = appctx.WithTrace(ctx, appctx.NewTraceContext())

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(cfg.Database.DSN))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	service := reports.NewService(report_repo.NewReportRepo(postgres.NewTxManager(pool)))

	report, err := service.Build(ctx, ownerID)
	if err != nil {
		pool.Close()
		log.Fatalw("failed to build report", "owner_id", ownerID, "error", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dto.FromReport(report)); err != nil {
		log.Fatalw("failed to write report", "error", err)
	}
}

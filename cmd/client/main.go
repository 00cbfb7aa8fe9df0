package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/emsdesk/internal/buildinfo"
	"github.com/dmitrijs2005/emsdesk/internal/client/cli"
	"github.com/dmitrijs2005/emsdesk/internal/client/config"
	"github.com/dmitrijs2005/emsdesk/internal/client/storage"
	"github.com/dmitrijs2005/emsdesk/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	logger, err := logging.NewZapFileLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := storage.InitDatabase(ctx, cfg.DBPath)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	app := cli.NewApp(cfg, db, logger, os.Stdin, os.Stdout)
	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "client stopped", "error", err)
		log.Printf("%v", err)
	}

}

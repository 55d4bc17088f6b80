package main

import (
	"io"
	"log"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"digitalstore/internal/config"
	"digitalstore/internal/http/handlers"
	applog "digitalstore/internal/log"
	"digitalstore/internal/repos"
)

func main() {
	// Persisted catalogs and API responses carry prices as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	cfg := config.Load()

	// Optional file logging
	var out io.Writer = os.Stdout
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			defer f.Close()
			out = io.MultiWriter(os.Stdout, f)
			log.SetOutput(out)
		}
	}
	logger := applog.Init(out, cfg.LogLevel)
	defer logger.Sync()

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		logger.Fatal("db.open.fail", zap.Error(err), zap.String("dsn", cfg.DBDSN))
	}
	defer db.Close()

	deps := handlers.NewDeps(repos.NewKVRepo(db), cfg)
	app := handlers.NewApp(deps)

	logger.Info("server.start", zap.String("port", cfg.Port), zap.Bool("admin_local_only", cfg.AdminLocalOnly))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server.listen.fail", zap.Error(err))
	}
}

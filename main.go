// main.go
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/Santo1607/AIVoteSystem/config"
	"github.com/Santo1607/AIVoteSystem/ledger"
	"github.com/Santo1607/AIVoteSystem/routes"
	"github.com/Santo1607/AIVoteSystem/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	var entityStore store.Store
	switch cfg.Storage {
	case "memory":
		entityStore = store.NewMemStore()
		logger.Info("using in-memory store")
	default:
		db, err := config.ConnectDatabase(cfg)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		entityStore = store.NewGormStore(db)
		logger.Info("database connected successfully")
	}

	ctx := context.Background()
	if cfg.SeedDemoData {
		if err := store.Seed(ctx, entityStore, logger); err != nil {
			logger.Error("failed to seed demo data", "error", err)
			os.Exit(1)
		}
	}

	auditLedger := ledger.NewSimulated(cfg.EncryptionKey, 100*time.Millisecond, logger)
	if err := syncLedger(ctx, entityStore, auditLedger); err != nil {
		logger.Error("failed to initialize ledger", "error", err)
		os.Exit(1)
	}

	router := routes.SetupRouter(routes.Deps{
		Store:     entityStore,
		Ledger:    auditLedger,
		JWTSecret: cfg.JWTSecret,
		Logger:    logger,
	})

	logger.Info("starting server", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// syncLedger mirrors the stored candidates onto the fresh ledger and opens
// voting so the demo is ready to accept casts on boot.
func syncLedger(ctx context.Context, s store.Store, l ledger.Ledger) error {
	candidates, err := s.ListCandidates(ctx)
	if err != nil {
		return err
	}
	for _, candidate := range candidates {
		if err := l.RegisterCandidate(candidate.ID, candidate.Name, candidate.PartyName, candidate.PartyLogo); err != nil {
			return err
		}
	}
	return l.StartVoting()
}

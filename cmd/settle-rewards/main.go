// Command settle-rewards retries reward settlement for approved reading logs
// that have no token reward yet, typically after a chain outage or a missing
// wallet binding was fixed.
//
// Usage:
//
//	settle-rewards
//
// Uses the same configuration as the server.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/readify-app/readify-backend/internal/adapter/chain"
	"github.com/readify-app/readify-backend/internal/adapter/postgres"
	logrepo "github.com/readify-app/readify-backend/internal/adapter/postgres/readinglog"
	rewardrepo "github.com/readify-app/readify-backend/internal/adapter/postgres/reward"
	userrepo "github.com/readify-app/readify-backend/internal/adapter/postgres/user"
	"github.com/readify-app/readify-backend/internal/app"
	"github.com/readify-app/readify-backend/internal/config"
	"github.com/readify-app/readify-backend/internal/service/reward"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("settle-rewards: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Rewards.SweepTimeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("settle-rewards: connect postgres: %v", err)
	}
	defer pool.Close()

	ledger, err := chain.New(cfg.Chain, logger)
	if err != nil {
		log.Fatalf("settle-rewards: connect chain: %v", err)
	}
	defer ledger.Close() //nolint:errcheck

	svc := reward.NewService(logger,
		logrepo.New(pool),
		rewardrepo.New(pool),
		userrepo.New(pool),
		ledger,
	)

	settled, err := svc.SettlePending(ctx)
	if err != nil {
		log.Fatalf("settle-rewards: %v", err)
	}

	fmt.Printf("Settled %d pending rewards.\n", settled)
}

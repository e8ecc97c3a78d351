package main

import (
	"context"
	"log"
	"os"

	"github.com/Bart563/KBZ-Computers/internal/config"
	"github.com/Bart563/KBZ-Computers/internal/db"
	productrepo "github.com/Bart563/KBZ-Computers/internal/repository/product"
	"github.com/Bart563/KBZ-Computers/internal/seed"
)

func main() {
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags)
	cfg := config.FromEnv()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	if err := seed.Run(ctx, productrepo.NewPostgres(pool, logger), logger); err != nil {
		logger.Fatalf("seed: %v", err)
	}
}

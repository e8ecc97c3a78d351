package main

import (
	"context"
	"log"
	"os"

	"github.com/Bart563/KBZ-Computers/internal/config"
	"github.com/Bart563/KBZ-Computers/internal/db"
	"github.com/Bart563/KBZ-Computers/internal/migrate"
)

func main() {
	logger := log.New(os.Stdout, "[migrate] ", log.LstdFlags)
	cfg := config.FromEnv()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		logger.Fatalf("apply migrations: %v", err)
	}
	logger.Println("migrations applied")
}

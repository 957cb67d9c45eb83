package main

import (
	"context"
	"fmt"
	"log"

	"github.com/iamsonghee/photo-selection/internal/config"
	"github.com/iamsonghee/photo-selection/internal/database"
	"github.com/iamsonghee/photo-selection/internal/handlers"
	"github.com/iamsonghee/photo-selection/internal/server"
	"github.com/iamsonghee/photo-selection/internal/storage"
)

func main() {
	cfg := config.Load()
	database.Init(cfg.DBDSN)

	store, err := storage.New(cfg)
	if err != nil {
		log.Fatalf("storage error: %v", err)
	}
	if err := store.EnsureBucket(context.Background()); err != nil {
		log.Fatalf("storage bucket error: %v", err)
	}
	handlers.Store = store

	r := server.NewRouter(cfg)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/oremod/oremod/backend/internal/handler"
	"github.com/oremod/oremod/backend/internal/router"
	"github.com/oremod/oremod/backend/internal/service"
	"github.com/oremod/oremod/backend/internal/storage/pg"
	"github.com/oremod/oremod/shared/config"
	"github.com/oremod/oremod/shared/logger"
)

func main() {
	log.SetFlags(log.Lshortfile)

	// optional .env for local development
	_ = godotenv.Load()

	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "backend/config", "path to folder with configs")
	flag.Parse()
	cfg := config.MustLoad(configFolder)

	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	storage, err := pg.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer storage.Cleanup()

	thread := service.NewThread(storage)
	facet := service.NewFacet(storage)

	h := handler.New(thread, facet, storage, cfg)
	r := router.New(h, cfg)

	httpPort := os.Getenv("PORT")
	if httpPort == "" {
		httpPort = fmt.Sprintf("%d", cfg.Public.Port)
	}

	logger.Log.Info("server started", "port", httpPort)
	log.Fatal(http.ListenAndServe(":"+httpPort, r))
}

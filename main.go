package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"hackpage/internal/config"
	mcpserver "hackpage/internal/mcp"
	"hackpage/internal/service"
	"hackpage/internal/storage"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := storage.New(cfg.DBPath, cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	gateway := storage.NewHomepageStore(db)
	emitter := service.NoopEmitter{}

	editorSvc := service.NewEditorService(gateway, emitter, service.Options{
		AutosaveInterval: cfg.AutosaveInterval(),
		PublishDir:       cfg.Publish.Dir,
		AssetDir:         cfg.AssetDir(),
	})

	mcpSrv := mcpserver.New(ctx, mcpserver.Deps{
		Emitter: emitter,
		Editor:  editorSvc,
		Gateway: gateway,
	})
	defer mcpSrv.Close()

	if err := mcpSrv.ServeStdio(); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
}

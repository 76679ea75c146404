package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mgolik/eufunds/internal/config"
	"github.com/mgolik/eufunds/internal/domain/catalog"
	"github.com/mgolik/eufunds/internal/domain/export"
	"github.com/mgolik/eufunds/internal/domain/project"
	"github.com/mgolik/eufunds/internal/domain/report"
	"github.com/mgolik/eufunds/internal/mcp"
	"github.com/mgolik/eufunds/internal/sqlite"
	"github.com/mgolik/eufunds/internal/transport"
)

func main() {
	seedPath := flag.String("seed", "", "JSON file of project records to load before serving")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	logWriter := os.Stdout
	if cfg.Transport.Mode == "stdio" {
		logWriter = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	store := sqlite.NewStore(db)

	if *seedPath != "" {
		if err := seed(context.Background(), store, *seedPath); err != nil {
			logger.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
		logger.Info("database seeded", "file", *seedPath)
	}

	catalogSvc := catalog.NewService(store, logger)
	reportSvc := report.NewService(store, cfg.Categories, logger)
	exportSvc := export.NewService(store, logger)

	if cfg.Transport.Mode == "stdio" {
		mcpServer := mcp.NewServer(mcp.Config{
			Services: mcp.Services{
				Catalog: catalogSvc,
				Reports: reportSvc,
			},
			Logger: logger,
		})
		runStdioMode(logger, mcpServer)
		return
	}

	router := transport.NewServer(catalogSvc, reportSvc, exportSvc, logger)
	runHTTPMode(logger, router, cfg.Server.Host, cfg.Server.Port)
}

func runStdioMode(logger *slog.Logger, mcpServer *sdkmcp.Server) {
	logger.Info("starting stdio transport")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-stop
		logger.Info("shutting down")
		cancel()
	}()

	if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil {
		logger.Error("stdio server error", "error", err)
		os.Exit(1)
	}
}

func runHTTPMode(logger *slog.Logger, handler http.Handler, host string, port int) {
	addr := fmt.Sprintf("%s:%d", host, port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func seed(ctx context.Context, store *sqlite.Store, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var records []project.Project
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}
	return store.Load(ctx, records)
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

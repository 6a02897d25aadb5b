package main

import (
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/zanovak/katalog/internal/api"
	"github.com/zanovak/katalog/internal/config"
	"github.com/zanovak/katalog/internal/db"
	"github.com/zanovak/katalog/web"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: katalog <init|serve>")
		os.Exit(1)
	}

	cfg := config.Load()
	logger := newLogger(cfg)
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	switch os.Args[1] {
	case "init":
		cmdInit(os.Args[2:], cfg, logger)
	case "serve":
		cmdServe(os.Args[2:], cfg, logger)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\nUsage: katalog <init|serve>\n", os.Args[1])
		os.Exit(1)
	}
}

func newLogger(cfg config.Config) *zap.Logger {
	var logger *zap.Logger
	var err error
	if cfg.Development() {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot initialise logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}

func cmdInit(args []string, cfg config.Config, logger *zap.Logger) {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	dbPath := fs.String("db", cfg.DBPath, "path to SQLite database file")
	fs.Parse(args)

	if _, err := os.Stat(*dbPath); err == nil {
		fmt.Fprintf(os.Stderr, "Error: database file %s already exists\n", *dbPath)
		os.Exit(1)
	}

	database, err := initDatabase(*dbPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	database.Close()

	fmt.Printf("Database created: %s\n", *dbPath)
	fmt.Println("Schema initialized.")
}

func cmdServe(args []string, cfg config.Config, logger *zap.Logger) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	dbPath := fs.String("db", cfg.DBPath, "path to SQLite database file")
	addr := fs.String("addr", cfg.Addr, "listen address")
	fs.Parse(args)

	// Auto-init on first run.
	if _, err := os.Stat(*dbPath); os.IsNotExist(err) {
		database, err := initDatabase(*dbPath, logger)
		if err != nil {
			logger.Fatal("failed to initialize database", zap.Error(err))
		}
		database.Close()
		logger.Info("database created", zap.String("path", *dbPath))
	}

	database, err := db.Open(*dbPath, logger)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer database.Close()

	// Idempotent.
	if err := db.Migrate(database); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	// API routes take priority, the embedded UI handles the rest.
	mux := http.NewServeMux()
	mux.Handle("/api/", api.NewRouter(database, logger))
	mux.Handle("/", web.Handler())

	logger.Info("server listening", zap.String("addr", *addr))
	if err := http.ListenAndServe(*addr, mux); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

// initDatabase creates a new database file and applies the schema.
func initDatabase(path string, logger *zap.Logger) (*sql.DB, error) {
	database, err := db.Open(path, logger)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Migrate(database); err != nil {
		database.Close()
		os.Remove(path)
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return database, nil
}

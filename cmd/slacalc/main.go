package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexanderramin/slacalc/internal/cli"
	"github.com/alexanderramin/slacalc/internal/config"
	"github.com/alexanderramin/slacalc/internal/csvexport"
	"github.com/alexanderramin/slacalc/internal/db"
	"github.com/alexanderramin/slacalc/internal/repository"
	"github.com/alexanderramin/slacalc/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Use-case events go to a file next to the database so they never draw
	// over the interactive screen.
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		logFile, err := openLog(filepath.Join(filepath.Dir(cfg.DBPath), "slacalc.log"))
		if err != nil {
			return err
		}
		defer logFile.Close()
		observer = service.NewLogUseCaseObserver(logFile)
	}

	ctx := context.Background()

	// Wire persistence and services
	kv := repository.NewSQLiteKVRepo(database)
	history := service.NewHistoryStore(ctx, kv, observer)

	notices := cli.NewNotices(os.Stdout)
	exporter := csvexport.NewExporter(csvexport.DirSaver{Dir: cfg.ExportDir}, notices)

	app := &cli.App{
		Evaluations: service.NewEvaluationService(history, service.WithObserver(observer)),
		History:     history,
		Export:      service.NewExportService(history, exporter, observer),
		Import:      service.NewImportService(history, observer),
		Notices:     notices,
	}

	// Detect interactive terminal for the full-screen calculator.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}

func openLog(path string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

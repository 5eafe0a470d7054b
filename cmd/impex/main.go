// Command impex экспортирует заметки в JSON и импортирует их обратно
// со стратегией пропуска дубликатов по ключевому полю.
//
// Usage:
//
//	impex -export [-deck Колода] [-out notes.json]
//	impex -import notes.json [-deck Колода]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/heartmarshall/myjapanese/internal/app"
	"github.com/heartmarshall/myjapanese/internal/config"
	"github.com/heartmarshall/myjapanese/internal/database"
	"github.com/heartmarshall/myjapanese/internal/database/repository"
	"github.com/heartmarshall/myjapanese/internal/service/impex"
)

func main() {
	doExport := flag.Bool("export", false, "export notes to JSON")
	importPath := flag.String("import", "", "import notes from a JSON file")
	deck := flag.String("deck", "", "deck filter (export) or destination deck (import)")
	outPath := flag.String("out", "notes.json", "export output file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.Log)

	if err := run(context.Background(), cfg, logger, *doExport, *importPath, *deck, *outPath); err != nil {
		logger.Error("impex failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, doExport bool, importPath, deck, outPath string) error {
	if doExport == (importPath != "") {
		return fmt.Errorf("exactly one of -export or -import is required")
	}

	pool, err := database.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	svc, err := impex.NewService(repository.NewRegistry(pool))
	if err != nil {
		return err
	}

	if doExport {
		var decks []string
		if deck != "" {
			decks = []string{deck}
		}

		data, err := svc.Export(ctx, decks)
		if err != nil {
			return err
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return fmt.Errorf("write export file: %w", err)
		}

		logger.Info("export finished", "out", outPath, "bytes", len(data))
		return nil
	}

	f, err := os.Open(importPath)
	if err != nil {
		return fmt.Errorf("open import file: %w", err)
	}
	defer f.Close()

	report, err := svc.Import(ctx, f, impex.ImportOptions{
		Deck:     deck,
		KeyField: cfg.Fields.Source,
	})
	if err != nil {
		return err
	}

	logger.Info("import finished",
		"processed", report.TotalProcessed,
		"created", report.SuccessCount,
		"skipped", report.SkippedCount,
		"failed", report.FailedCount,
	)
	for _, msg := range report.Errors {
		logger.Warn("import error", "detail", msg)
	}
	return nil
}

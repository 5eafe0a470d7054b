// Command dictgen компилирует лексикон JMdict из XML в бинарный
// gob-кэш, с которого аннотатор стартует без повторного разбора XML.
//
// Пути берутся из конфигурации (data.jmdict_xml, data.jmdict_cache)
// и могут быть переопределены флагами.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/myjapanese/internal/app"
	"github.com/heartmarshall/myjapanese/internal/config"
	"github.com/heartmarshall/myjapanese/internal/jmdict"
)

func main() {
	xmlPath := flag.String("xml", "", "path to JMdict XML (default from config)")
	outPath := flag.String("out", "", "path to the compiled cache (default from config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.Log)

	if *xmlPath == "" {
		*xmlPath = cfg.Data.JmdictXML
	}
	if *outPath == "" {
		*outPath = cfg.Data.JmdictCache
	}

	start := time.Now()

	f, err := os.Open(*xmlPath)
	if err != nil {
		logger.Error("open lexicon", "path", *xmlPath, "error", err)
		os.Exit(1)
	}
	defer f.Close()

	index, err := jmdict.Build(f, *xmlPath)
	if err != nil {
		logger.Error("build index", "error", err)
		os.Exit(1)
	}

	if err := index.WriteCache(*outPath); err != nil {
		logger.Error("write cache", "path", *outPath, "error", err)
		os.Exit(1)
	}

	logger.Info("dictionary cache compiled",
		"entries", index.Len(),
		"out", *outPath,
		"took", time.Since(start).String(),
	)
}

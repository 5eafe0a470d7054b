// Command annotate выводит производные поля для всех заметок колоды:
// фуригана, чтение, ромадзи, часть речи, определения, спряжения,
// примеры употребления и аудио. Заполненные вручную поля не
// перетираются, спряжения обновляются при изменении исходного слова.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/myjapanese/internal/app"
	"github.com/heartmarshall/myjapanese/internal/audio"
	"github.com/heartmarshall/myjapanese/internal/config"
	"github.com/heartmarshall/myjapanese/internal/database"
	"github.com/heartmarshall/myjapanese/internal/database/repository"
	"github.com/heartmarshall/myjapanese/internal/furigana"
	"github.com/heartmarshall/myjapanese/internal/grammar"
	"github.com/heartmarshall/myjapanese/internal/jmdict"
	"github.com/heartmarshall/myjapanese/internal/model"
	"github.com/heartmarshall/myjapanese/internal/reading"
	"github.com/heartmarshall/myjapanese/internal/sentences"
	"github.com/heartmarshall/myjapanese/internal/service"
	"github.com/heartmarshall/myjapanese/internal/service/annotate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("annotation failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	start := time.Now()

	// Индексы не зависят друг от друга и греются параллельно.
	var (
		dict      *jmdict.Index
		furi      *furigana.Index
		sentIndex *sentences.Index
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		dict, err = jmdict.Load(cfg.Data.JmdictXML, cfg.Data.JmdictCache)
		return err
	})
	g.Go(func() error {
		var err error
		furi, err = furigana.Load(cfg.Data.FuriganaJSON)
		return err
	})
	if cfg.Data.SentencesTSV != "" {
		g.Go(func() error {
			var err error
			sentIndex, err = sentences.Load(cfg.Data.SentencesTSV)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("indexes loaded",
		"dictionary_entries", dict.Len(),
		"furigana_entries", furi.Len(),
		"took", time.Since(start).String(),
	)

	pool, err := database.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	deps := annotate.Deps{
		Mapping:  buildMapping(cfg),
		Dict:     dict,
		Furigana: furi,
		Log:      logger,
	}
	if sentIndex != nil {
		deps.Sentences = sentIndex
	}
	if cfg.Annotate.FuriganaFallback {
		tk, err := reading.NewTokenizer()
		if err != nil {
			return err
		}
		deps.Fallback = tk
	}
	if cfg.Audio.URL != "" {
		client := &http.Client{Timeout: cfg.Audio.Timeout}
		deps.Audio = audio.NewHTTPProvider(cfg.Audio.URL, client, mediaSaver(cfg.Audio.MediaDir))
	}

	repos := repository.NewRegistry(pool)
	services, err := service.NewServices(service.Deps{
		Repos:    repos,
		Annotate: deps,
	})
	if err != nil {
		return err
	}

	var notes []model.Note
	if cfg.Annotate.Deck != "" {
		notes, err = repos.Notes.ListByDeck(ctx, cfg.Annotate.Deck)
	} else {
		notes, err = repos.Notes.ListAll(ctx)
	}
	if err != nil {
		return err
	}

	batch := make([]*model.Note, len(notes))
	for i := range notes {
		batch[i] = &notes[i]
	}

	changed, err := services.Annotate.ProcessMany(ctx, batch)
	if err != nil {
		return err
	}

	logger.Info("annotation finished",
		"notes", len(batch),
		"changed", changed,
		"took", time.Since(start).String(),
	)
	return nil
}

// buildMapping собирает отображение ролей полей из конфигурации.
func buildMapping(cfg *config.Config) annotate.Mapping {
	f := cfg.Fields
	return annotate.Mapping{
		Source:     f.Source,
		Furigana:   f.Furigana,
		Kana:       f.Kana,
		Romaji:     f.Romaji,
		WordType:   f.WordType,
		Meaning:    f.Meaning,
		Alternates: f.Alternates,
		Sentences:  f.Sentences,
		Audio:      f.Audio,
		Pitch:      f.Pitch,
		Forms: map[grammar.Form]string{
			grammar.FormMasu:        f.Masu,
			grammar.FormTe:          f.Te,
			grammar.FormPast:        f.Past,
			grammar.FormNegative:    f.Negative,
			grammar.FormPotential:   f.Potential,
			grammar.FormPassive:     f.Passive,
			grammar.FormConditional: f.Conditional,
			grammar.FormVolitional:  f.Volitional,
			grammar.FormDesire:      f.Desire,
			grammar.FormImperative:  f.Imperative,
		},
		NumDefinitions: cfg.Annotate.NumDefinitions,
		NumSentences:   cfg.Annotate.NumSentences,
	}
}

// mediaSaver сохраняет клипы в каталог медиафайлов.
func mediaSaver(dir string) audio.SaveFunc {
	return func(name string, data []byte) error {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(dir, name), data, 0o644)
	}
}

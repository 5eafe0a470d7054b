// Package annotate реализует вывод производных полей заметки:
// фуригана, чтение каной, ромадзи, часть речи, определения,
// спряжения, примеры употребления и аудио произношения.
package annotate

import (
	"fmt"
	"log/slog"

	"github.com/heartmarshall/myjapanese/internal/audio"
	"github.com/heartmarshall/myjapanese/internal/database/repository"
	"github.com/heartmarshall/myjapanese/internal/model"
)

// DictionaryIndex — источник словарных статей по точному совпадению
// поверхностной формы.
type DictionaryIndex interface {
	Lookup(word string) (model.DictionaryEntry, bool)
}

// FuriganaIndex — источник готовой разметки руби по точному
// совпадению строки.
type FuriganaIndex interface {
	Lookup(word string) (string, bool)
}

// SentenceIndex — источник примеров употребления слова.
type SentenceIndex interface {
	Lookup(word string, limit int) string
}

// ReadingFallback строит сегменты фуриганы морфологическим разбором,
// когда слова нет в индексе.
type ReadingFallback interface {
	Segments(word string) []model.FuriganaSegment
}

// Service реализует вывод и запись производных полей заметок.
type Service struct {
	repos   *repository.Registry
	mapping Mapping

	dict      DictionaryIndex
	furigana  FuriganaIndex
	sentences SentenceIndex
	audio     audio.Provider
	fallback  ReadingFallback

	log *slog.Logger
}

// Deps содержит зависимости, необходимые для создания сервиса.
// Sentences, Audio и Fallback необязательны: без них соответствующие
// выводы просто не строятся.
type Deps struct {
	Repos     *repository.Registry
	Mapping   Mapping
	Dict      DictionaryIndex
	Furigana  FuriganaIndex
	Sentences SentenceIndex
	Audio     audio.Provider
	Fallback  ReadingFallback
	Log       *slog.Logger
}

// NewService создает сервис аннотации.
func NewService(deps Deps) (*Service, error) {
	if deps.Repos == nil {
		return nil, fmt.Errorf("repos cannot be nil")
	}
	if deps.Dict == nil {
		return nil, fmt.Errorf("dictionary index cannot be nil")
	}
	if deps.Furigana == nil {
		return nil, fmt.Errorf("furigana index cannot be nil")
	}
	if deps.Mapping.Source == "" {
		return nil, fmt.Errorf("source field mapping cannot be empty")
	}
	if deps.Log == nil {
		deps.Log = slog.Default()
	}

	return &Service{
		repos:     deps.Repos,
		mapping:   deps.Mapping,
		dict:      deps.Dict,
		furigana:  deps.Furigana,
		sentences: deps.Sentences,
		audio:     deps.Audio,
		fallback:  deps.Fallback,
		log:       deps.Log,
	}, nil
}

package impex

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/myjapanese/internal/model"
)

// Export экспортирует заметки перечисленных колод в JSON. Пустой
// список колод означает экспорт всей базы. Колоды выгружаются
// параллельно через errgroup, порядок заметок внутри колоды
// сохраняется.
func (s *Service) Export(ctx context.Context, decks []string) ([]byte, error) {
	var notes []model.Note

	if len(decks) == 0 {
		all, err := s.repos.Notes.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("list all notes: %w", err)
		}
		notes = all
	} else {
		// Слоты по индексу колоды, чтобы результат не зависел от
		// порядка завершения горутин.
		perDeck := make([][]model.Note, len(decks))

		g, gctx := errgroup.WithContext(ctx)
		for i, deck := range decks {
			g.Go(func() error {
				deckNotes, err := s.repos.Notes.ListByDeck(gctx, deck)
				if err != nil {
					return fmt.Errorf("list deck %q: %w", deck, err)
				}
				perDeck[i] = deckNotes
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		for _, deckNotes := range perDeck {
			notes = append(notes, deckNotes...)
		}
	}

	if len(notes) == 0 {
		return []byte("[]"), nil
	}

	exportNotes := make([]ExportNote, 0, len(notes))
	for _, note := range notes {
		exportNotes = append(exportNotes, ExportNote{
			Deck:      note.Deck,
			Fields:    note.Fields,
			CreatedAt: note.CreatedAt,
			UpdatedAt: note.UpdatedAt,
		})
	}

	jsonBytes, err := json.Marshal(exportNotes)
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}

	return jsonBytes, nil
}

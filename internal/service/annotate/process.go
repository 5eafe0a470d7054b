package annotate

import (
	"context"
	"fmt"

	"github.com/heartmarshall/myjapanese/internal/model"
)

// ProcessOne выводит и записывает производные поля одной заметки.
// Изменившаяся заметка сохраняется в хранилище. Возвращает признак
// изменения.
func (s *Service) ProcessOne(ctx context.Context, note *model.Note) (bool, error) {
	derived := s.Derive(ctx, note)
	if !Apply(note, derived) {
		return false, nil
	}

	if err := s.repos.Notes.UpdateFields(ctx, note.ID, note.Fields); err != nil {
		return false, fmt.Errorf("update note %s: %w", note.ID, err)
	}
	note.ResetDirty()

	return true, nil
}

// ProcessMany последовательно обрабатывает пакет заметок и возвращает
// число измененных. Ошибка одной заметки логируется и не прерывает
// пакет.
func (s *Service) ProcessMany(ctx context.Context, notes []*model.Note) (int, error) {
	changed := 0

	for _, note := range notes {
		if err := ctx.Err(); err != nil {
			return changed, err
		}

		ok, err := s.ProcessOne(ctx, note)
		if err != nil {
			s.log.Error("не удалось обработать заметку", "note_id", note.ID, "error", err)
			continue
		}
		if ok {
			changed++
		}
	}

	return changed, nil
}

package impex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/myjapanese/internal/model"
)

// ImportOptions задает параметры импорта.
type ImportOptions struct {
	// Deck — колода назначения. Пустое значение означает "колода из
	// самой записи".
	Deck string

	// KeyField — имя поля, по которому определяется дубликат
	// (обычно поле исходного слова).
	KeyField string
}

// Import импортирует заметки из JSON файла.
// Стратегия: SKIP_EXISTING - заметка с тем же значением ключевого
// поля в колоде назначения пропускается.
func (s *Service) Import(ctx context.Context, r io.Reader, opts ImportOptions) (*ImportReport, error) {
	if opts.KeyField == "" {
		return nil, fmt.Errorf("key field is required")
	}

	report := &ImportReport{
		Errors: make([]string, 0),
	}

	// Читаем JSON потоково через json.Decoder
	decoder := json.NewDecoder(r)

	// Проверяем, что это массив
	token, err := decoder.Token()
	if err != nil {
		return nil, fmt.Errorf("decode json token: %w", err)
	}

	if delim, ok := token.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("expected array, got %T", token)
	}

	// Итерируемся по записям
	for decoder.More() {
		var exportNote ExportNote
		if err := decoder.Decode(&exportNote); err != nil {
			if err == io.EOF {
				break
			}
			report.FailedCount++
			report.Errors = append(report.Errors, fmt.Sprintf("decode note: %v", err))
			continue
		}

		report.TotalProcessed++

		deck := opts.Deck
		if deck == "" {
			deck = exportNote.Deck
		}

		key := strings.TrimSpace(exportNote.Fields[opts.KeyField])
		if deck == "" || key == "" {
			report.FailedCount++
			report.Errors = append(report.Errors, fmt.Sprintf("note %d: deck or key field %q is empty", report.TotalProcessed, opts.KeyField))
			continue
		}

		exists, err := s.repos.Notes.ExistsByField(ctx, deck, opts.KeyField, key)
		if err != nil {
			report.FailedCount++
			report.Errors = append(report.Errors, fmt.Sprintf("check existence for '%s': %v", key, err))
			continue
		}

		if exists {
			// Заметка уже существует - пропускаем
			report.SkippedCount++
			continue
		}

		note := &model.Note{
			Deck:   deck,
			Fields: exportNote.Fields,
		}
		if _, err := s.repos.Notes.Create(ctx, note); err != nil {
			report.FailedCount++
			report.Errors = append(report.Errors, fmt.Sprintf("create note '%s': %v", key, err))
			continue
		}

		report.SuccessCount++
	}

	// Проверяем закрывающую скобку массива
	if _, err = decoder.Token(); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode closing bracket: %w", err)
	}

	return report, nil
}

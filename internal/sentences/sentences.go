// Package sentences загружает корпус примеров употребления и отдает
// примеры по слову. Корпус — tab-разделенный файл строк вида
// "слово<TAB>японское предложение<TAB>английский перевод"; порядок
// строк в файле задает порядок выдачи.
package sentences

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/heartmarshall/myjapanese/internal/model"
)

// lineBreak — разделитель строк в значениях полей: поля карточек
// хранят HTML.
const lineBreak = "<br>"

// fieldCount — число колонок в строке корпуса.
const fieldCount = 3

// Index — неизменяемый после загрузки индекс "слово -> примеры".
// Безопасен для конкурентного чтения.
type Index struct {
	byWord map[string][]model.Sentence
}

// Build читает корпус из r и строит индекс. name используется только
// в текстах ошибок. Строки с неверным числом колонок пропускаются:
// корпуса собираются из внешних источников и содержат мусор.
func Build(r io.Reader, name string) (*Index, error) {
	byWord := make(map[string][]model.Sentence)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		parts := strings.Split(line, "\t")
		if len(parts) != fieldCount {
			continue
		}

		word := strings.TrimSpace(parts[0])
		if word == "" {
			continue
		}

		byWord[word] = append(byWord[word], model.Sentence{
			Japanese: strings.TrimSpace(parts[1]),
			English:  strings.TrimSpace(parts[2]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("чтение корпуса %s: %w", name, err)
	}

	return &Index{byWord: byWord}, nil
}

// Load строит индекс из файла по пути path.
func Load(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("открытие корпуса: %w", err)
	}
	defer f.Close()

	return Build(f, path)
}

// Len возвращает число слов в индексе.
func (ix *Index) Len() int {
	return len(ix.byWord)
}

// Lookup возвращает до limit примеров для слова, отформатированных
// для поля карточки: "японское<br>английский", примеры разделены
// пустой строкой. Для неизвестного слова или limit <= 0 — пустая
// строка.
func (ix *Index) Lookup(word string, limit int) string {
	found := ix.byWord[word]
	if len(found) == 0 || limit <= 0 {
		return ""
	}
	if len(found) > limit {
		found = found[:limit]
	}

	formatted := make([]string, 0, len(found))
	for _, s := range found {
		formatted = append(formatted, s.Japanese+lineBreak+s.English)
	}

	return strings.Join(formatted, lineBreak+lineBreak)
}

// Package furigana отвечает на запросы руби-разметки: по поверхностной
// форме слова возвращает строку вида "食[た]べる", пригодную для поля
// флеш-карточки.
package furigana

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/heartmarshall/myjapanese/internal/model"
)

// recordJSON — формат одной записи источника JmdictFurigana.
type recordJSON struct {
	Text     string `json:"text"`
	Furigana []struct {
		Ruby string `json:"ruby"`
		Rt   string `json:"rt"`
	} `json:"furigana"`
}

// Index — неизменяемое отображение "текст -> сегменты руби".
type Index struct {
	entries map[string]model.FuriganaEntry
}

// utf8BOM встречается в начале файла JmdictFurigana.json.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Build читает JSON-массив записей и строит индекс.
// Совпадение ключей разрешается в пользу первой записи.
func Build(r io.Reader, name string) (*Index, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("furigana: read %s: %w", name, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	var records []recordJSON
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("furigana: parse %s: %w", name, err)
	}

	entries := make(map[string]model.FuriganaEntry, len(records))
	for _, rec := range records {
		if _, exists := entries[rec.Text]; exists {
			continue
		}
		segments := make([]model.FuriganaSegment, 0, len(rec.Furigana))
		for _, f := range rec.Furigana {
			segments = append(segments, model.FuriganaSegment{
				Text:    f.Ruby,
				Reading: f.Rt,
			})
		}
		entries[rec.Text] = model.FuriganaEntry{Text: rec.Text, Segments: segments}
	}

	return &Index{entries: entries}, nil
}

// Load строит индекс из файла.
func Load(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("furigana: open %s: %w", path, err)
	}
	defer f.Close()
	return Build(f, path)
}

// Lookup возвращает отрендеренную руби-строку для слова.
// Совпадение строго по литеральному входу, без нормализации.
func (idx *Index) Lookup(word string) (string, bool) {
	entry, ok := idx.entries[word]
	if !ok {
		return "", false
	}
	return Render(entry.Segments), true
}

// Len возвращает число записей в индексе.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Render собирает руби-строку из сегментов. Сегмент с чтением дает
// "текст[чтение]", сегмент без чтения — просто текст. Перед сегментом
// с чтением вставляется один пробел, если до него уже встречался сегмент
// без чтения: в синтаксисе руби флеш-карточек скобка действует до
// предыдущего пробела, и без него чтение прилипло бы к кане слева.
func Render(segments []model.FuriganaSegment) string {
	var b strings.Builder
	plainSeen := false
	for _, seg := range segments {
		if seg.Reading != "" {
			if plainSeen {
				b.WriteString(" ")
			}
			b.WriteString(seg.Text)
			b.WriteString("[")
			b.WriteString(seg.Reading)
			b.WriteString("]")
		} else {
			b.WriteString(seg.Text)
			plainSeen = true
		}
	}
	return b.String()
}

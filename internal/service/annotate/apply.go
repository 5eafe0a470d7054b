package annotate

import (
	"github.com/heartmarshall/myjapanese/internal/model"
)

// Apply записывает производные поля в заметку и сообщает, изменилось
// ли хоть одно поле.
//
// Две политики записи: Fill пишется только в пустое поле, Replace —
// при любом отличии от текущего значения. Пустые производные значения
// и поля вне активного набора заметки не пишутся никогда.
func Apply(note *model.Note, derived *DerivedFields) bool {
	changed := false

	for dest, value := range derived.Fill {
		if value == "" || !note.HasField(dest) {
			continue
		}
		if note.Get(dest) != "" {
			continue
		}
		note.Set(dest, value)
		changed = true
	}

	for dest, value := range derived.Replace {
		if value == "" || !note.HasField(dest) {
			continue
		}
		if note.Get(dest) == value {
			continue
		}
		note.Set(dest, value)
		changed = true
	}

	return changed
}

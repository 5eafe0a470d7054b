// Package jmdict строит неизменяемый словарный индекс из лексикона JMdict
// и отвечает на точные запросы по поверхностной форме слова.
package jmdict

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/myjapanese/internal/model"
)

// Index — словарь "поверхностная форма -> статья". Строится один раз,
// после построения только читается, поэтому безопасно разделяется между
// последовательными вызовами без блокировок.
type Index struct {
	entries map[string]model.DictionaryEntry
}

// Lookup возвращает статью по точному совпадению поверхностной формы.
func (idx *Index) Lookup(word string) (model.DictionaryEntry, bool) {
	e, ok := idx.entries[word]
	return e, ok
}

// Len возвращает число ключей в индексе.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Build разбирает лексикон JMdict и строит индекс.
//
// Для каждой статьи берется первое чтение (r_ele/reb), упорядоченное
// множество тегов частей речи со всех смыслов (DTD-сущности развернуты
// в полный текст) и нумерованные с единицы определения. Статья
// индексируется по каждой записи в кандзи (k_ele/keb); статья без записи
// в кандзи индексируется по своему чтению. При совпадении ключей побеждает
// первая встреченная статья — более поздние дубликаты игнорируются, это
// документированное поведение, совместимое с потребителями индекса.
//
// Неразбираемый источник — фатальная ошибка построения с указанием name.
func Build(r io.Reader, name string) (*Index, error) {
	d := xml.NewDecoder(r)
	d.Strict = false
	d.Entity = posEntities

	entries := make(map[string]model.DictionaryEntry)

	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("jmdict: parse %s: %w", name, err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "entry" {
			continue
		}

		var e entryXML
		if err := d.DecodeElement(&e, &se); err != nil {
			return nil, fmt.Errorf("jmdict: parse %s: entry: %w", name, err)
		}

		addEntry(entries, &e)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("jmdict: parse %s: %w", name, errEmptyLexicon)
	}

	return &Index{entries: entries}, nil
}

var errEmptyLexicon = errors.New("no entries found")

func addEntry(entries map[string]model.DictionaryEntry, e *entryXML) {
	if len(e.REle) == 0 {
		// Статья без чтения бесполезна для аннотации.
		return
	}
	reading := strings.TrimSpace(e.REle[0].Reb)

	pos := collectPos(e)
	senses := collectSenses(e)

	keys := make([]string, 0, len(e.KEle))
	for _, k := range e.KEle {
		if k.Keb != "" {
			keys = append(keys, k.Keb)
		}
	}
	// Статья без записи в кандзи ищется по чтению.
	if len(keys) == 0 {
		keys = append(keys, reading)
	}

	for _, key := range keys {
		if _, exists := entries[key]; exists {
			// Первая статья с этим ключом побеждает.
			continue
		}
		entries[key] = model.DictionaryEntry{
			Surface:       key,
			Reading:       reading,
			PartsOfSpeech: pos,
			Senses:        senses,
		}
	}
}

// collectPos собирает теги частей речи со всех смыслов статьи,
// без дубликатов, в порядке первого появления, и склеивает через "; ".
func collectPos(e *entryXML) string {
	var ordered []string
	seen := make(map[string]struct{})
	for _, s := range e.Sense {
		for _, p := range s.Pos {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			ordered = append(ordered, p)
		}
	}
	return strings.Join(ordered, "; ")
}

// collectSenses нумерует смыслы с единицы и склеивает глоссы смысла
// через "; ", сохраняя номер в тексте ("1: gloss; gloss").
func collectSenses(e *entryXML) map[int]string {
	senses := make(map[int]string, len(e.Sense))
	for i, s := range e.Sense {
		n := i + 1
		senses[n] = fmt.Sprintf("%d: %s", n, strings.Join(s.Gloss, "; "))
	}
	return senses
}

// Senses возвращает до limit определений статьи в порядке номеров смыслов.
// Номера, отсутствующие в статье, пропускаются; внутренняя ";" заменяется
// на ",", чтобы не конфликтовать с разделителями ниже по конвейеру.
func Senses(entry model.DictionaryEntry, limit int) []string {
	var out []string
	for n := 1; n <= limit; n++ {
		sense, ok := entry.Senses[n]
		if !ok {
			continue
		}
		out = append(out, strings.ReplaceAll(sense, ";", ","))
	}
	return out
}

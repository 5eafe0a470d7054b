package model

import (
	"time"

	"github.com/google/uuid"
)

// Note представляет заметку (флеш-карточку) в хранилище.
// Fields — отображение имени поля в его текстовое значение, как его
// хранит приложение-хост. Значения полей могут содержать HTML-разметку.
type Note struct {
	ID        uuid.UUID         `db:"id"`
	Deck      string            `db:"deck"`
	Fields    map[string]string `db:"fields"`
	CreatedAt time.Time         `db:"created_at"`
	UpdatedAt time.Time         `db:"updated_at"`

	// dirty отмечает, что хотя бы одно поле было изменено через Set
	// и заметку нужно сохранить.
	dirty bool `db:"-"`
}

// FieldNames возвращает множество имен полей заметки.
func (n *Note) FieldNames() []string {
	names := make([]string, 0, len(n.Fields))
	for name := range n.Fields {
		names = append(names, name)
	}
	return names
}

// HasField сообщает, есть ли у заметки поле с таким именем.
func (n *Note) HasField(name string) bool {
	_, ok := n.Fields[name]
	return ok
}

// Get возвращает значение поля. Для отсутствующего поля — пустая строка.
func (n *Note) Get(name string) string {
	return n.Fields[name]
}

// Set записывает значение в существующее поле заметки.
// Поля, которых нет в активном наборе, не создаются — запись игнорируется.
func (n *Note) Set(name, value string) {
	if _, ok := n.Fields[name]; !ok {
		return
	}
	n.Fields[name] = value
	n.dirty = true
}

// Dirty сообщает, были ли изменения через Set после загрузки.
func (n *Note) Dirty() bool {
	return n.dirty
}

// ResetDirty сбрасывает флаг изменений (после сохранения).
func (n *Note) ResetDirty() {
	n.dirty = false
}

// DictionaryEntry — словарная статья, построенная из лексикона.
// Senses хранит определения по номерам смыслов, начиная с 1,
// в виде "N: gloss, gloss". Статья неизменяема после построения индекса.
type DictionaryEntry struct {
	// Surface — форма-ключ (запись в кандзи, либо чтение,
	// если у статьи нет записи в кандзи).
	Surface string
	// Reading — чтение каной (первое r_ele/reb статьи).
	Reading string
	// PartsOfSpeech — сырой текст тегов частей речи, склеенный через "; ".
	PartsOfSpeech string
	// Senses — определения по номерам смыслов (1-based).
	Senses map[int]string
}

// FuriganaSegment — один сегмент руби-разметки: текст и, если сегмент
// содержит кандзи, его чтение. Для сегментов без чтения Reading пуст.
type FuriganaSegment struct {
	Text    string
	Reading string
}

// FuriganaEntry — последовательность сегментов для одного слова.
type FuriganaEntry struct {
	Text     string
	Segments []FuriganaSegment
}

// Sentence — пример употребления из корпуса предложений.
type Sentence struct {
	Japanese string
	English  string
}

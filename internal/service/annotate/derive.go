package annotate

import (
	"context"
	"strings"

	"github.com/heartmarshall/myjapanese/internal/furigana"
	"github.com/heartmarshall/myjapanese/internal/grammar"
	"github.com/heartmarshall/myjapanese/internal/jmdict"
	"github.com/heartmarshall/myjapanese/internal/model"
	"github.com/heartmarshall/myjapanese/internal/romaji"
)

// lineBreak — разделитель строк в значениях полей: поля карточек
// хранят HTML.
const lineBreak = "<br>"

// Derive строит производные поля для заметки. Каждый шаг вывода
// включается, только если его поле назначения настроено и присутствует
// в заметке; отсутствие слова в словаре или индексе фуриганы — не
// ошибка, а пустой вывод. Ошибки аудиосервиса гасятся здесь же:
// за границу вывода они не выходят.
func (s *Service) Derive(ctx context.Context, note *model.Note) *DerivedFields {
	derived := newDerivedFields()

	word := strings.TrimSpace(note.Get(s.mapping.Source))
	if word == "" || !note.HasField(s.mapping.Source) {
		return derived
	}

	s.deriveFurigana(derived, note, word)

	// Группа, зависящая от словаря: определения, кана, часть речи и
	// спряжения строятся от одной статьи. Нет статьи — нет группы.
	var kana string
	if entry, ok := s.dict.Lookup(word); ok {
		kana = entry.Reading
		s.deriveMeanings(derived, note, entry)
		s.setFill(derived, note, s.mapping.Kana, entry.Reading)

		c := grammar.Classify(word, entry.PartsOfSpeech)
		s.setFill(derived, note, s.mapping.WordType, c.Label())
		s.deriveConjugations(derived, note, c)
	}

	s.deriveSentences(derived, note, word)

	// Кана, доступная на этот момент: свежая из словаря или уже
	// записанная в заметке.
	if kana == "" {
		kana = note.Get(s.mapping.Kana)
	}
	s.deriveRomaji(derived, note, kana)

	s.deriveAudio(ctx, derived, note, word, kana)

	return derived
}

// deriveFurigana кладет разметку руби из индекса; при промахе и
// настроенном фолбэке разметка строится морфологическим разбором.
func (s *Service) deriveFurigana(derived *DerivedFields, note *model.Note, word string) {
	dest := s.mapping.Furigana
	if dest == "" || !note.HasField(dest) {
		return
	}

	ruby, ok := s.furigana.Lookup(word)
	if !ok && s.fallback != nil {
		ruby = furigana.Render(s.fallback.Segments(word))
	}
	s.setFill(derived, note, dest, ruby)
}

// deriveMeanings раскладывает определения по полям. При настроенных
// основном поле и поле альтернатив первое определение идет в основное
// без порядкового префикса "1: ", остальные — в альтернативы; иначе
// все определения с префиксами идут списком в основное поле.
func (s *Service) deriveMeanings(derived *DerivedFields, note *model.Note, entry model.DictionaryEntry) {
	dest := s.mapping.Meaning
	if dest == "" || !note.HasField(dest) {
		return
	}

	senses := jmdict.Senses(entry, s.mapping.NumDefinitions)
	if len(senses) == 0 {
		return
	}

	altDest := s.mapping.Alternates
	if altDest != "" && note.HasField(altDest) {
		s.setFill(derived, note, dest, strings.TrimPrefix(senses[0], "1: "))
		s.setFill(derived, note, altDest, strings.Join(senses[1:], lineBreak))
		return
	}

	s.setFill(derived, note, dest, strings.Join(senses, lineBreak))
}

// deriveConjugations кладет спрягаемые формы в их поля назначения.
// Формы пишутся в Replace: исходное слово могло измениться, и старое
// спряжение должно быть перезаписано.
func (s *Service) deriveConjugations(derived *DerivedFields, note *model.Note, c grammar.Classification) {
	forms := grammar.Conjugate(c)
	if len(forms) == 0 {
		return
	}

	for form, value := range forms {
		dest := s.mapping.Forms[form]
		if dest == "" || !note.HasField(dest) || value == "" {
			continue
		}
		derived.Replace[dest] = value
	}
}

// deriveSentences ищет примеры употребления. Без настроенного поля
// назначения корпус не опрашивается.
func (s *Service) deriveSentences(derived *DerivedFields, note *model.Note, word string) {
	dest := s.mapping.Sentences
	if s.sentences == nil || dest == "" || !note.HasField(dest) {
		return
	}
	s.setFill(derived, note, dest, s.sentences.Lookup(word, s.mapping.NumSentences))
}

// deriveRomaji транслитерирует кану. Без настроенного поля назначения
// транслитерация не выполняется.
func (s *Service) deriveRomaji(derived *DerivedFields, note *model.Note, kana string) {
	dest := s.mapping.Romaji
	if dest == "" || !note.HasField(dest) {
		return
	}
	s.setFill(derived, note, dest, romaji.ToRomaji(kana))
}

// deriveAudio запрашивает аудио произношения. Поле, уже занятое
// значением, не трогается: повторное скачивание клипа бессмысленно.
func (s *Service) deriveAudio(ctx context.Context, derived *DerivedFields, note *model.Note, word, kana string) {
	dest := s.mapping.Audio
	if s.audio == nil || dest == "" || !note.HasField(dest) {
		return
	}
	if note.Get(dest) != "" {
		return
	}

	sound, err := s.audio.Fetch(ctx, word, kana)
	if err != nil {
		s.log.Warn("не удалось получить аудио", "word", word, "error", err)
		return
	}
	s.setFill(derived, note, dest, sound)
}

// setFill кладет непустое значение в Fill, если поле назначения
// настроено и присутствует в заметке.
func (s *Service) setFill(derived *DerivedFields, note *model.Note, dest, value string) {
	if dest == "" || !note.HasField(dest) || value == "" {
		return
	}
	derived.Fill[dest] = value
}

package annotate

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/myjapanese/internal/database/repository"
	"github.com/heartmarshall/myjapanese/internal/database/testutil"
	"github.com/heartmarshall/myjapanese/internal/grammar"
	"github.com/heartmarshall/myjapanese/internal/model"
)

// fakeDict — словарный индекс на фикстурах.
type fakeDict map[string]model.DictionaryEntry

func (d fakeDict) Lookup(word string) (model.DictionaryEntry, bool) {
	e, ok := d[word]
	return e, ok
}

// fakeFurigana — индекс фуриганы на фикстурах.
type fakeFurigana map[string]string

func (f fakeFurigana) Lookup(word string) (string, bool) {
	v, ok := f[word]
	return v, ok
}

type fakeSentences map[string]string

func (f fakeSentences) Lookup(word string, limit int) string {
	if limit <= 0 {
		return ""
	}
	return f[word]
}

// countingSentences фиксирует обращения к корпусу.
type countingSentences struct {
	result string
	calls  int
}

func (f *countingSentences) Lookup(word string, limit int) string {
	f.calls++
	return f.result
}

// fakeAudio фиксирует вызовы и отдает заранее заданный результат.
type fakeAudio struct {
	result string
	err    error
	calls  int
}

func (f *fakeAudio) Fetch(ctx context.Context, word, kana string) (string, error) {
	f.calls++
	return f.result, f.err
}

func defaultMapping() Mapping {
	return Mapping{
		Source:     "Expression",
		Furigana:   "Furigana",
		Kana:       "Reading",
		Romaji:     "Romaji",
		WordType:   "WordType",
		Meaning:    "Meaning",
		Alternates: "Alternates",
		Sentences:  "Sentences",
		Audio:      "Audio",
		Forms: map[grammar.Form]string{
			grammar.FormMasu:        "Masu",
			grammar.FormTe:          "Te",
			grammar.FormPast:        "Past",
			grammar.FormNegative:    "Negative",
			grammar.FormPotential:   "Potential",
			grammar.FormPassive:     "Passive",
			grammar.FormConditional: "Conditional",
			grammar.FormVolitional:  "Volitional",
			grammar.FormDesire:      "Desire",
			grammar.FormImperative:  "Imperative",
		},
		NumDefinitions: 5,
		NumSentences:   2,
	}
}

func taberuEntry() model.DictionaryEntry {
	return model.DictionaryEntry{
		Surface:       "食べる",
		Reading:       "たべる",
		PartsOfSpeech: "Ichidan verb; transitive verb",
		Senses: map[int]string{
			1: "1: to eat",
			2: "2: to live on",
			3: "3: to erode",
		},
	}
}

func newNote(fields map[string]string) *model.Note {
	return &model.Note{
		ID:     uuid.New(),
		Deck:   "Japanese::Vocab",
		Fields: fields,
	}
}

// fullNote возвращает заметку со всеми полями назначения.
func fullNote(word string) *model.Note {
	fields := map[string]string{
		"Expression": word,
		"Furigana":   "", "Reading": "", "Romaji": "", "WordType": "",
		"Meaning": "", "Alternates": "", "Sentences": "", "Audio": "",
		"Masu": "", "Te": "", "Past": "", "Negative": "", "Potential": "",
		"Passive": "", "Conditional": "", "Volitional": "", "Desire": "",
		"Imperative": "",
	}
	return newNote(fields)
}

func newTestService(t *testing.T, deps Deps) *Service {
	t.Helper()

	if deps.Repos == nil {
		q, _ := testutil.NewMockQuerier(t)
		deps.Repos = repository.NewRegistry(q)
	}
	if deps.Mapping.Source == "" {
		deps.Mapping = defaultMapping()
	}
	if deps.Dict == nil {
		deps.Dict = fakeDict{"食べる": taberuEntry()}
	}
	if deps.Furigana == nil {
		deps.Furigana = fakeFurigana{"食べる": "食[た]べる"}
	}

	s, err := NewService(deps)
	require.NoError(t, err)
	return s
}

func TestDerive_FullPipeline(t *testing.T) {
	s := newTestService(t, Deps{
		Sentences: fakeSentences{"食べる": "毎朝パンを食べる。<br>I eat bread every morning."},
	})

	note := fullNote("食べる")
	derived := s.Derive(context.Background(), note)

	assert.Equal(t, "食[た]べる", derived.Fill["Furigana"])
	assert.Equal(t, "たべる", derived.Fill["Reading"])
	assert.Equal(t, "taberu", derived.Fill["Romaji"])
	assert.Equal(t, "Transitive ichidan verb", derived.Fill["WordType"])
	assert.Equal(t, "to eat", derived.Fill["Meaning"])
	assert.Equal(t, "2: to live on<br>3: to erode", derived.Fill["Alternates"])
	assert.Equal(t, "毎朝パンを食べる。<br>I eat bread every morning.", derived.Fill["Sentences"])

	assert.Equal(t, "食べます", derived.Replace["Masu"])
	assert.Equal(t, "食べて", derived.Replace["Te"])
	assert.Len(t, derived.Replace, 10)
}

func TestDerive_DictionaryMissSkipsGroup(t *testing.T) {
	s := newTestService(t, Deps{
		Dict:     fakeDict{},
		Furigana: fakeFurigana{"謎語": "謎[なぞ]語[ご]"},
	})

	note := fullNote("謎語")
	derived := s.Derive(context.Background(), note)

	// Фуригана не зависит от словаря и строится, словарная группа
	// (определения, кана, часть речи, спряжения) — нет.
	assert.Equal(t, "謎[なぞ]語[ご]", derived.Fill["Furigana"])
	assert.NotContains(t, derived.Fill, "Reading")
	assert.NotContains(t, derived.Fill, "Meaning")
	assert.NotContains(t, derived.Fill, "WordType")
	assert.Empty(t, derived.Replace)
}

func TestDerive_MeaningsWithoutAlternatesField(t *testing.T) {
	mapping := defaultMapping()
	mapping.Alternates = ""
	s := newTestService(t, Deps{Mapping: mapping})

	note := fullNote("食べる")
	derived := s.Derive(context.Background(), note)

	// Без поля альтернатив все определения с префиксами идут списком.
	assert.Equal(t, "1: to eat<br>2: to live on<br>3: to erode", derived.Fill["Meaning"])
	assert.NotContains(t, derived.Fill, "Alternates")
}

func TestDerive_RomajiFromExistingKana(t *testing.T) {
	s := newTestService(t, Deps{Dict: fakeDict{}, Furigana: fakeFurigana{}})

	note := fullNote("謎語")
	note.Fields["Reading"] = "なぞご"

	derived := s.Derive(context.Background(), note)

	// Словарь промахнулся, но кана уже записана в заметке.
	assert.Equal(t, "nazogo", derived.Fill["Romaji"])
}

func TestDerive_MissingDestinationFieldsSkipped(t *testing.T) {
	s := newTestService(t, Deps{})

	// В заметке нет полей назначения словарной группы.
	note := newNote(map[string]string{
		"Expression": "食べる",
		"Furigana":   "",
	})

	derived := s.Derive(context.Background(), note)

	assert.Equal(t, "食[た]べる", derived.Fill["Furigana"])
	assert.NotContains(t, derived.Fill, "Reading")
	assert.NotContains(t, derived.Fill, "Romaji")
	assert.NotContains(t, derived.Fill, "Meaning")
	assert.Empty(t, derived.Replace)
}

func TestDerive_SentencesSkippedWithoutDestination(t *testing.T) {
	corpus := &countingSentences{result: "毎朝パンを食べる。<br>I eat bread every morning."}
	s := newTestService(t, Deps{Sentences: corpus})

	note := fullNote("食べる")
	delete(note.Fields, "Sentences")

	derived := s.Derive(context.Background(), note)

	// Без поля назначения корпус даже не опрашивается.
	assert.Zero(t, corpus.calls)
	assert.NotContains(t, derived.Fill, "Sentences")
}

func TestDerive_EmptySourceWord(t *testing.T) {
	s := newTestService(t, Deps{})

	note := fullNote("   ")
	derived := s.Derive(context.Background(), note)

	assert.True(t, derived.Empty())
}

func TestDerive_AudioSkippedWhenOccupied(t *testing.T) {
	provider := &fakeAudio{result: "[sound:new.mp3]"}
	s := newTestService(t, Deps{Audio: provider})

	note := fullNote("食べる")
	note.Fields["Audio"] = "[sound:old.mp3]"

	derived := s.Derive(context.Background(), note)

	assert.Zero(t, provider.calls)
	assert.NotContains(t, derived.Fill, "Audio")
}

func TestDerive_AudioErrorRecovered(t *testing.T) {
	provider := &fakeAudio{err: assert.AnError}
	s := newTestService(t, Deps{Audio: provider})

	note := fullNote("食べる")
	derived := s.Derive(context.Background(), note)

	// Сбой аудиосервиса не валит вывод: остальные поля на месте.
	assert.NotContains(t, derived.Fill, "Audio")
	assert.Equal(t, "たべる", derived.Fill["Reading"])
}

func TestDerive_AudioFetched(t *testing.T) {
	provider := &fakeAudio{result: "[sound:食べる_たべる.mp3]"}
	s := newTestService(t, Deps{Audio: provider})

	note := fullNote("食べる")
	derived := s.Derive(context.Background(), note)

	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, "[sound:食べる_たべる.mp3]", derived.Fill["Audio"])
}

func TestApply_FillIfEmptyIdempotence(t *testing.T) {
	derived := &DerivedFields{
		Fill:    map[string]string{"Reading": "たべる", "Meaning": "to eat"},
		Replace: map[string]string{"Masu": "食べます"},
	}

	note := fullNote("食べる")

	changed := Apply(note, derived)
	assert.True(t, changed)
	first := map[string]string{}
	for k, v := range note.Fields {
		first[k] = v
	}

	// Повторное применение тех же значений ничего не меняет.
	changed = Apply(note, derived)
	assert.False(t, changed)
	assert.Equal(t, first, note.Fields)
}

func TestApply_FillDoesNotOverwriteManualEdit(t *testing.T) {
	derived := &DerivedFields{
		Fill:    map[string]string{"Meaning": "to eat"},
		Replace: map[string]string{},
	}

	note := fullNote("食べる")
	note.Fields["Meaning"] = "my own wording"

	changed := Apply(note, derived)

	assert.False(t, changed)
	assert.Equal(t, "my own wording", note.Fields["Meaning"])
}

func TestApply_ReplaceIfDifferent(t *testing.T) {
	note := fullNote("食べる")
	note.Fields["Masu"] = "古います"

	derived := &DerivedFields{
		Fill:    map[string]string{},
		Replace: map[string]string{"Masu": "食べます"},
	}

	assert.True(t, Apply(note, derived))
	assert.Equal(t, "食べます", note.Fields["Masu"])

	// Стабильность: то же значение второй раз — без изменений.
	assert.False(t, Apply(note, derived))
}

func TestApply_SkipsFieldsOutsideRecord(t *testing.T) {
	note := newNote(map[string]string{"Expression": "食べる"})

	derived := &DerivedFields{
		Fill:    map[string]string{"Meaning": "to eat"},
		Replace: map[string]string{"Masu": "食べます"},
	}

	assert.False(t, Apply(note, derived))
	assert.NotContains(t, note.Fields, "Meaning")
	assert.NotContains(t, note.Fields, "Masu")
}

// Package reading строит чтения слов морфологическим разбором, когда
// слова нет в готовом индексе фуриганы. Разбор делает kagome со
// словарем IPA; сегменты затем рендерятся тем же рендерером руби,
// что и сегменты индекса.
package reading

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/heartmarshall/myjapanese/internal/model"
)

// Tokenizer оборачивает kagome-токенизатор. Создание дорогое
// (загрузка словаря), экземпляр создается один раз и безопасен для
// конкурентного использования.
type Tokenizer struct {
	t *tokenizer.Tokenizer
}

// NewTokenizer загружает словарь IPA и создает токенизатор.
func NewTokenizer() (*Tokenizer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("создание токенизатора: %w", err)
	}
	return &Tokenizer{t: t}, nil
}

// Segments разбивает слово на сегменты фуриганы: токены с кандзи
// получают чтение хираганой, остальные остаются без чтения.
func (tk *Tokenizer) Segments(word string) []model.FuriganaSegment {
	if word == "" {
		return nil
	}

	toks := tk.t.Tokenize(word)
	segments := make([]model.FuriganaSegment, 0, len(toks))

	for _, kt := range toks {
		seg := model.FuriganaSegment{Text: kt.Surface}
		// kagome отдает чтения катаканой.
		if r, ok := kt.Reading(); ok && containsKanji(kt.Surface) {
			seg.Reading = toHiragana(r)
		}
		segments = append(segments, seg)
	}

	return segments
}

// containsKanji сообщает, есть ли в строке хотя бы один кандзи.
func containsKanji(s string) bool {
	for _, r := range s {
		if (r >= 0x4E00 && r <= 0x9FFF) || r == '々' {
			return true
		}
	}
	return false
}

// toHiragana переводит катакану в хирагану; прочие знаки не меняются.
func toHiragana(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'ァ' && r <= 'ヶ' {
			r -= 0x60
		}
		b.WriteRune(r)
	}
	return b.String()
}

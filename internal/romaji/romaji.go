// Package romaji транслитерирует кану в ромадзи по системе Хэпбёрна.
// Катакана нормализуется в хирагану перед преобразованием; символы вне
// каны проходят без изменений.
package romaji

import (
	"strings"
	"unicode/utf8"
)

const (
	sokuon    = 'っ'
	syllabicN = 'ん'
	longDash  = 'ー'
)

// ToRomaji транслитерирует строку каны в ромадзи.
//
// Контекстные правила:
//   - っ удваивает первую согласную следующего слога (っち даёт tch);
//   - ん даёт n, перед гласной или слогом на y добавляется апостроф
//     (きんえん — kin'en, ほんや — hon'ya);
//   - ー повторяет последнюю записанную гласную (ラーメン — raamen).
func ToRomaji(s string) string {
	runes := []rune(s)
	for i := range runes {
		runes[i] = toHiragana(runes[i])
	}

	var b strings.Builder
	b.Grow(len(s))

	pendingSokuon := false

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch r {
		case sokuon:
			pendingSokuon = true
			continue
		case syllabicN:
			b.WriteByte('n')
			if i+1 < len(runes) && needsApostrophe(runes[i+1]) {
				b.WriteByte('\'')
			}
			continue
		case longDash:
			if v, ok := lastVowel(b.String()); ok {
				b.WriteRune(v)
			} else {
				b.WriteByte('-')
			}
			continue
		}

		var syl string
		if i+1 < len(runes) {
			if d, ok := digraphs[string([]rune{r, runes[i+1]})]; ok {
				syl = d
				i++
			}
		}
		if syl == "" {
			m, ok := monographs[r]
			if !ok {
				if pendingSokuon {
					b.WriteRune(sokuon)
					pendingSokuon = false
				}
				b.WriteRune(r)
				continue
			}
			syl = m
		}

		if pendingSokuon {
			pendingSokuon = false
			if strings.HasPrefix(syl, "ch") {
				b.WriteByte('t')
			} else {
				b.WriteByte(syl[0])
			}
		}
		b.WriteString(syl)
	}

	if pendingSokuon {
		b.WriteRune(sokuon)
	}

	return b.String()
}

// toHiragana сдвигает знак катакана в соответствующий знак хираганы.
// Знак долготы ー остаётся как есть, он разбирается контекстно.
func toHiragana(r rune) rune {
	if r >= 'ァ' && r <= 'ヶ' {
		return r - 0x60
	}
	return r
}

// needsApostrophe сообщает, требует ли знак после ん апострофа:
// без него n слилось бы со следующей гласной или слогом на y.
func needsApostrophe(r rune) bool {
	switch r {
	case 'あ', 'い', 'う', 'え', 'お', 'や', 'ゆ', 'よ':
		return true
	}
	return false
}

// lastVowel возвращает последнюю записанную гласную, если результат
// уже оканчивается на неё.
func lastVowel(s string) (rune, bool) {
	r, _ := utf8.DecodeLastRuneInString(s)
	switch r {
	case 'a', 'i', 'u', 'e', 'o':
		return r, true
	}
	return 0, false
}

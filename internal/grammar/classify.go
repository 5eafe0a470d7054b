// Package grammar классифицирует японские слова по сырому тексту тегов
// частей речи и спрягает глаголы и прилагательные по классу и окончанию.
package grammar

import "strings"

// Classification — нормализованный результат разбора тегов части речи
// для одного слова. Вычисляется заново на каждый запрос и дальше
// передается по значению; повторного сканирования сырого текста нет.
type Classification struct {
	// Word — поверхностная форма, для которой построена классификация.
	Word string

	Noun        bool
	NaAdjective bool
	IAdjective  bool

	Transitive   bool
	Intransitive bool

	// Verb выставлен, если в тегах вообще упомянут глагол: ворота
	// для спряжения глагольных ветвей.
	Verb    bool
	Ichidan bool
	Godan   bool
	Suru    bool
}

// Подстроки-маркеры в полном тексте тегов JMdict. Сравнение без учета
// регистра: теги приходят как "Ichidan verb", "Godan verb with 'ku' ending",
// "noun or participle which takes the aux. verb suru" и т.п.
const (
	markNoun         = "noun"
	markNaAdjective  = "adjectival noun"
	markIAdjective   = "adjective (keiyoushi)"
	markTransitive   = "transitive verb"
	markIntransitive = "intransitive verb"
	markVerb         = "verb"
	markIchidan      = "ichidan"
	markGodan        = "godan"
	markSuru         = "suru"
)

// Classify строит классификацию слова по сырому тексту тегов частей речи.
// Каждый маркер проверяется независимо: слово может быть одновременно
// существительным и suru-глаголом, переходным и непереходным.
func Classify(word, posText string) Classification {
	lower := strings.ToLower(posText)

	return Classification{
		Word:        word,
		Noun:        strings.Contains(lower, markNoun),
		NaAdjective: strings.Contains(lower, markNaAdjective),
		IAdjective:  strings.Contains(lower, markIAdjective),
		// "intransitive verb" содержит "transitive verb", поэтому
		// переходность определяется по началу строки или по " transitive".
		Transitive:   strings.HasPrefix(lower, markTransitive) || strings.Contains(lower, " "+markTransitive),
		Intransitive: strings.Contains(lower, markIntransitive),
		Verb:         strings.Contains(lower, markVerb),
		Ichidan:      strings.Contains(lower, markIchidan),
		Godan:        strings.Contains(lower, markGodan),
		Suru:         strings.Contains(lower, markSuru),
	}
}

// lineBreak — разделитель строк в значениях полей: поля карточек
// хранят HTML.
const lineBreak = "<br>"

// Label строит человекочитаемую метку части речи. Совпавшие метки
// склеиваются через <br>; метки переходности приклеиваются к следующей
// глагольной метке в той же строке ("Transitive ichidan verb").
func (c Classification) Label() string {
	var b strings.Builder

	if c.Noun {
		b.WriteString("Noun" + lineBreak)
	}
	if c.NaAdjective {
		b.WriteString("na-adjective" + lineBreak)
	}
	if c.IAdjective {
		b.WriteString("i-adjective" + lineBreak)
	}
	if c.Transitive {
		b.WriteString("Transitive ")
		if c.Intransitive {
			b.WriteString("and intransitive ")
		}
	} else if c.Intransitive {
		b.WriteString("Intransitive ")
	}
	if c.Ichidan {
		b.WriteString("ichidan verb" + lineBreak)
	}
	if c.Godan {
		b.WriteString("godan verb with '" + lastRune(c.Word) + "' ending" + lineBreak)
	}
	if c.Suru {
		b.WriteString("suru verb " + c.Word + "する" + lineBreak)
	}

	return strings.TrimSuffix(strings.TrimSpace(b.String()), lineBreak)
}

// lastRune возвращает последний символ слова (пустая строка для пустого).
func lastRune(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return ""
	}
	return string(runes[len(runes)-1])
}

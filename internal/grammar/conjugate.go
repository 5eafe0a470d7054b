package grammar

import "strings"

// Form — имя спрягаемой формы.
type Form string

const (
	FormMasu        Form = "masu"
	FormTe          Form = "te"
	FormPast        Form = "past"
	FormNegative    Form = "negative"
	FormPotential   Form = "potential"
	FormPassive     Form = "passive"
	FormConditional Form = "conditional"
	FormVolitional  Form = "volitional"
	FormDesire      Form = "desire"
	FormImperative  Form = "imperative"
)

// AllForms перечисляет формы в каноническом порядке.
var AllForms = []Form{
	FormMasu,
	FormTe,
	FormPast,
	FormNegative,
	FormPotential,
	FormPassive,
	FormConditional,
	FormVolitional,
	FormDesire,
	FormImperative,
}

// Forms — разреженное отображение "форма -> значение". Форма присутствует
// только если она применима к классу слова; неприменимые формы
// отсутствуют, а не пусты.
type Forms map[Form]string

// variantSep разделяет равноправные варианты одной формы
// (например "食べない・食べなかった").
const variantSep = "・"

// Conjugate спрягает слово по его классификации. Неспрягаемые классы
// (существительные, na-прилагательные) дают пустой результат.
//
// Порядок ветвей фиксирован: сперва словарные исключения 来る и する,
// затем ichidan, godan, suru-составные, затем i-прилагательные.
func Conjugate(c Classification) Forms {
	switch c.Word {
	case "来る":
		return kuruForms()
	case "する":
		return suruForms("")
	}

	if c.Verb {
		switch {
		case c.Ichidan:
			return ichidanForms(strings.TrimSuffix(c.Word, "る"))
		case c.Godan:
			return godanForms(c.Word)
		case c.Suru:
			// Словарные статьи непоследовательны: часть включает
			// хвостовое する в поверхностную форму, часть нет.
			return suruForms(strings.TrimSuffix(c.Word, "する"))
		}
		return nil
	}

	if c.IAdjective {
		return iAdjectiveForms(c.Word)
	}

	return nil
}

// ichidanForms спрягает ichidan-глагол: основа — слово без хвостового る,
// суффиксы фиксированы для всех форм.
func ichidanForms(stem string) Forms {
	return Forms{
		FormMasu:        stem + "ます",
		FormTe:          stem + "て",
		FormPast:        stem + "た",
		FormNegative:    stem + "ない" + variantSep + stem + "なかった",
		FormPotential:   stem + "れる",
		FormPassive:     stem + "られる",
		FormConditional: stem + "れば" + variantSep + stem + "たら",
		FormVolitional:  stem + "よう",
		FormDesire:      stem + "たい",
		FormImperative:  stem + "ろ" + variantSep + stem + "てください" + variantSep + stem + "なさい",
	}
}

// godanSuffixes — фиксированная строка суффиксов одного класса окончаний
// godan-глаголов: ряды и-/а-/э-/о- плюс эвфонические те- и та-формы.
type godanSuffixes struct {
	i    string
	a    string
	e    string
	o    string
	te   string
	past string
}

// godanTable покрывает девять классов окончаний godan-глаголов.
var godanTable = map[rune]godanSuffixes{
	'す': {i: "し", a: "さ", e: "せ", o: "そ", te: "して", past: "した"},
	'る': {i: "り", a: "ら", e: "れ", o: "ろ", te: "って", past: "った"},
	'む': {i: "み", a: "ま", e: "め", o: "も", te: "んで", past: "んだ"},
	'ぶ': {i: "び", a: "ば", e: "べ", o: "ぼ", te: "んで", past: "んだ"},
	'ぬ': {i: "に", a: "な", e: "ね", o: "の", te: "んで", past: "んだ"},
	'つ': {i: "ち", a: "た", e: "て", o: "と", te: "って", past: "った"},
	'く': {i: "き", a: "か", e: "け", o: "こ", te: "いて", past: "いた"},
	'ぐ': {i: "ぎ", a: "が", e: "げ", o: "ご", te: "いで", past: "いだ"},
	'う': {i: "い", a: "わ", e: "え", o: "お", te: "って", past: "った"},
}

// godanForms спрягает godan-глагол по последнему символу слова.
// Слово 行く — документированное исключение: его те- и та-формы идут
// по образцу う/つ/る (行って/行った), а не по регулярному く-образцу.
func godanForms(word string) Forms {
	runes := []rune(word)
	if len(runes) < 2 {
		return nil
	}
	ending := runes[len(runes)-1]
	stem := string(runes[:len(runes)-1])

	sfx, ok := godanTable[ending]
	if !ok {
		return nil
	}

	te := sfx.te
	past := sfx.past
	if ending == 'く' && stem == "行" {
		te = "って"
		past = "った"
	}

	return Forms{
		FormMasu:        stem + sfx.i + "ます",
		FormTe:          stem + te,
		FormPast:        stem + past,
		FormNegative:    stem + sfx.a + "ない" + variantSep + stem + sfx.a + "なかった",
		FormPotential:   stem + sfx.e + "る",
		FormPassive:     stem + sfx.a + "れる",
		FormConditional: stem + sfx.e + "ば" + variantSep + stem + past + "ら",
		FormVolitional:  stem + sfx.o + "う",
		FormDesire:      stem + sfx.i + "たい",
		FormImperative:  stem + sfx.e + variantSep + stem + te + "ください" + variantSep + stem + sfx.i + "なさい",
	}
}

// suruForms спрягает suru-глагол: таблица する, приставленная к основе.
// Для самого する основа пуста.
func suruForms(stem string) Forms {
	return Forms{
		FormMasu:        stem + "します",
		FormTe:          stem + "して",
		FormPast:        stem + "した",
		FormNegative:    stem + "しない" + variantSep + stem + "しなかった",
		FormPotential:   stem + "できる",
		FormPassive:     stem + "される",
		FormConditional: stem + "すれば" + variantSep + stem + "したら",
		FormVolitional:  stem + "しよう",
		FormDesire:      stem + "したい",
		FormImperative:  stem + "しろ" + variantSep + stem + "してください" + variantSep + stem + "しなさい",
	}
}

// kuruForms — жестко заданная таблица неправильного глагола 来る.
// Чтения основы меняются по формам, поэтому значения несут
// руби-аннотации.
func kuruForms() Forms {
	return Forms{
		FormMasu:        "来[き]ます",
		FormTe:          "来[き]て",
		FormPast:        "来[き]た",
		FormNegative:    "来[こ]ない" + variantSep + "来[こ]なかった",
		FormPotential:   "来[こ]られる",
		FormPassive:     "来[こ]られる",
		FormConditional: "来[く]れば" + variantSep + "来[き]たら",
		FormVolitional:  "来[こ]よう",
		FormDesire:      "来[き]たい",
		FormImperative:  "来[こ]い" + variantSep + "来[き]てください" + variantSep + "来[き]なさい",
	}
}

// iAdjectiveForms спрягает i-прилагательное: основа — слово без
// хвостового い. Единственное исключение いい спрягается от основы よ
// (よくて/よかった/よくない).
func iAdjectiveForms(word string) Forms {
	stem := strings.TrimSuffix(word, "い")
	if word == "いい" {
		stem = "よ"
	}
	return Forms{
		FormTe:       stem + "くて",
		FormPast:     stem + "かった",
		FormNegative: stem + "くない" + variantSep + stem + "くなかった",
	}
}

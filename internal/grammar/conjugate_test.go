package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func conjugate(word, posText string) Forms {
	return Conjugate(Classify(word, posText))
}

func TestConjugate_Ichidan(t *testing.T) {
	forms := conjugate("食べる", "Ichidan verb; transitive verb")
	require.NotNil(t, forms)

	assert.Equal(t, Forms{
		FormMasu:        "食べます",
		FormTe:          "食べて",
		FormPast:        "食べた",
		FormNegative:    "食べない・食べなかった",
		FormPotential:   "食べれる",
		FormPassive:     "食べられる",
		FormConditional: "食べれば・食べたら",
		FormVolitional:  "食べよう",
		FormDesire:      "食べたい",
		FormImperative:  "食べろ・食べてください・食べなさい",
	}, forms)
}

func TestConjugate_GodanEndingClasses(t *testing.T) {
	// По одному синтетическому слову на каждый из девяти классов окончаний.
	tests := []struct {
		word string
		masu string
		te   string
		past string
		neg  string
		pot  string
		pass string
		cond string
		vol  string
		tai  string
		imp  string
	}{
		{
			word: "話す",
			masu: "話します", te: "話して", past: "話した",
			neg: "話さない・話さなかった", pot: "話せる", pass: "話される",
			cond: "話せば・話したら", vol: "話そう", tai: "話したい",
			imp: "話せ・話してください・話しなさい",
		},
		{
			word: "取る",
			masu: "取ります", te: "取って", past: "取った",
			neg: "取らない・取らなかった", pot: "取れる", pass: "取られる",
			cond: "取れば・取ったら", vol: "取ろう", tai: "取りたい",
			imp: "取れ・取ってください・取りなさい",
		},
		{
			word: "読む",
			masu: "読みます", te: "読んで", past: "読んだ",
			neg: "読まない・読まなかった", pot: "読める", pass: "読まれる",
			cond: "読めば・読んだら", vol: "読もう", tai: "読みたい",
			imp: "読め・読んでください・読みなさい",
		},
		{
			word: "飛ぶ",
			masu: "飛びます", te: "飛んで", past: "飛んだ",
			neg: "飛ばない・飛ばなかった", pot: "飛べる", pass: "飛ばれる",
			cond: "飛べば・飛んだら", vol: "飛ぼう", tai: "飛びたい",
			imp: "飛べ・飛んでください・飛びなさい",
		},
		{
			word: "死ぬ",
			masu: "死にます", te: "死んで", past: "死んだ",
			neg: "死なない・死ななかった", pot: "死ねる", pass: "死なれる",
			cond: "死ねば・死んだら", vol: "死のう", tai: "死にたい",
			imp: "死ね・死んでください・死になさい",
		},
		{
			word: "待つ",
			masu: "待ちます", te: "待って", past: "待った",
			neg: "待たない・待たなかった", pot: "待てる", pass: "待たれる",
			cond: "待てば・待ったら", vol: "待とう", tai: "待ちたい",
			imp: "待て・待ってください・待ちなさい",
		},
		{
			word: "書く",
			masu: "書きます", te: "書いて", past: "書いた",
			neg: "書かない・書かなかった", pot: "書ける", pass: "書かれる",
			cond: "書けば・書いたら", vol: "書こう", tai: "書きたい",
			imp: "書け・書いてください・書きなさい",
		},
		{
			word: "泳ぐ",
			masu: "泳ぎます", te: "泳いで", past: "泳いだ",
			neg: "泳がない・泳がなかった", pot: "泳げる", pass: "泳がれる",
			cond: "泳げば・泳いだら", vol: "泳ごう", tai: "泳ぎたい",
			imp: "泳げ・泳いでください・泳ぎなさい",
		},
		{
			word: "買う",
			masu: "買います", te: "買って", past: "買った",
			neg: "買わない・買わなかった", pot: "買える", pass: "買われる",
			cond: "買えば・買ったら", vol: "買おう", tai: "買いたい",
			imp: "買え・買ってください・買いなさい",
		},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			forms := conjugate(tt.word, "Godan verb")
			require.NotNil(t, forms)

			assert.Equal(t, tt.masu, forms[FormMasu])
			assert.Equal(t, tt.te, forms[FormTe])
			assert.Equal(t, tt.past, forms[FormPast])
			assert.Equal(t, tt.neg, forms[FormNegative])
			assert.Equal(t, tt.pot, forms[FormPotential])
			assert.Equal(t, tt.pass, forms[FormPassive])
			assert.Equal(t, tt.cond, forms[FormConditional])
			assert.Equal(t, tt.vol, forms[FormVolitional])
			assert.Equal(t, tt.tai, forms[FormDesire])
			assert.Equal(t, tt.imp, forms[FormImperative])
		})
	}
}

func TestConjugate_IkuIrregular(t *testing.T) {
	forms := conjugate("行く", "Godan verb - Iku/Yuku special class; intransitive verb")
	require.NotNil(t, forms)

	// Не 行いて/行いた: эвфоника идет по образцу って/った.
	assert.Equal(t, "行って", forms[FormTe])
	assert.Equal(t, "行った", forms[FormPast])
	assert.Equal(t, "行きます", forms[FormMasu])
	assert.Equal(t, "行けば・行ったら", forms[FormConditional])
	assert.Equal(t, "行け・行ってください・行きなさい", forms[FormImperative])
}

func TestConjugate_KuruHardcoded(t *testing.T) {
	forms := conjugate("来る", "Kuru verb - special class")
	require.NotNil(t, forms)

	assert.Equal(t, "来[き]ます", forms[FormMasu])
	assert.Equal(t, "来[き]て", forms[FormTe])
	assert.Equal(t, "来[き]た", forms[FormPast])
	assert.Equal(t, "来[こ]ない・来[こ]なかった", forms[FormNegative])
	assert.Equal(t, "来[こ]られる", forms[FormPotential])
	assert.Equal(t, "来[く]れば・来[き]たら", forms[FormConditional])
	assert.Equal(t, "来[こ]よう", forms[FormVolitional])
	assert.Equal(t, "来[こ]い・来[き]てください・来[き]なさい", forms[FormImperative])
}

func TestConjugate_KuruBypassesGenericPaths(t *testing.T) {
	// Даже с godan-тегами словарное исключение должно победить:
	// общий путь дал бы 来[き]って вместо 来[き]て.
	forms := conjugate("来る", "Godan verb with 'ru' ending")
	require.NotNil(t, forms)
	assert.Equal(t, "来[き]て", forms[FormTe])
}

func TestConjugate_SuruHardcoded(t *testing.T) {
	forms := conjugate("する", "suru verb - included")
	require.NotNil(t, forms)

	assert.Equal(t, "します", forms[FormMasu])
	assert.Equal(t, "して", forms[FormTe])
	assert.Equal(t, "した", forms[FormPast])
	assert.Equal(t, "しない・しなかった", forms[FormNegative])
	assert.Equal(t, "できる", forms[FormPotential])
	assert.Equal(t, "される", forms[FormPassive])
	assert.Equal(t, "すれば・したら", forms[FormConditional])
	assert.Equal(t, "しよう", forms[FormVolitional])
	assert.Equal(t, "したい", forms[FormDesire])
	assert.Equal(t, "しろ・してください・しなさい", forms[FormImperative])
}

func TestConjugate_SuruCompound(t *testing.T) {
	posText := "noun (common) (futsuumeishi); noun or participle which takes the aux. verb suru"

	// Поверхностная форма без する.
	forms := conjugate("勉強", posText)
	require.NotNil(t, forms)
	assert.Equal(t, "勉強します", forms[FormMasu])
	assert.Equal(t, "勉強して", forms[FormTe])
	assert.Equal(t, "勉強できる", forms[FormPotential])

	// Поверхностная форма уже содержит する — хвост срезается.
	forms = conjugate("勉強する", posText)
	require.NotNil(t, forms)
	assert.Equal(t, "勉強します", forms[FormMasu])
	assert.Equal(t, "勉強して", forms[FormTe])
}

func TestConjugate_IAdjective(t *testing.T) {
	forms := conjugate("高い", "adjective (keiyoushi)")
	require.NotNil(t, forms)

	assert.Equal(t, Forms{
		FormTe:       "高くて",
		FormPast:     "高かった",
		FormNegative: "高くない・高くなかった",
	}, forms)

	// Неприменимые формы отсутствуют, а не пусты.
	_, ok := forms[FormMasu]
	assert.False(t, ok)
}

func TestConjugate_IiIrregularStem(t *testing.T) {
	forms := conjugate("いい", "adjective (keiyoushi) - yoi/ii class")
	require.NotNil(t, forms)

	assert.Equal(t, "よくて", forms[FormTe])
	assert.Equal(t, "よかった", forms[FormPast])
	assert.Equal(t, "よくない・よくなかった", forms[FormNegative])
}

func TestConjugate_NonConjugable(t *testing.T) {
	tests := []struct {
		name    string
		word    string
		posText string
	}{
		{name: "plain noun", word: "犬", posText: "noun (common) (futsuumeishi)"},
		{name: "na-adjective", word: "静か", posText: "adjectival nouns or quasi-adjectives (keiyodoshi)"},
		{name: "empty pos text", word: "何か", posText: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, conjugate(tt.word, tt.posText))
		})
	}
}

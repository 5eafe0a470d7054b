package jmdict

import "encoding/xml"

// XML-структуры статьи JMdict. Разбираются потоково, по одной статье,
// чтобы не держать весь документ в памяти.

type entryXML struct {
	XMLName xml.Name   `xml:"entry"`
	Seq     int        `xml:"ent_seq"`
	KEle    []keleXML  `xml:"k_ele"`
	REle    []releXML  `xml:"r_ele"`
	Sense   []senseXML `xml:"sense"`
}

type keleXML struct {
	Keb string `xml:"keb"`
}

type releXML struct {
	Reb string `xml:"reb"`
}

type senseXML struct {
	Pos   []string `xml:"pos"`
	Gloss []string `xml:"gloss"`
}

// posEntities разворачивает DTD-сущности тегов частей речи в их полный
// текст, как он определен во внутреннем DTD JMdict. Классификатор ищет
// подстроки именно в полном тексте ("ichidan", "godan", "transitive verb"),
// поэтому сущности должны быть развернуты при разборе.
//
// Сюда включены все сущности <pos>; прочие классы сущностей (misc, field,
// dial и т.п.) в индекс не попадают, и в нестрогом режиме декодер
// пропускает их как есть.
var posEntities = map[string]string{
	"adj-f":     "noun or verb acting prenominally",
	"adj-i":     "adjective (keiyoushi)",
	"adj-ix":    "adjective (keiyoushi) - yoi/ii class",
	"adj-kari":  "'kari' adjective (archaic)",
	"adj-ku":    "'ku' adjective (archaic)",
	"adj-na":    "adjectival nouns or quasi-adjectives (keiyodoshi)",
	"adj-nari":  "archaic/formal form of na-adjective",
	"adj-no":    "nouns which may take the genitive case particle 'no'",
	"adj-pn":    "pre-noun adjectival (rentaishi)",
	"adj-shiku": "'shiku' adjective (archaic)",
	"adj-t":     "'taru' adjective",
	"adv":       "adverb (fukushi)",
	"adv-to":    "adverb taking the 'to' particle",
	"aux":       "auxiliary",
	"aux-adj":   "auxiliary adjective",
	"aux-v":     "auxiliary verb",
	"conj":      "conjunction",
	"cop":       "copula",
	"ctr":       "counter",
	"exp":       "expressions (phrases, clauses, etc.)",
	"int":       "interjection (kandoushi)",
	"n":         "noun (common) (futsuumeishi)",
	"n-adv":     "adverbial noun (fukushitekimeishi)",
	"n-pr":      "proper noun",
	"n-pref":    "noun, used as a prefix",
	"n-suf":     "noun, used as a suffix",
	"n-t":       "noun (temporal) (jisoumeishi)",
	"num":       "numeric",
	"pn":        "pronoun",
	"pref":      "prefix",
	"prt":       "particle",
	"suf":       "suffix",
	"unc":       "unclassified",
	"v-unspec":  "verb unspecified",
	"v1":        "Ichidan verb",
	"v1-s":      "Ichidan verb - kureru special class",
	"v2a-s":     "Nidan verb with 'u' ending (archaic)",
	"v4h":       "Yodan verb with 'hu/fu' ending (archaic)",
	"v4r":       "Yodan verb with 'ru' ending (archaic)",
	"v5aru":     "Godan verb - -aru special class",
	"v5b":       "Godan verb with 'bu' ending",
	"v5g":       "Godan verb with 'gu' ending",
	"v5k":       "Godan verb with 'ku' ending",
	"v5k-s":     "Godan verb - Iku/Yuku special class",
	"v5m":       "Godan verb with 'mu' ending",
	"v5n":       "Godan verb with 'nu' ending",
	"v5r":       "Godan verb with 'ru' ending",
	"v5r-i":     "Godan verb with 'ru' ending (irregular verb)",
	"v5s":       "Godan verb with 'su' ending",
	"v5t":       "Godan verb with 'tsu' ending",
	"v5u":       "Godan verb with 'u' ending",
	"v5u-s":     "Godan verb with 'u' ending (special class)",
	"vi":        "intransitive verb",
	"vk":        "Kuru verb - special class",
	"vn":        "irregular nu verb",
	"vr":        "irregular ru verb, plain form ends with -ri",
	"vs":        "noun or participle which takes the aux. verb suru",
	"vs-c":      "su verb - precursor to the modern suru",
	"vs-i":      "suru verb - included",
	"vs-s":      "suru verb - special class",
	"vt":        "transitive verb",
	"vz":        "Ichidan verb - zuru verb (alternative form of -jiru verbs)",
}

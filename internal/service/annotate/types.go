package annotate

import (
	"github.com/heartmarshall/myjapanese/internal/grammar"
)

// Mapping связывает логические роли полей с именами полей заметки.
// Пустое имя роли означает, что роль не настроена и соответствующий
// вывод не строится.
type Mapping struct {
	// Source — поле с исходным словом (кандзи/кана).
	Source string

	Furigana   string
	Kana       string
	Romaji     string
	WordType   string
	Meaning    string
	Alternates string
	Sentences  string
	Audio      string

	// Pitch зарезервировано под акцент высоты тона; вывод для него
	// пока не строится.
	Pitch string

	// Forms — назначения спрягаемых форм.
	Forms map[grammar.Form]string

	// NumDefinitions ограничивает число определений из словаря.
	NumDefinitions int
	// NumSentences ограничивает число примеров употребления.
	NumSentences int
}

// DerivedFields — результат одного прогона вывода для заметки.
// Ключи — имена полей назначения; значения пустыми не бывают.
// Строится заново на каждый вызов Derive.
type DerivedFields struct {
	// Fill записывается только в пустые поля: ручные правки
	// пользователя не перетираются.
	Fill map[string]string

	// Replace записывается при любом отличии от текущего значения:
	// спряжения зависят от исходного слова, которое могло измениться.
	Replace map[string]string
}

func newDerivedFields() *DerivedFields {
	return &DerivedFields{
		Fill:    make(map[string]string),
		Replace: make(map[string]string),
	}
}

// Empty сообщает, что прогон не дал ни одного значения.
func (d *DerivedFields) Empty() bool {
	return len(d.Fill) == 0 && len(d.Replace) == 0
}

package impex

import (
	"time"
)

// ExportNote представляет заметку в формате экспорта JSON.
// ID не экспортируется: при импорте в другую базу заметка получает
// новый идентификатор, переносимы только колода и поля.
type ExportNote struct {
	Deck      string            `json:"deck"`
	Fields    map[string]string `json:"fields"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// ImportReport содержит статистику импорта.
type ImportReport struct {
	TotalProcessed int      `json:"totalProcessed"`
	SuccessCount   int      `json:"successCount"`
	SkippedCount   int      `json:"skippedCount"`
	FailedCount    int      `json:"failedCount"`
	Errors         []string `json:"errors"`
}

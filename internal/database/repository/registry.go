package repository

import (
	"github.com/heartmarshall/myjapanese/internal/database"
	"github.com/heartmarshall/myjapanese/internal/database/repository/notes"
)

// Registry объединяет все репозитории приложения.
type Registry struct {
	Notes *notes.NoteRepository
}

// NewRegistry создает реестр репозиториев поверх одного Querier.
func NewRegistry(q database.Querier) *Registry {
	return &Registry{
		Notes: notes.NewNoteRepository(q),
	}
}

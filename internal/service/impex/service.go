package impex

import (
	"fmt"

	"github.com/heartmarshall/myjapanese/internal/database/repository"
)

// Service реализует бизнес-логику для импорта и экспорта заметок.
type Service struct {
	repos *repository.Registry
}

// NewService создает новый экземпляр сервиса импорта/экспорта.
func NewService(repos *repository.Registry) (*Service, error) {
	if repos == nil {
		return nil, fmt.Errorf("repos cannot be nil")
	}

	return &Service{repos: repos}, nil
}

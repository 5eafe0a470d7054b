package service

import (
	"fmt"

	"github.com/heartmarshall/myjapanese/internal/database/repository"
	"github.com/heartmarshall/myjapanese/internal/service/annotate"
	"github.com/heartmarshall/myjapanese/internal/service/impex"
)

// Services объединяет все сервисы приложения.
// Предоставляет единую точку доступа ко всем бизнес-сервисам.
type Services struct {
	Annotate *annotate.Service // Сервис вывода производных полей заметок
	Impex    *impex.Service    // Сервис для импорта/экспорта заметок
}

// Deps содержит зависимости, необходимые для создания сервисов.
type Deps struct {
	Repos    *repository.Registry // Реестр репозиториев для доступа к данным
	Annotate annotate.Deps        // Зависимости сервиса аннотации
}

// NewServices инициализирует и возвращает все сервисы приложения.
// Возвращает ошибку, если не удалось создать сервисы.
func NewServices(deps Deps) (*Services, error) {
	if deps.Repos == nil {
		return nil, fmt.Errorf("repos cannot be nil")
	}

	deps.Annotate.Repos = deps.Repos

	annotateSvc, err := annotate.NewService(deps.Annotate)
	if err != nil {
		return nil, fmt.Errorf("create annotate service: %w", err)
	}

	impexSvc, err := impex.NewService(deps.Repos)
	if err != nil {
		return nil, fmt.Errorf("create impex service: %w", err)
	}

	return &Services{
		Annotate: annotateSvc,
		Impex:    impexSvc,
	}, nil
}

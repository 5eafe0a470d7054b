package database

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound возвращается, когда запрошенная запись отсутствует.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate возвращается при нарушении уникального ограничения.
	ErrDuplicate = errors.New("record already exists")
	// ErrInvalidInput возвращается при некорректных аргументах репозитория.
	ErrInvalidInput = errors.New("invalid input")
)

// pgUniqueViolation — код ошибки PostgreSQL для unique_violation.
const pgUniqueViolation = "23505"

// WrapDBError приводит низкоуровневые ошибки драйвера к ошибкам пакета.
// pgx.ErrNoRows превращается в ErrNotFound, нарушение уникальности — в
// ErrDuplicate, остальные ошибки оборачиваются без изменения смысла.
func WrapDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
	}
	return fmt.Errorf("database: %w", err)
}

// IsNotFoundError сообщает, является ли ошибка отсутствием записи.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError сообщает, является ли ошибка нарушением уникальности.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

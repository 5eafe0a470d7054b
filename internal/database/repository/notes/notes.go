package notes

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/myjapanese/internal/database"
	"github.com/heartmarshall/myjapanese/internal/model"
)

// ============================================================================
// NOTES REPOSITORY
// ============================================================================

const notesTable = "notes"

var notesColumns = []string{"id", "deck", "fields", "created_at", "updated_at"}

// NoteRepository предоставляет методы для работы с заметками.
type NoteRepository struct {
	q database.Querier
}

// NewNoteRepository создаёт новый репозиторий заметок.
func NewNoteRepository(q database.Querier) *NoteRepository {
	return &NoteRepository{q: q}
}

// builder возвращает squirrel-билдер c плейсхолдерами PostgreSQL.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *NoteRepository) selectBuilder() squirrel.SelectBuilder {
	return builder().Select(notesColumns...).From(notesTable)
}

// GetByID получает заметку по ID.
func (r *NoteRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Note, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: id is required", database.ErrInvalidInput)
	}

	query := r.selectBuilder().Where(squirrel.Eq{"id": id})
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, database.WrapDBError(err)
	}

	var note model.Note
	if err := pgxscan.Get(ctx, r.q, &note, sql, args...); err != nil {
		return nil, database.WrapDBError(err)
	}
	return &note, nil
}

// ListAll возвращает все заметки, упорядоченные по времени создания.
func (r *NoteRepository) ListAll(ctx context.Context) ([]model.Note, error) {
	query := r.selectBuilder().OrderBy("created_at ASC")
	return r.list(ctx, query)
}

// ListByDeck возвращает заметки одной колоды.
func (r *NoteRepository) ListByDeck(ctx context.Context, deck string) ([]model.Note, error) {
	if deck == "" {
		return nil, fmt.Errorf("%w: deck is required", database.ErrInvalidInput)
	}
	query := r.selectBuilder().
		Where(squirrel.Eq{"deck": deck}).
		OrderBy("created_at ASC")
	return r.list(ctx, query)
}

func (r *NoteRepository) list(ctx context.Context, query squirrel.SelectBuilder) ([]model.Note, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, database.WrapDBError(err)
	}

	result := []model.Note{}
	if err := pgxscan.Select(ctx, r.q, &result, sql, args...); err != nil {
		return nil, database.WrapDBError(err)
	}
	return result, nil
}

// Create создает новую заметку.
func (r *NoteRepository) Create(ctx context.Context, note *model.Note) (*model.Note, error) {
	if note == nil {
		return nil, fmt.Errorf("%w: note is required", database.ErrInvalidInput)
	}
	if note.Deck == "" {
		return nil, fmt.Errorf("%w: deck is required", database.ErrInvalidInput)
	}
	if note.Fields == nil {
		return nil, fmt.Errorf("%w: fields are required", database.ErrInvalidInput)
	}

	insert := builder().
		Insert(notesTable).
		Columns("deck", "fields").
		Values(note.Deck, note.Fields).
		Suffix("RETURNING " + strings.Join(notesColumns, ", "))

	sql, args, err := insert.ToSql()
	if err != nil {
		return nil, database.WrapDBError(err)
	}

	var created model.Note
	if err := pgxscan.Get(ctx, r.q, &created, sql, args...); err != nil {
		return nil, database.WrapDBError(err)
	}
	return &created, nil
}

// UpdateFields сохраняет измененный набор полей заметки.
func (r *NoteRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]string) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: id is required", database.ErrInvalidInput)
	}
	if fields == nil {
		return fmt.Errorf("%w: fields are required", database.ErrInvalidInput)
	}

	update := builder().
		Update(notesTable).
		Set("fields", fields).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	sql, args, err := update.ToSql()
	if err != nil {
		return database.WrapDBError(err)
	}

	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return database.WrapDBError(err)
	}
	if tag.RowsAffected() == 0 {
		return database.ErrNotFound
	}
	return nil
}

// ExistsByField сообщает, есть ли в колоде заметка, у которой поле
// fieldName имеет значение value. Используется при импорте (skip existing).
func (r *NoteRepository) ExistsByField(ctx context.Context, deck, fieldName, value string) (bool, error) {
	if fieldName == "" {
		return false, fmt.Errorf("%w: field name is required", database.ErrInvalidInput)
	}

	query := builder().
		Select("1").
		From(notesTable).
		Where(squirrel.Eq{"deck": deck}).
		Where(squirrel.Expr("fields->>? = ?", fieldName, value)).
		Limit(1)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, database.WrapDBError(err)
	}

	var one int
	err = r.q.QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		wrapped := database.WrapDBError(err)
		if database.IsNotFoundError(wrapped) {
			return false, nil
		}
		return false, wrapped
	}
	return true, nil
}

// Delete удаляет заметку.
func (r *NoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: id is required", database.ErrInvalidInput)
	}

	del := builder().Delete(notesTable).Where(squirrel.Eq{"id": id})
	sql, args, err := del.ToSql()
	if err != nil {
		return database.WrapDBError(err)
	}

	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return database.WrapDBError(err)
	}
	if tag.RowsAffected() == 0 {
		return database.ErrNotFound
	}
	return nil
}

package impex

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/myjapanese/internal/database/repository"
	"github.com/heartmarshall/myjapanese/internal/database/testutil"
)

var noteColumns = []string{"id", "deck", "fields", "created_at", "updated_at"}

func newTestService(t *testing.T) (*Service, pgxmock.PgxPoolIface) {
	t.Helper()

	querier, mock := testutil.NewMockQuerier(t)
	s, err := NewService(repository.NewRegistry(querier))
	require.NoError(t, err)
	return s, mock
}

func TestExport(t *testing.T) {
	t.Run("exports deck notes", func(t *testing.T) {
		s, mock := newTestService(t)
		now := time.Now()

		fields := map[string]string{"Expression": "食べる", "Reading": "たべる"}
		rows := pgxmock.NewRows(noteColumns).
			AddRow(uuid.New(), "Japanese::Vocab", fields, now, now)
		mock.ExpectQuery(`SELECT`).
			WithArgs(pgxmock.AnyArg()).
			WillReturnRows(rows)

		data, err := s.Export(context.Background(), []string{"Japanese::Vocab"})
		require.NoError(t, err)

		var exported []ExportNote
		require.NoError(t, json.Unmarshal(data, &exported))
		require.Len(t, exported, 1)
		assert.Equal(t, "Japanese::Vocab", exported[0].Deck)
		assert.Equal(t, fields, exported[0].Fields)
		testutil.ExpectationsWereMet(t, mock)
	})

	t.Run("empty base exports empty array", func(t *testing.T) {
		s, mock := newTestService(t)

		mock.ExpectQuery(`SELECT`).
			WillReturnRows(pgxmock.NewRows(noteColumns))

		data, err := s.Export(context.Background(), nil)
		require.NoError(t, err)

		assert.Equal(t, "[]", string(data))
		testutil.ExpectationsWereMet(t, mock)
	})
}

const importFixture = `[
	{"deck": "Japanese::Vocab", "fields": {"Expression": "食べる", "Reading": ""}},
	{"deck": "Japanese::Vocab", "fields": {"Expression": "行く", "Reading": ""}},
	{"deck": "Japanese::Vocab", "fields": {"Reading": "без ключевого поля"}}
]`

func TestImport(t *testing.T) {
	s, mock := newTestService(t)
	now := time.Now()

	// 食べる уже есть в колоде.
	mock.ExpectQuery(`SELECT 1`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(1))

	// 行く — новая заметка: проверка дубликата, затем вставка.
	mock.ExpectQuery(`SELECT 1`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(`INSERT INTO notes`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(noteColumns).
			AddRow(uuid.New(), "Japanese::Vocab", map[string]string{"Expression": "行く", "Reading": ""}, now, now))

	report, err := s.Import(context.Background(), strings.NewReader(importFixture), ImportOptions{
		KeyField: "Expression",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalProcessed)
	assert.Equal(t, 1, report.SuccessCount)
	assert.Equal(t, 1, report.SkippedCount)
	assert.Equal(t, 1, report.FailedCount)
	require.Len(t, report.Errors, 1)
	testutil.ExpectationsWereMet(t, mock)
}

func TestImport_NotAnArray(t *testing.T) {
	s, _ := newTestService(t)

	_, err := s.Import(context.Background(), strings.NewReader(`{"deck": "x"}`), ImportOptions{
		KeyField: "Expression",
	})
	require.Error(t, err)
}

func TestImport_MissingKeyField(t *testing.T) {
	s, _ := newTestService(t)

	_, err := s.Import(context.Background(), strings.NewReader(`[]`), ImportOptions{})
	require.Error(t, err)
}

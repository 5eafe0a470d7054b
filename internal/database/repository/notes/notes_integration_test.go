//go:build integration

package notes

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/myjapanese/internal/database"
	"github.com/heartmarshall/myjapanese/internal/database/testhelper"
	"github.com/heartmarshall/myjapanese/internal/model"
)

func TestNoteRepository_Integration(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := NewNoteRepository(pool)
	ctx := context.Background()

	deck := "integration::" + uuid.NewString()

	created, err := repo.Create(ctx, &model.Note{
		Deck: deck,
		Fields: map[string]string{
			"Expression": "食べる",
			"Meaning":    "",
		},
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, deck, created.Deck)
	assert.Equal(t, "食べる", created.Fields["Expression"])
	assert.False(t, created.CreatedAt.IsZero())

	t.Run("GetByID", func(t *testing.T) {
		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, created.Fields, got.Fields)
	})

	t.Run("GetByID not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, database.ErrNotFound)
	})

	t.Run("ListByDeck", func(t *testing.T) {
		second, err := repo.Create(ctx, &model.Note{
			Deck:   deck,
			Fields: map[string]string{"Expression": "行く"},
		})
		require.NoError(t, err)

		list, err := repo.ListByDeck(ctx, deck)
		require.NoError(t, err)
		require.Len(t, list, 2)
		// created_at ASC
		assert.Equal(t, created.ID, list[0].ID)
		assert.Equal(t, second.ID, list[1].ID)

		empty, err := repo.ListByDeck(ctx, "no-such-deck::"+uuid.NewString())
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("UpdateFields", func(t *testing.T) {
		updated := map[string]string{
			"Expression": "食べる",
			"Meaning":    "to eat",
			"Reading":    "たべる",
		}
		require.NoError(t, repo.UpdateFields(ctx, created.ID, updated))

		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, updated, got.Fields)
		assert.True(t, got.UpdatedAt.After(created.UpdatedAt) || got.UpdatedAt.Equal(created.UpdatedAt))
	})

	t.Run("UpdateFields not found", func(t *testing.T) {
		err := repo.UpdateFields(ctx, uuid.New(), map[string]string{"Expression": "x"})
		assert.ErrorIs(t, err, database.ErrNotFound)
	})

	t.Run("ExistsByField", func(t *testing.T) {
		ok, err := repo.ExistsByField(ctx, deck, "Expression", "食べる")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.ExistsByField(ctx, deck, "Expression", "飲む")
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = repo.ExistsByField(ctx, "other-deck", "Expression", "食べる")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Delete", func(t *testing.T) {
		victim, err := repo.Create(ctx, &model.Note{
			Deck:   deck,
			Fields: map[string]string{"Expression": "消える"},
		})
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, victim.ID))

		_, err = repo.GetByID(ctx, victim.ID)
		assert.ErrorIs(t, err, database.ErrNotFound)

		assert.ErrorIs(t, repo.Delete(ctx, victim.ID), database.ErrNotFound)
	})
}

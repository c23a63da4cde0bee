package messages

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	clock := time.Date(2025, 12, 13, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return s
}

func TestCreate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	m, err := s.Create(ctx, "  Dara ", " Study hard! ")
	require.NoError(t, err)
	assert.Equal(t, "Dara", m.Name)
	assert.Equal(t, "Study hard!", m.Message)
	assert.Equal(t, StatusPending, m.Status)
	_, err = uuid.Parse(m.ID)
	assert.NoError(t, err)
}

func TestCreate_Validation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, "   ", "hello")
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = s.Create(ctx, "Dara", "\n\t")
	assert.ErrorIs(t, err, ErrMessageRequired)

	list, err := s.List(ctx, StatusAll, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestList_NewestFirstWithLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := range 25 {
		_, err := s.Create(ctx, "donor", string(rune('a'+i)))
		require.NoError(t, err)
	}

	list, err := s.List(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, list, DefaultLimit)
	assert.Equal(t, "y", list[0].Message)
	assert.Equal(t, "f", list[len(list)-1].Message)

	list, err = s.List(ctx, StatusAll, 3)
	require.NoError(t, err)
	assert.Len(t, list, 3)
	assert.True(t, list[0].CreatedAt.After(list[1].CreatedAt))
}

func TestList_StatusFilter(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.Create(ctx, "A", "one")
	require.NoError(t, err)
	_, err = s.Create(ctx, "B", "two")
	require.NoError(t, err)
	require.NoError(t, s.SetStatus(ctx, first.ID, StatusApproved))

	approved, err := s.List(ctx, StatusApproved, 10)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, "one", approved[0].Message)

	pending, err := s.List(ctx, StatusPending, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "two", pending[0].Message)
}

func TestSetStatus_Errors(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, s.SetStatus(ctx, "missing", StatusApproved), ErrNotFound)
	assert.ErrorIs(t, s.SetStatus(ctx, "missing", "weird"), ErrInvalidStatus)
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "smiles.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.Create(ctx, "Dara", "hello")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	list, err := s.List(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

package notes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assistant-bot/internal/book"
)

func TestService_TimestampsFromClock(t *testing.T) {
	current := time.Date(2025, time.May, 20, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return current }

	noteBook := book.NewNoteBook()
	service := NewNoteService(noteBook, clock)

	note, err := service.Add("Buy milk", []string{"home"})
	require.NoError(t, err)
	assert.Equal(t, current, note.CreatedAt())
	assert.Equal(t, current, note.UpdatedAt())

	// Сдвигаем часы и редактируем: меняется только UpdatedAt
	created := current
	current = current.Add(time.Hour)

	text := "Buy bread"
	require.NoError(t, service.Edit(note.ID(), &text, nil))

	got, err := service.Get(note.ID())
	require.NoError(t, err)
	assert.Equal(t, created, got.CreatedAt())
	assert.Equal(t, current, got.UpdatedAt())
	assert.Equal(t, "Buy bread", got.Text())
	assert.Equal(t, []string{"home"}, got.Tags())
}

func TestService_TagOperations(t *testing.T) {
	current := time.Date(2025, time.May, 20, 10, 0, 0, 0, time.UTC)
	service := NewNoteService(book.NewNoteBook(), func() time.Time { return current })

	note, err := service.Add("Plan trip", []string{"travel"})
	require.NoError(t, err)

	require.NoError(t, service.AddTags(note.ID(), []string{"Summer", "travel"}))
	got, err := service.Get(note.ID())
	require.NoError(t, err)
	assert.Equal(t, []string{"travel", "summer"}, got.Tags())

	require.NoError(t, service.RemoveTags(note.ID(), []string{"travel"}))
	got, err = service.Get(note.ID())
	require.NoError(t, err)
	assert.Equal(t, []string{"summer"}, got.Tags())

	assert.ErrorIs(t, service.AddTags(99, []string{"x"}), book.ErrNoteNotFound)
}

func TestService_DeleteAndList(t *testing.T) {
	current := time.Date(2025, time.May, 20, 10, 0, 0, 0, time.UTC)
	service := NewNoteService(book.NewNoteBook(), func() time.Time { return current })

	first, err := service.Add("first", nil)
	require.NoError(t, err)
	_, err = service.Add("second", nil)
	require.NoError(t, err)

	require.NoError(t, service.Delete(first.ID()))
	assert.ErrorIs(t, service.Delete(first.ID()), book.ErrNoteNotFound)

	notes, err := service.List(book.SortByCreated, book.SortAsc)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "second", notes[0].Text())
}

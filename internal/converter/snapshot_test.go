package converter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assistant-bot/internal/book"
	"assistant-bot/internal/model"
	"assistant-bot/internal/storage"
)

var savedAt = time.Date(2025, time.May, 20, 12, 0, 0, 0, time.UTC)

func buildBooks(t *testing.T) (*book.AddressBook, *book.NoteBook) {
	t.Helper()

	addressBook := book.NewAddressBook()

	name, err := model.NewName("John Doe")
	require.NoError(t, err)
	record := model.NewRecord(name)
	for _, raw := range []string{"0931234567", "0677654321"} {
		phone, err := model.NewPhone(raw)
		require.NoError(t, err)
		require.NoError(t, record.AddPhone(phone))
	}
	email, err := model.NewEmail("john@example.com")
	require.NoError(t, err)
	record.SetEmail(email)
	birthday, err := model.NewBirthday("20.05.1985", savedAt)
	require.NoError(t, err)
	record.SetBirthday(birthday)
	address, err := model.NewAddress("12 Main St")
	require.NoError(t, err)
	record.SetAddress(address)
	require.NoError(t, addressBook.AddRecord(record))

	bare, err := model.NewName("Mary")
	require.NoError(t, err)
	require.NoError(t, addressBook.AddRecord(model.NewRecord(bare)))

	noteBook := book.NewNoteBook()
	_, err = noteBook.AddNote("Buy milk", []string{"home", "shopping"}, savedAt.Add(-time.Hour))
	require.NoError(t, err)
	second, err := noteBook.AddNote("Call dentist", nil, savedAt.Add(-time.Minute))
	require.NoError(t, err)
	// Удаленный идентификатор не возвращается в оборот
	require.NoError(t, noteBook.DeleteNote(second.ID()))
	_, err = noteBook.AddNote("Plan trip", []string{"travel"}, savedAt)
	require.NoError(t, err)

	return addressBook, noteBook
}

func TestSnapshot_RoundTrip(t *testing.T) {
	addressBook, noteBook := buildBooks(t)

	snapshot := ToSnapshot(addressBook, noteBook, savedAt)
	assert.Equal(t, storage.SnapshotVersion, snapshot.Version)
	assert.NotEmpty(t, snapshot.SnapshotID)

	data, err := storage.Encode(snapshot)
	require.NoError(t, err)

	decoded, err := storage.Decode(data)
	require.NoError(t, err)

	restoredBook, restoredNotes, err := FromSnapshot(decoded)
	require.NoError(t, err)

	// Контакты восстановлены поле в поле, в исходном порядке
	require.Equal(t, addressBook.Len(), restoredBook.Len())
	original := addressBook.Records()
	restored := restoredBook.Records()
	for i := range original {
		assert.Equal(t, original[i].Name().String(), restored[i].Name().String())
		assert.Equal(t, original[i].Phones(), restored[i].Phones())

		origEmail, origErr := original[i].Email()
		restEmail, restErr := restored[i].Email()
		assert.Equal(t, origErr, restErr)
		assert.Equal(t, origEmail, restEmail)

		origBirthday, origErr := original[i].Birthday()
		restBirthday, restErr := restored[i].Birthday()
		assert.Equal(t, origErr, restErr)
		assert.Equal(t, origBirthday, restBirthday)

		origAddress, origErr := original[i].Address()
		restAddress, restErr := restored[i].Address()
		assert.Equal(t, origErr, restErr)
		assert.Equal(t, origAddress, restAddress)
	}

	// Заметки восстановлены вместе с метками времени и счетчиком
	require.Equal(t, noteBook.Len(), restoredNotes.Len())
	originalNotes := noteBook.Notes()
	restoredList := restoredNotes.Notes()
	for i := range originalNotes {
		assert.Equal(t, originalNotes[i].ID(), restoredList[i].ID())
		assert.Equal(t, originalNotes[i].Text(), restoredList[i].Text())
		assert.Equal(t, originalNotes[i].Tags(), restoredList[i].Tags())
		assert.True(t, originalNotes[i].CreatedAt().Equal(restoredList[i].CreatedAt()))
		assert.True(t, originalNotes[i].UpdatedAt().Equal(restoredList[i].UpdatedAt()))
	}
	assert.Equal(t, noteBook.NextID(), restoredNotes.NextID())
}

func TestFromSnapshot_RejectsInvalid(t *testing.T) {
	snapshot := storage.Snapshot{
		Version:    storage.SnapshotVersion,
		SavedAt:    savedAt,
		Contacts:   []storage.Contact{{Name: "John", Phones: []string{"123"}}},
		NextNoteID: 1,
	}
	_, _, err := FromSnapshot(snapshot)
	assert.ErrorIs(t, err, storage.ErrDeserialize)

	snapshot = storage.Snapshot{
		Version:    storage.SnapshotVersion,
		SavedAt:    savedAt,
		Notes:      []storage.Note{{ID: 1, Text: ""}},
		NextNoteID: 2,
	}
	_, _, err = FromSnapshot(snapshot)
	assert.ErrorIs(t, err, storage.ErrDeserialize)

	// Дубликат имени контакта
	snapshot = storage.Snapshot{
		Version:    storage.SnapshotVersion,
		SavedAt:    savedAt,
		Contacts:   []storage.Contact{{Name: "John"}, {Name: "John"}},
		NextNoteID: 1,
	}
	_, _, err = FromSnapshot(snapshot)
	assert.ErrorIs(t, err, storage.ErrDeserialize)
}

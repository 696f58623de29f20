package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assistant-bot/internal/book"
	"assistant-bot/internal/model"
	"assistant-bot/internal/service"
)

// mockContactService мок сервиса контактов на функциональных полях:
// тест задает только нужные методы.
type mockContactService struct {
	addFunc               func(name, phone string) (bool, error)
	getFunc               func(name string) (*model.Record, error)
	listFunc              func() []*model.Record
	deleteFunc            func(name string) error
	searchFunc            func(query string) []*model.Record
	updatePhoneFunc       func(name, oldPhone, newPhone string) error
	removePhoneFunc       func(name, phone string) error
	setBirthdayFunc       func(name, birthday string) error
	birthdayFunc          func(name string) (model.Birthday, error)
	setEmailFunc          func(name, email string) error
	emailFunc             func(name string) (model.Email, error)
	removeEmailFunc       func(name string) error
	setAddressFunc        func(name, address string) error
	removeAddressFunc     func(name string) error
	upcomingBirthdaysFunc func(days int) []book.BirthdayEntry
}

var _ service.ContactService = (*mockContactService)(nil)

func (m *mockContactService) Add(name, phone string) (bool, error) { return m.addFunc(name, phone) }
func (m *mockContactService) Get(name string) (*model.Record, error) {
	return m.getFunc(name)
}
func (m *mockContactService) List() []*model.Record { return m.listFunc() }
func (m *mockContactService) Delete(name string) error { return m.deleteFunc(name) }
func (m *mockContactService) Search(query string) []*model.Record {
	return m.searchFunc(query)
}
func (m *mockContactService) UpdatePhone(name, oldPhone, newPhone string) error {
	return m.updatePhoneFunc(name, oldPhone, newPhone)
}
func (m *mockContactService) RemovePhone(name, phone string) error {
	return m.removePhoneFunc(name, phone)
}
func (m *mockContactService) SetBirthday(name, birthday string) error {
	return m.setBirthdayFunc(name, birthday)
}
func (m *mockContactService) Birthday(name string) (model.Birthday, error) {
	return m.birthdayFunc(name)
}
func (m *mockContactService) SetEmail(name, email string) error {
	return m.setEmailFunc(name, email)
}
func (m *mockContactService) Email(name string) (model.Email, error) {
	return m.emailFunc(name)
}
func (m *mockContactService) RemoveEmail(name string) error { return m.removeEmailFunc(name) }
func (m *mockContactService) SetAddress(name, address string) error {
	return m.setAddressFunc(name, address)
}
func (m *mockContactService) RemoveAddress(name string) error { return m.removeAddressFunc(name) }
func (m *mockContactService) UpcomingBirthdays(days int) []book.BirthdayEntry {
	return m.upcomingBirthdaysFunc(days)
}

// mockNoteService мок сервиса заметок на функциональных полях.
type mockNoteService struct {
	addFunc        func(text string, tags []string) (*model.Note, error)
	getFunc        func(id int) (*model.Note, error)
	editFunc       func(id int, text *string, tags []string) error
	addTagsFunc    func(id int, tags []string) error
	removeTagsFunc func(id int, tags []string) error
	deleteFunc     func(id int) error
	listFunc       func(key book.SortKey, direction book.SortDirection) ([]*model.Note, error)
	searchTextFunc func(query string) []*model.Note
	searchTagsFunc func(tags []string) []*model.Note
}

var _ service.NoteService = (*mockNoteService)(nil)

func (m *mockNoteService) Add(text string, tags []string) (*model.Note, error) {
	return m.addFunc(text, tags)
}
func (m *mockNoteService) Get(id int) (*model.Note, error) { return m.getFunc(id) }
func (m *mockNoteService) Edit(id int, text *string, tags []string) error {
	return m.editFunc(id, text, tags)
}
func (m *mockNoteService) AddTags(id int, tags []string) error {
	return m.addTagsFunc(id, tags)
}
func (m *mockNoteService) RemoveTags(id int, tags []string) error {
	return m.removeTagsFunc(id, tags)
}
func (m *mockNoteService) Delete(id int) error { return m.deleteFunc(id) }
func (m *mockNoteService) List(key book.SortKey, direction book.SortDirection) ([]*model.Note, error) {
	return m.listFunc(key, direction)
}
func (m *mockNoteService) SearchText(query string) []*model.Note {
	return m.searchTextFunc(query)
}
func (m *mockNoteService) SearchTags(tags []string) []*model.Note {
	return m.searchTagsFunc(tags)
}

// mockStatsService мок агрегатора статистики.
type mockStatsService struct {
	topTagsFunc func(n int) []service.TagCount
	summaryFunc func() service.Summary
}

var _ service.StatsService = (*mockStatsService)(nil)

func (m *mockStatsService) TopTags(n int) []service.TagCount { return m.topTagsFunc(n) }
func (m *mockStatsService) Summary() service.Summary { return m.summaryFunc() }

func alwaysConfirm(answer bool) Confirmer {
	return ConfirmerFunc(func(string) bool { return answer })
}

func newTestHandlers(contacts *mockContactService, notes *mockNoteService, confirm Confirmer) *Handlers {
	return NewHandlers(contacts, notes, &mockStatsService{}, confirm, 7)
}

func TestExecute_Hello(t *testing.T) {
	h := newTestHandlers(&mockContactService{}, &mockNoteService{}, alwaysConfirm(true))

	out, mutated, err := h.Execute(CmdHello, nil)

	require.NoError(t, err)
	assert.False(t, mutated)
	assert.Equal(t, "How can I help you?", out)
}

func TestExecute_UnknownCommand(t *testing.T) {
	h := newTestHandlers(&mockContactService{}, &mockNoteService{}, alwaysConfirm(true))

	t.Run("with suggestion", func(t *testing.T) {
		_, _, err := h.Execute("helo", nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), `did you mean "hello"`)
	})

	t.Run("without suggestion", func(t *testing.T) {
		_, _, err := h.Execute("frobnicate", nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "type 'help'")
	})
}

func TestExecute_AddContact(t *testing.T) {
	t.Run("creates contact", func(t *testing.T) {
		// Arrange
		var gotName, gotPhone string
		contacts := &mockContactService{
			addFunc: func(name, phone string) (bool, error) {
				gotName, gotPhone = name, phone
				return true, nil
			},
		}
		h := newTestHandlers(contacts, &mockNoteService{}, alwaysConfirm(true))

		// Act
		out, mutated, err := h.Execute(CmdAddContact, []string{"John", "0931234567"})

		// Assert
		require.NoError(t, err)
		assert.True(t, mutated)
		assert.Equal(t, "Contact added.", out)
		assert.Equal(t, "John", gotName)
		assert.Equal(t, "0931234567", gotPhone)
	})

	t.Run("appends phone to existing contact", func(t *testing.T) {
		contacts := &mockContactService{
			addFunc: func(string, string) (bool, error) { return false, nil },
		}
		h := newTestHandlers(contacts, &mockNoteService{}, alwaysConfirm(true))

		out, mutated, err := h.Execute(CmdAddContact, []string{"John", "0937654321"})

		require.NoError(t, err)
		assert.True(t, mutated)
		assert.Equal(t, "Phone added to existing contact.", out)
	})

	t.Run("propagates validation error", func(t *testing.T) {
		contacts := &mockContactService{
			addFunc: func(string, string) (bool, error) { return false, model.ErrInvalidPhone },
		}
		h := newTestHandlers(contacts, &mockNoteService{}, alwaysConfirm(true))

		_, mutated, err := h.Execute(CmdAddContact, []string{"John", "123"})

		assert.ErrorIs(t, err, model.ErrInvalidPhone)
		assert.False(t, mutated)
	})

	t.Run("usage on wrong argument count", func(t *testing.T) {
		h := newTestHandlers(&mockContactService{}, &mockNoteService{}, alwaysConfirm(true))

		_, _, err := h.Execute(CmdAddContact, []string{"John"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "usage: add <name> <phone>")
	})
}

func TestExecute_DeleteContact(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		deleted := false
		contacts := &mockContactService{
			deleteFunc: func(name string) error {
				deleted = true
				return nil
			},
		}
		h := newTestHandlers(contacts, &mockNoteService{}, alwaysConfirm(true))

		out, mutated, err := h.Execute(CmdDeleteContact, []string{"John"})

		require.NoError(t, err)
		assert.True(t, mutated)
		assert.True(t, deleted)
		assert.Equal(t, "Contact deleted.", out)
	})

	t.Run("cancelled", func(t *testing.T) {
		contacts := &mockContactService{
			deleteFunc: func(string) error {
				t.Fatal("delete must not be called after cancellation")
				return nil
			},
		}
		h := newTestHandlers(contacts, &mockNoteService{}, alwaysConfirm(false))

		out, mutated, err := h.Execute(CmdDeleteContact, []string{"John"})

		require.NoError(t, err)
		assert.False(t, mutated)
		assert.Equal(t, "Cancelled.", out)
	})
}

func TestExecute_UpcomingBirthdays(t *testing.T) {
	t.Run("default window from config", func(t *testing.T) {
		gotDays := 0
		contacts := &mockContactService{
			upcomingBirthdaysFunc: func(days int) []book.BirthdayEntry {
				gotDays = days
				return nil
			},
		}
		h := newTestHandlers(contacts, &mockNoteService{}, alwaysConfirm(true))

		out, mutated, err := h.Execute(CmdBirthdays, nil)

		require.NoError(t, err)
		assert.False(t, mutated)
		assert.Equal(t, 7, gotDays)
		assert.Equal(t, "No birthdays in the next 7 days.", out)
	})

	t.Run("explicit window", func(t *testing.T) {
		gotDays := 0
		contacts := &mockContactService{
			upcomingBirthdaysFunc: func(days int) []book.BirthdayEntry {
				gotDays = days
				return nil
			},
		}
		h := newTestHandlers(contacts, &mockNoteService{}, alwaysConfirm(true))

		_, _, err := h.Execute(CmdBirthdays, []string{"30"})

		require.NoError(t, err)
		assert.Equal(t, 30, gotDays)
	})

	t.Run("rejects negative window", func(t *testing.T) {
		h := newTestHandlers(&mockContactService{}, &mockNoteService{}, alwaysConfirm(true))

		_, _, err := h.Execute(CmdBirthdays, []string{"-1"})

		require.Error(t, err)
	})
}

func TestExecute_AddAddress(t *testing.T) {
	var gotAddress string
	contacts := &mockContactService{
		setAddressFunc: func(name, address string) error {
			gotAddress = address
			return nil
		},
	}
	h := newTestHandlers(contacts, &mockNoteService{}, alwaysConfirm(true))

	_, mutated, err := h.Execute(CmdAddAddress, []string{"John", "1", "Main", "St"})

	require.NoError(t, err)
	assert.True(t, mutated)
	assert.Equal(t, "1 Main St", gotAddress)
}

func TestExecute_AddNote(t *testing.T) {
	now := time.Date(2025, time.May, 20, 12, 0, 0, 0, time.UTC)

	t.Run("splits text and tags", func(t *testing.T) {
		// Arrange
		var gotText string
		var gotTags []string
		notes := &mockNoteService{
			addFunc: func(text string, tags []string) (*model.Note, error) {
				gotText, gotTags = text, tags
				return model.NewNote(1, text, tags, now)
			},
		}
		h := newTestHandlers(&mockContactService{}, notes, alwaysConfirm(true))

		// Act
		out, mutated, err := h.Execute(CmdAddNote, []string{"Buy", "milk", "#home"})

		// Assert
		require.NoError(t, err)
		assert.True(t, mutated)
		assert.Equal(t, "Buy milk", gotText)
		assert.Equal(t, []string{"home"}, gotTags)
		assert.Equal(t, "Note #1 added with tags: home.", out)
	})

	t.Run("without tags", func(t *testing.T) {
		notes := &mockNoteService{
			addFunc: func(text string, tags []string) (*model.Note, error) {
				return model.NewNote(2, text, tags, now)
			},
		}
		h := newTestHandlers(&mockContactService{}, notes, alwaysConfirm(true))

		out, _, err := h.Execute(CmdAddNote, []string{"Just", "text"})

		require.NoError(t, err)
		assert.Equal(t, "Note #2 added.", out)
	})

	t.Run("usage on tags without text", func(t *testing.T) {
		h := newTestHandlers(&mockContactService{}, &mockNoteService{}, alwaysConfirm(true))

		_, _, err := h.Execute(CmdAddNote, []string{"#home"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "usage: add-note")
	})
}

func TestExecute_EditNote(t *testing.T) {
	t.Run("text and tags", func(t *testing.T) {
		var gotID int
		var gotText *string
		var gotTags []string
		notes := &mockNoteService{
			editFunc: func(id int, text *string, tags []string) error {
				gotID, gotText, gotTags = id, text, tags
				return nil
			},
		}
		h := newTestHandlers(&mockContactService{}, notes, alwaysConfirm(true))

		out, mutated, err := h.Execute(CmdEditNote, []string{"3", "New", "text", "#work"})

		require.NoError(t, err)
		assert.True(t, mutated)
		assert.Equal(t, 3, gotID)
		require.NotNil(t, gotText)
		assert.Equal(t, "New text", *gotText)
		assert.Equal(t, []string{"work"}, gotTags)
		assert.Equal(t, "Note #3 updated.", out)
	})

	t.Run("tags only keeps text", func(t *testing.T) {
		var gotText *string
		notes := &mockNoteService{
			editFunc: func(id int, text *string, tags []string) error {
				gotText = text
				return nil
			},
		}
		h := newTestHandlers(&mockContactService{}, notes, alwaysConfirm(true))

		_, _, err := h.Execute(CmdEditNote, []string{"3", "#work"})

		require.NoError(t, err)
		assert.Nil(t, gotText)
	})

	t.Run("rejects non-numeric id", func(t *testing.T) {
		h := newTestHandlers(&mockContactService{}, &mockNoteService{}, alwaysConfirm(true))

		_, _, err := h.Execute(CmdEditNote, []string{"abc", "text"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "note id must be a number")
	})
}

func TestExecute_DeleteNote(t *testing.T) {
	now := time.Date(2025, time.May, 20, 12, 0, 0, 0, time.UTC)
	existing, err := model.NewNote(5, "Buy milk", nil, now)
	require.NoError(t, err)

	t.Run("confirmed", func(t *testing.T) {
		deleted := false
		notes := &mockNoteService{
			getFunc:    func(id int) (*model.Note, error) { return existing, nil },
			deleteFunc: func(id int) error { deleted = true; return nil },
		}
		h := newTestHandlers(&mockContactService{}, notes, alwaysConfirm(true))

		out, mutated, err := h.Execute(CmdDeleteNote, []string{"#5"})

		require.NoError(t, err)
		assert.True(t, mutated)
		assert.True(t, deleted)
		assert.Equal(t, "Note #5 deleted.", out)
	})

	t.Run("missing note fails before confirmation", func(t *testing.T) {
		notes := &mockNoteService{
			getFunc: func(id int) (*model.Note, error) { return nil, book.ErrNoteNotFound },
		}
		confirm := ConfirmerFunc(func(string) bool {
			t.Fatal("confirmation must not be requested for a missing note")
			return false
		})
		h := newTestHandlers(&mockContactService{}, notes, confirm)

		_, _, err := h.Execute(CmdDeleteNote, []string{"99"})

		assert.ErrorIs(t, err, book.ErrNoteNotFound)
	})
}

func TestExecute_AddTags(t *testing.T) {
	var gotID int
	var gotTags []string
	notes := &mockNoteService{
		addTagsFunc: func(id int, tags []string) error {
			gotID, gotTags = id, tags
			return nil
		},
	}
	h := newTestHandlers(&mockContactService{}, notes, alwaysConfirm(true))

	out, mutated, err := h.Execute(CmdAddTags, []string{"#2", "#work,", "urgent"})

	require.NoError(t, err)
	assert.True(t, mutated)
	assert.Equal(t, 2, gotID)
	assert.Equal(t, []string{"work", "urgent"}, gotTags)
	assert.Equal(t, "Tags added to note #2.", out)
}

func TestExecute_ListNotes(t *testing.T) {
	t.Run("defaults to created desc", func(t *testing.T) {
		var gotKey book.SortKey
		var gotDirection book.SortDirection
		notes := &mockNoteService{
			listFunc: func(key book.SortKey, direction book.SortDirection) ([]*model.Note, error) {
				gotKey, gotDirection = key, direction
				return nil, nil
			},
		}
		h := newTestHandlers(&mockContactService{}, notes, alwaysConfirm(true))

		out, _, err := h.Execute(CmdListNotes, nil)

		require.NoError(t, err)
		assert.Equal(t, book.SortByCreated, gotKey)
		assert.Equal(t, book.SortDesc, gotDirection)
		assert.Equal(t, "No notes yet.", out)
	})

	t.Run("explicit key and direction", func(t *testing.T) {
		var gotKey book.SortKey
		var gotDirection book.SortDirection
		notes := &mockNoteService{
			listFunc: func(key book.SortKey, direction book.SortDirection) ([]*model.Note, error) {
				gotKey, gotDirection = key, direction
				return nil, nil
			},
		}
		h := newTestHandlers(&mockContactService{}, notes, alwaysConfirm(true))

		_, _, err := h.Execute(CmdListNotes, []string{"TEXT", "ASC"})

		require.NoError(t, err)
		assert.Equal(t, book.SortByText, gotKey)
		assert.Equal(t, book.SortAsc, gotDirection)
	})
}

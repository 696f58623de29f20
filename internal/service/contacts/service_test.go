package contacts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assistant-bot/internal/book"
	"assistant-bot/internal/model"
)

var now = time.Date(2025, time.May, 20, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return now }

func TestAdd_CreatesContact(t *testing.T) {
	addressBook := book.NewAddressBook()
	service := NewContactService(addressBook, fixedClock)

	created, err := service.Add("John", "0931234567")
	require.NoError(t, err)
	assert.True(t, created)

	record, err := addressBook.Find("John")
	require.NoError(t, err)
	require.Len(t, record.Phones(), 1)
	assert.Equal(t, "0931234567", record.Phones()[0].String())
}

func TestAdd_AppendsPhoneToExisting(t *testing.T) {
	addressBook := book.NewAddressBook()
	service := NewContactService(addressBook, fixedClock)

	_, err := service.Add("John", "0931234567")
	require.NoError(t, err)

	created, err := service.Add("John", "0677654321")
	require.NoError(t, err)
	assert.False(t, created)

	record, err := addressBook.Find("John")
	require.NoError(t, err)
	assert.Len(t, record.Phones(), 2)

	_, err = service.Add("John", "0931234567")
	assert.ErrorIs(t, err, model.ErrDuplicatePhone)
}

func TestAdd_ValidatesBeforeMutation(t *testing.T) {
	addressBook := book.NewAddressBook()
	service := NewContactService(addressBook, fixedClock)

	// Невалидный телефон не создает контакта
	_, err := service.Add("John", "123")
	assert.ErrorIs(t, err, model.ErrInvalidPhone)
	assert.Equal(t, 0, addressBook.Len())

	_, err = service.Add("  ", "0931234567")
	assert.ErrorIs(t, err, model.ErrInvalidName)
	assert.Equal(t, 0, addressBook.Len())
}

func TestUpdatePhone(t *testing.T) {
	addressBook := book.NewAddressBook()
	service := NewContactService(addressBook, fixedClock)

	_, err := service.Add("John", "0931234567")
	require.NoError(t, err)

	require.NoError(t, service.UpdatePhone("John", "0931234567", "0509999999"))

	record, err := addressBook.Find("John")
	require.NoError(t, err)
	assert.Equal(t, "0509999999", record.Phones()[0].String())

	assert.ErrorIs(t, service.UpdatePhone("John", "0931234567", "0500000000"), model.ErrPhoneNotFound)
	assert.ErrorIs(t, service.UpdatePhone("Mary", "0509999999", "0500000000"), book.ErrRecordNotFound)
}

func TestBirthdayAndEmail(t *testing.T) {
	addressBook := book.NewAddressBook()
	service := NewContactService(addressBook, fixedClock)

	_, err := service.Add("John", "0931234567")
	require.NoError(t, err)

	require.NoError(t, service.SetBirthday("John", "20.05.1985"))
	birthday, err := service.Birthday("John")
	require.NoError(t, err)
	assert.Equal(t, "20.05.1985", birthday.String())

	// Будущая дата отклоняется относительно часов сервиса
	assert.ErrorIs(t, service.SetBirthday("John", "21.05.2025"), model.ErrInvalidBirthday)

	require.NoError(t, service.SetEmail("John", "John@Example.com"))
	email, err := service.Email("John")
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", email.String())

	require.NoError(t, service.RemoveEmail("John"))
	assert.ErrorIs(t, service.RemoveEmail("John"), model.ErrEmailNotSet)
}

func TestUpcomingBirthdays_UsesClock(t *testing.T) {
	addressBook := book.NewAddressBook()
	service := NewContactService(addressBook, fixedClock)

	_, err := service.Add("John", "0931234567")
	require.NoError(t, err)
	require.NoError(t, service.SetBirthday("John", "25.05.1990"))

	entries := service.UpcomingBirthdays(7)
	require.Len(t, entries, 1)
	assert.Equal(t, 5, entries[0].DaysUntil)
}

package service

import (
	"time"

	"assistant-bot/internal/book"
	"assistant-bot/internal/model"
)

// Clock источник текущего времени. Передается сервисам при сборке,
// чтобы вся работа с "сейчас" оставалась детерминированной в тестах.
type Clock func() time.Time

// ContactService интерфейс для бизнес-логики работы с контактами.
type ContactService interface {
	// Add создает контакт с телефоном либо добавляет телефон
	// существующему контакту. Возвращает true, если контакт создан.
	Add(name, phone string) (bool, error)

	// Get возвращает контакт по точному имени.
	Get(name string) (*model.Record, error)

	// List возвращает все контакты в порядке добавления.
	List() []*model.Record

	// Delete удаляет контакт по имени.
	Delete(name string) error

	// Search ищет контакты по подстроке в имени, телефонах,
	// email и адресе без учета регистра.
	Search(query string) []*model.Record

	// UpdatePhone заменяет телефон контакта, сохраняя позицию номера.
	UpdatePhone(name, oldPhone, newPhone string) error

	// RemovePhone удаляет телефон контакта.
	RemovePhone(name, phone string) error

	// SetBirthday устанавливает дату рождения в формате DD.MM.YYYY.
	SetBirthday(name, birthday string) error

	// Birthday возвращает дату рождения контакта.
	Birthday(name string) (model.Birthday, error)

	// SetEmail устанавливает email контакта.
	SetEmail(name, email string) error

	// Email возвращает email контакта.
	Email(name string) (model.Email, error)

	// RemoveEmail удаляет email контакта.
	RemoveEmail(name string) error

	// SetAddress устанавливает адрес контакта.
	SetAddress(name, address string) error

	// RemoveAddress удаляет адрес контакта.
	RemoveAddress(name string) error

	// UpcomingBirthdays возвращает дни рождения в ближайшие days дней.
	UpcomingBirthdays(days int) []book.BirthdayEntry
}

// NoteService интерфейс для бизнес-логики работы с заметками.
type NoteService interface {
	// Add создает заметку и возвращает ее с присвоенным идентификатором.
	Add(text string, tags []string) (*model.Note, error)

	// Get возвращает заметку по идентификатору.
	Get(id int) (*model.Note, error)

	// Edit заменяет текст и/или теги заметки (nil — без изменений).
	Edit(id int, text *string, tags []string) error

	// AddTags добавляет теги к заметке.
	AddTags(id int, tags []string) error

	// RemoveTags удаляет теги заметки.
	RemoveTags(id int, tags []string) error

	// Delete удаляет заметку по идентификатору.
	Delete(id int) error

	// List возвращает заметки, отсортированные по указанному ключу.
	List(key book.SortKey, direction book.SortDirection) ([]*model.Note, error)

	// SearchText ищет заметки по подстроке текста без учета регистра.
	SearchText(query string) []*model.Note

	// SearchTags возвращает заметки, содержащие все указанные теги.
	SearchTags(tags []string) []*model.Note
}

// TagCount количество употреблений тега во всех заметках.
type TagCount struct {
	Tag   string
	Count int
}

// Summary сводка по книгам для команды stats.
type Summary struct {
	ContactCount int
	NoteCount    int
	TopTags      []TagCount
	Birthdays    []book.BirthdayEntry
}

// StatsService интерфейс агрегатора статистики по обеим книгам.
type StatsService interface {
	// TopTags возвращает n самых употребляемых тегов по убыванию
	// количества; при равенстве раньше идет тег, встреченный первым.
	TopTags(n int) []TagCount

	// Summary собирает сводку: число контактов и заметок, три верхних
	// тега и дни рождения на ближайшие десять дней.
	Summary() Summary
}

package book

import (
	"errors"
	"sort"
	"strings"
	"time"

	"assistant-bot/internal/model"
)

// ErrDuplicateName возвращается при попытке добавить контакт
// с уже занятым именем.
var ErrDuplicateName = errors.New("contact already exists")

// ErrRecordNotFound возвращается, когда контакт не найден.
var ErrRecordNotFound = errors.New("contact not found")

// BirthdayEntry один элемент выборки ближайших дней рождения.
// Celebration — дата празднования с переносом с выходных на понедельник;
// DaysUntil считается по фактической дате дня рождения, без переноса.
type BirthdayEntry struct {
	Record      *model.Record
	Celebration time.Time
	DaysUntil   int
}

// AddressBook хранилище контактов, ключом служит имя.
// Порядок добавления сохраняется для детерминированной выдачи.
type AddressBook struct {
	records map[string]*model.Record
	order   []string
}

// NewAddressBook создает пустую адресную книгу.
func NewAddressBook() *AddressBook {
	return &AddressBook{
		records: make(map[string]*model.Record),
	}
}

// AddRecord добавляет запись в книгу. Имя должно быть свободно.
func (b *AddressBook) AddRecord(record *model.Record) error {
	key := record.Name().String()
	if _, exists := b.records[key]; exists {
		return ErrDuplicateName
	}
	b.records[key] = record
	b.order = append(b.order, key)
	return nil
}

// Find возвращает запись по точному имени (с учетом регистра).
func (b *AddressBook) Find(name string) (*model.Record, error) {
	record, exists := b.records[name]
	if !exists {
		return nil, ErrRecordNotFound
	}
	return record, nil
}

// Delete удаляет запись по имени.
func (b *AddressBook) Delete(name string) error {
	if _, exists := b.records[name]; !exists {
		return ErrRecordNotFound
	}
	delete(b.records, name)
	for i, key := range b.order {
		if key == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// Records возвращает все записи в порядке добавления.
func (b *AddressBook) Records() []*model.Record {
	records := make([]*model.Record, 0, len(b.order))
	for _, key := range b.order {
		records = append(records, b.records[key])
	}
	return records
}

// Len возвращает число контактов в книге.
func (b *AddressBook) Len() int {
	return len(b.records)
}

// Search ищет записи по подстроке без учета регистра: совпадение
// проверяется по имени, каждому телефону, email и адресу.
// Результат идет в порядке добавления. Пустой запрос ничего не находит.
func (b *AddressBook) Search(query string) []*model.Record {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var matched []*model.Record
	for _, key := range b.order {
		record := b.records[key]
		if recordMatches(record, query) {
			matched = append(matched, record)
		}
	}
	return matched
}

func recordMatches(record *model.Record, query string) bool {
	if strings.Contains(strings.ToLower(record.Name().String()), query) {
		return true
	}
	for _, phone := range record.Phones() {
		if strings.Contains(phone.String(), query) {
			return true
		}
	}
	if email, err := record.Email(); err == nil {
		if strings.Contains(email.String(), query) {
			return true
		}
	}
	if address, err := record.Address(); err == nil {
		if strings.Contains(strings.ToLower(address.String()), query) {
			return true
		}
	}
	return false
}

// UpcomingBirthdays возвращает контакты, чей день рождения наступает
// в ближайшие days дней от ref включительно. Дата празднования,
// попавшая на субботу или воскресенье, переносится на понедельник;
// сама арифметика дней рождения от переноса не зависит.
// Результат отсортирован по числу дней, при равенстве — по имени.
func (b *AddressBook) UpcomingBirthdays(days int, ref time.Time) []BirthdayEntry {
	var entries []BirthdayEntry
	for _, key := range b.order {
		record := b.records[key]

		daysUntil, err := record.DaysToBirthday(ref)
		if err != nil {
			continue // контакт без даты рождения
		}
		if daysUntil < 0 || daysUntil > days {
			continue
		}

		next, _ := record.NextBirthday(ref)
		entries = append(entries, BirthdayEntry{
			Record:      record,
			Celebration: observedDate(next),
			DaysUntil:   daysUntil,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].DaysUntil != entries[j].DaysUntil {
			return entries[i].DaysUntil < entries[j].DaysUntil
		}
		return entries[i].Record.Name().String() < entries[j].Record.Name().String()
	})
	return entries
}

// observedDate переносит дату празднования с выходных на понедельник.
func observedDate(date time.Time) time.Time {
	switch date.Weekday() {
	case time.Saturday:
		return date.AddDate(0, 0, 2)
	case time.Sunday:
		return date.AddDate(0, 0, 1)
	default:
		return date
	}
}

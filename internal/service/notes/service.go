package notes

import (
	"assistant-bot/internal/book"
	"assistant-bot/internal/model"
	svc "assistant-bot/internal/service"
)

var _ svc.NoteService = (*service)(nil)

type service struct {
	noteBook *book.NoteBook
	clock    svc.Clock
}

// NewNoteService создает новый экземпляр сервиса для работы с заметками.
func NewNoteService(noteBook *book.NoteBook, clock svc.Clock) svc.NoteService {
	return &service{
		noteBook: noteBook,
		clock:    clock,
	}
}

// Add создает заметку с указанным текстом и тегами.
func (s *service) Add(text string, tags []string) (*model.Note, error) {
	return s.noteBook.AddNote(text, tags, s.clock())
}

// Get возвращает заметку по идентификатору.
func (s *service) Get(id int) (*model.Note, error) {
	return s.noteBook.Find(id)
}

// Edit заменяет текст и/или теги заметки (nil — без изменений).
func (s *service) Edit(id int, text *string, tags []string) error {
	return s.noteBook.EditNote(id, text, tags, s.clock())
}

// AddTags добавляет теги к заметке.
func (s *service) AddTags(id int, tags []string) error {
	return s.noteBook.AddTags(id, tags, s.clock())
}

// RemoveTags удаляет теги заметки.
func (s *service) RemoveTags(id int, tags []string) error {
	return s.noteBook.RemoveTags(id, tags, s.clock())
}

// Delete удаляет заметку по идентификатору.
func (s *service) Delete(id int) error {
	return s.noteBook.DeleteNote(id)
}

// List возвращает заметки, отсортированные по указанному ключу.
func (s *service) List(key book.SortKey, direction book.SortDirection) ([]*model.Note, error) {
	return s.noteBook.ListSorted(key, direction)
}

// SearchText ищет заметки по подстроке текста без учета регистра.
func (s *service) SearchText(query string) []*model.Note {
	return s.noteBook.SearchText(query)
}

// SearchTags возвращает заметки, содержащие все указанные теги.
func (s *service) SearchTags(tags []string) []*model.Note {
	return s.noteBook.SearchTags(tags)
}

package book

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"assistant-bot/internal/model"
)

// ErrNoteNotFound возвращается, когда заметка не найдена.
var ErrNoteNotFound = errors.New("note not found")

// Ключи сортировки списка заметок.
type SortKey string

const (
	SortByCreated SortKey = "created"
	SortByUpdated SortKey = "updated"
	SortByText    SortKey = "text"
	SortByTags    SortKey = "tags"
)

// Направления сортировки.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// NoteBook хранилище заметок с целочисленными идентификаторами.
// Идентификаторы выдаются монотонно начиная с 1 и никогда
// не используются повторно, даже после удаления заметки.
type NoteBook struct {
	notes  map[int]*model.Note
	nextID int
}

// NewNoteBook создает пустой блокнот.
func NewNoteBook() *NoteBook {
	return &NoteBook{
		notes:  make(map[int]*model.Note),
		nextID: 1,
	}
}

// AddNote создает заметку, выделяет ей следующий идентификатор
// и возвращает созданную заметку. Счетчик не расходуется, если
// текст не прошел валидацию.
func (b *NoteBook) AddNote(text string, tags []string, now time.Time) (*model.Note, error) {
	note, err := model.NewNote(b.nextID, text, tags, now)
	if err != nil {
		return nil, err
	}
	b.notes[note.ID()] = note
	b.nextID++
	return note, nil
}

// Find возвращает заметку по идентификатору.
func (b *NoteBook) Find(id int) (*model.Note, error) {
	note, exists := b.notes[id]
	if !exists {
		return nil, ErrNoteNotFound
	}
	return note, nil
}

// EditNote заменяет текст и/или теги заметки. Nil-аргумент оставляет
// поле без изменений; метка изменения обновляется в любом случае.
func (b *NoteBook) EditNote(id int, text *string, tags []string, now time.Time) error {
	note, exists := b.notes[id]
	if !exists {
		return ErrNoteNotFound
	}
	return note.Edit(text, tags, now)
}

// AddTags добавляет теги к заметке (объединение множеств).
func (b *NoteBook) AddTags(id int, tags []string, now time.Time) error {
	note, exists := b.notes[id]
	if !exists {
		return ErrNoteNotFound
	}
	note.AddTags(tags, now)
	return nil
}

// RemoveTags удаляет теги заметки (разность множеств).
func (b *NoteBook) RemoveTags(id int, tags []string, now time.Time) error {
	note, exists := b.notes[id]
	if !exists {
		return ErrNoteNotFound
	}
	note.RemoveTags(tags, now)
	return nil
}

// DeleteNote удаляет заметку. Ее идентификатор повторно не выдается.
func (b *NoteBook) DeleteNote(id int) error {
	if _, exists := b.notes[id]; !exists {
		return ErrNoteNotFound
	}
	delete(b.notes, id)
	return nil
}

// Notes возвращает все заметки по возрастанию идентификатора.
func (b *NoteBook) Notes() []*model.Note {
	notes := make([]*model.Note, 0, len(b.notes))
	for _, note := range b.notes {
		notes = append(notes, note)
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].ID() < notes[j].ID()
	})
	return notes
}

// Len возвращает число заметок в блокноте.
func (b *NoteBook) Len() int {
	return len(b.notes)
}

// NextID возвращает значение счетчика идентификаторов.
func (b *NoteBook) NextID() int {
	return b.nextID
}

// SearchText ищет заметки по подстроке текста без учета регистра.
// Результат идет по возрастанию идентификатора.
// Пустой запрос ничего не находит.
func (b *NoteBook) SearchText(query string) []*model.Note {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var matched []*model.Note
	for _, note := range b.Notes() {
		if strings.Contains(strings.ToLower(note.Text()), query) {
			matched = append(matched, note)
		}
	}
	return matched
}

// SearchTags возвращает заметки, содержащие каждый из указанных тегов
// (AND-семантика). Пустой набор тегов ничего не находит.
func (b *NoteBook) SearchTags(tags []string) []*model.Note {
	normalized := model.NormalizeTags(tags)
	if len(normalized) == 0 {
		return nil
	}

	var matched []*model.Note
	for _, note := range b.Notes() {
		if note.HasAllTags(normalized) {
			matched = append(matched, note)
		}
	}
	return matched
}

// ListSorted возвращает заметки, отсортированные по указанному ключу.
// Сортировка устойчива: при равенстве ключей порядок остается
// по возрастанию идентификатора. Ключ text сравнивает строки
// с учетом регистра; ключ tags сортирует по лексикографически
// наименьшему тегу, заметки без тегов идут первыми.
func (b *NoteBook) ListSorted(key SortKey, direction SortDirection) ([]*model.Note, error) {
	var less func(a, c *model.Note) bool
	switch key {
	case SortByCreated:
		less = func(a, c *model.Note) bool { return a.CreatedAt().Before(c.CreatedAt()) }
	case SortByUpdated:
		less = func(a, c *model.Note) bool { return a.UpdatedAt().Before(c.UpdatedAt()) }
	case SortByText:
		less = func(a, c *model.Note) bool { return a.Text() < c.Text() }
	case SortByTags:
		less = func(a, c *model.Note) bool { return smallestTag(a) < smallestTag(c) }
	default:
		return nil, fmt.Errorf("unknown sort key %q", key)
	}

	switch direction {
	case SortAsc:
	case SortDesc:
		asc := less
		less = func(a, c *model.Note) bool { return asc(c, a) }
	default:
		return nil, fmt.Errorf("unknown sort direction %q", direction)
	}

	notes := b.Notes()
	sort.SliceStable(notes, func(i, j int) bool {
		return less(notes[i], notes[j])
	})
	return notes, nil
}

// smallestTag возвращает ключ сортировки по тегам: наименьший тег
// заметки либо пустая строка для заметки без тегов.
func smallestTag(note *model.Note) string {
	smallest := ""
	for i, tag := range note.Tags() {
		if i == 0 || tag < smallest {
			smallest = tag
		}
	}
	return smallest
}

// Restore вставляет заметку с ее сохраненным идентификатором
// при загрузке из снимка и поднимает счетчик выше максимального
// встреченного идентификатора.
func (b *NoteBook) Restore(note *model.Note) error {
	if _, exists := b.notes[note.ID()]; exists {
		return fmt.Errorf("duplicate note id %d", note.ID())
	}
	b.notes[note.ID()] = note
	if note.ID() >= b.nextID {
		b.nextID = note.ID() + 1
	}
	return nil
}

// RestoreNextID восстанавливает сохраненный счетчик идентификаторов.
// Счетчик не может опуститься ниже уже восстановленных заметок.
func (b *NoteBook) RestoreNextID(nextID int) {
	if nextID > b.nextID {
		b.nextID = nextID
	}
}

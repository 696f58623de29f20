package model

import (
	"strings"
	"time"
)

// Note представляет заметку (доменная модель).
// Идентификатор присваивается блокнотом и после создания не меняется.
// Теги хранятся в нижнем регистре, без дубликатов, в порядке добавления.
type Note struct {
	id        int
	text      string
	tags      []string
	createdAt time.Time
	updatedAt time.Time
}

// NewNote создает заметку с указанным идентификатором и текстом.
// Пустой текст недопустим. Обе временные метки устанавливаются в now.
func NewNote(id int, text string, tags []string, now time.Time) (*Note, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyText
	}
	return &Note{
		id:        id,
		text:      trimmed,
		tags:      NormalizeTags(tags),
		createdAt: now,
		updatedAt: now,
	}, nil
}

// RestoreNote восстанавливает заметку из сохраненного состояния,
// сохраняя исходные временные метки. Правила валидации те же,
// что и в NewNote.
func RestoreNote(id int, text string, tags []string, createdAt, updatedAt time.Time) (*Note, error) {
	note, err := NewNote(id, text, tags, createdAt)
	if err != nil {
		return nil, err
	}
	note.updatedAt = updatedAt
	return note, nil
}

// ID возвращает идентификатор заметки.
func (n *Note) ID() int {
	return n.id
}

// Text возвращает текст заметки.
func (n *Note) Text() string {
	return n.text
}

// Tags возвращает копию списка тегов в порядке добавления.
func (n *Note) Tags() []string {
	tags := make([]string, len(n.tags))
	copy(tags, n.tags)
	return tags
}

// CreatedAt возвращает время создания заметки.
func (n *Note) CreatedAt() time.Time {
	return n.createdAt
}

// UpdatedAt возвращает время последнего изменения заметки.
func (n *Note) UpdatedAt() time.Time {
	return n.updatedAt
}

// Edit заменяет текст и/или теги заметки. Nil-аргумент оставляет
// соответствующее поле без изменений. UpdatedAt обновляется всегда,
// даже если фактически ничего не изменилось.
func (n *Note) Edit(text *string, tags []string, now time.Time) error {
	if text != nil {
		trimmed := strings.TrimSpace(*text)
		if trimmed == "" {
			return ErrEmptyText
		}
		n.text = trimmed
	}
	if tags != nil {
		n.tags = NormalizeTags(tags)
	}
	n.updatedAt = now
	return nil
}

// AddTags добавляет теги к заметке (объединение множеств).
func (n *Note) AddTags(tags []string, now time.Time) {
	for _, tag := range NormalizeTags(tags) {
		if !n.hasTag(tag) {
			n.tags = append(n.tags, tag)
		}
	}
	n.updatedAt = now
}

// RemoveTags удаляет теги из заметки (разность множеств).
// Отсутствующие теги молча игнорируются.
func (n *Note) RemoveTags(tags []string, now time.Time) {
	remove := NormalizeTags(tags)
	kept := n.tags[:0]
	for _, tag := range n.tags {
		found := false
		for _, rm := range remove {
			if tag == rm {
				found = true
				break
			}
		}
		if !found {
			kept = append(kept, tag)
		}
	}
	n.tags = kept
	n.updatedAt = now
}

// HasAllTags сообщает, содержит ли заметка каждый из указанных тегов.
// Аргументы нормализуются так же, как при добавлении.
func (n *Note) HasAllTags(tags []string) bool {
	for _, tag := range NormalizeTags(tags) {
		if !n.hasTag(tag) {
			return false
		}
	}
	return true
}

func (n *Note) hasTag(tag string) bool {
	for _, t := range n.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// NormalizeTags приводит теги к каноническому виду: обрезает пробелы,
// переводит в нижний регистр, выбрасывает пустые строки и дубликаты,
// сохраняя порядок первого появления.
func NormalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		cleaned := strings.ToLower(strings.TrimSpace(tag))
		if cleaned == "" {
			continue
		}
		if _, ok := seen[cleaned]; ok {
			continue
		}
		seen[cleaned] = struct{}{}
		normalized = append(normalized, cleaned)
	}
	return normalized
}

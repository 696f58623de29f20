// Package storage определяет формат снимка обеих книг на диске
// и файловое хранилище для него. Снимок — версионированный JSON-конверт,
// самодостаточный для полного восстановления состояния, включая
// счетчик идентификаторов заметок.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// SnapshotVersion текущая версия формата снимка.
const SnapshotVersion = 1

// ErrDeserialize возвращается, когда снимок не удается разобрать
// или восстановить.
var ErrDeserialize = errors.New("cannot deserialize snapshot")

// Contact плоское представление записи контакта в снимке.
type Contact struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones,omitempty"`
	Email    *string  `json:"email,omitempty"`
	Birthday *string  `json:"birthday,omitempty"`
	Address  *string  `json:"address,omitempty"`
}

// Note плоское представление заметки в снимке.
type Note struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Snapshot конверт снимка: версия формата, идентификатор снимка,
// момент сохранения и полное содержимое обеих книг.
// Контакты идут в порядке добавления, заметки — по возрастанию
// идентификатора.
type Snapshot struct {
	Version    int       `json:"version"`
	SnapshotID string    `json:"snapshot_id"`
	SavedAt    time.Time `json:"saved_at"`
	Contacts   []Contact `json:"contacts"`
	Notes      []Note    `json:"notes"`
	NextNoteID int       `json:"next_note_id"`
}

// Encode сериализует снимок в JSON.
func Encode(snapshot Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json.MarshalIndent: %w", err)
	}
	return data, nil
}

// Decode разбирает снимок из JSON и проверяет версию формата.
func Decode(data []byte) (Snapshot, error) {
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrDeserialize, err)
	}
	if snapshot.Version != SnapshotVersion {
		return Snapshot{}, fmt.Errorf("%w: unsupported version %d", ErrDeserialize, snapshot.Version)
	}
	return snapshot, nil
}

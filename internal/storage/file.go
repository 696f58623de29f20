package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// FileStore хранит снимок книг в одном файле на диске.
// Запись идет через временный файл с переименованием, чтобы
// прерванное сохранение не повредило существующий снимок.
type FileStore struct {
	path string
	log  *zap.Logger
}

// NewFileStore создает файловое хранилище по указанному пути.
func NewFileStore(path string, log *zap.Logger) *FileStore {
	return &FileStore{
		path: path,
		log:  log,
	}
}

// Path возвращает путь к файлу снимка.
func (s *FileStore) Path() string {
	return s.path
}

// Save сериализует снимок и записывает его на диск.
func (s *FileStore) Save(snapshot Snapshot) error {
	data, err := Encode(snapshot)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("os.CreateTemp: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("tmp.Write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("tmp.Close: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("os.Rename: %w", err)
	}

	s.log.Debug("snapshot saved",
		zap.String("path", s.path),
		zap.String("snapshot_id", snapshot.SnapshotID),
		zap.Int("contacts", len(snapshot.Contacts)),
		zap.Int("notes", len(snapshot.Notes)))
	return nil
}

// Load читает и разбирает снимок с диска.
// Отсутствие файла возвращается как os.ErrNotExist: первый запуск
// начинается с пустых книг.
func (s *FileStore) Load() (Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("os.ReadFile: %w", err)
	}

	snapshot, err := Decode(data)
	if err != nil {
		return Snapshot{}, err
	}

	s.log.Debug("snapshot loaded",
		zap.String("path", s.path),
		zap.String("snapshot_id", snapshot.SnapshotID),
		zap.Int("contacts", len(snapshot.Contacts)),
		zap.Int("notes", len(snapshot.Notes)))
	return snapshot, nil
}

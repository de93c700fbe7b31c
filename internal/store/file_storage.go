package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// FileStorage читает seed-файл с JSON-массивом фильмов.
// Запись обратно на диск не выполняется: изменения живут только в памяти процесса.
type FileStorage struct {
	filePath string
}

// NewFileStorage создаёт новый FileStorage
func NewFileStorage(filePath string) *FileStorage {
	return &FileStorage{
		filePath: filePath,
	}
}

// Path возвращает путь к seed-файлу
func (fs *FileStorage) Path() string {
	return fs.filePath
}

// Load возвращает сырые записи из файла.
// Отсутствующий или пустой файл означает пустую коллекцию.
func (fs *FileStorage) Load() ([]json.RawMessage, error) {
	data, err := os.ReadFile(fs.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []json.RawMessage{}, nil
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	if records == nil {
		records = []json.RawMessage{}
	}

	return records, nil
}

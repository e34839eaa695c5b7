package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"stendconfig/internal/domain/models"
	"stendconfig/internal/domain/ports"
)

// FileProfileRepository реализует интерфейс ports.ProfileRepository с
// использованием JSON-файла для хранения последнего профиля подключения.
type FileProfileRepository struct {
	mu       sync.Mutex
	filePath string
}

// NewFileProfileRepository создает новый экземпляр FileProfileRepository с указанным путем к файлу.
func NewFileProfileRepository(filePath string) ports.ProfileRepository {
	return &FileProfileRepository{filePath: filePath}
}

// Load возвращает сохранённый профиль или nil, если файла ещё нет.
func (r *FileProfileRepository) Load() (*models.ConnectionProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка чтения профиля: %w", err)
	}

	var profile models.ConnectionProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("ошибка разбора профиля: %w", err)
	}
	return &profile, nil
}

// Save сохраняет профиль как последний использованный.
func (r *FileProfileRepository) Save(profile *models.ConnectionProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("ошибка сериализации профиля: %w", err)
	}

	if dir := filepath.Dir(r.filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("ошибка создания каталога профиля: %w", err)
		}
	}

	if err := os.WriteFile(r.filePath, data, 0644); err != nil {
		return fmt.Errorf("ошибка записи профиля: %w", err)
	}
	return nil
}

package ports

import "stendconfig/internal/domain/models"

// ProfileRepository определяет интерфейс хранения профиля подключения.
// Реализация интерфейса находится в слое Infrastructure.
type ProfileRepository interface {
	// Load возвращает сохранённый профиль или nil, если его ещё нет.
	Load() (*models.ConnectionProfile, error)

	// Save сохраняет профиль как последний использованный.
	Save(profile *models.ConnectionProfile) error
}

// WorkbookRepository читает и пишет книги с наборами параметров.
type WorkbookRepository interface {
	// Read читает первый лист файла и возвращает набор параметров.
	Read(path string) (models.ParameterSet, error)

	// Write записывает книгу по фиксированному шаблону экспорта.
	Write(path string, params models.ParameterSet) error
}

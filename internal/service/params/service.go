package params

import (
	"fmt"
	"strings"
	"time"

	"stendconfig/internal/domain/models"
	"stendconfig/internal/domain/ports"
)

// xlsxFilter — фильтр диалогов в формате walk: пары "описание|маска".
const xlsxFilter = "Книги Excel (*.xlsx)|*.xlsx|Все файлы (*.*)|*.*"

// fallbackModelName подставляется в имя файла, когда модель не задана.
const fallbackModelName = "device"

// Service реализует сценарии обмена наборами параметров с файлами книг.
// Отмена диалога — отдельный исход, не успех и не ошибка.
type Service struct {
	workbook ports.WorkbookRepository
	dialog   ports.FileDialog
	log      ports.Logger
}

// NewService создает новый экземпляр Service.
func NewService(workbook ports.WorkbookRepository, dialog ports.FileDialog, log ports.Logger) *Service {
	return &Service{
		workbook: workbook,
		dialog:   dialog,
		log:      log,
	}
}

// ImportOutcome — результат импорта.
type ImportOutcome struct {
	Canceled   bool
	Parameters models.ParameterSet
	FilePath   string
}

// Import предлагает выбрать книгу и читает её первый лист.
func (s *Service) Import() (*ImportOutcome, error) {
	path, ok, err := s.dialog.ShowOpen("Импорт параметров", xlsxFilter)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &ImportOutcome{Canceled: true}, nil
	}

	set, err := s.workbook.Read(path)
	if err != nil {
		return nil, err
	}

	s.log.Info("импортировано %d параметров из %s", len(set), path)
	return &ImportOutcome{Parameters: set, FilePath: path}, nil
}

// ExportOutcome — результат экспорта.
type ExportOutcome struct {
	Canceled bool
	FilePath string
}

// Export предлагает сохранить книгу с именем из модели и метки времени
// и записывает лист по фиксированному шаблону.
func (s *Service) Export(set models.ParameterSet, modelName string) (*ExportOutcome, error) {
	path, ok, err := s.dialog.ShowSave("Экспорт параметров", xlsxFilter, ExportFileName(modelName, time.Now()))
	if err != nil {
		return nil, err
	}
	if !ok {
		return &ExportOutcome{Canceled: true}, nil
	}

	if err := s.workbook.Write(path, set); err != nil {
		return nil, err
	}

	s.log.Info("параметры экспортированы в %s", path)
	return &ExportOutcome{FilePath: path}, nil
}

// ExportFileName строит имя файла экспорта: модель и метка времени
// фиксированной ширины год-месяц-день_часы-минуты-секунды.
func ExportFileName(modelName string, t time.Time) string {
	name := strings.TrimSpace(modelName)
	if name == "" {
		name = fallbackModelName
	}
	return fmt.Sprintf("%s_%s.xlsx", name, t.Format("2006-01-02_15-04-05"))
}

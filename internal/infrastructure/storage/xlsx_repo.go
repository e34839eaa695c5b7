package storage

import (
	"fmt"
	"strings"

	"stendconfig/internal/domain/models"
	"stendconfig/internal/domain/ports"

	"github.com/xuri/excelize/v2"
)

// headerParameter — литерал заголовочной строки. Строки импорта с таким
// значением во второй колонке считаются заголовком и пропускаются.
const headerParameter = "Parameter"

// XlsxWorkbookRepository реализует ports.WorkbookRepository поверх excelize.
// Формат листа: заголовок "Parameter | | Value | Range", дальше строки
// (категория, имя, значение, диапазон) в порядке шаблона экспорта.
type XlsxWorkbookRepository struct{}

// NewXlsxWorkbookRepository создает репозиторий книг параметров.
func NewXlsxWorkbookRepository() ports.WorkbookRepository {
	return &XlsxWorkbookRepository{}
}

// Read читает первый лист книги. Именем параметра служит вторая колонка
// (с обрезкой пробелов), значением — третья; строки без имени и строки
// заголовка пропускаются. Шаблон экспорта при импорте не используется:
// принимаются любые строки листа.
func (r *XlsxWorkbookRepository) Read(path string) (models.ParameterSet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия книги: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("в книге %s нет листов", path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения листа %s: %w", sheet, err)
	}

	params := models.ParameterSet{}
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		name := strings.TrimSpace(row[1])
		if name == "" || name == headerParameter {
			continue
		}
		value := ""
		if len(row) > 2 {
			value = row[2]
		}
		params[name] = value
	}
	return params, nil
}

// Write записывает одностраничную книгу по фиксированному шаблону.
// Значения берутся из набора, отсутствующие параметры пишутся пустыми.
func (r *XlsxWorkbookRepository) Write(path string, params models.ParameterSet) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{headerParameter, "", "Value", "Range"}); err != nil {
		return fmt.Errorf("ошибка записи заголовка: %w", err)
	}

	for i, entry := range models.ExportTemplate {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{entry.Category, entry.Name, params[entry.Name], entry.Range}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("ошибка записи строки %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("ошибка сохранения книги: %w", err)
	}
	return nil
}

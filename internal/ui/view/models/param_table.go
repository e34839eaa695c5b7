package models

import (
	"stendconfig/internal/ui/viewmodel"

	"github.com/lxn/walk"
)

// ParamTableModel реализует интерфейс walk.TableModel для таблицы параметров.
type ParamTableModel struct {
	walk.TableModelBase
	rows []*viewmodel.ParamRow
}

// NewParamTableModel создаёт новый экземпляр ParamTableModel.
func NewParamTableModel(rows []*viewmodel.ParamRow) *ParamTableModel {
	return &ParamTableModel{rows: rows}
}

// RowCount возвращает количество строк в таблице.
func (m *ParamTableModel) RowCount() int {
	return len(m.rows)
}

// Value возвращает значение для отображения в заданной ячейке.
func (m *ParamTableModel) Value(row, col int) interface{} {
	if row < 0 || row >= len(m.rows) {
		return nil
	}

	item := m.rows[row]

	switch col {
	case 0: // Категория
		return item.Category
	case 1: // Параметр
		return item.Name
	case 2: // Значение
		return item.Value
	case 3: // Диапазон
		return item.Range
	default:
		return nil
	}
}

// Row возвращает строку по индексу или nil.
func (m *ParamTableModel) Row(index int) *viewmodel.ParamRow {
	if index < 0 || index >= len(m.rows) {
		return nil
	}
	return m.rows[index]
}

// UpdateRow уведомляет об изменении конкретной строки.
func (m *ParamTableModel) UpdateRow(row int) {
	if row >= 0 && row < len(m.rows) {
		m.PublishRowChanged(row)
	}
}

// Reset уведомляет о полном обновлении данных.
func (m *ParamTableModel) Reset() {
	m.PublishRowsReset()
}

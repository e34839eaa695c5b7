package viewmodel

import (
	"strings"

	"stendconfig/internal/domain/models"
)

// maxLogLines ограничивает журнал обмена в окне.
const maxLogLines = 500

// ParamRow — строка таблицы параметров: шаблонная позиция плюс текущее
// значение из набора.
type ParamRow struct {
	Category string
	Name     string
	Value    string
	Range    string
}

// MainViewModel отвечает за состояние главного окна: подключение,
// таблица параметров и журнал обмена. Чистое состояние без walk.
type MainViewModel struct {
	// Подключение
	PortList     []string
	SelectedPort string
	BaudRate     string
	DataBits     string
	Parity       string
	StopBits     string
	Encoding     string
	IsConnected  bool

	// Текст кнопки действия (Подключить/Отключить)
	ActionButtonText string
	StatusText       string

	// Доступность элементов управления
	ConnectionControlsEnabled bool
	SendEnabled               bool

	// Параметры
	ModelName string
	Rows      []*ParamRow

	// Отправка и журнал
	SendText string
	LogLines []string
}

// NewMainViewModel создаёт новый экземпляр MainViewModel с дефолтными значениями.
func NewMainViewModel() *MainViewModel {
	vm := &MainViewModel{
		BaudRate:         "115200",
		DataBits:         "8",
		Parity:           models.ParityNone,
		StopBits:         "1",
		Encoding:         models.EncodingUTF8,
		ActionButtonText: "Подключить",
		StatusText:       "Нет подключения",
		Rows:             templateRows(),
	}
	vm.UpdateUIState()
	return vm
}

// templateRows строит пустые строки таблицы в порядке шаблона экспорта.
func templateRows() []*ParamRow {
	rows := make([]*ParamRow, 0, len(models.ExportTemplate))
	for _, e := range models.ExportTemplate {
		rows = append(rows, &ParamRow{Category: e.Category, Name: e.Name, Range: e.Range})
	}
	return rows
}

// UpdateUIState обновляет текст кнопок и доступность элементов
// в зависимости от статуса подключения.
func (vm *MainViewModel) UpdateUIState() {
	if vm.IsConnected {
		vm.ActionButtonText = "Отключить"
		vm.ConnectionControlsEnabled = false
		vm.SendEnabled = true
	} else {
		vm.ActionButtonText = "Подключить"
		vm.ConnectionControlsEnabled = true
		vm.SendEnabled = false
		vm.StatusText = "Нет подключения"
	}
}

// Parameters собирает текущий набор параметров из таблицы.
// Пустые значения не включаются: незаполненная строка таблицы — это
// отсутствующий параметр, а не параметр с пустым значением.
func (vm *MainViewModel) Parameters() models.ParameterSet {
	set := models.ParameterSet{}
	for _, row := range vm.Rows {
		if strings.TrimSpace(row.Value) != "" {
			set[row.Name] = row.Value
		}
	}
	return set
}

// ApplyParameters заполняет таблицу значениями из набора. Параметры
// вне шаблона в таблице не отображаются.
func (vm *MainViewModel) ApplyParameters(set models.ParameterSet) {
	for _, row := range vm.Rows {
		row.Value = set[row.Name]
	}
}

// AppendLog добавляет строку в журнал обмена, отбрасывая старые записи.
func (vm *MainViewModel) AppendLog(line string) {
	vm.LogLines = append(vm.LogLines, line)
	if len(vm.LogLines) > maxLogLines {
		vm.LogLines = vm.LogLines[len(vm.LogLines)-maxLogLines:]
	}
}

// LogText возвращает журнал одной строкой для TextEdit.
func (vm *MainViewModel) LogText() string {
	return strings.Join(vm.LogLines, "\r\n")
}

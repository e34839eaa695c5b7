package view

import (
	"stendconfig/internal/ui/controller"
	"stendconfig/internal/ui/view/dialogs"
	vmodels "stendconfig/internal/ui/view/models"

	"github.com/lxn/walk"
	d "github.com/lxn/walk/declarative"
)

// MainWindowView отвечает за отображение главного окна и обработку
// действий пользователя. Вся логика — в контроллере, здесь только рендеринг.
type MainWindowView struct {
	mw       *walk.MainWindow
	ctrl     *controller.MainController
	fileDlg  *dialogs.WalkFileDialog
	tableMod *vmodels.ParamTableModel

	portCombo     *walk.ComboBox
	baudCombo     *walk.ComboBox
	dataBitsCombo *walk.ComboBox
	parityCombo   *walk.ComboBox
	stopBitsCombo *walk.ComboBox
	encodingCombo *walk.ComboBox
	refreshBtn    *walk.PushButton
	actionBtn     *walk.PushButton
	statusLabel   *walk.Label

	modelEdit    *walk.LineEdit
	paramTable   *walk.TableView
	valueEdit    *walk.LineEdit
	applyBtn     *walk.PushButton
	sendParamBtn *walk.PushButton
	importBtn    *walk.PushButton
	exportBtn    *walk.PushButton

	sendEdit *walk.LineEdit
	sendBtn  *walk.PushButton
	logView  *walk.TextEdit
}

// NewMainWindowView создает новый экземпляр MainWindowView.
func NewMainWindowView(ctrl *controller.MainController, fileDlg *dialogs.WalkFileDialog) *MainWindowView {
	return &MainWindowView{
		ctrl:     ctrl,
		fileDlg:  fileDlg,
		tableMod: vmodels.NewParamTableModel(ctrl.VM().Rows),
	}
}

// Create создает и инициализирует главное окно приложения.
func (w *MainWindowView) Create() error {
	vm := w.ctrl.VM()

	err := d.MainWindow{
		AssignTo: &w.mw,
		Title:    "Stend Config",
		Size:     d.Size{Width: 720, Height: 640},
		MinSize:  d.Size{Width: 640, Height: 560},
		Layout:   d.VBox{Margins: d.Margins{Left: 6, Top: 6, Right: 6, Bottom: 6}, Spacing: 5},
		Children: []d.Widget{
			// --- Подключение ---
			d.GroupBox{
				Title:  "Подключение",
				Layout: d.HBox{Spacing: 5},
				Children: []d.Widget{
					d.ComboBox{
						AssignTo:    &w.portCombo,
						Editable:    true,
						Model:       vm.PortList,
						MinSize:     d.Size{Width: 120},
						ToolTipText: "Имя порта, например COM9",
					},
					d.PushButton{
						AssignTo:    &w.refreshBtn,
						Text:        "⟳",
						MaxSize:     d.Size{Width: 30},
						ToolTipText: "Обновить список портов",
						OnClicked:   w.onRefreshClicked,
					},
					d.ComboBox{
						AssignTo: &w.baudCombo,
						Editable: true,
						Model:    []string{"9600", "19200", "38400", "57600", "115200", "230400"},
						Value:    vm.BaudRate,
						MaxSize:  d.Size{Width: 80},
					},
					d.ComboBox{
						AssignTo: &w.dataBitsCombo,
						Model:    []string{"5", "6", "7", "8"},
						Value:    vm.DataBits,
						MaxSize:  d.Size{Width: 45},
					},
					d.ComboBox{
						AssignTo: &w.parityCombo,
						Model:    []string{"none", "odd", "even", "mark", "space"},
						Value:    vm.Parity,
						MaxSize:  d.Size{Width: 60},
					},
					d.ComboBox{
						AssignTo: &w.stopBitsCombo,
						Model:    []string{"1", "2"},
						Value:    vm.StopBits,
						MaxSize:  d.Size{Width: 45},
					},
					d.ComboBox{
						AssignTo:    &w.encodingCombo,
						Editable:    true,
						Model:       []string{"utf-8", "windows-1251", "koi8-r", "latin1"},
						Value:       vm.Encoding,
						MaxSize:     d.Size{Width: 110},
						ToolTipText: "Кодировка устройства",
					},
					d.PushButton{
						AssignTo:  &w.actionBtn,
						Text:      vm.ActionButtonText,
						MinSize:   d.Size{Width: 90},
						OnClicked: w.onActionClicked,
					},
					d.Label{AssignTo: &w.statusLabel, Text: vm.StatusText},
					d.HSpacer{},
				},
			},
			// --- Параметры ---
			d.GroupBox{
				Title:  "Параметры",
				Layout: d.VBox{Spacing: 5},
				Children: []d.Widget{
					d.Composite{
						Layout: d.HBox{MarginsZero: true, Spacing: 5},
						Children: []d.Widget{
							d.Label{Text: "Модель:"},
							d.LineEdit{
								AssignTo:      &w.modelEdit,
								Text:          vm.ModelName,
								MinSize:       d.Size{Width: 140},
								OnTextChanged: func() { vm.ModelName = w.modelEdit.Text() },
							},
							d.HSpacer{},
							d.PushButton{
								AssignTo:  &w.importBtn,
								Text:      "Импорт...",
								OnClicked: w.onImportClicked,
							},
							d.PushButton{
								AssignTo:  &w.exportBtn,
								Text:      "Экспорт...",
								OnClicked: w.onExportClicked,
							},
						},
					},
					d.TableView{
						AssignTo: &w.paramTable,
						Model:    w.tableMod,
						Columns: []d.TableViewColumn{
							{Title: "Категория", Width: 110},
							{Title: "Параметр", Width: 180},
							{Title: "Значение", Width: 120},
							{Title: "Диапазон", Width: 150},
						},
						OnCurrentIndexChanged: w.onParamSelected,
					},
					d.Composite{
						Layout: d.HBox{MarginsZero: true, Spacing: 5},
						Children: []d.Widget{
							d.Label{Text: "Значение:"},
							d.LineEdit{AssignTo: &w.valueEdit, MinSize: d.Size{Width: 140}},
							d.PushButton{
								AssignTo:  &w.applyBtn,
								Text:      "Применить",
								OnClicked: w.onApplyValueClicked,
							},
							d.PushButton{
								AssignTo:    &w.sendParamBtn,
								Text:        "Отправить параметр",
								ToolTipText: "Передать выбранный параметр устройству",
								OnClicked:   w.onSendParamClicked,
							},
							d.HSpacer{},
						},
					},
				},
			},
			// --- Отправка и журнал ---
			d.GroupBox{
				Title:  "Обмен",
				Layout: d.VBox{Spacing: 5},
				Children: []d.Widget{
					d.Composite{
						Layout: d.HBox{MarginsZero: true, Spacing: 5},
						Children: []d.Widget{
							d.LineEdit{AssignTo: &w.sendEdit},
							d.PushButton{
								AssignTo:  &w.sendBtn,
								Text:      "Отправить",
								OnClicked: w.onSendClicked,
							},
						},
					},
					d.TextEdit{
						AssignTo: &w.logView,
						ReadOnly: true,
						VScroll:  true,
						MinSize:  d.Size{Height: 120},
						Font:     d.Font{Family: "Consolas", PointSize: 9},
					},
				},
			},
		},
	}.Create()
	if err != nil {
		return err
	}

	// Диалоги файлов принадлежат главному окну
	w.fileDlg.SetOwner(w.mw)

	// События моста применяются в потоке UI
	w.ctrl.SetDispatcher(w.mw.Synchronize)
	w.ctrl.SetOnUpdate(w.updateUI)
	w.ctrl.Initialize()

	// Закрытие окна разрывает соединение
	w.mw.Closing().Attach(func(canceled *bool, reason walk.CloseReason) {
		w.ctrl.Shutdown()
	})

	return nil
}

// Run запускает главный цикл сообщений.
func (w *MainWindowView) Run() {
	w.mw.Run()
}

func (w *MainWindowView) onRefreshClicked() {
	w.ctrl.RefreshPorts()
}

func (w *MainWindowView) onActionClicked() {
	vm := w.ctrl.VM()
	vm.SelectedPort = w.portCombo.Text()
	vm.BaudRate = w.baudCombo.Text()
	vm.DataBits = w.dataBitsCombo.Text()
	vm.Parity = w.parityCombo.Text()
	vm.StopBits = w.stopBitsCombo.Text()
	vm.Encoding = w.encodingCombo.Text()
	w.ctrl.ToggleConnection()
}

func (w *MainWindowView) onSendClicked() {
	w.ctrl.VM().SendText = w.sendEdit.Text()
	w.ctrl.Send()
	w.sendEdit.SetText(w.ctrl.VM().SendText)
}

func (w *MainWindowView) onParamSelected() {
	row := w.tableMod.Row(w.paramTable.CurrentIndex())
	if row != nil {
		w.valueEdit.SetText(row.Value)
	}
}

func (w *MainWindowView) onApplyValueClicked() {
	idx := w.paramTable.CurrentIndex()
	row := w.tableMod.Row(idx)
	if row == nil {
		return
	}
	row.Value = w.valueEdit.Text()
	w.tableMod.UpdateRow(idx)
}

func (w *MainWindowView) onSendParamClicked() {
	w.ctrl.SendParameter(w.tableMod.Row(w.paramTable.CurrentIndex()))
}

func (w *MainWindowView) onImportClicked() {
	if w.ctrl.Import() {
		w.tableMod.Reset()
	}
}

func (w *MainWindowView) onExportClicked() {
	w.ctrl.Export()
}

// updateUI синхронизирует виджеты с ViewModel (вызывается в потоке UI).
func (w *MainWindowView) updateUI() {
	vm := w.ctrl.VM()

	w.portCombo.SetModel(vm.PortList)
	if vm.SelectedPort != "" {
		w.portCombo.SetText(vm.SelectedPort)
	}

	w.actionBtn.SetText(vm.ActionButtonText)
	w.statusLabel.SetText(vm.StatusText)

	w.portCombo.SetEnabled(vm.ConnectionControlsEnabled)
	w.refreshBtn.SetEnabled(vm.ConnectionControlsEnabled)
	w.baudCombo.SetEnabled(vm.ConnectionControlsEnabled)
	w.dataBitsCombo.SetEnabled(vm.ConnectionControlsEnabled)
	w.parityCombo.SetEnabled(vm.ConnectionControlsEnabled)
	w.stopBitsCombo.SetEnabled(vm.ConnectionControlsEnabled)
	w.encodingCombo.SetEnabled(vm.ConnectionControlsEnabled)

	w.sendBtn.SetEnabled(vm.SendEnabled)
	w.sendParamBtn.SetEnabled(vm.SendEnabled)

	w.logView.SetText(vm.LogText())
}

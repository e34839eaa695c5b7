package controller

import (
	"fmt"
	"strconv"
	"strings"

	"stendconfig/internal/bridge"
	"stendconfig/internal/ui/viewmodel"
)

// MainController связывает главное окно с мостом: превращает действия
// пользователя в запросы и раскладывает ответы и push-события по ViewModel.
type MainController struct {
	vm     *viewmodel.MainViewModel
	bridge *bridge.Bridge

	onUpdate    func()
	dispatch    func(func()) // маршализация в поток UI
	unsubscribe func()
}

// NewMainController создает новый экземпляр MainController.
func NewMainController(vm *viewmodel.MainViewModel, b *bridge.Bridge) *MainController {
	return &MainController{vm: vm, bridge: b}
}

// VM возвращает модель представления.
func (c *MainController) VM() *viewmodel.MainViewModel {
	return c.vm
}

// SetOnUpdate задает callback перерисовки, вызываемый после изменения VM.
func (c *MainController) SetOnUpdate(fn func()) {
	c.onUpdate = fn
}

// SetDispatcher задает функцию маршализации в поток UI
// (walk: mw.Synchronize). До её установки события применяются напрямую.
func (c *MainController) SetDispatcher(fn func(func())) {
	c.dispatch = fn
}

// Initialize подготавливает начальные данные и подписывается на события
// моста (вызывать из View при старте).
func (c *MainController) Initialize() {
	profile := c.bridge.LastProfile()
	c.vm.SelectedPort = profile.PortName
	c.vm.BaudRate = strconv.Itoa(profile.BaudRate)
	c.vm.DataBits = strconv.Itoa(profile.DataBits)
	c.vm.Parity = profile.Parity
	c.vm.StopBits = strconv.Itoa(profile.StopBits)
	c.vm.Encoding = profile.Encoding

	c.RefreshPorts()

	events, cancel := c.bridge.Subscribe()
	c.unsubscribe = cancel
	go func() {
		for e := range events {
			ev := e
			if c.dispatch != nil {
				c.dispatch(func() { c.applyEvent(ev) })
			} else {
				c.applyEvent(ev)
			}
		}
	}()
}

// Shutdown закрывает подписку и соединение (вызывать при закрытии окна).
func (c *MainController) Shutdown() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	c.bridge.Disconnect()
}

// RefreshPorts обновляет список доступных портов во ViewModel.
func (c *MainController) RefreshPorts() {
	res := c.bridge.ListPorts()
	if !res.Success {
		c.vm.AppendLog("! " + res.Error)
	} else {
		c.vm.PortList = res.Ports
		if c.vm.SelectedPort == "" && len(res.Ports) > 0 {
			c.vm.SelectedPort = res.Ports[0]
		}
	}
	c.notifyUpdate()
}

// ToggleConnection подключает или отключает в зависимости от состояния.
func (c *MainController) ToggleConnection() {
	if c.vm.IsConnected {
		c.bridge.Disconnect()
		return
	}

	req := bridge.ConnectRequest{
		Path:     strings.TrimSpace(c.vm.SelectedPort),
		BaudRate: atoiOr(c.vm.BaudRate, 115200),
		DataBits: atoiOr(c.vm.DataBits, 8),
		Parity:   c.vm.Parity,
		StopBits: atoiOr(c.vm.StopBits, 1),
		Encoding: c.vm.Encoding,
	}
	if res := c.bridge.Connect(req); !res.Success {
		c.vm.AppendLog("! " + res.Error)
		c.notifyUpdate()
	}
	// Успех придёт push-событием статуса.
}

// Send отправляет содержимое поля ввода устройству.
func (c *MainController) Send() {
	payload := c.vm.SendText
	if payload == "" {
		return
	}
	res := c.bridge.Send(payload)
	if !res.Success {
		c.vm.AppendLog("! " + res.Error)
	} else {
		c.vm.AppendLog(">> " + payload)
		c.vm.SendText = ""
	}
	c.notifyUpdate()
}

// SendParameter формирует команду установки параметра выбранной строки.
func (c *MainController) SendParameter(row *viewmodel.ParamRow) {
	if row == nil || strings.TrimSpace(row.Value) == "" {
		return
	}
	res := c.bridge.Send(fmt.Sprintf("SET %s=%s\r\n", row.Name, row.Value))
	if !res.Success {
		c.vm.AppendLog("! " + res.Error)
	} else {
		c.vm.AppendLog(fmt.Sprintf(">> SET %s=%s", row.Name, row.Value))
	}
	c.notifyUpdate()
}

// Import загружает набор параметров из выбранной книги в таблицу.
// Возвращает true, если таблица изменилась.
func (c *MainController) Import() bool {
	res := c.bridge.Import()
	switch {
	case res.Canceled:
		return false
	case !res.Success:
		c.vm.AppendLog("! " + res.Error)
		c.notifyUpdate()
		return false
	}

	c.vm.ApplyParameters(res.Parameters)
	c.vm.AppendLog(fmt.Sprintf("Импорт: %s (%d параметров)", res.FilePath, len(res.Parameters)))
	c.notifyUpdate()
	return true
}

// Export сохраняет таблицу в книгу по шаблону.
func (c *MainController) Export() {
	res := c.bridge.Export(c.vm.Parameters(), c.vm.ModelName)
	switch {
	case res.Canceled:
		return
	case !res.Success:
		c.vm.AppendLog("! " + res.Error)
	default:
		c.vm.AppendLog("Экспорт: " + res.FilePath)
	}
	c.notifyUpdate()
}

// applyEvent раскладывает push-событие по ViewModel (в потоке UI).
func (c *MainController) applyEvent(e bridge.Event) {
	switch e.Type {
	case bridge.EventStatus:
		if e.Status == nil {
			return
		}
		c.vm.IsConnected = e.Status.Connected
		if e.Status.Connected {
			c.vm.StatusText = fmt.Sprintf("Подключено: %s @ %d", e.Status.PortName, e.Status.BaudRate)
		}
		c.vm.UpdateUIState()
	case bridge.EventData:
		c.vm.AppendLog("<< " + strings.TrimRight(e.Data, "\r\n"))
	case bridge.EventError:
		c.vm.AppendLog("! " + e.Error)
	}
	c.notifyUpdate()
}

func (c *MainController) notifyUpdate() {
	if c.onUpdate != nil {
		c.onUpdate()
	}
}

// atoiOr разбирает строку из поля формы, подставляя запасное значение.
func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

package bridge

import (
	"stendconfig/internal/domain/models"
	"stendconfig/internal/service/connection"
	"stendconfig/internal/service/params"
)

// Bridge — граница между UI и хост-процессом: фиксированный набор
// операций запрос/ответ плюс подписка на push-события через Hub.
// Каждая операция выполняется синхронно и возвращает конверт.
type Bridge struct {
	conn   *connection.Service
	params *params.Service
	hub    *Hub
}

// New создает новый экземпляр Bridge.
func New(conn *connection.Service, paramsSvc *params.Service, hub *Hub) *Bridge {
	return &Bridge{
		conn:   conn,
		params: paramsSvc,
		hub:    hub,
	}
}

// ConnectRequest — параметры операции подключения. Нулевые поля
// заменяются значениями по умолчанию (8-N-1, utf-8).
type ConnectRequest struct {
	Path     string `json:"path"`
	BaudRate int    `json:"baud"`
	DataBits int    `json:"dataBits,omitempty"`
	Parity   string `json:"parity,omitempty"`
	StopBits int    `json:"stopBits,omitempty"`
	Encoding string `json:"encoding,omitempty"`
}

// profile применяет значения по умолчанию и собирает доменный профиль.
func (r ConnectRequest) profile() models.ConnectionProfile {
	p := models.DefaultProfile()
	p.PortName = r.Path
	if r.BaudRate > 0 {
		p.BaudRate = r.BaudRate
	}
	if r.DataBits > 0 {
		p.DataBits = r.DataBits
	}
	if r.Parity != "" {
		p.Parity = r.Parity
	}
	if r.StopBits > 0 {
		p.StopBits = r.StopBits
	}
	if r.Encoding != "" {
		p.Encoding = r.Encoding
	}
	return p
}

// ListPorts возвращает доступные последовательные порты.
func (b *Bridge) ListPorts() PortsResult {
	list, err := b.conn.ListPorts()
	if err != nil {
		return PortsResult{Error: err.Error()}
	}
	return PortsResult{Success: true, Ports: list}
}

// Connect открывает соединение, закрыв предыдущее при его наличии.
func (b *Bridge) Connect(req ConnectRequest) Result {
	if err := b.conn.Connect(req.profile()); err != nil {
		return fail(err)
	}
	return ok()
}

// Disconnect закрывает соединение; без соединения — успешная пустая операция.
func (b *Bridge) Disconnect() Result {
	b.conn.Disconnect()
	return ok()
}

// Send отправляет строку устройству.
func (b *Bridge) Send(payload string) Result {
	if err := b.conn.Send(payload); err != nil {
		return fail(err)
	}
	return ok()
}

// Import читает набор параметров из выбранной пользователем книги.
func (b *Bridge) Import() ImportResult {
	out, err := b.params.Import()
	if err != nil {
		return ImportResult{Error: err.Error()}
	}
	if out.Canceled {
		return ImportResult{Canceled: true}
	}
	return ImportResult{Success: true, Parameters: out.Parameters, FilePath: out.FilePath}
}

// Export сохраняет набор параметров в книгу по шаблону.
func (b *Bridge) Export(set models.ParameterSet, modelName string) ExportResult {
	out, err := b.params.Export(set, modelName)
	if err != nil {
		return ExportResult{Error: err.Error()}
	}
	if out.Canceled {
		return ExportResult{Canceled: true}
	}
	return ExportResult{Success: true, FilePath: out.FilePath}
}

// Subscribe подписывает на push-события (статус, данные, ошибки).
func (b *Bridge) Subscribe() (<-chan Event, func()) {
	return b.hub.Subscribe()
}

// LastProfile возвращает последний использованный профиль для
// предзаполнения формы подключения.
func (b *Bridge) LastProfile() models.ConnectionProfile {
	return b.conn.LastProfile()
}

// IsConnected сообщает текущее состояние подключения.
func (b *Bridge) IsConnected() bool {
	return b.conn.IsConnected()
}

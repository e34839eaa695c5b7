package ports

import "stendconfig/internal/domain/models"

// SerialDriver определяет интерфейс доступа к последовательным портам.
// Все методы используют чистые доменные типы, не зависящие от внешних библиотек.
type SerialDriver interface {
	// ListPorts возвращает имена доступных в системе последовательных портов.
	ListPorts() ([]string, error)

	// Open открывает порт с параметрами из профиля. Возвращённый канал
	// ещё не читает данные: приём начинается после вызова Start.
	Open(profile models.ConnectionProfile) (SerialLink, error)
}

// SerialLink — одно открытое последовательное соединение.
type SerialLink interface {
	// Start запускает приём данных. События доставляются из фоновой
	// горутины до закрытия канала.
	Start(watcher LinkWatcher)

	// Write кодирует и отправляет строку, дожидаясь фактического сброса
	// передающего буфера.
	Write(payload string) error

	// Close закрывает соединение. Повторный вызов безопасен.
	Close() error
}

// LinkWatcher получает асинхронные события открытого соединения.
type LinkWatcher interface {
	// OnData вызывается для каждой принятой порции данных (уже в UTF-8).
	OnData(text string)

	// OnError вызывается при ошибке чтения, не означающей закрытия канала.
	OnError(msg string)

	// OnClosed вызывается один раз, когда канал закрыт извне
	// (устройство отключено или порт пропал).
	OnClosed()
}

package bridge

import "stendconfig/internal/domain/models"

// EventType различает push-события моста.
type EventType string

const (
	// EventStatus — изменение состояния подключения.
	EventStatus EventType = "status"
	// EventData — принятая от устройства строка.
	EventData EventType = "data"
	// EventError — асинхронная ошибка линии.
	EventError EventType = "error"
)

// Event — push-событие, доставляемое подписчикам независимо от
// циклов запрос/ответ.
type Event struct {
	Type   EventType                `json:"type"`
	Status *models.ConnectionStatus `json:"status,omitempty"`
	Data   string                   `json:"data,omitempty"`
	Error  string                   `json:"error,omitempty"`
}

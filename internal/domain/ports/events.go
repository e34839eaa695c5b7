package ports

import "stendconfig/internal/domain/models"

// EventPublisher принимает push-события для доставки подписчикам UI.
// Публикация не блокирует вызывающего: медленный подписчик теряет
// события, а не тормозит обмен с устройством.
type EventPublisher interface {
	// PublishStatus сообщает об изменении состояния подключения.
	PublishStatus(status models.ConnectionStatus)

	// PublishData доставляет принятую от устройства строку.
	PublishData(text string)

	// PublishError доставляет текст асинхронной ошибки линии.
	PublishError(msg string)
}

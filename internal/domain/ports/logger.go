package ports

// Logger определяет интерфейс для абстракции логирования.
// Позволяет подменить реализацию (стандартный log, slog и т.п.) без
// изменения сервисов.
type Logger interface {
	// Debug выводит отладочную информацию (TX/RX обмена)
	Debug(msg string, args ...interface{})

	// Info выводит информационные сообщения
	Info(msg string, args ...interface{})

	// Warn выводит предупреждения
	Warn(msg string, args ...interface{})

	// Error выводит ошибки
	Error(msg string, args ...interface{})

	// Fatal выводит критические ошибки и завершает программу
	Fatal(msg string, args ...interface{})
}

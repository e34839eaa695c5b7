package serialport

import (
	"errors"
	"io"
	"sync/atomic"

	"stendconfig/internal/domain/ports"

	"go.bug.st/serial"
)

// Link — одно открытое последовательное соединение.
// Чтение идёт в фоновой горутине, запись — из вызывающего потока;
// go.bug.st/serial допускает такое совмещение.
type Link struct {
	port     serial.Port
	encoding string
	log      ports.Logger
	closed   atomic.Bool
}

func newLink(port serial.Port, encoding string, log ports.Logger) *Link {
	return &Link{
		port:     port,
		encoding: encoding,
		log:      log,
	}
}

// Start запускает приём данных. События уходят наблюдателю до закрытия канала.
func (l *Link) Start(watcher ports.LinkWatcher) {
	go l.readLoop(watcher)
}

// Write кодирует строку в кодировку устройства, отправляет её и ждёт
// фактического сброса передающего буфера.
func (l *Link) Write(payload string) error {
	if l.closed.Load() {
		return errors.New("порт закрыт")
	}
	data, err := encodePayload(l.encoding, payload)
	if err != nil {
		return err
	}
	if _, err := l.port.Write(data); err != nil {
		return err
	}
	// Успех отправки — это опустевший буфер, а не принятая в очередь запись.
	return l.port.Drain()
}

// Close закрывает порт. Повторный вызов безопасен.
func (l *Link) Close() error {
	if !l.closed.CompareAndSwap(false, true) {
		return nil
	}
	return l.port.Close()
}

// readLoop читает порт до закрытия, перекодируя принятые байты в UTF-8.
func (l *Link) readLoop(watcher ports.LinkWatcher) {
	reader := decodeReader(l.encoding, l.port)
	buf := make([]byte, 1024)

	for {
		n, err := reader.Read(buf)
		if n > 0 {
			watcher.OnData(string(buf[:n]))
		}
		if err == nil {
			continue
		}

		// Локальный Close тоже обрывает Read — наблюдателя при этом
		// не уведомляем, закрытие инициировал он сам.
		if l.closed.Load() {
			return
		}

		if !errors.Is(err, io.EOF) {
			l.log.Warn("ошибка чтения порта: %v", err)
			watcher.OnError(err.Error())
		}
		l.closed.Store(true)
		l.port.Close()
		watcher.OnClosed()
		return
	}
}

package models

import "time"

// Метки четности линии.
const (
	ParityNone  = "none"
	ParityOdd   = "odd"
	ParityEven  = "even"
	ParityMark  = "mark"
	ParitySpace = "space"
)

// EncodingUTF8 — кодировка устройства по умолчанию (сквозная передача).
const EncodingUTF8 = "utf-8"

// ConnectionProfile описывает параметры последовательного подключения к стенду
type ConnectionProfile struct {
	PortName string    `json:"portName"`           // Например "COM9" или "/dev/ttyUSB0"
	BaudRate int       `json:"baudRate"`           // Например 115200
	DataBits int       `json:"dataBits"`           // 5..8
	Parity   string    `json:"parity"`             // none/odd/even/mark/space
	StopBits int       `json:"stopBits"`           // 1 или 2
	Encoding string    `json:"encoding,omitempty"` // Метка кодировки устройства ("utf-8", "windows-1251", ...)
	LastUsed time.Time `json:"lastUsed,omitempty"` // Время последнего успешного подключения
}

// DefaultProfile возвращает профиль с параметрами линии по умолчанию (8-N-1).
func DefaultProfile() ConnectionProfile {
	return ConnectionProfile{
		BaudRate: 115200,
		DataBits: 8,
		Parity:   ParityNone,
		StopBits: 1,
		Encoding: EncodingUTF8,
	}
}

// ConnectionStatus описывает текущее состояние подключения для отображения в UI.
type ConnectionStatus struct {
	Connected bool   `json:"connected"`
	PortName  string `json:"port,omitempty"`
	BaudRate  int    `json:"baudRate,omitempty"`
}

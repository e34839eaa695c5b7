package serialport

import (
	"fmt"
	"sort"

	"stendconfig/internal/domain/models"
	"stendconfig/internal/domain/ports"

	"go.bug.st/serial"
)

// Driver реализует ports.SerialDriver поверх go.bug.st/serial.
type Driver struct {
	log ports.Logger
}

// NewDriver создает новый экземпляр драйвера последовательных портов.
func NewDriver(log ports.Logger) *Driver {
	return &Driver{log: log}
}

// ListPorts возвращает отсортированный список имён портов в системе.
func (d *Driver) ListPorts() ([]string, error) {
	list, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("ошибка перечисления портов: %w", err)
	}
	sort.Strings(list)
	return list, nil
}

// Open открывает порт с параметрами линии из профиля.
func (d *Driver) Open(profile models.ConnectionProfile) (ports.SerialLink, error) {
	parity, err := parityFromLabel(profile.Parity)
	if err != nil {
		return nil, err
	}
	stopBits, err := stopBitsFromCount(profile.StopBits)
	if err != nil {
		return nil, err
	}

	mode := &serial.Mode{
		BaudRate: profile.BaudRate,
		DataBits: profile.DataBits,
		Parity:   parity,
		StopBits: stopBits,
	}
	port, err := serial.Open(profile.PortName, mode)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия порта %s: %w", profile.PortName, err)
	}

	return newLink(port, profile.Encoding, d.log), nil
}

// parityFromLabel переводит доменную метку четности в значение библиотеки.
func parityFromLabel(label string) (serial.Parity, error) {
	switch label {
	case "", models.ParityNone:
		return serial.NoParity, nil
	case models.ParityOdd:
		return serial.OddParity, nil
	case models.ParityEven:
		return serial.EvenParity, nil
	case models.ParityMark:
		return serial.MarkParity, nil
	case models.ParitySpace:
		return serial.SpaceParity, nil
	default:
		return serial.NoParity, fmt.Errorf("неизвестная четность: %q", label)
	}
}

// stopBitsFromCount переводит количество стоповых бит в значение библиотеки.
func stopBitsFromCount(count int) (serial.StopBits, error) {
	switch count {
	case 0, 1:
		return serial.OneStopBit, nil
	case 2:
		return serial.TwoStopBits, nil
	default:
		return serial.OneStopBit, fmt.Errorf("недопустимое число стоповых бит: %d", count)
	}
}

package serialport

import (
	"fmt"
	"io"
	"strings"

	"stendconfig/internal/domain/models"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// encoderFor возвращает кодировщик для метки кодировки устройства.
// nil означает сквозную передачу UTF-8.
func encoderFor(label string) (*encoding.Encoder, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "", models.EncodingUTF8:
		return nil, nil
	case "windows-1251", "cp1251":
		// Частый случай для отечественных стендов, выделен явно.
		return charmap.Windows1251.NewEncoder(), nil
	default:
		if e, _ := charset.Lookup(label); e != nil {
			return e.NewEncoder(), nil
		}
		return nil, fmt.Errorf("неизвестная кодировка устройства: %q", label)
	}
}

// encodePayload конвертирует строку из UTF-8 в кодировку устройства.
func encodePayload(label, s string) ([]byte, error) {
	enc, err := encoderFor(label)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return []byte(s), nil
	}
	res, _, err := transform.Bytes(enc, []byte(s))
	if err != nil {
		return nil, fmt.Errorf("ошибка кодирования в %s: %w", label, err)
	}
	return res, nil
}

// decodeReader оборачивает порт декодером входящего потока.
// При неизвестной метке читаем байты как есть.
func decodeReader(label string, r io.Reader) io.Reader {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "", models.EncodingUTF8:
		return r
	}
	decoded, err := charset.NewReaderLabel(label, r)
	if err != nil {
		return r
	}
	return decoded
}

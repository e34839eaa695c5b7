package serialport

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestEncodePayloadPassthrough(t *testing.T) {
	for _, label := range []string{"", "utf-8", "UTF-8"} {
		got, err := encodePayload(label, "SET Voltage=12.5\r\n")
		if err != nil {
			t.Fatalf("label %q: unexpected error: %v", label, err)
		}
		if string(got) != "SET Voltage=12.5\r\n" {
			t.Errorf("label %q: payload changed: %q", label, got)
		}
	}
}

func TestEncodePayloadWindows1251(t *testing.T) {
	got, err := encodePayload("windows-1251", "Я")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, []byte{0xdf}) {
		t.Errorf("expected CP1251 0xdf, got % x", got)
	}
}

func TestEncodePayloadUnknownLabel(t *testing.T) {
	if _, err := encodePayload("koi-42", "x"); err == nil {
		t.Error("expected error for unknown encoding label")
	}
}

func TestDecodeReaderWindows1251(t *testing.T) {
	r := decodeReader("windows-1251", bytes.NewReader([]byte{0xdf}))
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "Я" {
		t.Errorf("expected decoded Я, got %q", out)
	}
}

func TestDecodeReaderUnknownLabelFallsBack(t *testing.T) {
	r := decodeReader("koi-42", strings.NewReader("raw"))
	out, _ := io.ReadAll(r)
	if string(out) != "raw" {
		t.Errorf("expected raw passthrough, got %q", out)
	}
}

func TestParityFromLabel(t *testing.T) {
	for _, label := range []string{"", "none", "odd", "even", "mark", "space"} {
		if _, err := parityFromLabel(label); err != nil {
			t.Errorf("label %q: unexpected error: %v", label, err)
		}
	}
	if _, err := parityFromLabel("both"); err == nil {
		t.Error("expected error for unknown parity label")
	}
}

func TestStopBitsFromCount(t *testing.T) {
	for _, n := range []int{0, 1, 2} {
		if _, err := stopBitsFromCount(n); err != nil {
			t.Errorf("count %d: unexpected error: %v", n, err)
		}
	}
	if _, err := stopBitsFromCount(3); err == nil {
		t.Error("expected error for 3 stop bits")
	}
}

package connection

import (
	"errors"
	"testing"

	"stendconfig/internal/domain/models"
	"stendconfig/internal/domain/ports"
)

// fakeLink записывает операции вместо работы с железом.
type fakeLink struct {
	watcher ports.LinkWatcher
	writes  []string
	closed  bool
}

func (l *fakeLink) Start(w ports.LinkWatcher) { l.watcher = w }
func (l *fakeLink) Write(payload string) error {
	if l.closed {
		return errors.New("closed")
	}
	l.writes = append(l.writes, payload)
	return nil
}
func (l *fakeLink) Close() error {
	l.closed = true
	return nil
}

type fakeDriver struct {
	links   []*fakeLink
	openErr error
}

func (d *fakeDriver) ListPorts() ([]string, error) { return []string{"COM1", "COM2"}, nil }
func (d *fakeDriver) Open(models.ConnectionProfile) (ports.SerialLink, error) {
	if d.openErr != nil {
		return nil, d.openErr
	}
	l := &fakeLink{}
	d.links = append(d.links, l)
	return l, nil
}

// eventRecorder накапливает опубликованные события.
type eventRecorder struct {
	statuses []models.ConnectionStatus
	data     []string
	errs     []string
}

func (r *eventRecorder) PublishStatus(st models.ConnectionStatus) {
	r.statuses = append(r.statuses, st)
}

func (r *eventRecorder) PublishData(text string) { r.data = append(r.data, text) }
func (r *eventRecorder) PublishError(msg string) { r.errs = append(r.errs, msg) }

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func newTestService() (*Service, *fakeDriver, *eventRecorder) {
	drv := &fakeDriver{}
	rec := &eventRecorder{}
	return NewService(drv, nil, rec, nopLogger{}), drv, rec
}

func profile(port string) models.ConnectionProfile {
	p := models.DefaultProfile()
	p.PortName = port
	return p
}

func TestSendWithoutConnect(t *testing.T) {
	svc, drv, _ := newTestService()
	if err := svc.Send("ping"); !errors.Is(err, ErrNotConnected) {
		t.Errorf("expected ErrNotConnected, got %v", err)
	}
	if len(drv.links) != 0 {
		t.Error("no link must be opened by Send")
	}
}

func TestConnectPublishesStatusAndWrites(t *testing.T) {
	svc, drv, rec := newTestService()
	if err := svc.Connect(profile("COM5")); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if !svc.IsConnected() {
		t.Error("expected connected state")
	}
	if len(rec.statuses) != 1 || !rec.statuses[0].Connected || rec.statuses[0].PortName != "COM5" {
		t.Errorf("unexpected status events: %+v", rec.statuses)
	}

	if err := svc.Send("SET Voltage=12"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if got := drv.links[0].writes; len(got) != 1 || got[0] != "SET Voltage=12" {
		t.Errorf("unexpected writes: %v", got)
	}
}

func TestConnectClosesPreviousLink(t *testing.T) {
	svc, drv, _ := newTestService()
	if err := svc.Connect(profile("COM1")); err != nil {
		t.Fatalf("first connect: %v", err)
	}
	if err := svc.Connect(profile("COM2")); err != nil {
		t.Fatalf("second connect: %v", err)
	}

	if len(drv.links) != 2 {
		t.Fatalf("expected 2 opened links, got %d", len(drv.links))
	}
	if !drv.links[0].closed {
		t.Error("first link must be closed before the second opens")
	}
	if drv.links[1].closed {
		t.Error("second link must stay open")
	}
}

func TestConnectFailureKeepsDisconnected(t *testing.T) {
	svc, drv, rec := newTestService()
	drv.openErr = errors.New("port busy")

	if err := svc.Connect(profile("COM1")); err == nil {
		t.Fatal("expected connect error")
	}
	if svc.IsConnected() {
		t.Error("failed connect must not retain a link")
	}
	if len(rec.statuses) != 0 {
		t.Errorf("no status event expected on failure, got %+v", rec.statuses)
	}
}

func TestDisconnectIdempotent(t *testing.T) {
	svc, _, rec := newTestService()
	svc.Disconnect() // без подключения — пустая операция
	if len(rec.statuses) != 0 {
		t.Errorf("idle disconnect must not publish events, got %+v", rec.statuses)
	}

	if err := svc.Connect(profile("COM1")); err != nil {
		t.Fatalf("connect: %v", err)
	}
	svc.Disconnect()
	svc.Disconnect()

	if svc.IsConnected() {
		t.Error("expected disconnected state")
	}
	// connected + один disconnected
	if len(rec.statuses) != 2 || rec.statuses[1].Connected {
		t.Errorf("unexpected status events: %+v", rec.statuses)
	}
}

func TestExternalCloseClearsReference(t *testing.T) {
	svc, drv, rec := newTestService()
	if err := svc.Connect(profile("COM1")); err != nil {
		t.Fatalf("connect: %v", err)
	}

	drv.links[0].watcher.OnClosed()

	if svc.IsConnected() {
		t.Error("external close must clear the stale reference")
	}
	last := rec.statuses[len(rec.statuses)-1]
	if last.Connected {
		t.Errorf("expected disconnected status, got %+v", last)
	}

	// Следующий Connect ведёт себя как первый.
	if err := svc.Connect(profile("COM1")); err != nil {
		t.Fatalf("reconnect after unplug: %v", err)
	}
	if !svc.IsConnected() {
		t.Error("expected connected state after reconnect")
	}
}

func TestStaleCloseFromReplacedLinkIgnored(t *testing.T) {
	svc, drv, rec := newTestService()
	if err := svc.Connect(profile("COM1")); err != nil {
		t.Fatalf("first connect: %v", err)
	}
	if err := svc.Connect(profile("COM2")); err != nil {
		t.Fatalf("second connect: %v", err)
	}

	before := len(rec.statuses)
	drv.links[0].watcher.OnClosed() // запоздавшее событие старого канала

	if !svc.IsConnected() {
		t.Error("stale close must not drop the active link")
	}
	if len(rec.statuses) != before {
		t.Errorf("stale close must not publish events, got %+v", rec.statuses[before:])
	}
}

func TestDataAndErrorForwarding(t *testing.T) {
	svc, drv, rec := newTestService()
	if err := svc.Connect(profile("COM1")); err != nil {
		t.Fatalf("connect: %v", err)
	}

	drv.links[0].watcher.OnData("OK 12.5\r\n")
	drv.links[0].watcher.OnError("framing error")

	if len(rec.data) != 1 || rec.data[0] != "OK 12.5\r\n" {
		t.Errorf("unexpected data events: %v", rec.data)
	}
	if len(rec.errs) != 1 || rec.errs[0] != "framing error" {
		t.Errorf("unexpected error events: %v", rec.errs)
	}
}

func TestLastProfileDefaults(t *testing.T) {
	svc, _, _ := newTestService()
	p := svc.LastProfile()
	if p.BaudRate != 115200 || p.DataBits != 8 || p.Parity != models.ParityNone || p.StopBits != 1 {
		t.Errorf("unexpected default profile: %+v", p)
	}
}

package connection

import (
	"errors"
	"sync"
	"time"

	"stendconfig/internal/domain/models"
	"stendconfig/internal/domain/ports"
)

// ErrNotConnected возвращается при попытке отправки без открытого соединения.
var ErrNotConnected = errors.New("нет активного подключения")

// Service отвечает за жизненный цикл единственного последовательного
// соединения процесса. Все операции сериализуются мьютексом, поэтому два
// одновременных Connect не пересекаются: второй дождётся первого и закроет
// его соединение перед открытием своего.
type Service struct {
	driver ports.SerialDriver
	repo   ports.ProfileRepository
	events ports.EventPublisher
	log    ports.Logger

	mu      sync.Mutex
	link    ports.SerialLink
	profile models.ConnectionProfile
}

// NewService создает новый экземпляр Service.
func NewService(driver ports.SerialDriver, repo ports.ProfileRepository, events ports.EventPublisher, log ports.Logger) *Service {
	return &Service{
		driver: driver,
		repo:   repo,
		events: events,
		log:    log,
	}
}

// ListPorts возвращает список доступных в системе последовательных портов.
func (s *Service) ListPorts() ([]string, error) {
	return s.driver.ListPorts()
}

// LastProfile возвращает последний использованный профиль подключения
// или профиль по умолчанию, если сохранённого нет.
func (s *Service) LastProfile() models.ConnectionProfile {
	if s.repo != nil {
		if p, err := s.repo.Load(); err != nil {
			s.log.Warn("не удалось загрузить профиль: %v", err)
		} else if p != nil {
			return *p
		}
	}
	return models.DefaultProfile()
}

// Connect открывает соединение с параметрами профиля. Уже открытое
// соединение закрывается первым: в процессе живёт не больше одного.
func (s *Service) Connect(profile models.ConnectionProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.link != nil {
		// Результат закрытия не важен, новое соединение открываем в любом случае.
		s.link.Close()
		s.link = nil
	}

	link, err := s.driver.Open(profile)
	if err != nil {
		return err
	}

	s.link = link
	s.profile = profile
	link.Start(&linkWatcher{svc: s, link: link})

	if s.repo != nil {
		saved := profile
		saved.LastUsed = time.Now()
		if err := s.repo.Save(&saved); err != nil {
			s.log.Warn("не удалось сохранить профиль: %v", err)
		}
	}

	s.log.Info("подключено: %s @ %d", profile.PortName, profile.BaudRate)
	s.events.PublishStatus(models.ConnectionStatus{
		Connected: true,
		PortName:  profile.PortName,
		BaudRate:  profile.BaudRate,
	})
	return nil
}

// Disconnect закрывает соединение, если оно открыто. Повторный вызов
// без соединения — успешная пустая операция.
func (s *Service) Disconnect() {
	s.mu.Lock()
	if s.link == nil {
		s.mu.Unlock()
		return
	}
	s.link.Close()
	s.link = nil
	s.mu.Unlock()

	s.log.Info("отключено")
	s.events.PublishStatus(models.ConnectionStatus{Connected: false})
}

// Send отправляет строку устройству. Без открытого соединения сразу
// возвращает ErrNotConnected, ничего не записывая.
func (s *Service) Send(payload string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.link == nil {
		return ErrNotConnected
	}
	s.log.Debug(">> TX: %s", payload)
	return s.link.Write(payload)
}

// IsConnected сообщает, открыто ли соединение.
func (s *Service) IsConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.link != nil
}

// handleClosed обрабатывает внешнее закрытие канала (выдернут кабель,
// пропал порт). Ссылка всегда очищается: устаревший закрытый дескриптор
// не должен мешать следующему Connect.
func (s *Service) handleClosed(link ports.SerialLink) {
	s.mu.Lock()
	if s.link != link {
		// Уже заменено новым соединением или закрыто явно.
		s.mu.Unlock()
		return
	}
	port := s.profile.PortName
	s.link = nil
	s.mu.Unlock()

	s.log.Warn("соединение с %s закрыто извне", port)
	s.events.PublishStatus(models.ConnectionStatus{Connected: false})
}

// linkWatcher пересылает события конкретного соединения в сервис.
// Хранит ссылку на своё соединение, чтобы запоздавшие события старого
// канала не трогали новый.
type linkWatcher struct {
	svc  *Service
	link ports.SerialLink
}

func (w *linkWatcher) OnData(text string) {
	w.svc.log.Debug("<< RX: %s", text)
	w.svc.events.PublishData(text)
}

func (w *linkWatcher) OnError(msg string) {
	w.svc.events.PublishError(msg)
}

func (w *linkWatcher) OnClosed() {
	w.svc.handleClosed(w.link)
}

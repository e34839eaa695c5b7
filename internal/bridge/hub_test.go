package bridge

import (
	"testing"

	"stendconfig/internal/domain/models"
)

func TestHubDeliversToSubscriber(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe()
	defer cancel()

	hub.PublishData("OK\r\n")
	hub.PublishError("line noise")
	hub.PublishStatus(models.ConnectionStatus{Connected: true, PortName: "COM3", BaudRate: 9600})

	got := []Event{<-ch, <-ch, <-ch}
	if got[0].Type != EventData || got[0].Data != "OK\r\n" {
		t.Errorf("unexpected first event: %+v", got[0])
	}
	if got[1].Type != EventError || got[1].Error != "line noise" {
		t.Errorf("unexpected second event: %+v", got[1])
	}
	if got[2].Type != EventStatus || got[2].Status == nil || got[2].Status.PortName != "COM3" {
		t.Errorf("unexpected third event: %+v", got[2])
	}
}

func TestHubDropsWhenSubscriberLags(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe()
	defer cancel()

	// Переполняем буфер, Publish не должен блокироваться.
	for i := 0; i < subscriberBuffer+10; i++ {
		hub.PublishData("x")
	}

	count := 0
	for {
		select {
		case <-ch:
			count++
			continue
		default:
		}
		break
	}
	if count != subscriberBuffer {
		t.Errorf("expected %d buffered events, got %d", subscriberBuffer, count)
	}
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe()

	cancel()
	cancel() // повторная отписка безопасна

	if _, open := <-ch; open {
		t.Error("expected closed channel after unsubscribe")
	}

	// Публикация после отписки никого не трогает.
	hub.PublishData("late")
}

func TestHubClose(t *testing.T) {
	hub := NewHub()
	ch, _ := hub.Subscribe()

	hub.Close()
	hub.Close()

	if _, open := <-ch; open {
		t.Error("expected closed channel after hub close")
	}

	late, _ := hub.Subscribe()
	if _, open := <-late; open {
		t.Error("subscribe after close must return a closed channel")
	}
}

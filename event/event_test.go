package event

import "testing"

func TestPublishSubscribe(t *testing.T) {
	b := New(4)
	sub := b.Subscribe(T("button", "rec", "pressed"))
	defer sub.Close()

	b.Publish(&Message{Topic: T("button", "rec", "pressed"), Payload: 1})

	select {
	case m := <-sub.Channel():
		if m.Payload != 1 {
			t.Fatalf("payload = %v", m.Payload)
		}
	default:
		t.Fatal("message not delivered")
	}
}

func TestRetainedReplaysToLateSubscriber(t *testing.T) {
	b := New(4)
	b.Publish(&Message{Topic: T("storage", "card"), Payload: "mounted", Retained: true})

	sub := b.Subscribe(T("storage", "card"))
	defer sub.Close()

	select {
	case m := <-sub.Channel():
		if m.Payload != "mounted" {
			t.Fatalf("retained payload = %v", m.Payload)
		}
	default:
		t.Fatal("retained message not replayed")
	}
}

func TestRetainedNilPayloadClears(t *testing.T) {
	b := New(4)
	b.Publish(&Message{Topic: T("storage", "card"), Payload: "mounted", Retained: true})
	b.Publish(&Message{Topic: T("storage", "card"), Payload: nil, Retained: true})

	sub := b.Subscribe(T("storage", "card"))
	defer sub.Close()
	select {
	case m := <-sub.Channel():
		t.Fatalf("expected no replay after clear, got %v", m.Payload)
	default:
	}
}

func TestFullQueueDropsOldest(t *testing.T) {
	b := New(2)
	sub := b.Subscribe(T("x"))
	defer sub.Close()

	for i := 0; i < 5; i++ {
		b.Publish(&Message{Topic: T("x"), Payload: i})
	}
	// Queue holds the two newest.
	first := <-sub.Channel()
	second := <-sub.Channel()
	if first.Payload != 3 || second.Payload != 4 {
		t.Fatalf("expected newest two (3,4), got (%v,%v)", first.Payload, second.Payload)
	}
}

func TestCloseStopsDelivery(t *testing.T) {
	b := New(2)
	sub := b.Subscribe(T("y"))
	sub.Close()
	// Publishing after close must not panic or deliver.
	b.Publish(&Message{Topic: T("y"), Payload: 1})
	if _, ok := <-sub.Channel(); ok {
		t.Fatal("channel should be closed")
	}
}

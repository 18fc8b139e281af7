package realtime

import (
	"testing"

	"go.uber.org/zap"
)

func TestPublishFiltersByTableAndGym(t *testing.T) {
	h := NewHub(zap.NewNop())

	bookings := h.Subscribe(TableBookings, 1)
	otherGym := h.Subscribe(TableBookings, 2)
	allTables := h.Subscribe("", 0)
	defer h.Unsubscribe(bookings)
	defer h.Unsubscribe(otherGym)
	defer h.Unsubscribe(allTables)

	h.Publish(Event{Table: TableBookings, Kind: KindInsert, RowID: 10, GymID: 1})

	select {
	case ev := <-bookings.C:
		if ev.RowID != 10 {
			t.Fatalf("wrong event: %+v", ev)
		}
	default:
		t.Fatalf("matching subscriber got nothing")
	}

	select {
	case ev := <-otherGym.C:
		t.Fatalf("other gym received event: %+v", ev)
	default:
	}

	select {
	case <-allTables.C:
	default:
		t.Fatalf("wildcard subscriber got nothing")
	}
}

func TestPublishDropsWhenSubscriberFull(t *testing.T) {
	h := NewHub(zap.NewNop())

	sub := h.Subscribe(TableNotifications, 0)
	defer h.Unsubscribe(sub)

	// one past the buffer; the publisher must not block
	for i := 0; i < cap(sub.C)+1; i++ {
		h.Publish(Event{Table: TableNotifications, RowID: uint(i)})
	}

	if len(sub.C) != cap(sub.C) {
		t.Fatalf("expected full buffer, got %d", len(sub.C))
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	h := NewHub(zap.NewNop())

	sub := h.Subscribe(TableBookings, 1)
	h.Unsubscribe(sub)

	if _, open := <-sub.C; open {
		t.Fatalf("channel still open after unsubscribe")
	}

	// double unsubscribe must not panic
	h.Unsubscribe(sub)

	// publishing after unsubscribe must not panic either
	h.Publish(Event{Table: TableBookings, GymID: 1})
}

package realtime

import (
	"sync"

	"go.uber.org/zap"
)

// In-process change feed: write paths publish row-change events, screens
// subscribe per table and gym. Delivery is best-effort — a slow consumer
// loses events rather than blocking a write path.

type Kind string

const (
	KindInsert Kind = "insert"
	KindUpdate Kind = "update"
	KindDelete Kind = "delete"
)

type Event struct {
	Table   string `json:"table"`
	Kind    Kind   `json:"kind"`
	RowID   uint   `json:"row_id"`
	GymID   uint   `json:"gym_id"`
	UserID  uint   `json:"user_id,omitempty"`
	Payload any    `json:"payload,omitempty"`
}

type Subscription struct {
	Table  string
	GymID  uint
	C      chan Event
	closed bool
}

type Hub struct {
	mu   sync.Mutex
	subs map[*Subscription]struct{}
	log  *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		subs: make(map[*Subscription]struct{}),
		log:  log,
	}
}

// Subscribe registers a filtered listener. GymID 0 matches every gym.
func (h *Hub) Subscribe(table string, gymID uint) *Subscription {
	sub := &Subscription{
		Table: table,
		GymID: gymID,
		C:     make(chan Event, 32),
	}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	return sub
}

func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subs[sub]; !ok {
		return
	}
	delete(h.subs, sub)
	sub.closed = true
	close(sub.C)
}

func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subs {
		if sub.Table != "" && sub.Table != ev.Table {
			continue
		}
		if sub.GymID != 0 && sub.GymID != ev.GymID {
			continue
		}

		select {
		case sub.C <- ev:
		default:
			// subscriber buffer full, drop rather than block the writer
			h.log.Warn("realtime subscriber lagging, dropping event",
				zap.String("table", ev.Table),
				zap.Uint("row_id", ev.RowID),
			)
		}
	}
}

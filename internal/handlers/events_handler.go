package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/CoreFitApps/gym-scheduler/internal/middleware"
	"github.com/CoreFitApps/gym-scheduler/internal/realtime"
)

// EventsHandler streams row-change events to clients as SSE, the API's
// stand-in for a hosted realtime channel. Clients use the events only to
// trigger re-fetches, so dropped events are acceptable.
type EventsHandler struct {
	hub *realtime.Hub
}

func NewEventsHandler(hub *realtime.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

func (h *EventsHandler) Stream(c *gin.Context) {
	gymID := c.MustGet(middleware.ContextGymID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	table := c.Query("table")

	sub := h.hub.Subscribe(table, gymID)
	defer h.hub.Unsubscribe(sub)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")

	c.Stream(func(w io.Writer) bool {
		ev, ok := <-sub.C
		if !ok {
			return false
		}

		// Per-user events go only to their owner.
		if ev.UserID != 0 && ev.UserID != userID {
			return true
		}

		c.SSEvent("change", ev)
		return true
	})
}

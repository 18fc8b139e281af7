package notify

import (
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/CoreFitApps/gym-scheduler/internal/models"
)

// Notifier writes notification rows off the request path. Notifications
// are fire-and-forget: a failed or dropped write never fails the booking
// flow that produced it.

type Notifier struct {
	db    *gorm.DB
	log   *zap.Logger
	queue chan models.Notification
}

func NewNotifier(db *gorm.DB, log *zap.Logger) *Notifier {
	n := &Notifier{
		db:    db,
		log:   log,
		queue: make(chan models.Notification, 100),
	}

	go n.worker()
	return n
}

func (n *Notifier) worker() {
	for notif := range n.queue {
		if err := n.db.Create(&notif).Error; err != nil {
			n.log.Error("notification write failed",
				zap.Uint("user_id", notif.UserID),
				zap.String("type", notif.Type),
				zap.Error(err),
			)
		}
	}
}

func (n *Notifier) Push(notif models.Notification) {
	select {
	case n.queue <- notif:
	default:
		n.log.Warn("notification queue full, dropping",
			zap.Uint("user_id", notif.UserID),
			zap.String("type", notif.Type),
		)
	}
}

// PushData marshals data into the notification's JSON payload column.
func (n *Notifier) PushData(
	userID uint,
	typ string,
	title string,
	message string,
	data any,
) {
	var payload string
	if data != nil {
		if b, err := json.Marshal(data); err == nil {
			payload = string(b)
		}
	}

	n.Push(models.Notification{
		UserID:  userID,
		Type:    typ,
		Title:   title,
		Message: message,
		Data:    payload,
	})
}

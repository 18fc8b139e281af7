package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/CoreFitApps/gym-scheduler/internal/models"
	"github.com/CoreFitApps/gym-scheduler/internal/timezone"
)

const TypeSessionReminder = "reminder:session"

// Sessions get a reminder notification an hour before start, scheduled
// when the trainer accepts the booking.
const reminderLead = time.Hour

type ReminderPayload struct {
	BookingID   uint      `json:"booking_id"`
	UserID      uint      `json:"user_id"`
	TrainerName string    `json:"trainer_name"`
	StartTime   time.Time `json:"start_time"`
}

func NewSessionReminderTask(payload ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSessionReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ===============================
// Scheduler (producer side)
// ===============================

type ReminderScheduler struct {
	client *asynq.Client
	log    *zap.Logger
}

func NewReminderScheduler(client *asynq.Client, log *zap.Logger) *ReminderScheduler {
	return &ReminderScheduler{client: client, log: log}
}

// ScheduleSessionReminder enqueues a reminder for b. Best-effort: a
// queueing failure is logged and swallowed so accepting the booking
// still succeeds.
func (s *ReminderScheduler) ScheduleSessionReminder(b *models.Booking, trainerName string) {
	fireAt := b.StartTime.Add(-reminderLead)
	if !fireAt.After(time.Now()) {
		return
	}

	task, opts, err := NewSessionReminderTask(ReminderPayload{
		BookingID:   b.ID,
		UserID:      b.UserID,
		TrainerName: trainerName,
		StartTime:   b.StartTime,
	}, fireAt)
	if err != nil {
		s.log.Error("building reminder task failed", zap.Error(err))
		return
	}

	if _, err := s.client.Enqueue(task, opts...); err != nil {
		s.log.Error("enqueueing reminder failed",
			zap.Uint("booking_id", b.ID),
			zap.Error(err),
		)
	}
}

// ===============================
// Worker (consumer side)
// ===============================

type ReminderHandler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewReminderHandler(db *gorm.DB, log *zap.Logger) *ReminderHandler {
	return &ReminderHandler{db: db, log: log}
}

func (h *ReminderHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var p ReminderPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("reminder payload: %w", err)
	}

	// The booking may have been cancelled or moved since the reminder
	// was scheduled.
	var b models.Booking
	if err := h.db.WithContext(ctx).First(&b, p.BookingID).Error; err != nil {
		return nil
	}
	if b.Status != "accepted" || !b.StartTime.Equal(p.StartTime) {
		return nil
	}

	var gym models.Gym
	_ = h.db.WithContext(ctx).First(&gym, b.GymID).Error

	notif := models.Notification{
		UserID:  p.UserID,
		Type:    "session_reminder",
		Title:   "Upcoming session",
		Message: fmt.Sprintf("Your session with %s starts at %s.", p.TrainerName, timezone.Clock(p.StartTime, gym.Timezone)),
	}
	if b, err := json.Marshal(map[string]uint{"booking_id": p.BookingID}); err == nil {
		notif.Data = string(b)
	}

	if err := h.db.WithContext(ctx).Create(&notif).Error; err != nil {
		return err
	}

	h.log.Info("session reminder delivered",
		zap.Uint("booking_id", p.BookingID),
		zap.Uint("user_id", p.UserID),
	)
	return nil
}

func RegisterHandlers(mux *asynq.ServeMux, db *gorm.DB, log *zap.Logger) {
	mux.Handle(TypeSessionReminder, NewReminderHandler(db, log))
}

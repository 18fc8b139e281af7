package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/CoreFitApps/gym-scheduler/internal/backup"
	domain "github.com/CoreFitApps/gym-scheduler/internal/domain/schedule"
	"github.com/CoreFitApps/gym-scheduler/internal/middleware"
	"github.com/CoreFitApps/gym-scheduler/internal/models"
	"github.com/CoreFitApps/gym-scheduler/internal/realtime"
	ucSchedule "github.com/CoreFitApps/gym-scheduler/internal/usecase/schedule"
)

type stubScheduleRepo struct {
	profiles map[uint]*models.TrainerProfile
}

func (r *stubScheduleRepo) GetProfile(ctx context.Context, trainerID uint) (*models.TrainerProfile, error) {
	if p, ok := r.profiles[trainerID]; ok {
		return p, nil
	}
	return &models.TrainerProfile{UserID: trainerID}, nil
}

func (r *stubScheduleRepo) SaveAvailability(ctx context.Context, trainerID uint, availability string, isAvailable bool) error {
	r.profiles[trainerID] = &models.TrainerProfile{
		UserID:       trainerID,
		Availability: availability,
		IsAvailable:  isAvailable,
	}
	return nil
}

func (r *stubScheduleRepo) SaveBuilder(ctx context.Context, trainerID uint, builder string) error {
	p, ok := r.profiles[trainerID]
	if !ok {
		p = &models.TrainerProfile{UserID: trainerID}
		r.profiles[trainerID] = p
	}
	p.Builder = builder
	return nil
}

type stubBackup struct{}

func (stubBackup) Save(ctx context.Context, userID uint, snap backup.Snapshot) error { return nil }
func (stubBackup) Load(ctx context.Context, userID uint) (backup.Snapshot, error) {
	return backup.Snapshot{Week: domain.NewWeek()}, backup.ErrNotFound
}
func (stubBackup) Delete(ctx context.Context, userID uint) error { return nil }

func newAvailabilityRouter(repo *stubScheduleRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	log := zap.NewNop()
	hub := realtime.NewHub(log)

	h := NewAvailabilityHandler(
		ucSchedule.NewLoadAvailability(repo, stubBackup{}, log),
		ucSchedule.NewSaveAvailability(repo, stubBackup{}, hub, log),
		repo,
	)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, uint(7))
		c.Set(middleware.ContextGymID, uint(1))
		c.Set(middleware.ContextUserRole, "trainer")
	})
	r.GET("/me/availability", h.Get)
	r.PUT("/me/availability", h.Put)
	r.PUT("/me/availability/builder", h.PutBuilder)
	return r
}

func TestPutAvailabilityRequiresSevenDays(t *testing.T) {
	r := newAvailabilityRouter(&stubScheduleRepo{profiles: map[uint]*models.TrainerProfile{}})

	body := `{"days":[[],[],[],[],[],[]],"is_available":true}`
	req := httptest.NewRequest(http.MethodPut, "/me/availability", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for 6-day payload, got %d: %s", w.Code, w.Body.String())
	}
}

func TestPutThenGetAvailability(t *testing.T) {
	repo := &stubScheduleRepo{profiles: map[uint]*models.TrainerProfile{}}
	r := newAvailabilityRouter(repo)

	body := `{
		"days": [
			[{"start_time":"08:00","end_time":"09:00"}],
			[],[],[],[],[],[]
		],
		"is_available": true
	}`
	req := httptest.NewRequest(http.MethodPut, "/me/availability", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("save failed: %d %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/me/availability", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("load failed: %d %s", w.Code, w.Body.String())
	}

	var resp struct {
		Days        [][]domain.TimeSlot `json:"days"`
		IsAvailable bool                `json:"is_available"`
		Dirty       bool                `json:"dirty"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !resp.IsAvailable || resp.Dirty {
		t.Fatalf("unexpected flags: %+v", resp)
	}

	total := 0
	for _, day := range resp.Days {
		total += len(day)
	}
	if total != 1 {
		t.Fatalf("saved slot lost: %d slots in response", total)
	}
}

func TestPutAvailabilityRejectsInvertedSlot(t *testing.T) {
	r := newAvailabilityRouter(&stubScheduleRepo{profiles: map[uint]*models.TrainerProfile{}})

	body := `{
		"days": [
			[{"start_time":"10:00","end_time":"09:00"}],
			[],[],[],[],[],[]
		],
		"is_available": true
	}`
	req := httptest.NewRequest(http.MethodPut, "/me/availability", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "invalid_time_range") {
		t.Fatalf("expected invalid_time_range in body: %s", w.Body.String())
	}
}

func TestPutBuilderRejectsUnknownType(t *testing.T) {
	r := newAvailabilityRouter(&stubScheduleRepo{profiles: map[uint]*models.TrainerProfile{}})

	body := `{"days":{"0":[{"id":"x","start":"08:00","end":"09:00","type":"nap"}]}}`
	req := httptest.NewRequest(http.MethodPut, "/me/availability/builder", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

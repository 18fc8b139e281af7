package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/CoreFitApps/gym-scheduler/internal/audit"
	"github.com/CoreFitApps/gym-scheduler/internal/backup"
	"github.com/CoreFitApps/gym-scheduler/internal/config"
	"github.com/CoreFitApps/gym-scheduler/internal/handlers"
	infraRepo "github.com/CoreFitApps/gym-scheduler/internal/infra/repository"
	"github.com/CoreFitApps/gym-scheduler/internal/middleware"
	"github.com/CoreFitApps/gym-scheduler/internal/notify"
	"github.com/CoreFitApps/gym-scheduler/internal/realtime"
	"github.com/CoreFitApps/gym-scheduler/internal/rolecache"
	ucBooking "github.com/CoreFitApps/gym-scheduler/internal/usecase/booking"
	ucSchedule "github.com/CoreFitApps/gym-scheduler/internal/usecase/schedule"
)

type Deps struct {
	DB        *gorm.DB
	Config    *config.Config
	Log       *zap.Logger
	RoleCache rolecache.Cache
	Backup    backup.Store
	Hub       *realtime.Hub
	Notifier  *notify.Notifier
	Reminders *notify.ReminderScheduler
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)
	scheduleRepo := infraRepo.NewScheduleGormRepository(d.DB)

	auditLogger := audit.New(d.DB)
	auditDispatcher := audit.NewDispatcher(auditLogger, d.Log)

	// ======================================================
	// USE CASES — SCHEDULE
	// ======================================================
	loadAvailabilityUC := ucSchedule.NewLoadAvailability(
		scheduleRepo,
		d.Backup,
		d.Log,
	)

	saveAvailabilityUC := ucSchedule.NewSaveAvailability(
		scheduleRepo,
		d.Backup,
		d.Hub,
		d.Log,
	)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
		d.Notifier,
		d.Hub,
	)

	acceptBookingUC := ucBooking.NewAcceptBooking(
		bookingRepo,
		auditDispatcher,
		d.Notifier,
		d.Reminders,
		d.Hub,
	)

	declineBookingUC := ucBooking.NewDeclineBooking(
		bookingRepo,
		auditDispatcher,
		d.Notifier,
		d.Hub,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		auditDispatcher,
		d.Notifier,
		d.Hub,
	)

	rescheduleBookingUC := ucBooking.NewRescheduleBooking(
		bookingRepo,
		auditDispatcher,
		d.Notifier,
		d.Hub,
	)

	listForTrainerUC := ucBooking.NewListBookingsForTrainer(bookingRepo)
	listForMemberUC := ucBooking.NewListBookingsForMember(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.DB, d.Config)
	meHandler := handlers.NewMeHandler(d.DB)
	gymHandler := handlers.NewGymHandler(d.DB)
	trainerHandler := handlers.NewTrainerHandler(d.DB)

	availabilityHandler := handlers.NewAvailabilityHandler(
		loadAvailabilityUC,
		saveAvailabilityUC,
		scheduleRepo,
	)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		acceptBookingUC,
		declineBookingUC,
		cancelBookingUC,
		rescheduleBookingUC,
		listForTrainerUC,
		listForMemberUC,
	)

	notificationHandler := handlers.NewNotificationHandler(d.DB)
	checkInHandler := handlers.NewCheckInHandler(d.DB)
	workoutHandler := handlers.NewWorkoutHandler(d.DB)
	achievementHandler := handlers.NewAchievementHandler(d.DB)
	messageHandler := handlers.NewMessageHandler(d.DB)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)
	eventsHandler := handlers.NewEventsHandler(d.Hub)

	trainerOnly := middleware.RequireRole(d.DB, d.RoleCache, "trainer", "admin")
	adminOnly := middleware.RequireRole(d.DB, d.RoleCache, "admin")

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/join", authHandler.Join)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Config))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/events", eventsHandler.Stream)

			secured.GET("/me/gym", gymHandler.GetMeGym)
			secured.PATCH("/me/gym", adminOnly, gymHandler.UpdateMeGym)

			secured.GET("/trainers", trainerHandler.List)
			secured.GET("/trainers/:id/availability", availabilityHandler.GetForTrainer)

			// ------------------------------
			// AVAILABILITY EDITOR
			// ------------------------------
			secured.GET("/me/availability", trainerOnly, availabilityHandler.Get)
			secured.PUT("/me/availability", trainerOnly, availabilityHandler.Put)
			secured.GET("/me/availability/builder", trainerOnly, availabilityHandler.GetBuilder)
			secured.PUT("/me/availability/builder", trainerOnly, availabilityHandler.PutBuilder)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/me/bookings", bookingHandler.Create)
			secured.GET("/me/bookings", bookingHandler.ListMine)
			secured.PATCH("/me/bookings/:id/cancel", bookingHandler.Cancel)
			secured.PATCH("/me/bookings/:id/reschedule", bookingHandler.Reschedule)

			secured.GET("/me/sessions", trainerOnly, bookingHandler.ListByDate)
			secured.PATCH("/me/sessions/:id/accept", trainerOnly, bookingHandler.Accept)
			secured.PATCH("/me/sessions/:id/decline", trainerOnly, bookingHandler.Decline)

			// ------------------------------
			// NOTIFICATIONS
			// ------------------------------
			secured.GET("/me/notifications", notificationHandler.List)
			secured.PATCH("/me/notifications/:id/read", notificationHandler.MarkRead)
			secured.POST("/me/notifications/read-all", notificationHandler.MarkAllRead)

			// ------------------------------
			// GYM LIFE
			// ------------------------------
			secured.POST("/me/check-ins", checkInHandler.CheckIn)
			secured.POST("/me/check-ins/checkout", checkInHandler.CheckOut)
			secured.GET("/me/check-ins", checkInHandler.History)

			secured.GET("/workouts", workoutHandler.List)
			secured.POST("/workouts", trainerOnly, workoutHandler.Create)
			secured.PATCH("/workouts/:id", trainerOnly, workoutHandler.Update)

			secured.GET("/me/achievements", achievementHandler.List)

			secured.POST("/me/messages", messageHandler.Send)
			secured.GET("/me/messages/:id", messageHandler.Conversation)

			secured.GET("/me/audit-logs", adminOnly, auditLogsHandler.List)
		}
	}
}

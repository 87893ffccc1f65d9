package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookwell/scheduler-api/internal/audit"
	"github.com/bookwell/scheduler-api/internal/cache"
	"github.com/bookwell/scheduler-api/internal/config"
	"github.com/bookwell/scheduler-api/internal/handlers"
	infraRepo "github.com/bookwell/scheduler-api/internal/infra/repository"
	"github.com/bookwell/scheduler-api/internal/middleware"
	"github.com/bookwell/scheduler-api/internal/models"
	"github.com/bookwell/scheduler-api/internal/notify"
	ucAvailability "github.com/bookwell/scheduler-api/internal/usecase/availability"
	ucBooking "github.com/bookwell/scheduler-api/internal/usecase/booking"
	ucNotification "github.com/bookwell/scheduler-api/internal/usecase/notification"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, statusCache cache.Cache) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	availabilityRepo := infraRepo.NewAvailabilityGormRepository(db)
	notificationRepo := infraRepo.NewNotificationGormRepository(db)

	notifyPolicy := notify.NewPolicy(notificationRepo)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — AVAILABILITY
	// ======================================================
	checkCurrentUC := ucAvailability.NewCheckCurrent(availabilityRepo)
	getStatusUC := ucAvailability.NewGetStatus(availabilityRepo)
	setStatusUC := ucAvailability.NewSetStatus(availabilityRepo)
	updateStatusUC := ucAvailability.NewUpdateStatus(availabilityRepo)
	bulkUpdateUC := ucAvailability.NewBulkUpdate(availabilityRepo)
	deleteStatusUC := ucAvailability.NewDeleteStatus(availabilityRepo)
	listAllUC := ucAvailability.NewListAll(availabilityRepo)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreate(bookingRepo, notifyPolicy, auditDispatcher)
	bookUC := ucBooking.NewBook(bookingRepo)
	getBookingUC := ucBooking.NewGet(bookingRepo)
	changeStatusUC := ucBooking.NewChangeStatus(bookingRepo, notifyPolicy, auditDispatcher)
	rescheduleUC := ucBooking.NewReschedule(bookingRepo)
	cancelBookingUC := ucBooking.NewCancel(bookingRepo, auditDispatcher)
	deleteBookingUC := ucBooking.NewDelete(bookingRepo, notifyPolicy, auditDispatcher)
	scheduleUC := ucBooking.NewSchedule(bookingRepo)

	// ======================================================
	// USE CASES — NOTIFICATIONS
	// ======================================================
	confirmationUC := ucNotification.NewBookingConfirmation(bookingRepo, notifyPolicy)
	alertUC := ucNotification.NewAvailabilityAlert(bookingRepo, availabilityRepo, notifyPolicy)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	userHandler := handlers.NewUserHandler(db, auditDispatcher)

	availabilityHandler := handlers.NewAvailabilityHandler(
		checkCurrentUC,
		getStatusUC,
		setStatusUC,
		updateStatusUC,
		bulkUpdateUC,
		deleteStatusUC,
		listAllUC,
		statusCache,
	)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		bookUC,
		getBookingUC,
		changeStatusUC,
		rescheduleUC,
		cancelBookingUC,
		deleteBookingUC,
		scheduleUC,
	)

	feedbackHandler := handlers.NewFeedbackHandler(db, auditDispatcher)
	notificationHandler := handlers.NewNotificationHandler(confirmationUC, alertUC, notificationRepo)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC READS
		// ------------------------------
		api.GET("/availability/current/:profileId", availabilityHandler.CheckCurrent)
		api.GET("/availability/status/:profileId", availabilityHandler.GetStatus)
		api.GET("/availability", availabilityHandler.ListAll)
		api.GET("/professionals/:profileId/schedule", bookingHandler.Schedule)
		api.GET("/professionals/:profileId/feedback", feedbackHandler.ListForProfessional)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// AVAILABILITY
			// ------------------------------
			secured.POST("/availability/status/:profileId", availabilityHandler.SetStatus)
			secured.PATCH("/availability/status/:profileId", availabilityHandler.UpdateStatus)
			secured.PATCH("/availability/bulk", availabilityHandler.BulkUpdate)
			secured.DELETE("/availability/status/:profileId", availabilityHandler.DeleteStatus)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings", bookingHandler.Create)
			secured.POST("/bookings/book", bookingHandler.Book)
			secured.GET("/bookings/:bookingId", bookingHandler.Get)
			secured.PATCH("/bookings/:bookingId/status", bookingHandler.ChangeStatus)
			secured.PATCH("/bookings/:bookingId/reschedule", bookingHandler.Reschedule)
			secured.PATCH("/bookings/:bookingId/cancel", bookingHandler.Cancel)
			secured.DELETE("/bookings/:bookingId", bookingHandler.Delete)

			// ------------------------------
			// FEEDBACK
			// ------------------------------
			secured.POST("/feedback", feedbackHandler.Create)
			secured.GET("/feedback/:feedbackId", feedbackHandler.Get)
			secured.PATCH("/feedback/:feedbackId", feedbackHandler.Update)
			secured.DELETE("/feedback/:feedbackId", feedbackHandler.Delete)

			// ------------------------------
			// NOTIFICATIONS
			// ------------------------------
			secured.POST("/notifications/booking-confirmation", notificationHandler.BookingConfirmation)
			secured.POST("/notifications/availability-alert", notificationHandler.AvailabilityAlert)
			secured.GET("/notifications", notificationHandler.List)
			secured.PATCH("/notifications/:notificationId/read", notificationHandler.MarkRead)

			// ------------------------------
			// USERS / ADMIN
			// ------------------------------
			secured.GET("/users/:userId", userHandler.GetDetails)

			admin := secured.Group("/")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.PATCH("/users/:userId/role", userHandler.UpdateRole)
				admin.DELETE("/users/:userId", userHandler.Delete)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/trimhub/booking-api/internal/audit"
	"github.com/trimhub/booking-api/internal/cache"
	"github.com/trimhub/booking-api/internal/config"
	"github.com/trimhub/booking-api/internal/handlers"
	infraRepo "github.com/trimhub/booking-api/internal/infra/repository"
	"github.com/trimhub/booking-api/internal/middleware"
	"github.com/trimhub/booking-api/internal/storage"
	ucBooking "github.com/trimhub/booking-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, cc *cache.Cache) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	avatarStore := storage.NewAvatarStore(cfg)

	// ======================================================
	// 🧠 USE CASES — BOOKINGS
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
		ucBooking.InitialStatusFromConfig(cfg.BookingInitialStatus),
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		auditDispatcher,
	)

	moderateBookingUC := ucBooking.NewModerateBooking(
		bookingRepo,
		auditDispatcher,
	)

	listAdminBookingsUC := ucBooking.NewListAdminBookings(bookingRepo)
	listBookingHistoryUC := ucBooking.NewListBookingHistory(bookingRepo)
	listUserBookingsUC := ucBooking.NewListUserBookings(bookingRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db, avatarStore)
	barbershopHandler := handlers.NewBarbershopHandler(db, cc)

	bookingHandler := handlers.NewBookingHandler(
		availabilityUC,
		createBookingUC,
		cancelBookingUC,
		listUserBookingsUC,
	)

	adminHandler := handlers.NewAdminHandler(
		db,
		listAdminBookingsUC,
		listBookingHistoryUC,
		moderateBookingUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// ------------------------------
		// 🌐 CATÁLOGO PÚBLICO
		// ------------------------------
		api.GET("/barbershops", barbershopHandler.List)
		api.GET("/barbershops/:id", barbershopHandler.Get)
		api.GET("/barbershops/:id/services", barbershopHandler.ListServices)
		api.GET("/services/:id/availability", bookingHandler.Availability)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", userHandler.GetMe)
			secured.GET("/user/role", userHandler.GetRole)
			secured.PUT("/user/info", userHandler.UpdateInfo)
			secured.PUT("/user/password", userHandler.UpdatePassword)
			secured.POST("/user/avatar", userHandler.UploadAvatar)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.GET("/bookings", bookingHandler.List)
			secured.POST("/bookings", bookingHandler.Create)
			secured.DELETE("/bookings/:id", bookingHandler.Cancel)

			// ------------------------------
			// ADMIN (papel relido do banco)
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.AdminMiddleware(db))
			{
				admin.GET("/bookings", adminHandler.ListBookings)
				admin.GET("/bookings/history", adminHandler.ListHistory)
				admin.PATCH("/bookings/:id", adminHandler.UpdateStatus)
				admin.DELETE("/bookings/:id", adminHandler.CancelBooking)

				admin.GET("/users", adminHandler.ListUsers)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/frannienails/salon-manager/internal/config"
	"github.com/frannienails/salon-manager/internal/handlers"
	infraRepo "github.com/frannienails/salon-manager/internal/infra/repository"
	"github.com/frannienails/salon-manager/internal/middleware"
	"github.com/frannienails/salon-manager/internal/notify"
	"github.com/frannienails/salon-manager/internal/storage"
	ucSwap "github.com/frannienails/salon-manager/internal/usecase/swap"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	notifier *notify.Dispatcher,
	photoStore *storage.PhotoStore,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	swapRepo := infraRepo.NewSwapGormRepository(db)

	// ======================================================
	// USE CASES (SWAP REQUESTS)
	// ======================================================
	createSwapUC := ucSwap.NewCreateSwapRequest(swapRepo)

	respondClientUC := ucSwap.NewRespondClient(
		swapRepo,
		notifier,
	)

	respondAdminUC := ucSwap.NewRespondAdmin(
		swapRepo,
		notifier,
	)

	listSwapUC := ucSwap.NewListSwapRequests(swapRepo)
	listClientSwapUC := ucSwap.NewListClientSwapRequests(swapRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	clientHandler := handlers.NewClientHandler(db, notifier)
	accessCodeHandler := handlers.NewAccessCodeHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(db, notifier, cfg.Timezone)
	preCheckHandler := handlers.NewPreCheckHandler(db, notifier)

	swapHandler := handlers.NewSwapHandler(
		createSwapUC,
		respondClientUC,
		respondAdminUC,
		listSwapUC,
		listClientSwapUC,
	)

	photoHandler := handlers.NewPhotoHandler(db, photoStore, notifier)
	inventoryHandler := handlers.NewInventoryHandler(db, notifier)
	notificationHandler := handlers.NewNotificationHandler(db)
	earningsHandler := handlers.NewEarningsHandler(db, cfg.Timezone)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH (ADMIN)
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// ACESSO DA CLIENTE (SEM LOGIN)
		// ------------------------------
		api.POST("/client/access", clientHandler.Access)

		api.GET("/client/:clientId/appointments", appointmentHandler.ListByClient)
		api.GET("/client/:clientId/swap-requests", swapHandler.ListForClient)

		api.POST("/client/swap-requests/:id/respond", swapHandler.RespondClient)
		api.POST("/client/swap-requests/:id/:action", swapHandler.RespondClientAction)

		api.GET("/appointments/available-slots", appointmentHandler.AvailableSlots)

		api.GET("/pre-checks/:appointmentId", preCheckHandler.GetByAppointment)
		api.POST("/pre-checks/:appointmentId", preCheckHandler.Submit)

		// galeria é pública para as clientes do salão
		api.GET("/photos", photoHandler.Gallery)
		api.POST("/photos", photoHandler.Upload)
		api.POST("/photos/:id/like", photoHandler.ToggleLike)
		api.GET("/photos/:id/comments", photoHandler.ListComments)
		api.POST("/photos/:id/comments", photoHandler.CreateComment)

		// solicitação de troca parte da cliente
		api.POST("/swap-requests", swapHandler.Create)

		// ------------------------------
		// API PRIVADA (ADMIN)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// CLIENTES
			secured.GET("/clients", clientHandler.List)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.PATCH("/clients/:id", clientHandler.Update)
			secured.PATCH("/clients/:id/toggle-active", clientHandler.ToggleActive)

			// CÓDIGOS DE ACESSO
			secured.POST("/access-codes", accessCodeHandler.Generate)
			secured.GET("/access-codes", accessCodeHandler.List)
			secured.DELETE("/access-codes/:id", accessCodeHandler.Delete)

			// AGENDAMENTOS
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.ListAll)
			secured.GET("/appointments/by-date", appointmentHandler.ListByDate)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			// SOLICITAÇÕES DE TROCA
			secured.GET("/swap-requests", swapHandler.List)
			secured.POST("/admin/swap-requests/:id/:action", swapHandler.RespondAdmin)

			// FOTOS (MODERAÇÃO)
			secured.GET("/photos/pending", photoHandler.ListPending)
			secured.PATCH("/photos/:id/approve", photoHandler.Approve)
			secured.PATCH("/photos/:id/reject", photoHandler.Reject)

			// ESTOQUE
			secured.POST("/inventory", inventoryHandler.Create)
			secured.GET("/inventory", inventoryHandler.List)
			secured.GET("/inventory/low-stock", inventoryHandler.LowStock)
			secured.PATCH("/inventory/:id", inventoryHandler.Update)
			secured.PATCH("/inventory/:id/stock", inventoryHandler.AdjustStock)
			secured.DELETE("/inventory/:id", inventoryHandler.Delete)

			// NOTIFICAÇÕES
			secured.GET("/admin/notifications", notificationHandler.List)
			secured.GET("/admin/notifications/unread", notificationHandler.ListUnread)
			secured.PATCH("/admin/notifications/:id/read", notificationHandler.MarkRead)
			secured.PATCH("/admin/notifications/read-all", notificationHandler.MarkAllRead)

			// FECHAMENTO DE CAIXA
			secured.POST("/earnings", earningsHandler.Upsert)
			secured.GET("/earnings", earningsHandler.List)
			secured.GET("/earnings/summary", earningsHandler.MonthlySummary)
		}
	}
}

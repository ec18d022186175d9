package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/frannienails/salon-manager/internal/config"
	dbpkg "github.com/frannienails/salon-manager/internal/db"
	"github.com/frannienails/salon-manager/internal/logging"
	"github.com/frannienails/salon-manager/internal/middleware"
	"github.com/frannienails/salon-manager/internal/notify"
	"github.com/frannienails/salon-manager/internal/reminder"
	"github.com/frannienails/salon-manager/internal/routes"
	"github.com/frannienails/salon-manager/internal/storage"
	"github.com/frannienails/salon-manager/internal/timezone"
)

func main() {

	cfg := config.Load()
	logger := logging.NewLogger(cfg.Environment)
	defer logger.Sync()

	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	// ======================================================
	// NOTIFICAÇÕES
	// ======================================================
	channels := []notify.Channel{
		notify.NewWhatsAppChannel(logger),
	}

	if cfg.TelegramToken != "" {
		tg, err := notify.NewTelegramChannel(cfg.TelegramToken, cfg.TelegramChatID, logger)
		if err != nil {
			logger.Warn("telegram channel disabled", zap.Error(err))
		} else {
			channels = append(channels, tg)
		}
	}

	notifier := notify.NewDispatcher(notify.NewRecorder(db), logger, channels...)

	// ======================================================
	// LEMBRETES DIÁRIOS
	// ======================================================
	scheduler := reminder.NewScheduler(
		db,
		rdb,
		notifier,
		logger,
		timezone.Location(cfg.Timezone),
	)
	scheduler.Start(context.Background())
	defer scheduler.Stop()

	// ======================================================
	// HTTP
	// ======================================================
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	photoStore := storage.NewPhotoStore(cfg)

	routes.RegisterRoutes(r, db, cfg, notifier, photoStore)

	logger.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

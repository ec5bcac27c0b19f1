package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fixmate/repair-marketplace-api/internal/adapters/in/http"
	"github.com/fixmate/repair-marketplace-api/internal/adapters/in/rabbitmq"
	"github.com/fixmate/repair-marketplace-api/internal/adapters/out/ai"
	"github.com/fixmate/repair-marketplace-api/internal/adapters/out/cache"
	"github.com/fixmate/repair-marketplace-api/internal/adapters/out/events"
	"github.com/fixmate/repair-marketplace-api/internal/adapters/out/geocoder"
	"github.com/fixmate/repair-marketplace-api/internal/adapters/out/logger"
	"github.com/fixmate/repair-marketplace-api/internal/adapters/out/mongo"
	"github.com/fixmate/repair-marketplace-api/internal/adapters/out/rates"
	"github.com/fixmate/repair-marketplace-api/internal/adapters/out/uploader"
	"github.com/fixmate/repair-marketplace-api/internal/config"
	"github.com/fixmate/repair-marketplace-api/internal/core/ports/out"
	"github.com/fixmate/repair-marketplace-api/internal/core/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

func main() {
	// .env опционален, в контейнере конфиг приходит из окружения
	_ = godotenv.Load()

	// Загрузка конфигурации
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализация логгера с таймзоной
	mainLogger, err := logger.NewConsoleLogger(cfg.App.Timezone)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger := mainLogger.WithModule("Main")

	logger.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"timezone":        cfg.App.Timezone,
		"rabbitmqEnabled": cfg.RabbitMQ.Enabled,
		"cacheEnabled":    cfg.Cache.Enabled,
	})

	// Настройка Gin в зависимости от окружения
	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Подключение к MongoDB
	mongoCtx, mongoCancel := context.WithCancel(context.Background())
	defer mongoCancel()

	db, closeMongo, err := mongo.NewDatabase(mongoCtx, cfg)
	if err != nil {
		logger.Error("app.mongo.init_failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer closeMongo()

	// Инициализация хранилищ
	appointmentStore := mongo.NewAppointmentStore(db, mainLogger)
	technicianStore := mongo.NewTechnicianStore(db, mainLogger)
	userStore := mongo.NewUserStore(db, mainLogger)
	diagnosisStore := mongo.NewDiagnosisStore(db, mainLogger)
	notificationStore := mongo.NewNotificationStore(db, mainLogger)

	// Инициализация внешних адаптеров
	aiAdapter := ai.NewAiAdapter(cfg, mainLogger)
	ratesAdapter := rates.NewExchangeRateAdapter(cfg, mainLogger)
	imageUploader := uploader.NewImageUploader(cfg, mainLogger)
	primaryGeocoder := geocoder.NewNominatimAdapter(cfg.Geocoder.PrimaryURL, mainLogger)
	secondaryGeocoder := geocoder.NewMapsCoAdapter(cfg.Geocoder.SecondaryURL, cfg.Geocoder.SecondaryKey, mainLogger)

	var cacheAdapter out.CachePort
	if cfg.Cache.Enabled {
		adapter, err := cache.NewCacheAdapter(cfg, mainLogger)
		if err != nil {
			logger.Error("app.cache.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		cacheAdapter = adapter
	}

	var publisher out.EventPublisherPort
	var publisherStop func() error
	if cfg.RabbitMQ.Enabled {
		rabbitPublisher, err := events.NewPublisher(cfg, mainLogger)
		if err != nil {
			logger.Error("app.rabbitmq.publisher_init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		publisher = rabbitPublisher
		publisherStop = rabbitPublisher.Stop
	}

	// Инициализация сервисов
	appointmentService := services.NewAppointmentService(appointmentStore, publisher, mainLogger)
	diagnosisService := services.NewDiagnosisService(aiAdapter, ratesAdapter, cacheAdapter, diagnosisStore, cfg, mainLogger)
	technicianService := services.NewTechnicianService(technicianStore, appointmentStore, imageUploader, mainLogger)
	userService := services.NewUserService(userStore, mainLogger)
	geocodingService := services.NewGeocodingService(primaryGeocoder, secondaryGeocoder, mainLogger)
	notificationService := services.NewNotificationService(notificationStore, mainLogger)
	reminderService := services.NewReminderService(appointmentStore, publisher, mainLogger)

	// Настройка HTTP сервера
	router := gin.Default()
	http.NewAppointmentController(appointmentService, cfg).RegisterRoutes(router)
	http.NewDiagnosisController(diagnosisService, cfg).RegisterRoutes(router)
	http.NewTechnicianController(technicianService, cfg).RegisterRoutes(router)
	http.NewUserController(userService, geocodingService, notificationService, cfg).RegisterRoutes(router)
	http.NewGeocodeController(geocodingService, cfg).RegisterRoutes(router)

	// Настройка RabbitMQ слушателя только если он включен
	if cfg.RabbitMQ.Enabled {
		listener, err := rabbitmq.NewNotificationListener(notificationService, cfg, mainLogger)
		if err != nil {
			logger.Error("app.rabbitmq.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if err := listener.Start(ctx); err != nil {
			logger.Error("app.rabbitmq.start_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		defer func() {
			if err := listener.Stop(); err != nil {
				logger.Error("app.rabbitmq.stop_failed", out.LogFields{
					"error": err.Error(),
				})
			}
		}()
	}

	if publisherStop != nil {
		defer func() {
			if err := publisherStop(); err != nil {
				logger.Error("app.rabbitmq.publisher_stop_failed", out.LogFields{
					"error": err.Error(),
				})
			}
		}()
	}

	// Ежедневные напоминания по cron
	var reminderCron *cron.Cron
	if cfg.Reminders.Enabled {
		reminderCron = cron.New()
		if _, err := reminderCron.AddFunc(cfg.Reminders.Cron, reminderService.SendDailyReminders); err != nil {
			logger.Error("app.reminders.schedule_failed", out.LogFields{
				"cron":  cfg.Reminders.Cron,
				"error": err.Error(),
			})
			os.Exit(1)
		}
		reminderCron.Start()
		defer reminderCron.Stop()

		logger.Info("app.reminders.scheduled", out.LogFields{
			"cron": cfg.Reminders.Cron,
		})
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := router.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
			logger.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	logger.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})

	// Дополнительное логирование для разработки
	if cfg.IsLocal() {
		logger.Debug("app.config.debug", out.LogFields{
			"config": map[string]interface{}{
				"http": map[string]string{
					"host": cfg.HTTP.Host,
					"port": cfg.HTTP.Port,
				},
				"mongo": map[string]string{
					"database": cfg.Mongo.Database,
				},
				"rabbitmq": map[string]interface{}{
					"enabled":  cfg.RabbitMQ.Enabled,
					"exchange": cfg.RabbitMQ.Exchange,
					"queue":    cfg.RabbitMQ.Queue,
				},
				"cache": map[string]interface{}{
					"enabled":        cfg.Cache.Enabled,
					"estimates_size": cfg.Cache.EstimatesSize,
				},
			},
		})
	}
}

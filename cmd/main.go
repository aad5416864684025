package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelReservationHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/cancel_reservation"
	channelWebhookHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/channel_webhook"
	createReservationHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/create_reservation"
	getDateAvailabilityHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_date_availability"
	getMonthlyAggregatedHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_monthly_aggregated"
	getMonthlyAvailabilityHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_monthly_availability"
	getOverviewHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_overview"
	getReservationHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_reservation"
	getRoomAvailabilityHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_room_availability"
	getSettingsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_settings"
	listReservationsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/list_reservations"
	updateReservationStatusHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/update_reservation_status"
	updateSettingsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/update_settings"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelService/internal/config"
	reservationRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	settingsRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/settings"
	availabilityService "github.com/m04kA/SMC-HotelService/internal/service/availability"
	reservationsService "github.com/m04kA/SMC-HotelService/internal/service/reservations"
	rulesService "github.com/m04kA/SMC-HotelService/internal/service/rules"
	settingsService "github.com/m04kA/SMC-HotelService/internal/service/settings"
	createReservationUC "github.com/m04kA/SMC-HotelService/internal/usecase/create_reservation"
	processChannelEventUC "github.com/m04kA/SMC-HotelService/internal/usecase/process_channel_event"
	"github.com/m04kA/SMC-HotelService/pkg/logger"
	"github.com/m04kA/SMC-HotelService/pkg/metrics"
)

// noopMetrics используется при выключенных метриках
type noopMetrics struct{}

func (noopMetrics) IncReservationCreated(source string)   {}
func (noopMetrics) IncChannelEvent(event, outcome string) {}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-HotelService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Интерфейс метрик для use cases: noop при выключенных метриках
	type usecaseMetrics interface {
		IncReservationCreated(source string)
		IncChannelEvent(event, outcome string)
	}
	var ucMetrics usecaseMetrics = noopMetrics{}
	if cfg.Metrics.Enabled {
		ucMetrics = metricsCollector
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории
	reservationRepository := reservationRepo.NewRepository(db)
	roomRepository := roomRepo.NewRepository(db)
	settingsRepository := settingsRepo.NewRepository(db)

	// Кеш бизнес-настроек с TTL
	settingsCache := settingsService.NewCache(
		settingsRepository,
		time.Duration(cfg.SettingsCache.TTLSeconds)*time.Second,
		log,
	)

	// Инициализируем сервисы
	settingsSvc := settingsService.NewService(settingsRepository, settingsCache, log)
	rulesSvc := rulesService.NewService(settingsCache, log)
	availabilitySvc := availabilityService.NewService(
		reservationRepository,
		roomRepository,
		cfg.Inventory.LowInventoryThreshold,
		log,
	)
	reservationsSvc := reservationsService.NewService(reservationRepository, rulesSvc, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		roomRepository,
		rulesSvc,
		ucMetrics,
		log,
	)
	processChannelEventUseCase := processChannelEventUC.NewUseCase(
		roomRepository,
		reservationRepository,
		cfg.Channel.WebhookSecret,
		ucMetrics,
		log,
	)

	if cfg.Channel.WebhookSecret == "" {
		log.Warn("Channel webhook secret is not configured, all channel notifications will be rejected")
	}

	// Инициализируем handlers
	getRoomAvailability := getRoomAvailabilityHandler.NewHandler(availabilitySvc, log)
	getDateAvailability := getDateAvailabilityHandler.NewHandler(availabilitySvc, log)
	getMonthlyAvailability := getMonthlyAvailabilityHandler.NewHandler(availabilitySvc, log)
	getMonthlyAggregated := getMonthlyAggregatedHandler.NewHandler(availabilitySvc, log)
	getOverview := getOverviewHandler.NewHandler(availabilitySvc, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationsSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	channelWebhook := channelWebhookHandler.NewHandler(
		processChannelEventUseCase,
		cfg.Channel.SignatureHeader,
		log,
	)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступность номера по дням в диапазоне
	api.HandleFunc("/rooms/{roomId}/availability", getRoomAvailability.Handle).Methods(http.MethodGet)

	// Доступность всех номеров на конкретную дату
	api.HandleFunc("/availability/date", getDateAvailability.Handle).Methods(http.MethodGet)

	// Календарь номера на месяц
	api.HandleFunc("/rooms/{roomId}/calendar", getMonthlyAvailability.Handle).Methods(http.MethodGet)

	// Сводный календарь всех номеров на месяц
	api.HandleFunc("/calendar", getMonthlyAggregated.Handle).Methods(http.MethodGet)

	// Сводка загрузки: сегодня против следующей недели
	api.HandleFunc("/overview", getOverview.Handle).Methods(http.MethodGet)

	// Webhook внешнего канала бронирования (аутентификация подписью)
	api.HandleFunc("/channel/webhook", channelWebhook.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования через прямой канал
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Список бронирований с фильтрацией
	protected.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// Смена статуса бронирования (заезд, выезд)
	protected.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

	// --- Настройки (для администраторов) ---
	protected.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
